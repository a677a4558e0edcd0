/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/bitstream"
	"strings"
)

// asciiBits is the width of an ISO 646 character in EPC binary encodings.
const asciiBits = 7

var (
	gs1Escaper = strings.NewReplacer(
		`"`, "%22",
		`#`, "%23",
		`%`, "%25",
		`&`, "%26",
		`/`, "%2F",
		`<`, "%3C",
		`>`, "%3E",
		`?`, "%3F",
	)

	gs1Unescaper = strings.NewReplacer(
		"%22", `"`,
		"%23", `#`,
		"%25", `%`,
		"%26", `&`,
		"%2F", `/`,
		"%3C", `<`,
		"%3E", `>`,
		"%3F", `?`,
	)
)

// DecodeASCII decodes 7-bit ISO-646 packed ASCII bit strings into their UTF-8
// representations, starting from the first bit of the first byte. It returns
// floor(len(data)*8/7) characters; see DecodeASCIIAt for trailing nulls.
func DecodeASCII(data []byte) string {
	s, _, _ := DecodeASCIIAt(data, 0)
	return s
}

// DecodeASCIIAt decodes every whole 7-bit character in data that starts at or
// after the bit offset within the first byte.
//
// EPC serials are null terminated, so n is the number of characters before the
// first null (or len(s) if there isn't one), and charAfterNull is true if any
// non-null character follows that null. When the encoded string's length isn't
// a multiple of 8 bits, the final character is usually made of padding, which
// appears as a trailing null.
//
// Panics if the offset isn't in [0, 7].
func DecodeASCIIAt(data []byte, offset int) (s string, n int, charAfterNull bool) {
	if offset < 0 || offset > 7 {
		panic(fmt.Errorf("invalid offset %d", offset))
	}

	r := bitstream.NewReader(data, len(data)*bitstream.ByteSize)
	if _, err := r.ReadBits(offset); err != nil {
		return "", 0, false
	}
	s, n, charAfterNull, _ = readASCII(r, r.Remaining()/asciiBits)
	return s, n, charAfterNull
}

// readASCII reads count 7-bit characters from r.
func readASCII(r *bitstream.Reader, count int) (s string, n int, charAfterNull bool, err error) {
	out := make([]byte, count)
	n = -1
	for i := range out {
		c, err := r.ReadBits(asciiBits)
		if err != nil {
			return "", 0, false, err
		}
		out[i] = byte(c)
		switch {
		case c == 0 && n < 0:
			n = i
		case c != 0 && n >= 0:
			charAfterNull = true
		}
	}
	if n < 0 {
		n = count
	}
	return string(out), n, charAfterNull, nil
}

// EscapeGS1 returns s with the characters that EPC pure identity URIs reserve
// replaced by their percent-encodings: " # % & / < > ?
func EscapeGS1(s string) string {
	return gs1Escaper.Replace(s)
}

// UnescapeGS1 reverses EscapeGS1. Other percent-encodings are left as-is.
func UnescapeGS1(s string) string {
	return gs1Unescaper.Replace(s)
}

// IsGS1AIEncodable returns true if the string contains only characters allowed
// in the GS1 AI encodable character set 82, optionally followed by nulls.
func IsGS1AIEncodable(s string) bool {
	s = strings.TrimRight(s, "\x00")
	return isCharset(s, "21")
}

// IsGS1CompPartEncodable returns true if the string contains only characters
// allowed in the GS1 character set 39 used by component and part
// identifiers, optionally followed by nulls.
func IsGS1CompPartEncodable(s string) bool {
	s = strings.TrimRight(s, "\x00")
	return isCharset(s, "8010")
}

// isCharset checks s against the character set of an alphanumeric AI, one
// character at a time so its length doesn't matter.
func isCharset(s, code string) bool {
	for i := 0; i < len(s); i++ {
		if ai.VerifySyntax(code, s[i:i+1]) != nil {
			return false
		}
	}
	return true
}
