/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package compress

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/bitstream"
	"github.com/pkg/errors"
	"math"
	"math/big"
	"math/bits"
	"strings"
)

// Encoding selects how the characters of an alphanumeric value are packed.
type Encoding uint8

const (
	// Digits packs an all-numeric value as a single binary integer.
	Digits = Encoding(iota)
	// LowerHex packs lowercase hexadecimal characters at 4 bits each.
	LowerHex
	// UpperHex packs uppercase hexadecimal characters at 4 bits each.
	UpperHex
	// URLSafe packs characters of the URL-safe base64 alphabet at 6 bits each.
	URLSafe
	// ASCII packs 7-bit characters by their code point.
	ASCII

	encodingBits = 3
	nibbleBits   = 4
	foreignFlag  = 0xF
	// foreign keys and values are limited to 127 characters
	foreignLenBits = 7
)

const hexAlphabet = "0123456789ABCDEF"

func (e Encoding) String() string {
	switch e {
	case Digits:
		return "digits"
	case LowerHex:
		return "lowercase hex"
	case UpperHex:
		return "uppercase hex"
	case URLSafe:
		return "URL-safe base64"
	case ASCII:
		return "ASCII"
	}
	return "reserved encoding"
}

func isCharset(s, charset string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(charset, s[i]) < 0 {
			return false
		}
	}
	return true
}

// SelectEncoding returns the most compact encoding that can represent s.
// The empty string selects ASCII.
func SelectEncoding(s string) Encoding {
	switch {
	case isCharset(s, hexAlphabet[:10]):
		return Digits
	case isCharset(s, "0123456789abcdef"):
		return LowerHex
	case isCharset(s, hexAlphabet):
		return UpperHex
	case isCharset(s, bitstream.Alphabet):
		return URLSafe
	}
	return ASCII
}

// lengthBits returns the number of bits needed to hold any length up to max.
func lengthBits(max int) int {
	return bits.Len(uint(max))
}

// valueBits returns the number of bits needed to hold any n digit number.
func valueBits(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) * math.Log2(10)))
}

// writeDigits writes a string of decimal digits as a binary integer.
func writeDigits(w *bitstream.Writer, s string) error {
	v := new(big.Int)
	if s != "" {
		if !ai.IsNumeric(s) {
			return errors.Errorf("%q is not numeric", s)
		}
		v.SetString(s, 10)
	}
	return w.WriteBig(v, valueBits(len(s)))
}

// readDigits reads an n digit decimal number, keeping its leading zeros.
func readDigits(r *bitstream.Reader, n int) (string, error) {
	v, err := r.ReadBig(valueBits(n))
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	s := v.Text(10)
	if len(s) > n {
		return "", errors.Errorf("decoded value %s has more than %d digits", s, n)
	}
	return strings.Repeat("0", n-len(s)) + s, nil
}

// writeChars packs s in the given encoding; it doesn't write the selector.
func writeChars(w *bitstream.Writer, enc Encoding, s string) error {
	var width int
	var alphabet string
	switch enc {
	case Digits:
		return writeDigits(w, s)
	case LowerHex:
		width, alphabet, s = nibbleBits, hexAlphabet, strings.ToUpper(s)
	case UpperHex:
		width, alphabet = nibbleBits, hexAlphabet
	case URLSafe:
		width, alphabet = 6, bitstream.Alphabet
	case ASCII:
		width = 7
	default:
		return errors.Errorf("unknown encoding %d", enc)
	}

	for i := 0; i < len(s); i++ {
		idx := int(s[i])
		if alphabet != "" {
			idx = strings.IndexByte(alphabet, s[i])
		}
		if idx < 0 || idx >= 1<<uint(width) {
			return errors.Errorf("character %q of %q can't be encoded as %s",
				s[i], s, enc)
		}
		if err := w.WriteBits(uint64(idx), width); err != nil {
			return err
		}
	}
	return nil
}

// readChars unpacks n characters in the given encoding.
func readChars(r *bitstream.Reader, enc Encoding, n int) (string, error) {
	var width int
	var alphabet string
	switch enc {
	case Digits:
		return readDigits(r, n)
	case LowerHex, UpperHex:
		width, alphabet = nibbleBits, hexAlphabet
	case URLSafe:
		width, alphabet = 6, bitstream.Alphabet
	case ASCII:
		width = 7
	default:
		return "", errors.Errorf("encoding selector %d is reserved", enc)
	}

	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		v, err := r.ReadBits(width)
		if err != nil {
			return "", err
		}
		if alphabet != "" {
			sb.WriteByte(alphabet[v])
		} else {
			sb.WriteByte(byte(v))
		}
	}
	if enc == LowerHex {
		return strings.ToLower(sb.String()), nil
	}
	return sb.String(), nil
}

// writeEncoded writes the encoding selector, then the length (when
// lenWidth > 0), then the packed characters of s.
func writeEncoded(w *bitstream.Writer, s string, lenWidth int) error {
	enc := SelectEncoding(s)
	if err := w.WriteBits(uint64(enc), encodingBits); err != nil {
		return err
	}
	if lenWidth > 0 {
		if err := w.WriteBits(uint64(len(s)), lenWidth); err != nil {
			return errors.Wrapf(err, "%q is too long", s)
		}
	}
	return writeChars(w, enc, s)
}

// readEncoded is the inverse of writeEncoded. If lenWidth is 0, the value is
// exactly n characters; otherwise its length is read and must be at most n.
func readEncoded(r *bitstream.Reader, n, lenWidth int) (string, error) {
	sel, err := r.ReadBits(encodingBits)
	if err != nil {
		return "", err
	}
	if lenWidth > 0 {
		l, err := r.ReadBits(lenWidth)
		if err != nil {
			return "", err
		}
		if int(l) > n {
			return "", errors.Errorf("decoded length %d exceeds the maximum %d", l, n)
		}
		n = int(l)
	}
	return readChars(r, Encoding(sel), n)
}
