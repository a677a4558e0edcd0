/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package dlink

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"net/url"
	"strings"
)

// reserved holds the characters that must be percent-encoded in Digital Link
// path segments and query values.
const reserved = "#/%&+,!()*':;<=>?"

const upperHex = "0123456789ABCDEF"

// Escape percent-encodes the reserved Digital Link characters in s, along with
// spaces, control characters, and any byte outside of 7-bit ASCII.
func Escape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c >= 0x7F || strings.IndexByte(reserved, c) >= 0 {
			sb.WriteByte('%')
			sb.WriteByte(upperHex[c>>4])
			sb.WriteByte(upperHex[c&0xF])
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Unescape reverses percent-encoding. Unlike form decoding, '+' is left as-is.
func Unescape(s string) (string, error) {
	u, err := url.PathUnescape(s)
	if err != nil {
		return "", &ai.ParseError{Input: s, Reason: "invalid percent-encoding"}
	}
	return u, nil
}
