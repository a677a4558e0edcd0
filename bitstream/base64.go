/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitstream

import (
	"encoding/base64"
	"github.com/pkg/errors"
	"strings"
)

// Alphabet is the URL-safe base64 alphabet; each character encodes 6 bits.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// IsBase64 returns true if s is non-empty and uses only the URL-safe base64
// alphabet, without padding.
func IsBase64(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}

func encodeBase64(data []byte, nbits int) string {
	nchars := (nbits + 5) / 6
	return base64.RawURLEncoding.EncodeToString(data)[:nchars]
}

// FromBase64 returns a Reader over the 6*len(s) bits encoded by s.
func FromBase64(s string) (*Reader, error) {
	if !IsBase64(s) {
		return nil, errors.Errorf("%q is not URL-safe base64", s)
	}
	nbits := 6 * len(s)
	// 'A' is six 0 bits; padding to a whole number of quads keeps every
	// character's bits.
	if r := len(s) % 4; r != 0 {
		s += strings.Repeat("A", 4-r)
	}
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %q", s)
	}
	return NewReader(data, nbits), nil
}

// ParseBinary returns a Writer holding the bits in a string of '0' and '1'.
func ParseBinary(bits string) (*Writer, error) {
	w := &Writer{}
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			w.writeBit(0)
		case '1':
			w.writeBit(1)
		default:
			return nil, errors.Errorf("illegal character %q at index %d "+
				"of binary string", bits[i], i)
		}
	}
	return w, nil
}

// BinaryToBase64 converts a string of '0' and '1' characters to URL-safe
// base64, padding the final 6 bit group with zeros.
func BinaryToBase64(bits string) (string, error) {
	w, err := ParseBinary(bits)
	if err != nil {
		return "", err
	}
	return w.Base64(), nil
}

// Base64ToBinary converts URL-safe base64 to a string of '0' and '1'
// characters, 6 per input character.
func Base64ToBinary(s string) (string, error) {
	r, err := FromBase64(s)
	if err != nil {
		return "", err
	}
	w := &Writer{}
	for r.Remaining() > 0 {
		v, _ := r.ReadBits(1)
		w.writeBit(uint(v))
	}
	return w.String(), nil
}
