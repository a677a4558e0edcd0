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
	"strings"
)

// keyBits is the size of the two nibbles that start every key.
const keyBits = 2 * nibbleBits

// Decode reads AI values and foreign key/value pairs from a compressed bit
// stream until no more than a single key's worth of bits remain; anything left
// is treated as padding.
//
// Decoded values keep their leading zeros, but they are not validated.
func Decode(r *bitstream.Reader) (ai.Values, map[string]string, error) {
	values := ai.Values{}
	other := map[string]string{}

	for r.Remaining() > keyBits {
		start := r.Pos()
		h1, err := r.ReadBits(nibbleBits)
		if err != nil {
			return nil, nil, err
		}

		if h1 == foreignFlag {
			k, v, err := readForeign(r)
			if err != nil {
				return nil, nil, err
			}
			if _, dup := other[k]; dup {
				return nil, nil, errors.Errorf("foreign key %q appears more than once", k)
			}
			other[k] = v
			continue
		}

		h2, err := r.ReadBits(nibbleBits)
		if err != nil {
			return nil, nil, err
		}

		var codes []string
		if h1 <= 9 && h2 <= 9 {
			code, err := readCode(r, start, h1, h2)
			if err != nil {
				return nil, nil, err
			}
			codes = []string{code}
		} else {
			sc := string([]byte{hexAlphabet[h1], hexAlphabet[h2]})
			o, ok := optByCode[sc]
			if !ok {
				return nil, nil, &UnsupportedCodeError{Code: sc, Offset: start}
			}
			codes = o.AIs
		}

		for _, code := range codes {
			if _, dup := values[code]; dup {
				return nil, nil, errors.Errorf("AI (%s) appears more than once", code)
			}
			v, err := decodeValue(r, code)
			if err != nil {
				return nil, nil, err
			}
			values[code] = v
		}
	}

	return values, other, nil
}

// DecodeBase64 decodes a URL-safe base64 compressed stream.
func DecodeBase64(s string) (ai.Values, map[string]string, error) {
	r, err := bitstream.FromBase64(s)
	if err != nil {
		return nil, nil, err
	}
	return Decode(r)
}

// readCode reads the rest of an AI code whose first two digits are h1 and h2.
func readCode(r *bitstream.Reader, start int, h1, h2 uint64) (string, error) {
	code := []byte{hexAlphabet[h1], hexAlphabet[h2]}
	l, ok := ai.PrefixLength(string(code))
	if !ok {
		return "", &UnsupportedCodeError{Code: string(code), Offset: start}
	}

	for len(code) < l {
		h, err := r.ReadBits(nibbleBits)
		if err != nil {
			return "", err
		}
		code = append(code, hexAlphabet[h])
		if h > 9 {
			return "", &UnsupportedCodeError{Code: string(code), Offset: start}
		}
	}

	if _, ok := ai.Lookup(string(code)); !ok {
		return "", &UnsupportedCodeError{Code: string(code), Offset: start}
	}
	return string(code), nil
}

// decodeValue reads each of the AI's segments and joins them.
func decodeValue(r *bitstream.Reader, code string) (string, error) {
	d, _ := ai.Lookup(code)

	var sb strings.Builder
	for _, seg := range d.Segments {
		var part string
		var err error
		switch {
		case seg.Class == ai.Numeric && seg.Fixed:
			part, err = readDigits(r, seg.Length)
		case seg.Class == ai.Numeric:
			var n uint64
			if n, err = r.ReadBits(lengthBits(seg.Length)); err != nil {
				break
			}
			if int(n) > seg.Length {
				err = errors.Errorf("decoded length %d exceeds the maximum %d",
					n, seg.Length)
				break
			}
			part, err = readDigits(r, int(n))
		case seg.Fixed:
			part, err = readEncoded(r, seg.Length, 0)
		default:
			part, err = readEncoded(r, seg.Length, lengthBits(seg.Length))
		}
		if err != nil {
			return "", errors.Wrapf(err, "unable to decode AI (%s) segment %s", code, seg)
		}
		sb.WriteString(part)
	}
	return sb.String(), nil
}

// readForeign reads a foreign pair after its flag nibble.
func readForeign(r *bitstream.Reader) (string, string, error) {
	n, err := r.ReadBits(foreignLenBits)
	if err != nil {
		return "", "", err
	}
	if n == 0 {
		return "", "", errors.New("foreign key is empty")
	}
	key, err := readChars(r, URLSafe, int(n))
	if err != nil {
		return "", "", errors.Wrap(err, "unable to decode foreign key")
	}
	value, err := readEncoded(r, 1<<foreignLenBits-1, foreignLenBits)
	if err != nil {
		return "", "", errors.Wrapf(err, "unable to decode foreign value for %q", key)
	}
	return key, value, nil
}
