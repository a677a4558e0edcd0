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
	"sort"
)

// Options control how values are compressed.
type Options struct {
	// Optimize replaces groups of AIs that appear together with a super-code.
	Optimize bool
}

// Encode compresses AI values, followed by any foreign (non-GS1) key/value
// pairs, into a bit stream.
//
// Every AI must be in the registry and its value must match the AI's format;
// GTINs shorter than 14 digits are zero padded first. Keys are emitted in a
// deterministic order: super-codes in the order they were chosen, then the
// remaining AIs sorted, then foreign pairs sorted by key. Foreign keys may only
// use the URL-safe base64 alphabet, and foreign keys and values are limited to
// 127 characters.
func Encode(values ai.Values, other map[string]string, opts Options) (*bitstream.Writer, error) {
	codes := values.Codes()
	for _, code := range codes {
		if _, ok := ai.Lookup(code); !ok {
			return nil, &ai.ParseError{Input: code, Reason: "unknown AI"}
		}
	}

	rest := codes
	var chosen []string
	if opts.Optimize {
		chosen, rest = selectOptimizations(codes)
	}

	w := &bitstream.Writer{}
	for _, sc := range chosen {
		if err := writeKey(w, sc); err != nil {
			return nil, err
		}
		for _, code := range optByCode[sc].AIs {
			if err := encodeValue(w, code, values[code]); err != nil {
				return nil, err
			}
		}
	}

	for _, code := range rest {
		if err := writeKey(w, code); err != nil {
			return nil, err
		}
		if err := encodeValue(w, code, values[code]); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(other))
	for k := range other {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := writeForeign(w, k, other[k]); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// EncodeBase64 is like Encode, but returns the stream as URL-safe base64.
func EncodeBase64(values ai.Values, other map[string]string, opts Options) (string, error) {
	w, err := Encode(values, other, opts)
	if err != nil {
		return "", err
	}
	return w.Base64(), nil
}

// writeKey writes each hex digit of an AI code or super-code as a nibble.
func writeKey(w *bitstream.Writer, key string) error {
	for i := 0; i < len(key); i++ {
		v, ok := nibble(key[i])
		if !ok {
			return errors.Errorf("key %q is not hexadecimal", key)
		}
		if err := w.WriteBits(v, nibbleBits); err != nil {
			return err
		}
	}
	return nil
}

// encodeValue splits value into the AI's segments and writes each in turn.
func encodeValue(w *bitstream.Writer, code, value string) error {
	d, ok := ai.Lookup(code)
	if !ok {
		return &ai.ParseError{Input: code, Reason: "unknown AI"}
	}
	value = ai.PadGTIN(code, value)
	if err := ai.VerifySyntax(code, value); err != nil {
		return err
	}

	remaining := value
	for _, seg := range d.Segments {
		var part string
		if seg.Fixed {
			if len(remaining) < seg.Length {
				return &ai.SyntaxError{AI: code, Value: value}
			}
			part, remaining = remaining[:seg.Length], remaining[seg.Length:]
		} else {
			n := len(remaining)
			if n > seg.Length {
				n = seg.Length
			}
			part, remaining = remaining[:n], remaining[n:]
		}

		var err error
		switch {
		case seg.Class == ai.Numeric && seg.Fixed:
			err = writeDigits(w, part)
		case seg.Class == ai.Numeric:
			if err = w.WriteBits(uint64(len(part)), lengthBits(seg.Length)); err == nil {
				err = writeDigits(w, part)
			}
		case seg.Fixed:
			err = writeEncoded(w, part, 0)
		default:
			err = writeEncoded(w, part, lengthBits(seg.Length))
		}
		if err != nil {
			return errors.Wrapf(err, "unable to encode AI (%s) segment %s", code, seg)
		}
	}

	if remaining != "" {
		return &ai.SyntaxError{AI: code, Value: value}
	}
	return nil
}

// writeForeign writes the foreign flag, the key's length and characters, then
// the value with its encoding selector and length.
func writeForeign(w *bitstream.Writer, key, value string) error {
	if key == "" || !bitstream.IsBase64(key) {
		return errors.Errorf("foreign key %q must only use the URL-safe "+
			"base64 alphabet", key)
	}
	if err := w.WriteBits(foreignFlag, nibbleBits); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(len(key)), foreignLenBits); err != nil {
		return errors.Wrapf(err, "foreign key %q is too long", key)
	}
	if err := writeChars(w, URLSafe, key); err != nil {
		return err
	}
	return errors.Wrapf(writeEncoded(w, value, foreignLenBits),
		"unable to encode foreign value for %q", key)
}
