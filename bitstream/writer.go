/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitstream

import (
	"github.com/pkg/errors"
	"math/big"
	"strings"
)

// Writer accumulates bits, most significant first. The zero value is ready
// to use.
type Writer struct {
	buf []byte
	n   int
}

// Len returns the number of bits written.
func (w *Writer) Len() int { return w.n }

func (w *Writer) writeBit(b uint) {
	if w.n%ByteSize == 0 {
		w.buf = append(w.buf, 0)
	}
	if b != 0 {
		w.buf[w.n/ByteSize] |= 1 << uint(ByteSize-1-w.n%ByteSize)
	}
	w.n++
}

// WriteBits appends the low width bits of v. It panics if width is more than
// MaxFieldWidth, and returns an error if v doesn't fit in width bits.
func (w *Writer) WriteBits(v uint64, width int) error {
	if width < 0 || width > MaxFieldWidth {
		panic(errors.Errorf("illegal bit width %d", width))
	}
	if width < MaxFieldWidth && v>>uint(width) != 0 {
		return errors.Errorf("value %d does not fit in %d bits", v, width)
	}
	for i := width - 1; i >= 0; i-- {
		w.writeBit(uint(v>>uint(i)) & 1)
	}
	return nil
}

// WriteBig appends v as an unsigned integer of exactly width bits.
func (w *Writer) WriteBig(v *big.Int, width int) error {
	if v.Sign() < 0 {
		return errors.Errorf("cannot write negative value %s", v)
	}
	if v.BitLen() > width {
		return errors.Errorf("value %s needs %d bits, but only %d are allowed",
			v, v.BitLen(), width)
	}
	for i := width - 1; i >= 0; i-- {
		w.writeBit(v.Bit(i))
	}
	return nil
}

// Bytes returns a copy of the written bits, with the final byte padded with
// trailing zeros.
func (w *Writer) Bytes() []byte {
	return append([]byte(nil), w.buf...)
}

// Reader returns a Reader over the bits written so far.
func (w *Writer) Reader() *Reader {
	return NewReader(w.Bytes(), w.n)
}

// String returns the written bits as a string of '0' and '1' characters.
func (w *Writer) String() string {
	var sb strings.Builder
	sb.Grow(w.n)
	for i := 0; i < w.n; i++ {
		if w.buf[i/ByteSize]&(1<<uint(ByteSize-1-i%ByteSize)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Base64 returns the written bits in the URL-safe base64 alphabet, one
// character per 6 bits, with the final character padded by trailing zeros.
func (w *Writer) Base64() string {
	return encodeBase64(w.buf, w.n)
}
