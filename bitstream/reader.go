/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitstream

import (
	"github.com/pkg/errors"
	"math/big"
)

// ErrOverrun is returned when a read asks for more bits than remain.
var ErrOverrun = errors.New("read past the end of the bit stream")

// Reader is a forward-only cursor over a stream of bits.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	data []byte
	n    int
	pos  int
}

// NewReader returns a Reader over the first nbits of data. If nbits is larger
// than the data holds, it's reduced to 8*len(data).
func NewReader(data []byte, nbits int) *Reader {
	if max := len(data) * ByteSize; nbits > max || nbits < 0 {
		nbits = max
	}
	return &Reader{data: data, n: nbits}
}

// Len returns the total number of bits in the stream.
func (r *Reader) Len() int { return r.n }

// Pos returns the offset of the next bit to be read.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int { return r.n - r.pos }

func (r *Reader) check(width int) error {
	if width < 0 {
		return errors.Errorf("illegal width %d", width)
	}
	if width > r.Remaining() {
		return errors.Wrapf(ErrOverrun, "cannot read %d bits at offset %d; "+
			"only %d remain", width, r.pos, r.Remaining())
	}
	return nil
}

// ReadBits reads the next width bits as an unsigned, big endian value. Width
// must be no more than MaxFieldWidth. Reading 0 bits returns 0.
func (r *Reader) ReadBits(width int) (uint64, error) {
	if width > MaxFieldWidth {
		return 0, errors.Errorf("cannot read %d bits into a uint64", width)
	}
	if err := r.check(width); err != nil {
		return 0, err
	}
	if width == 0 {
		return 0, nil
	}
	v := newField(r.pos, width).uint64(r.data)
	r.pos += width
	return v, nil
}

// ReadBig reads the next width bits as an unsigned, big endian integer of any
// size.
func (r *Reader) ReadBig(width int) (*big.Int, error) {
	if err := r.check(width); err != nil {
		return nil, err
	}
	if width == 0 {
		return new(big.Int), nil
	}
	b := newField(r.pos, width).bytes(r.data)
	r.pos += width
	return new(big.Int).SetBytes(b), nil
}
