/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package bitstream

import (
	"encoding/binary"
	"fmt"
	"sync"
)

type alignment uint8

const (
	ByteSize = 8
	ByteMask = (1 << ByteSize) - 1

	// MaxFieldWidth is the widest field that fits in a uint64.
	MaxFieldWidth = 64

	srcAligned = alignment(iota)
	srcBiasPrev
	srcBiasNext
)

// field locates a run of bits within a byte slice.
//
// Bit 0 is the highest-order bit of byte 0; bits further "right" in the
// stream come from higher indexes. Extracting a field right-aligns its bits
// in the destination, so a 3 bit field reads as a value in [0, 7].
type field struct {
	byteStart, srcLen, dstLen int
	bias                      alignment
	rshift, mask              uint8
}

func ifAligned(size, ifYes, ifNo int) int {
	if size%ByteSize == 0 {
		return ifYes
	}
	return ifNo
}

// newField returns a field of width bits starting at bit start.
func newField(start, width int) field {
	if start < 0 || width < 1 {
		panic(fmt.Sprintf("illegal start (%d) or width (%d)", start, width))
	}

	f := field{byteStart: start / ByteSize}
	f.dstLen = width/ByteSize + ifAligned(width, 0, 1)
	srcEndByte := ((start + width) / ByteSize) - ifAligned(start+width, 1, 0)
	f.srcLen = srcEndByte - f.byteStart + 1
	srcEndOffset := (start + width - 1) % ByteSize
	f.rshift = uint8(ByteSize - srcEndOffset - 1)
	f.mask = byte(ifAligned(width, ByteMask, (1<<uint(width%ByteSize))-1))

	switch {
	case f.rshift == 0:
		f.bias = srcAligned
	case f.srcLen == f.dstLen:
		f.bias = srcBiasPrev
	default:
		f.bias = srcBiasNext
	}
	return f
}

// bufferPool maintains a pool of reusable 8 byte slices for uint64 reads.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 8)
	},
}

// uint64 extracts the field from src and interprets it as a big endian value.
// The field must be no wider than MaxFieldWidth.
func (f field) uint64(src []byte) uint64 {
	buff := bufferPool.Get().([]byte)
	defer bufferPool.Put(buff)
	binary.BigEndian.PutUint64(buff, 0)
	f.extractTo(buff[8-f.dstLen:], src)
	return binary.BigEndian.Uint64(buff)
}

// bytes extracts the field from src into a new, right-aligned byte slice.
func (f field) bytes(src []byte) []byte {
	dst := make([]byte, f.dstLen)
	f.extractTo(dst, src)
	return dst
}

func (f field) extractTo(dst, src []byte) {
	if len(src) < f.srcLen+f.byteStart {
		panic(fmt.Sprintf("cannot extract %d bytes from source[%d:%d], "+
			"as it only has %d total bytes",
			f.srcLen, f.byteStart, f.byteStart+f.srcLen, len(src)))
	}

	switch f.bias {
	case srcAligned:
		copy(dst, src[f.byteStart:f.byteStart+f.dstLen])
	case srcBiasPrev:
		dst[0] = src[f.byteStart] >> f.rshift
		for i := 1; i < f.dstLen; i++ {
			// previous byte shifts up; current byte shifts down
			dst[i] = src[i+f.byteStart-1]<<(ByteSize-f.rshift) |
				src[i+f.byteStart]>>f.rshift
		}
	case srcBiasNext:
		for i := 0; i < f.dstLen; i++ {
			// current byte shifts up; next byte shifts down
			dst[i] = src[i+f.byteStart]<<(ByteSize-f.rshift) |
				src[i+f.byteStart+1]>>f.rshift
		}
	}
	dst[0] &= f.mask
}
