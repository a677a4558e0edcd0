/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"encoding/hex"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/bitstream"
	"github.com/pkg/errors"
	"strconv"
)

const (
	SGTIN96Header    = 0x30
	SGTIN198Header   = 0x36
	SGTIN96NumBytes  = 12
	SGTIN198NumBytes = 25 // 198 bits, padded to a whole byte

	headerBits    = 8
	filterBits    = 3
	partitionBits = 3
	serial96Bits  = 38
)

// scheme is one SGTIN binary encoding.
type scheme struct {
	name   string
	nbytes int
	nbits  int
	serial func(r *bitstream.Reader) (string, error)
}

var schemes = map[byte]scheme{
	SGTIN96Header: {
		name: "SGTIN-96", nbytes: SGTIN96NumBytes, nbits: 96,
		serial: func(r *bitstream.Reader) (string, error) {
			v, err := r.ReadBits(serial96Bits)
			return strconv.FormatUint(v, 10), err
		},
	},
	SGTIN198Header: {
		name: "SGTIN-198", nbytes: SGTIN198NumBytes, nbits: 198,
		serial: func(r *bitstream.Reader) (string, error) {
			s, n, charAfterNull, err := readASCII(r, MaxSerialLength)
			if err != nil || charAfterNull {
				// keep the whole thing so ValidateRanges can reject it
				return s, err
			}
			return s[:n], nil
		},
	},
}

// partition is how one partition value divides the 44 bits shared by the
// company prefix and the indicator with item reference.
type partition struct {
	prefixBits int
	iirBits    int
	// itemRefs is 10^p. The indicator is the iir field's value divided by it.
	itemRefs  int
	maxPrefix int
}

var partitions = [...]partition{
	{prefixBits: 40, iirBits: 4, itemRefs: 1, maxPrefix: 999999999999},
	{prefixBits: 37, iirBits: 7, itemRefs: 10, maxPrefix: 99999999999},
	{prefixBits: 34, iirBits: 10, itemRefs: 100, maxPrefix: 9999999999},
	{prefixBits: 30, iirBits: 14, itemRefs: 1000, maxPrefix: 999999999},
	{prefixBits: 27, iirBits: 17, itemRefs: 10000, maxPrefix: 99999999},
	{prefixBits: 24, iirBits: 20, itemRefs: 100000, maxPrefix: 9999999},
	{prefixBits: 20, iirBits: 24, itemRefs: 1000000, maxPrefix: 999999},
}

// DecodeSGTIN splits SGTIN-96 or SGTIN-198 tag data into an SGTIN. The first
// bit of b is the first bit of the EPC; SGTIN-198 data ends with 2 bits of
// padding.
//
// It fails only if the data can't be split: it's empty, has an unknown header
// or the wrong length, or has a partition above 6. Field values aren't checked;
// use ValidateRanges for that.
func DecodeSGTIN(b []byte) (SGTIN, error) {
	if len(b) == 0 {
		return SGTIN{}, errors.New("no EPC data")
	}
	sch, ok := schemes[b[0]]
	if !ok {
		return SGTIN{}, errors.Errorf("header %#02X is neither SGTIN-96 (%#02X) "+
			"nor SGTIN-198 (%#02X)", b[0], SGTIN96Header, SGTIN198Header)
	}
	if len(b) != sch.nbytes {
		return SGTIN{}, errors.Errorf("%s is %d bytes, but this EPC has %d",
			sch.name, sch.nbytes, len(b))
	}

	r := bitstream.NewReader(b, sch.nbits)
	var header, filter, part, prefix, iir uint64
	if err := readAll(r,
		field{&header, headerBits},
		field{&filter, filterBits},
		field{&part, partitionBits}); err != nil {
		return SGTIN{}, err
	}
	if part >= uint64(len(partitions)) {
		return SGTIN{}, errors.Errorf("%s partition %d is not in [0, %d]",
			sch.name, part, len(partitions)-1)
	}
	p := partitions[part]
	if err := readAll(r, field{&prefix, p.prefixBits}, field{&iir, p.iirBits}); err != nil {
		return SGTIN{}, err
	}
	serial, err := sch.serial(r)
	if err != nil {
		return SGTIN{}, errors.Wrapf(err, "%s serial", sch.name)
	}

	return SGTIN{
		filter:        FilterValue(filter),
		partition:     int(part),
		companyPrefix: int(prefix),
		indicator:     int(iir) / p.itemRefs,
		itemRef:       int(iir) % p.itemRefs,
		serial:        serial,
	}, nil
}

// field is a destination for a fixed-width read.
type field struct {
	dst   *uint64
	width int
}

func readAll(r *bitstream.Reader, fields ...field) error {
	for _, f := range fields {
		v, err := r.ReadBits(f.width)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

// DecodeSGTINString decodes hex-encoded tag data with DecodeSGTIN. Field
// values aren't checked.
func DecodeSGTINString(epc string) (SGTIN, error) {
	b, err := hex.DecodeString(epc)
	if err != nil {
		return SGTIN{}, errors.Wrapf(err, "EPC %q is not hex", epc)
	}
	return DecodeSGTIN(b)
}

// decodeValid decodes hex tag data and checks its fields.
func decodeValid(epc string) (SGTIN, error) {
	s, err := DecodeSGTINString(epc)
	if err != nil {
		return SGTIN{}, err
	}
	if err := s.ValidateRanges(); err != nil {
		return SGTIN{}, errors.Wrapf(err, "EPC %s", epc)
	}
	return s, nil
}

// SGTINToGTIN14 returns the GTIN-14 of hex SGTIN tag data.
func SGTINToGTIN14(epc string) (string, error) {
	s, err := decodeValid(epc)
	if err != nil {
		return "", err
	}
	return s.GTIN(), nil
}

// SGTINToPureURI returns the Pure Identity URI of hex SGTIN tag data.
func SGTINToPureURI(epc string) (string, error) {
	s, err := decodeValid(epc)
	if err != nil {
		return "", err
	}
	return s.URI(), nil
}

// SGTINToValues returns the (01) and (21) values of hex SGTIN tag data, ready
// for an element string or Digital Link.
func SGTINToValues(epc string) (ai.Values, error) {
	s, err := decodeValid(epc)
	if err != nil {
		return nil, err
	}
	return s.Values(), nil
}
