/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"math/rand"
	"strings"
	"testing"
)

func TestNewSGTIN(t *testing.T) {
	w := expect.WrapT(t)
	s, err := NewSGTIN(POS, 6, 0, 614141, 812345, "6789AB")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(s.CompanyPrefix(), "614141")
	w.ShouldBeEqual(s.ItemReference(), "812345")
	w.ShouldBeEqual(s.Indicator(), 0)
	w.ShouldBeEqual(s.Filter(), POS)
	w.ShouldBeEqual(s.GTIN(), "06141418123456")
	w.ShouldBeEqual(s.Values(), ai.Values{"01": "06141418123456", "21": "6789AB"})
	w.ShouldBeEqual(s.URI(), "urn:epc:id:sgtin:614141.0812345.6789AB")

	s, err = NewSGTIN(UnitLoad, 0, 3, 614141812345, 0, "a/b")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(s.ItemReference(), "")
	w.ShouldBeEqual(s.URI(), "urn:epc:id:sgtin:614141812345.3.a%2Fb")
}

func TestSGTIN_ValidateRanges(t *testing.T) {
	type rangeTest struct {
		name string
		s    SGTIN
	}

	ok := SGTIN{filter: POS, partition: 5, companyPrefix: 614141, itemRef: 12345, serial: "1"}
	with := func(name string, f func(s *SGTIN)) rangeTest {
		s := ok
		f(&s)
		return rangeTest{name: name, s: s}
	}

	w := expect.WrapT(t)
	w.ShouldSucceed(ok.ValidateRanges())

	for i, tt := range []rangeTest{
		with("indicator -1", func(s *SGTIN) { s.indicator = -1 }),
		with("indicator 10", func(s *SGTIN) { s.indicator = 10 }),
		with("filter 3", func(s *SGTIN) { s.filter = 3 }),
		with("filter 8", func(s *SGTIN) { s.filter = 8 }),
		with("partition 7", func(s *SGTIN) { s.partition = 7 }),
		with("partition -1", func(s *SGTIN) { s.partition = -1 }),
		with("item ref too wide", func(s *SGTIN) { s.itemRef = 100000 }),
		with("negative item ref", func(s *SGTIN) { s.itemRef = -1 }),
		with("prefix too wide", func(s *SGTIN) { s.companyPrefix = 10000000 }),
		with("empty serial", func(s *SGTIN) { s.serial = "" }),
		with("long serial", func(s *SGTIN) { s.serial = strings.Repeat("9", MaxSerialLength+1) }),
		with("serial with space", func(s *SGTIN) { s.serial = "A B" }),
		with("serial with hash", func(s *SGTIN) { s.serial = "#1" }),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			w.Logf("%+v", w.ShouldHaveError(nil, tt.s.ValidateRanges()))
		})
	}
}

func TestSGTIN_GTINCheckDigit(t *testing.T) {
	w := expect.WrapT(t)
	rng := rand.New(rand.NewSource(1))
	for partition, p := range partitions {
		for i := 0; i < 200; i++ {
			s := SGTIN{
				partition:     partition,
				indicator:     rng.Intn(10),
				companyPrefix: rng.Intn(p.maxPrefix + 1),
				itemRef:       rng.Intn(p.itemRefs),
				serial:        "0",
			}
			w.StopOnMismatch().ShouldSucceed(s.ValidateRanges())
			gtin := s.GTIN()
			w.StopOnMismatch().ShouldBeEqual(len(gtin), ai.GTINLength)
			w.StopOnMismatch().As(gtin).ShouldSucceed(ai.Validate("01", gtin))
			w.ShouldBeEqual(gtin[1:ai.GTINLength-1], s.CompanyPrefix()+s.ItemReference())
		}
	}
}

func TestParseSGTINURI_failures(t *testing.T) {
	for i, uri := range []string{
		"",
		"urn:epc:id:sgtin:",
		"urn:epc:id:sscc:0614141.1234567890",
		"urn:epc:id:sgtin:0614141.000734",
		"urn:epc:id:sgtin:0614141.00073.1",
		"urn:epc:id:sgtin:0614141.0007345.1",
		"urn:epc:id:sgtin:0614141000734..1",
		"urn:epc:id:sgtin:06141.40007345.1",
		"urn:epc:id:sgtin:0614141.A00734.1",
		"urn:epc:id:sgtin:0614141.000734.",
		"urn:epc:id:sgtin:0614141.000734.a b",
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, uri), func(t *testing.T) {
			w := expect.WrapT(t)
			_, err := ParseSGTINURI(uri)
			w.Logf("%+v", w.ShouldHaveError(nil, err))
		})
	}
}

func TestParseSGTINURI_escapes(t *testing.T) {
	w := expect.WrapT(t)
	s, err := ParseSGTINURI("urn:epc:id:sgtin:0614141.712345.A%2FB%25C")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(s.Serial(), "A/B%C")
	w.ShouldBeEqual(s.Partition(), 5)
	w.ShouldBeEqual(s.Indicator(), 7)
	w.ShouldBeEqual(s.Filter(), Other)
	w.ShouldBeEqual(s.GTIN(), "70614141123451")
}

func TestSGTIN_CanSGTIN96(t *testing.T) {
	type serialTest struct {
		serial string
		fits   bool
	}

	for i, tt := range []serialTest{
		{serial: "0", fits: true},
		{serial: "1", fits: true},
		{serial: "10", fits: true},
		{serial: "274877906943", fits: true},

		{serial: ""},
		{serial: "A1"},
		{serial: "274877906944"},
		{serial: "00"},
		{serial: "01"},
		{serial: " 0"},
		{serial: "-1"},
	} {
		t.Run(fmt.Sprintf("%02d_%q", i, tt.serial), func(t *testing.T) {
			w := expect.WrapT(t)
			err := SGTIN{serial: tt.serial}.CanSGTIN96()
			if tt.fits {
				w.ShouldSucceed(err)
				return
			}
			w.ShouldFail(err)
		})
	}
}

func TestFilterValue(t *testing.T) {
	w := expect.WrapT(t)
	for fv := FilterValue(-1); fv <= 8; fv++ {
		switch fv {
		case Other, POS, FullCase, InnerPack, UnitLoad, UnitPack:
			w.As(fv).ShouldBeTrue(fv.IsValid())
		default:
			w.As(fv).ShouldBeFalse(fv.IsValid())
		}
	}
	w.ShouldBeEqual(FullCase.String(), "Full Case")
	w.ShouldBeEqual(FilterValue(5).String(), "Reserved")
	w.ShouldBeEqual(FilterValue(9).String(), "FilterValue(9)")
}
