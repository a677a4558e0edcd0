/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"testing"
)

func TestRegistrySize(t *testing.T) {
	w := expect.WrapT(t)

	counts := map[Kind]int{}
	for _, d := range Definitions() {
		counts[d.Kind]++
	}
	w.As("definitions").ShouldBeEqual(len(Definitions()), 476)
	w.As("identifiers").ShouldBeEqual(counts[Identifier], 14)
	w.As("qualifiers").ShouldBeEqual(counts[Qualifier], 6)
	w.As("data attributes").ShouldBeEqual(counts[DataAttribute], 456)
}

func TestLookup(t *testing.T) {
	w := expect.WrapT(t)

	gtin, ok := Lookup("01")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(gtin.Kind, Identifier)
	w.ShouldBeEqual(gtin.ShortCode, "gtin")
	w.ShouldBeEqual(gtin.CheckDigit, LastDigit)
	w.ShouldBeEqual(gtin.Qualifiers, []string{"22", "10", "21"})
	w.ShouldBeTrue(gtin.HasQualifier("21"))
	w.ShouldBeFalse(gtin.HasQualifier("17"))
	w.ShouldBeEqual(gtin.MaxLength(), 14)

	grai, ok := Lookup("8003")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(grai.CheckDigit, CheckDigit(14))
	w.ShouldBeEqual(grai.Segments, []Segment{n(14), xv(16)})

	iban, ok := Lookup("8007")
	w.StopOnMismatch().ShouldBeTrue(ok)
	w.ShouldBeEqual(iban.Segments, []Segment{xv(34)})

	_, ok = Lookup("9999")
	w.ShouldBeFalse(ok)
	_, ok = Lookup("")
	w.ShouldBeFalse(ok)
}

func TestIsKind(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeTrue(IsKind("00", Identifier))
	w.ShouldBeTrue(IsKind("10", Qualifier))
	w.ShouldBeTrue(IsKind("254", Qualifier))
	w.ShouldBeTrue(IsKind("3103", DataAttribute))
	w.ShouldBeFalse(IsKind("3103", Identifier))
	w.ShouldBeFalse(IsKind("foo", DataAttribute))
}

func TestPrefixLength(t *testing.T) {
	for i, tt := range []struct {
		prefix string
		length int
		ok     bool
	}{
		{"00", 2, true},
		{"01", 2, true},
		{"25", 3, true},
		{"41", 3, true},
		{"31", 4, true},
		{"70", 4, true},
		{"80", 4, true},
		{"05", 0, false},
		{"99", 2, true},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.prefix), func(t *testing.T) {
			w := expect.WrapT(t)
			l, ok := PrefixLength(tt.prefix)
			w.ShouldBeEqual(ok, tt.ok)
			w.ShouldBeEqual(l, tt.length)
		})
	}
}

func TestCodesOfLength(t *testing.T) {
	w := expect.WrapT(t)

	total := 0
	for l := 2; l <= 4; l++ {
		codes := CodesOfLength(l)
		total += len(codes)
		for i, c := range codes {
			w.As(c).ShouldBeEqual(len(c), l)
			if i > 0 {
				w.As(c).ShouldBeTrue(codes[i-1] < c)
			}
		}
	}
	w.ShouldBeEqual(total, len(Definitions()))
	w.ShouldBeEqual(CodesOfLength(2)[0], "00")
	w.ShouldBeEqual(len(CodesOfLength(1)), 0)
	w.ShouldBeEqual(len(CodesOfLength(5)), 0)
}

func TestShortCodes(t *testing.T) {
	for i, tt := range []struct{ name, code string }{
		{"sscc", "00"}, {"gtin", "01"}, {"lot", "10"}, {"exp", "17"},
		{"ser", "21"}, {"cpv", "22"}, {"gdti", "253"}, {"glnx", "254"},
		{"gcn", "255"}, {"ginc", "401"}, {"gsin", "402"}, {"gln", "414"},
		{"payto", "415"}, {"expdt", "7003"}, {"grai", "8003"},
		{"giai", "8004"}, {"itip", "8006"}, {"cpid", "8010"},
		{"cpsn", "8011"}, {"gsrnp", "8017"}, {"gsrn", "8018"}, {"srin", "8019"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			code, ok := FromShortCode(tt.name)
			w.ShouldBeTrue(ok)
			w.ShouldBeEqual(code, tt.code)

			name, ok := ShortCode(tt.code)
			w.ShouldBeTrue(ok)
			w.ShouldBeEqual(name, tt.name)

			code, ok = Resolve(tt.name)
			w.ShouldBeTrue(ok)
			w.ShouldBeEqual(code, tt.code)
		})
	}

	w := expect.WrapT(t)
	_, ok := FromShortCode("foo")
	w.ShouldBeFalse(ok)
	_, ok = ShortCode("3103")
	w.ShouldBeFalse(ok)
	code, ok := Resolve("3103")
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(code, "3103")
}

func TestQualifiersAreKnown(t *testing.T) {
	w := expect.WrapT(t)
	for _, d := range Definitions() {
		if len(d.Qualifiers) > 0 {
			w.As(d.AI).ShouldBeEqual(d.Kind, Identifier)
		}
		for _, q := range d.Qualifiers {
			w.As(d.AI + "/" + q).ShouldBeTrue(IsKind(q, Qualifier))
		}
	}
}
