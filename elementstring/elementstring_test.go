/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elementstring

import (
	"fmt"
	"github.com/google/go-cmp/cmp"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
	"testing"
)

const (
	gtin = "09506000134352"
	gs   = GroupSeparator
)

func TestParse(t *testing.T) {
	for i, tt := range []struct {
		name, input string
		values      ai.Values
	}{
		{"bracketed", "(01)09506000134352(3103)000189",
			ai.Values{"01": gtin, "3103": "000189"}},
		{"bracketed variable", "(01)09506000134352(10)ABC(21)X1",
			ai.Values{"01": gtin, "10": "ABC", "21": "X1"}},
		{"bracketed pads GTIN", "(01)9506000134352",
			ai.Values{"01": gtin}},
		{"concatenated fixed", "01095060001343523103000189",
			ai.Values{"01": gtin, "3103": "000189"}},
		{"concatenated variable", "0109506000134352" + "17201231" + "10ABC" + gs + "21X1",
			ai.Values{"01": gtin, "17": "201231", "10": "ABC", "21": "X1"}},
		{"separator after fixed", "0109506000134352" + gs + "10ABC",
			ai.Values{"01": gtin, "10": "ABC"}},
		{"four digit variable", "8006095060001343520102" + gs + "21X1",
			ai.Values{"8006": "095060001343520102", "21": "X1"}},
		{"GS1-128", "]C1" + "0109506000134352" + "10ABC",
			ai.Values{"01": gtin, "10": "ABC"}},
		{"DataMatrix", "]d2" + "00106141412345678908",
			ai.Values{"00": "106141412345678908"}},
		{"QR bracketed", "]Q3(00)106141412345678908",
			ai.Values{"00": "106141412345678908"}},
		{"identical duplicate", "(01)09506000134352(10)ABC(10)ABC",
			ai.Values{"01": gtin, "10": "ABC"}},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			values := w.ShouldHaveResult(Parse(tt.input)).(ai.Values)
			if diff := cmp.Diff(tt.values, values); diff != "" {
				t.Errorf("parsed values differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFailures(t *testing.T) {
	for i, tt := range []struct {
		name, input string
	}{
		{"empty", ""},
		{"only symbology", "]C1"},
		{"unknown bracketed AI", "(01)09506000134352(9876)X"},
		{"conflicting duplicate", "(01)09506000134352(10)ABC(10)DEF"},
		{"unknown concatenated AI", "0109506000134352" + "05ABC"},
		{"bad syntax", "(01)0950600013435X"},
		{"9 digit GTIN", "(01)123456784"},
		{"10 digit GTIN", "(01)1234567895"},
		{"11 digit GTIN", "(01)12345678903"},
		{"truncated fixed", "3103000"},
		{"empty record", "10ABC" + gs + gs + "21X"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			_, err := Parse(tt.input)
			w.ShouldFail(err)
			w.Logf("%v", err)
		})
	}
}

func TestParseCheckDigit(t *testing.T) {
	w := expect.WrapT(t)

	_, err := Parse("(01)09506000134353")
	var cde *ai.CheckDigitError
	w.StopOnMismatch().ShouldBeTrue(errors.As(err, &cde))
	w.ShouldBeEqual(cde.AI, "01")
	w.ShouldBeEqual(cde.Expected, 2)
	w.ShouldBeEqual(cde.Position, 14)
}

func TestParseUnknownAI(t *testing.T) {
	w := expect.WrapT(t)

	_, err := Parse("(9876)X")
	var pe *ai.ParseError
	w.ShouldBeTrue(errors.As(err, &pe))
}

func TestFormat(t *testing.T) {
	for i, tt := range []struct {
		name                 string
		values               ai.Values
		bracketed, unbracket string
	}{
		{"gtin and weight", ai.Values{"01": gtin, "3103": "000189"},
			"(01)09506000134352(3103)000189",
			"01095060001343523103000189"},
		{"qualifiers in declared order", ai.Values{"01": gtin, "21": "X1", "10": "ABC", "17": "201231"},
			"(01)09506000134352(10)ABC(21)X1(17)201231",
			"0109506000134352" + "17201231" + "10ABC" + gs + "21X1"},
		{"padded GTIN", ai.Values{"01": "9506000134352"},
			"(01)09506000134352",
			"0109506000134352"},
		{"identifier without predefined length", ai.Values{"8006": "095060001343520102", "21": "X1"},
			"(8006)095060001343520102(21)X1",
			"8006095060001343520102" + gs + "21X1"},
		{"SSCC", ai.Values{"00": "106141412345678908"},
			"(00)106141412345678908",
			"00106141412345678908"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)

			s := w.ShouldHaveResult(Format(tt.values, true)).(string)
			w.ShouldBeEqual(s, tt.bracketed)
			u := w.ShouldHaveResult(Format(tt.values, false)).(string)
			w.ShouldBeEqual(u, tt.unbracket)

			// both forms parse back to the same values
			want := tt.values.Clone()
			want["01"] = ai.PadGTIN("01", want["01"])
			if _, ok := tt.values["01"]; !ok {
				delete(want, "01")
			}
			for _, input := range []string{s, u} {
				values := w.ShouldHaveResult(Parse(input)).(ai.Values)
				if diff := cmp.Diff(want, values); diff != "" {
					t.Errorf("round trip of %q differs (-want +got):\n%s", input, diff)
				}
			}
		})
	}
}

func TestFormatFailures(t *testing.T) {
	w := expect.WrapT(t)

	_, err := Format(ai.Values{"10": "ABC"}, true)
	var se *ai.StructureError
	w.ShouldBeTrue(errors.As(err, &se))

	_, err = Format(ai.Values{"01": gtin, "8006": "095060001343520102"}, true)
	w.ShouldBeTrue(errors.As(err, &se))

	_, err = Format(ai.Values{"01": "09506000134353"}, true)
	var cde *ai.CheckDigitError
	w.ShouldBeTrue(errors.As(err, &cde))

	_, err = Format(ai.Values{"01": gtin, "05": "X"}, false)
	var pe *ai.ParseError
	w.ShouldBeTrue(errors.As(err, &pe))

	// '(' is valid in a batch, but only the unbracketed form can carry it
	withParen := ai.Values{"01": gtin, "10": "A(B)"}
	_, err = Format(withParen, true)
	pe = nil
	w.ShouldBeTrue(errors.As(err, &pe))
	s := w.ShouldHaveResult(Format(withParen, false)).(string)
	w.ShouldBeEqual(w.ShouldHaveResult(Parse(s)).(ai.Values), withParen)
}

func TestFormatUnbracketedWithoutIdentifier(t *testing.T) {
	w := expect.WrapT(t)

	s := w.ShouldHaveResult(Format(ai.Values{"10": "ABC", "3103": "000189"}, false)).(string)
	w.ShouldBeEqual(s, "3103000189"+"10ABC")
}

func TestPredefinedLength(t *testing.T) {
	w := expect.WrapT(t)

	l, ok := PredefinedLength("3103")
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(l, 10)

	_, ok = PredefinedLength("10")
	w.ShouldBeFalse(ok)
	_, ok = PredefinedLength("8006")
	w.ShouldBeFalse(ok)
	_, ok = PredefinedLength("0")
	w.ShouldBeFalse(ok)
}
