/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
	"strings"
	"testing"
)

func TestVerifySyntax(t *testing.T) {
	type syntaxTest struct {
		code, value string
		valid       bool
	}

	pass := func(code, value string) syntaxTest {
		return syntaxTest{code: code, value: value, valid: true}
	}

	fail := func(code, value string) syntaxTest {
		return syntaxTest{code: code, value: value}
	}

	for i, tt := range []syntaxTest{
		pass("00", "106141412345678908"),
		pass("01", "09506000134352"),
		pass("01", "9506000134352"),
		pass("01", "950600013435"),
		pass("01", "12345670"),
		pass("01", "0950600013435"),
		pass("10", "ABC-123/x_y"),
		pass("10", ""),
		pass("21", "!\"%&'()*+,-./:;<=>?_"),
		pass("3103", "000189"),
		pass("253", "4000001000005ABC"),
		pass("7007", "180101"),
		pass("7007", "180101180131"),
		pass("7230", "AB"),
		pass("8010", "ABC#-/123"),
		pass("8006", "095060001343520102"),
		pass("8007", strings.Repeat("A", 34)),

		fail("01", "09506000134"),
		fail("01", "1234567895"),
		fail("01", "1234567"),
		fail("01", "095060001343521"),
		fail("01", "0950600013435X"),
		fail("10", "ABCDEFGHIJKLMNOPQRSTU"),
		fail("10", "ABC DEF"),
		fail("21", "#"),
		fail("3103", "18900"),
		fail("7007", "18010"),
		fail("7230", "A"),
		fail("8010", "abc"),
		fail("8007", strings.Repeat("A", 35)),
	} {
		t.Run(fmt.Sprintf("%02d_%s_%s", i, tt.code, tt.value), func(t *testing.T) {
			w := expect.WrapT(t)
			err := VerifySyntax(tt.code, tt.value)
			if tt.valid {
				w.ShouldSucceed(err)
				return
			}
			var synErr *SyntaxError
			w.ShouldBeTrue(errors.As(err, &synErr))
		})
	}
}

func TestVerifySyntaxUnknownAI(t *testing.T) {
	w := expect.WrapT(t)
	var parseErr *ParseError
	w.ShouldBeTrue(errors.As(VerifySyntax("9876", "1"), &parseErr))
}

func TestValidate(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldSucceed(Validate("01", "09506000134352"))

	var synErr *SyntaxError
	w.ShouldBeTrue(errors.As(Validate("01", "0950600013435X"), &synErr))

	var cdErr *CheckDigitError
	w.ShouldBeTrue(errors.As(Validate("01", "09506000134353"), &cdErr))
}

func TestPatternsAreAnchored(t *testing.T) {
	w := expect.WrapT(t)
	for _, d := range Definitions() {
		p := d.Pattern()
		w.As(d.AI).ShouldBeTrue(strings.HasPrefix(p, "^(?:"))
		w.As(d.AI).ShouldBeTrue(strings.HasSuffix(p, ")$"))
	}
}

func TestIsNumeric(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeTrue(IsNumeric("0123456789"))
	w.ShouldBeFalse(IsNumeric(""))
	w.ShouldBeFalse(IsNumeric("12a"))
}

func TestValuesPrimary(t *testing.T) {
	w := expect.WrapT(t)

	v := Values{"01": "09506000134352", "10": "ABC", "3103": "000189"}
	w.ShouldBeEqual(v.Codes(), []string{"01", "10", "3103"})
	w.ShouldBeEqual(w.ShouldHaveResult(v.Primary()).(string), "01")
	w.ShouldSucceed(v.Validate())

	var structErr *StructureError
	_, err := Values{"10": "ABC"}.Primary()
	w.StopOnMismatch().ShouldBeTrue(errors.As(err, &structErr))
	w.ShouldBeEqual(len(structErr.Found), 0)

	_, err = Values{"01": "09506000134352", "00": "106141412345678908"}.Primary()
	w.StopOnMismatch().ShouldBeTrue(errors.As(err, &structErr))
	w.ShouldBeEqual(structErr.Found, []string{"00", "01"})

	c := v.Clone()
	c["21"] = "X"
	w.ShouldBeEqual(len(v), 3)
}

func TestPadGTIN(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(PadGTIN("01", "12345670"), "00000012345670")
	w.ShouldBeEqual(PadGTIN("02", "9506000134352"), "09506000134352")
	w.ShouldBeEqual(PadGTIN("01", "09506000134352"), "09506000134352")
	w.ShouldBeEqual(PadGTIN("10", "123"), "123")

	// GTINs are 8, 12, 13 or 14 digits; other lengths stay invalid
	for _, v := range []string{"123456789", "1234567895", "12345678905"} {
		w.As(v).ShouldBeEqual(PadGTIN("01", v), v)
		w.As(v).ShouldFail(VerifySyntax("01", PadGTIN("01", v)))
	}
}
