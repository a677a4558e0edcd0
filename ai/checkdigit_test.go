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
	"testing"
)

func TestCheckSum(t *testing.T) {
	w := expect.WrapT(t)

	sum, ok := checkSum("0123456789012")
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(sum, 92)

	_, ok = checkSum("01234x")
	w.ShouldBeFalse(ok)

	sum, ok = checkSum("")
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(sum, 0)
}

func TestComputeCheckDigit(t *testing.T) {
	type cdTest struct {
		code, value string
		digit       int
		fails       bool
	}

	pass := func(code, value string, digit int) cdTest {
		return cdTest{code: code, value: value, digit: digit}
	}

	fail := func(code, value string) cdTest {
		return cdTest{code: code, value: value, fails: true}
	}

	for i, tt := range []cdTest{
		pass("01", "0123456789012", 8),
		pass("01", "0950600013435", 2),
		pass("01", "950600013435", 2),
		pass("01", "1234567", 0),
		pass("00", "10614141234567890", 8),
		pass("414", "950110102091", 7),
		// fixed position; trailing characters are ignored
		pass("253", "400000100000", 5),
		pass("253", "4000001000005ABC", 5),
		pass("8006", "0950600013435", 2),
		pass("8006", "095060001343520102", 2),
		pass("8003", "0950600013435", 2),

		fail("01", "012345678901a"),
		fail("01", ""),
		fail("253", "4000"),
		fail("10", "ABC"),
		fail("9999", "1234"),
	} {
		t.Run(fmt.Sprintf("%02d_%s_%s", i, tt.code, tt.value), func(t *testing.T) {
			w := expect.WrapT(t)
			d, err := ComputeCheckDigit(tt.code, tt.value)
			if tt.fails {
				w.ShouldFail(err)
				return
			}
			w.ShouldSucceed(err)
			w.ShouldBeEqual(d, tt.digit)
		})
	}
}

func TestVerifyCheckDigit(t *testing.T) {
	type verifyTest struct {
		code, value string
		expected    int
		position    int
	}

	pass := func(code, value string) verifyTest {
		return verifyTest{code: code, value: value}
	}

	fail := func(code, value string, expected, position int) verifyTest {
		return verifyTest{code: code, value: value, expected: expected, position: position}
	}

	for i, tt := range []verifyTest{
		pass("01", "09506000134352"),
		pass("01", "9506000134352"),
		pass("01", "12345670"),
		pass("00", "106141412345678908"),
		pass("414", "9501101020917"),
		pass("253", "4000001000005ABC"),
		pass("8006", "095060001343520102"),
		// AIs without a check digit always pass
		pass("10", "ABC123"),
		pass("3103", "000189"),

		fail("01", "09506000134353", 2, 14),
		fail("00", "106141412345678900", 8, 18),
		fail("253", "4000001000004ABC", 5, 13),
		fail("8003", "09506000134351XYZ", 2, 14),
	} {
		t.Run(fmt.Sprintf("%02d_%s_%s", i, tt.code, tt.value), func(t *testing.T) {
			w := expect.WrapT(t)
			err := VerifyCheckDigit(tt.code, tt.value)
			if tt.position == 0 {
				w.ShouldSucceed(err)
				return
			}

			w.StopOnMismatch().ShouldFail(err)
			var cdErr *CheckDigitError
			w.StopOnMismatch().ShouldBeTrue(errors.As(err, &cdErr))
			w.ShouldBeEqual(cdErr.AI, tt.code)
			w.ShouldBeEqual(cdErr.Value, tt.value)
			w.ShouldBeEqual(cdErr.Expected, tt.expected)
			w.ShouldBeEqual(cdErr.Position, tt.position)
			w.Logf("%v", err)
		})
	}
}

func TestVerifyCheckDigitShortValues(t *testing.T) {
	w := expect.WrapT(t)

	var synErr *SyntaxError
	w.ShouldBeTrue(errors.As(VerifyCheckDigit("01", "1"), &synErr))
	w.ShouldBeTrue(errors.As(VerifyCheckDigit("253", "400000"), &synErr))

	var parseErr *ParseError
	w.ShouldBeTrue(errors.As(VerifyCheckDigit("abc", "1"), &parseErr))
}
