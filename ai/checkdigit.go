/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"github.com/pkg/errors"
)

// checkSum returns the GS1 weighted sum of a string of digits: the rightmost
// digit has weight 3, the one to its left weight 1, alternating leftward. It
// returns false if any character isn't a decimal digit.
//
// The check digit that follows these digits is ((10 - sum%10) % 10).
func checkSum(digits string) (sum int, ok bool) {
	for i := 0; i < len(digits); i++ {
		c := digits[len(digits)-1-i]
		if c < '0' || c > '9' {
			return 0, false
		}
		sum += int(c-'0') * ((((1 - i) & 1) << 1) | 1)
	}
	return sum, true
}

// ComputeCheckDigit returns the GS1 check digit for an AI's value.
//
// For AIs whose check digit is the final character, value must NOT include the
// check digit; every character of value is used. For AIs with the check digit
// at a fixed position p, value must contain at least the p-1 digits before it,
// and anything after them is ignored.
func ComputeCheckDigit(code, value string) (int, error) {
	d, ok := Lookup(code)
	if !ok {
		return 0, &ParseError{Input: code, Reason: "unknown AI"}
	}

	var digits string
	switch d.CheckDigit {
	case NoCheckDigit:
		return 0, errors.Errorf("AI (%s) does not have a check digit", code)
	case LastDigit:
		digits = value
	default:
		p := int(d.CheckDigit)
		if len(value) < p-1 {
			return 0, &SyntaxError{AI: code, Value: value}
		}
		digits = value[:p-1]
	}

	sum, ok := checkSum(digits)
	if !ok || digits == "" {
		return 0, &SyntaxError{AI: code, Value: value}
	}
	// mod 10 additive inverse
	return (10 - (sum % 10)) % 10, nil
}

// VerifyCheckDigit returns a *CheckDigitError if value's check digit is wrong.
// Values of AIs that don't carry a check digit always pass.
func VerifyCheckDigit(code, value string) error {
	d, ok := Lookup(code)
	if !ok {
		return &ParseError{Input: code, Reason: "unknown AI"}
	}

	var pos int
	var body string
	switch d.CheckDigit {
	case NoCheckDigit:
		return nil
	case LastDigit:
		if len(value) < 2 {
			return &SyntaxError{AI: code, Value: value}
		}
		pos = len(value)
		body = value[:pos-1]
	default:
		pos = int(d.CheckDigit)
		if len(value) < pos {
			return &SyntaxError{AI: code, Value: value}
		}
		body = value[:pos-1]
	}

	expected, err := ComputeCheckDigit(code, body)
	if err != nil {
		return err
	}
	if int(value[pos-1]-'0') != expected {
		return &CheckDigitError{AI: code, Value: value, Expected: expected, Position: pos}
	}
	return nil
}
