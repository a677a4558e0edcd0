/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

// VerifySyntax returns a *SyntaxError unless value fully matches the format of
// the given AI. Unknown AIs result in a *ParseError.
func VerifySyntax(code, value string) error {
	d, ok := Lookup(code)
	if !ok {
		return &ParseError{Input: code, Reason: "unknown AI"}
	}
	if !d.re.MatchString(value) {
		return &SyntaxError{AI: code, Value: value}
	}
	return nil
}

// Validate checks value's syntax, then its check digit, if it has one.
func Validate(code, value string) error {
	if err := VerifySyntax(code, value); err != nil {
		return err
	}
	return VerifyCheckDigit(code, value)
}

// IsNumeric returns true if s is non-empty and consists only of digits 0-9.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
