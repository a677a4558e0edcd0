/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"fmt"
	"strings"
)

// SyntaxError indicates a value does not match its AI's format.
type SyntaxError struct {
	AI    string
	Value string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("value %q is invalid for AI (%s)", e.Value, e.AI)
}

// CheckDigitError indicates a value's GS1 check digit is wrong.
type CheckDigitError struct {
	AI       string
	Value    string
	Expected int
	// Position is the 1-based index of the check digit within Value.
	Position int
}

func (e *CheckDigitError) Error() string {
	got := "?"
	if e.Position > 0 && e.Position <= len(e.Value) {
		got = e.Value[e.Position-1 : e.Position]
	}
	return fmt.Sprintf("invalid check digit for AI (%s) value %q: "+
		"position %d is %s, but should be %d",
		e.AI, e.Value, e.Position, got, e.Expected)
}

// StructureError indicates a set of AIs that doesn't have exactly one
// primary identifier.
type StructureError struct {
	// Found lists the identifier AIs that were present.
	Found []string
}

func (e *StructureError) Error() string {
	if len(e.Found) == 0 {
		return "no primary identifier found"
	}
	return fmt.Sprintf("found %d primary identifiers (%s), but exactly one is "+
		"required", len(e.Found), strings.Join(e.Found, ", "))
}

// ParseError indicates input that can't be split into AI/value pairs.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return "parse error: " + e.Reason
	}
	return fmt.Sprintf("unable to parse %q: %s", e.Input, e.Reason)
}
