/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"sort"
	"strings"
)

// GTINLength is the canonical length of a GTIN element value.
const GTINLength = 14

// Values maps AI codes to their values.
type Values map[string]string

// Codes returns the AI codes in v, sorted.
func (v Values) Codes() []string {
	codes := make([]string, 0, len(v))
	for c := range v {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Identifiers returns the sorted codes of v that are primary identifiers.
func (v Values) Identifiers() []string {
	var ids []string
	for _, c := range v.Codes() {
		if IsKind(c, Identifier) {
			ids = append(ids, c)
		}
	}
	return ids
}

// Primary returns the single primary identifier in v, or a *StructureError if
// there isn't exactly one.
func (v Values) Primary() (string, error) {
	ids := v.Identifiers()
	if len(ids) != 1 {
		return "", &StructureError{Found: ids}
	}
	return ids[0], nil
}

// Validate checks every value in v, in code order, and returns the first error.
func (v Values) Validate() error {
	for _, c := range v.Codes() {
		if err := Validate(c, v[c]); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a copy of v.
func (v Values) Clone() Values {
	c := make(Values, len(v))
	for k, val := range v {
		c[k] = val
	}
	return c
}

// PadGTIN left-pads GTIN-8, GTIN-12, and GTIN-13 values with zeros to 14 digits
// for the AIs that hold GTINs (01 and 02). Other lengths, and values of other
// AIs, are returned as-is.
func PadGTIN(code, value string) string {
	if code != "01" && code != "02" {
		return value
	}
	switch len(value) {
	case 8, 12, 13:
		return strings.Repeat("0", GTINLength-len(value)) + value
	}
	return value
}
