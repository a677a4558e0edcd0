/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package dlink

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
)

// Element is a single AI and its value.
type Element struct {
	AI    string `json:"ai" yaml:"ai"`
	Value string `json:"value" yaml:"value"`
}

// Classification groups a Digital Link's values by the role of their AIs.
type Classification struct {
	Identifier Element `json:"identifier" yaml:"identifier"`
	// Qualifiers are in the order the identifier declares them, followed by
	// any other qualifiers by code.
	Qualifiers     []Element         `json:"qualifiers,omitempty" yaml:"qualifiers,omitempty"`
	DataAttributes []Element         `json:"dataAttributes,omitempty" yaml:"dataAttributes,omitempty"`
	Other          map[string]string `json:"other,omitempty" yaml:"other,omitempty"`
}

// Classify sorts values into the primary identifier, its qualifiers, and data
// attributes. Keys that aren't AIs join other. The values must hold exactly
// one primary identifier, and every AI value is validated.
func Classify(values ai.Values, other map[string]string) (*Classification, error) {
	gs1, rest, err := splitKeys(values)
	if err != nil {
		return nil, err
	}
	primary, err := gs1.Primary()
	if err != nil {
		return nil, err
	}

	c := &Classification{Identifier: Element{AI: primary, Value: gs1[primary]}}
	used := map[string]bool{primary: true}
	d, _ := ai.Lookup(primary)
	for _, q := range d.Qualifiers {
		if v, ok := gs1[q]; ok {
			c.Qualifiers = append(c.Qualifiers, Element{AI: q, Value: v})
			used[q] = true
		}
	}
	for _, code := range gs1.Codes() {
		switch {
		case used[code]:
		case ai.IsKind(code, ai.Qualifier):
			c.Qualifiers = append(c.Qualifiers, Element{AI: code, Value: gs1[code]})
		default:
			c.DataAttributes = append(c.DataAttributes, Element{AI: code, Value: gs1[code]})
		}
	}

	for k, v := range other {
		rest[k] = v
	}
	if len(rest) > 0 {
		c.Other = rest
	}
	return c, nil
}
