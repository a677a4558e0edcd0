/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import "strconv"

// FilterValue is the 3-bit SGTIN filter, a hint to readers about the kind of
// object the tag is on.
type FilterValue int

const (
	Other FilterValue = iota
	POS
	FullCase
	reserved3
	InnerPack
	reserved5
	UnitLoad
	UnitPack
)

var filterNames = [...]string{
	Other:     "Other",
	POS:       "POS",
	FullCase:  "Full Case",
	reserved3: "Reserved",
	InnerPack: "Inner Pack",
	reserved5: "Reserved",
	UnitLoad:  "Unit Load",
	UnitPack:  "Unit Pack",
}

// IsValid is false for the reserved values 3 and 5 and anything outside 0-7.
func (fv FilterValue) IsValid() bool {
	return fv >= Other && fv <= UnitPack && fv != reserved3 && fv != reserved5
}

func (fv FilterValue) String() string {
	if fv < Other || fv > UnitPack {
		return "FilterValue(" + strconv.Itoa(int(fv)) + ")"
	}
	return filterNames[fv]
}
