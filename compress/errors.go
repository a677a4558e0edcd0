/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package compress

import (
	"fmt"
)

// UnsupportedCodeError indicates a compressed stream holds a key that is
// neither a known AI, a known super-code, nor the foreign pair flag.
type UnsupportedCodeError struct {
	// Code is the hex digits read for the key.
	Code string
	// Offset is the bit offset at which the key starts.
	Offset int
}

func (e *UnsupportedCodeError) Error() string {
	return fmt.Sprintf("unsupported key %q at bit %d: it is not a known AI "+
		"or optimization, and lies in a reserved range", e.Code, e.Offset)
}
