/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"fmt"
	"sort"
)

var (
	byCode      map[string]*Definition
	byShortCode map[string]string
	// byLength holds sorted AI codes of 2, 3, and 4 digits at indexes 2-4.
	byLength [5][]string
	// prefixLen maps the first two digits of an AI to the length of every AI
	// that starts with them.
	prefixLen map[string]int
)

func init() {
	byCode = make(map[string]*Definition, len(definitions))
	byShortCode = make(map[string]string)
	prefixLen = make(map[string]int)

	for i := range definitions {
		d := &definitions[i]
		if len(d.AI) < 2 || len(d.AI) > 4 {
			panic(fmt.Sprintf("AI %q has an illegal length", d.AI))
		}
		if _, dup := byCode[d.AI]; dup {
			panic(fmt.Sprintf("AI %q is defined more than once", d.AI))
		}
		d.compile()
		byCode[d.AI] = d
		byLength[len(d.AI)] = append(byLength[len(d.AI)], d.AI)

		if d.ShortCode != "" {
			byShortCode[d.ShortCode] = d.AI
		}

		prefix := d.AI[:2]
		if l, ok := prefixLen[prefix]; ok && l != len(d.AI) {
			panic(fmt.Sprintf("AIs starting with %q have lengths %d and %d",
				prefix, l, len(d.AI)))
		}
		prefixLen[prefix] = len(d.AI)
	}

	for _, codes := range byLength {
		sort.Strings(codes)
	}
}

// Lookup returns the definition of the given AI code.
func Lookup(code string) (*Definition, bool) {
	d, ok := byCode[code]
	return d, ok
}

// IsKind returns true if code is a known AI of the given kind.
func IsKind(code string, k Kind) bool {
	d, ok := byCode[code]
	return ok && d.Kind == k
}

// PrefixLength returns the length of the AIs that begin with the given two
// digits. Every AI sharing its first two digits has the same length.
func PrefixLength(firstTwo string) (int, bool) {
	l, ok := prefixLen[firstTwo]
	return l, ok
}

// CodesOfLength returns the sorted AI codes with exactly n digits, n in [2,4].
func CodesOfLength(n int) []string {
	if n < 2 || n > 4 {
		return nil
	}
	return append([]string(nil), byLength[n]...)
}

// FromShortCode resolves a short name such as "gtin" to its numeric AI code.
func FromShortCode(name string) (string, bool) {
	code, ok := byShortCode[name]
	return code, ok
}

// ShortCode returns the short name for a numeric AI code, if it has one.
func ShortCode(code string) (string, bool) {
	d, ok := byCode[code]
	if !ok || d.ShortCode == "" {
		return "", false
	}
	return d.ShortCode, true
}

// Resolve returns the numeric AI code for either a numeric code or a short
// name. It returns false if the key is neither.
func Resolve(key string) (string, bool) {
	if _, ok := byCode[key]; ok {
		return key, true
	}
	return FromShortCode(key)
}

// Definitions returns every registered definition, ordered by AI code.
func Definitions() []*Definition {
	defs := make([]*Definition, 0, len(byCode))
	for i := range definitions {
		defs = append(defs, &definitions[i])
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].AI < defs[j].AI })
	return defs
}
