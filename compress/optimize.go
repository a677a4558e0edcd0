/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package compress

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"sort"
	"strings"
)

// Optimization is a two-nibble super-code standing in for a group of AIs that
// frequently appear together. At least one nibble is outside 0-9, which is how a
// decoder tells a super-code from the first two digits of an AI.
type Optimization struct {
	Code string
	// AIs are the member codes, in the order their values are encoded.
	AIs []string
}

func opt(code string, ais ...string) Optimization {
	return Optimization{Code: code, AIs: ais}
}

var optimizations = []Optimization{
	opt("0A", "01", "22"),
	opt("0B", "01", "10"),
	opt("0C", "01", "21"),
	opt("0D", "01", "17"),
	opt("0E", "01", "7003"),
	opt("0F", "01", "30"),
	opt("1A", "01", "10", "17", "21"),
	opt("1B", "01", "15"),
	opt("1C", "01", "11"),
	opt("1D", "01", "16"),
	opt("1E", "01", "91"),
	opt("1F", "01", "10", "15"),
	opt("2A", "01", "3100"),
	opt("2B", "01", "3101"),
	opt("2C", "01", "3102"),
	opt("2D", "01", "3103"),
	opt("2E", "01", "3104"),
	opt("2F", "01", "3105"),
	opt("3A", "01", "3200"),
	opt("3B", "01", "3201"),
	opt("3C", "01", "3202"),
	opt("3D", "01", "3203"),
	opt("3E", "01", "3204"),
	opt("3F", "01", "3205"),
	opt("9A", "8010", "8011"),
	opt("9B", "8017", "8019"),
	opt("9C", "8018", "8019"),
	opt("9D", "254", "414"),
	opt("A0", "01", "3920"),
	opt("A1", "01", "3921"),
	opt("A2", "01", "3922"),
	opt("A3", "01", "3923"),
	opt("A4", "01", "3924"),
	opt("A5", "01", "3925"),
	opt("A6", "01", "3926"),
	opt("A7", "01", "3927"),
	opt("A8", "01", "3928"),
	opt("A9", "01", "3929"),
	opt("C0", "255", "3900"),
	opt("C1", "255", "3901"),
	opt("C2", "255", "3902"),
	opt("C3", "255", "3903"),
	opt("C4", "255", "3904"),
	opt("C5", "255", "3905"),
	opt("C6", "255", "3906"),
	opt("C7", "255", "3907"),
	opt("C8", "255", "3908"),
	opt("C9", "255", "3909"),
	opt("CA", "255", "3940"),
	opt("CB", "255", "3941"),
	opt("CC", "255", "3942"),
	opt("CD", "255", "3943"),
}

var (
	optByCode map[string]*Optimization
	// optByAIs is keyed by the comma-joined, sorted member codes.
	optByAIs map[string]string
)

func init() {
	optByCode = make(map[string]*Optimization, len(optimizations))
	optByAIs = make(map[string]string, len(optimizations))

	sort.Slice(optimizations, func(i, j int) bool {
		return optimizations[i].Code < optimizations[j].Code
	})

	for i := range optimizations {
		o := &optimizations[i]
		if len(o.Code) != 2 {
			panic(fmt.Sprintf("illegal super-code %q", o.Code))
		}
		h1, ok1 := nibble(o.Code[0])
		h2, ok2 := nibble(o.Code[1])
		if !ok1 || !ok2 || (h1 <= 9 && h2 <= 9) || h1 == foreignFlag {
			panic(fmt.Sprintf("illegal super-code %q", o.Code))
		}
		for _, code := range o.AIs {
			if _, ok := ai.Lookup(code); !ok {
				panic(fmt.Sprintf("super-code %q refers to unknown AI %q", o.Code, code))
			}
		}
		optByCode[o.Code] = o
		optByAIs[setKey(o.AIs)] = o.Code
	}
}

func setKey(codes []string) string {
	sorted := append([]string(nil), codes...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// nibble returns the value of an uppercase hex digit.
func nibble(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

// LookupOptimization returns the optimization for a super-code.
func LookupOptimization(code string) (Optimization, bool) {
	o, ok := optByCode[code]
	if !ok {
		return Optimization{}, false
	}
	return Optimization{Code: o.Code, AIs: append([]string(nil), o.AIs...)}, true
}

// OptimizationFor returns the super-code for exactly the given set of AIs.
func OptimizationFor(codes ...string) (string, bool) {
	code, ok := optByAIs[setKey(codes)]
	return code, ok
}

// selectOptimizations greedily covers codes with super-codes, each time taking
// the applicable optimization whose member codes are longest in total. Ties go
// to the smallest super-code. It returns the chosen super-codes, in the order
// chosen, and the sorted codes left uncovered.
func selectOptimizations(codes []string) (chosen []string, rest []string) {
	remaining := make(map[string]bool, len(codes))
	for _, c := range codes {
		remaining[c] = true
	}

	for {
		best, bestScore := -1, 0
		for i := range optimizations {
			o := &optimizations[i]
			score := 0
			for _, c := range o.AIs {
				if !remaining[c] {
					score = 0
					break
				}
				score += len(c)
			}
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		chosen = append(chosen, optimizations[best].Code)
		for _, c := range optimizations[best].AIs {
			delete(remaining, c)
		}
	}

	for c := range remaining {
		rest = append(rest, c)
	}
	sort.Strings(rest)
	return chosen, rest
}
