/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package elementstring converts between GS1 element strings and AI values.
//
// Element strings come in two forms. The human readable, bracketed form puts
// each AI in parentheses: "(01)09506000134352(10)ABC". The form carried in a
// barcode concatenates AIs and values, and ends each variable length value
// with a group separator (ASCII 29) unless it's the last one. AIs whose first
// two digits appear in the GS1 table of predefined lengths never need a
// separator, since their total length is known from those digits.
package elementstring

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"sort"
	"strings"
)

// GroupSeparator ends variable length values in unbracketed element strings.
const GroupSeparator = "\x1d"

// symbologyIDs are the prefixes a barcode scanner may add to identify a GS1
// symbol: GS1-128, GS1 DataBar, GS1 DataMatrix, and GS1 QR Code.
var symbologyIDs = []string{"]C1", "]e0", "]d2", "]Q3"}

// predefinedLengths holds the total length, AI included, of element strings
// whose AI starts with these two digits, per the GS1 General Specifications.
var predefinedLengths = map[string]int{
	"00": 20,
	"01": 16,
	"02": 16,
	"03": 16,
	"04": 18,
	"11": 8,
	"12": 8,
	"13": 8,
	"14": 8,
	"15": 8,
	"16": 8,
	"17": 8,
	"18": 8,
	"19": 8,
	"20": 4,
	"31": 10,
	"32": 10,
	"33": 10,
	"34": 10,
	"35": 10,
	"36": 10,
	"41": 16,
}

// PredefinedLength returns the total element string length for the AI, if it
// belongs to the table of predefined lengths.
func PredefinedLength(code string) (int, bool) {
	if len(code) < 2 {
		return 0, false
	}
	l, ok := predefinedLengths[code[:2]]
	return l, ok
}

// Parse extracts AI values from an element string in either form, after
// removing a leading symbology identifier. Every value is validated, and GTINs
// are padded to 14 digits.
func Parse(input string) (ai.Values, error) {
	s := input
	for _, sid := range symbologyIDs {
		if strings.HasPrefix(s, sid) {
			s = s[len(sid):]
			break
		}
	}
	if s == "" {
		return nil, &ai.ParseError{Input: input, Reason: "empty element string"}
	}

	var records [][2]string
	var err error
	if isBracketed(s) {
		records, err = splitBracketed(s)
	} else {
		records, err = splitConcatenated(s)
	}
	if err != nil {
		return nil, err
	}

	values := ai.Values{}
	for _, r := range records {
		code, value := r[0], ai.PadGTIN(r[0], r[1])
		if err := ai.Validate(code, value); err != nil {
			return nil, err
		}
		if prev, dup := values[code]; dup && prev != value {
			return nil, &ai.ParseError{Input: input,
				Reason: "AI (" + code + ") has conflicting values"}
		}
		values[code] = value
	}
	return values, nil
}

// isBracketed returns true if s starts with a parenthesized 2-4 digit code.
func isBracketed(s string) bool {
	end := strings.IndexByte(s, ')')
	return strings.HasPrefix(s, "(") && end >= 3 && end <= 5 && ai.IsNumeric(s[1:end])
}

func splitBracketed(s string) ([][2]string, error) {
	var records [][2]string
	for rest := s; rest != ""; {
		if !isBracketed(rest) {
			return nil, &ai.ParseError{Input: s, Reason: "expected (AI) at " + rest}
		}
		end := strings.IndexByte(rest, ')')
		code := rest[1:end]
		if _, ok := ai.Lookup(code); !ok {
			return nil, &ai.ParseError{Input: s, Reason: "unknown AI (" + code + ")"}
		}
		rest = rest[end+1:]

		next := strings.IndexByte(rest, '(')
		if next < 0 {
			next = len(rest)
		}
		records = append(records, [2]string{code, rest[:next]})
		rest = rest[next:]
	}
	return records, nil
}

func splitConcatenated(s string) ([][2]string, error) {
	var records [][2]string
	for cursor := 0; cursor < len(s); {
		var rec string
		if l, ok := PredefinedLength(s[cursor:]); ok {
			end := cursor + l
			if end > len(s) {
				end = len(s)
			}
			rec = s[cursor:end]
			cursor = end
			if strings.HasPrefix(s[cursor:], GroupSeparator) {
				cursor++
			}
		} else if gs := strings.Index(s[cursor:], GroupSeparator); gs >= 0 {
			rec = s[cursor : cursor+gs]
			cursor += gs + 1
		} else {
			rec = s[cursor:]
			cursor = len(s)
		}

		code, ok := splitCode(rec)
		if !ok {
			return nil, &ai.ParseError{Input: rec, Reason: "no matching AI"}
		}
		records = append(records, [2]string{code, rec[len(code):]})
	}
	return records, nil
}

// splitCode finds the registered 2, 3, or 4 digit AI that starts rec.
func splitCode(rec string) (string, bool) {
	for n := 2; n <= 4 && n <= len(rec); n++ {
		if _, ok := ai.Lookup(rec[:n]); ok {
			return rec[:n], true
		}
	}
	return "", false
}

// Format renders values as an element string.
//
// The bracketed form requires exactly one primary identifier and emits it
// first, then its declared qualifiers in their declared order, then every
// other AI in ascending order. The unbracketed form emits the AIs with
// predefined lengths first, then the rest, each ordered the same way, and
// puts a group separator after every value without a predefined length except
// the last. GTINs are always padded to 14 digits. The bracketed form fails
// with a ParseError if a value holds '('.
func Format(values ai.Values, bracketed bool) (string, error) {
	padded := make(ai.Values, len(values))
	for code, v := range values {
		if _, ok := ai.Lookup(code); !ok {
			return "", &ai.ParseError{Input: code, Reason: "unknown AI"}
		}
		padded[code] = ai.PadGTIN(code, v)
	}
	if err := padded.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	if bracketed {
		order, err := canonicalOrder(padded)
		if err != nil {
			return "", err
		}
		for _, code := range order {
			// a '(' in a value would read back as the start of the next AI
			if strings.IndexByte(padded[code], '(') >= 0 {
				return "", &ai.ParseError{Input: padded[code],
					Reason: "(" + code + ") value holds '(', which can't be bracketed"}
			}
			sb.WriteString("(" + code + ")" + padded[code])
		}
		return sb.String(), nil
	}

	var fixed, variable []string
	for _, code := range identifierFirst(padded) {
		if _, ok := PredefinedLength(code); ok {
			fixed = append(fixed, code)
		} else {
			variable = append(variable, code)
		}
	}
	for _, code := range fixed {
		sb.WriteString(code + padded[code])
	}
	for i, code := range variable {
		sb.WriteString(code + padded[code])
		if i < len(variable)-1 {
			sb.WriteString(GroupSeparator)
		}
	}
	return sb.String(), nil
}

// canonicalOrder returns the primary identifier, its declared qualifiers that
// are present, then every other code in ascending order.
func canonicalOrder(values ai.Values) ([]string, error) {
	primary, err := values.Primary()
	if err != nil {
		return nil, err
	}
	d, _ := ai.Lookup(primary)

	order := []string{primary}
	used := map[string]bool{primary: true}
	for _, q := range d.Qualifiers {
		if _, ok := values[q]; ok {
			order = append(order, q)
			used[q] = true
		}
	}
	for _, code := range values.Codes() {
		if !used[code] {
			order = append(order, code)
		}
	}
	return order, nil
}

// identifierFirst returns the codes sorted, with identifiers moved to the front.
func identifierFirst(values ai.Values) []string {
	codes := values.Codes()
	sort.SliceStable(codes, func(i, j int) bool {
		return ai.IsKind(codes[i], ai.Identifier) && !ai.IsKind(codes[j], ai.Identifier)
	})
	return codes
}
