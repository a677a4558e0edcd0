/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package dlink

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/pkg/errors"
	"strings"
)

// DefaultStem is the canonical GS1 resolver.
const DefaultStem = "https://id.gs1.org"

// BuildOptions control how a Digital Link is written.
type BuildOptions struct {
	// ShortNames writes AIs by their short names (e.g. "gtin") when they
	// have one.
	ShortNames bool
	// URIStem is the protocol, domain, and optional path that precede the
	// identifier; DefaultStem if empty.
	URIStem string
	// Other are non-GS1 key/value pairs to add to the query string.
	Other map[string]string
}

func (opts BuildOptions) stem() string {
	if opts.URIStem == "" {
		return DefaultStem
	}
	return strings.TrimSuffix(opts.URIStem, "/")
}

// token returns the path or query key for an AI code.
func token(code string, shortNames bool) string {
	if shortNames {
		if sc, ok := ai.ShortCode(code); ok {
			return sc
		}
	}
	return code
}

// splitKeys separates values into padded, validated GS1 AIs and the
// non-numeric keys that aren't AIs.
func splitKeys(values ai.Values) (ai.Values, map[string]string, error) {
	gs1 := ai.Values{}
	other := map[string]string{}
	for k, v := range values {
		if _, ok := ai.Lookup(k); ok {
			gs1[k] = ai.PadGTIN(k, v)
			continue
		}
		if ai.IsNumeric(k) {
			return nil, nil, &ai.ParseError{Input: k, Reason: "unknown AI"}
		}
		other[k] = v
	}
	if err := gs1.Validate(); err != nil {
		return nil, nil, err
	}
	return gs1, other, nil
}

// Build writes values as an uncompressed Digital Link.
//
// The values must hold exactly one primary identifier. The path holds the
// identifier and then any of its qualifiers that are present, in the order
// the identifier declares them. Every other AI is a query parameter, in code
// order, followed by any non-AI keys of values and then opts.Other, each
// sorted by key. Every AI value is validated.
func Build(values ai.Values, opts BuildOptions) (string, error) {
	gs1, other, err := splitKeys(values)
	if err != nil {
		return "", err
	}
	primary, err := gs1.Primary()
	if err != nil {
		return "", err
	}

	path, used := identifierPath(gs1, primary, opts.ShortNames)
	var query []string
	for _, code := range gs1.Codes() {
		if !used[code] {
			query = append(query, token(code, opts.ShortNames)+"="+Escape(gs1[code]))
		}
	}

	extra, err := otherParams(other, opts.Other)
	if err != nil {
		return "", err
	}
	query = append(query, extra...)

	uri := opts.stem() + path
	if len(query) > 0 {
		uri += "?" + strings.Join(query, "&")
	}
	return uri, nil
}

// identifierPath returns the path for the primary identifier and its
// qualifiers, and the set of codes it includes.
func identifierPath(values ai.Values, primary string, shortNames bool) (string, map[string]bool) {
	var sb strings.Builder
	used := map[string]bool{primary: true}
	sb.WriteString("/" + token(primary, shortNames) + "/" + Escape(values[primary]))

	d, _ := ai.Lookup(primary)
	for _, q := range d.Qualifiers {
		if v, ok := values[q]; ok {
			sb.WriteString("/" + token(q, shortNames) + "/" + Escape(v))
			used[q] = true
		}
	}
	return sb.String(), used
}

// otherParams renders the non-GS1 pairs as query parameters, each group
// sorted by key.
func otherParams(groups ...map[string]string) ([]string, error) {
	var params []string
	seen := map[string]bool{}
	for _, g := range groups {
		for _, k := range sortedKeys(g) {
			if k == "" {
				return nil, errors.New("query parameter keys can't be empty")
			}
			if seen[k] {
				return nil, errors.Errorf("query parameter %q is given twice", k)
			}
			seen[k] = true
			params = append(params, Escape(k)+"="+Escape(g[k]))
		}
	}
	return params, nil
}

// Extract reads the AI values and other query parameters from an uncompressed
// Digital Link. Short names are resolved to their codes, GTINs are padded to
// 14 digits, and every AI value is validated.
func Extract(uri string) (ai.Values, map[string]string, error) {
	a := Analyze(uri)
	if a.Form != Uncompressed {
		return nil, nil, &ai.ParseError{Input: uri,
			Reason: "not an uncompressed Digital Link (" + a.Form.String() + ")"}
	}

	values := ai.Values{}
	for i := 0; i+1 < len(a.Components); i += 2 {
		code, ok := ai.Resolve(a.Components[i])
		if !ok {
			return nil, nil, &ai.ParseError{Input: uri,
				Reason: "unknown path AI " + a.Components[i]}
		}
		v, err := Unescape(a.Components[i+1])
		if err != nil {
			return nil, nil, err
		}
		if err := setValue(values, code, v); err != nil {
			return nil, nil, err
		}
	}

	other, err := queryValues(a.QueryString, values)
	if err != nil {
		return nil, nil, err
	}
	if err := values.Validate(); err != nil {
		return nil, nil, err
	}
	return values, other, nil
}

// setValue adds a padded AI value, rejecting a different value for the same AI.
func setValue(values ai.Values, code, value string) error {
	value = ai.PadGTIN(code, value)
	if prev, dup := values[code]; dup && prev != value {
		return &ai.ParseError{Input: code, Reason: "AI appears with different values"}
	}
	values[code] = value
	return nil
}

// queryValues adds the query string's AIs to values, and returns the rest.
// Numeric keys must be AIs.
func queryValues(qs string, values ai.Values) (map[string]string, error) {
	pairs, err := parseQuery(qs)
	if err != nil {
		return nil, err
	}

	other := map[string]string{}
	for _, p := range pairs {
		if code, ok := ai.Resolve(p.key); ok {
			if err := setValue(values, code, p.value); err != nil {
				return nil, err
			}
			continue
		}
		if ai.IsNumeric(p.key) {
			return nil, &ai.ParseError{Input: p.key, Reason: "unknown AI"}
		}
		key, err := Unescape(p.key)
		if err != nil {
			return nil, err
		}
		if prev, dup := other[key]; dup && prev != p.value {
			return nil, errors.Errorf("query parameter %q appears with different values", key)
		}
		other[key] = p.value
	}
	return other, nil
}
