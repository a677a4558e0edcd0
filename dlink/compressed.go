/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package dlink

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/compress"
	"github.com/pkg/errors"
	"sort"
	"strings"
)

// CompressOptions control how a compressed Digital Link is written.
type CompressOptions struct {
	// URIStem precedes the compressed path; DefaultStem if empty.
	URIStem string
	// ShortNames names the identifier by its short name when
	// UncompressedPrimary is set.
	ShortNames bool
	// Optimize uses super-codes for groups of AIs that appear together.
	Optimize bool
	// CompressOther puts Other into the compressed stream instead of
	// the query string.
	CompressOther bool
	// UncompressedPrimary leaves the identifier legible in the path and
	// compresses only the remaining values.
	UncompressedPrimary bool
	// Other are non-GS1 key/value pairs.
	Other map[string]string
}

// BuildCompressed writes values as a compressed Digital Link. The values must
// hold exactly one primary identifier, and every value is validated. Keys of
// values that aren't AIs are treated like opts.Other.
func BuildCompressed(values ai.Values, opts CompressOptions) (string, error) {
	gs1, other, err := splitKeys(values)
	if err != nil {
		return "", err
	}
	for _, k := range sortedKeys(opts.Other) {
		if _, dup := other[k]; dup {
			return "", errors.Errorf("query parameter %q is given twice", k)
		}
		other[k] = opts.Other[k]
	}
	primary, err := gs1.Primary()
	if err != nil {
		return "", err
	}

	stem := BuildOptions{URIStem: opts.URIStem}.stem()
	var compressed map[string]string
	var query []string
	if opts.CompressOther {
		compressed = other
	} else if query, err = otherParams(other); err != nil {
		return "", err
	}

	toCompress := gs1
	path := ""
	if opts.UncompressedPrimary {
		toCompress = gs1.Clone()
		delete(toCompress, primary)
		path = "/" + token(primary, opts.ShortNames) + "/" + Escape(gs1[primary])
	}

	blob, err := compress.EncodeBase64(toCompress, compressed, compress.Options{Optimize: opts.Optimize})
	if err != nil {
		return "", err
	}
	if blob != "" {
		path += "/" + blob
	}

	uri := stem + path
	if len(query) > 0 {
		uri += "?" + strings.Join(query, "&")
	}
	return uri, nil
}

// ExtractCompressed reads the AI values and other pairs from a fully or
// partially compressed Digital Link, or from an uncompressed one. Query
// parameters are merged with the decompressed values, and every AI value is
// validated.
func ExtractCompressed(uri string) (ai.Values, map[string]string, error) {
	a := Analyze(uri)

	var values ai.Values
	var other map[string]string
	var err error
	switch a.Form {
	case Uncompressed:
		return Extract(uri)
	case PartiallyCompressed:
		if values, other, err = compress.DecodeBase64(a.CompressedPath); err != nil {
			return nil, nil, errors.Wrapf(err, "unable to decompress %s", a.CompressedPath)
		}
		v, err := Unescape(a.Components[1])
		if err != nil {
			return nil, nil, err
		}
		if err := setValue(values, a.PrimaryAI, v); err != nil {
			return nil, nil, err
		}
	case FullyCompressed:
		if values, other, err = compress.DecodeBase64(a.CompressedPath); err != nil {
			return nil, nil, errors.Wrapf(err, "unable to decompress %s", a.CompressedPath)
		}
	default:
		return nil, nil, &ai.ParseError{Input: uri, Reason: "not a Digital Link"}
	}

	for code, v := range values {
		values[code] = ai.PadGTIN(code, v)
	}
	params, err := queryValues(a.QueryString, values)
	if err != nil {
		return nil, nil, err
	}
	for k, v := range params {
		if prev, dup := other[k]; dup && prev != v {
			return nil, nil, errors.Errorf("%q appears with different values", k)
		}
		other[k] = v
	}

	if err := values.Validate(); err != nil {
		return nil, nil, err
	}
	return values, other, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
