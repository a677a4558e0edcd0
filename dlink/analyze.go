/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package dlink

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/bitstream"
	"strings"
)

// Form describes how a Digital Link's identifying path is written.
type Form int

const (
	Unrecognized Form = iota
	// Uncompressed links spell out every path AI: /01/{gtin}/10/{lot}
	Uncompressed
	// PartiallyCompressed links keep the identifier legible and compress
	// the rest: /01/{gtin}/{base64}
	PartiallyCompressed
	// FullyCompressed links have a single base64 path segment.
	FullyCompressed
)

func (f Form) String() string {
	switch f {
	case Uncompressed:
		return "uncompressed"
	case PartiallyCompressed:
		return "partially compressed"
	case FullyCompressed:
		return "fully compressed"
	}
	return "unrecognized"
}

// MarshalText renders the form by name.
func (f Form) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Analysis is the structure of a Digital Link URI.
type Analysis struct {
	// Protocol is "https://", "http://", or empty.
	Protocol string `json:"protocol" yaml:"protocol"`
	Domain   string `json:"domain" yaml:"domain"`
	// PathInfo is the whole path, with a leading slash.
	PathInfo string `json:"pathInfo" yaml:"pathInfo"`
	// Components are the path segments from the primary identifier on.
	Components []string `json:"components,omitempty" yaml:"components,omitempty"`
	// URIStem is the protocol, domain, and any path segments before
	// the Components.
	URIStem string `json:"uriStem" yaml:"uriStem"`
	// QueryString is the text after '?', with ';' delimiters replaced by '&'.
	QueryString string `json:"queryString,omitempty" yaml:"queryString,omitempty"`
	Fragment    string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	Form        Form   `json:"form" yaml:"form"`
	// PrimaryAI is the numeric code of the identifier that starts Components.
	PrimaryAI        string `json:"primaryAI,omitempty" yaml:"primaryAI,omitempty"`
	UncompressedPath string `json:"uncompressedPath,omitempty" yaml:"uncompressedPath,omitempty"`
	CompressedPath   string `json:"compressedPath,omitempty" yaml:"compressedPath,omitempty"`
}

// Analyze splits a URI into its parts and determines its Form.
//
// The primary identifier is the right-most path segment naming an identifier
// AI, by code or short name, that is followed by a value matching its format
// and either an odd number of further segments (key/value pairs) or a single
// base64 segment. A URI with neither, whose last path segment is base64, is
// taken as fully compressed if it has a protocol.
func Analyze(uri string) *Analysis {
	a := &Analysis{}

	rest := uri
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		a.Fragment = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		a.QueryString = strings.ReplaceAll(rest[i+1:], ";", "&")
		rest = rest[:i]
	}
	rest = strings.TrimSuffix(rest, "/")

	for _, p := range []string{"https://", "http://"} {
		if strings.HasPrefix(rest, p) {
			a.Protocol = p
			rest = rest[len(p):]
			break
		}
	}

	path := ""
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		a.Domain, path = rest[:i], rest[i+1:]
	} else {
		a.Domain = rest
	}
	a.PathInfo = "/" + path
	a.URIStem = a.Protocol + a.Domain

	var segments []string
	if path != "" {
		segments = strings.Split(path, "/")
	}

	stem := func(n int) string {
		if n == 0 {
			return a.Protocol + a.Domain
		}
		return a.Protocol + a.Domain + "/" + strings.Join(segments[:n], "/")
	}

	for i := len(segments) - 2; i >= 0; i-- {
		code, ok := ai.Resolve(segments[i])
		if !ok || !ai.IsKind(code, ai.Identifier) {
			continue
		}
		value, err := Unescape(segments[i+1])
		if err != nil || ai.VerifySyntax(code, ai.PadGTIN(code, value)) != nil {
			continue
		}

		relevant := segments[i:]
		switch {
		case len(relevant)%2 == 0:
			a.Form = Uncompressed
			a.UncompressedPath = "/" + strings.Join(relevant, "/")
		case len(relevant) == 3 && bitstream.IsBase64(relevant[2]):
			a.Form = PartiallyCompressed
			a.UncompressedPath = "/" + strings.Join(relevant[:2], "/")
			a.CompressedPath = relevant[2]
		default:
			continue
		}
		a.Components = relevant
		a.PrimaryAI = code
		a.URIStem = stem(i)
		return a
	}

	if n := len(segments); n > 0 && a.Protocol != "" && bitstream.IsBase64(segments[n-1]) {
		a.Form = FullyCompressed
		a.Components = segments[n-1:]
		a.CompressedPath = segments[n-1]
		a.URIStem = stem(n - 1)
	}
	return a
}

// queryPair is a single key=value from a query string, its value decoded.
type queryPair struct {
	key, value string
}

// parseQuery splits a query string on '&', skipping empty parameters. A
// parameter without '=' has an empty value.
func parseQuery(qs string) ([]queryPair, error) {
	var pairs []queryPair
	for _, param := range strings.Split(qs, "&") {
		if param == "" {
			continue
		}
		key, value := param, ""
		if i := strings.IndexByte(param, '='); i >= 0 {
			key, value = param[:i], param[i+1:]
		}
		v, err := Unescape(value)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, queryPair{key: key, value: v})
	}
	return pairs, nil
}
