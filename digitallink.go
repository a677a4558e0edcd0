/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package digitallink converts between the forms a set of GS1 identifiers
// can take: element strings, Digital Link URIs, compressed Digital Links, and
// SGTIN EPC tag data.
//
// The subpackages do the work; a Converter holds the choices that every
// conversion shares, such as the URI stem and whether to use short names.
package digitallink

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/dlink"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/elementstring"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/epc"
	"github.com/pkg/errors"
	"regexp"
)

// stemRegex is based on RFC-3986#3.2 and used to check URI stems: an http(s)
// scheme, a host of RFC-1035 labels, an optional port and an optional path
// that doesn't end with a slash.
var stemRegex = regexp.MustCompile(
	`^https?://[a-zA-Z0-9]([-a-zA-Z0-9]{0,62})(\.[a-zA-Z0-9][-a-zA-Z0-9]{0,62})*(:\d{1,5})?(/[-._~a-zA-Z0-9%]+)*$`)

// maxStemLength bounds the host and path portion of a stem.
const maxStemLength = 255

// Options configure a Converter.
type Options struct {
	// URIStem is the protocol, host, and optional path that precede a Digital
	// Link's identifier; dlink.DefaultStem if empty.
	URIStem string
	// ShortNames writes AIs by their short names, e.g. "gtin" for (01).
	ShortNames bool
	// Optimize uses super-codes when compressing.
	Optimize bool
	// CompressOther compresses non-GS1 query parameters instead of leaving
	// them in the query string.
	CompressOther bool
	// UncompressedPrimary leaves the primary identifier legible in
	// compressed links.
	UncompressedPrimary bool
}

// Converter converts between GS1 identifier forms using a fixed set of
// options. Its zero value is not usable; use NewConverter.
type Converter struct {
	opts Options
}

// NewConverter returns a Converter for the given options, or an error if the
// URI stem is malformed.
func NewConverter(opts Options) (Converter, error) {
	c := Converter{opts: opts}
	if err := c.setStem(opts.URIStem); err != nil {
		return Converter{}, err
	}
	return c, nil
}

// Stem returns the URI stem the converter writes Digital Links under.
func (c Converter) Stem() string {
	return c.opts.URIStem
}

func (c *Converter) setStem(stem string) error {
	if stem == "" {
		c.opts.URIStem = dlink.DefaultStem
		return nil
	}

	// Fixing a trailing slash is unambiguous; anything else is rejected rather
	// than silently rewritten.
	for len(stem) > 1 && stem[len(stem)-1] == '/' {
		stem = stem[:len(stem)-1]
	}
	if len(stem) > maxStemLength+len("https://") || !stemRegex.MatchString(stem) {
		return errors.Errorf("bad URI stem '%s': "+
			"stems must be an http or https URL with a host name, "+
			"an optional port, and an optional path, "+
			"without a query string or fragment", stem)
	}
	c.opts.URIStem = stem
	return nil
}

func (c Converter) buildOptions() dlink.BuildOptions {
	return dlink.BuildOptions{ShortNames: c.opts.ShortNames, URIStem: c.opts.URIStem}
}

func (c Converter) compressOptions(stem string, other map[string]string) dlink.CompressOptions {
	return dlink.CompressOptions{
		URIStem:             stem,
		ShortNames:          c.opts.ShortNames,
		Optimize:            c.opts.Optimize,
		CompressOther:       c.opts.CompressOther,
		UncompressedPrimary: c.opts.UncompressedPrimary,
		Other:               other,
	}
}

// ElementStringToDigitalLink converts a bracketed or unbracketed element
// string to an uncompressed Digital Link.
func (c Converter) ElementStringToDigitalLink(elements string) (string, error) {
	values, err := elementstring.Parse(elements)
	if err != nil {
		return "", err
	}
	return dlink.Build(values, c.buildOptions())
}

// ElementStringToCompressedDigitalLink converts a bracketed or unbracketed
// element string to a compressed Digital Link.
func (c Converter) ElementStringToCompressedDigitalLink(elements string) (string, error) {
	values, err := elementstring.Parse(elements)
	if err != nil {
		return "", err
	}
	return dlink.BuildCompressed(values, c.compressOptions(c.opts.URIStem, nil))
}

// DigitalLinkToElementString converts an uncompressed Digital Link to an
// element string. Query parameters that aren't AIs have no element string
// form, so they're dropped.
func (c Converter) DigitalLinkToElementString(uri string, bracketed bool) (string, error) {
	values, _, err := dlink.Extract(uri)
	if err != nil {
		return "", err
	}
	return elementstring.Format(values, bracketed)
}

// CompressedDigitalLinkToElementString converts a compressed (or
// uncompressed) Digital Link to an element string, dropping non-GS1 pairs.
func (c Converter) CompressedDigitalLinkToElementString(uri string, bracketed bool) (string, error) {
	values, _, err := dlink.ExtractCompressed(uri)
	if err != nil {
		return "", err
	}
	return elementstring.Format(values, bracketed)
}

// CompressWebURI compresses an uncompressed Digital Link, keeping the stem of
// the input URI. Non-GS1 query parameters are carried over.
func (c Converter) CompressWebURI(uri string) (string, error) {
	a := dlink.Analyze(uri)
	if a.Form != dlink.Uncompressed {
		return "", errors.Errorf("%s is not an uncompressed Digital Link (%s)", uri, a.Form)
	}
	values, other, err := dlink.Extract(uri)
	if err != nil {
		return "", err
	}
	return dlink.BuildCompressed(values, c.compressOptions(a.URIStem, other))
}

// DecompressWebURI expands a compressed Digital Link to its uncompressed
// form, keeping the stem of the input URI. Non-GS1 pairs join the query.
func (c Converter) DecompressWebURI(uri string) (string, error) {
	a := dlink.Analyze(uri)
	if !IsCompressedWebURI(uri) {
		return "", errors.Errorf("%s is not a compressed Digital Link (%s)", uri, a.Form)
	}
	values, other, err := dlink.ExtractCompressed(uri)
	if err != nil {
		return "", err
	}
	return dlink.Build(values, dlink.BuildOptions{
		ShortNames: c.opts.ShortNames,
		URIStem:    a.URIStem,
		Other:      other,
	})
}

// IsCompressedWebURI returns true if uri is a fully or partially compressed
// Digital Link.
func IsCompressedWebURI(uri string) bool {
	switch dlink.Analyze(uri).Form {
	case dlink.FullyCompressed, dlink.PartiallyCompressed:
		return true
	}
	return false
}

// EPCToDigitalLink converts hex-encoded SGTIN-96 or SGTIN-198 tag data to an
// uncompressed Digital Link for the GTIN and serial it carries.
func (c Converter) EPCToDigitalLink(epcHex string) (string, error) {
	values, err := epc.SGTINToValues(epcHex)
	if err != nil {
		return "", errors.Wrapf(err, "unable to decode EPC %s", epcHex)
	}
	return dlink.Build(values, c.buildOptions())
}

// EPCToCompressedDigitalLink converts hex-encoded SGTIN tag data to a
// compressed Digital Link.
func (c Converter) EPCToCompressedDigitalLink(epcHex string) (string, error) {
	values, err := epc.SGTINToValues(epcHex)
	if err != nil {
		return "", errors.Wrapf(err, "unable to decode EPC %s", epcHex)
	}
	return dlink.BuildCompressed(values, c.compressOptions(c.opts.URIStem, nil))
}
