/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package digitallink

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
	"testing"
)

func TestNewConverter(t *testing.T) {
	for i, tt := range []struct {
		stem, expected string
	}{
		{"", "https://id.gs1.org"},
		{"https://example.com", "https://example.com"},
		{"https://example.com/gs1/", "https://example.com/gs1"},
		{"http://localhost:8080/a/b", "http://localhost:8080/a/b"},
		{"https://id.example-co.co.uk", "https://id.example-co.co.uk"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.stem), func(t *testing.T) {
			w := expect.WrapT(t)
			c := w.ShouldHaveResult(NewConverter(Options{URIStem: tt.stem})).(Converter)
			w.ShouldBeEqual(c.Stem(), tt.expected)
		})
	}

	for i, stem := range []string{
		"example.com",
		"ftp://example.com",
		"https://",
		"https://exa mple.com",
		"https://example.com?x=1",
		"https://example.com/#frag",
		"https://-example.com",
	} {
		t.Run(fmt.Sprintf("bad_%02d_%s", i, stem), func(t *testing.T) {
			w := expect.WrapT(t)
			_, err := NewConverter(Options{URIStem: stem})
			w.Logf("%+v", err)
			w.ShouldFail(err)
		})
	}
}

func TestElementStringConversions(t *testing.T) {
	w := expect.WrapT(t)
	c := w.ShouldHaveResult(NewConverter(Options{Optimize: true})).(Converter)

	uri := w.ShouldHaveResult(c.ElementStringToDigitalLink("(01)09506000134352(3103)000189")).(string)
	w.ShouldBeEqual(uri, "https://id.gs1.org/01/09506000134352?3103=000189")

	uri = w.ShouldHaveResult(c.ElementStringToCompressedDigitalLink("]C101095060001343523103000189")).(string)
	w.ShouldBeEqual(uri, "https://id.gs1.org/LRFKk4XBoAAXo")

	es := w.ShouldHaveResult(c.DigitalLinkToElementString(
		"https://id.gs1.org/01/09506000134352?3103=000189&linkType=all", true)).(string)
	w.ShouldBeEqual(es, "(01)09506000134352(3103)000189")

	es = w.ShouldHaveResult(c.CompressedDigitalLinkToElementString(
		"https://id.gs1.org/LRFKk4XBoAAXo", false)).(string)
	w.ShouldBeEqual(es, "01095060001343523103000189")

	es = w.ShouldHaveResult(c.CompressedDigitalLinkToElementString(
		"https://id.gs1.org/LRFKk4XBoAAXo", true)).(string)
	w.ShouldBeEqual(es, "(01)09506000134352(3103)000189")

	short := w.ShouldHaveResult(NewConverter(Options{ShortNames: true,
		URIStem: "https://example.com/"})).(Converter)
	uri = w.ShouldHaveResult(short.ElementStringToDigitalLink("(01)09506000134352(10)ABC(17)201231")).(string)
	w.ShouldBeEqual(uri, "https://example.com/gtin/09506000134352/lot/ABC?exp=201231")
}

func TestElementStringConversionFailures(t *testing.T) {
	w := expect.WrapT(t)
	c := w.ShouldHaveResult(NewConverter(Options{})).(Converter)

	_, err := c.ElementStringToDigitalLink("(01)09506000134353")
	var cde *ai.CheckDigitError
	w.StopOnMismatch().ShouldBeTrue(errors.As(err, &cde))
	w.ShouldBeEqual(cde.Expected, 2)

	_, err = c.ElementStringToDigitalLink("(3103)000189")
	var se *ai.StructureError
	w.ShouldBeTrue(errors.As(err, &se))

	_, err = c.ElementStringToCompressedDigitalLink("(01)09506000134352(9876)X")
	w.ShouldFail(err)

	_, err = c.DigitalLinkToElementString("https://id.gs1.org/LRFKk4XBoAAXo", true)
	w.ShouldFail(err)

	_, err = c.CompressedDigitalLinkToElementString("https://example.com/a.html", true)
	w.ShouldFail(err)
}

func TestWebURICompression(t *testing.T) {
	for i, tt := range []struct {
		name                 string
		opts                 Options
		uncompressed, packed string
	}{
		{"optimized", Options{Optimize: true},
			"https://id.gs1.org/01/09506000134352?3103=000189",
			"https://id.gs1.org/LRFKk4XBoAAXo"},
		{"stem with path", Options{Optimize: true},
			"https://example.com/dl/01/09506000134352/10/ABC123",
			"https://example.com/dl/CxFKk4XBoI1XgkY"},
		{"other pairs in query", Options{},
			"https://id.gs1.org/01/09506000134352?foo=bar",
			"https://id.gs1.org/ARFKk4XBoA?foo=bar"},
		{"other pairs compressed", Options{CompressOther: true},
			"https://id.gs1.org/01/09506000134352?foo=bar",
			"https://id.gs1.org/ARFKk4XBoeDfooYNtqs"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			c := w.ShouldHaveResult(NewConverter(tt.opts)).(Converter)

			packed := w.ShouldHaveResult(c.CompressWebURI(tt.uncompressed)).(string)
			w.ShouldBeEqual(packed, tt.packed)
			w.ShouldBeTrue(IsCompressedWebURI(packed))
			w.ShouldBeFalse(IsCompressedWebURI(tt.uncompressed))

			unpacked := w.ShouldHaveResult(c.DecompressWebURI(packed)).(string)
			w.ShouldBeEqual(unpacked, tt.uncompressed)
		})
	}
}

func TestWebURICompression_partial(t *testing.T) {
	w := expect.WrapT(t)
	c := w.ShouldHaveResult(NewConverter(Options{UncompressedPrimary: true})).(Converter)

	packed := w.ShouldHaveResult(c.CompressWebURI(
		"https://id.gs1.org/01/09506000134352/10/ABC123?3103=000189")).(string)
	w.ShouldBeTrue(IsCompressedWebURI(packed))
	unpacked := w.ShouldHaveResult(c.DecompressWebURI(packed)).(string)
	w.ShouldBeEqual(unpacked, "https://id.gs1.org/01/09506000134352/10/ABC123?3103=000189")
}

func TestWebURICompression_failures(t *testing.T) {
	w := expect.WrapT(t)
	c := w.ShouldHaveResult(NewConverter(Options{})).(Converter)

	_, err := c.CompressWebURI("https://id.gs1.org/LRFKk4XBoAAXo")
	w.ShouldFail(err)
	_, err = c.CompressWebURI("https://example.com/a.html")
	w.ShouldFail(err)
	_, err = c.DecompressWebURI("https://id.gs1.org/01/09506000134352")
	w.ShouldFail(err)

	w.ShouldBeFalse(IsCompressedWebURI("https://example.com"))
	w.ShouldBeFalse(IsCompressedWebURI("LRFKk4XBoAAXo"))
}

func TestEPCToDigitalLink(t *testing.T) {
	w := expect.WrapT(t)
	c := w.ShouldHaveResult(NewConverter(Options{ShortNames: true})).(Converter)

	uri := w.ShouldHaveResult(c.EPCToDigitalLink("30143639F84191AD22901607")).(string)
	w.ShouldBeEqual(uri, "https://id.gs1.org/gtin/00888446671424/ser/193853396487")

	uri = w.ShouldHaveResult(c.EPCToDigitalLink(
		"36143639F84191A465D9B37A176C5EB1769D72E557D52E5CBC")).(string)
	w.ShouldBeEqual(uri, "https://id.gs1.org/gtin/00888446671424/ser/Hello%21%3B1%3D1%3B%27..%2A_%2A..%2F")

	packed := w.ShouldHaveResult(c.EPCToCompressedDigitalLink("30143639F84191AD22901607")).(string)
	w.ShouldBeTrue(IsCompressedWebURI(packed))
	es := w.ShouldHaveResult(c.CompressedDigitalLinkToElementString(packed, true)).(string)
	w.ShouldBeEqual(es, "(01)00888446671424(21)193853396487")

	_, err := c.EPCToDigitalLink("E2801160600002054CC2096F")
	w.ShouldFail(err)
	_, err = c.EPCToDigitalLink("3004000000003E0000000001")
	w.ShouldFail(err)
}
