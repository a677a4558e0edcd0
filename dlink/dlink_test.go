/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package dlink

import (
	"fmt"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/compress"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
	"strings"
	"testing"
)

const gtin = "09506000134352"

func TestEscape(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(Escape("ABC123"), "ABC123")
	w.ShouldBeEqual(Escape("A/B%C d"), "A%2FB%25C%20d")
	w.ShouldBeEqual(Escape("#/%&+,!()*':;<=>?"),
		"%23%2F%25%26%2B%2C%21%28%29%2A%27%3A%3B%3C%3D%3E%3F")
	w.ShouldBeEqual(Escape("é"), "%C3%A9")

	s := w.ShouldHaveResult(Unescape("A%2FB%25C%20d+")).(string)
	w.ShouldBeEqual(s, "A/B%C d+")
	_, err := Unescape("%ZZ")
	w.ShouldFail(err)
}

func TestAnalyze(t *testing.T) {
	for i, tt := range []struct {
		uri  string
		want Analysis
	}{
		{"https://id.gs1.org/01/09506000134352?3103=000189#frag", Analysis{
			Protocol: "https://", Domain: "id.gs1.org", PathInfo: "/01/09506000134352",
			Components: []string{"01", gtin}, URIStem: "https://id.gs1.org",
			QueryString: "3103=000189", Fragment: "frag", Form: Uncompressed, PrimaryAI: "01",
			UncompressedPath: "/01/09506000134352"}},
		{"http://example.com/my/stem/gtin/09506000134352/lot/ABC/", Analysis{
			Protocol: "http://", Domain: "example.com", PathInfo: "/my/stem/gtin/09506000134352/lot/ABC",
			Components: []string{"gtin", gtin, "lot", "ABC"}, URIStem: "http://example.com/my/stem",
			Form: Uncompressed, PrimaryAI: "01", UncompressedPath: "/gtin/09506000134352/lot/ABC"}},
		{"https://id.gs1.org/01/09506000134352?3103=000189;k=v", Analysis{
			Protocol: "https://", Domain: "id.gs1.org", PathInfo: "/01/09506000134352",
			Components: []string{"01", gtin}, URIStem: "https://id.gs1.org",
			QueryString: "3103=000189&k=v", Form: Uncompressed, PrimaryAI: "01",
			UncompressedPath: "/01/09506000134352"}},
		// an SSCC-like serial isn't mistaken for the identifier
		{"https://id.gs1.org/01/09506000134352/21/00", Analysis{
			Protocol: "https://", Domain: "id.gs1.org", PathInfo: "/01/09506000134352/21/00",
			Components: []string{"01", gtin, "21", "00"}, URIStem: "https://id.gs1.org",
			Form: Uncompressed, PrimaryAI: "01", UncompressedPath: "/01/09506000134352/21/00"}},
		{"https://id.gs1.org/01/09506000134352/CCNV4JG", Analysis{
			Protocol: "https://", Domain: "id.gs1.org", PathInfo: "/01/09506000134352/CCNV4JG",
			Components: []string{"01", gtin, "CCNV4JG"}, URIStem: "https://id.gs1.org",
			Form: PartiallyCompressed, PrimaryAI: "01", UncompressedPath: "/01/09506000134352",
			CompressedPath: "CCNV4JG"}},
		{"https://example.com/dl/LRFKk4XBoAAXo", Analysis{
			Protocol: "https://", Domain: "example.com", PathInfo: "/dl/LRFKk4XBoAAXo",
			Components: []string{"LRFKk4XBoAAXo"}, URIStem: "https://example.com/dl",
			Form: FullyCompressed, CompressedPath: "LRFKk4XBoAAXo"}},
		{"id.gs1.org/LRFKk4XBoAAXo", Analysis{
			Domain: "id.gs1.org", PathInfo: "/LRFKk4XBoAAXo", URIStem: "id.gs1.org"}},
		{"https://example.com/a.html", Analysis{
			Protocol: "https://", Domain: "example.com", PathInfo: "/a.html",
			URIStem: "https://example.com"}},
		{"https://example.com", Analysis{
			Protocol: "https://", Domain: "example.com", PathInfo: "/",
			URIStem: "https://example.com"}},
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			got := Analyze(tt.uri)
			if diff := cmp.Diff(&tt.want, got); diff != "" {
				t.Errorf("analysis of %q differs (-want +got):\n%s", tt.uri, diff)
			}
		})
	}
}

func TestFormString(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(FullyCompressed.String(), "fully compressed")
	b := w.ShouldHaveResult(PartiallyCompressed.MarshalText()).([]byte)
	w.ShouldBeEqual(string(b), "partially compressed")
	w.ShouldBeEqual(Form(42).String(), "unrecognized")
}

func TestBuild(t *testing.T) {
	for i, tt := range []struct {
		name   string
		values ai.Values
		opts   BuildOptions
		uri    string
	}{
		{"attribute in query", ai.Values{"01": gtin, "3103": "000189"}, BuildOptions{},
			"https://id.gs1.org/01/09506000134352?3103=000189"},
		{"qualifiers in path", ai.Values{"01": gtin, "21": "X1", "10": "ABC", "17": "201231"}, BuildOptions{},
			"https://id.gs1.org/01/09506000134352/10/ABC/21/X1?17=201231"},
		{"short names", ai.Values{"01": gtin, "21": "X1", "10": "ABC", "17": "201231", "3103": "000189"},
			BuildOptions{ShortNames: true},
			"https://id.gs1.org/gtin/09506000134352/lot/ABC/ser/X1?exp=201231&3103=000189"},
		{"custom stem", ai.Values{"414": "9501101020917", "254": "32a/b"},
			BuildOptions{URIStem: "https://example.com/gs1/"},
			"https://example.com/gs1/414/9501101020917/254/32a%2Fb"},
		{"GTIN-13 padded", ai.Values{"01": "9506000134352"}, BuildOptions{},
			"https://id.gs1.org/01/09506000134352"},
		{"other pairs", ai.Values{"01": gtin, "note": "a b"},
			BuildOptions{Other: map[string]string{"linkType": "gs1:pip"}},
			"https://id.gs1.org/01/09506000134352?note=a%20b&linkType=gs1%3Apip"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			uri := w.ShouldHaveResult(Build(tt.values, tt.opts)).(string)
			w.ShouldBeEqual(uri, tt.uri)
		})
	}
}

func TestBuildFailures(t *testing.T) {
	w := expect.WrapT(t)

	var se *ai.StructureError
	_, err := Build(ai.Values{"10": "ABC"}, BuildOptions{})
	w.StopOnMismatch().ShouldBeTrue(errors.As(err, &se))
	w.ShouldBeEqual(len(se.Found), 0)

	_, err = Build(ai.Values{"01": gtin, "00": "106141412345678908"}, BuildOptions{})
	w.StopOnMismatch().ShouldBeTrue(errors.As(err, &se))
	w.ShouldBeEqual(se.Found, []string{"00", "01"})

	var cde *ai.CheckDigitError
	_, err = Build(ai.Values{"01": "09506000134353"}, BuildOptions{})
	w.StopOnMismatch().ShouldBeTrue(errors.As(err, &cde))
	w.ShouldBeEqual(cde.Expected, 2)

	var syn *ai.SyntaxError
	_, err = Build(ai.Values{"01": gtin, "10": strings.Repeat("A", 21)}, BuildOptions{})
	w.ShouldBeTrue(errors.As(err, &syn))

	_, err = Build(ai.Values{"01": "1234567895"}, BuildOptions{})
	w.ShouldBeTrue(errors.As(err, &syn))

	var pe *ai.ParseError
	_, err = Build(ai.Values{"01": gtin, "05": "1"}, BuildOptions{})
	w.ShouldBeTrue(errors.As(err, &pe))

	_, err = Build(ai.Values{"01": gtin, "k": "1"}, BuildOptions{Other: map[string]string{"k": "2"}})
	w.ShouldFail(err)
}

func TestExtract(t *testing.T) {
	for i, tt := range []struct {
		name   string
		uri    string
		values ai.Values
		other  map[string]string
	}{
		{"attribute", "https://id.gs1.org/01/09506000134352?3103=000189",
			ai.Values{"01": gtin, "3103": "000189"}, nil},
		{"short names", "https://example.com/gtin/09506000134352/lot/ABC?exp=201231",
			ai.Values{"01": gtin, "10": "ABC", "17": "201231"}, nil},
		{"padded GTIN", "https://id.gs1.org/01/9506000134352",
			ai.Values{"01": gtin}, nil},
		{"other pairs", "https://id.gs1.org/01/09506000134352?linkType=gs1%3Apip;flag",
			ai.Values{"01": gtin}, map[string]string{"linkType": "gs1:pip", "flag": ""}},
		{"encoded value", "https://id.gs1.org/414/9501101020917/254/32a%2Fb#x",
			ai.Values{"414": "9501101020917", "254": "32a/b"}, nil},
		{"same value twice", "https://id.gs1.org/01/09506000134352/10/ABC?10=ABC",
			ai.Values{"01": gtin, "10": "ABC"}, nil},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			values, other, err := Extract(tt.uri)
			w.StopOnMismatch().ShouldSucceed(err)
			if diff := cmp.Diff(tt.values, values); diff != "" {
				t.Errorf("values differ (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.other, other, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("other pairs differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractFailures(t *testing.T) {
	for i, tt := range []struct {
		name, uri string
	}{
		{"check digit", "https://id.gs1.org/01/09506000134353"},
		{"unknown numeric key", "https://id.gs1.org/01/09506000134352?05=1"},
		{"bad attribute", "https://id.gs1.org/01/09506000134352?3103=18"},
		{"conflicting values", "https://id.gs1.org/01/09506000134352/10/ABC?lot=DEF"},
		{"compressed", "https://id.gs1.org/LRFKk4XBoAAXo"},
		{"no identifier", "https://example.com/10/ABC"},
		{"bad escape", "https://id.gs1.org/01/09506000134352?k=%ZZ"},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			_, _, err := Extract(tt.uri)
			w.ShouldFail(err)
			w.Logf("%v", err)
		})
	}
}

func TestBuildExtractRoundTrip(t *testing.T) {
	for i, values := range []ai.Values{
		{"01": gtin},
		{"01": gtin, "3103": "000189"},
		{"01": gtin, "22": "2A", "10": "AB/C", "21": "X&Y=1", "17": "201231", "3922": "123"},
		{"00": "106141412345678908", "400": "PO-1/2"},
		{"8003": "09506000134352abc", "8011": "42"},
		{"8006": "095060001343520102", "21": "X1"},
		{"414": "9501101020917", "254": "32a-b", "7030": "250ABC"},
	} {
		for _, short := range []bool{false, true} {
			t.Run(fmt.Sprintf("%02d_%v", i, short), func(t *testing.T) {
				w := expect.WrapT(t)
				uri := w.ShouldHaveResult(Build(values, BuildOptions{ShortNames: short})).(string)
				w.Logf("%s", uri)
				got, other, err := Extract(uri)
				w.StopOnMismatch().ShouldSucceed(err)
				w.ShouldBeEqual(len(other), 0)
				if diff := cmp.Diff(values, got); diff != "" {
					t.Errorf("round trip of %s differs (-want +got):\n%s", uri, diff)
				}
			})
		}
	}
}

func TestBuildCompressed(t *testing.T) {
	w := expect.WrapT(t)

	uri := w.ShouldHaveResult(BuildCompressed(ai.Values{"01": gtin, "3103": "000189"},
		CompressOptions{Optimize: true})).(string)
	w.ShouldBeEqual(uri, "https://id.gs1.org/LRFKk4XBoAAXo")

	uri = w.ShouldHaveResult(BuildCompressed(ai.Values{"01": gtin, "10": "ABC123"},
		CompressOptions{Optimize: true, URIStem: "https://example.com/"})).(string)
	w.ShouldBeEqual(uri, "https://example.com/CxFKk4XBoI1XgkY")

	uri = w.ShouldHaveResult(BuildCompressed(ai.Values{"01": gtin},
		CompressOptions{Other: map[string]string{"foo": "bar"}})).(string)
	w.ShouldBeEqual(uri, "https://id.gs1.org/ARFKk4XBoA?foo=bar")

	uri = w.ShouldHaveResult(BuildCompressed(ai.Values{"01": gtin},
		CompressOptions{CompressOther: true, Other: map[string]string{"foo": "bar"}})).(string)
	w.ShouldBeEqual(uri, "https://id.gs1.org/ARFKk4XBoeDfooYNtqs")

	// the identifier alone leaves nothing to compress
	uri = w.ShouldHaveResult(BuildCompressed(ai.Values{"01": gtin},
		CompressOptions{UncompressedPrimary: true, ShortNames: true})).(string)
	w.ShouldBeEqual(uri, "https://id.gs1.org/gtin/09506000134352")

	_, err := BuildCompressed(ai.Values{"10": "ABC"}, CompressOptions{})
	var se *ai.StructureError
	w.ShouldBeTrue(errors.As(err, &se))

	_, err = BuildCompressed(ai.Values{"01": "09506000134353"}, CompressOptions{})
	var cde *ai.CheckDigitError
	w.ShouldBeTrue(errors.As(err, &cde))
}

func TestCompressedRoundTrip(t *testing.T) {
	values := ai.Values{"01": gtin, "10": "ABC123", "21": "12345", "17": "201231", "3103": "000189"}
	other := map[string]string{"linkType": "gs1:pip"}

	for i, opts := range []CompressOptions{
		{},
		{Optimize: true},
		{Optimize: true, CompressOther: true},
		{UncompressedPrimary: true},
		{UncompressedPrimary: true, ShortNames: true, Optimize: true, CompressOther: true},
		{URIStem: "https://example.com/a/b", UncompressedPrimary: true},
	} {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			w := expect.WrapT(t)
			opts.Other = other
			uri := w.ShouldHaveResult(BuildCompressed(values, opts)).(string)
			w.Logf("%s", uri)

			a := Analyze(uri)
			if opts.UncompressedPrimary {
				w.ShouldBeEqual(a.Form, PartiallyCompressed)
			} else {
				w.ShouldBeEqual(a.Form, FullyCompressed)
			}

			got, gotOther, err := ExtractCompressed(uri)
			w.StopOnMismatch().ShouldSucceed(err)
			if diff := cmp.Diff(values, got); diff != "" {
				t.Errorf("values differ (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(other, gotOther); diff != "" {
				t.Errorf("other pairs differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractCompressed(t *testing.T) {
	w := expect.WrapT(t)

	values, other, err := ExtractCompressed("https://id.gs1.org/LRFKk4XBoAAXo")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(values, ai.Values{"01": gtin, "3103": "000189"})
	w.ShouldBeEqual(len(other), 0)

	// uncompressed links are accepted too
	values, _, err = ExtractCompressed("https://id.gs1.org/01/09506000134352?3103=000189")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(values, ai.Values{"01": gtin, "3103": "000189"})

	// query parameters join the decompressed values
	values, other, err = ExtractCompressed("https://id.gs1.org/LRFKk4XBoAAXo?lot=ABC&k=v")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(values, ai.Values{"01": gtin, "3103": "000189", "10": "ABC"})
	w.ShouldBeEqual(other, map[string]string{"k": "v"})

	_, _, err = ExtractCompressed("https://example.com/a.html")
	var pe *ai.ParseError
	w.ShouldBeTrue(errors.As(err, &pe))

	// "about" is base64, but 0x69 is not a known AI prefix
	_, _, err = ExtractCompressed("https://example.com/about")
	var uce *compress.UnsupportedCodeError
	w.ShouldBeTrue(errors.As(err, &uce))

	_, _, err = ExtractCompressed("https://id.gs1.org/LRFKk4XBoAAXo?3103=000190")
	w.ShouldFail(err)
}

func TestClassify(t *testing.T) {
	w := expect.WrapT(t)

	c := w.ShouldHaveResult(Classify(
		ai.Values{"01": gtin, "21": "X1", "10": "ABC", "17": "201231", "note": "n"},
		map[string]string{"k": "v"})).(*Classification)
	w.ShouldBeEqual(c.Identifier, Element{AI: "01", Value: gtin})
	w.ShouldBeEqual(c.Qualifiers, []Element{{"10", "ABC"}, {"21", "X1"}})
	w.ShouldBeEqual(c.DataAttributes, []Element{{"17", "201231"}})
	w.ShouldBeEqual(c.Other, map[string]string{"note": "n", "k": "v"})

	// 22 qualifies 01, but not 414
	c = w.ShouldHaveResult(Classify(
		ai.Values{"414": "9501101020917", "22": "2A", "254": "1"}, nil)).(*Classification)
	w.ShouldBeEqual(c.Qualifiers, []Element{{"254", "1"}, {"22", "2A"}})
	w.ShouldBeEqual(len(c.DataAttributes), 0)
	w.ShouldBeEqual(len(c.Other), 0)

	_, err := Classify(ai.Values{"10": "ABC"}, nil)
	var se *ai.StructureError
	w.ShouldBeTrue(errors.As(err, &se))
}
