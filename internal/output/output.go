/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package output renders command results as text, JSON, YAML, or CBOR.
package output

import (
	"encoding/json"
	"fmt"
	"github.com/fxamacker/cbor/v2"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/internal/config"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"sort"
)

// cborMode writes Core Deterministic CBOR: sorted map keys and the smallest
// encodings, so equal results always produce identical bytes. Types with a
// MarshalText method are written as text strings.
var cborMode cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString
	var err error
	if cborMode, err = opts.EncMode(); err != nil {
		panic("output: CBOR encoder initialization failed: " + err.Error())
	}
}

// Printer writes results to a stream in one format.
type Printer struct {
	w      io.Writer
	format string
	pretty bool
}

// New returns a Printer for one of the config output formats. JSON is
// indented when w is a terminal.
func New(w io.Writer, format string) (*Printer, error) {
	switch format {
	case config.Text, config.JSON, config.YAML, config.CBOR:
	default:
		return nil, errors.Errorf("unknown output format %q", format)
	}
	p := &Printer{w: w, format: format}
	if f, ok := w.(*os.File); ok {
		p.pretty = term.IsTerminal(int(f.Fd()))
	}
	return p, nil
}

// Pretty forces indented JSON on or off.
func (p *Printer) Pretty(on bool) *Printer {
	p.pretty = on
	return p
}

// Print writes v. In text format, strings are written as a line, string maps
// as sorted key=value lines, and anything else as YAML.
func (p *Printer) Print(v interface{}) error {
	var err error
	switch p.format {
	case config.JSON:
		enc := json.NewEncoder(p.w)
		enc.SetEscapeHTML(false)
		if p.pretty {
			enc.SetIndent("", "  ")
		}
		err = enc.Encode(v)
	case config.YAML:
		err = p.yaml(v)
	case config.CBOR:
		var b []byte
		if b, err = cborMode.Marshal(v); err == nil {
			_, err = p.w.Write(b)
		}
	default:
		err = p.text(v)
	}
	return errors.Wrapf(err, "unable to write %s output", p.format)
}

func (p *Printer) yaml(v interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (p *Printer) text(v interface{}) error {
	switch t := v.(type) {
	case string:
		_, err := fmt.Fprintln(p.w, t)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(p.w, t.String())
		return err
	case map[string]string:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, err := fmt.Fprintf(p.w, "%s=%s\n", k, t[k]); err != nil {
				return err
			}
		}
		return nil
	}
	return p.yaml(v)
}
