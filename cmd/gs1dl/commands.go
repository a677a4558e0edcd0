/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/dlink"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/internal/config"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/internal/output"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"io"
	"log/slog"
	"strconv"
)

// invocation is everything a command needs to produce its result.
type invocation struct {
	conv   digitallink.Converter
	args   []string
	logger *slog.Logger

	compressed  bool
	unbracketed bool
}

type command struct {
	usage string
	// nargs is the exact number of inputs, or -1 for at least one.
	nargs int
	// compressedFlag and bracketFlag add --compressed and --unbracketed.
	compressedFlag, bracketFlag bool
	run                         func(inv *invocation) (interface{}, error)
}

var commands = map[string]command{
	"link": {usage: "<element string>", nargs: 1, compressedFlag: true,
		run: func(inv *invocation) (interface{}, error) {
			if inv.compressed {
				return inv.conv.ElementStringToCompressedDigitalLink(inv.args[0])
			}
			return inv.conv.ElementStringToDigitalLink(inv.args[0])
		}},
	"elements": {usage: "<digital link>", nargs: 1, bracketFlag: true,
		run: func(inv *invocation) (interface{}, error) {
			return inv.conv.CompressedDigitalLinkToElementString(inv.args[0], !inv.unbracketed)
		}},
	"compress": {usage: "<digital link>", nargs: 1,
		run: func(inv *invocation) (interface{}, error) {
			return inv.conv.CompressWebURI(inv.args[0])
		}},
	"decompress": {usage: "<compressed digital link>", nargs: 1,
		run: func(inv *invocation) (interface{}, error) {
			return inv.conv.DecompressWebURI(inv.args[0])
		}},
	"analyze": {usage: "<uri>", nargs: 1,
		run: func(inv *invocation) (interface{}, error) {
			a := dlink.Analyze(inv.args[0])
			inv.logger.Debug("analyzed", "form", a.Form.String(), "primary", a.PrimaryAI)
			return a, nil
		}},
	"classify": {usage: "<digital link>", nargs: 1,
		run: func(inv *invocation) (interface{}, error) {
			values, other, err := dlink.ExtractCompressed(inv.args[0])
			if err != nil {
				return nil, err
			}
			return dlink.Classify(values, other)
		}},
	"epc": {usage: "<hex>", nargs: 1, compressedFlag: true,
		run: func(inv *invocation) (interface{}, error) {
			if inv.compressed {
				return inv.conv.EPCToCompressedDigitalLink(inv.args[0])
			}
			return inv.conv.EPCToDigitalLink(inv.args[0])
		}},
	"lookup": {usage: "<ai or short name>...", nargs: -1, run: lookup},
}

// execute parses flags, merges them over the config file, and prints the
// command's result.
func (c command) execute(name string, args []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	var configPath, outputFormat, stem string
	var shortNames, optimize, compressOther, uncompressedPrimary bool
	inv := &invocation{logger: logger}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gs1dl %s [flags] %s\n\nFlags:\n", name, c.usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&configPath, "config", "", "config file (default $"+config.EnvVar+")")
	fs.StringVarP(&outputFormat, "output", "o", config.Text, "output format: text, json, yaml, or cbor")
	fs.StringVar(&stem, "stem", "", "URI stem for generated links (default "+dlink.DefaultStem+")")
	fs.BoolVar(&shortNames, "short-names", false, "write AIs by short name, e.g. gtin")
	fs.BoolVar(&optimize, "optimize", true, "use super-codes when compressing")
	fs.BoolVar(&compressOther, "compress-other", false, "compress non-GS1 query parameters")
	fs.BoolVar(&uncompressedPrimary, "uncompressed-primary", false, "keep the identifier legible when compressing")
	if c.compressedFlag {
		fs.BoolVar(&inv.compressed, "compressed", false, "write a compressed Digital Link")
	}
	if c.bracketFlag {
		fs.BoolVar(&inv.unbracketed, "unbracketed", false, "write the unbracketed (barcode) form")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	inv.args = fs.Args()
	if (c.nargs >= 0 && len(inv.args) != c.nargs) || len(inv.args) == 0 {
		fs.Usage()
		return errors.Errorf("%s expects %s", name, c.usage)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if fs.Changed("output") {
		cfg.Output = outputFormat
	}
	if fs.Changed("stem") {
		cfg.URIStem = stem
	}
	if fs.Changed("short-names") {
		cfg.ShortNames = shortNames
	}
	if fs.Changed("optimize") {
		cfg.Optimize = optimize
	}
	if fs.Changed("compress-other") {
		cfg.CompressOther = compressOther
	}
	if fs.Changed("uncompressed-primary") {
		cfg.UncompressedPrimary = uncompressedPrimary
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Debug("settings", "stem", cfg.URIStem, "output", cfg.Output,
		"short_names", cfg.ShortNames, "optimize", cfg.Optimize)

	if inv.conv, err = digitallink.NewConverter(cfg.Options()); err != nil {
		return err
	}
	printer, err := output.New(stdout, cfg.Output)
	if err != nil {
		return err
	}

	result, err := c.run(inv)
	if err != nil {
		return err
	}
	return printer.Print(result)
}

// definition is the printable form of an AI's registry entry.
type definition struct {
	AI          string   `json:"ai" yaml:"ai"`
	Title       string   `json:"title" yaml:"title"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	ShortName   string   `json:"shortName,omitempty" yaml:"shortName,omitempty"`
	Kind        string   `json:"kind" yaml:"kind"`
	Format      string   `json:"format" yaml:"format"`
	FixedLength bool     `json:"fixedLength" yaml:"fixedLength"`
	CheckDigit  string   `json:"checkDigit,omitempty" yaml:"checkDigit,omitempty"`
	Qualifiers  []string `json:"qualifiers,omitempty" yaml:"qualifiers,omitempty"`
	Pattern     string   `json:"pattern" yaml:"pattern"`
}

func lookup(inv *invocation) (interface{}, error) {
	defs := make([]definition, 0, len(inv.args))
	for _, key := range inv.args {
		code, ok := ai.Resolve(key)
		if !ok {
			return nil, &ai.ParseError{Input: key, Reason: "unknown AI"}
		}
		d, _ := ai.Lookup(code)

		def := definition{
			AI:          d.AI,
			Title:       d.Title,
			Label:       d.Label,
			ShortName:   d.ShortCode,
			Kind:        d.Kind.String(),
			Format:      d.Format,
			FixedLength: d.FixedLength,
			Qualifiers:  d.Qualifiers,
			Pattern:     d.Pattern(),
		}
		switch d.CheckDigit {
		case ai.NoCheckDigit:
		case ai.LastDigit:
			def.CheckDigit = "last"
		default:
			def.CheckDigit = strconv.Itoa(int(d.CheckDigit))
		}
		defs = append(defs, def)
	}
	return defs, nil
}
