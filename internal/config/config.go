/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads gs1dl settings.
//
// Settings come from a single file named by the --config flag or, failing
// that, the GS1DL_CONFIG environment variable. Files ending in .yaml or .yml
// are YAML; .json and .jsonc files are JSON, with comments and trailing commas
// allowed. Without a file, Default applies.
package config

import (
	"encoding/json"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink"
	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "GS1DL_CONFIG"

// Output formats.
const (
	Text = "text"
	JSON = "json"
	YAML = "yaml"
	CBOR = "cbor"
)

// Config holds the settings shared by every gs1dl command.
type Config struct {
	// URIStem precedes the identifier of generated Digital Links.
	URIStem string `yaml:"uri_stem" json:"uri_stem"`
	// ShortNames writes AIs by their short names, e.g. "gtin".
	ShortNames bool `yaml:"short_names" json:"short_names"`
	// Optimize uses super-codes when compressing.
	Optimize bool `yaml:"optimize" json:"optimize"`
	// CompressOther compresses non-GS1 query parameters.
	CompressOther bool `yaml:"compress_other" json:"compress_other"`
	// UncompressedPrimary keeps the identifier legible in compressed links.
	UncompressedPrimary bool `yaml:"uncompressed_primary" json:"uncompressed_primary"`
	// Output is one of text, json, yaml, or cbor.
	Output string `yaml:"output" json:"output"`
}

// Default returns the settings used without a config file.
func Default() *Config {
	return &Config{
		Optimize: true,
		Output:   Text,
	}
}

// Load reads the file at path, or the one named by GS1DL_CONFIG if path is
// empty. If neither names a file, it returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a config file. Settings it leaves out keep
// their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read config")
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		return nil, errors.Errorf("config %s: unknown extension %q; "+
			"use .yaml, .yml, .json, or .jsonc", path, ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate returns an error if the output format is unknown or the URI stem
// is malformed.
func (c *Config) Validate() error {
	switch c.Output {
	case Text, JSON, YAML, CBOR:
	default:
		return errors.Errorf("output must be one of text, json, yaml, or cbor, "+
			"but is %q", c.Output)
	}
	_, err := digitallink.NewConverter(c.Options())
	return err
}

// Options returns the conversion options the settings describe.
func (c *Config) Options() digitallink.Options {
	return digitallink.Options{
		URIStem:             c.URIStem,
		ShortNames:          c.ShortNames,
		Optimize:            c.Optimize,
		CompressOther:       c.CompressOther,
		UncompressedPrimary: c.UncompressedPrimary,
	}
}
