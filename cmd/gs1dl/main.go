/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// gs1dl converts GS1 identifiers between element strings, Digital Link URIs,
// compressed Digital Links, and SGTIN EPCs.
//
// Usage:
//
//	gs1dl link [flags] <element string>
//	gs1dl elements [flags] <digital link>
//	gs1dl compress [flags] <digital link>
//	gs1dl decompress [flags] <compressed digital link>
//	gs1dl analyze [flags] <uri>
//	gs1dl classify [flags] <digital link>
//	gs1dl epc [flags] <hex>
//	gs1dl lookup [flags] <ai or short name>...
//	gs1dl version
package main

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"io"
	"log/slog"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// debugEnv enables debug logging when set.
const debugEnv = "GS1DL_DEBUG"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}

	level := slog.LevelInfo
	if os.Getenv(debugEnv) != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	name, args := args[0], args[1:]
	switch name {
	case "version", "--version", "-v":
		fmt.Fprintf(stdout, "gs1dl %s\n", version)
		return 0
	case "help", "--help", "-h":
		printUsage(stdout)
		return 0
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", name)
		printUsage(stderr)
		return 2
	}

	logger = logger.With("command", name)
	if err := cmd.execute(name, args, stdout, stderr, logger); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		logger.Debug("command failed", "error", fmt.Sprintf("%+v", err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `gs1dl - convert between GS1 element strings, Digital Links, and EPCs

USAGE
    gs1dl <command> [flags] <input>

COMMANDS
    link        Element string to Digital Link (--compressed for the compressed form)
    elements    Digital Link, compressed or not, to element string
    compress    Uncompressed Digital Link to compressed
    decompress  Compressed Digital Link to uncompressed
    analyze     Show the structure of a URI
    classify    Group a Digital Link's values by role
    epc         SGTIN-96/198 hex to Digital Link
    lookup      Describe Application Identifiers by code or short name
    version     Show version

EXAMPLES
    gs1dl link '(01)09506000134352(3103)000189'
    gs1dl compress --optimize https://id.gs1.org/01/09506000134352?3103=000189
    gs1dl elements --unbracketed https://id.gs1.org/LRFKk4XBoAAXo
    gs1dl analyze --output json https://example.com/01/09506000134352/10/ABC

ENVIRONMENT
    GS1DL_CONFIG   Config file (.yaml, .yml, .json, .jsonc); --config overrides it
    GS1DL_DEBUG    Enable debug logging
`)
}
