// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"fmt"
	"os"

	"github.com/matt-FFFFFF/gorobocopy/cmd/run"
	"github.com/matt-FFFFFF/gorobocopy/cmd/schema"
	"github.com/matt-FFFFFF/gorobocopy/cmd/show"
	"github.com/urfave/cli/v3"
)

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
		show.ShowCmd,
		schema.SchemaCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "gorobocopy",
	Version:   fmt.Sprintf("%s (commit: %s)", Version, Commit),
	Description: `gorobocopy runs robocopy jobs described in YAML, HCL or JSON job files.
Each job copies one source to one or more destinations, running one robocopy
process per destination, in parallel or one after another.`,
	Usage:     "gorobocopy run -f backup.yaml",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
