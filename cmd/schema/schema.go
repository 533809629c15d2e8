// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package schema provides the schema command for documenting the job file format.
package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/matt-FFFFFF/gorobocopy/internal/robocopy"
	"github.com/matt-FFFFFF/gorobocopy/internal/schema"
	"github.com/urfave/cli/v3"
)

const (
	formatFlag = "format"
	title      = "gorobocopy job file"
	summary    = "A robocopy job: one source copied to one or more destinations. " +
		"Bracketed text in descriptions names the robocopy switch a field produces."
)

// SchemaCmd is the command that displays the job file schema.
var SchemaCmd = &cli.Command{
	Name:        "schema",
	Usage:       "Display the job file schema",
	Description: "Display the job file schema as JSON Schema or as Markdown documentation.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        formatFlag,
			Aliases:     []string{"f"},
			Usage:       "Output format: json or markdown",
			DefaultText: "json",
			Value:       "json",
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	generator := schema.NewGenerator(title, summary)

	var err error

	switch format := strings.ToLower(cmd.String(formatFlag)); format {
	case "json":
		err = generator.WriteJSONSchema(cmd.Writer, &robocopy.Options{})
	case "markdown", "md":
		err = generator.WriteMarkdown(cmd.Writer, &robocopy.Options{})
	default:
		return cli.Exit(fmt.Sprintf("Invalid format: %s. Valid formats: json, markdown", format), 1)
	}

	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to write schema: %s", err.Error()), 1)
	}

	return nil
}
