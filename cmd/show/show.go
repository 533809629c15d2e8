// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show provides the show command, which prints the robocopy command
// lines a job file would run.
package show

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/gorobocopy/internal/ctxlog"
	"github.com/matt-FFFFFF/gorobocopy/internal/jobfile"
	"github.com/matt-FFFFFF/gorobocopy/internal/robocopy"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag   = "file"
	cliExitStr = ""
)

// ShowCmd is the command that prints the robocopy command lines of job files without running them.
var ShowCmd = &cli.Command{
	Name:        "show",
	Usage:       "Show the robocopy command lines a job file would run",
	Description: "Print one robocopy command line per destination, without running anything.",
	Flags:       flags(),
	Action:      actionFunc,
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    fileFlag,
			Aliases: []string{"f"},
			Usage: "Specify the URL of the job file to show. " +
				"Supports Hashicorp's go-getter syntax. Specify multiple times to show multiple jobs.",
		},
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	urls := cmd.StringSlice(fileFlag)
	if len(urls) == 0 {
		logger.Error("Please specify at least one job file using the --file or -f flag.")
		return cli.Exit(cliExitStr, 1)
	}

	for _, u := range urls {
		opts, err := jobfile.Get(ctx, u)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to load job file %s: %s", u, err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		if err := opts.Validate(); err != nil {
			logger.Error(fmt.Sprintf("Invalid job file %s: %s", u, err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		commands, err := robocopy.BuildCommands(opts)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to build commands for %s: %s", u, err.Error()))
			return cli.Exit(cliExitStr, 1)
		}

		if len(urls) > 1 {
			fmt.Fprintf(cmd.Writer, "# %s\n", u) //nolint:errcheck
		}

		for _, c := range commands {
			fmt.Fprintln(cmd.Writer, c.String()) //nolint:errcheck
		}
	}

	return nil
}
