// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run provides the run command, which executes robocopy job files.
package run

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matt-FFFFFF/gorobocopy/internal/ctxlog"
	"github.com/matt-FFFFFF/gorobocopy/internal/jobfile"
	"github.com/matt-FFFFFF/gorobocopy/internal/progress"
	"github.com/matt-FFFFFF/gorobocopy/internal/robocopy"
	"github.com/matt-FFFFFF/gorobocopy/internal/runbatch"
	"github.com/matt-FFFFFF/gorobocopy/internal/tui"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag         = "file"
	serialFlag       = "serial"
	tuiFlag          = "tui"
	quietFlag        = "quiet"
	outputStdOutFlag = "output-stdout"
	cliExitStr       = ""
	outputBufferSize = 256
)

// RunCmd is the command that runs one or more robocopy job files.
var RunCmd = &cli.Command{
	Name:  "run",
	Usage: "Run robocopy job files",
	Description: `Run the robocopy jobs defined in one or more job files.
Job files may be YAML (.yaml, .yml), HCL (.hcl) or JSON (.json).
One robocopy process runs per destination. Jobs given with several --file flags
run one after another, stopping at the first failure.

Job file URLs use Hashicorp's go-getter syntax, which allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.
`,
	Flags:  flags(),
	Action: actionFunc,
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    fileFlag,
			Aliases: []string{"f"},
			Usage: "Specify the URL of the job file to run. " +
				"Supports Hashicorp's go-getter syntax for fetching files from various sources. " +
				"Specify multiple times to run multiple jobs.",
			OnlyOnce: false,
		},
		&cli.BoolFlag{
			Name:        serialFlag,
			Aliases:     []string{"s"},
			Usage:       "Copy to the destinations of each job one at a time, overriding the job file",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        tuiFlag,
			Aliases:     []string{"t", "interactive"},
			Usage:       "Run with interactive Terminal User Interface (TUI) showing real-time progress",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        quietFlag,
			Aliases:     []string{"q"},
			Usage:       "Do not print robocopy output while it runs",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
		&cli.BoolFlag{
			Name:        outputStdOutFlag,
			Aliases:     []string{"stdout"},
			Usage:       "Include the captured robocopy output in the results",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	logger.Debug("Running run command")

	urls := cmd.StringSlice(fileFlag)
	if len(urls) == 0 {
		logger.Error("Please specify at least one job file using the --file or -f flag.")
		return cli.Exit(cliExitStr, 1)
	}

	jobs, err := loadJobs(ctx, urls, cmd.Bool(serialFlag))
	if err != nil {
		logger.Error(err.Error())
		return cli.Exit(cliExitStr, 1)
	}

	var (
		reporter progress.Reporter
		runner   *tui.Runner
	)

	switch {
	case cmd.Bool(tuiFlag):
		runner = tui.NewRunner()
		reporter = runner.Reporter()
	case cmd.Bool(quietFlag):
		reporter = progress.NullReporter{}
	default:
		cr := progress.NewChannelReporter(ctx, outputBufferSize)
		cr.Listen(progress.NewWriterReporter(cmd.Writer, destinationCount(jobs) > 1))
		reporter = cr
	}

	defer reporter.Close()

	runnable, err := buildRunnable(jobs, urls, reporter)
	if err != nil {
		logger.Error(err.Error())
		return cli.Exit(cliExitStr, 1)
	}

	var (
		res    runbatch.Results
		runErr error
	)

	if runner != nil {
		logger.Info("Starting interactive TUI mode...")

		buf := new(bytes.Buffer)
		tuiCtx := ctxlog.NewForTUI(ctx, buf)

		runner.Track(labels(runnable)...)
		res, runErr = runner.Run(tuiCtx, runnable)

		buf.WriteTo(cmd.ErrWriter) //nolint:errcheck
	} else {
		res, runErr = runnable.Run(ctx)
	}

	// Flush mirrored output before the summary. Copies still running after a
	// failure are no longer mirrored.
	reporter.Close()

	opts := runbatch.DefaultOutputOptions()
	opts.IncludeStdOut = cmd.Bool(outputStdOutFlag)
	opts.DescribeExitCode = robocopy.DescribeExitCode

	if runErr != nil {
		if err := runbatch.WriteFailure(cmd.ErrWriter, runErr, opts); err != nil {
			logger.Error(fmt.Sprintf("Failed to write failure: %s", err.Error()))
		}

		return cli.Exit(cliExitStr, 1)
	}

	if err := res.WriteWithOptions(cmd.Writer, opts); err != nil {
		logger.Error(fmt.Sprintf("Failed to write results: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

// loadJobs fetches and decodes every job file, in order.
func loadJobs(ctx context.Context, urls []string, serial bool) ([]*robocopy.Options, error) {
	jobs := make([]*robocopy.Options, 0, len(urls))

	for i, u := range urls {
		if u == "" {
			return nil, fmt.Errorf("the job file URL at index %d is empty", i)
		}

		opts, err := jobfile.Get(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("failed to load job file %s: %w", u, err)
		}

		if serial {
			opts.Serial = true
		}

		jobs = append(jobs, opts)
	}

	return jobs, nil
}

// buildRunnable returns one batch per job. Several jobs run in sequence.
func buildRunnable(jobs []*robocopy.Options, urls []string, reporter progress.Reporter) (runbatch.Runnable, error) {
	batches := make([]runbatch.Runnable, len(jobs))

	for i, job := range jobs {
		batch, err := robocopy.NewBatch(job, robocopy.WithReporter(reporter), robocopy.WithLabel(urls[i]))
		if err != nil {
			return nil, fmt.Errorf("invalid job file %s: %w", urls[i], err)
		}

		batches[i] = batch
	}

	if len(batches) == 1 {
		return batches[0], nil
	}

	return &runbatch.SerialBatch{Label: "jobs", Commands: batches}, nil
}

func destinationCount(jobs []*robocopy.Options) int {
	n := 0
	for _, j := range jobs {
		n += max(len(j.Destinations), 1)
	}

	return n
}

// labels returns the labels of the processes runnable will start, in start order.
func labels(r runbatch.Runnable) []string {
	switch b := r.(type) {
	case *runbatch.SerialBatch:
		return childLabels(b.Commands)
	case *runbatch.ParallelBatch:
		return childLabels(b.Commands)
	default:
		return []string{r.GetLabel()}
	}
}

func childLabels(commands []runbatch.Runnable) []string {
	var out []string
	for _, c := range commands {
		out = append(out, labels(c)...)
	}

	return out
}
