// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package robocopy

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/gorobocopy/internal/ctxlog"
	"github.com/matt-FFFFFF/gorobocopy/internal/progress"
	"github.com/matt-FFFFFF/gorobocopy/internal/runbatch"
)

// RunOption configures Run and NewBatch.
type RunOption func(*runConfig)

type runConfig struct {
	reporter progress.Reporter
	label    string
}

// WithReporter sends every output line and lifecycle event of every command to r.
func WithReporter(r progress.Reporter) RunOption {
	return func(c *runConfig) {
		c.reporter = r
	}
}

// WithLabel sets the label of the batch, used in logs.
func WithLabel(label string) RunOption {
	return func(c *runConfig) {
		c.label = label
	}
}

// Run validates opts, runs robocopy once per destination and returns one
// result per destination in destination order.
// Destinations are copied in parallel unless opts.Serial is set. In both
// modes the first failure is returned as the error and no results.
func Run(ctx context.Context, opts *Options, options ...RunOption) (runbatch.Results, error) {
	runID := uuid.NewString()
	ctx = ctxlog.New(ctx, ctxlog.Logger(ctx).With("runID", runID))

	batch, err := NewBatch(opts, options...)
	if err != nil {
		ctxlog.Debug(ctx, "invalid options", "error", err)

		return nil, err
	}

	ctxlog.Info(ctx, "starting robocopy", "destinations", len(opts.Destinations), "serial", opts.Serial)

	results, err := batch.Run(ctx)
	if err != nil {
		ctxlog.Info(ctx, "robocopy failed", "error", err)

		return nil, err //nolint:wrapcheck
	}

	ctxlog.Info(ctx, "robocopy finished", "results", len(results))

	return results, nil
}

// NewBatch validates opts and returns the batch Run would execute, without running it.
func NewBatch(opts *Options, options ...RunOption) (runbatch.Runnable, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfg := &runConfig{
		label: "robocopy",
	}
	for _, o := range options {
		o(cfg)
	}

	commands, err := BuildCommands(opts)
	if err != nil {
		return nil, err
	}

	runnables := make([]runbatch.Runnable, len(commands))
	for i, cmd := range commands {
		runnables[i] = &runbatch.OSCommand{
			Label:            commandLabel(cmd),
			Path:             cmd.Path,
			Args:             cmd.Args,
			SuccessExitCodes: slices.Clone(SuccessExitCodes),
			Reporter:         cfg.reporter,
		}
	}

	if opts.Serial {
		return &runbatch.SerialBatch{Label: cfg.label, Commands: runnables}, nil
	}

	return &runbatch.ParallelBatch{Label: cfg.label, Commands: runnables}, nil
}

func commandLabel(cmd Command) string {
	if cmd.Destination != "" {
		return cmd.Destination
	}

	return cmd.Path
}
