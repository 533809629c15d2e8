// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"slices"

	"github.com/matt-FFFFFF/gorobocopy/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

var _ Runnable = (*ParallelBatch)(nil)

// ParallelBatch represents a collection of commands, which are all started at once.
// Run returns as soon as one command fails. Siblings of a failed command are
// never cancelled and run to completion in the background.
type ParallelBatch struct {
	Label    string     // Label of the batch
	Commands []Runnable // The commands or nested batches to run
}

// outcome is what one command of a ParallelBatch sends back.
type outcome struct {
	index   int
	results Results
	err     error
}

// GetLabel implements the Runnable interface for ParallelBatch.
func (b *ParallelBatch) GetLabel() string {
	return b.Label
}

// Run implements the Runnable interface for ParallelBatch.
// Results are returned in the order of Commands. If any command fails, the
// error of the first one to fail is returned straight away and no results.
func (b *ParallelBatch) Run(ctx context.Context) (Results, error) {
	logger := ctxlog.Logger(ctx).
		With("label", b.Label).
		With("runnableType", "ParallelBatch")

	logger.Debug("starting commands", "count", len(b.Commands))

	// Buffered so that commands finishing after a failure never block.
	outcomes := make(chan outcome, len(b.Commands))

	var g errgroup.Group

	for i, cmd := range b.Commands {
		g.Go(func() error {
			res, err := cmd.Run(ctx)
			outcomes <- outcome{index: i, results: res, err: err}

			return err
		})
	}

	perCommand := make([]Results, len(b.Commands))

	for range b.Commands {
		o := <-outcomes
		if o.err != nil {
			logger.Debug("command failed, not waiting for the others",
				"commandLabel", b.Commands[o.index].GetLabel(), "error", o.err)

			go func() {
				_ = g.Wait()

				logger.Debug("remaining commands finished")
			}()

			return nil, o.err
		}

		perCommand[o.index] = o.results
	}

	return slices.Concat(perCommand...), nil
}
