// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/gorobocopy/internal/ctxlog"
)

var _ Runnable = (*SerialBatch)(nil)

// SerialBatch represents a collection of commands, which are run one after another.
// The first failure stops the batch: later commands never start and the
// results of earlier commands are discarded.
type SerialBatch struct {
	Label    string     // Label of the batch
	Commands []Runnable // The commands or nested batches to run
}

// GetLabel implements the Runnable interface for SerialBatch.
func (b *SerialBatch) GetLabel() string {
	return b.Label
}

// Run implements the Runnable interface for SerialBatch.
func (b *SerialBatch) Run(ctx context.Context) (Results, error) {
	logger := ctxlog.Logger(ctx).
		With("label", b.Label).
		With("runnableType", "SerialBatch")

	results := make(Results, 0, len(b.Commands))

	for i, cmd := range b.Commands {
		if err := ctx.Err(); err != nil {
			logger.Debug("context done, not starting remaining commands", "remaining", len(b.Commands)-i)

			return nil, fmt.Errorf("%s: %w: %w", cmd.GetLabel(), ErrCancelled, err)
		}

		logger.Debug("running command", "index", i, "commandLabel", cmd.GetLabel())

		childResults, err := cmd.Run(ctx)
		if err != nil {
			logger.Debug("command failed, aborting batch", "index", i, "error", err)

			return nil, err
		}

		results = append(results, childResults...)
	}

	return results, nil
}
