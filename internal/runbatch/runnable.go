// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
)

// Runnable is something that can be run as part of a batch (either a command or a nested batch).
type Runnable interface {
	// Run executes the command or batch and returns the results in input order.
	// A failure is returned as an error and no results.
	Run(context.Context) (Results, error)
	// GetLabel returns the label or description of the command or batch.
	GetLabel() string
}
