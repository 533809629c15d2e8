// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"io"
	"time"
)

// Result represents the outcome of a successful command.
type Result struct {
	Label    string        // Label of the command
	ExitCode int           // Exit code of the process
	StdOut   string        // Captured stdout, lines joined with "\n"
	StdErr   string        // Captured stderr, lines joined with "\n"
	Duration time.Duration // Wall time from start to exit
}

// Results is a slice of Result pointers, in the order the commands were given.
type Results []*Result

// StdOut returns the captured stdout of each result, in order.
func (r Results) StdOut() []string {
	out := make([]string, len(r))
	for i, res := range r {
		out[i] = res.StdOut
	}

	return out
}

// WriteWithOptions outputs the results to the specified writer with the specified options.
func (r Results) WriteWithOptions(w io.Writer, options *OutputOptions) error {
	return WriteResults(w, r, options)
}
