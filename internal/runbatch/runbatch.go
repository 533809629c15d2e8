// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"errors"
	"fmt"
)

var (
	// ErrProcessFailed is matched by every *ProcessError.
	ErrProcessFailed = errors.New("process failed")
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrProcessKilled is returned when the process was killed because the context was cancelled.
	ErrProcessKilled = errors.New("process killed")
	// ErrCancelled is returned by a batch that was cancelled before a command could start.
	ErrCancelled = errors.New("cancelled before command started")
)

// ProcessError describes a process that ran to completion with a failing exit code.
type ProcessError struct {
	Label      string // Label of the command
	ExitCode   int    // Exit code of the process, -1 if it has none
	Diagnostic string // Error text recovered from the output, may be empty
}

// Error implements the error interface.
func (e *ProcessError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("%s failed (exit code %d)", e.Label, e.ExitCode)
	}

	return fmt.Sprintf("%s failed (exit code %d): %s", e.Label, e.ExitCode, e.Diagnostic)
}

// Unwrap makes errors.Is(err, ErrProcessFailed) true.
func (e *ProcessError) Unwrap() error {
	return ErrProcessFailed
}
