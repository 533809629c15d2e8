// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/matt-FFFFFF/gorobocopy/internal/ctxlog"
	"github.com/matt-FFFFFF/gorobocopy/internal/linereader"
	"github.com/matt-FFFFFF/gorobocopy/internal/progress"
)

// progressLineLength caps the output line carried by progress events.
const progressLineLength = 120

var (
	tickerInterval = 10 * time.Second // Interval for the process watchdog ticker
)

var _ Runnable = (*OSCommand)(nil)

// OSCommand represents a single external process to be run in a batch.
type OSCommand struct {
	Label            string            // Label used in logs, events and errors. Defaults to the executable name.
	Path             string            // The command to run (e.g. executable full path).
	Args             []string          // Arguments to the command, do not include the executable name itself.
	SuccessExitCodes []int             // Exit codes that indicate success, defaults to 0.
	Reporter         progress.Reporter // Receives every output line. Must be safe for concurrent use.
}

// GetLabel implements the Runnable interface for OSCommand.
func (c *OSCommand) GetLabel() string {
	if c.Label != "" {
		return c.Label
	}

	return filepath.Base(c.Path)
}

// Run implements the Runnable interface for OSCommand.
// It starts the process and blocks until it has exited.
func (c *OSCommand) Run(ctx context.Context) (Results, error) {
	return c.Start(ctx).Wait()
}

// Start launches the process and returns immediately.
// Output is streamed to the reporter while the process runs; the returned task
// settles once the process has exited and both output streams are drained.
// Cancelling ctx kills the process.
func (c *OSCommand) Start(ctx context.Context) *Task {
	label := c.GetLabel()
	task := newTask(label)
	reporter := c.reporter()

	logger := ctxlog.Logger(ctx).
		With("runnableType", "OSCommand").
		With("label", label)

	cmd := exec.Command(c.Path, c.Args...)
	setCommandLine(cmd, c.Path, c.Args)

	logger.Debug("command info", "commandLine", cmd.String())

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		c.fail(task, reporter, fmt.Errorf("%s: %w: %w", label, ErrFailedToCreatePipe, err))

		return task
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		c.fail(task, reporter, fmt.Errorf("%s: %w: %w", label, ErrFailedToCreatePipe, err))

		return task
	}

	logger.Debug("starting process")

	if err := cmd.Start(); err != nil {
		logger.Debug("process failed to start", "error", err)
		c.fail(task, reporter, fmt.Errorf("%s: %w: %w", label, ErrCouldNotStartProcess, err))

		return task
	}

	startTime := time.Now()

	logger.Debug("process started", "pid", cmd.Process.Pid)

	reporter.Report(progress.Event{
		Label:     label,
		Type:      progress.EventStarted,
		Message:   fmt.Sprintf("Starting %s at %s", label, startTime.Format(ctxlog.TimeFormat)),
		Timestamp: startTime,
		Data:      progress.EventData{CommandLine: cmd.String()},
	})

	go c.wait(ctx, logger, task, cmd, stdout, stderr, startTime)

	return task
}

func (c *OSCommand) wait(
	ctx context.Context,
	logger *slog.Logger,
	task *Task,
	cmd *exec.Cmd,
	stdout, stderr io.Reader,
	startTime time.Time,
) {
	label := task.Label()
	reporter := c.reporter()

	outReader := linereader.New(stdout, func(line string) {
		reporter.Report(progress.NewOutputEvent(label, line, false))
	})
	errReader := linereader.New(stderr, func(line string) {
		reporter.Report(progress.NewOutputEvent(label, line, true))
	})

	// Both streams must be drained before Wait closes the pipes.
	var (
		wg      sync.WaitGroup
		readErr [2]error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()

		readErr[0] = outReader.Drain()
	}()

	go func() {
		defer wg.Done()

		readErr[1] = errReader.Drain()
	}()

	// This is the process watchdog that reports progress and kills the process if ctx is cancelled.
	done := make(chan struct{})
	watchdogDone := make(chan struct{})

	var killed atomic.Bool

	go func() {
		defer close(watchdogDone)

		ticker := time.NewTicker(tickerInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				elapsed := time.Since(startTime).Round(time.Second)
				lastLine := outReader.LastLine(progressLineLength)
				logger.Info("still running", "elapsed", elapsed.String(), "lastLine", lastLine)
				reporter.Report(progress.Event{
					Label:     label,
					Type:      progress.EventProgress,
					Message:   fmt.Sprintf("Running %s: [%s] %s", label, elapsed, lastLine),
					Timestamp: time.Now(),
					Data: progress.EventData{
						Elapsed:    elapsed,
						OutputLine: lastLine,
					},
				})

			case <-ctx.Done():
				logger.Info("context done, killing process")

				if killPs(ctx, cmd.Process) {
					killed.Store(true)
				}

				return

			case <-done:
				return
			}
		}
	}()

	logger.Debug("waiting for output streams to close")
	wg.Wait()

	waitErr := cmd.Wait()

	close(done)
	<-watchdogDone

	duration := time.Since(startTime)
	exitCode := cmd.ProcessState.ExitCode()
	stdoutText := outReader.Text()
	stderrText := errReader.Text()

	logger.Debug("process finished",
		"exitCode", exitCode,
		"duration", duration.String(),
		"stdoutBytes", len(stdoutText),
		"stderrBytes", len(stderrText),
	)

	var exitErr *exec.ExitError

	switch {
	case killed.Load():
		c.fail(task, reporter, fmt.Errorf("%s: %w: %w", label, ErrProcessKilled, context.Cause(ctx)))

		return

	case waitErr != nil && !errors.As(waitErr, &exitErr):
		c.fail(task, reporter, fmt.Errorf("%s: %w", label, waitErr))

		return

	case !slices.Contains(c.successExitCodes(), exitCode):
		diagnostic, ok := ExtractDiagnostic(stdoutText)
		if !ok {
			diagnostic = strings.TrimSpace(stderrText)
		}

		logger.Debug("process exit code indicates failure", "exitCode", exitCode)
		c.fail(task, reporter, &ProcessError{
			Label:      label,
			ExitCode:   exitCode,
			Diagnostic: diagnostic,
		})

		return
	}

	if err := errors.Join(readErr[:]...); err != nil {
		c.fail(task, reporter, fmt.Errorf("%s: %w", label, err))

		return
	}

	logger.Debug("process exit code indicates success", "exitCode", exitCode)

	reporter.Report(progress.Event{
		Label:     label,
		Type:      progress.EventCompleted,
		Message:   fmt.Sprintf("Finished %s at %s", label, time.Now().Format(ctxlog.TimeFormat)),
		Timestamp: time.Now(),
		Data:      progress.EventData{ExitCode: exitCode},
	})

	task.settle(Results{&Result{
		Label:    label,
		ExitCode: exitCode,
		StdOut:   stdoutText,
		StdErr:   stderrText,
		Duration: duration,
	}}, nil)
}

func (c *OSCommand) fail(task *Task, reporter progress.Reporter, err error) {
	exitCode := -1

	var pe *ProcessError
	if errors.As(err, &pe) {
		exitCode = pe.ExitCode
	}

	reporter.Report(progress.Event{
		Label:     task.Label(),
		Type:      progress.EventFailed,
		Message:   err.Error(),
		Timestamp: time.Now(),
		Data: progress.EventData{
			ExitCode: exitCode,
			Error:    err,
		},
	})

	task.settle(nil, err)
}

func (c *OSCommand) reporter() progress.Reporter {
	if c.Reporter == nil {
		return progress.NullReporter{}
	}

	return c.Reporter
}

func (c *OSCommand) successExitCodes() []int {
	if c.SuccessExitCodes == nil {
		return []int{0}
	}

	return c.SuccessExitCodes
}

// killPs kills the process. It reports false if the process had already finished.
func killPs(ctx context.Context, ps *os.Process) bool {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Logger(ctx).Debug("process already done", "pid", ps.Pid)

			return false
		}

		ctxlog.Logger(ctx).Error("process kill error", "pid", ps.Pid, "error", err)

		return false
	}

	ctxlog.Logger(ctx).Info("process killed", "pid", ps.Pid)

	return true
}
