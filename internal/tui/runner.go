// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/gorobocopy/internal/ctxlog"
	"github.com/matt-FFFFFF/gorobocopy/internal/progress"
	"github.com/matt-FFFFFF/gorobocopy/internal/runbatch"
)

// ErrUserQuit is the cancellation cause when the user quits the TUI while
// robocopy is still running.
var ErrUserQuit = errors.New("user quit the terminal UI")

// Runner manages the TUI application and progress event integration.
type Runner struct {
	model      *Model
	program    *tea.Program
	reporter   *Reporter
	quitOnDone bool
	mutex      sync.Mutex
}

// Reporter implements progress.Reporter and forwards events to the TUI.
type Reporter struct {
	program *tea.Program
	closed  bool
	mutex   sync.RWMutex
}

// NewReporter creates a new TUI progress reporter.
func NewReporter(program *tea.Program) *Reporter {
	return &Reporter{
		program: program,
	}
}

// Report implements progress.Reporter.
func (tr *Reporter) Report(event progress.Event) {
	tr.mutex.RLock()
	defer tr.mutex.RUnlock()

	if tr.closed || tr.program == nil {
		return
	}

	tr.program.Send(ProgressEventMsg{Event: event})
}

// Close implements progress.Reporter.
func (tr *Reporter) Close() {
	tr.mutex.Lock()
	defer tr.mutex.Unlock()
	tr.closed = true
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner, *[]tea.ProgramOption)

// WithProgramOptions passes extra options to the bubbletea program.
func WithProgramOptions(opts ...tea.ProgramOption) RunnerOption {
	return func(_ *Runner, po *[]tea.ProgramOption) {
		*po = append(*po, opts...)
	}
}

// WithQuitOnCompletion closes the TUI as soon as every process has finished,
// rather than waiting for the user to quit.
func WithQuitOnCompletion() RunnerOption {
	return func(r *Runner, _ *[]tea.ProgramOption) {
		r.quitOnDone = true
	}
}

// NewRunner creates a new TUI runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		model: NewModel(),
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	for _, o := range opts {
		o(r, &programOpts)
	}

	r.program = tea.NewProgram(r.model, programOpts...)
	r.reporter = NewReporter(r.program)

	return r
}

// Track adds a pending row for each label. Call it before Run.
func (r *Runner) Track(labels ...string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, l := range labels {
		r.model.row(l)
	}
}

// Reporter returns the progress reporter that feeds this TUI.
// Pass it to the commands before calling Run.
func (r *Runner) Reporter() progress.Reporter {
	return r.reporter
}

type runOutcome struct {
	results runbatch.Results
	err     error
}

// Run starts the TUI and executes runnable.
// If the user quits before runnable finishes, the run is cancelled with
// ErrUserQuit and Run waits for the processes to exit.
func (r *Runner) Run(ctx context.Context, runnable runbatch.Runnable) (runbatch.Results, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	outcomeCh := make(chan runOutcome, 1)

	go func() {
		results, err := runnable.Run(runCtx)
		outcomeCh <- runOutcome{results: results, err: err}
	}()

	tuiDone := make(chan error, 1)

	go func() {
		_, err := r.program.Run()
		tuiDone <- err
	}()

	var (
		outcome runOutcome
		tuiErr  error
	)

	select {
	case outcome = <-outcomeCh:
		r.program.Send(CommandCompletedMsg{Results: outcome.results, Err: outcome.err})

		if r.quitOnDone {
			r.program.Quit()
		}

		tuiErr = <-tuiDone

	case tuiErr = <-tuiDone:
		ctxlog.Info(ctx, "terminal UI closed before robocopy finished, stopping")
		cancel(ErrUserQuit)

		outcome = <-outcomeCh

	case <-ctx.Done():
		r.program.Quit()

		outcome = <-outcomeCh
		tuiErr = <-tuiDone
	}

	r.reporter.Close()

	if tuiErr != nil && !errors.Is(tuiErr, tea.ErrProgramKilled) {
		ctxlog.Error(ctx, "terminal UI error", "error", tuiErr)
	}

	return outcome.results, outcome.err
}
