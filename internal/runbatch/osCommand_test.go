// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/matt-FFFFFF/gorobocopy/internal/progress"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var robocopySuccessCodes = []int{0, 1, 2, 3, 4, 5, 6, 7, 8}

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh as a fake robocopy")
	}
}

func shCommand(label, script string) *OSCommand {
	return &OSCommand{
		Label:            label,
		Path:             "/bin/sh",
		Args:             []string{"-c", script},
		SuccessExitCodes: robocopySuccessCodes,
	}
}

type recordingReporter struct {
	mu     sync.Mutex
	events []progress.Event
}

func (r *recordingReporter) Report(e progress.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
}

func (r *recordingReporter) Close() {}

func (r *recordingReporter) lines(stderr bool) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string

	for _, e := range r.events {
		if e.Type == progress.EventOutput && e.Data.IsStderr == stderr {
			out = append(out, e.Data.OutputLine)
		}
	}

	return out
}

func (r *recordingReporter) types() []progress.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []progress.EventType

	for _, e := range r.events {
		if e.Type != progress.EventOutput {
			out = append(out, e.Type)
		}
	}

	return out
}

func TestOSCommand_Success(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	cmd := shCommand("d1", "echo one; echo two; echo oops 1>&2")

	results, err := cmd.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	assert.Equal(t, "d1", res.Label)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "one\ntwo", res.StdOut)
	assert.Equal(t, "oops", res.StdErr)
	assert.Positive(t, res.Duration)
}

func TestOSCommand_NonFatalExitCodes(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	for _, code := range []string{"1", "3", "8"} {
		cmd := shCommand("d1", "echo copied; echo warning 1>&2; exit "+code)

		results, err := cmd.Run(context.Background())
		require.NoError(t, err, "exit code %s should succeed", code)
		assert.Equal(t, []string{"copied"}, results.StdOut())
	}
}

func TestOSCommand_FatalExitCode(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	tests := []struct {
		name       string
		script     string
		wantDiag   string
		wantString string
	}{
		{
			name:       "diagnostic from stdout",
			script:     `printf '%s\n' '  ROBOCOPY' '------' 'ERROR : Invalid Parameter #3 : "/bogus"' '' 'Simple Usage :: ROBOCOPY source destination'; exit 16`,
			wantDiag:   `ERROR : Invalid Parameter #3 : "/bogus"`,
			wantString: `d1 failed (exit code 16): ERROR : Invalid Parameter #3 : "/bogus"`,
		},
		{
			name:       "falls back to stderr",
			script:     "echo no divider here; echo '  access denied  ' 1>&2; exit 9",
			wantDiag:   "access denied",
			wantString: "d1 failed (exit code 9): access denied",
		},
		{
			name:       "no diagnostic at all",
			script:     "exit 16",
			wantDiag:   "",
			wantString: "d1 failed (exit code 16)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := shCommand("d1", tt.script).Run(context.Background())
			require.Error(t, err)
			assert.Nil(t, results)
			require.ErrorIs(t, err, ErrProcessFailed)

			var pe *ProcessError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "d1", pe.Label)
			assert.Equal(t, tt.wantDiag, pe.Diagnostic)
			assert.Equal(t, tt.wantString, err.Error())
		})
	}
}

func TestOSCommand_DefaultSuccessExitCode(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	cmd := &OSCommand{Path: "/bin/sh", Args: []string{"-c", "exit 1"}}

	_, err := cmd.Run(context.Background())

	var pe *ProcessError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.ExitCode)
	assert.Equal(t, "sh", pe.Label)
}

func TestOSCommand_NotFound(t *testing.T) {
	defer goleak.VerifyNone(t)

	reporter := &recordingReporter{}
	cmd := &OSCommand{
		Label:    "missing",
		Path:     "/not/a/real/command",
		Reporter: reporter,
	}

	results, err := cmd.Run(context.Background())
	require.ErrorIs(t, err, ErrCouldNotStartProcess)
	assert.NotErrorIs(t, err, ErrProcessFailed)
	assert.Nil(t, results)
	assert.Equal(t, []progress.EventType{progress.EventFailed}, reporter.types())
}

func TestOSCommand_ContextCancelled(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := shCommand("sleepy", "exec sleep 10").Run(ctx)

	require.ErrorIs(t, err, ErrProcessKilled)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestOSCommand_ReporterReceivesLines(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	reporter := &recordingReporter{}
	cmd := shCommand("d1", "printf 'a\\r\\nb\\r\\n'; echo e1 1>&2; echo c; echo e2 1>&2")
	cmd.Reporter = reporter

	results, err := cmd.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, reporter.lines(false))
	assert.Equal(t, []string{"e1", "e2"}, reporter.lines(true))
	assert.Equal(t, []progress.EventType{progress.EventStarted, progress.EventCompleted}, reporter.types())
	assert.Equal(t, "a\nb\nc", results[0].StdOut)
}

func TestOSCommand_StartedEventCarriesCommandLine(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	reporter := &recordingReporter{}
	cmd := shCommand("d1", "echo hi")
	cmd.Reporter = reporter

	_, err := cmd.Run(context.Background())
	require.NoError(t, err)

	reporter.mu.Lock()
	first := reporter.events[0]
	reporter.mu.Unlock()

	assert.Equal(t, progress.EventStarted, first.Type)
	assert.Equal(t, "/bin/sh -c echo hi", first.Data.CommandLine)
}

func TestOSCommand_ProgressCarriesLastLine(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	stubs := gostub.Stub(&tickerInterval, 50*time.Millisecond)
	defer stubs.Reset()

	reporter := &recordingReporter{}
	cmd := shCommand("d1", "echo first; echo '  12%  copying'; sleep 0.4")
	cmd.Reporter = reporter

	_, err := cmd.Run(context.Background())
	require.NoError(t, err)

	reporter.mu.Lock()
	defer reporter.mu.Unlock()

	var progressLines []string

	for _, e := range reporter.events {
		if e.Type == progress.EventProgress {
			progressLines = append(progressLines, e.Data.OutputLine)
		}
	}

	require.NotEmpty(t, progressLines)
	assert.Equal(t, "  12%  copying", progressLines[len(progressLines)-1])
}

func TestOSCommand_ReporterOnFailure(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	reporter := &recordingReporter{}
	cmd := shCommand("d1", "echo partial; exit 16")
	cmd.Reporter = reporter

	_, err := cmd.Run(context.Background())
	require.Error(t, err)

	assert.Equal(t, []string{"partial"}, reporter.lines(false))
	assert.Equal(t, []progress.EventType{progress.EventStarted, progress.EventFailed}, reporter.types())

	reporter.mu.Lock()
	last := reporter.events[len(reporter.events)-1]
	reporter.mu.Unlock()
	assert.Equal(t, 16, last.Data.ExitCode)
	assert.ErrorIs(t, last.Data.Error, ErrProcessFailed)
}

func TestOSCommand_StartReturnsTask(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	task := shCommand("d1", "echo hi").Start(context.Background())
	assert.Equal(t, "d1", task.Label())

	select {
	case <-task.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("task did not settle")
	}

	r1, err1 := task.Wait()
	r2, err2 := task.Wait()

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Same(t, r1[0], r2[0])
}
