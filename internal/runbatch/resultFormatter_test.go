// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResults(t *testing.T) {
	results := Results{
		{Label: `d:\backup`, ExitCode: 0, StdOut: "line one\n\nline two", Duration: 1500 * time.Millisecond},
		{Label: `\\nas\share`, ExitCode: 1},
		{ExitCode: 0},
	}

	tests := []struct {
		name    string
		options *OutputOptions
		want    []string
		notWant []string
	}{
		{
			name:    "defaults",
			want:    []string{`✓ d:\backup in 1.5s`, `✓ \\nas\share (exit code: 1)`, "✓ [unnamed]"},
			notWant: []string{"line one"},
		},
		{
			name:    "with stdout",
			options: &OutputOptions{IncludeStdOut: true},
			want:    []string{"➜ Output:", "     line one\n\n     line two\n"},
			notWant: []string{"1.5s"},
		},
		{
			name: "with exit code description",
			options: &OutputOptions{DescribeExitCode: func(code int) string {
				if code == 1 {
					return "files copied"
				}

				return ""
			}},
			want: []string{`✓ d:\backup (exit code: 0)`, `(exit code: 1, files copied)`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteResults(&buf, results, tt.options))

			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}

			for _, nw := range tt.notWant {
				assert.NotContains(t, buf.String(), nw)
			}
		})
	}
}

func TestWriteFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "process error with diagnostic",
			err:  &ProcessError{Label: "d2", ExitCode: 16, Diagnostic: "ERROR: disk full"},
			want: "✗ d2 (exit code: 16)\n  ➜ Error:\n     ERROR: disk full\n",
		},
		{
			name: "process error without diagnostic",
			err:  &ProcessError{Label: "d2", ExitCode: 16},
			want: "✗ d2 (exit code: 16)\n",
		},
		{
			name: "other error",
			err:  errors.New("could not start process"),
			want: "✗ [unnamed] (exit code: -1)\n  ➜ Error:\n     could not start process\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteFailure(&buf, tt.err, nil))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
