// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package robocopy

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name     string
		opts     *Options
		wantErrs []string
	}{
		{
			name: "minimal",
			opts: &Options{Source: "c:/src", Destinations: Destinations{"d:/dst"}},
		},
		{
			name: "no source dir job",
			opts: &Options{Destinations: Destinations{"d:/dst"}, Job: &JobOptions{NoSourceDir: true}},
		},
		{
			name: "no destination dir job",
			opts: &Options{Source: "c:/src", Job: &JobOptions{NoDestinationDir: true}},
		},
		{
			name: "run times without colon",
			opts: &Options{
				Source:       "c:/src",
				Destinations: Destinations{"d:/dst"},
				Copy:         &CopyOptions{RunTimes: &RunTimes{Start: "2200", End: "06:00"}},
			},
		},
		{
			name: "threads not set",
			opts: &Options{
				Source:       "c:/src",
				Destinations: Destinations{"d:/dst"},
				Copy:         &CopyOptions{Threads: 0},
			},
		},
		{
			name: "negative threads",
			opts: &Options{
				Source:       "c:/src",
				Destinations: Destinations{"d:/dst"},
				Copy:         &CopyOptions{Threads: -1},
			},
			wantErrs: []string{"copy.threads must be between 0 and 128 (0 = not set), got -1"},
		},
		{
			name:     "missing source and destination",
			opts:     &Options{},
			wantErrs: []string{"source is required", "at least one destination is required"},
		},
		{
			name:     "empty destination entry",
			opts:     &Options{Source: "c:/src", Destinations: Destinations{"d:/dst", ""}},
			wantErrs: []string{"destination 1 is empty"},
		},
		{
			name: "bad numbers",
			opts: &Options{
				Source:       "c:/src",
				Destinations: Destinations{"d:/dst"},
				Copy:         &CopyOptions{Levels: -1, Threads: 129},
				File:         &FileOptions{MinimumSize: -5},
				Retry:        &RetryOptions{Count: -1, Wait: -2},
			},
			wantErrs: []string{
				"copy.levels must not be negative",
				"copy.threads must be between 0 and 128 (0 = not set), got 129",
				"file.minimum_size must not be negative",
				"retry.count must not be negative",
				"retry.wait must not be negative",
			},
		},
		{
			name: "bad run times",
			opts: &Options{
				Source:       "c:/src",
				Destinations: Destinations{"d:/dst"},
				Copy:         &CopyOptions{RunTimes: &RunTimes{Start: "25:00", End: "noon"}},
			},
			wantErrs: []string{`copy.run_times.start must be HH:MM, got "25:00"`, `copy.run_times.end must be HH:MM, got "noon"`},
		},
		{
			name: "log output without file",
			opts: &Options{
				Source:       "c:/src",
				Destinations: Destinations{"d:/dst"},
				Logging:      &LoggingOptions{Output: &LogOutput{Overwrite: true}},
			},
			wantErrs: []string{"logging.output.file is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, ErrInvalidOptions)

			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			assert.Len(t, merr.Errors, len(tt.wantErrs))

			for _, want := range tt.wantErrs {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestOptions_ValidateNil(t *testing.T) {
	var opts *Options

	err := opts.Validate()
	require.ErrorIs(t, err, ErrInvalidOptions)
	require.ErrorIs(t, err, ErrNilOptions)
}
