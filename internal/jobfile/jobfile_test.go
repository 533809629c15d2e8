// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package jobfile

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/gorobocopy/internal/robocopy"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlJob = `
source: c:/data
destination:
  - d:/backup
  - \\nas\backup
serial: true
files: ["*.docx"]
copy:
  mirror: true
  threads: 16
  run_times:
    start: "22:00"
    end: "06:00"
file:
  exclude_dirs: [tmp, obj]
  maximum_age: "30"
retry:
  count: 3
  wait: 5
logging:
  hide_progress: true
  output:
    file: c:/logs/backup.log
`

const hclJob = `
source      = "c:/data"
destination = ["d:/backup", "\\\\nas\\backup"]
serial      = true
files       = ["*.docx"]

copy {
  mirror  = true
  threads = 16

  run_times {
    start = "22:00"
    end   = "06:00"
  }
}

file {
  exclude_dirs = ["tmp", "obj"]
  maximum_age  = "30"
}

retry {
  count = 3
  wait  = 5
}

logging {
  hide_progress = true

  output {
    file = "c:/logs/backup.log"
  }
}
`

const jsonJob = `{
  "source": "c:/data",
  "destination": ["d:/backup", "\\\\nas\\backup"],
  "serial": true,
  "files": ["*.docx"],
  "copy": {
    "mirror": true,
    "threads": 16,
    "run_times": {"start": "22:00", "end": "06:00"}
  },
  "file": {"exclude_dirs": ["tmp", "obj"], "maximum_age": "30"},
  "retry": {"count": 3, "wait": 5},
  "logging": {"hide_progress": true, "output": {"file": "c:/logs/backup.log"}}
}`

func expectedJob() *robocopy.Options {
	return &robocopy.Options{
		Source:       "c:/data",
		Destinations: robocopy.Destinations{"d:/backup", `\\nas\backup`},
		Serial:       true,
		Files:        []string{"*.docx"},
		Copy: &robocopy.CopyOptions{
			Mirror:   true,
			Threads:  16,
			RunTimes: &robocopy.RunTimes{Start: "22:00", End: "06:00"},
		},
		File:    &robocopy.FileOptions{ExcludeDirs: []string{"tmp", "obj"}, MaximumAge: "30"},
		Retry:   &robocopy.RetryOptions{Count: 3, Wait: 5},
		Logging: &robocopy.LoggingOptions{HideProgress: true, Output: &robocopy.LogOutput{File: "c:/logs/backup.log"}},
	}
}

func memFs(t *testing.T, files map[string]string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)
}

func TestLoad_FormatsDecodeTheSame(t *testing.T) {
	memFs(t, map[string]string{
		"/jobs/backup.yaml": yamlJob,
		"/jobs/backup.yml":  yamlJob,
		"/jobs/backup.hcl":  hclJob,
		"/jobs/backup.json": jsonJob,
	})

	for _, name := range []string{"/jobs/backup.yaml", "/jobs/backup.yml", "/jobs/backup.hcl", "/jobs/backup.json"} {
		t.Run(name, func(t *testing.T) {
			opts, err := Load(name)
			require.NoError(t, err)
			assert.Equal(t, expectedJob(), opts)
		})
	}
}

func TestParse_YAMLScalarDestination(t *testing.T) {
	opts, err := Parse("job.yaml", []byte("source: c:/src\ndestination: d:/dst\n"))
	require.NoError(t, err)
	assert.Equal(t, robocopy.Destinations{"d:/dst"}, opts.Destinations)
}

func TestParse_YAMLUnknownField(t *testing.T) {
	_, err := Parse("job.yaml", []byte("source: c:/src\ndestination: d:/dst\nmirorr: true\n"))
	require.ErrorIs(t, err, ErrParseJobFile)
}

func TestParse_HCLEnvironment(t *testing.T) {
	t.Setenv("GOROBOCOPY_TEST_HOME", "c:/users/me")

	opts, err := Parse("job.hcl", []byte(`
source      = "${env.GOROBOCOPY_TEST_HOME}/documents"
destination = ["d:/backup"]
`))
	require.NoError(t, err)
	assert.Equal(t, "c:/users/me/documents", opts.Source)
}

func TestParse_HCLErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax error", content: `source = `},
		{name: "unknown attribute", content: "source = \"c:/src\"\nmirorr = true\n"},
		{name: "scalar destination", content: "destination = \"d:/dst\"\n"},
		{name: "unknown env var", content: "source = env.GOROBOCOPY_DOES_NOT_EXIST\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("job.hcl", []byte(tt.content))
			require.ErrorIs(t, err, ErrParseJobFile)

			var merr *multierror.Error
			assert.ErrorAs(t, err, &merr)
		})
	}
}

func TestParse_Unsupported(t *testing.T) {
	_, err := Parse("job.toml", []byte(""))
	require.ErrorIs(t, err, ErrUnsupportedJobFile)
}

func TestLoad_Missing(t *testing.T) {
	memFs(t, nil)

	_, err := Load("/jobs/missing.yaml")
	require.ErrorIs(t, err, ErrReadJobFile)
}
