// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package show

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runShow(t *testing.T, args ...string) (string, int, error) {
	t.Helper()

	exitCode := -1
	stubs := gostub.Stub(&cli.OsExiter, func(code int) {
		exitCode = code
	})
	t.Cleanup(stubs.Reset)

	var out bytes.Buffer

	cmd := &cli.Command{
		Name:      "show",
		Flags:     flags(),
		Action:    actionFunc,
		Writer:    &out,
		ErrWriter: &bytes.Buffer{},
	}

	err := cmd.Run(context.Background(), append([]string{"show"}, args...))

	return out.String(), exitCode, err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestShowCmd(t *testing.T) {
	job := writeFile(t, "job.hcl", `
source      = "c:/data"
destination = ["d:/one", "e:/two"]

copy {
  mirror = true
}

retry {
  count = 2
}
`)

	out, code, err := runShow(t, "-f", job)
	require.NoError(t, err)
	assert.Equal(t, -1, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		`robocopy "c:\data" "d:\one" /mir /r:2`,
		`robocopy "c:\data" "e:\two" /mir /r:2`,
	}, lines)
}

func TestShowCmd_MultipleFiles(t *testing.T) {
	first := writeFile(t, "first.yaml", "source: c:/a\ndestination: d:/b\n")
	second := writeFile(t, "second.yaml", "source: c:/c\ndestination: d:/d\n")

	out, _, err := runShow(t, "-f", first, "-f", second)
	require.NoError(t, err)
	assert.Contains(t, out, "# "+first)
	assert.Contains(t, out, `robocopy "c:\a" "d:\b"`)
	assert.Contains(t, out, "# "+second)
	assert.Contains(t, out, `robocopy "c:\c" "d:\d"`)
}

func TestShowCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{
			name: "no file",
			args: func(*testing.T) []string { return nil },
		},
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"-f", filepath.Join(t.TempDir(), "missing.yaml")}
			},
		},
		{
			name: "invalid job",
			args: func(t *testing.T) []string {
				return []string{"-f", writeFile(t, "job.yaml", "copy:\n  threads: 500\n")}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, code, err := runShow(t, tt.args(t)...)
			require.Error(t, err)
			assert.Equal(t, 1, code)
		})
	}
}
