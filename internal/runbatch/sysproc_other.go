// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package runbatch

import (
	"os/exec"
)

// setCommandLine is a no-op, argv is passed through unchanged.
func setCommandLine(*exec.Cmd, string, []string) {}
