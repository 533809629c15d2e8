// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package runbatch

import (
	"os/exec"
	"strings"
	"syscall"
)

// setCommandLine hands the command line to CreateProcess exactly as built.
// Arguments are already quoted, so they must not be escaped again.
func setCommandLine(cmd *exec.Cmd, path string, args []string) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: strings.Join(append([]string{path}, args...), " "),
	}
}
