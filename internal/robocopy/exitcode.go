// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package robocopy

import (
	"strings"
)

// SuccessExitCodes are the robocopy exit codes that do not indicate a failure.
// Codes above 8 mean at least one serious error occurred.
var SuccessExitCodes = []int{0, 1, 2, 3, 4, 5, 6, 7, 8}

// robocopy exit code bits.
const (
	exitFilesCopied   = 1
	exitExtraFiles    = 2
	exitMismatched    = 4
	exitCopyFailures  = 8
	exitFatalError    = 16
	exitCodeKnownBits = exitFilesCopied | exitExtraFiles | exitMismatched | exitCopyFailures | exitFatalError
)

// DescribeExitCode explains a robocopy exit code in words.
func DescribeExitCode(code int) string {
	switch {
	case code < 0:
		return "no exit code, process did not finish"
	case code == 0:
		return "no files copied, source and destination in sync"
	case code&^exitCodeKnownBits != 0:
		return "unknown exit code"
	}

	var parts []string

	if code&exitFilesCopied != 0 {
		parts = append(parts, "files copied")
	}

	if code&exitExtraFiles != 0 {
		parts = append(parts, "extra files or directories detected")
	}

	if code&exitMismatched != 0 {
		parts = append(parts, "mismatched files or directories detected")
	}

	if code&exitCopyFailures != 0 {
		parts = append(parts, "some files or directories could not be copied")
	}

	if code&exitFatalError != 0 {
		parts = append(parts, "fatal error")
	}

	return strings.Join(parts, ", ")
}
