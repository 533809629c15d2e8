// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package robocopy turns a job description into robocopy invocations and runs them.
//
// BuildCommands produces one Command per destination, with every option
// translated to its robocopy switch in a fixed order. Run validates the
// options, wraps each Command in a runbatch.OSCommand that treats exit codes
// 0 to 8 as success, and runs the commands serially or in parallel.
package robocopy
