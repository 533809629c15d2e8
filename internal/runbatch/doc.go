// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runbatch runs external commands and collects their output.
//
// An OSCommand starts one child process, streams both of its output streams
// line by line to a progress.Reporter and keeps the stdout text for the
// result. Commands are grouped in a SerialBatch, which stops at the first
// failure, or a ParallelBatch, which starts everything at once and waits for
// all of it. Results always come back in the order the commands were given.
package runbatch
