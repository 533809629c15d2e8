// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress defines the sink that running commands report to.
// Every output line and every lifecycle change of a command is delivered as
// an Event, so the console mirror, the TUI and tests can all observe a run
// without capturing process-wide output.
package progress
