// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui provides a live terminal view of a robocopy run.
// Each destination gets one row showing its status, elapsed time and the
// last line robocopy printed for it. Rows are driven by progress events.
package tui
