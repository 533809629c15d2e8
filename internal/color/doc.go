// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for console output.
// Color is disabled when NO_COLOR is set, forced on by FORCE_COLOR, and
// otherwise follows whether stdout is a terminal (golang.org/x/term).
package color
