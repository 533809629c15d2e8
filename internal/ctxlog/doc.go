// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger inside a context.Context.
//
// The default is a pretty console handler that writes to stderr, leaving
// stdout to the mirrored robocopy output. The level comes from the
// GOROBOCOPY_LOG_LEVEL environment variable and defaults to WARN.
package ctxlog
