// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linereader drains a process output stream line by line.
// Each line is handed to a callback as soon as it is read, and the complete
// set of lines is kept so the caller can build the final captured text once
// the stream is exhausted. The most recent line is available concurrently for
// progress display.
package linereader
