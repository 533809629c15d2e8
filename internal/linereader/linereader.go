// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linereader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	initialBufferSize = 64 * 1024
	// MaxLineLength is the longest line the reader accepts before giving up on splitting.
	MaxLineLength = 1024 * 1024
)

// ErrRead is returned when the underlying stream fails before EOF.
var ErrRead = errors.New("failed to read output stream")

// LineFunc is called once for every line read, in order.
type LineFunc func(line string)

// Reader splits a stream into lines and records them.
// It is safe to call LastLine while Drain is running.
type Reader struct {
	r        io.Reader
	onLine   LineFunc
	lines    []string
	lastLine string
	mu       sync.RWMutex
}

// New returns a Reader over r. onLine may be nil.
func New(r io.Reader, onLine LineFunc) *Reader {
	return &Reader{
		r:      r,
		onLine: onLine,
	}
}

// Drain reads r until EOF. Lines are delivered without their terminator,
// a trailing carriage return is removed as well.
// If splitting fails the remainder of the stream is still consumed so the
// writing process is never blocked on a full pipe.
func (lr *Reader) Drain() error {
	scanner := bufio.NewScanner(lr.r)
	scanner.Buffer(make([]byte, 0, initialBufferSize), MaxLineLength)

	for scanner.Scan() {
		line := scanner.Text()

		lr.mu.Lock()
		lr.lines = append(lr.lines, line)
		lr.lastLine = line
		lr.mu.Unlock()

		if lr.onLine != nil {
			lr.onLine(line)
		}
	}

	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, lr.r)

		return fmt.Errorf("%w: %w", ErrRead, err)
	}

	return nil
}

// Text returns the lines read so far joined with "\n".
func (lr *Reader) Text() string {
	lr.mu.RLock()
	defer lr.mu.RUnlock()

	return strings.Join(lr.lines, "\n")
}

// LastLine returns the most recent line.
// If maxLength > 0 the line is truncated to that length, ending in "...".
func (lr *Reader) LastLine(maxLength int) string {
	lr.mu.RLock()
	defer lr.mu.RUnlock()

	result := lr.lastLine
	if maxLength > 3 && len(result) > maxLength {
		result = result[:maxLength-3] + "..."
	}

	return result
}
