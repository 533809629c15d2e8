// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linereader

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestReader_Drain(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLines []string
		wantText  string
	}{
		{
			name:      "empty stream",
			input:     "",
			wantLines: []string{},
			wantText:  "",
		},
		{
			name:      "unix line endings",
			input:     "one\ntwo\n",
			wantLines: []string{"one", "two"},
			wantText:  "one\ntwo",
		},
		{
			name:      "windows line endings",
			input:     "  New Dir  2  c:\\src\\\r\n  Total  Copied\r\n",
			wantLines: []string{"  New Dir  2  c:\\src\\", "  Total  Copied"},
			wantText:  "  New Dir  2  c:\\src\\\n  Total  Copied",
		},
		{
			name:      "final line without terminator",
			input:     "one\npartial",
			wantLines: []string{"one", "partial"},
			wantText:  "one\npartial",
		},
		{
			name:      "blank lines kept",
			input:     "\n\nx\n",
			wantLines: []string{"", "", "x"},
			wantText:  "\n\nx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen []string

			lr := New(strings.NewReader(tt.input), func(line string) { seen = append(seen, line) })
			require.NoError(t, lr.Drain())

			assert.Equal(t, tt.wantText, lr.Text())

			if len(tt.wantLines) > 0 {
				assert.Equal(t, tt.wantLines, seen)
			} else {
				assert.Empty(t, seen)
			}
		})
	}
}

func TestReader_NilCallback(t *testing.T) {
	lr := New(strings.NewReader("a\nb\n"), nil)
	require.NoError(t, lr.Drain())
	assert.Equal(t, "b", lr.LastLine(0))
}

func TestReader_LastLine(t *testing.T) {
	lr := New(strings.NewReader("first\nthis line is quite long\n"), nil)
	require.NoError(t, lr.Drain())

	assert.Equal(t, "this line is quite long", lr.LastLine(0))
	assert.Equal(t, "this li...", lr.LastLine(10))
	assert.Equal(t, "this line is quite long", lr.LastLine(100))
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestReader_ReadError(t *testing.T) {
	lr := New(errReader{}, nil)
	err := lr.Drain()
	require.ErrorIs(t, err, ErrRead)
	assert.Contains(t, err.Error(), "boom")
}

func TestReader_LineTooLongDrainsRemainder(t *testing.T) {
	defer goleak.VerifyNone(t)

	pr, pw := io.Pipe()

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		_, _ = pw.Write([]byte(strings.Repeat("x", MaxLineLength+10)))
		_, _ = pw.Write([]byte("\nafter\n"))
		_ = pw.Close()
	}()

	lr := New(pr, nil)
	require.ErrorIs(t, lr.Drain(), ErrRead)

	// writer must not be left blocked on the pipe
	wg.Wait()
}

func TestReader_ConcurrentLastLine(t *testing.T) {
	defer goleak.VerifyNone(t)

	pr, pw := io.Pipe()
	lr := New(pr, nil)

	done := make(chan error)
	go func() { done <- lr.Drain() }()

	for i := range 50 {
		_, err := pw.Write([]byte(strings.Repeat("l", i) + "\n"))
		require.NoError(t, err)
		_ = lr.LastLine(5)
	}

	require.NoError(t, pw.Close())
	require.NoError(t, <-done)
	assert.Equal(t, strings.Repeat("l", 49), lr.LastLine(0))
}
