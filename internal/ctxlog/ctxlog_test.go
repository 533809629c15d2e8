// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{name: "context with logger", ctx: New(context.Background(), custom), want: custom},
		{name: "nil logger uses default", ctx: New(context.Background(), nil), want: DefaultLogger},
		{name: "context without logger", ctx: context.Background(), want: DefaultLogger},
		{name: "wrong value type", ctx: context.WithValue(context.Background(), loggerKey{}, "nope"), want: DefaultLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, Logger(tt.ctx))
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	ctx := New(context.Background(), slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	tests := []struct {
		fn    func(context.Context, string, ...any)
		level string
	}{
		{fn: Debug, level: "DEBUG"},
		{fn: Info, level: "INFO"},
		{fn: Warn, level: "WARN"},
		{fn: Error, level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.fn(ctx, "destination finished", "label", "d:/backup")
			assert.Contains(t, buf.String(), "level="+tt.level)
			assert.Contains(t, buf.String(), "destination finished")
		})
	}
}

func TestNewForTUI(t *testing.T) {
	original := LevelVar.Level()
	t.Cleanup(func() { LevelVar.Set(original) })
	LevelVar.Set(slog.LevelInfo)

	var buf bytes.Buffer

	ctx := NewForTUI(context.Background(), &buf)
	Info(ctx, "buffered while the TUI is active")

	assert.Contains(t, buf.String(), "buffered while the TUI is active")
	assert.NotContains(t, buf.String(), "\033[")
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{value: "DEBUG", want: slog.LevelDebug},
		{value: "info", want: slog.LevelInfo},
		{value: "WARN", want: slog.LevelWarn},
		{value: "ERROR", want: slog.LevelError},
		{value: "bogus", want: slog.LevelWarn},
		{value: "", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(logLevelEnvVar, tt.value)
			assert.Equal(t, tt.want, logLevelFromEnv())
		})
	}
}
