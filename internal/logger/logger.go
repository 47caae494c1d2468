// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the resolver
// and the envconfig command.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "envconfig").
//
// The logger is configured with:
//   - level Info; use [Logger.AtLevel] to change it;
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     instead of the default file:line format.
//
// Output is written to os.Stderr in JSON format, so stdout stays free for
// rendered configuration.
func NewLogger(role string) *Logger {
	return New(os.Stderr, role)
}

// New is like [NewLogger] but writes to w.
func New(w io.Writer, role string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).Level(zerolog.InfoLevel).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// AtLevel returns a copy of l filtered at the named level ("debug",
// "info", "warn", ...). An empty level keeps the current one.
func (l *Logger) AtLevel(level string) (*Logger, error) {
	if level == "" {
		return l, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("error parsing log level: %w", err)
	}

	return &Logger{l.Level(lvl)}, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Global wraps zerolog's process-wide logger.
func Global() *Logger {
	return &Logger{log.Logger}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default context
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
