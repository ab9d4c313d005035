// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for both halves of go-pass-vault.
//
// The vault service logs JSON to stdout through NewLogger, one entry per
// request plus lifecycle events. The CLI prints entries and sync results on
// stdout and stderr, so NewClientLogger sends its entries to a file instead.
// Neither logger is ever handed key material or plaintext entries.
//
// Request-scoped loggers travel in the context: middleware attaches one and
// handlers recover it with FromRequest or FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the full zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the vault service logger. Entries are JSON on stdout
// with "role", a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

// NewClientLogger returns the CLI logger. Entries are appended to the file
// at path, whose directory is created when missing. An empty path or a file
// that cannot be opened falls back to stderr.
func NewClientLogger(role, path string) *Logger {
	return newLogger(role, openLogFile(path))
}

func newLogger(role string, sink io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	return &Logger{zerolog.New(sink).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

func openLogFile(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return os.Stderr
	}
	return f
}

// WithLevel returns a copy of l that drops entries below level. An empty or
// unknown level leaves l unchanged.
func (l *Logger) WithLevel(level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return l
	}
	return &Logger{l.Level(lvl)}
}

// Nop returns a *Logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l. Fields added to the copy, such as a
// request trace id, do not reach l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger the trace id middleware attached to r.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. The persister uses it to log with the session
// logger from its own goroutine.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
