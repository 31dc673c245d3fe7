// Package logger provides leveled logging for the ZeroEntropy MCP server.
// Output always goes to stderr (or the writer set with SetOutput) because
// stdout carries the stdio transport. Debug and Info messages are only
// emitted in verbose mode; warnings and errors are always emitted.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log               = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, v bool) *slog.Logger {
	level := slog.LevelWarn
	if v {
		level = slog.LevelDebug
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	log = newLogger(output, verbose)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(output, verbose)
}

// Logger returns the current slog logger, for libraries that accept one.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs a message with key/value attributes when verbose.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Info logs a message with key/value attributes when verbose.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs a warning. Warnings are emitted regardless of verbosity.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs an error with its cause attached.
func Error(msg string, err error, args ...any) {
	Logger().Error(msg, append([]any{tint.Err(err)}, args...)...)
}

// Enabled reports whether a record at level would be written.
func Enabled(level slog.Level) bool {
	return Logger().Enabled(context.Background(), level)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
