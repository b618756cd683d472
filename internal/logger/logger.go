// Package logger provides verbose logging for the wxr CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users understand how an export was read.
//
// Records are written through zap. L returns the underlying *zap.Logger so
// packages that log structured fields (the parser) share the same sink.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	base              = zap.NewNop()
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base = build()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = build()
}

// L returns the shared zap logger. It discards everything unless verbose
// mode is enabled.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// build creates the zap logger for the current settings (caller must hold lock).
func build() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      bracketLevel,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	})
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(output)), zapcore.DebugLevel)
	return zap.New(core)
}

// bracketLevel renders levels as [DEBUG], [INFO], [WARN].
func bracketLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	L().Sugar().Debugf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	L().Sugar().Infof(format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	L().Sugar().Warnf(format, args...)
}
