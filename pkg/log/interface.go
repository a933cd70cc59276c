// Package log provides a structured logging interface for sgdreg.
//
// Call sites only see Logger. SetupLogger installs a log/slog JSON backend and
// NewZerologLogger wraps a zerolog.Logger. Components receive a Logger through
// options and fall back to GetLogger().
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ModelNameKey, "SGDRegressor",
//	    log.EstimatorIDKey, id,
//	)
//	logger.Info("Training completed",
//	    log.EpochsKey, 1000,
//	    log.SamplesKey, 21,
//	)
package log

import (
	"context"
)

// Logger is the logging surface shared by every sgdreg package.
//
// fields are alternating key/value pairs. With returns a child logger that
// carries the given fields on every record.
type Logger interface {
	// Debug logs detailed diagnostic information such as per-epoch loss.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs potentially problematic situations that don't stop execution.
	Warn(msg string, fields ...any)

	// Error logs error conditions. If an error value is provided under the
	// "error" key, backends may attach its stack trace.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether records at level are emitted.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
