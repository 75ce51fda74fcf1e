// Package logger provides a thin wrapper around zerolog.Logger configured
// from the application's five-level log setting.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Output goes to stderr: stdout is reserved for command results.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger emitting JSON to os.Stderr at the level named by
// level (one of DEBUG, INFO, WARNING, ERROR, CRITICAL, case-insensitive).
// Unrecognized names fall back to INFO.
func New(level string) *Logger {
	l := zerolog.New(os.Stderr).With().
		Timestamp().
		Logger().
		Level(ParseLevel(level))

	return &Logger{l}
}

// ParseLevel maps the configuration's log level names onto zerolog levels.
// CRITICAL maps to zerolog's fatal level for filtering purposes; it does not
// make logging calls exit the process.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "CRITICAL":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
