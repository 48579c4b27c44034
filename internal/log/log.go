// Package log provides structured, colored logging for bip39riot.
//
// Output goes to stderr so that stdout carries only command results
// (mnemonics, hex, seeds) and can be piped safely.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

// Component loggers for different parts of the tool.
var (
	CLI      zerolog.Logger
	Codec    zerolog.Logger
	SelfTest zerolog.Logger
)

func init() {
	Logger = NewConsoleLogger(os.Stderr, "warn", false)
	initComponentLoggers()
}

// Init replaces the global logger. Console output is colored unless noColor
// is set; jsonOutput switches to one JSON object per line.
func Init(w io.Writer, level string, jsonOutput, noColor bool) {
	if jsonOutput {
		Logger = NewJSONLogger(w, level)
	} else {
		Logger = NewConsoleLogger(w, level, noColor)
	}
	initComponentLoggers()
}

// NewConsoleLogger creates a console logger.
func NewConsoleLogger(w io.Writer, level string, noColor bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}

	return zerolog.New(output).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// NewJSONLogger creates a structured JSON logger.
func NewJSONLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a string level to zerolog.Level. Unknown names map to
// warn, the CLI default.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// ValidLevel reports whether ParseLevel recognizes level.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error", "off", "disabled":
		return true
	}
	return false
}

func initComponentLoggers() {
	CLI = Logger.With().Str("component", "cli").Logger()
	Codec = Logger.With().Str("component", "codec").Logger()
	SelfTest = Logger.With().Str("component", "selftest").Logger()
}

// WithComponent returns a logger with a component field.
func WithComponent(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}

// Benchmark helper for timing operations.
func Benchmark(l zerolog.Logger, name string) func() {
	start := time.Now()
	return func() {
		l.Debug().
			Str("operation", name).
			Dur("duration", time.Since(start)).
			Msg("benchmark")
	}
}
