package log

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// FormatConsole writes colored, human friendly lines.
	FormatConsole = "console"
	// FormatJSON writes one JSON object per line.
	FormatJSON = "json"

	consoleTimeFormat = "15:04:05"
)

var Logger zerolog.Logger

func init() {
	Logger = newLogger(os.Stderr, FormatConsole, zerolog.InfoLevel)
	log.Logger = Logger
}

func newLogger(out io.Writer, format string, level zerolog.Level) zerolog.Logger {
	if format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: consoleTimeFormat,
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Configure replaces the package logger. An unknown level falls back to info.
func Configure(out io.Writer, format, level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	Logger = newLogger(out, format, lvl)
	log.Logger = Logger
}

// Info logs an info message.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Error logs an error message.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Fatal logs a fatal message and exits.
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

// SetDebugMode switches the logger to debug level.
func SetDebugMode() {
	Logger = Logger.Level(zerolog.DebugLevel)
	log.Logger = Logger
}
