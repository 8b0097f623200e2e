// Package logger provides structured logging for the securerand library.
// Besides ordinary diagnostics it carries the advisory channel: non-fatal
// warnings about entropy skew and configuration normalization that must
// reach the caller without ever interrupting generation.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string

	// Output is where logs are written (default: os.Stderr).
	Output io.Writer

	// Pretty enables human-readable console output.
	Pretty bool

	// TimeFormat for timestamps (default: RFC3339).
	TimeFormat string
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:      "warn",
		Output:     os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// Logger wraps zerolog.Logger behind the small surface this library needs.
type Logger struct {
	zlog zerolog.Logger
}

// New creates a logger with the given configuration. A nil cfg is equivalent
// to DefaultConfig().
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: cfg.TimeFormat,
		}
	}

	zlog := zerolog.New(output).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	return &Logger{zlog: zlog}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// parseLevel converts a string level to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.zlog.Debug().Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string) {
	l.zlog.Info().Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.zlog.Warn().Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.zlog.Error().Msg(msg)
}

// Event is an in-progress structured log event.
type Event struct {
	zevent *zerolog.Event
}

// DebugEvent starts a debug-level event.
func (l *Logger) DebugEvent() *Event {
	return &Event{zevent: l.zlog.Debug()}
}

// InfoEvent starts an info-level event.
func (l *Logger) InfoEvent() *Event {
	return &Event{zevent: l.zlog.Info()}
}

// WarnEvent starts a warn-level event. Advisories use this level.
func (l *Logger) WarnEvent() *Event {
	return &Event{zevent: l.zlog.Warn()}
}

// ErrorEvent starts an error-level event.
func (l *Logger) ErrorEvent() *Event {
	return &Event{zevent: l.zlog.Error()}
}

// Str adds a string field.
func (e *Event) Str(key, val string) *Event {
	e.zevent.Str(key, val)
	return e
}

// Int adds an int field.
func (e *Event) Int(key string, val int) *Event {
	e.zevent.Int(key, val)
	return e
}

// Uint64 adds a uint64 field.
func (e *Event) Uint64(key string, val uint64) *Event {
	e.zevent.Uint64(key, val)
	return e
}

// Float64 adds a float64 field.
func (e *Event) Float64(key string, val float64) *Event {
	e.zevent.Float64(key, val)
	return e
}

// Err adds an error field.
func (e *Event) Err(err error) *Event {
	if err != nil {
		e.zevent.AnErr("error", err)
	}
	return e
}

// Msg completes the event with a message.
func (e *Event) Msg(msg string) {
	e.zevent.Msg(msg)
}

var defaultLogger = New(DefaultConfig())

// Default returns the package-level logger used when a component is not
// handed one explicitly.
func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the package-level logger. Nil is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}
