// Package logger is a small zerolog wrapper shared by the widgets and the CLI.
// Widgets take an optional *Logger; a nil one drops every entry.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is a zerolog level name. Empty means info.
	Level string
	// HumanReadable switches from JSON lines to the console format.
	HumanReadable bool
	// Writer defaults to stderr; stdout belongs to the terminal UI.
	Writer io.Writer
}

// Logger writes leveled entries with alternating key/value fields.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: true}
	}

	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// ParseLevel accepts zerolog level names in any case.
func ParseLevel(name string) (zerolog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
}

// With returns a logger that adds keyvals to every entry.
func (l *Logger) With(keyvals ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Fields(keyvals).Logger()}
}

// Component is With("component", name).
func (l *Logger) Component(name string) *Logger {
	return l.With("component", name)
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l != nil && l.zl.GetLevel() <= level
}

// Trace is for per-event noise such as every routed key press.
func (l *Logger) Trace(msg string, keyvals ...any) {
	l.write(zerolog.TraceLevel, msg, keyvals)
}

func (l *Logger) Debug(msg string, keyvals ...any) {
	l.write(zerolog.DebugLevel, msg, keyvals)
}

func (l *Logger) Info(msg string, keyvals ...any) {
	l.write(zerolog.InfoLevel, msg, keyvals)
}

func (l *Logger) Warn(msg string, keyvals ...any) {
	l.write(zerolog.WarnLevel, msg, keyvals)
}

// Error logs msg with err attached under the "error" field.
func (l *Logger) Error(err error, msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.zl.Error().Err(err).Fields(keyvals).Msg(msg)
}

func (l *Logger) write(level zerolog.Level, msg string, keyvals []any) {
	if l == nil {
		return
	}
	l.zl.WithLevel(level).Fields(keyvals).Msg(msg)
}
