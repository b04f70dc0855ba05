package jwtgate

import (
	"github.com/sirupsen/logrus"
)

// Logger defines an optional logging interface compatible with log/slog.
// This is the same interface used by core for consistent logging across the stack.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NewLogrusLogger returns a Logger adapter for logrus.FieldLogger. Key/value
// args become logrus fields.
func NewLogrusLogger(l logrus.FieldLogger) Logger {
	return &logrusLoggerAdapter{l}
}

type logrusLoggerAdapter struct{ l logrus.FieldLogger }

func (a *logrusLoggerAdapter) Debug(msg string, args ...any) {
	a.l.WithFields(fieldsFromArgs(args)).Debug(msg)
}

func (a *logrusLoggerAdapter) Info(msg string, args ...any) {
	a.l.WithFields(fieldsFromArgs(args)).Info(msg)
}

func (a *logrusLoggerAdapter) Warn(msg string, args ...any) {
	a.l.WithFields(fieldsFromArgs(args)).Warn(msg)
}

func (a *logrusLoggerAdapter) Error(msg string, args ...any) {
	a.l.WithFields(fieldsFromArgs(args)).Error(msg)
}

// fieldsFromArgs pairs up slog-style args. A dangling value or non-string
// key is kept under "!BADKEY", as slog does.
func fieldsFromArgs(args []any) logrus.Fields {
	fields := make(logrus.Fields, len(args)/2)
	for i := 0; i < len(args); i++ {
		key, ok := args[i].(string)
		if !ok || i+1 == len(args) {
			fields["!BADKEY"] = args[i]
			continue
		}
		value := args[i+1]
		if err, isErr := value.(error); isErr {
			value = err.Error()
		}
		fields[key] = value
		i++
	}
	return fields
}
