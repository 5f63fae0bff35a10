// Package interfaces holds the contracts host applications implement to
// plug their own infrastructure into the portal runtime.
package interfaces

import "context"

// Logger is the leveled logging contract the portal runtime logs through.
// The shape matches github.com/goliatone/go-logger so hosts running that
// stack can hand their loggers over without adapters.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. An implementation may return the
// same instance for every name or scope children per module.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for attaching persistent structured
// fields; supporting providers return a new logger that repeats the fields
// on every entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
