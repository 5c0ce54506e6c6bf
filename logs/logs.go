package logs

import (
	"maps"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields are the structured key value pairs attached to
// a log entry
type Fields map[string]interface{}

// Add sets the value of a field
func (f Fields) Add(key string, value interface{}) {
	f[key] = value
}

func (f Fields) zap() []zap.Field {
	fields := make([]zap.Field, 0, len(f))
	for _, key := range slices.Sorted(maps.Keys(f)) {
		fields = append(fields, zap.Any(key, f[key]))
	}

	return fields
}

// Loggable is implemented by types that know how to describe
// themselves as log fields
type Loggable interface {
	Log(fields Fields)
}

// Logger writes structured log entries
type Logger struct {
	z *zap.Logger
}

// New creates a Logger writing JSON entries at the given level
// or above. Level is one of debug, info, warn, error.
func New(level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)

	z, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{z: z}, nil
}

// FromZap wraps an already configured zap logger
func FromZap(z *zap.Logger) *Logger {
	return &Logger{z: z}
}

// NewNop creates a Logger that discards every entry
func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

func (l *Logger) Debug(msg string, fields Fields) {
	l.z.Debug(msg, fields.zap()...)
}

func (l *Logger) Info(msg string, fields Fields) {
	l.z.Info(msg, fields.zap()...)
}

func (l *Logger) Warn(msg string, fields Fields) {
	l.z.Warn(msg, fields.zap()...)
}

// Error logs err under msg. Errors implementing Loggable
// contribute their own fields.
func (l *Logger) Error(msg string, err error) {
	fields := Fields{}
	if loggable, ok := err.(Loggable); ok {
		loggable.Log(fields)
	} else {
		fields.Add("description", err.Error())
	}

	l.z.Error(msg, fields.zap()...)
}

// Sync flushes any buffered entries
func (l *Logger) Sync() error {
	return l.z.Sync()
}
