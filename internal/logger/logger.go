package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	ErrorF   = zap.Error
	Any      = zap.Any
)

type Field = zap.Field

type Logger struct {
	zap *zap.Logger
}

// New builds a logger. format "json" gives the production encoder, anything else the
// console one.
func New(level, format string) (*Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl

	l, err := cfg.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{zap: l}, nil
}

func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

// NewTest writes through t.Log.
func NewTest(t testing.TB) *Logger {
	return &Logger{zap: zaptest.NewLogger(t)}
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.writer().Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.writer().Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zapcore.Field) {
	l.writer().Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.writer().Error(msg, fields...)
}

// With returns a child logger carrying fields on every entry.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zap: l.writer().With(fields...)}
}

func (l *Logger) Sync() error {
	return l.writer().Sync()
}

func (l *Logger) writer() *zap.Logger {
	if l == nil || l.zap == nil {
		return zap.NewNop()
	}
	return l.zap
}
