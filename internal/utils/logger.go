package utils

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	baseOnce  sync.Once
	baseLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	base      *zap.Logger
)

func baseLogger() *zap.Logger {
	baseOnce.Do(func() {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			baseLevel,
		)
		base = zap.New(core)
	})
	return base
}

// SetLevel adjusts the process-wide log level ("debug", "info", "warn",
// "error"). Unknown values are ignored.
func SetLevel(level string) {
	var l zapcore.Level
	if err := l.Set(level); err == nil {
		baseLevel.SetLevel(l)
	}
}

// Logger is a named logger handed to each component.
type Logger struct {
	s *zap.SugaredLogger
}

// NewLogger creates a logger named after the owning component.
func NewLogger(name string) *Logger {
	return &Logger{s: baseLogger().Named(name).Sugar()}
}

func (l *Logger) Debug(args ...interface{})                 { l.s.Debug(args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.s.Debugf(format, args...) }
func (l *Logger) Info(args ...interface{})                  { l.s.Info(args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.s.Infof(format, args...) }
func (l *Logger) Warn(args ...interface{})                  { l.s.Warn(args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.s.Warnf(format, args...) }
func (l *Logger) Error(args ...interface{})                 { l.s.Error(args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.s.Errorf(format, args...) }
