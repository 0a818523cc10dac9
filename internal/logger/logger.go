package logger

import (
	"errors"
	"fmt"
	"syscall"

	"go.uber.org/zap"
)

type Logger interface {
	With(args ...interface{}) Logger

	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})

	Sync() error
}

type ZapLogger struct {
	logger *zap.SugaredLogger
}

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

func NewZapLogger(level LogLevel) (*ZapLogger, func(), error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}

	switch level {
	case Debug:
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case Warn:
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case Error:
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: can't init logger", err)
	}

	logger := &ZapLogger{
		logger: l.Sugar(),
	}

	syncFunc := func() {
		if err := logger.Sync(); err != nil && (!errors.Is(err, syscall.EBADF) && !errors.Is(err, syscall.ENOTTY)) {
			logger.Errorf("%s: can't sync logger", err)
		}
	}

	return logger, syncFunc, nil
}

func (l *ZapLogger) With(args ...interface{}) Logger {
	return &ZapLogger{
		logger: l.logger.With(args...),
	}
}

func (l *ZapLogger) Debugf(template string, args ...interface{}) {
	l.logger.Debugf(template, args...)
}

func (l *ZapLogger) Infof(template string, args ...interface{}) {
	l.logger.Infof(template, args...)
}

func (l *ZapLogger) Warnf(template string, args ...interface{}) {
	l.logger.Warnf(template, args...)
}

func (l *ZapLogger) Errorf(template string, args ...interface{}) {
	l.logger.Errorf(template, args...)
}

func (l *ZapLogger) Fatalf(template string, args ...interface{}) {
	l.logger.Fatalf(template, args...)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
