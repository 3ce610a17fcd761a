// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package log is the zap backed logger shared by the verb tree packages.
package log

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	std = newZapLogger(NewOptions())
	mu  sync.Mutex
)

// Init initializes logger with specified options.
func Init(opts *Options) {
	mu.Lock()
	defer mu.Unlock()

	std = newZapLogger(opts)
}

// InitLogger initializes the default logger, at debug level when debug is
// true.
func InitLogger(debug bool) error {
	opts := NewOptions()
	if debug {
		opts.Level = zapcore.DebugLevel.String()
		opts.DisableCaller = false
	}
	if errs := opts.Validate(); len(errs) != 0 {
		return errs[0]
	}
	Init(opts)

	return nil
}

// New creates logger by opts which can custmoized by command arguments.
func New(opts *Options) Logger {
	return newZapLogger(opts)
}

func newZapLogger(opts *Options) *zapLogger {
	if opts == nil {
		opts = NewOptions()
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(opts.Level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	encodeLevel := zapcore.CapitalLevelEncoder
	// when output to local path, with color is forbidden
	if strings.ToLower(opts.Format) == consoleFormat && opts.EnableColor {
		encodeLevel = zapcore.CapitalColorLevelEncoder
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     timeEncoder,
		EncodeDuration: milliSecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	loggerConfig := &zap.Config{
		Level:             zap.NewAtomicLevelAt(zapLevel),
		DisableCaller:     opts.DisableCaller,
		DisableStacktrace: opts.DisableStacktrace,
		Encoding:          strings.ToLower(opts.Format),
		EncoderConfig:     encoderConfig,
		OutputPaths:       opts.OutputPaths,
		ErrorOutputPaths:  opts.ErrorOutputPaths,
	}

	l, err := loggerConfig.Build(zap.AddStacktrace(zapcore.PanicLevel), zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &zapLogger{zapLogger: l.Named(opts.Name)}
}

func current() *zapLogger {
	mu.Lock()
	defer mu.Unlock()

	return std
}

// SugarLogger returns the sugared form of the default logger.
func SugarLogger() *zap.SugaredLogger { return current().sugar() }

// WithValues creates a child logger and adds extra key-values to it.
func WithValues(keysAndValues ...interface{}) Logger { return current().WithValues(keysAndValues...) }

// Flush flushes any buffered log entries. Applications should take care to call before exiting.
func Flush() { current().Flush() }

// V return a leveled InfoLogger.
func V(level Level) InfoLogger { return current().V(level) }

// Debug method output debug level log.
func Debug(msg string, keysAndValues ...interface{}) {
	current().sugar().Debugw(msg, keysAndValues...)
}

// Debugf method output debug level log.
func Debugf(format string, v ...interface{}) {
	current().sugar().Debugf(format, v...)
}

// Info method output info level log.
func Info(msg string, keysAndValues ...interface{}) {
	current().sugar().Infow(msg, keysAndValues...)
}

// Infof method output info level log.
func Infof(format string, v ...interface{}) {
	current().sugar().Infof(format, v...)
}

// Infow method output info level log.
func Infow(msg string, keysAndValues ...interface{}) {
	current().sugar().Infow(msg, keysAndValues...)
}

// Warn method output warning level log.
func Warn(msg string, keysAndValues ...interface{}) {
	current().sugar().Warnw(msg, keysAndValues...)
}

// Warnf method output warning level log.
func Warnf(format string, v ...interface{}) {
	current().sugar().Warnf(format, v...)
}

// Error method output error level log.
func Error(msg string, keysAndValues ...interface{}) {
	current().sugar().Errorw(msg, keysAndValues...)
}

// Errorf method output error level log.
func Errorf(format string, v ...interface{}) {
	current().sugar().Errorf(format, v...)
}

// Errorw method output error level log.
func Errorw(msg string, keysAndValues ...interface{}) {
	current().sugar().Errorw(msg, keysAndValues...)
}
