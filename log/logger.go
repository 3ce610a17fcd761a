// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// InfoLogger represents the ability to log non-error messages, at a particular verbosity.
type InfoLogger interface {
	// Info logs a non-error message with the given key/value pairs as context.
	Info(msg string, keysAndValues ...interface{})
	// Infof logs a non-error format message.
	Infof(format string, v ...interface{})

	// Enabled tests whether this InfoLogger is enabled.
	Enabled() bool
}

// Logger represents the ability to log messages, both errors and not.
type Logger interface {
	InfoLogger
	Debug(msg string, keysAndValues ...interface{})
	Debugf(format string, v ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Warnf(format string, v ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Errorf(format string, v ...interface{})

	// V returns an InfoLogger value for a specific verbosity level.
	V(level Level) InfoLogger

	// WithValues adds some key-value pairs of context to a logger.
	WithValues(keysAndValues ...interface{}) Logger

	// WithName adds a new element to the logger's name.
	WithName(name string) Logger

	// WithContext returns a copy of context in which the log value is set.
	WithContext(ctx context.Context) context.Context

	// Flush calls the underlying Core's Sync method, flushing any buffered
	// log entries.
	Flush()
}

type infoLogger struct {
	level Level
	log   *zap.SugaredLogger
}

func (l *infoLogger) Enabled() bool { return l.log.Desugar().Core().Enabled(l.level) }

func (l *infoLogger) Info(msg string, keysAndValues ...interface{}) {
	if ce := l.log.With(keysAndValues...).Desugar().Check(l.level, msg); ce != nil {
		ce.Write()
	}
}

func (l *infoLogger) Infof(format string, v ...interface{}) {
	if !l.Enabled() {
		return
	}
	if ce := l.log.Desugar().Check(l.level, fmt.Sprintf(format, v...)); ce != nil {
		ce.Write()
	}
}

type zapLogger struct {
	zapLogger *zap.Logger
}

var _ Logger = (*zapLogger)(nil)

func (l *zapLogger) sugar() *zap.SugaredLogger { return l.zapLogger.Sugar() }

func (l *zapLogger) Enabled() bool { return l.zapLogger.Core().Enabled(InfoLevel) }

func (l *zapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar().Infow(msg, keysAndValues...)
}

func (l *zapLogger) Infof(format string, v ...interface{}) { l.sugar().Infof(format, v...) }

func (l *zapLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar().Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Debugf(format string, v ...interface{}) { l.sugar().Debugf(format, v...) }

func (l *zapLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar().Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Warnf(format string, v ...interface{}) { l.sugar().Warnf(format, v...) }

func (l *zapLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar().Errorw(msg, keysAndValues...)
}

func (l *zapLogger) Errorf(format string, v ...interface{}) { l.sugar().Errorf(format, v...) }

func (l *zapLogger) V(level Level) InfoLogger {
	return &infoLogger{level: level, log: l.sugar()}
}

func (l *zapLogger) WithValues(keysAndValues ...interface{}) Logger {
	return &zapLogger{zapLogger: l.sugar().With(keysAndValues...).Desugar()}
}

func (l *zapLogger) WithName(name string) Logger {
	return &zapLogger{zapLogger: l.zapLogger.Named(name)}
}

func (l *zapLogger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, Logger(l))
}

func (l *zapLogger) Flush() { _ = l.zapLogger.Sync() }
