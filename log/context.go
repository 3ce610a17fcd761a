// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

// With returns a sugared child of the default logger carrying the given
// key-value pairs.
func With(keysAndValues ...interface{}) *zap.SugaredLogger {
	return SugarLogger().With(keysAndValues...)
}

// WithContext returns a copy of ctx holding the logger of ctx extended with
// the given key-value pairs.
func WithContext(ctx context.Context, keysAndValues ...interface{}) context.Context {
	logger := From(ctx)
	if len(keysAndValues) > 0 {
		logger = logger.WithValues(keysAndValues...)
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// From returns the logger stored in ctx, the default logger when there is
// none.
func From(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(Logger); ok {
			return logger
		}
	}
	return current()
}
