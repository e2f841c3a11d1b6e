package roplog

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/rop4/pkg/rop"
)

type (
	Field = zapcore.Field
	Level = zapcore.Level
)

const (
	VariantIndexKey = "variant_index"
	VariantKey      = "variant"
	ValueKey        = "value"
)

type loggerCtxKey struct{}

// Fields describes err: the position and type of the active variant and the
// rendered payload.
func Fields[E rop.Failure](err E) []Field {
	return []Field{
		zap.Int(VariantIndexKey, err.Index()),
		zap.String(VariantKey, err.Variant()),
		zap.Error(err),
	}
}

// Handler logs every failure it receives at error level.
func Handler[E rop.Failure](logger *zap.Logger, msg string) func(E) {
	return HandlerAt[E](logger, zapcore.ErrorLevel, msg)
}

func HandlerAt[E rop.Failure](logger *zap.Logger, level Level, msg string) func(E) {
	return func(err E) {
		if ce := logger.Check(level, msg); ce != nil {
			ce.Write(Fields(err)...)
		}
	}
}

// Observe logs a success at debug level and a failure at error level, then
// returns r unchanged.
func Observe[T any, E rop.Failure](logger *zap.Logger, msg string, r rop.Result[T, E]) rop.Result[T, E] {
	if v, ok := r.Value(); ok {
		logger.Debug(msg, zap.Any(ValueKey, v))
		return r
	}
	return r.IfFailed(Handler[E](logger, msg))
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}
	if l, ok := ctx.Value(loggerCtxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}

// OnFailure returns a failure callback in the shape solo.DoubleTee and
// solo.DoubleMap expect, logging through the context's logger.
func OnFailure[E rop.Failure](msg string) func(ctx context.Context, err E) {
	return func(ctx context.Context, err E) {
		Handler[E](FromContext(ctx), msg)(err)
	}
}
