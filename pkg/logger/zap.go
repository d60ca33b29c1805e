package logger

import (
	"context"

	"github.com/Gunvolt24/cloak_gw/pkg/ctxmeta"
	"go.uber.org/zap"
)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := wrap(logger, isProd)
	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// NewNop - логгер, который ничего не пишет (CLI, тесты).
func NewNop() *ZapLogger { return wrap(zap.NewNop(), false) }

func wrap(l *zap.Logger, isProd bool) *ZapLogger {
	return &ZapLogger{base: l, sugar: l.Sugar(), isProd: isProd}
}

// withContext - добавляет к записи метаданные запроса, если они есть в контексте.
func (z *ZapLogger) withContext(ctx context.Context) *zap.SugaredLogger {
	var kv []any
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		kv = append(kv, "request_id", rid)
	}
	if actor, ok := ctxmeta.ActorFromContext(ctx); ok {
		kv = append(kv, "actor", actor)
	}
	if tid, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		kv = append(kv, "trace_id", tid)
	}
	if len(kv) == 0 {
		return z.sugar
	}
	return z.sugar.With(kv...)
}

func (z *ZapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Debugf(format, args...)
}
func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withContext(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
