package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// activeSpan - контекст активного спана, если он валиден.
func activeSpan(ctx context.Context) (trace.SpanContext, bool) {
	if ctx == nil {
		return trace.SpanContext{}, false
	}
	sc := trace.SpanContextFromContext(ctx)
	return sc, sc.IsValid()
}

// TraceIDFromContext - trace_id для логов и журнала вызовов.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := activeSpan(ctx)
	if !ok {
		return "", false
	}
	return sc.TraceID().String(), true
}

func SpanIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := activeSpan(ctx)
	if !ok {
		return "", false
	}
	return sc.SpanID().String(), true
}
