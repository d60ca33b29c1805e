// Пакет ctxmeta - нейтральный слой для метаданных запроса, которые прокидываются
// через context.Context: request_id, оператор, trace/span.
// HTTP-слой, логгер и клиент внешнего API зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
	KeyActor     ctxKey = "actor"
)

// WithRequestID кладёт request_id в контекст (если пусто - ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithActor - кто выполняет операцию (оператор, источник команды).
func WithActor(ctx context.Context, actor string) context.Context {
	return withString(ctx, KeyActor, actor)
}

func ActorFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyActor)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
