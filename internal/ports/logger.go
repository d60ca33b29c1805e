package ports

import "context"

// Logger - минимальный контракт логгера для внешних слоёв.
// Контекст передаётся, чтобы реализация могла достать request_id.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...any) // Debugf - детали ретраев и кэша.
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
