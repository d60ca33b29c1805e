package ports

import (
	"context"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
)

// UpstreamCaller - один логический вызов внешнего API (ретраи внутри).
type UpstreamCaller interface {
	Call(ctx context.Context, endpoint string, fields domain.Fields) (*domain.UpstreamResponse, error)
}
