package ports

import (
	"context"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
)

// ReferenceReadService - чтение справочников через кэш.
type ReferenceReadService interface {
	// GetCachedData - никогда не возвращает ошибку: недоступность данных
	// выражается результатом со status=error и пустым списком.
	GetCachedData(ctx context.Context, key, endpoint string) domain.Result
}

// CacheAdminService - операции оператора над кэшем.
type CacheAdminService interface {
	Stats(ctx context.Context) []domain.CacheStat
	ClearAll(ctx context.Context) int
	WarmUp(ctx context.Context) (domain.WarmUpReport, error)
	Jobs() []domain.RefreshJob
}

// GatewayService - прямой (write-through) вызов внешнего API.
type GatewayService interface {
	Call(ctx context.Context, endpoint string, fields domain.Fields) (*domain.UpstreamResponse, error)
}

// CallLogReader - чтение журнала вызовов.
type CallLogReader interface {
	RecentCalls(ctx context.Context, limit, offset int) ([]*domain.CallLog, error)
}
