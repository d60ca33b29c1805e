package ports

import (
	"context"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
)

// CallLogRepository - журнал вызовов внешнего API.
type CallLogRepository interface {
	Save(ctx context.Context, entry *domain.CallLog) error
	Recent(ctx context.Context, limit, offset int) ([]*domain.CallLog, error)
}
