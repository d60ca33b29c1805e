package ports

import (
	"context"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
)

type CommandValidator interface {
	Validate(ctx context.Context, cmd *domain.CacheCommand) error
}
