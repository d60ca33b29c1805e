package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/Gunvolt24/cloak_gw/pkg/validate"
)

var _ ports.CacheAdminService = (*CacheAdmin)(nil)

// CacheAdmin - действия оператора: статистика, очистка, принудительный прогрев.
type CacheAdmin struct {
	cache     ports.ReferenceCache
	scheduler *RefreshScheduler
	validator ports.CommandValidator
	log       ports.Logger
}

func NewCacheAdmin(
	cache ports.ReferenceCache,
	scheduler *RefreshScheduler,
	validator ports.CommandValidator,
	log ports.Logger,
) *CacheAdmin {
	return &CacheAdmin{
		cache:     cache,
		scheduler: scheduler,
		validator: validator,
		log:       log,
	}
}

func (a *CacheAdmin) Stats(ctx context.Context) []domain.CacheStat {
	return a.cache.Stats(ctx)
}

func (a *CacheAdmin) ClearAll(ctx context.Context) int {
	n := a.cache.ClearAll(ctx)
	a.log.Infof(ctx, "reference cache cleared: %d entries removed", n)
	return n
}

func (a *CacheAdmin) WarmUp(ctx context.Context) (domain.WarmUpReport, error) {
	return a.scheduler.WarmUp(ctx)
}

func (a *CacheAdmin) Jobs() []domain.RefreshJob {
	return a.scheduler.Jobs()
}

// HandleCacheCommand - команда из шины (raw JSON).
// Невалидная команда возвращает ошибку, оборачивающую validate.ErrInvalidCommand.
func (a *CacheAdmin) HandleCacheCommand(ctx context.Context, raw []byte) error {
	cmd, err := validate.DecodeCacheCommand(raw)
	if err != nil {
		a.log.Warnf(ctx, "cache command rejected: %v", err)
		return err
	}
	if err := a.validator.Validate(ctx, cmd); err != nil {
		a.log.Warnf(ctx, "cache command rejected: %v", err)
		return fmt.Errorf("validation failed: %w", err)
	}

	a.log.Infof(ctx, "cache command action=%s requested_by=%q", cmd.Action, cmd.RequestedBy)
	switch cmd.Action {
	case domain.CacheActionClear:
		a.ClearAll(ctx)
	case domain.CacheActionWarmUp:
		report, err := a.WarmUp(ctx)
		if err != nil {
			return fmt.Errorf("warm-up interrupted: %w", err)
		}
		if len(report.Failed) > 0 {
			a.log.Warnf(ctx, "warm-up finished with failures: %v", report.Failed)
		}
	}
	return nil
}
