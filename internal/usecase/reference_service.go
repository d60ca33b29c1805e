package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/ports"
)

var _ ports.ReferenceReadService = (*ReferenceService)(nil)

// cacheWarmer - ленивый прогрев перед первым чтением.
type cacheWarmer interface {
	EnsureReady(ctx context.Context)
}

// ReferenceService - чтение справочников: кэш, при промахе один вызов API.
type ReferenceService struct {
	cache   ports.ReferenceCache
	fetcher *ReferenceFetcher
	warmer  cacheWarmer
	log     ports.Logger
}

func NewReferenceService(
	cache ports.ReferenceCache,
	fetcher *ReferenceFetcher,
	warmer cacheWarmer,
	log ports.Logger,
) *ReferenceService {
	return &ReferenceService{
		cache:   cache,
		fetcher: fetcher,
		warmer:  warmer,
		log:     log,
	}
}

// GetCachedData - свежие данные из кэша или из API.
// Ошибка и пустой ответ не кэшируются и превращаются в "мягкий" результат:
// вызывающий должен понимать его как "попробуйте позже", а не "элементов нет".
func (s *ReferenceService) GetCachedData(ctx context.Context, key, endpoint string) domain.Result {
	if s.warmer != nil {
		s.warmer.EnsureReady(ctx)
	}

	if data, ok := s.cache.Get(ctx, key); ok {
		s.log.Debugf(ctx, "reference %s: cache hit", key)
		return domain.SuccessResult(data)
	}
	s.log.Infof(ctx, "reference %s: cache miss, fetching %s", key, endpoint)

	data, err := s.fetcher.Fetch(ctx, key, endpoint)
	if err != nil {
		s.log.Warnf(ctx, "reference %s unavailable: %v", key, err)
		return domain.ErrorResult(fmt.Sprintf("failed to fetch %s data", key))
	}
	return domain.SuccessResult(data)
}
