package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"golang.org/x/sync/singleflight"
)

// ReferenceFetcher - загрузка справочника из внешнего API в кэш.
// Общий для фонового обновления и промаха кэша: на ключ не больше одного запроса в полёте.
type ReferenceFetcher struct {
	caller ports.UpstreamCaller
	cache  ports.ReferenceCache
	ttl    time.Duration
	log    ports.Logger
	group  singleflight.Group
	now    func() time.Time
}

func NewReferenceFetcher(
	caller ports.UpstreamCaller,
	cache ports.ReferenceCache,
	ttl time.Duration,
	log ports.Logger,
) *ReferenceFetcher {
	return &ReferenceFetcher{
		caller: caller,
		cache:  cache,
		ttl:    ttl,
		log:    log,
		now:    time.Now,
	}
}

// TTL - срок жизни записей, которые пишет fetcher.
func (f *ReferenceFetcher) TTL() time.Duration { return f.ttl }

// Fetch - один вызов API для key; непустые данные пишутся в кэш с меткой старта запроса.
// Конкурентные вызовы по одному ключу получают результат одного запроса.
// Общий запрос не зависит от отмены ctx: вызывающий, который перестал ждать,
// уходит со своей ошибкой, остальные получают результат.
func (f *ReferenceFetcher) Fetch(ctx context.Context, key, endpoint string) (json.RawMessage, error) {
	shared := context.WithoutCancel(ctx)
	ch := f.group.DoChan(key, func() (any, error) {
		return f.fetch(shared, key, endpoint)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("fetch %s: %w", key, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			f.log.Debugf(ctx, "reference %s: shared in-flight fetch", key)
		}
		return domain.CloneRaw(res.Val.(json.RawMessage)), nil
	}
}

func (f *ReferenceFetcher) fetch(ctx context.Context, key, endpoint string) (json.RawMessage, error) {
	startedAt := f.now()

	resp, err := f.caller.Call(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("fetch %s: %w: %s", key, ErrUpstreamStatus, resp.Message)
	}
	if !domain.HasItems(resp.Data) {
		return nil, fmt.Errorf("fetch %s: %w", key, ErrEmptyReferenceData)
	}

	if !f.cache.SetFetched(ctx, key, resp.Data, f.ttl, startedAt) {
		f.log.Debugf(ctx, "reference %s: newer value already cached, write discarded", key)
	}
	return resp.Data, nil
}
