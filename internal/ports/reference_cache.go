package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
)

// ReferenceCache - кэш справочников.
// Требования к реализации: потокобезопасность; значения копируются на входе и выходе;
// истечение TTL проверяется лениво при чтении, записи не вытесняются.
type ReferenceCache interface {
	// Get - значение, если запись свежая; (nil, false) при промахе/истечении.
	Get(ctx context.Context, key string) (json.RawMessage, bool)

	// Peek - запись независимо от свежести.
	Peek(ctx context.Context, key string) (domain.CacheEntry, bool)

	// Set - безусловная замена записи.
	Set(ctx context.Context, key string, value json.RawMessage, ttl time.Duration)

	// SetFetched - замена, если запрос стартовал не раньше того, что лежит в кэше.
	// false означает, что запись отброшена как устаревшая.
	SetFetched(ctx context.Context, key string, value json.RawMessage, ttl time.Duration, startedAt time.Time) bool

	// ClearAll - удалить все записи; возвращает число удалённых.
	ClearAll(ctx context.Context) int

	// Stats - возраст, TTL и счётчики по каждому ключу.
	Stats(ctx context.Context) []domain.CacheStat
}
