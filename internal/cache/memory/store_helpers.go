package memory

import (
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/pkg/metrics"
)

// put - записывает запись целиком; вызывать под s.mu.
func (s *Store) put(key string, ent *entry) {
	s.entries[key] = ent
	metrics.CacheSize.Set(float64(len(s.entries)))
}

// counter - счётчики ключа, создаются при первом обращении.
func (s *Store) counter(key string) *counters {
	c, ok := s.stats[key]
	if !ok {
		c = &counters{}
		s.stats[key] = c
	}
	return c
}

func (s *Store) countMiss(key string) {
	s.counter(key).misses++
}

// isFresh - свежая, пока now - storedAt <= ttl.
func isFresh(ent *entry, now time.Time) bool {
	return now.Sub(ent.storedAt) <= ent.ttl
}

func toEntry(key string, ent *entry) domain.CacheEntry {
	return domain.CacheEntry{
		Key:       key,
		Value:     domain.CloneRaw(ent.value),
		StoredAt:  ent.storedAt,
		FetchedAt: ent.fetchedAt,
		TTL:       ent.ttl,
	}
}
