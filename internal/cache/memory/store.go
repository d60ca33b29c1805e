package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/Gunvolt24/cloak_gw/pkg/metrics"
)

var _ ports.ReferenceCache = (*Store)(nil)

type entry struct {
	value     json.RawMessage
	storedAt  time.Time
	fetchedAt time.Time // старт запроса, который принёс значение; zero для Set
	ttl       time.Duration
}

type counters struct {
	hits   uint64
	misses uint64
}

// Store - in-memory кэш справочников с ленивым TTL.
// Записи не вытесняются: истёкшая запись остаётся видна через Peek,
// пока её не перезапишет обновление или ClearAll.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	stats   map[string]*counters
	now     func() time.Time
}

// Option - настройка Store.
type Option func(*Store)

// WithClock - источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]*entry),
		stats:   make(map[string]*counters),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) (json.RawMessage, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		s.countMiss(key)
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	if !isFresh(ent, now) {
		s.countMiss(key)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		return nil, false
	}

	s.counter(key).hits++
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return domain.CloneRaw(ent.value), true
}

func (s *Store) Peek(_ context.Context, key string) (domain.CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		return domain.CacheEntry{}, false
	}
	return toEntry(key, ent), true
}

func (s *Store) Set(_ context.Context, key string, value json.RawMessage, ttl time.Duration) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(key, &entry{value: domain.CloneRaw(value), storedAt: now, ttl: ttl})
}

func (s *Store) SetFetched(_ context.Context, key string, value json.RawMessage, ttl time.Duration, startedAt time.Time) bool {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	// ответ запроса, стартовавшего раньше уже записанного, отбрасываем
	if cur, ok := s.entries[key]; ok && cur.fetchedAt.After(startedAt) {
		metrics.CacheOps.WithLabelValues("stale_write").Inc()
		return false
	}
	s.put(key, &entry{value: domain.CloneRaw(value), storedAt: now, fetchedAt: startedAt, ttl: ttl})
	return true
}

func (s *Store) ClearAll(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	s.entries = make(map[string]*entry)
	metrics.CacheOps.WithLabelValues("cleared").Add(float64(n))
	metrics.CacheSize.Set(0)
	return n
}

// Stats - снимок по ключам, которые сейчас лежат в кэше, в порядке ключей.
func (s *Store) Stats(_ context.Context) []domain.CacheStat {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CacheStat, 0, len(s.entries))
	for key, ent := range s.entries {
		stat := domain.CacheStat{
			Key:        key,
			AgeSeconds: now.Sub(ent.storedAt).Seconds(),
			TTLSeconds: ent.ttl.Seconds(),
			Fresh:      isFresh(ent, now),
			StoredAt:   ent.storedAt,
		}
		if c, ok := s.stats[key]; ok {
			stat.Hits, stat.Misses = c.hits, c.misses
		}
		out = append(out, stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
