package domain

import (
	"encoding/json"
	"time"
)

// CacheEntry - снимок записи кэша.
type CacheEntry struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	StoredAt  time.Time       `json:"stored_at"`
	FetchedAt time.Time       `json:"fetched_at"`
	TTL       time.Duration   `json:"ttl"`
}

// FreshAt - запись свежая, пока now - StoredAt <= TTL.
func (e CacheEntry) FreshAt(now time.Time) bool {
	return now.Sub(e.StoredAt) <= e.TTL
}

// CacheStat - производное представление одной записи для наблюдаемости.
type CacheStat struct {
	Key        string    `json:"key"`
	AgeSeconds float64   `json:"age_seconds"`
	TTLSeconds float64   `json:"ttl_seconds"`
	Fresh      bool      `json:"fresh"`
	StoredAt   time.Time `json:"stored_at"`
	Hits       uint64    `json:"hits"`
	Misses     uint64    `json:"misses"`
}

// WarmUpReport - итог полного прогрева.
type WarmUpReport struct {
	Refreshed []string          `json:"refreshed"`
	Failed    map[string]string `json:"failed,omitempty"`
	Took      time.Duration     `json:"took"`
}

// Действия управления кэшем.
const (
	CacheActionClear  = "clear"
	CacheActionWarmUp = "warmup"
)

// CacheCommand - команда оператора, пришедшая через шину.
type CacheCommand struct {
	Action      string `json:"action"`
	RequestedBy string `json:"requested_by,omitempty"`
}
