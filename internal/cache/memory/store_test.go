package memory

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"
)

// fakeClock - управляемое время для проверок TTL.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestStore() (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewStore(WithClock(clock.Now)), clock
}

func TestGet_MissOnEmpty(t *testing.T) {
	s, _ := newTestStore()
	if _, ok := s.Get(context.Background(), "countries"); ok {
		t.Fatalf("expected miss on empty store")
	}
}

func TestTTL_FreshAt59s_ExpiredAt61s(t *testing.T) {
	s, clock := newTestStore()
	ctx := context.Background()

	s.Set(ctx, "countries", json.RawMessage(`[{"id":1}]`), 60*time.Second)

	clock.Advance(59 * time.Second)
	got, ok := s.Get(ctx, "countries")
	if !ok || string(got) != `[{"id":1}]` {
		t.Fatalf("expected fresh hit at t+59s, got %q ok=%v", got, ok)
	}

	clock.Advance(2 * time.Second)
	if _, ok := s.Get(ctx, "countries"); ok {
		t.Fatalf("expected miss at t+61s")
	}
}

func TestTTL_BoundaryIsInclusive(t *testing.T) {
	s, clock := newTestStore()
	ctx := context.Background()

	s.Set(ctx, "k", json.RawMessage(`[1]`), time.Minute)
	clock.Advance(time.Minute)
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Fatalf("entry must still be fresh exactly at ttl")
	}
}

func TestPeek_ReturnsExpiredEntry(t *testing.T) {
	s, clock := newTestStore()
	ctx := context.Background()

	s.Set(ctx, "devices", json.RawMessage(`[1]`), time.Second)
	clock.Advance(time.Hour)

	if _, ok := s.Get(ctx, "devices"); ok {
		t.Fatalf("expected miss for expired entry")
	}
	ent, ok := s.Peek(ctx, "devices")
	if !ok {
		t.Fatalf("expired entry must stay visible to Peek")
	}
	if ent.FreshAt(clock.Now()) {
		t.Fatalf("peeked entry must be reported stale")
	}
	if string(ent.Value) != `[1]` {
		t.Fatalf("unexpected value %q", ent.Value)
	}
}

func TestValuesAreCopied(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	in := json.RawMessage(`[1,2]`)
	s.Set(ctx, "k", in, time.Minute)
	in[1] = '9'

	out, _ := s.Get(ctx, "k")
	if string(out) != `[1,2]` {
		t.Fatalf("store must copy on write, got %q", out)
	}
	out[1] = '8'

	again, _ := s.Get(ctx, "k")
	if string(again) != `[1,2]` {
		t.Fatalf("store must copy on read, got %q", again)
	}
}

func TestSet_ReplacesWholesale(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	s.Set(ctx, "k", json.RawMessage(`[1,2,3]`), time.Minute)
	s.Set(ctx, "k", json.RawMessage(`[4]`), 2*time.Minute)

	ent, _ := s.Peek(ctx, "k")
	if string(ent.Value) != `[4]` || ent.TTL != 2*time.Minute {
		t.Fatalf("unexpected entry after replace: %+v", ent)
	}
}

func TestSetFetched_DiscardsOutOfOrderCompletion(t *testing.T) {
	s, clock := newTestStore()
	ctx := context.Background()

	older := clock.Now()
	newer := older.Add(time.Second)

	if !s.SetFetched(ctx, "k", json.RawMessage(`["new"]`), time.Minute, newer) {
		t.Fatalf("first write must be accepted")
	}
	if s.SetFetched(ctx, "k", json.RawMessage(`["old"]`), time.Minute, older) {
		t.Fatalf("write from an earlier fetch must be discarded")
	}
	got, _ := s.Get(ctx, "k")
	if string(got) != `["new"]` {
		t.Fatalf("expected newer value to survive, got %q", got)
	}

	// тот же старт или позже - принимается
	if !s.SetFetched(ctx, "k", json.RawMessage(`["same"]`), time.Minute, newer) {
		t.Fatalf("write with equal start time must be accepted")
	}
}

func TestClearAll(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	s.Set(ctx, "a", json.RawMessage(`[1]`), time.Minute)
	s.Set(ctx, "b", json.RawMessage(`[2]`), time.Minute)

	if n := s.ClearAll(ctx); n != 2 {
		t.Fatalf("expected 2 cleared, got %d", n)
	}
	if _, ok := s.Peek(ctx, "a"); ok {
		t.Fatalf("expected empty store after ClearAll")
	}
	if n := s.ClearAll(ctx); n != 0 {
		t.Fatalf("expected 0 on second clear, got %d", n)
	}
}

func TestStats(t *testing.T) {
	s, clock := newTestStore()
	ctx := context.Background()

	s.Set(ctx, "b", json.RawMessage(`[1]`), time.Minute)
	s.Set(ctx, "a", json.RawMessage(`[1]`), 10*time.Second)
	_, _ = s.Get(ctx, "a")
	_, _ = s.Get(ctx, "a")
	_, _ = s.Get(ctx, "b")

	clock.Advance(30 * time.Second)
	_, _ = s.Get(ctx, "a") // истекла -> промах

	stats := s.Stats(ctx)
	if len(stats) != 2 {
		t.Fatalf("expected 2 stats, got %d", len(stats))
	}
	a, b := stats[0], stats[1]
	if a.Key != "a" || b.Key != "b" {
		t.Fatalf("stats must be sorted by key: %+v", stats)
	}
	if a.Fresh || !b.Fresh {
		t.Fatalf("unexpected freshness: a=%v b=%v", a.Fresh, b.Fresh)
	}
	if a.Hits != 2 || a.Misses != 1 || b.Hits != 1 || b.Misses != 0 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
	if a.AgeSeconds != 30 || a.TTLSeconds != 10 {
		t.Fatalf("unexpected age/ttl: %+v", a)
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set(ctx, "k", json.RawMessage(`[1]`), time.Minute)
				_, _ = s.Get(ctx, "k")
				_ = s.Stats(ctx)
				if j%50 == 0 {
					s.ClearAll(ctx)
				}
			}
		}(i)
	}
	wg.Wait()
}
