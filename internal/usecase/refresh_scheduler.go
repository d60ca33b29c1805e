package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/Gunvolt24/cloak_gw/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// InitState - состояние прогрева кэша.
type InitState int32

const (
	StateUninitialized InitState = iota
	StateWarming
	StateReady
)

func (s InitState) String() string {
	switch s {
	case StateWarming:
		return "warming"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

const defaultWarmUpConcurrency = 4

// RefreshScheduler - прогрев и периодическое обновление справочников.
type RefreshScheduler struct {
	fetcher     *ReferenceFetcher
	log         ports.Logger
	concurrency int

	state  atomic.Int32
	initMu sync.Mutex // сериализует прогрев

	jobsMu sync.Mutex
	jobs   []domain.RefreshJob
}

func NewRefreshScheduler(
	fetcher *ReferenceFetcher,
	jobs []domain.RefreshJob,
	concurrency int,
	log ports.Logger,
) *RefreshScheduler {
	if concurrency <= 0 {
		concurrency = defaultWarmUpConcurrency
	}
	return &RefreshScheduler{
		fetcher:     fetcher,
		log:         log,
		concurrency: concurrency,
		jobs:        append([]domain.RefreshJob(nil), jobs...),
	}
}

// State - текущее состояние прогрева.
func (s *RefreshScheduler) State() InitState {
	return InitState(s.state.Load())
}

// EnsureReady - прогревает кэш один раз; конкурентные первые вызовы ждут один прогрев.
// Отмена ctx вызывающего не прерывает прогрев, он нужен всем ожидающим.
func (s *RefreshScheduler) EnsureReady(ctx context.Context) {
	if s.State() == StateReady {
		return
	}
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.State() == StateReady {
		return
	}
	s.warmUpLocked(context.WithoutCancel(ctx))
}

// WarmUp - принудительный полный прогрев (действие оператора).
func (s *RefreshScheduler) WarmUp(ctx context.Context) (domain.WarmUpReport, error) {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	report := s.warmUpLocked(ctx)
	return report, ctx.Err()
}

// warmUpLocked - состояние меняется только при первом прогреве;
// повторный прогрев оставляет Ready, и чтения из кэша его не ждут.
func (s *RefreshScheduler) warmUpLocked(ctx context.Context) domain.WarmUpReport {
	s.state.CompareAndSwap(int32(StateUninitialized), int32(StateWarming))
	start := time.Now()

	var (
		mu     sync.Mutex
		report = domain.WarmUpReport{Failed: map[string]string{}}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, job := range s.Jobs() {
		job := job
		g.Go(func() error {
			err := s.refresh(gctx, job)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed[job.CacheKey] = err.Error()
			} else {
				report.Refreshed = append(report.Refreshed, job.CacheKey)
			}
			// ошибка одного ключа не должна отменять остальные
			return nil
		})
	}
	_ = g.Wait()

	report.Took = time.Since(start)
	s.state.Store(int32(StateReady))
	s.log.Infof(ctx, "reference cache warmed: ok=%d failed=%d took=%s",
		len(report.Refreshed), len(report.Failed), report.Took)
	return report
}

// Run - по одной горутине на задачу; живёт до отмены ctx.
// Прогревает кэш, если этого ещё никто не сделал.
func (s *RefreshScheduler) Run(ctx context.Context) error {
	s.EnsureReady(ctx)

	var wg sync.WaitGroup
	for _, job := range s.Jobs() {
		wg.Add(1)
		go func(job domain.RefreshJob) {
			defer wg.Done()
			s.loop(ctx, job)
		}(job)
	}
	wg.Wait()
	return nil
}

func (s *RefreshScheduler) loop(ctx context.Context, job domain.RefreshJob) {
	if job.Interval <= 0 {
		s.log.Warnf(ctx, "refresh job %s has no interval, skipped", job.CacheKey)
		return
	}
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// ошибки уже залогированы; прежняя запись остаётся в кэше
			_ = s.refresh(ctx, job)
		}
	}
}

// refresh - одно обновление ключа; ошибка логируется и не останавливает планировщик.
func (s *RefreshScheduler) refresh(ctx context.Context, job domain.RefreshJob) error {
	_, err := s.fetcher.Fetch(ctx, job.CacheKey, job.Endpoint)
	s.markRun(job.CacheKey)
	if err != nil {
		metrics.CacheRefresh.WithLabelValues(job.CacheKey, "failed").Inc()
		s.log.Warnf(ctx, "refresh %s failed, keeping previous entry: %v", job.CacheKey, err)
		return err
	}
	metrics.CacheRefresh.WithLabelValues(job.CacheKey, "ok").Inc()
	return nil
}

func (s *RefreshScheduler) markRun(key string) {
	now := time.Now()
	s.jobsMu.Lock()
	defer s.jobsMu.Unlock()
	for i := range s.jobs {
		if s.jobs[i].CacheKey == key {
			s.jobs[i].LastRunAt = now
		}
	}
}

// Jobs - снимок задач обновления.
func (s *RefreshScheduler) Jobs() []domain.RefreshJob {
	s.jobsMu.Lock()
	defer s.jobsMu.Unlock()
	return append([]domain.RefreshJob(nil), s.jobs...)
}
