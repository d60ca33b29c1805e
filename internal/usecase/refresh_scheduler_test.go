package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/cache/memory"
	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/ports/mocks"
	"github.com/Gunvolt24/cloak_gw/internal/usecase"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestEnsureReady_ConcurrentFirstCalls_SingleWarmUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := mocks.NewMockUpstreamCaller(ctrl)
	store := memory.NewStore()

	jobs := domain.ReferenceJobs(time.Minute)
	// по одному вызову на справочник, несмотря на 10 конкурентных "первых" запросов
	caller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.Fields) (*domain.UpstreamResponse, error) {
			time.Sleep(5 * time.Millisecond)
			return success(`[1]`), nil
		}).Times(len(jobs))

	fetcher := usecase.NewReferenceFetcher(caller, store, time.Minute, noopLogger{})
	sched := usecase.NewRefreshScheduler(fetcher, jobs, 3, noopLogger{})
	require.Equal(t, usecase.StateUninitialized, sched.State())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sched.EnsureReady(context.Background())
		}()
	}
	wg.Wait()

	require.Equal(t, usecase.StateReady, sched.State())
	require.Len(t, store.Stats(context.Background()), len(jobs))
}

func TestEnsureReady_CanceledCallerStillWarms(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := mocks.NewMockUpstreamCaller(ctrl)
	store := memory.NewStore()

	caller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ domain.Fields) (*domain.UpstreamResponse, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return success(`[1]`), nil
		}).Times(1)

	jobs := []domain.RefreshJob{{CacheKey: domain.RefCountries, Endpoint: countriesEndpoint, Interval: time.Minute}}
	fetcher := usecase.NewReferenceFetcher(caller, store, time.Minute, noopLogger{})
	sched := usecase.NewRefreshScheduler(fetcher, jobs, 1, noopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sched.EnsureReady(ctx)

	_, ok := store.Get(context.Background(), domain.RefCountries)
	require.True(t, ok)
}

func TestWarmUp_PerKeyFailureIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := mocks.NewMockUpstreamCaller(ctrl)
	store := memory.NewStore()

	caller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, endpoint string, _ domain.Fields) (*domain.UpstreamResponse, error) {
			if endpoint == "/references/devices" {
				return nil, errors.New("upstream down")
			}
			return success(`[{"id":1}]`), nil
		}).AnyTimes()

	jobs := domain.ReferenceJobs(time.Minute)
	fetcher := usecase.NewReferenceFetcher(caller, store, time.Minute, noopLogger{})
	sched := usecase.NewRefreshScheduler(fetcher, jobs, 2, noopLogger{})

	report, err := sched.WarmUp(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Refreshed, len(jobs)-1)
	require.Contains(t, report.Failed, domain.RefDevices)
	require.NotContains(t, report.Refreshed, domain.RefDevices)
	require.Equal(t, usecase.StateReady, sched.State())

	_, ok := store.Peek(context.Background(), domain.RefDevices)
	require.False(t, ok)

	for _, job := range sched.Jobs() {
		require.False(t, job.LastRunAt.IsZero(), "job %s must record its run", job.CacheKey)
	}
}

func TestRun_RefreshFailureKeepsStaleEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := mocks.NewMockUpstreamCaller(ctrl)
	store := memory.NewStore()
	ctx := context.Background()

	// предыдущее значение уже истекло
	store.Set(ctx, domain.RefDevices, json.RawMessage(`["old"]`), time.Nanosecond)

	refreshed := make(chan struct{}, 16)
	caller.EXPECT().Call(gomock.Any(), "/references/devices", gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.Fields) (*domain.UpstreamResponse, error) {
			select {
			case refreshed <- struct{}{}:
			default:
			}
			return nil, errors.New("503")
		}).MinTimes(2)

	jobs := []domain.RefreshJob{{CacheKey: domain.RefDevices, Endpoint: "/references/devices", Interval: 10 * time.Millisecond}}
	fetcher := usecase.NewReferenceFetcher(caller, store, time.Minute, noopLogger{})
	sched := usecase.NewRefreshScheduler(fetcher, jobs, 1, noopLogger{})

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- sched.Run(runCtx) }()

	// прогрев + хотя бы одно фоновое обновление
	for i := 0; i < 2; i++ {
		select {
		case <-refreshed:
		case <-time.After(2 * time.Second):
			t.Fatalf("refresh did not happen")
		}
	}
	cancel()
	require.NoError(t, <-done)

	ent, ok := store.Peek(ctx, domain.RefDevices)
	require.True(t, ok, "failed refresh must not remove the previous entry")
	require.Equal(t, `["old"]`, string(ent.Value))
}

func TestRun_RefreshOverwritesOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := mocks.NewMockUpstreamCaller(ctrl)
	store := memory.NewStore()
	ctx := context.Background()

	var (
		mu sync.Mutex
		n  int
	)
	calls := make(chan struct{}, 16)
	caller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.Fields) (*domain.UpstreamResponse, error) {
			mu.Lock()
			n++
			v := n
			mu.Unlock()
			select {
			case calls <- struct{}{}:
			default:
			}
			if v == 1 {
				return success(`["v1"]`), nil
			}
			return success(`["v2"]`), nil
		}).MinTimes(2)

	jobs := []domain.RefreshJob{{CacheKey: domain.RefBrowsers, Endpoint: "/references/browsers", Interval: 10 * time.Millisecond}}
	fetcher := usecase.NewReferenceFetcher(caller, store, time.Minute, noopLogger{})
	sched := usecase.NewRefreshScheduler(fetcher, jobs, 1, noopLogger{})

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- sched.Run(runCtx) }()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("refresh did not happen")
		}
	}
	cancel()
	require.NoError(t, <-done)

	got, ok := store.Get(ctx, domain.RefBrowsers)
	require.True(t, ok)
	require.Equal(t, `["v2"]`, string(got))
}

func TestInitState_String(t *testing.T) {
	require.Equal(t, "uninitialized", usecase.StateUninitialized.String())
	require.Equal(t, "warming", usecase.StateWarming.String())
	require.Equal(t, "ready", usecase.StateReady.String())
}

func TestWarmUp_ForcedRewarmDoesNotBlockFreshReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := mocks.NewMockUpstreamCaller(ctrl)
	store := memory.NewStore()

	started := make(chan struct{})
	release := make(chan struct{})
	var releaseOnce sync.Once
	unblock := func() { releaseOnce.Do(func() { close(release) }) }
	t.Cleanup(unblock)

	gomock.InOrder(
		caller.EXPECT().Call(gomock.Any(), countriesEndpoint, gomock.Any()).Return(success(`[{"id":1}]`), nil),
		// повторный прогрев висит на медленном API
		caller.EXPECT().Call(gomock.Any(), countriesEndpoint, gomock.Any()).
			DoAndReturn(func(context.Context, string, domain.Fields) (*domain.UpstreamResponse, error) {
				close(started)
				<-release
				return success(`[{"id":2}]`), nil
			}),
	)

	jobs := []domain.RefreshJob{{CacheKey: domain.RefCountries, Endpoint: countriesEndpoint, Interval: time.Minute}}
	fetcher := usecase.NewReferenceFetcher(caller, store, time.Minute, noopLogger{})
	sched := usecase.NewRefreshScheduler(fetcher, jobs, 1, noopLogger{})
	svc := usecase.NewReferenceService(store, fetcher, sched, noopLogger{})
	ctx := context.Background()

	sched.EnsureReady(ctx)

	reports := make(chan domain.WarmUpReport, 1)
	go func() {
		report, _ := sched.WarmUp(ctx)
		reports <- report
	}()
	<-started
	require.Equal(t, usecase.StateReady, sched.State())

	results := make(chan domain.Result, 1)
	go func() { results <- svc.GetCachedData(ctx, domain.RefCountries, countriesEndpoint) }()

	select {
	case res := <-results:
		require.Equal(t, domain.StatusSuccess, res.Status)
		require.JSONEq(t, `[{"id":1}]`, string(res.Data))
	case <-time.After(time.Second):
		t.Fatal("fresh read waited for the forced warm-up")
	}

	unblock()
	report := <-reports
	require.Equal(t, []string{domain.RefCountries}, report.Refreshed)
	require.Equal(t, usecase.StateReady, sched.State())

	got, ok := store.Get(ctx, domain.RefCountries)
	require.True(t, ok)
	require.JSONEq(t, `[{"id":2}]`, string(got))
}
