package app_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/cloak_gw/internal/app"
	"github.com/stretchr/testify/require"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// фейковый консьюмер, который ждёт отмены контекста
type fakeConsumer struct {
	runCalls   atomic.Int32
	closeCalls atomic.Int32
}

func (f *fakeConsumer) Run(ctx context.Context) error {
	f.runCalls.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeConsumer) Close() error {
	f.closeCalls.Add(1)
	return nil
}

// фейковый планировщик: живёт до отмены или сразу падает с err
type fakeScheduler struct {
	runCalls atomic.Int32
	stopped  atomic.Bool
	err      error
}

func (f *fakeScheduler) Run(ctx context.Context) error {
	f.runCalls.Add(1)
	if f.err != nil {
		return f.err
	}
	<-ctx.Done()
	f.stopped.Store(true)
	return nil
}

func newServer() *http.Server {
	return &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	fc := &fakeConsumer{}
	fs := &fakeScheduler{}
	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    newServer(),
		Scheduler:     fs,
		KafkaConsumer: fc,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))

	require.EqualValues(t, 1, fc.runCalls.Load())
	require.EqualValues(t, 1, fc.closeCalls.Load())
	require.EqualValues(t, 1, fs.runCalls.Load())
	require.Eventually(t, fs.stopped.Load, time.Second, 10*time.Millisecond)
}

func TestAppRun_WithoutConsumer(t *testing.T) {
	fs := &fakeScheduler{}
	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: newServer(),
		Scheduler:  fs,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
	require.EqualValues(t, 1, fs.runCalls.Load())
}

func TestAppRun_BackgroundErrorStopsApp(t *testing.T) {
	boom := errors.New("boom")
	fc := &fakeConsumer{}
	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    newServer(),
		Scheduler:     &fakeScheduler{err: boom},
		KafkaConsumer: fc,
	}

	// сигнала остановки нет: Run должен выйти сам по ошибке фоновой задачи
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err := a.Run(ctx)
	require.ErrorIs(t, err, boom)
	require.Less(t, time.Since(start), 5*time.Second)
	require.EqualValues(t, 1, fc.closeCalls.Load())
}

func TestAppRun_ListenErrorIsReturned(t *testing.T) {
	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "256.0.0.1:bad", Handler: http.NewServeMux()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.Error(t, a.Run(ctx))
}
