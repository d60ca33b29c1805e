package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Gunvolt24/cloak_gw/config"
	cachemem "github.com/Gunvolt24/cloak_gw/internal/cache/memory"
	"github.com/Gunvolt24/cloak_gw/internal/auth"
	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/kafka"
	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/Gunvolt24/cloak_gw/internal/repo/postgres"
	rest "github.com/Gunvolt24/cloak_gw/internal/transport/http"
	"github.com/Gunvolt24/cloak_gw/internal/upstream"
	"github.com/Gunvolt24/cloak_gw/internal/usecase"
	"github.com/Gunvolt24/cloak_gw/pkg/logger"
	"github.com/Gunvolt24/cloak_gw/pkg/metrics"
	"github.com/Gunvolt24/cloak_gw/pkg/telemetry"
	"github.com/Gunvolt24/cloak_gw/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App - собранное приложение: HTTP-сервер и фоновые задачи.
type App struct {
	Logger        ports.Logger
	HTTPServer    *http.Server
	Scheduler     ports.BackgroundRunner // автообновление справочников
	KafkaConsumer ports.MessageConsumer  // nil, если Kafka выключена

	gracefulTimeout time.Duration
}

// Cleanup - функция освобождения ресурсов.
type Cleanup func()

// applyGinMode - режим Gin по строке; неизвестное значение -> debug и предупреждение.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// instanceGroupID - своя consumer group на инстанс: каждая копия сервиса получает все команды.
func instanceGroupID(base string) string {
	host, err := os.Hostname()
	if err != nil || strings.TrimSpace(host) == "" {
		return base
	}
	return base + "-" + host
}

// Bootstrap - собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	metrics.MustRegister()

	// Трейсинг OTEL; по умолчанию no-op.
	shutdownTrace := telemetry.Shutdown(func(context.Context) error { return nil })
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.TracingConfig{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Журнал вызовов в Postgres (опционально).
	var (
		pool     *pgxpool.Pool
		callLogs ports.CallLogRepository
	)
	if cfg.Postgres.Enabled {
		if cfg.Postgres.Migrate {
			if mErr := postgres.Migrate(ctx, cfg.Postgres.DSN, logg); mErr != nil {
				_ = shutdownTrace(context.Background())
				closeLogger()
				return nil, func() {}, mErr
			}
		}
		pool, err = postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			_ = shutdownTrace(context.Background())
			closeLogger()
			return nil, func() {}, err
		}
		callLogs = postgres.NewCallLogRepository(pool)
	} else {
		logg.Warnf(ctx, "postgres disabled, call log is not persisted")
	}

	// Кэш справочников и внешний API.
	store := cachemem.NewStore()
	client := upstream.NewClient(upstream.Config{
		BaseURL:     cfg.Upstream.BaseURL,
		APIKey:      cfg.Upstream.APIKey,
		Timeout:     cfg.Upstream.Timeout,
		MaxAttempts: cfg.Upstream.MaxAttempts,
		BackoffStep: cfg.Upstream.BackoffStep,
	}, nil, logg)

	fetcher := usecase.NewReferenceFetcher(client, store, cfg.Cache.TTL, logg)
	scheduler := usecase.NewRefreshScheduler(fetcher,
		domain.ReferenceJobs(cfg.Cache.RefreshInterval), cfg.Cache.WarmUpConcurrency, logg)

	referenceService := usecase.NewReferenceService(store, fetcher, scheduler, logg)
	cacheAdmin := usecase.NewCacheAdmin(store, scheduler, validate.NewCommandValidator(), logg)
	gatewayService := usecase.NewGatewayService(client, callLogs, logg)

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	httpHandler := rest.NewHandler(rest.Services{
		Reference: referenceService,
		Admin:     cacheAdmin,
		Gateway:   gatewayService,
		Calls:     gatewayService,
		Auth:      auth.NewStaticToken(cfg.Auth.Token),
	}, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Команды управления кэшем из Kafka (опционально).
	var consumer ports.MessageConsumer
	if cfg.Kafka.Enabled {
		consumer = kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        instanceGroupID(cfg.Kafka.GroupID),
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, cacheAdmin, logg)
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Scheduler:       scheduler,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов в обратном порядке.
	cleanup := func() {
		if tErr := shutdownTrace(context.Background()); tErr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", tErr)
		}
		if consumer != nil {
			if cErr := consumer.Close(); cErr != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", cErr)
			}
		}
		if pool != nil {
			pool.Close()
		}
		closeLogger()
	}

	return app, cleanup, nil
}

// Run - запускает HTTP-сервер, автообновление и консьюмер; ждёт отмены контекста или ошибки.
func (a *App) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 3)

	if a.Scheduler != nil {
		go func() {
			a.Logger.Infof(ctx, "refresh scheduler starting")
			if err := a.Scheduler.Run(runCtx); err != nil {
				errCh <- err
			}
		}()
	}

	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(runCtx); err != nil {
				errCh <- err
			}
		}()
	}

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background error: %v", err)
			runErr = err
		}
	}
	cancel()

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gt)
	defer shutdownCancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
