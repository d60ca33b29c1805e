//go:build integration

package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Gunvolt24/cloak_gw/internal/ports"
	pgrepo "github.com/Gunvolt24/cloak_gw/internal/repo/postgres"
	"github.com/Gunvolt24/cloak_gw/pkg/logger"
)

const (
	postgresImage = "postgres:16-alpine"
	redpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"
)

// tcLog - логгер жизненного цикла контейнеров (тот же zap-адаптер, что в сервисе).
var tcLog = newTCLogger()

func newTCLogger() ports.Logger {
	l, _, err := logger.NewZapLogger(false)
	if err != nil {
		return logger.NewNop()
	}
	return l
}

func shortID(c tc.Container) string {
	id := c.GetContainerID()
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// stageHook - одна строка лога на этап жизни контейнера.
func stageHook(l ports.Logger, stage string) tc.ContainerHook {
	return func(ctx context.Context, c tc.Container) error {
		l.Infof(ctx, "testcontainers %s id=%s", stage, shortID(c))
		return nil
	}
}

func logHooks(l ports.Logger) tc.ContainerLifecycleHooks {
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{
			func(ctx context.Context, req tc.ContainerRequest) error {
				l.Infof(ctx, "testcontainers creating image=%s", req.Image)
				return nil
			},
		},
		PostStarts:    []tc.ContainerHook{stageHook(l, "started")},
		PostReadies:   []tc.ContainerHook{stageHook(l, "ready")},
		PreTerminates: []tc.ContainerHook{stageHook(l, "terminating")},
	}
}

// ----------------------------------------------------------------------------
// Postgres
// ----------------------------------------------------------------------------

type PGContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartPostgresTC - Postgres для журнала вызовов со схемой из встроенных миграций;
// пул создаётся тем же NewPool, что и в сервисе.
func StartPostgresTC(ctx context.Context) (*PGContainer, func(context.Context) error, error) {
	pg, err := postgres.Run(
		ctx,
		postgresImage,
		tc.WithLifecycleHooks(logHooks(tcLog)),
		tc.WithExposedPorts("5432/tcp"),
		postgres.WithDatabase("cloak"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		tc.WithWaitStrategy(
			wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, fmt.Errorf("conn string: %w", err)
	}

	if err := pgrepo.Migrate(ctx, dsn, tcLog); err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	pool, err := pgrepo.NewPool(ctx, dsn, 5)
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, nil, err
	}

	stop := func(c context.Context) error {
		pool.Close()
		return pg.Terminate(c)
	}

	return &PGContainer{Container: pg, DSN: dsn, Pool: pool}, stop, nil
}

// ----------------------------------------------------------------------------
// Kafka (redpanda)
// ----------------------------------------------------------------------------

type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, func(context.Context) error, error) {
	rp, err := redpanda.Run(
		ctx,
		redpandaImage,
		tc.WithLifecycleHooks(logHooks(tcLog)),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	env := &KafkaEnv{
		Container: rp,
		Brokers:   []string{seed},
		BaseTopic: baseTopic,
	}
	stop := func(_ context.Context) error { return tc.TerminateContainer(rp) }
	return env, stop, nil
}
