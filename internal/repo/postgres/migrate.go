package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	"github.com/pressly/goose/v3"

	"github.com/Gunvolt24/cloak_gw/internal/ports"
	"github.com/Gunvolt24/cloak_gw/migrations"
)

// Migrate - применяет встроенные миграции (goose) к базе по DSN.
func Migrate(ctx context.Context, dsn string, log ports.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		log.Infof(ctx, "migration applied version=%d source=%s took=%s", r.Source.Version, r.Source.Path, r.Duration)
	}
	return nil
}
