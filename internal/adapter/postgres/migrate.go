package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/worktrack-backend/migrations"
)

// OpenMigrationDB opens a database/sql handle for goose, which does not
// speak pgxpool, and verifies the connection.
func OpenMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, MapError(fmt.Errorf("ping database: %w", err), "migration", nilID)
	}
	return db, nil
}

// NewMigrator returns a goose provider over the embedded migrations.
func NewMigrator(db *sql.DB) (*goose.Provider, error) {
	p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return p, nil
}

// MigrateUp applies every pending migration to the database at dsn.
func MigrateUp(ctx context.Context, dsn string) error {
	db, err := OpenMigrationDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := NewMigrator(db)
	if err != nil {
		return err
	}
	if _, err := p.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
