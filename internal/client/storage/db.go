// Package storage opens the client-local sqlite database and wires the
// repositories over it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"

	"github.com/dgidpl/startup-app/internal/client/migrations"
	"github.com/dgidpl/startup-app/internal/client/repositories/metadata"
	"github.com/dgidpl/startup-app/internal/client/repositories/votes"
)

type Repositories struct {
	Votes    votes.Repository
	Metadata metadata.Repository
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens the database at dsn and runs migrations.
func Open(ctx context.Context, dsn string) (*Repositories, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repos := &Repositories{
		Votes:    votes.NewSQLiteRepository(db),
		Metadata: metadata.NewSQLiteRepository(db),
	}
	return repos, db, nil
}

// OpenOrReset opens the database at path. A file that cannot be opened or
// migrated is removed and recreated: a corrupt ledger resets to an empty one
// instead of failing construction.
func OpenOrReset(ctx context.Context, path string) (*Repositories, *sql.DB, error) {
	repos, db, err := Open(ctx, path)
	if err == nil {
		return repos, db, nil
	}

	if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
		return nil, nil, fmt.Errorf("removing corrupt database: %w", rmErr)
	}

	return Open(ctx, path)
}
