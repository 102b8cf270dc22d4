package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Executor runs DDL statements; *pgxpool.Pool and pgxmock pools satisfy it
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("Database connected successfully")

	return pool, nil
}

// EnsureCollections creates one JSONB document table per collection, each with
// a unique index on the document id. Users additionally get a unique email index.
func EnsureCollections(ctx context.Context, db Executor, collections ...string) error {
	for _, name := range collections {
		table := pgx.Identifier{name}.Sanitize()
		statements := []string{
			`CREATE TABLE IF NOT EXISTS ` + table + ` (
				storage_key BIGSERIAL PRIMARY KEY,
				doc JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS ` + pgx.Identifier{name + "_id_idx"}.Sanitize() +
				` ON ` + table + ` ((doc->>'id'))`,
		}
		if name == "users" {
			statements = append(statements, `CREATE UNIQUE INDEX IF NOT EXISTS `+
				pgx.Identifier{name + "_email_idx"}.Sanitize()+` ON `+table+` ((doc->>'email'))`)
		}

		for _, stmt := range statements {
			if _, err := db.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to prepare collection %s: %w", name, err)
			}
		}
		log.Printf("Collection %s ready", name)
	}
	return nil
}
