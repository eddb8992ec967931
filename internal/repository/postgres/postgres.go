package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories use. pgxmock satisfies
// it too, which keeps the repository tests free of a live database.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EnsureSchema creates the products and cart_items tables if they do not
// exist. The cart_items unique constraint on product_id is what makes the
// add-or-merge upsert atomic.
func EnsureSchema(ctx context.Context, db DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS products (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			price_cents BIGINT NOT NULL CHECK (price_cents >= 0),
			image       TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS cart_items (
			id         TEXT PRIMARY KEY,
			product_id TEXT NOT NULL UNIQUE REFERENCES products (id),
			quantity   INTEGER NOT NULL CHECK (quantity > 0),
			created_at TIMESTAMPTZ NOT NULL
		)`

	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
