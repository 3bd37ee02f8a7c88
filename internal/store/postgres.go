package store

import (
	"context"
	"database/sql"
	"errors"
)

// Postgres persists every collection as a single row in one key-value table.
// The substrate keeps the full-collection read/write contract instead of
// normalizing entities into per-field columns.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_collections (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	_, err := p.db.ExecContext(ctx, query)
	return err
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value FROM kv_collections WHERE key = $1
	`

	var raw []byte
	if err := p.db.QueryRowContext(ctx, query, key).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}

	return raw, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_collections (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`

	_, err := p.db.ExecContext(ctx, query, key, value)
	return err
}

func (p *Postgres) SetMulti(ctx context.Context, values map[string][]byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO kv_collections (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`

	for key, value := range values {
		if _, err := tx.ExecContext(ctx, query, key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (p *Postgres) Del(ctx context.Context, key string) error {
	query := `
		DELETE FROM kv_collections WHERE key = $1
	`

	_, err := p.db.ExecContext(ctx, query, key)
	return err
}
