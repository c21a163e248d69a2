// Package db provides PostgreSQL storage for profiles, templates and export records.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profiles (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name       TEXT NOT NULL,
	content    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS templates (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name        TEXT NOT NULL,
	orientation TEXT NOT NULL DEFAULT 'portrait' CHECK (orientation IN ('portrait', 'landscape')),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS template_sections (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	template_id   UUID NOT NULL REFERENCES templates(id) ON DELETE CASCADE,
	section_id    TEXT,
	type          TEXT NOT NULL,
	display_order INT NOT NULL CHECK (display_order >= 0),
	title         TEXT,
	field_mapping JSONB,
	styling       JSONB
);

CREATE INDEX IF NOT EXISTS idx_template_sections_template ON template_sections(template_id, display_order);

CREATE TABLE IF NOT EXISTS exports (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	profile_id  UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	template_id UUID REFERENCES templates(id) ON DELETE SET NULL,
	orientation TEXT NOT NULL,
	engine      TEXT NOT NULL,
	page_count  INT NOT NULL,
	truncated   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_exports_profile ON exports(profile_id, created_at DESC);
`

// Migrate creates the tables this package reads and writes if they do not exist.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
