package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/cv-paginator/internal/types"
)

// SaveExport records a pagination or export run and returns its ID
func (db *DB) SaveExport(ctx context.Context, in ExportInput) (uuid.UUID, error) {
	if in.Engine == "" {
		in.Engine = EngineAllocate
	}
	if in.Orientation == "" {
		in.Orientation = types.OrientationPortrait
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO exports (profile_id, template_id, orientation, engine, page_count, truncated)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		in.ProfileID, in.TemplateID, string(in.Orientation), in.Engine, in.PageCount, in.Truncated,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save export: %w", err)
	}
	return id, nil
}

// ListExports retrieves the most recent runs recorded for a profile
func (db *DB) ListExports(ctx context.Context, profileID uuid.UUID, limit int) ([]Export, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, profile_id, template_id, orientation, engine, page_count, truncated, created_at
		 FROM exports WHERE profile_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		profileID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer rows.Close()

	var exports []Export
	for rows.Next() {
		var e Export
		var orientation string
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.TemplateID, &orientation, &e.Engine, &e.PageCount, &e.Truncated, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}
		e.Orientation = types.Orientation(orientation)
		exports = append(exports, e)
	}
	return exports, rows.Err()
}
