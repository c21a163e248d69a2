package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/cv-paginator/internal/types"
)

// CreateTemplate stores a template and its section configuration in one transaction
func (db *DB) CreateTemplate(ctx context.Context, name string, orientation types.Orientation, sections []types.SectionConfig) (uuid.UUID, error) {
	if orientation == "" {
		orientation = types.OrientationPortrait
	}
	if !orientation.Valid() {
		return uuid.Nil, fmt.Errorf("invalid orientation: %s", orientation)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO templates (name, orientation) VALUES ($1, $2) RETURNING id`,
		name, string(orientation),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create template: %w", err)
	}

	batch := &pgx.Batch{}
	for _, s := range sections {
		fieldMapping, err := encodeMap(s.FieldMapping)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to encode field mapping: %w", err)
		}
		styling, err := encodeMap(s.Styling)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to encode styling: %w", err)
		}
		batch.Queue(
			`INSERT INTO template_sections (template_id, section_id, type, display_order, title, field_mapping, styling)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, nullString(s.ID), string(s.Type), s.DisplayOrder, nullString(s.Title), fieldMapping, styling,
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert template sections: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit template: %w", err)
	}
	return id, nil
}

// GetTemplate retrieves a template with its sections. Returns nil, nil when it does not exist.
func (db *DB) GetTemplate(ctx context.Context, id uuid.UUID) (*Template, error) {
	var tmpl Template
	var orientation string
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, orientation, created_at FROM templates WHERE id = $1`,
		id,
	).Scan(&tmpl.ID, &tmpl.Name, &orientation, &tmpl.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	tmpl.Orientation = types.Orientation(orientation)

	sections, err := db.GetTemplateSections(ctx, id)
	if err != nil {
		return nil, err
	}
	tmpl.Sections = sections
	return &tmpl, nil
}

// GetTemplateSections retrieves the section configuration of a template in display order
func (db *DB) GetTemplateSections(ctx context.Context, templateID uuid.UUID) ([]types.SectionConfig, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT section_id, type, display_order, title, field_mapping, styling
		 FROM template_sections WHERE template_id = $1
		 ORDER BY display_order ASC, id ASC`,
		templateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list template sections: %w", err)
	}
	defer rows.Close()

	sections := []types.SectionConfig{}
	for rows.Next() {
		var (
			sectionID, title      *string
			sectionType           string
			fieldMapping, styling []byte
			cfg                   types.SectionConfig
		)
		if err := rows.Scan(&sectionID, &sectionType, &cfg.DisplayOrder, &title, &fieldMapping, &styling); err != nil {
			return nil, fmt.Errorf("failed to scan template section: %w", err)
		}
		cfg.Type = types.SectionType(sectionType)
		if sectionID != nil {
			cfg.ID = *sectionID
		}
		if title != nil {
			cfg.Title = *title
		}
		if cfg.FieldMapping, err = decodeMap(fieldMapping); err != nil {
			return nil, err
		}
		if cfg.Styling, err = decodeMap(styling); err != nil {
			return nil, err
		}
		sections = append(sections, cfg)
	}
	return sections, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// encodeMap returns nil (SQL NULL) for an empty map.
func encodeMap(m map[string]string) ([]byte, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func decodeMap(data []byte) (map[string]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode section map: %w", err)
	}
	return m, nil
}
