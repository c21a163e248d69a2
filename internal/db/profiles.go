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

// CreateProfile stores a profile and returns its ID
func (db *DB) CreateProfile(ctx context.Context, name string, profile *types.Profile) (uuid.UUID, error) {
	content, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO profiles (name, content) VALUES ($1, $2) RETURNING id`,
		name, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return id, nil
}

// UpdateProfile replaces the content of an existing profile
func (db *DB) UpdateProfile(ctx context.Context, id uuid.UUID, profile *types.Profile) error {
	content, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE profiles SET content = $1, updated_at = NOW() WHERE id = $2`,
		content, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", id)
	}
	return nil
}

// GetProfile retrieves a profile by ID. Returns nil, nil when it does not exist.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*ProfileRecord, error) {
	var rec ProfileRecord
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, content, created_at, updated_at FROM profiles WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Name, &content, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile, err := decodeProfile(content)
	if err != nil {
		return nil, err
	}
	rec.Profile = profile
	return &rec, nil
}

// ListProfiles retrieves recently updated profiles without their content
func (db *DB) ListProfiles(ctx context.Context, limit int) ([]ProfileRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM profiles ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []ProfileRecord
	for rows.Next() {
		var rec ProfileRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, rec)
	}
	return profiles, rows.Err()
}

// DeleteProfile deletes a profile and its exports (via cascade)
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", id)
	}
	return nil
}

func decodeProfile(content []byte) (*types.Profile, error) {
	var profile types.Profile
	if len(content) == 0 {
		return &profile, nil
	}
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile content: %w", err)
	}
	return &profile, nil
}
