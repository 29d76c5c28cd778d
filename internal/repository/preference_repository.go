package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
)

// PreferenceRepository provides data access methods for the preference table.
// Each row stores one key/value pair for one client.
type PreferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new PreferenceRepository with the provided database connection.
func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetPreference retrieves a single preference.
// Returns apperrors.ErrPreferenceNotFound when the client has no value for key.
func (r *PreferenceRepository) GetPreference(ctx context.Context, clientID, key string) (model.Preference, error) {
	query := `
		SELECT client_id, key, value, updated_at
		FROM preference
		WHERE client_id = ? AND key = ?
	`

	var p model.Preference
	var updatedAt string

	err := r.db.QueryRowContext(ctx, query, clientID, key).Scan(
		&p.ClientID,
		&p.Key,
		&p.Value,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Preference{}, apperrors.ErrPreferenceNotFound
	}
	if err != nil {
		return model.Preference{}, fmt.Errorf("failed to query preference: %w", err)
	}

	p.UpdatedAt, err = ParseTime(updatedAt)
	if err != nil {
		return model.Preference{}, err
	}

	return p, nil
}

// SetPreference inserts or replaces a preference value.
func (r *PreferenceRepository) SetPreference(ctx context.Context, p model.Preference) error {
	query := `
		INSERT INTO preference (client_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (client_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ClientID,
		p.Key,
		p.Value,
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}

	return nil
}

// TouchPreference marks a preference as used at the given time so that
// pruning keeps it. Touching a missing preference is a no-op.
func (r *PreferenceRepository) TouchPreference(ctx context.Context, clientID, key string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE preference SET updated_at = ? WHERE client_id = ? AND key = ?`,
		at.UTC().Format(time.RFC3339),
		clientID,
		key,
	)
	if err != nil {
		return fmt.Errorf("failed to touch preference: %w", err)
	}
	return nil
}

// DeleteOlderThan removes preferences last used before cutoff and
// returns the number of rows removed.
func (r *PreferenceRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM preference WHERE updated_at < ?`,
		cutoff.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale preferences: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted preferences: %w", err)
	}

	return removed, nil
}

// CountPreferences returns the number of stored preferences.
func (r *PreferenceRepository) CountPreferences(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM preference`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count preferences: %w", err)
	}
	return count, nil
}
