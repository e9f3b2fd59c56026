package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/domain/repository"
	"github.com/bnema/themesync/internal/logging"
)

const (
	getPreferenceQuery = `SELECT key, value, updated_at FROM preferences WHERE key = ?`
	setPreferenceQuery = `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

type preferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new SQLite-backed preference repository.
func NewPreferenceRepository(db *sql.DB) repository.PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (*entity.StoredPreference, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Msg("getting preference")

	var (
		pref      entity.StoredPreference
		updatedAt sql.NullString
	)
	err := r.db.QueryRowContext(ctx, getPreferenceQuery, key).Scan(&pref.Key, &pref.Value, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preference %q: %w", key, err)
	}
	pref.UpdatedAt = parseTimestamp(updatedAt.String)
	return &pref, nil
}

func (r *preferenceRepo) Set(ctx context.Context, pref *entity.StoredPreference) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", pref.Key).Str("value", pref.Value).Msg("setting preference")

	updatedAt := pref.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	if _, err := r.db.ExecContext(ctx, setPreferenceQuery, pref.Key, pref.Value, updatedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to set preference %q: %w", pref.Key, err)
	}
	return nil
}

// parseTimestamp reads both our RFC 3339 values and SQLite's CURRENT_TIMESTAMP format.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.DateTime} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
