package repository

import (
	"context"

	"github.com/bnema/themesync/internal/domain/entity"
)

// PreferenceRepository defines persistence for key/value user preferences.
type PreferenceRepository interface {
	// Get retrieves the entry stored under key.
	// Returns nil if nothing is stored.
	Get(ctx context.Context, key string) (*entity.StoredPreference, error)

	// Set saves or overwrites an entry.
	Set(ctx context.Context, pref *entity.StoredPreference) error
}
