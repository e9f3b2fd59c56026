// Package persistence adapts preference repositories to the application's
// error-free PreferenceStore port.
package persistence

import (
	"context"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/domain/repository"
	"github.com/bnema/themesync/internal/logging"
)

// PreferenceStore implements port.PreferenceStore on top of a repository.
// Repository errors are logged and turned into "absent" or "not saved".
type PreferenceStore struct {
	repo repository.PreferenceRepository
	key  string
}

// NewPreferenceStore creates a store reading and writing under key.
// An empty key means entity.DefaultPreferenceKey. A nil repo behaves as an
// unavailable store.
func NewPreferenceStore(repo repository.PreferenceRepository, key string) *PreferenceStore {
	if key == "" {
		key = entity.DefaultPreferenceKey
	}
	return &PreferenceStore{repo: repo, key: key}
}

// Key returns the key the preference is stored under.
func (s *PreferenceStore) Key() string {
	return s.key
}

// Load implements port.PreferenceStore.
func (s *PreferenceStore) Load(ctx context.Context) (entity.Theme, bool) {
	log := logging.FromContext(ctx)

	if s.repo == nil {
		return "", false
	}

	pref, err := s.repo.Get(ctx, s.key)
	if err != nil {
		log.Debug().Err(err).Str("key", s.key).Msg("preference storage unavailable, treating as absent")
		return "", false
	}
	if pref == nil {
		return "", false
	}

	theme, err := pref.Theme()
	if err != nil {
		log.Debug().Str("key", s.key).Str("value", pref.Value).Msg("ignoring invalid stored theme")
		return "", false
	}
	return theme, true
}

// Present implements port.PreferenceStore.
func (s *PreferenceStore) Present(ctx context.Context) bool {
	if s.repo == nil {
		return false
	}

	pref, err := s.repo.Get(ctx, s.key)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("key", s.key).Msg("preference storage unavailable, treating as absent")
		return false
	}
	return pref != nil && pref.Value != ""
}

// Save implements port.PreferenceStore.
func (s *PreferenceStore) Save(ctx context.Context, theme entity.Theme) bool {
	log := logging.FromContext(ctx)

	if s.repo == nil {
		return false
	}

	if err := s.repo.Set(ctx, entity.NewStoredPreference(s.key, theme)); err != nil {
		log.Debug().Err(err).Str("key", s.key).Msg("preference storage unavailable, choice kept in memory only")
		return false
	}
	return true
}

var _ port.PreferenceStore = (*PreferenceStore)(nil)
