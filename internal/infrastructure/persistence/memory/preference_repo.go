// Package memory provides an in-process preference repository.
package memory

import (
	"context"
	"sync"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/domain/repository"
)

// PreferenceRepository keeps preferences in a map. Its zero value is not usable;
// call NewPreferenceRepository.
type PreferenceRepository struct {
	mu      sync.RWMutex
	entries map[string]entity.StoredPreference
	// Err, when set, is returned by every call to simulate an unavailable store.
	Err error
}

// NewPreferenceRepository creates an empty repository.
func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{entries: make(map[string]entity.StoredPreference)}
}

// Get implements repository.PreferenceRepository.
func (r *PreferenceRepository) Get(_ context.Context, key string) (*entity.StoredPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}
	pref, ok := r.entries[key]
	if !ok {
		return nil, nil
	}
	return &pref, nil
}

// Set implements repository.PreferenceRepository.
func (r *PreferenceRepository) Set(_ context.Context, pref *entity.StoredPreference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	r.entries[pref.Key] = *pref
	return nil
}

// Len returns the number of stored entries.
func (r *PreferenceRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

var _ repository.PreferenceRepository = (*PreferenceRepository)(nil)
