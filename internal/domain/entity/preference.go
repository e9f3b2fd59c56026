package entity

import "time"

// StoredPreference is a raw key/value entry from a persistent store.
// Value is not validated here; stores may hold anything.
type StoredPreference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// NewStoredPreference creates a preference entry for a theme.
func NewStoredPreference(key string, theme Theme) *StoredPreference {
	return &StoredPreference{
		Key:       key,
		Value:     theme.String(),
		UpdatedAt: time.Now(),
	}
}

// Theme returns the validated theme held by the entry.
func (p *StoredPreference) Theme() (Theme, error) {
	if p == nil {
		return "", ErrInvalidTheme
	}
	return ParseTheme(p.Value)
}
