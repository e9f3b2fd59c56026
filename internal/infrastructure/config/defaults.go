package config

import (
	"time"

	"github.com/bnema/themesync/internal/domain/entity"
)

// Default configuration constants
const (
	defaultAttribute    = "data-theme"
	defaultToggleName   = "theme-toggle"
	defaultPollInterval = 5 * time.Second
)

// DefaultConfig returns the default configuration values.
// Database.Path stays empty and is resolved to the XDG data directory on Load.
func DefaultConfig() *Config {
	labels := entity.DefaultToggleLabels()
	return &Config{
		Storage: StorageConfig{
			Key: entity.DefaultPreferenceKey,
		},
		Document: DocumentConfig{
			Attribute: defaultAttribute,
		},
		Toggles: TogglesConfig{
			Class:      defaultToggleName,
			ID:         defaultToggleName,
			DarkGlyph:  labels.DarkGlyph,
			LightGlyph: labels.LightGlyph,
			DarkLabel:  labels.DarkLabel,
			LightLabel: labels.LightLabel,
			Hint:       labels.Hint,
		},
		System: SystemConfig{
			PollInterval: defaultPollInterval,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text", // text or json
		},
	}
}
