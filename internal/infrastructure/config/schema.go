package config

import (
	"time"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
)

// Config represents the complete themesync configuration.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage" toml:"storage" json:"storage"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Document DocumentConfig `mapstructure:"document" toml:"document" json:"document"`
	Toggles  TogglesConfig  `mapstructure:"toggles" toml:"toggles" json:"toggles"`
	System   SystemConfig   `mapstructure:"system" toml:"system" json:"system"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
}

// StorageConfig holds stored preference settings.
type StorageConfig struct {
	// Key is the name the preference is persisted under.
	Key string `mapstructure:"key" toml:"key" json:"key" validate:"required,max=128" jsonschema:"description=Key the theme preference is stored under,default=theme"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path of the SQLite file. Empty means $XDG_DATA_HOME/themesync/themesync.db.
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=SQLite database path (empty for the XDG data directory)"`
}

// DocumentConfig holds markup conventions for the document root.
type DocumentConfig struct {
	Attribute string `mapstructure:"attribute" toml:"attribute" json:"attribute" validate:"required,attr_name" jsonschema:"description=Root element attribute holding the theme,default=data-theme"`
}

// TogglesConfig describes how toggle controls are found and labelled.
type TogglesConfig struct {
	Class      string `mapstructure:"class" toml:"class" json:"class" validate:"omitempty,attr_token" jsonschema:"description=Class marking toggle controls,default=theme-toggle"`
	ID         string `mapstructure:"id" toml:"id" json:"id" validate:"omitempty,attr_token" jsonschema:"description=Element id marking a toggle control,default=theme-toggle"`
	DarkGlyph  string `mapstructure:"dark_glyph" toml:"dark_glyph" json:"dark_glyph" validate:"required" jsonschema:"description=Toggle text while the dark theme is active"`
	LightGlyph string `mapstructure:"light_glyph" toml:"light_glyph" json:"light_glyph" validate:"required" jsonschema:"description=Toggle text while the light theme is active"`
	DarkLabel  string `mapstructure:"dark_label" toml:"dark_label" json:"dark_label" validate:"required" jsonschema:"description=aria-label while the dark theme is active"`
	LightLabel string `mapstructure:"light_label" toml:"light_label" json:"light_label" validate:"required" jsonschema:"description=aria-label while the light theme is active"`
	Hint       string `mapstructure:"hint" toml:"hint" json:"hint" jsonschema:"description=title attribute (hover hint)"`
}

// SystemConfig controls the system color scheme signal.
type SystemConfig struct {
	// PollInterval is how often detectors are re-queried. Zero disables polling.
	PollInterval time.Duration `mapstructure:"poll_interval" toml:"poll_interval" json:"poll_interval" validate:"min=0" jsonschema:"description=Detector polling interval (0 disables polling)"`
	// Override pins the system preference to dark or light.
	Override string `mapstructure:"override" toml:"override" json:"override" validate:"omitempty,oneof=dark light" jsonschema:"description=Force the system preference to dark or light (empty to detect)"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" validate:"oneof=trace debug info warn error fatal panic" jsonschema:"description=Log verbosity,enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal,enum=panic"`
	Format string `mapstructure:"format" toml:"format" json:"format" validate:"oneof=text console json" jsonschema:"description=Log output format,enum=text,enum=console,enum=json"`
}

// ToggleSelector returns the selector matching configured toggle controls.
func (c *Config) ToggleSelector() port.ToggleSelector {
	return port.ToggleSelector{Class: c.Toggles.Class, ID: c.Toggles.ID}
}

// ToggleLabels returns the glyphs and texts written on toggle controls.
func (c *Config) ToggleLabels() entity.ToggleLabels {
	return entity.ToggleLabels{
		DarkGlyph:  c.Toggles.DarkGlyph,
		LightGlyph: c.Toggles.LightGlyph,
		DarkLabel:  c.Toggles.DarkLabel,
		LightLabel: c.Toggles.LightLabel,
		Hint:       c.Toggles.Hint,
	}
}
