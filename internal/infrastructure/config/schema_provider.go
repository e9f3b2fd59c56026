package config

import (
	"github.com/bnema/themesync/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionStorage  = "Storage"
	SectionDatabase = "Database"
	SectionDocument = "Document"
	SectionToggles  = "Toggles"
	SectionSystem   = "System"
	SectionLogging  = "Logging"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys,
		entity.ConfigKeyInfo{
			Key:         "storage.key",
			Type:        "string",
			Default:     defaults.Storage.Key,
			Description: "Key the explicit theme choice is stored under",
			Section:     SectionStorage,
		},
		entity.ConfigKeyInfo{
			Key:         "database.path",
			Type:        "string",
			Default:     "$XDG_DATA_HOME/themesync/" + databaseName,
			Description: "SQLite file holding the stored preference",
			Section:     SectionDatabase,
		},
		entity.ConfigKeyInfo{
			Key:         "document.attribute",
			Type:        "string",
			Default:     defaults.Document.Attribute,
			Description: "Root element attribute receiving the theme",
			Section:     SectionDocument,
		},
	)
	keys = append(keys, p.getToggleKeys(defaults)...)
	keys = append(keys,
		entity.ConfigKeyInfo{
			Key:         "system.poll_interval",
			Type:        "duration",
			Default:     defaults.System.PollInterval.String(),
			Description: "How often desktop detectors are re-queried (0 disables polling)",
			Range:       ">=0",
			Section:     SectionSystem,
		},
		entity.ConfigKeyInfo{
			Key:         "system.override",
			Type:        "string",
			Default:     defaults.System.Override,
			Description: "Pin the system preference instead of detecting it",
			Values:      []string{"", "dark", "light"},
			Section:     SectionSystem,
		},
		entity.ConfigKeyInfo{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"},
			Section:     SectionLogging,
		},
		entity.ConfigKeyInfo{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"text", "console", "json"},
			Section:     SectionLogging,
		},
	)
	return keys
}

func (*SchemaProvider) getToggleKeys(defaults *Config) []entity.ConfigKeyInfo {
	t := defaults.Toggles
	return []entity.ConfigKeyInfo{
		{Key: "toggles.class", Type: "string", Default: t.Class, Description: "Class marking toggle controls", Section: SectionToggles},
		{Key: "toggles.id", Type: "string", Default: t.ID, Description: "Element id marking a toggle control", Section: SectionToggles},
		{Key: "toggles.dark_glyph", Type: "string", Default: t.DarkGlyph, Description: "Toggle text while dark is active", Section: SectionToggles},
		{Key: "toggles.light_glyph", Type: "string", Default: t.LightGlyph, Description: "Toggle text while light is active", Section: SectionToggles},
		{Key: "toggles.dark_label", Type: "string", Default: t.DarkLabel, Description: "aria-label while dark is active", Section: SectionToggles},
		{Key: "toggles.light_label", Type: "string", Default: t.LightLabel, Description: "aria-label while light is active", Section: SectionToggles},
		{Key: "toggles.hint", Type: "string", Default: t.Hint, Description: "title attribute shown on hover", Section: SectionToggles},
	}
}
