package config

import (
	"fmt"
	"strings"
)

// Setting is one flattened configuration key with its value as text.
type Setting struct {
	Key   string
	Value string
}

// KeyChange describes a key whose value differs between two configs.
type KeyChange struct {
	Key      string
	OldValue string
	NewValue string
}

// Settings flattens cfg in config file order.
func Settings(cfg *Config) []Setting {
	return []Setting{
		{Key: "storage.key", Value: cfg.Storage.Key},
		{Key: "database.path", Value: cfg.Database.Path},
		{Key: "document.attribute", Value: cfg.Document.Attribute},
		{Key: "toggles.class", Value: cfg.Toggles.Class},
		{Key: "toggles.id", Value: cfg.Toggles.ID},
		{Key: "toggles.dark_glyph", Value: cfg.Toggles.DarkGlyph},
		{Key: "toggles.light_glyph", Value: cfg.Toggles.LightGlyph},
		{Key: "toggles.dark_label", Value: cfg.Toggles.DarkLabel},
		{Key: "toggles.light_label", Value: cfg.Toggles.LightLabel},
		{Key: "toggles.hint", Value: cfg.Toggles.Hint},
		{Key: "system.poll_interval", Value: cfg.System.PollInterval.String()},
		{Key: "system.override", Value: cfg.System.Override},
		{Key: "logging.level", Value: cfg.Logging.Level},
		{Key: "logging.format", Value: cfg.Logging.Format},
	}
}

// Diff lists the keys whose values differ, in config file order.
// A nil config compares as the defaults.
func Diff(oldCfg, newCfg *Config) []KeyChange {
	if oldCfg == nil {
		oldCfg = DefaultConfig()
	}
	if newCfg == nil {
		newCfg = DefaultConfig()
	}

	before := Settings(oldCfg)
	after := Settings(newCfg)

	var changes []KeyChange
	for i := range before {
		if before[i].Value != after[i].Value {
			changes = append(changes, KeyChange{
				Key:      before[i].Key,
				OldValue: before[i].Value,
				NewValue: after[i].Value,
			})
		}
	}
	return changes
}

// ChangedKeys returns the key of each change.
func ChangedKeys(changes []KeyChange) []string {
	keys := make([]string, 0, len(changes))
	for _, c := range changes {
		keys = append(keys, c.Key)
	}
	return keys
}

// FormatChangesAsDiff returns changes formatted as a diff for display.
func FormatChangesAsDiff(changes []KeyChange) string {
	if len(changes) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder
	for _, change := range changes {
		sb.WriteString(fmt.Sprintf("  - %s = %q\n", change.Key, change.OldValue))
		sb.WriteString(fmt.Sprintf("  + %s = %q\n", change.Key, change.NewValue))
	}
	return sb.String()
}
