package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiff_NoChanges(t *testing.T) {
	assert.Empty(t, Diff(DefaultConfig(), DefaultConfig()))
	assert.Empty(t, Diff(nil, DefaultConfig()))
	assert.Equal(t, "No changes detected.", FormatChangesAsDiff(nil))
}

func TestDiff_ReportsChangedKeysInFileOrder(t *testing.T) {
	updated := DefaultConfig()
	updated.Toggles.Hint = "Switch theme"
	updated.Storage.Key = "color-mode"
	updated.System.PollInterval = 10 * time.Second

	changes := Diff(DefaultConfig(), updated)

	assert.Equal(t, []string{"storage.key", "toggles.hint", "system.poll_interval"}, ChangedKeys(changes))
	assert.Equal(t, KeyChange{Key: "storage.key", OldValue: "theme", NewValue: "color-mode"}, changes[0])
	assert.Equal(t, "5s", changes[2].OldValue)
	assert.Equal(t, "10s", changes[2].NewValue)

	out := FormatChangesAsDiff(changes[:1])
	assert.Equal(t, "  - storage.key = \"theme\"\n  + storage.key = \"color-mode\"\n", out)
}

func TestSettings_CoversEveryDocumentedKey(t *testing.T) {
	var keys []string
	for _, s := range Settings(DefaultConfig()) {
		keys = append(keys, s.Key)
	}

	var documented []string
	for _, k := range NewSchemaProvider().GetSchema() {
		documented = append(documented, k.Key)
	}
	assert.ElementsMatch(t, documented, keys)
}
