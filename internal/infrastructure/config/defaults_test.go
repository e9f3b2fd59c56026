package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themesync/internal/domain/entity"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))

	assert.Equal(t, "theme", cfg.Storage.Key)
	assert.Equal(t, "data-theme", cfg.Document.Attribute)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.System.Override)
}

func TestDefaultConfig_MatchesEntityLabels(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, entity.DefaultToggleLabels(), cfg.ToggleLabels())

	sel := cfg.ToggleSelector()
	assert.Equal(t, "theme-toggle", sel.Class)
	assert.Equal(t, "theme-toggle", sel.ID)
}
