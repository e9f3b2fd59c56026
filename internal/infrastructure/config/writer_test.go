package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_SectionsInFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(content)
	last := -1
	for _, section := range []string{"[storage]", "[database]", "[document]", "[toggles]", "[system]", "[logging]"} {
		idx := strings.Index(text, section)
		require.GreaterOrEqual(t, idx, 0, "missing %s", section)
		assert.Greater(t, idx, last, "%s out of order", section)
		last = idx
	}
}

func TestEncodeConfig_DurationsAsText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.System.PollInterval = 90 * time.Second
	cfg.System.Override = "dark"

	data, err := EncodeConfig(cfg)
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, "1m30s", decoded["system"]["poll_interval"])
	assert.Equal(t, "dark", decoded["system"]["override"])
	assert.Equal(t, "theme", decoded["storage"]["key"])
	assert.Equal(t, "data-theme", decoded["document"]["attribute"])
}

func TestEncodeConfig_Nil(t *testing.T) {
	_, err := EncodeConfig(nil)
	require.Error(t, err)
}

func TestWriteConfigOrdered_ReloadsThroughManager(t *testing.T) {
	isolate(t)

	custom := DefaultConfig()
	custom.Toggles.Hint = "Switch theme"
	custom.System.PollInterval = 30 * time.Second
	path, err := GetConfigFile()
	require.NoError(t, err)
	require.NoError(t, WriteConfigOrdered(custom, path))

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	got := m.Get()
	assert.Equal(t, "Switch theme", got.Toggles.Hint)
	assert.Equal(t, 30*time.Second, got.System.PollInterval)
}
