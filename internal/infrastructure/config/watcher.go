package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/themesync/internal/logging"
)

// ChangeCallback receives a reloaded configuration and the keys that changed.
type ChangeCallback func(cfg *Config, changes []KeyChange)

// Watch reloads the config file whenever it is written. Callbacks only run
// when a value actually changed; editors often emit several events per save.
// An invalid edit is logged and the previous configuration stays in effect.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(m.handleFileEvent)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file event")

	m.mu.Lock()
	changes, err := m.reload()
	if err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("config reload rejected, keeping previous values")
		return
	}
	if len(changes) == 0 {
		m.mu.Unlock()
		return
	}

	snapshot := *m.config
	callbacks := append([]ChangeCallback(nil), m.callbacks...)
	m.mu.Unlock()

	log.Info().Strs("keys", ChangedKeys(changes)).Msg("configuration reloaded")
	for _, callback := range callbacks {
		cfg := snapshot
		callback(&cfg, changes)
	}
}

// OnConfigChange registers a callback for effective configuration changes.
func (m *Manager) OnConfigChange(callback ChangeCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads and validates the file and swaps it in, returning what
// changed. The caller holds m.mu.
func (m *Manager) reload() ([]KeyChange, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		return nil, err
	}

	next, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	if err := ensureDatabasePath(next); err != nil {
		return nil, err
	}
	normalizeConfig(next)
	if err := validateConfig(next); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	changes := Diff(m.config, next)
	m.config = next
	return changes, nil
}
