package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/themesync/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []ChangeCallback
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// THEMESYNC_STORAGE_KEY, THEMESYNC_SYSTEM_OVERRIDE, ...
	v.SetEnvPrefix("THEMESYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Same names as the ones logging.NewFromEnv reads before config is loaded.
	if err := v.BindEnv("logging.level", "THEMESYNC_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMESYNC_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "THEMESYNC_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind THEMESYNC_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]ChangeCallback, 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Storage.Key = strings.TrimSpace(config.Storage.Key)
	config.Document.Attribute = strings.ToLower(strings.TrimSpace(config.Document.Attribute))
	config.Toggles.Class = strings.TrimSpace(config.Toggles.Class)
	config.Toggles.ID = strings.TrimSpace(config.Toggles.ID)
	config.System.Override = strings.ToLower(strings.TrimSpace(config.System.Override))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Database.Path != "" {
		config.Database.Path = os.ExpandEnv(config.Database.Path)
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to the XDG config file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// stdout is reserved for command output (render prints HTML).
	log := logging.NewFromEnv()
	log.Info().Str("path", configFile).Msg("created default configuration file")

	if err := WriteSchemaFile(filepath.Join(filepath.Dir(configFile), schemaName)); err != nil {
		log.Warn().Err(err).Msg("failed to write config schema")
	}

	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), the empty default
	// only registers the key for env lookups.
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("storage.key", defaults.Storage.Key)
	m.viper.SetDefault("document.attribute", defaults.Document.Attribute)
	m.setToggleDefaults(defaults)
	m.viper.SetDefault("system.poll_interval", defaults.System.PollInterval.String())
	m.viper.SetDefault("system.override", defaults.System.Override)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setToggleDefaults(defaults *Config) {
	m.viper.SetDefault("toggles.class", defaults.Toggles.Class)
	m.viper.SetDefault("toggles.id", defaults.Toggles.ID)
	m.viper.SetDefault("toggles.dark_glyph", defaults.Toggles.DarkGlyph)
	m.viper.SetDefault("toggles.light_glyph", defaults.Toggles.LightGlyph)
	m.viper.SetDefault("toggles.dark_label", defaults.Toggles.DarkLabel)
	m.viper.SetDefault("toggles.light_label", defaults.Toggles.LightLabel)
	m.viper.SetDefault("toggles.hint", defaults.Toggles.Hint)
}
