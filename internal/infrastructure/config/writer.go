package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// fileSystemConfig is SystemConfig as written to disk: durations as text.
type fileSystemConfig struct {
	PollInterval string `toml:"poll_interval"`
	Override     string `toml:"override"`
}

// fileConfig mirrors Config in the layout of config.toml.
type fileConfig struct {
	Storage  StorageConfig    `toml:"storage"`
	Database DatabaseConfig   `toml:"database"`
	Document DocumentConfig   `toml:"document"`
	Toggles  TogglesConfig    `toml:"toggles"`
	System   fileSystemConfig `toml:"system"`
	Logging  LoggingConfig    `toml:"logging"`
}

// EncodeConfig renders cfg as TOML. Sections and keys follow the struct
// definition order, so the output is stable across runs.
func EncodeConfig(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	doc := fileConfig{
		Storage:  cfg.Storage,
		Database: cfg.Database,
		Document: cfg.Document,
		Toggles:  cfg.Toggles,
		System: fileSystemConfig{
			PollInterval: cfg.System.PollInterval.String(),
			Override:     cfg.System.Override,
		},
		Logging: cfg.Logging,
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfigOrdered writes the configuration to path, creating parent
// directories as needed.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
