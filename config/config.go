// Package config loads cardlot's optional configuration file. Loading
// never fails: a missing or unreadable file falls back to defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cardlot/log"
)

// ConfigFileName is the configuration file under the config directory.
const ConfigFileName = "config.json"

// Config holds tunables for the coordinator and the debug visualizer.
type Config struct {
	// DebounceMS is the resize debounce window in milliseconds.
	DebounceMS int `json:"debounce_ms"`
	// HistorySize bounds the retained layout results.
	HistorySize int `json:"history_size"`
	// MetricsWindow bounds the rolling per-run metrics.
	MetricsWindow int `json:"metrics_window"`
	// DemoCardCount is the card count the visualizer starts with.
	DemoCardCount int `json:"demo_card_count"`
}

// GetConfigDir returns the path to the application's configuration directory.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".cardlot"), nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DebounceMS:    150,
		HistorySize:   20,
		MetricsWindow: 100,
		DemoCardCount: 9,
	}
}

// LoadConfig loads the configuration, returning defaults if the file is
// missing or malformed.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.Errorf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("failed to read config file: %v", err)
		}
		return DefaultConfig()
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Warnf("failed to parse config file, using defaults: %v", err)
		return DefaultConfig()
	}
	return cfg.sanitized()
}

// SaveConfig writes the configuration file, creating the directory if
// needed.
func SaveConfig(cfg *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(configDir, ConfigFileName), data, 0644)
}

// sanitized clamps nonsensical values back to defaults.
func (c *Config) sanitized() *Config {
	def := DefaultConfig()
	if c.DebounceMS < 0 {
		c.DebounceMS = def.DebounceMS
	}
	if c.HistorySize < 1 {
		c.HistorySize = def.HistorySize
	}
	if c.MetricsWindow < 1 {
		c.MetricsWindow = def.MetricsWindow
	}
	if c.DemoCardCount < 1 {
		c.DemoCardCount = def.DemoCardCount
	}
	return c
}
