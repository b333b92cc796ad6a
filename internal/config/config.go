package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults for the history section.
const (
	DefaultMaxLen          = 1000
	DefaultHistoryFileName = "taixiu_history.json"
	DefaultExportName      = "export_taixiu.json"
	DefaultShowLimit       = 50
	maxShowLimit           = 1000
)

// Config represents the taixiu configuration.
type Config struct {
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
}

// HistoryConfig holds history storage and display settings.
type HistoryConfig struct {
	MaxLen     int    `yaml:"max_len"`     // Retained outcomes (newest kept)
	Backend    string `yaml:"backend"`     // json or sqlite
	FileName   string `yaml:"file_name"`   // JSON history file name inside the data dir
	ExportName string `yaml:"export_name"` // Default export file name
	ShowLimit  int    `yaml:"show_limit"`  // Outcomes shown by `history` and the board
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			MaxLen:     DefaultMaxLen,
			Backend:    "json",
			FileName:   DefaultHistoryFileName,
			ExportName: DefaultExportName,
			ShowLimit:  DefaultShowLimit,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	paths := DefaultPaths()
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile loads configuration from the specified file.
// If the file doesn't exist, returns default configuration.
// Environment variable overrides are applied after file loading.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the default path.
func (c *Config) Save() error {
	paths := DefaultPaths()
	return c.SaveToFile(paths.ConfigFile())
}

// SaveToFile saves the configuration to the specified file.
func (c *Config) SaveToFile(path string) error {
	// Derive directory from path and ensure it exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get retrieves a configuration value by dot-separated key.
// For example: "history.max_len" or "log.level"
func (c *Config) Get(key string) (string, error) {
	section, field, err := splitKey(key)
	if err != nil {
		return "", err
	}

	switch section {
	case "history":
		return c.getHistoryField(field)
	case "log":
		return c.getLogField(field)
	default:
		return "", fmt.Errorf("unknown section: %s", section)
	}
}

// Set sets a configuration value by dot-separated key.
func (c *Config) Set(key, value string) error {
	section, field, err := splitKey(key)
	if err != nil {
		return err
	}

	switch section {
	case "history":
		return c.setHistoryField(field, value)
	case "log":
		return c.setLogField(field, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

func splitKey(key string) (string, string, error) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return "", "", errors.New("key must be in format 'section.key'")
	}
	return parts[0], parts[1], nil
}

func (c *Config) getHistoryField(field string) (string, error) {
	switch field {
	case "max_len":
		return strconv.Itoa(c.History.MaxLen), nil
	case "backend":
		return c.History.Backend, nil
	case "file_name":
		return c.History.FileName, nil
	case "export_name":
		return c.History.ExportName, nil
	case "show_limit":
		return strconv.Itoa(c.History.ShowLimit), nil
	default:
		return "", fmt.Errorf("unknown field: history.%s", field)
	}
}

func (c *Config) setHistoryField(field, value string) error {
	switch field {
	case "max_len":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for max_len: %w", err)
		}
		if v < 1 {
			return fmt.Errorf("invalid max_len: must be at least 1")
		}
		c.History.MaxLen = v
	case "backend":
		if !isValidBackend(value) {
			return fmt.Errorf("invalid backend: %s (must be json or sqlite)", value)
		}
		c.History.Backend = value
	case "file_name":
		if err := validateFileName(value); err != nil {
			return fmt.Errorf("invalid file_name: %w", err)
		}
		c.History.FileName = value
	case "export_name":
		if err := validateFileName(value); err != nil {
			return fmt.Errorf("invalid export_name: %w", err)
		}
		c.History.ExportName = value
	case "show_limit":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for show_limit: %w", err)
		}
		c.History.ShowLimit = clampShowLimit(v)
	default:
		return fmt.Errorf("unknown field: history.%s", field)
	}
	return nil
}

func (c *Config) getLogField(field string) (string, error) {
	switch field {
	case "level":
		return c.Log.Level, nil
	case "format":
		return c.Log.Format, nil
	default:
		return "", fmt.Errorf("unknown field: log.%s", field)
	}
}

func (c *Config) setLogField(field, value string) error {
	switch field {
	case "level":
		if !isValidLogLevel(value) {
			return fmt.Errorf("invalid level: %s (must be debug, info, warn, or error)", value)
		}
		c.Log.Level = value
	case "format":
		if !isValidLogFormat(value) {
			return fmt.Errorf("invalid format: %s (must be json or text)", value)
		}
		c.Log.Format = value
	default:
		return fmt.Errorf("unknown field: log.%s", field)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.History.MaxLen < 1 {
		return errors.New("history.max_len must be >= 1")
	}

	if !isValidBackend(c.History.Backend) {
		return fmt.Errorf("history.backend must be json or sqlite (got: %s)", c.History.Backend)
	}

	if err := validateFileName(c.History.FileName); err != nil {
		return fmt.Errorf("history.file_name: %w", err)
	}

	if err := validateFileName(c.History.ExportName); err != nil {
		return fmt.Errorf("history.export_name: %w", err)
	}

	if c.History.FileName == c.History.ExportName {
		return errors.New("history.export_name must differ from history.file_name")
	}

	c.History.ShowLimit = clampShowLimit(c.History.ShowLimit)

	if !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error (got: %s)", c.Log.Level)
	}

	if !isValidLogFormat(c.Log.Format) {
		return fmt.Errorf("log.format must be json or text (got: %s)", c.Log.Format)
	}

	return nil
}

func clampShowLimit(v int) int {
	if v < 1 {
		return 1
	}
	if v > maxShowLimit {
		return maxShowLimit
	}
	return v
}

func validateFileName(name string) error {
	if name == "" {
		return errors.New("must not be empty")
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("%q must be a plain file name", name)
	}
	return nil
}

func isValidBackend(backend string) bool {
	switch backend {
	case "json", "sqlite":
		return true
	default:
		return false
	}
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func isValidLogFormat(format string) bool {
	switch format {
	case "json", "text":
		return true
	default:
		return false
	}
}

// ApplyEnvOverrides applies environment variable overrides to the config.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("TAIXIU_BACKEND"); v != "" {
		if isValidBackend(v) {
			c.History.Backend = v
		}
	}
	if v := os.Getenv("TAIXIU_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Log.Level = "debug"
		}
	}
	if v := os.Getenv("TAIXIU_LOG_LEVEL"); v != "" {
		if isValidLogLevel(v) {
			c.Log.Level = v
		}
	}
}

// ListKeys returns user-facing configuration keys.
func ListKeys() []string {
	return []string{
		"history.max_len",
		"history.backend",
		"history.file_name",
		"history.export_name",
		"history.show_limit",
		"log.level",
		"log.format",
	}
}
