package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vantm/glazewm/internal/types"
)

const (
	DefaultConfigDir  = ".config/glazewm"
	DefaultConfigFile = "config.yaml"
)

// Config is the root configuration structure.
type Config struct {
	Gaps    Gaps    `yaml:"gaps" json:"gaps"`
	General General `yaml:"general" json:"general"`
}

// Gaps controls spacing around tiling containers. New split containers
// carry a copy of this at creation time.
type Gaps struct {
	Inner int `yaml:"inner" json:"inner"`
	Outer int `yaml:"outer" json:"outer"`
}

// General contains global window manager settings.
type General struct {
	DefaultTilingDirection types.TilingDirection `yaml:"defaultTilingDirection" json:"defaultTilingDirection"`
	CursorFollowsFocus     bool                  `yaml:"cursorFollowsFocus" json:"cursorFollowsFocus"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Gaps:    Gaps{Inner: 10, Outer: 10},
		General: General{DefaultTilingDirection: types.TilingHorizontal, CursorFollowsFocus: true},
	}
}

// LoadConfig loads configuration from the specified path or default location.
// If path is empty, uses ~/.config/glazewm/config.yaml and falls back to
// defaults when no file exists. Supports both .yaml and .json extensions.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		yamlPath := filepath.Join(home, DefaultConfigDir, "config.yaml")
		jsonPath := filepath.Join(home, DefaultConfigDir, "config.json")

		if _, err := os.Stat(yamlPath); err == nil {
			path = yamlPath
		} else if _, err := os.Stat(jsonPath); err == nil {
			path = jsonPath
		} else {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return LoadConfigFromBytes(data, ext)
}

// LoadConfigFromBytes loads configuration from raw bytes.
// format should be "yaml" or "json".
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	cfg := Default()

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetConfigPath returns the default config file path.
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Gaps.Inner < 0 {
		return fmt.Errorf("gaps.inner must be >= 0, got %d", c.Gaps.Inner)
	}
	if c.Gaps.Outer < 0 {
		return fmt.Errorf("gaps.outer must be >= 0, got %d", c.Gaps.Outer)
	}
	switch c.General.DefaultTilingDirection {
	case types.TilingHorizontal, types.TilingVertical:
	case "":
		c.General.DefaultTilingDirection = types.TilingHorizontal
	default:
		return fmt.Errorf("unknown tiling direction: %s", c.General.DefaultTilingDirection)
	}
	return nil
}
