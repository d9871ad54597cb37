// ABOUTME: Client configuration for the tempmail CLI
// ABOUTME: YAML file under XDG config home with environment overrides

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvAPIURL = "TEMPMAIL_API_URL"
	EnvToken  = "TEMPMAIL_TOKEN"
)

// Config holds client settings.
type Config struct {
	// APIURL is the root of the tempmail API (e.g. http://localhost:8080)
	APIURL string `yaml:"api_url"`

	// Token is sent as a bearer credential when set
	Token string `yaml:"token,omitempty"`

	// Timeout bounds each API request (default: 15s)
	Timeout time.Duration `yaml:"timeout"`

	// DefaultDestination preselects a destination mailbox in create forms
	DefaultDestination string `yaml:"default_destination,omitempty"`
}

// Keys lists the settable keys in display order.
var Keys = []string{"api_url", "token", "timeout", "default_destination"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIURL:  "http://localhost:8080",
		Timeout: 15 * time.Second,
	}
}

// Dir returns the configuration directory path.
func Dir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tempmail")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file, falling back to defaults when it does not
// exist, then applies environment overrides.
func Load() (*Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	return cfg, nil
}

// LoadFile reads only the config file over the defaults.
func LoadFile() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", Path(), err)
		}
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return cfg, nil
}

// Save writes cfg to disk.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(Path(), data, 0600)
}

// Exists returns true if a config file exists.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Set assigns one key from its string form.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "api_url":
		c.APIURL = strings.TrimSuffix(value, "/")
	case "token":
		c.Token = value
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		c.Timeout = d
	case "default_destination":
		c.DefaultDestination = value
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get returns one key in string form. The token is masked.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api_url":
		return c.APIURL, nil
	case "token":
		return strings.Repeat("*", len(c.Token)), nil
	case "timeout":
		return c.Timeout.String(), nil
	case "default_destination":
		return c.DefaultDestination, nil
	}
	return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
}
