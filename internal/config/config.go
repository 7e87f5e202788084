// Package config loads the erdreq configuration: diagram service
// settings from the environment (with optional .env support) and the
// source catalog from a TOML file. The result is an explicit Config
// value handed to the rest of the program; nothing reads the
// environment after load.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/driftline/erdreq/internal/domain"
)

const defaultBaseURL = "https://cloud.driftline.io"

// Source is the TOML shape of a catalog entry.
type Source struct {
	URL          string `toml:"url"`
	Name         string `toml:"name"`
	DefinitionID string `toml:"definition_id"`
}

// File is the TOML shape of the config file.
type File struct {
	BaseURL string   `toml:"base_url,omitempty"`
	APIKey  string   `toml:"api_key,omitempty"`
	Sources []Source `toml:"sources"`
}

// Config is the resolved runtime configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Sources []domain.SourceInfo
}

// DefaultPath returns the default config file path.
var DefaultPath = func() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "erdreq", "config.toml")
}

// Load reads the config file at path (DefaultPath() if empty) and
// resolves the service settings. Environment variables ERD_API_URL and
// ERD_API_KEY override file values; a .env file in the working directory
// is honored if present. A missing config file is not an error, the
// catalog is just empty.
func Load(path string) (*Config, error) {
	// Optional; ignore absence.
	_ = godotenv.Load()

	if path == "" {
		path = DefaultPath()
	}

	var file File
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	cfg := &Config{
		BaseURL: firstNonEmpty(os.Getenv("ERD_API_URL"), file.BaseURL, defaultBaseURL),
		APIKey:  firstNonEmpty(os.Getenv("ERD_API_KEY"), file.APIKey),
	}

	for _, s := range file.Sources {
		if s.Name == "" || s.DefinitionID == "" {
			return nil, fmt.Errorf("config %s: every source needs a name and definition_id", path)
		}
		cfg.Sources = append(cfg.Sources, domain.SourceInfo{
			URL:          s.URL,
			Name:         s.Name,
			DefinitionID: s.DefinitionID,
		})
	}

	return cfg, nil
}

// Validate checks that the settings required to reach the diagram
// service are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("no API key: set ERD_API_KEY or api_key in the config file")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("no base URL: set ERD_API_URL or base_url in the config file")
	}
	return nil
}

// SourceByName returns the catalog entry with the given name.
func (c *Config) SourceByName(name string) (domain.SourceInfo, bool) {
	for _, s := range c.Sources {
		if s.Name == name {
			return s, true
		}
	}
	return domain.SourceInfo{}, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
