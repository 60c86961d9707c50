// Package config handles loading and managing guestmatch configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guestmatch/guestmatch/pkg/matchgraph"
)

// Config is the top-level configuration for guestmatch.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Layout   LayoutConfig   `yaml:"layout"`
	Events   []EventConfig  `yaml:"events"`
	S3       S3Config       `yaml:"s3"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Port       string `yaml:"port"`
	CORSOrigin string `yaml:"cors_origin"`
}

// LayoutConfig tunes graph construction. Zero values keep the defaults.
// Link distances are fixed and cannot be configured.
type LayoutConfig struct {
	ShortlistSize int `yaml:"shortlist_size"` // at most matchgraph.DefaultShortlistSize
}

// EventConfig names one event and where its roster snapshot lives.
type EventConfig struct {
	Slug   string `yaml:"slug"`
	Name   string `yaml:"name"`
	Source string `yaml:"source"` // "", path, file://, s3://, gs://, postgres://
}

// S3Config holds options for s3:// roster sources.
type S3Config struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// DatabaseConfig holds options for postgres:// roster sources.
type DatabaseConfig struct {
	URL         string `yaml:"url"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

// DefaultEventSlug is used when no events are configured.
const DefaultEventSlug = "default"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       "7700",
			CORSOrigin: "*",
		},
		Layout: LayoutConfig{
			ShortlistSize: matchgraph.DefaultShortlistSize,
		},
		Events: []EventConfig{
			{Slug: DefaultEventSlug, Name: "Bundled roster"},
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks that event slugs are present and unique.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Events))
	for i, ev := range c.Events {
		slug := strings.TrimSpace(ev.Slug)
		if slug == "" {
			return fmt.Errorf("events[%d]: slug is required", i)
		}
		if seen[slug] {
			return fmt.Errorf("events[%d]: duplicate slug %q", i, slug)
		}
		seen[slug] = true
	}
	if c.Layout.ShortlistSize < 0 || c.Layout.ShortlistSize > matchgraph.DefaultShortlistSize {
		return fmt.Errorf("layout.shortlist_size must be between 0 and %d, got %d",
			matchgraph.DefaultShortlistSize, c.Layout.ShortlistSize)
	}
	return nil
}

// MatchLayout converts the layout section into a matchgraph.Layout,
// falling back to defaults for anything unset.
func (c *Config) MatchLayout() matchgraph.Layout {
	l := matchgraph.Defaults()
	if c.Layout.ShortlistSize > 0 {
		l.ShortlistSize = c.Layout.ShortlistSize
	}
	return l
}

// FindConfigFile looks for .guestmatch/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".guestmatch", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
