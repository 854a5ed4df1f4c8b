package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Config struct {
	// Corpus is a file path or http(s) URL overriding the built-in corpus.
	Corpus string `yaml:"corpus,omitempty"`
	// Category is the category filter active at startup ("all" = no filter).
	Category string `yaml:"category,omitempty"`
	// ShowBadges toggles engagement badges in the prompt list.
	ShowBadges *bool `yaml:"show_badges,omitempty"`
}

// StartCategory returns the startup category filter, defaulting to "all".
func (c *Config) StartCategory() string {
	if c.Category == "" {
		return "all"
	}
	return c.Category
}

// BadgesEnabled reports whether engagement badges should be rendered.
func (c *Config) BadgesEnabled() bool {
	if c.ShowBadges == nil {
		return true
	}
	return *c.ShowBadges
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "promptdeck", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if c := cfg.Corpus; strings.Contains(c, "://") {
		u, err := url.Parse(c)
		if err != nil {
			return fmt.Errorf("corpus: invalid url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("corpus: url scheme must be http or https, got %q", u.Scheme)
		}
	}
	return nil
}
