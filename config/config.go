// Package config loads the planner configuration from YAML or JSON files
// with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/dayplan/core/optimizer"
)

// Config is the root configuration of the planner.
type Config struct {
	Window    WindowConfig     `json:"window"`
	Peaks     []PeakConfig     `json:"peaks"`
	Optimizer optimizer.Config `json:"optimizer"`
	Providers ProvidersConfig  `json:"providers"`
	Metrics   MetricsConfig    `json:"metrics"`
}

// Load reads the configuration file, applies environment overrides with the
// DAYPLAN_ prefix, fills defaults, and validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("DAYPLAN_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "dayplan_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills zero fields of every section.
func (c *Config) SetDefaults() {
	c.Window.SetDefaults()
	if len(c.Peaks) == 0 {
		c.Peaks = []PeakConfig{{StartHour: 9, EndHour: 13}}
	}
	c.Optimizer.SetDefaults()
	c.Providers.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	for _, p := range c.Peaks {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("peaks: %w", err)
		}
	}
	if err := c.Optimizer.Validate(); err != nil {
		return fmt.Errorf("optimizer: %w", err)
	}
	if err := c.Providers.Validate(); err != nil {
		return fmt.Errorf("providers: %w", err)
	}
	return nil
}
