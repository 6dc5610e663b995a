package slot

import "fmt"

// Config defines allocation settings.
type Config struct {
	// FocusThreshold is the difficulty at which a task demands a peak
	// focus window.
	FocusThreshold int `json:"focus_threshold" yaml:"focus_threshold"`
}

// SetDefaults fills zero fields with sensible defaults.
func (c *Config) SetDefaults() {
	if c.FocusThreshold == 0 {
		c.FocusThreshold = 7
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.FocusThreshold < 0 {
		return fmt.Errorf("focus_threshold must not be negative")
	}
	return nil
}
