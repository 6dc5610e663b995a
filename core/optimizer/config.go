package optimizer

import (
	"fmt"

	"github.com/kilianp07/dayplan/core/breaks"
	"github.com/kilianp07/dayplan/core/energy"
	"github.com/kilianp07/dayplan/core/score"
	"github.com/kilianp07/dayplan/core/slot"
)

// Config aggregates the engine settings loaded from configuration.
type Config struct {
	Energy  energy.Config `json:"energy" yaml:"energy"`
	Weights score.Weights `json:"weights" yaml:"weights"`
	Slot    slot.Config   `json:"slot" yaml:"slot"`
	Breaks  breaks.Config `json:"breaks" yaml:"breaks"`
	// Resources lists the resources available today. An empty list means
	// no resource gating.
	Resources []string `json:"resources" yaml:"resources"`
}

// SetDefaults fills zero fields of every sub-config.
func (c *Config) SetDefaults() {
	c.Energy.SetDefaults()
	c.Weights.SetDefaults()
	c.Slot.SetDefaults()
	c.Breaks.SetDefaults()
}

// Validate checks every sub-config.
func (c Config) Validate() error {
	if err := c.Energy.Validate(); err != nil {
		return fmt.Errorf("energy: %w", err)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	if err := c.Slot.Validate(); err != nil {
		return fmt.Errorf("slot: %w", err)
	}
	if err := c.Breaks.Validate(); err != nil {
		return fmt.Errorf("breaks: %w", err)
	}
	return nil
}
