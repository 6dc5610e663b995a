package energy

import "fmt"

// Config defines the energy budget parameters loaded from configuration.
type Config struct {
	MaxEnergy            float64 `json:"max_energy" yaml:"max_energy"`
	CriticalRatio        float64 `json:"critical_ratio" yaml:"critical_ratio"`
	RecoveryRatio        float64 `json:"recovery_ratio" yaml:"recovery_ratio"`
	CostPerPoint         float64 `json:"cost_per_point" yaml:"cost_per_point"`
	RestoreRatePerMinute float64 `json:"restore_rate_per_minute" yaml:"restore_rate_per_minute"`
}

// SetDefaults fills zero fields with sensible defaults.
func (c *Config) SetDefaults() {
	if c.MaxEnergy == 0 {
		c.MaxEnergy = 50
	}
	if c.CriticalRatio == 0 {
		c.CriticalRatio = 0.3
	}
	if c.RecoveryRatio == 0 {
		c.RecoveryRatio = 0.6
	}
	if c.CostPerPoint == 0 {
		c.CostPerPoint = 0.5
	}
	if c.RestoreRatePerMinute == 0 {
		c.RestoreRatePerMinute = 1
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.MaxEnergy <= 0 {
		return fmt.Errorf("max_energy must be positive")
	}
	if c.CriticalRatio < 0 || c.CriticalRatio >= 1 {
		return fmt.Errorf("critical_ratio must be in [0,1)")
	}
	if c.RecoveryRatio <= c.CriticalRatio || c.RecoveryRatio > 1 {
		return fmt.Errorf("recovery_ratio must be in (critical_ratio,1]")
	}
	if c.CostPerPoint < 0 {
		return fmt.Errorf("cost_per_point must not be negative")
	}
	if c.RestoreRatePerMinute <= 0 {
		return fmt.Errorf("restore_rate_per_minute must be positive")
	}
	return nil
}
