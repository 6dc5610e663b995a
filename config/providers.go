package config

import (
	"fmt"

	"github.com/kilianp07/dayplan/infra/providers"
)

// ProvidersConfig tunes the simulated weather and travel collaborators.
type ProvidersConfig struct {
	// Seed makes simulated providers reproducible.
	Seed int64 `json:"seed"`
	// Weather maps ISO dates to a fixed condition (Clear, Rain, Windy).
	Weather map[string]string `json:"weather"`
}

// SetDefaults picks a fixed seed so repeated runs stay comparable.
func (c *ProvidersConfig) SetDefaults() {
	if c.Seed == 0 {
		c.Seed = 1
	}
}

// Validate rejects unknown weather conditions.
func (c ProvidersConfig) Validate() error {
	for date, cond := range c.Weather {
		switch providers.Condition(cond) {
		case providers.ConditionClear, providers.ConditionRain, providers.ConditionWindy:
		default:
			return fmt.Errorf("unknown weather condition %q for %s", cond, date)
		}
	}
	return nil
}

// WeatherProvider builds the simulated weather source.
func (c ProvidersConfig) WeatherProvider() *providers.SimulatedWeather {
	conditions := make(map[string]providers.Condition, len(c.Weather))
	for date, cond := range c.Weather {
		conditions[date] = providers.Condition(cond)
	}
	return providers.NewSimulatedWeather(conditions, c.Seed)
}

// TravelProvider builds the simulated travel source.
func (c ProvidersConfig) TravelProvider() *providers.SimulatedTravel {
	return providers.NewSimulatedTravel(c.Seed)
}
