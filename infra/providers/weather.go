// Package providers implements the external weather and travel collaborators
// consumed by the duration adjuster. Simulated providers stand in for real
// data sources; fixed providers make tests deterministic.
package providers

import (
	"math/rand"
	"time"

	"github.com/kilianp07/dayplan/core/model"
)

// Condition is a simulated weather state.
type Condition string

const (
	ConditionClear Condition = "Clear"
	ConditionRain  Condition = "Rain"
	ConditionWindy Condition = "Windy"
)

// rainFactor slows outdoor tasks down when it rains.
const rainFactor = 1.5

// SimulatedWeather maps dates to conditions and derives a duration factor.
// Unknown dates draw a condition from the seeded generator once and keep it.
type SimulatedWeather struct {
	conditions map[string]Condition
	rng        *rand.Rand
}

// NewSimulatedWeather builds a provider with the given per-date conditions.
// The seed controls conditions for dates missing from the table.
func NewSimulatedWeather(conditions map[string]Condition, seed int64) *SimulatedWeather {
	if conditions == nil {
		conditions = make(map[string]Condition)
	}
	return &SimulatedWeather{conditions: conditions, rng: rand.New(rand.NewSource(seed))}
}

// ConditionFor returns the condition on the given date, sampling one when the
// table has no entry.
func (w *SimulatedWeather) ConditionFor(date time.Time) Condition {
	key := date.Format("2006-01-02")
	if c, ok := w.conditions[key]; ok {
		return c
	}
	all := []Condition{ConditionClear, ConditionRain, ConditionWindy}
	c := all[w.rng.Intn(len(all))]
	w.conditions[key] = c
	return c
}

// Factor implements duration.WeatherProvider. Rain slows outdoor tasks.
func (w *SimulatedWeather) Factor(task model.Task, date time.Time) float64 {
	if task.Location != model.LocationOutdoor {
		return 1
	}
	if w.ConditionFor(date) == ConditionRain {
		return rainFactor
	}
	return 1
}

// FixedWeather always returns the same factor. Test double.
type FixedWeather struct {
	Value float64
}

// Factor implements duration.WeatherProvider.
func (f FixedWeather) Factor(model.Task, time.Time) float64 { return f.Value }
