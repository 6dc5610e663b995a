// Package duration computes effective task durations from base durations and
// external weather/travel modifiers.
package duration

import (
	"math"
	"time"

	"github.com/kilianp07/dayplan/core/model"
)

// WeatherProvider returns a duration multiplier for outdoor tasks on a date.
// A factor of 1 means no adjustment.
type WeatherProvider interface {
	Factor(task model.Task, date time.Time) float64
}

// TravelProvider returns extra minutes to add on top of a task's adjusted
// duration, typically for travel-category tasks.
type TravelProvider interface {
	Buffer(task model.Task) int
}

// Adjuster derives effective durations and caches them per task for the whole
// run. Caching keeps durations stable even when providers are stochastic.
type Adjuster struct {
	weather WeatherProvider
	travel  TravelProvider
	cache   map[string]int
}

// NewAdjuster wires the external providers.
func NewAdjuster(weather WeatherProvider, travel TravelProvider) *Adjuster {
	return &Adjuster{weather: weather, travel: travel, cache: make(map[string]int)}
}

// Adjust returns the task's effective duration in minutes. The first call per
// task id samples the providers; later calls return the cached value.
func (a *Adjuster) Adjust(task model.Task, date time.Time) int {
	if d, ok := a.cache[task.ID]; ok {
		return d
	}
	d := a.compute(task, date)
	a.cache[task.ID] = d
	return d
}

func (a *Adjuster) compute(task model.Task, date time.Time) int {
	eff := float64(task.BaseDuration)
	if task.Location == model.LocationOutdoor && a.weather != nil {
		if factor := a.weather.Factor(task, date); factor > 0 {
			eff *= factor
		}
	}
	minutes := int(math.Round(eff))
	if a.travel != nil {
		if buffer := a.travel.Buffer(task); buffer > 0 {
			minutes += buffer
		}
	}
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
