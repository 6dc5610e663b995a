package providers

import (
	"math/rand"

	"github.com/kilianp07/dayplan/core/model"
)

// Simulated travel buffer bounds in minutes.
const (
	minTravelMinutes = 20
	maxTravelMinutes = 50
)

// SimulatedTravel stands in for a live traffic API. Travel-category tasks get
// a buffer drawn from the seeded generator; other tasks get none.
type SimulatedTravel struct {
	rng *rand.Rand
}

// NewSimulatedTravel builds a provider with a deterministic seed.
func NewSimulatedTravel(seed int64) *SimulatedTravel {
	return &SimulatedTravel{rng: rand.New(rand.NewSource(seed))}
}

// Buffer implements duration.TravelProvider.
func (t *SimulatedTravel) Buffer(task model.Task) int {
	if task.Category != model.CategoryTravel {
		return 0
	}
	return minTravelMinutes + t.rng.Intn(maxTravelMinutes-minTravelMinutes+1)
}

// FixedTravel always returns the same buffer for travel tasks. Test double.
type FixedTravel struct {
	Minutes int
}

// Buffer implements duration.TravelProvider.
func (f FixedTravel) Buffer(task model.Task) int {
	if task.Category != model.CategoryTravel {
		return 0
	}
	return f.Minutes
}
