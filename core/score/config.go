package score

import "fmt"

// Weights tunes the relative influence of each scoring term. Values are
// normalized at construction, only their ratios matter.
type Weights struct {
	Difficulty float64 `json:"difficulty" yaml:"difficulty"`
	Peak       float64 `json:"peak" yaml:"peak"`
	FanOut     float64 `json:"fan_out" yaml:"fan_out"`
	Deadline   float64 `json:"deadline" yaml:"deadline"`
}

// SetDefaults fills an all-zero weight set with the default tuning.
func (w *Weights) SetDefaults() {
	if w.Difficulty == 0 && w.Peak == 0 && w.FanOut == 0 && w.Deadline == 0 {
		w.Difficulty = 0.4
		w.Peak = 0.3
		w.FanOut = 0.2
		w.Deadline = 0.1
	}
}

// Validate rejects negative or empty weight sets.
func (w Weights) Validate() error {
	if w.Difficulty < 0 || w.Peak < 0 || w.FanOut < 0 || w.Deadline < 0 {
		return fmt.Errorf("weights must not be negative")
	}
	if w.Difficulty+w.Peak+w.FanOut+w.Deadline == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}
