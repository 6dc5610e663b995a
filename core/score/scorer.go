// Package score ranks ready flexible tasks for the optimizer.
package score

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/dayplan/core/energy"
	"github.com/kilianp07/dayplan/core/model"
)

// Context carries the run state a score depends on.
type Context struct {
	Energy energy.State
	Peaks  []model.PeakWindow
	// Cursor is the earliest point a flexible task could currently start.
	// Peak overlap is estimated from a placement at the cursor.
	Cursor time.Time
	// Dependents returns the number of in-set tasks unblocked by placing
	// the given task id.
	Dependents func(id string) int
}

// Scorer computes weighted priority scores. Higher scores are scheduled
// first; ties are broken by lowest task id in the queue, never here.
type Scorer struct {
	weights Weights
}

// NewScorer normalizes the configured weights so scores stay comparable
// across weight tunings.
func NewScorer(w Weights) *Scorer {
	terms := []float64{w.Difficulty, w.Peak, w.FanOut, w.Deadline}
	if sum := floats.Sum(terms); sum > 0 {
		floats.Scale(1/sum, terms)
	}
	return &Scorer{weights: Weights{
		Difficulty: terms[0],
		Peak:       terms[1],
		FanOut:     terms[2],
		Deadline:   terms[3],
	}}
}

// Score returns the priority of a ready task given the effective duration in
// minutes. Each term is normalized to [0,1] before weighting.
func (s *Scorer) Score(task model.Task, effectiveMinutes int, ctx Context) float64 {
	diff := float64(task.Difficulty) / model.MaxDifficulty

	// High-difficulty work is worth more when the budget can still carry it.
	energyRatio := 0.0
	if ctx.Energy.Max > 0 {
		energyRatio = ctx.Energy.Current / ctx.Energy.Max
	}
	difficultyTerm := diff * energyRatio

	peakTerm := 0.0
	if diff > 0 {
		peakTerm = diff * s.peakOverlap(ctx, effectiveMinutes)
	}

	fanOutTerm := 0.0
	if ctx.Dependents != nil {
		n := float64(ctx.Dependents(task.ID))
		fanOutTerm = n / (n + 1)
	}

	deadlineTerm := 0.0
	if task.HasDeadline() {
		hours := task.Deadline.Sub(ctx.Cursor).Hours()
		if hours <= 0 {
			deadlineTerm = 1
		} else {
			deadlineTerm = 1 / (1 + hours)
		}
	}

	return difficultyTerm*s.weights.Difficulty +
		peakTerm*s.weights.Peak +
		fanOutTerm*s.weights.FanOut +
		deadlineTerm*s.weights.Deadline
}

// peakOverlap returns the fraction of a placement at the cursor that falls
// inside peak focus hours.
func (s *Scorer) peakOverlap(ctx Context, effectiveMinutes int) float64 {
	if effectiveMinutes <= 0 || ctx.Cursor.IsZero() {
		return 0
	}
	end := ctx.Cursor.Add(time.Duration(effectiveMinutes) * time.Minute)
	var overlap time.Duration
	for _, p := range ctx.Peaks {
		if !p.Overlaps(ctx.Cursor, end) {
			continue
		}
		from := ctx.Cursor
		if p.Start.After(from) {
			from = p.Start
		}
		to := end
		if p.End.Before(to) {
			to = p.End
		}
		overlap += to.Sub(from)
	}
	return float64(overlap) / float64(end.Sub(ctx.Cursor))
}
