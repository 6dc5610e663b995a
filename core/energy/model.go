// Package energy simulates the depletable focus budget gating task placement.
package energy

import (
	"math"

	"github.com/kilianp07/dayplan/core/model"
)

// Decision is the outcome of evaluating a task against the current budget.
type Decision int

const (
	// Allow means the task can be committed as-is.
	Allow Decision = iota
	// RequireBreak means a rest must be inserted before the task.
	RequireBreak
	// Defer means even a full recharge cannot support the task.
	Defer
)

// State tracks the energy budget of one optimization run.
type State struct {
	Current  float64
	Max      float64
	Critical float64
	Recovery float64
}

// Model evaluates and mutates the energy budget. One instance per run.
type Model struct {
	cfg   Config
	state State
}

// NewModel starts a run at full energy.
func NewModel(cfg Config) *Model {
	return &Model{
		cfg: cfg,
		state: State{
			Current:  cfg.MaxEnergy,
			Max:      cfg.MaxEnergy,
			Critical: cfg.MaxEnergy * cfg.CriticalRatio,
			Recovery: cfg.MaxEnergy * cfg.RecoveryRatio,
		},
	}
}

// State returns a snapshot of the current budget.
func (m *Model) State() State { return m.state }

// Cost returns the energy consumed by a task of the given effective duration.
// Cost scales with difficulty and duration in hours.
func (m *Model) Cost(task model.Task, effectiveMinutes int) float64 {
	if task.IsBreak() {
		return 0
	}
	return float64(task.Difficulty) * m.cfg.CostPerPoint * float64(effectiveMinutes) / 60
}

// Evaluate decides whether the task can be committed at the current level.
// Breaks are always allowed. A task whose cost would push the level below the
// critical threshold requires a rest first; if not even a full recharge could
// carry it, the task is deferred.
func (m *Model) Evaluate(task model.Task, effectiveMinutes int) Decision {
	if task.IsBreak() {
		return Allow
	}
	cost := m.Cost(task, effectiveMinutes)
	if m.state.Current-cost >= m.state.Critical {
		return Allow
	}
	if m.state.Max-cost >= m.state.Critical {
		return RequireBreak
	}
	return Defer
}

// Consume deducts the task's cost. Callers must gate commits through Evaluate
// so the level never goes negative; the floor is kept as a hard stop.
func (m *Model) Consume(task model.Task, effectiveMinutes int) {
	m.state.Current -= m.Cost(task, effectiveMinutes)
	if m.state.Current < 0 {
		m.state.Current = 0
	}
}

// Restore raises the level by amount, capped at the maximum.
func (m *Model) Restore(amount float64) {
	m.state.Current += amount
	if m.state.Current > m.state.Max {
		m.state.Current = m.state.Max
	}
}

// RestTarget returns the level a rest break must reach before the given task
// can pass Evaluate: at least the recovery threshold, and enough to keep the
// post-task level above critical, capped at the maximum.
func (m *Model) RestTarget(task model.Task, effectiveMinutes int) float64 {
	target := m.state.Recovery
	if need := m.state.Critical + m.Cost(task, effectiveMinutes); need > target {
		target = need
	}
	if target > m.state.Max {
		target = m.state.Max
	}
	return target
}

// RestMinutes sizes the rest break needed to lift the level to target.
func (m *Model) RestMinutes(target float64) int {
	if target <= m.state.Current {
		return 0
	}
	return int(math.Ceil((target - m.state.Current) / m.cfg.RestoreRatePerMinute))
}

// RestoreRate exposes the configured recovery speed in energy per minute.
func (m *Model) RestoreRate() float64 { return m.cfg.RestoreRatePerMinute }
