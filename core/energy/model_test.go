package energy

import (
	"testing"

	"github.com/kilianp07/dayplan/core/model"
)

func defaultConfig() Config {
	cfg := Config{}
	cfg.SetDefaults()
	return cfg
}

func TestEvaluateAllow(t *testing.T) {
	m := NewModel(defaultConfig())
	task := model.Task{ID: "a", Kind: model.KindFlexible, BaseDuration: 60, Difficulty: 5, Category: model.CategoryWork}
	if d := m.Evaluate(task, 60); d != Allow {
		t.Fatalf("expected Allow at full energy, got %v", d)
	}
}

func TestEvaluateRequireBreakAtCritical(t *testing.T) {
	m := NewModel(defaultConfig())
	// Drain to exactly the critical threshold.
	m.state.Current = m.state.Critical
	task := model.Task{ID: "a", Kind: model.KindFlexible, BaseDuration: 60, Difficulty: 9, Category: model.CategoryWork}
	if d := m.Evaluate(task, 60); d != RequireBreak {
		t.Fatalf("expected RequireBreak at critical level, got %v", d)
	}
}

func TestEvaluateDefer(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxEnergy = 5
	cfg.CostPerPoint = 1
	m := NewModel(cfg)
	// Cost 10*1*60/60 = 10 exceeds what a full recharge can carry.
	task := model.Task{ID: "a", Kind: model.KindFlexible, BaseDuration: 60, Difficulty: 10, Category: model.CategoryWork}
	if d := m.Evaluate(task, 60); d != Defer {
		t.Fatalf("expected Defer, got %v", d)
	}
}

func TestBreaksAlwaysAllowed(t *testing.T) {
	m := NewModel(defaultConfig())
	m.state.Current = 0
	task := model.Task{ID: "rest", Kind: model.KindFlexible, BaseDuration: 30, Category: model.CategoryBreak}
	if d := m.Evaluate(task, 30); d != Allow {
		t.Fatalf("expected Allow for break, got %v", d)
	}
}

func TestConsumeNeverNegative(t *testing.T) {
	cfg := defaultConfig()
	m := NewModel(cfg)
	task := model.Task{ID: "a", Kind: model.KindFlexible, BaseDuration: 600, Difficulty: 10, Category: model.CategoryWork}
	m.Consume(task, 6000)
	if m.State().Current < 0 {
		t.Fatalf("energy went negative: %f", m.State().Current)
	}
}

func TestRestoreCapped(t *testing.T) {
	m := NewModel(defaultConfig())
	m.Restore(1000)
	if got, want := m.State().Current, m.State().Max; got != want {
		t.Fatalf("expected cap at %f, got %f", want, got)
	}
}

func TestRestTargetCoversTask(t *testing.T) {
	m := NewModel(defaultConfig())
	m.state.Current = m.state.Critical
	task := model.Task{ID: "a", Kind: model.KindFlexible, BaseDuration: 120, Difficulty: 10, Category: model.CategoryWork}
	target := m.RestTarget(task, 120)
	if target < m.state.Recovery {
		t.Fatalf("target %f below recovery %f", target, m.state.Recovery)
	}
	if target-m.Cost(task, 120) < m.state.Critical {
		t.Fatalf("target %f cannot carry the task", target)
	}
	minutes := m.RestMinutes(target)
	if minutes <= 0 {
		t.Fatalf("expected positive rest duration")
	}
	m.Restore(float64(minutes) * m.RestoreRate())
	if m.Evaluate(task, 120) != Allow {
		t.Fatalf("task still blocked after sized rest")
	}
}
