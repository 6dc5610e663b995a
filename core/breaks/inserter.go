// Package breaks inserts scheduled and energy-triggered rest periods.
package breaks

import (
	"fmt"
	"time"

	"github.com/kilianp07/dayplan/core/energy"
	"github.com/kilianp07/dayplan/core/logger"
	"github.com/kilianp07/dayplan/core/model"
	"github.com/kilianp07/dayplan/core/slot"
)

// Inserter places break events for one run.
type Inserter struct {
	cfg    Config
	alloc  *slot.Allocator
	energy *energy.Model
	log    logger.Logger
	rests  int
}

// NewInserter wires the inserter to the run's allocator and energy model.
func NewInserter(cfg Config, alloc *slot.Allocator, em *energy.Model, log logger.Logger) *Inserter {
	return &Inserter{cfg: cfg, alloc: alloc, energy: em, log: log}
}

// InsertScheduled commits the configured breaks as quasi-fixed events before
// flexible placement begins. A break is skipped when a fixed task already
// occupies its span.
func (i *Inserter) InsertScheduled(window model.ScheduleWindow) []model.ScheduledEvent {
	var placed []model.ScheduledEvent
	for idx, b := range i.cfg.Scheduled {
		start := window.Date.Add(time.Duration(b.Hour)*time.Hour + time.Duration(b.Minute)*time.Minute)
		end := start.Add(time.Duration(b.Duration) * time.Minute)
		if !window.Contains(start, end) {
			continue
		}
		ev := model.ScheduledEvent{
			TaskID:            fmt.Sprintf("break-%d", idx+1),
			Title:             b.Title,
			Kind:              model.KindFixed,
			Break:             model.BreakScheduled,
			Start:             start,
			End:               end,
			EffectiveDuration: b.Duration,
		}
		if err := i.alloc.PlaceFixed(ev); err != nil {
			i.log.Warnf("scheduled break %q skipped: %v", b.Title, err)
			continue
		}
		placed = append(placed, ev)
	}
	return placed
}

// InsertRest places a mandatory rest in the earliest free interval before the
// candidate task and restores energy accordingly. The rest is sized to lift
// the level high enough for the candidate to pass evaluation.
func (i *Inserter) InsertRest(candidate model.Task, effectiveMinutes int, notBefore time.Time) (model.ScheduledEvent, error) {
	target := i.energy.RestTarget(candidate, effectiveMinutes)
	minutes := i.energy.RestMinutes(target)
	if minutes <= 0 {
		return model.ScheduledEvent{}, fmt.Errorf("no rest needed before %s", candidate.ID)
	}
	i.rests++
	rest := model.Task{
		ID:           fmt.Sprintf("rest-%d", i.rests),
		Title:        "Rest break",
		Kind:         model.KindFlexible,
		Category:     model.CategoryBreak,
		BaseDuration: minutes,
	}
	ev, err := i.alloc.Place(rest, minutes, notBefore, model.BreakRest)
	if err != nil {
		i.rests--
		return model.ScheduledEvent{}, err
	}
	i.energy.Restore(float64(minutes) * i.energy.RestoreRate())
	return ev, nil
}
