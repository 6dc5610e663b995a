package slot

import (
	"errors"
	"time"

	"github.com/kilianp07/dayplan/core/model"
)

// ErrUnresolvableSlot indicates no free interval can hold the task.
var ErrUnresolvableSlot = errors.New("no free interval large enough")

// Allocator places tasks into free intervals and commits them to the
// timeline. One instance per run; it owns the interval set and timeline.
type Allocator struct {
	cfg       Config
	intervals *IntervalSet
	timeline  *Timeline
	peaks     []model.PeakWindow
}

// NewAllocator builds the allocator for one run.
func NewAllocator(cfg Config, window model.ScheduleWindow, peaks []model.PeakWindow) *Allocator {
	return &Allocator{
		cfg:       cfg,
		intervals: NewIntervalSet(window),
		timeline:  &Timeline{},
		peaks:     peaks,
	}
}

// Intervals exposes the current free spans.
func (a *Allocator) Intervals() []model.FreeInterval { return a.intervals.Intervals() }

// Timeline exposes the committed events.
func (a *Allocator) Timeline() []model.ScheduledEvent { return a.timeline.Events() }

// Cursor returns the start of the earliest free interval, or the zero time
// when the day is full. The scorer uses it to estimate peak overlap.
func (a *Allocator) Cursor() time.Time {
	free := a.intervals.free
	if len(free) == 0 {
		return time.Time{}
	}
	return free[0].Start
}

// PlaceFixed commits a time-locked event at its exact start, consuming the
// matching free span.
func (a *Allocator) PlaceFixed(ev model.ScheduledEvent) error {
	if err := a.intervals.Take(ev.Start, ev.End); err != nil {
		return err
	}
	return a.timeline.Insert(ev)
}

// Place finds a span for a flexible task and commits it. Among fitting
// intervals, tasks at or above the focus threshold prefer the earliest one
// overlapping a peak window; otherwise the earliest fitting interval wins.
// notBefore keeps the task after its placed dependencies.
func (a *Allocator) Place(task model.Task, effectiveMinutes int, notBefore time.Time, breakKind model.BreakKind) (model.ScheduledEvent, error) {
	start, ok := a.findStart(task, effectiveMinutes, notBefore)
	if !ok {
		return model.ScheduledEvent{}, ErrUnresolvableSlot
	}
	ev := model.ScheduledEvent{
		TaskID:            task.ID,
		Title:             task.Title,
		Kind:              task.Kind,
		Break:             breakKind,
		Start:             start,
		End:               start.Add(time.Duration(effectiveMinutes) * time.Minute),
		EffectiveDuration: effectiveMinutes,
	}
	if err := a.intervals.Take(ev.Start, ev.End); err != nil {
		return model.ScheduledEvent{}, err
	}
	if err := a.timeline.Insert(ev); err != nil {
		return model.ScheduledEvent{}, err
	}
	return ev, nil
}

func (a *Allocator) findStart(task model.Task, minutes int, notBefore time.Time) (time.Time, bool) {
	dur := time.Duration(minutes) * time.Minute
	demandsFocus := task.Difficulty >= a.cfg.FocusThreshold && !task.IsBreak()

	var fallback time.Time
	haveFallback := false
	for _, f := range a.intervals.free {
		start := f.Start
		if notBefore.After(start) {
			start = notBefore
		}
		if start.Add(dur).After(f.End) {
			continue
		}
		if !haveFallback {
			fallback, haveFallback = start, true
			if !demandsFocus {
				break
			}
		}
		if demandsFocus && a.overlapsPeak(start, start.Add(dur)) {
			return start, true
		}
	}
	return fallback, haveFallback
}

func (a *Allocator) overlapsPeak(start, end time.Time) bool {
	for _, p := range a.peaks {
		if p.Overlaps(start, end) {
			return true
		}
	}
	return false
}
