// Package slot discovers and consumes free time around fixed commitments.
package slot

import (
	"fmt"
	"time"

	"github.com/kilianp07/dayplan/core/model"
)

// IntervalSet maintains the free spans of a schedule window. The set is
// always disjoint, sorted, and equal to the window minus all placed events.
type IntervalSet struct {
	free []model.FreeInterval
}

// NewIntervalSet starts with the whole window free.
func NewIntervalSet(w model.ScheduleWindow) *IntervalSet {
	return &IntervalSet{free: []model.FreeInterval{{Start: w.Start, End: w.End}}}
}

// Intervals returns a copy of the current free spans.
func (s *IntervalSet) Intervals() []model.FreeInterval {
	out := make([]model.FreeInterval, len(s.free))
	copy(out, s.free)
	return out
}

// Take removes [start,end) from the set. The span must lie entirely within a
// single free interval; that interval is shrunk or split.
func (s *IntervalSet) Take(start, end time.Time) error {
	if !start.Before(end) {
		return fmt.Errorf("empty span %v-%v", start, end)
	}
	for i, f := range s.free {
		if start.Before(f.Start) || end.After(f.End) {
			continue
		}
		var repl []model.FreeInterval
		if f.Start.Before(start) {
			repl = append(repl, model.FreeInterval{Start: f.Start, End: start})
		}
		if end.Before(f.End) {
			repl = append(repl, model.FreeInterval{Start: end, End: f.End})
		}
		s.free = append(s.free[:i], append(repl, s.free[i+1:]...)...)
		return nil
	}
	return fmt.Errorf("span %v-%v is not free", start, end)
}

// Earliest returns the start of the first interval able to hold the given
// duration at or after notBefore. The boolean is false when nothing fits.
func (s *IntervalSet) Earliest(minutes int, notBefore time.Time) (time.Time, bool) {
	dur := time.Duration(minutes) * time.Minute
	for _, f := range s.free {
		start := f.Start
		if notBefore.After(start) {
			start = notBefore
		}
		if !start.Add(dur).After(f.End) {
			return start, true
		}
	}
	return time.Time{}, false
}
