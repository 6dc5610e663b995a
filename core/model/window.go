package model

import (
	"fmt"
	"time"
)

// ScheduleWindow bounds a single planning day.
type ScheduleWindow struct {
	Date  time.Time
	Start time.Time
	End   time.Time
}

// NewScheduleWindow builds the window for a date from whole start/end hours.
func NewScheduleWindow(date time.Time, startHour, endHour int) (ScheduleWindow, error) {
	if startHour < 0 || startHour > 23 || endHour < 0 || endHour > 23 {
		return ScheduleWindow{}, fmt.Errorf("hours must be in [0,23], got %d and %d", startHour, endHour)
	}
	if endHour <= startHour {
		return ScheduleWindow{}, ErrInvalidTimeWindow
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return ScheduleWindow{
		Date:  day,
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}, nil
}

// Validate checks the window invariant.
func (w ScheduleWindow) Validate() error {
	if !w.Start.Before(w.End) {
		return ErrInvalidTimeWindow
	}
	return nil
}

// Contains reports whether the span [start,end) lies inside the window.
func (w ScheduleWindow) Contains(start, end time.Time) bool {
	return !start.Before(w.Start) && !end.After(w.End)
}

// PeakWindow is a time-of-day interval favored for deep-work tasks.
type PeakWindow struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start,end) intersects the peak interval.
func (p PeakWindow) Overlaps(start, end time.Time) bool {
	return start.Before(p.End) && p.Start.Before(end)
}

// FreeInterval is a contiguous unscheduled span within the day's window.
type FreeInterval struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the interval length in whole minutes.
func (f FreeInterval) Minutes() int {
	return int(f.End.Sub(f.Start) / time.Minute)
}
