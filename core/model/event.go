package model

import "time"

// BreakKind identifies why a break event exists on the timeline.
type BreakKind string

const (
	// BreakNone marks a regular task event.
	BreakNone BreakKind = ""
	// BreakScheduled is a configured break such as lunch.
	BreakScheduled BreakKind = "scheduled"
	// BreakRest is a mandatory rest inserted on low energy.
	BreakRest BreakKind = "rest"
)

// ScheduledEvent is one committed entry of the output timeline.
type ScheduledEvent struct {
	TaskID            string
	Title             string
	Kind              TaskKind
	Break             BreakKind
	Start             time.Time
	End               time.Time
	EffectiveDuration int // minutes
}

// Overlaps reports whether two events intersect in time.
func (e ScheduledEvent) Overlaps(o ScheduledEvent) bool {
	return e.Start.Before(o.End) && o.Start.Before(e.End)
}
