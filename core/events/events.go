package events

import "github.com/kilianp07/dayplan/core/model"

// PlacedEvent reports a task committed to the timeline.
type PlacedEvent struct {
	RunID  string
	Event  model.ScheduledEvent
	Energy float64
}

// BreakEvent reports an inserted break. BeforeTaskID is set for rest breaks
// triggered by the next candidate task.
type BreakEvent struct {
	RunID        string
	Event        model.ScheduledEvent
	BeforeTaskID string
}

// UnscheduledEvent reports a task that could not be scheduled.
type UnscheduledEvent struct {
	RunID  string
	TaskID string
	Reason model.ReasonCode
}

// StateEvent reports an optimizer state transition.
type StateEvent struct {
	RunID string
	From  string
	To    string
}
