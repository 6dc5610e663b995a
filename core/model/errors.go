package model

import "errors"

// Fatal input errors abort a run before scheduling begins.
var (
	ErrInvalidTimeWindow     = errors.New("invalid time window: end must be after start")
	ErrOverlappingFixedTasks = errors.New("overlapping fixed tasks")
)

// ReasonCode explains why an individual task could not be scheduled.
// Per-task failures never abort the run.
type ReasonCode string

const (
	ReasonCyclicDependency ReasonCode = "CyclicDependency"
	ReasonUnresolvableSlot ReasonCode = "UnresolvableSlot"
	ReasonEnergyExhausted  ReasonCode = "EnergyExhausted"
	ReasonMissingResource  ReasonCode = "MissingResource"
)

// UnscheduledTask pairs a task with the reason it was left off the timeline.
type UnscheduledTask struct {
	TaskID string
	Reason ReasonCode
}
