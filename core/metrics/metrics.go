// Package metrics defines the sink interface used to record optimization
// outcomes for observability purposes.
package metrics

import (
	"time"

	"github.com/kilianp07/dayplan/core/model"
)

// Sink records optimization outcomes.
type Sink interface {
	RecordPlacement(ev model.ScheduledEvent) error
	RecordUnscheduled(taskID string, reason model.ReasonCode) error
	RecordEnergy(level float64) error
	RecordRunDuration(d time.Duration) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlacement(model.ScheduledEvent) error       { return nil }
func (NopSink) RecordUnscheduled(string, model.ReasonCode) error { return nil }
func (NopSink) RecordEnergy(float64) error                       { return nil }
func (NopSink) RecordRunDuration(time.Duration) error            { return nil }
