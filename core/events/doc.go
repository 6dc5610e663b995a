// Package events defines the optimizer related events emitted on the event bus.
//
// Available event types:
//   - PlacedEvent: a task committed to the timeline
//   - BreakEvent: a scheduled or rest break inserted
//   - UnscheduledEvent: a task left off the timeline with its reason
//   - StateEvent: optimizer state machine transition
package events
