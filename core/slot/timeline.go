package slot

import (
	"fmt"
	"sort"

	"github.com/kilianp07/dayplan/core/model"
)

// Timeline is the ordered sequence of committed events. No two events may
// overlap.
type Timeline struct {
	events []model.ScheduledEvent
}

// Insert adds an event, keeping the sequence ordered by start time. It fails
// if the event would overlap a committed one.
func (t *Timeline) Insert(ev model.ScheduledEvent) error {
	for _, e := range t.events {
		if e.Overlaps(ev) {
			return fmt.Errorf("event %s overlaps %s", ev.TaskID, e.TaskID)
		}
	}
	i := sort.Search(len(t.events), func(i int) bool {
		return t.events[i].Start.After(ev.Start)
	})
	t.events = append(t.events, model.ScheduledEvent{})
	copy(t.events[i+1:], t.events[i:])
	t.events[i] = ev
	return nil
}

// Events returns a copy of the committed events in start order.
func (t *Timeline) Events() []model.ScheduledEvent {
	out := make([]model.ScheduledEvent, len(t.events))
	copy(out, t.events)
	return out
}

// Len returns the number of committed events.
func (t *Timeline) Len() int { return len(t.events) }
