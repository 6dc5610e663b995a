// Package readiness decides which flexible tasks are currently schedulable.
package readiness

import (
	"time"

	"github.com/kilianp07/dayplan/core/model"
)

// Resolver answers readiness queries against the set of placed tasks.
// Dependency ids that do not refer to a task in today's set are ignored.
type Resolver struct {
	known      map[string]bool
	dependents map[string][]string
}

// NewResolver indexes today's task set.
func NewResolver(tasks []model.Task) *Resolver {
	r := &Resolver{
		known:      make(map[string]bool, len(tasks)),
		dependents: make(map[string][]string),
	}
	for _, t := range tasks {
		r.known[t.ID] = true
	}
	for _, t := range tasks {
		for _, dep := range t.DependencyIDs {
			if r.known[dep] {
				r.dependents[dep] = append(r.dependents[dep], t.ID)
			}
		}
	}
	return r
}

// IsReady reports whether every in-set dependency of the task has been placed.
func (r *Resolver) IsReady(task model.Task, placed map[string]time.Time) bool {
	for _, dep := range task.DependencyIDs {
		if !r.known[dep] {
			continue
		}
		if _, ok := placed[dep]; !ok {
			return false
		}
	}
	return true
}

// EarliestStart returns the latest end time among the task's placed
// dependencies. A task must not start before its dependencies complete.
func (r *Resolver) EarliestStart(task model.Task, placed map[string]time.Time) time.Time {
	var latest time.Time
	for _, dep := range task.DependencyIDs {
		if end, ok := placed[dep]; ok && end.After(latest) {
			latest = end
		}
	}
	return latest
}

// DirectDependents returns how many in-set tasks depend on the given id.
// Used by the scorer to favor tasks with high fan-out.
func (r *Resolver) DirectDependents(id string) int {
	return len(r.dependents[id])
}

// DependentIDs returns the ids of in-set tasks depending on the given id.
func (r *Resolver) DependentIDs(id string) []string {
	return r.dependents[id]
}
