package model

import (
	"fmt"
	"time"
)

// TaskKind distinguishes time-locked tasks from tasks placed by the allocator.
type TaskKind string

const (
	KindFixed    TaskKind = "fixed"
	KindFlexible TaskKind = "flexible"
)

// LocationType marks where a task happens. Outdoor tasks are subject to
// weather adjustments.
type LocationType string

const (
	LocationIndoor  LocationType = "indoor"
	LocationOutdoor LocationType = "outdoor"
)

// Category groups tasks by activity type. Travel tasks take their duration
// from the travel provider instead of the base duration.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryTravel   Category = "travel"
	CategoryFitness  Category = "fitness"
	CategoryOutdoor  Category = "outdoor"
	CategoryBreak    Category = "break"
)

// MaxDifficulty bounds the task difficulty scale.
const MaxDifficulty = 10

// Task is a read-only input for one optimization run. Effective duration is
// derived by the duration adjuster, never stored here.
type Task struct {
	ID               string
	Title            string
	Kind             TaskKind
	Category         Category
	FixedStart       time.Time // only meaningful for fixed tasks
	BaseDuration     int       // minutes, must be positive
	Difficulty       int       // 0..MaxDifficulty
	Location         LocationType
	DependencyIDs    []string
	Deadline         time.Time // zero value means no deadline
	RequiredResource string    // empty means no resource needed
}

// Validate checks that the task definition is sound.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task id must not be empty")
	}
	if t.BaseDuration <= 0 {
		return fmt.Errorf("task %s: base duration must be positive", t.ID)
	}
	if t.Difficulty < 0 || t.Difficulty > MaxDifficulty {
		return fmt.Errorf("task %s: difficulty must be in [0,%d]", t.ID, MaxDifficulty)
	}
	if t.Kind != KindFixed && t.Kind != KindFlexible {
		return fmt.Errorf("task %s: unknown kind %q", t.ID, t.Kind)
	}
	if t.Kind == KindFixed && t.FixedStart.IsZero() {
		return fmt.Errorf("task %s: fixed task requires a start time", t.ID)
	}
	return nil
}

// IsBreak reports whether the task is a rest period.
func (t Task) IsBreak() bool { return t.Category == CategoryBreak }

// HasDeadline reports whether a deadline was set.
func (t Task) HasDeadline() bool { return !t.Deadline.IsZero() }
