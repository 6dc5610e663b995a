package optimizer

import (
	"time"

	"github.com/kilianp07/dayplan/core/model"
)

// State is the optimizer state machine position.
type State string

const (
	StateInit       State = "INIT"
	StateLoading    State = "LOADING"
	StateScheduling State = "SCHEDULING"
	StateDone       State = "DONE"
	StateFailed     State = "FAILED"
)

// Result is the outcome of one optimization run.
type Result struct {
	RunID       string
	Date        time.Time
	State       State
	Timeline    []model.ScheduledEvent
	Unscheduled []model.UnscheduledTask
	FinalEnergy float64
}
