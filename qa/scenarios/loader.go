// Package scenarios runs YAML-defined planning scenarios against the
// optimizer with deterministic providers.
package scenarios

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/dayplan/core/model"
	"github.com/kilianp07/dayplan/taskdef"
)

// WindowDef describes the planning window of a scenario.
type WindowDef struct {
	Date      string `yaml:"date"`
	StartHour int    `yaml:"start_hour"`
	EndHour   int    `yaml:"end_hour"`
}

// PeakDef is one peak focus interval.
type PeakDef struct {
	StartHour int `yaml:"start_hour"`
	EndHour   int `yaml:"end_hour"`
}

// Expected captures the assertions of a scenario.
type Expected struct {
	Placed      int               `yaml:"placed"`
	Unscheduled map[string]string `yaml:"unscheduled,omitempty"`
}

// Scenario is a full declarative planning case.
type Scenario struct {
	Name          string            `yaml:"name"`
	Description   string            `yaml:"description,omitempty"`
	Window        WindowDef         `yaml:"window"`
	Peaks         []PeakDef         `yaml:"peaks,omitempty"`
	WeatherFactor float64           `yaml:"weather_factor,omitempty"`
	TravelMinutes int               `yaml:"travel_minutes,omitempty"`
	DisableBreaks bool              `yaml:"disable_breaks,omitempty"`
	Tasks         []taskdef.TaskDef `yaml:"tasks"`
	Expected      Expected          `yaml:"expected"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Date resolves the scenario date, defaulting to a fixed day so scenarios
// without a date stay reproducible.
func (s *Scenario) Date() (time.Time, error) {
	if s.Window.Date == "" {
		return time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s.Window.Date)
}

// ModelTasks converts the task definitions for the scenario date.
func (s *Scenario) ModelTasks(date time.Time) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(s.Tasks))
	for _, d := range s.Tasks {
		t, err := d.ToModel(date)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
