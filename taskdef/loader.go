// Package taskdef loads task definitions from YAML files into the core model.
package taskdef

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/dayplan/core/model"
)

// TaskDef is the on-disk shape of one task.
type TaskDef struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Kind       string   `yaml:"kind"`
	Category   string   `yaml:"category,omitempty"`
	FixedStart string   `yaml:"fixed_start,omitempty"` // HH:MM, fixed tasks only
	Duration   int      `yaml:"duration_minutes"`
	Difficulty int      `yaml:"difficulty"`
	Location   string   `yaml:"location,omitempty"`
	DependsOn  []string `yaml:"depends_on,omitempty"`
	Deadline   string   `yaml:"deadline,omitempty"` // HH:MM on the planning day
	Resource   string   `yaml:"resource,omitempty"`
}

// File is the root of a task definition file.
type File struct {
	Tasks []TaskDef `yaml:"tasks"`
}

// Load reads and converts a task file for the given planning date.
func Load(path string, date time.Time) ([]model.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	tasks := make([]model.Task, 0, len(f.Tasks))
	for _, d := range f.Tasks {
		t, err := d.ToModel(date)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// ToModel converts the definition, resolving clock times against the date.
func (d TaskDef) ToModel(date time.Time) (model.Task, error) {
	t := model.Task{
		ID:               d.ID,
		Title:            d.Title,
		Kind:             model.TaskKind(d.Kind),
		Category:         model.Category(d.Category),
		BaseDuration:     d.Duration,
		Difficulty:       d.Difficulty,
		Location:         model.LocationType(d.Location),
		DependencyIDs:    d.DependsOn,
		RequiredResource: d.Resource,
	}
	if t.Kind == "" {
		t.Kind = model.KindFlexible
	}
	if t.Category == "" {
		t.Category = model.CategoryWork
	}
	if t.Location == "" {
		t.Location = model.LocationIndoor
	}
	if d.FixedStart != "" {
		start, err := clockOn(date, d.FixedStart)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %s: fixed_start: %w", d.ID, err)
		}
		t.FixedStart = start
		t.Kind = model.KindFixed
	}
	if d.Deadline != "" {
		deadline, err := clockOn(date, d.Deadline)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %s: deadline: %w", d.ID, err)
		}
		t.Deadline = deadline
	}
	if err := t.Validate(); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// clockOn resolves an HH:MM string on the given date.
func clockOn(date time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}
