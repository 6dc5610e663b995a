package taskdef

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kilianp07/dayplan/core/model"
)

var date = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func writeTasks(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write tasks: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTasks(t, `tasks:
  - id: meeting
    title: "Team sync"
    fixed_start: "10:00"
    duration_minutes: 60
    difficulty: 3
  - id: report
    title: "Quarterly report"
    kind: flexible
    duration_minutes: 90
    difficulty: 8
    deadline: "16:00"
    depends_on: [meeting]
    resource: laptop
  - id: run
    title: "Morning run"
    category: fitness
    location: outdoor
    duration_minutes: 45
    difficulty: 4
`)
	tasks, err := Load(path, date)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	meeting := tasks[0]
	if meeting.Kind != model.KindFixed {
		t.Errorf("fixed_start must force fixed kind, got %s", meeting.Kind)
	}
	if !meeting.FixedStart.Equal(date.Add(10 * time.Hour)) {
		t.Errorf("fixed start %v", meeting.FixedStart)
	}
	if meeting.Category != model.CategoryWork || meeting.Location != model.LocationIndoor {
		t.Errorf("defaults not applied: %+v", meeting)
	}

	report := tasks[1]
	if !report.Deadline.Equal(date.Add(16 * time.Hour)) {
		t.Errorf("deadline %v", report.Deadline)
	}
	if len(report.DependencyIDs) != 1 || report.DependencyIDs[0] != "meeting" {
		t.Errorf("dependencies %v", report.DependencyIDs)
	}
	if report.RequiredResource != "laptop" {
		t.Errorf("resource %q", report.RequiredResource)
	}

	run := tasks[2]
	if run.Category != model.CategoryFitness || run.Location != model.LocationOutdoor {
		t.Errorf("explicit fields lost: %+v", run)
	}
}

func TestLoadRejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"bad clock", "tasks:\n  - id: a\n    fixed_start: \"25:99\"\n    duration_minutes: 30\n"},
		{"bad deadline", "tasks:\n  - id: a\n    duration_minutes: 30\n    deadline: \"later\"\n"},
		{"missing id", "tasks:\n  - title: x\n    duration_minutes: 30\n"},
		{"zero duration", "tasks:\n  - id: a\n    duration_minutes: 0\n"},
		{"difficulty out of range", "tasks:\n  - id: a\n    duration_minutes: 30\n    difficulty: 11\n"},
		{"unknown kind", "tasks:\n  - id: a\n    kind: sometimes\n    duration_minutes: 30\n"},
		{"not yaml", "tasks: {{"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeTasks(t, c.data)
			if _, err := Load(path, date); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), date); err == nil {
		t.Fatal("expected error for missing file")
	}
}
