package test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/dayplan/core/events"
	"github.com/kilianp07/dayplan/core/logger"
	"github.com/kilianp07/dayplan/core/model"
	"github.com/kilianp07/dayplan/core/optimizer"
	"github.com/kilianp07/dayplan/infra/metrics"
	"github.com/kilianp07/dayplan/infra/providers"
	"github.com/kilianp07/dayplan/internal/eventbus"
	"github.com/kilianp07/dayplan/pkg/export"
	"github.com/kilianp07/dayplan/taskdef"
)

var date = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

const taskFile = `tasks:
  - id: standup
    title: "Daily standup"
    fixed_start: "09:30"
    duration_minutes: 30
    difficulty: 2
  - id: design
    title: "Design review prep"
    duration_minutes: 90
    difficulty: 8
  - id: present
    title: "Present design"
    duration_minutes: 60
    difficulty: 6
    depends_on: [design]
  - id: errand
    title: "Pick up package"
    category: travel
    duration_minutes: 30
    difficulty: 1
  - id: jog
    title: "Evening jog"
    category: fitness
    location: outdoor
    duration_minutes: 60
    difficulty: 3
`

func loadTasks(t *testing.T) []model.Task {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	if err := os.WriteFile(path, []byte(taskFile), 0o644); err != nil {
		t.Fatalf("write tasks: %v", err)
	}
	tasks, err := taskdef.Load(path, date)
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	return tasks
}

func TestPlannerIntegration(t *testing.T) {
	tasks := loadTasks(t)

	window, err := model.NewScheduleWindow(date, 8, 18)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	peaks := []model.PeakWindow{{Start: date.Add(9 * time.Hour), End: date.Add(13 * time.Hour)}}

	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("sink: %v", err)
	}

	cfg := optimizer.Config{}
	cfg.SetDefaults()
	weather := providers.NewSimulatedWeather(map[string]providers.Condition{"2025-06-02": providers.ConditionRain}, 1)
	travel := providers.NewSimulatedTravel(1)

	opt := optimizer.New(cfg, window, peaks, weather, travel, logger.NopLogger{}, sink, nil)
	res, err := opt.Run(tasks)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.State != optimizer.StateDone {
		t.Fatalf("state %s", res.State)
	}
	if len(res.Unscheduled) != 0 {
		t.Fatalf("unscheduled: %v", res.Unscheduled)
	}

	byID := make(map[string]model.ScheduledEvent)
	for _, ev := range res.Timeline {
		byID[ev.TaskID] = ev
	}
	if ev := byID["standup"]; !ev.Start.Equal(date.Add(9*time.Hour + 30*time.Minute)) {
		t.Errorf("standup moved to %v", ev.Start)
	}
	if byID["present"].Start.Before(byID["design"].End) {
		t.Errorf("present starts before design ends")
	}
	// Rain stretches the outdoor jog from 60 to 90 minutes.
	if got := byID["jog"].EffectiveDuration; got != 90 {
		t.Errorf("jog duration %d, want 90", got)
	}
	// Travel tasks carry a 20 to 50 minute buffer on top of the base duration.
	if got := byID["errand"].EffectiveDuration; got < 50 || got > 80 {
		t.Errorf("errand duration %d outside [50,80]", got)
	}
	for i := 1; i < len(res.Timeline); i++ {
		if res.Timeline[i].Start.Before(res.Timeline[i-1].End) {
			t.Fatalf("events %s and %s overlap", res.Timeline[i-1].TaskID, res.Timeline[i].TaskID)
		}
	}

	// JSON export round trip
	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, res); err != nil {
		t.Fatalf("json: %v", err)
	}
	var back optimizer.Result
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back.Timeline) != len(res.Timeline) || back.RunID != res.RunID {
		t.Fatalf("json round trip mismatch")
	}

	// CSV export parse
	buf.Reset()
	if err := export.WriteCSV(&buf, res); err != nil {
		t.Fatalf("csv: %v", err)
	}
	recs, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv read: %v", err)
	}
	if len(recs) != len(res.Timeline)+1 {
		t.Fatalf("csv rows %d", len(recs))
	}

	// Table export sanity
	buf.Reset()
	if err := export.WriteTable(&buf, res); err != nil {
		t.Fatalf("table: %v", err)
	}
	if !strings.Contains(buf.String(), "Daily timetable 2025-06-02") {
		t.Fatalf("table header missing:\n%s", buf.String())
	}
}

func TestPlannerDeterministicAcrossRuns(t *testing.T) {
	window, err := model.NewScheduleWindow(date, 8, 18)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	cfg := optimizer.Config{}
	cfg.SetDefaults()

	runOnce := func() optimizer.Result {
		weather := providers.NewSimulatedWeather(nil, 42)
		travel := providers.NewSimulatedTravel(42)
		opt := optimizer.New(cfg, window, nil, weather, travel, logger.NopLogger{}, nil, nil)
		res, err := opt.Run(loadTasks(t))
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		return res
	}

	first, second := runOnce(), runOnce()
	if len(first.Timeline) != len(second.Timeline) {
		t.Fatalf("timeline size differs: %d vs %d", len(first.Timeline), len(second.Timeline))
	}
	for i := range first.Timeline {
		a, b := first.Timeline[i], second.Timeline[i]
		if a.TaskID != b.TaskID || !a.Start.Equal(b.Start) || !a.End.Equal(b.End) {
			t.Fatalf("event %d differs: %+v vs %+v", i, a, b)
		}
	}
	if first.FinalEnergy != second.FinalEnergy {
		t.Fatalf("final energy differs: %f vs %f", first.FinalEnergy, second.FinalEnergy)
	}
}

func TestEventStreamIntegration(t *testing.T) {
	window, err := model.NewScheduleWindow(date, 8, 18)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	cfg := optimizer.Config{}
	cfg.Breaks.Disabled = true
	cfg.SetDefaults()

	bus := eventbus.New()
	sub := bus.Subscribe()
	collected := make(chan []eventbus.Event, 1)
	go func() {
		var seen []eventbus.Event
		for e := range sub {
			seen = append(seen, e)
		}
		collected <- seen
	}()

	opt := optimizer.New(cfg, window, nil, nil, nil, logger.NopLogger{}, nil, bus)
	tasks := []model.Task{
		{ID: "a", Kind: model.KindFlexible, BaseDuration: 60, Difficulty: 4, Category: model.CategoryWork},
		{ID: "b", Kind: model.KindFlexible, BaseDuration: 30, Difficulty: 2, Category: model.CategoryWork, DependencyIDs: []string{"a"}},
	}
	if _, err := opt.Run(tasks); err != nil {
		t.Fatalf("run: %v", err)
	}
	bus.Close()

	collectedEvents := <-collected
	placed := 0
	doneSeen := false
	for _, e := range collectedEvents {
		switch ev := e.(type) {
		case events.PlacedEvent:
			placed++
		case events.StateEvent:
			if ev.To == string(optimizer.StateDone) {
				doneSeen = true
			}
		}
	}
	if placed != 2 {
		t.Errorf("expected 2 placement events, got %d", placed)
	}
	if !doneSeen {
		t.Error("no transition to DONE observed")
	}
}
