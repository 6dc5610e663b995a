package scenarios

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/dayplan/core/logger"
	"github.com/kilianp07/dayplan/core/model"
	"github.com/kilianp07/dayplan/core/optimizer"
	"github.com/kilianp07/dayplan/infra/metrics"
	"github.com/kilianp07/dayplan/infra/providers"
	"github.com/kilianp07/dayplan/internal/eventbus"
)

// Check executes one scenario and returns its expectation failures. A non-nil
// error means the scenario itself is broken, not that an expectation failed.
func Check(sc *Scenario) ([]string, error) {
	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSinkWithRegistry(reg)
	if err != nil {
		return nil, fmt.Errorf("prom sink: %w", err)
	}

	date, err := sc.Date()
	if err != nil {
		return nil, fmt.Errorf("scenario date: %w", err)
	}
	window, err := model.NewScheduleWindow(date, sc.Window.StartHour, sc.Window.EndHour)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	var peaks []model.PeakWindow
	for _, p := range sc.Peaks {
		peaks = append(peaks, model.PeakWindow{
			Start: window.Date.Add(time.Duration(p.StartHour) * time.Hour),
			End:   window.Date.Add(time.Duration(p.EndHour) * time.Hour),
		})
	}

	weather := sc.WeatherFactor
	if weather == 0 {
		weather = 1
	}

	cfg := optimizer.Config{}
	cfg.SetDefaults()
	cfg.Breaks.Disabled = sc.DisableBreaks
	if sc.DisableBreaks {
		cfg.Breaks.Scheduled = nil
	}

	bus := eventbus.New()
	defer bus.Close()

	opt := optimizer.New(cfg, window, peaks,
		providers.FixedWeather{Value: weather},
		providers.FixedTravel{Minutes: sc.TravelMinutes},
		logger.NopLogger{}, sink, bus)

	tasks, err := sc.ModelTasks(date)
	if err != nil {
		return nil, err
	}
	res, err := opt.Run(tasks)
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	var failures []string
	if got := len(res.Timeline); got != sc.Expected.Placed {
		failures = append(failures, fmt.Sprintf("expected %d placed events, got %d", sc.Expected.Placed, got))
	}
	for id, reason := range sc.Expected.Unscheduled {
		found := false
		for _, u := range res.Unscheduled {
			if u.TaskID == id {
				found = true
				if string(u.Reason) != reason {
					failures = append(failures, fmt.Sprintf("task %s expected reason %s, got %s", id, reason, u.Reason))
				}
			}
		}
		if !found {
			failures = append(failures, fmt.Sprintf("task %s expected unscheduled", id))
		}
	}
	return failures, nil
}

// RunScenario executes one scenario and reports its failures on t.
func RunScenario(t *testing.T, sc *Scenario) {
	failures, err := Check(sc)
	if err != nil {
		t.Fatalf("scenario %s: %v", sc.Name, err)
	}
	for _, f := range failures {
		t.Errorf("scenario %s: %s", sc.Name, f)
	}
}
