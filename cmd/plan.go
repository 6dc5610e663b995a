package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/dayplan/config"
	"github.com/kilianp07/dayplan/core/events"
	coremetrics "github.com/kilianp07/dayplan/core/metrics"
	"github.com/kilianp07/dayplan/core/optimizer"
	"github.com/kilianp07/dayplan/infra/logger"
	"github.com/kilianp07/dayplan/infra/metrics"
	"github.com/kilianp07/dayplan/internal/eventbus"
	"github.com/kilianp07/dayplan/pkg/export"
	"github.com/kilianp07/dayplan/taskdef"
)

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New("planner")

	window, err := cfg.Window.Window()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	peaks := config.PeakWindows(cfg.Peaks, window.Date)

	var sink coremetrics.Sink = coremetrics.NopSink{}
	if cfg.Metrics.Enabled {
		sink, err = metrics.NewPromSink()
		if err != nil {
			return fmt.Errorf("prom sink: %w", err)
		}
	}

	tasks, err := taskdef.Load(tasksPath, window.Date)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	bus := eventbus.New()
	defer bus.Close()
	sub := bus.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range sub {
			logProgress(logg, ev)
		}
	}()

	opt := optimizer.New(cfg.Optimizer, window, peaks,
		cfg.Providers.WeatherProvider(), cfg.Providers.TravelProvider(),
		logg, sink, bus)
	res, err := opt.Run(tasks)
	bus.Close()
	<-done
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	switch output {
	case "json":
		return export.WriteJSON(os.Stdout, res)
	case "csv":
		return export.WriteCSV(os.Stdout, res)
	case "table":
		return export.WriteTable(os.Stdout, res)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

func logProgress(logg logger.Logger, ev eventbus.Event) {
	switch e := ev.(type) {
	case events.PlacedEvent:
		logg.Infof("placed %s %s-%s (energy %.1f)",
			e.Event.TaskID, e.Event.Start.Format("15:04"), e.Event.End.Format("15:04"), e.Energy)
	case events.BreakEvent:
		if e.BeforeTaskID != "" {
			logg.Infof("rest break %s-%s before %s",
				e.Event.Start.Format("15:04"), e.Event.End.Format("15:04"), e.BeforeTaskID)
		}
	case events.UnscheduledEvent:
		logg.Warnf("unscheduled %s: %s", e.TaskID, e.Reason)
	}
}
