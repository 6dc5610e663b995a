// Package metrics provides Prometheus-backed implementations of the core
// metrics sink.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/dayplan/core/metrics"
	"github.com/kilianp07/dayplan/core/model"
)

// PromSink records optimization outcomes in Prometheus metrics.
type PromSink struct {
	placed      *prometheus.CounterVec
	unscheduled *prometheus.CounterVec
	energy      prometheus.Gauge
	runSeconds  prometheus.Histogram
}

// NewPromSink registers the optimizer metrics on the default registerer.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	placed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_events_total",
		Help: "Total number of events committed to the timeline",
	}, []string{"kind", "break"})
	unscheduled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_unscheduled_total",
		Help: "Total number of tasks left off the timeline",
	}, []string{"reason"})
	energy := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_final_energy",
		Help: "Energy level at the end of the last run",
	})
	runSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_run_duration_seconds",
		Help:    "Wall time of one optimization run",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(placed); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			placed = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(unscheduled); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			unscheduled = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(energy); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			energy = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(runSeconds); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runSeconds = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{placed: placed, unscheduled: unscheduled, energy: energy, runSeconds: runSeconds}, nil
}

// RecordPlacement increments the event counter.
func (s *PromSink) RecordPlacement(ev model.ScheduledEvent) error {
	s.placed.WithLabelValues(string(ev.Kind), string(ev.Break)).Inc()
	return nil
}

// RecordUnscheduled increments the per-reason failure counter.
func (s *PromSink) RecordUnscheduled(_ string, reason model.ReasonCode) error {
	s.unscheduled.WithLabelValues(string(reason)).Inc()
	return nil
}

// RecordEnergy sets the final energy gauge.
func (s *PromSink) RecordEnergy(level float64) error {
	s.energy.Set(level)
	return nil
}

// RecordRunDuration observes the run wall time.
func (s *PromSink) RecordRunDuration(d time.Duration) error {
	s.runSeconds.Observe(d.Seconds())
	return nil
}
