package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "config.yaml", `window:
  date: "2025-06-02"
  start_hour: 9
  end_hour: 17
peaks:
  - start_hour: 9
    end_hour: 12
optimizer:
  energy:
    max_energy: 80
  weights:
    difficulty: 0.5
    peak: 0.2
    fan_out: 0.2
    deadline: 0.1
  slot:
    focus_threshold: 6
  breaks:
    scheduled:
      - title: "Lunch"
        hour: 13
        minute: 0
        duration_minutes: 60
  resources:
    - laptop
providers:
  seed: 42
  weather:
    "2025-06-02": "Rain"
metrics:
  enabled: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"window.date", cfg.Window.Date, "2025-06-02"},
		{"window.start_hour", cfg.Window.StartHour, 9},
		{"window.end_hour", cfg.Window.EndHour, 17},
		{"peaks", len(cfg.Peaks) == 1 && cfg.Peaks[0].EndHour == 12, true},
		{"energy.max_energy", cfg.Optimizer.Energy.MaxEnergy, 80.0},
		{"weights.difficulty", cfg.Optimizer.Weights.Difficulty, 0.5},
		{"slot.focus_threshold", cfg.Optimizer.Slot.FocusThreshold, 6},
		{"breaks", len(cfg.Optimizer.Breaks.Scheduled) == 1 && cfg.Optimizer.Breaks.Scheduled[0].Hour == 13, true},
		{"resources", len(cfg.Optimizer.Resources) == 1 && cfg.Optimizer.Resources[0] == "laptop", true},
		{"providers.seed", cfg.Providers.Seed, int64(42)},
		{"providers.weather", cfg.Providers.Weather["2025-06-02"], "Rain"},
		{"metrics.enabled", cfg.Metrics.Enabled, true},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "window": {"date": "2025-06-02", "start_hour": 8, "end_hour": 18},
  "providers": {"seed": 7}
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Window.EndHour != 18 || cfg.Providers.Seed != 7 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `window:
  date: "2025-06-02"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"window.start_hour", cfg.Window.StartHour, 8},
		{"window.end_hour", cfg.Window.EndHour, 18},
		{"default peak", len(cfg.Peaks) == 1 && cfg.Peaks[0].StartHour == 9 && cfg.Peaks[0].EndHour == 13, true},
		{"energy.max_energy", cfg.Optimizer.Energy.MaxEnergy, 50.0},
		{"energy.critical_ratio", cfg.Optimizer.Energy.CriticalRatio, 0.3},
		{"weights.difficulty", cfg.Optimizer.Weights.Difficulty, 0.4},
		{"slot.focus_threshold", cfg.Optimizer.Slot.FocusThreshold, 7},
		{"default breaks", len(cfg.Optimizer.Breaks.Scheduled), 2},
		{"providers.seed", cfg.Providers.Seed, int64(1)},
		{"metrics.enabled", cfg.Metrics.Enabled, false},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", `window:
  date: "2025-06-02"
  start_hour: 8
  end_hour: 18
`)
	t.Setenv("DAYPLAN_WINDOW__END_HOUR", "16")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Window.EndHour != 16 {
		t.Errorf("env override ignored: end_hour=%d", cfg.Window.EndHour)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		file string
		data string
	}{
		{"bad extension", "config.toml", `window = {}`},
		{"inverted window", "config.yaml", "window:\n  start_hour: 18\n  end_hour: 8\n"},
		{"bad date", "config.yaml", "window:\n  date: \"02/06/2025\"\n"},
		{"bad weather", "config.yaml", "providers:\n  weather:\n    \"2025-06-02\": \"Snow\"\n"},
		{"bad peak", "config.yaml", "peaks:\n  - start_hour: 12\n    end_hour: 12\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeConfig(t, c.file, c.data)
			if _, err := Load(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestWindowMaterialization(t *testing.T) {
	wc := WindowConfig{Date: "2025-06-02", StartHour: 9, EndHour: 17}
	window, err := wc.Window()
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	wantStart := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	if !window.Start.Equal(wantStart) {
		t.Errorf("start %v, want %v", window.Start, wantStart)
	}
	peaks := PeakWindows([]PeakConfig{{StartHour: 9, EndHour: 13}}, window.Date)
	if len(peaks) != 1 || !peaks[0].End.Equal(window.Date.Add(13*time.Hour)) {
		t.Errorf("unexpected peaks %v", peaks)
	}
}
