package config

import (
	"fmt"
	"time"

	"github.com/kilianp07/dayplan/core/model"
)

// dateLayout is the expected format of configured dates.
const dateLayout = "2006-01-02"

// WindowConfig defines the planning day and its working hours.
type WindowConfig struct {
	// Date in ISO 8601 (YYYY-MM-DD). Empty means today.
	Date      string `json:"date"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
}

// SetDefaults applies the standard working day.
func (c *WindowConfig) SetDefaults() {
	if c.StartHour == 0 && c.EndHour == 0 {
		c.StartHour = 8
		c.EndHour = 18
	}
}

// Validate checks the configured hours and date format.
func (c WindowConfig) Validate() error {
	if c.Date != "" {
		if _, err := time.Parse(dateLayout, c.Date); err != nil {
			return fmt.Errorf("invalid date %q: %w", c.Date, err)
		}
	}
	if c.StartHour < 0 || c.StartHour > 23 || c.EndHour < 0 || c.EndHour > 23 {
		return fmt.Errorf("hours must be in [0,23]")
	}
	if c.EndHour <= c.StartHour {
		return model.ErrInvalidTimeWindow
	}
	return nil
}

// Window materializes the schedule window. Empty dates resolve to today.
func (c WindowConfig) Window() (model.ScheduleWindow, error) {
	date := time.Now()
	if c.Date != "" {
		var err error
		date, err = time.Parse(dateLayout, c.Date)
		if err != nil {
			return model.ScheduleWindow{}, err
		}
	}
	return model.NewScheduleWindow(date, c.StartHour, c.EndHour)
}

// PeakConfig is one peak focus interval expressed in whole hours.
type PeakConfig struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Validate checks the interval bounds.
func (c PeakConfig) Validate() error {
	if c.StartHour < 0 || c.StartHour > 23 || c.EndHour < 0 || c.EndHour > 23 {
		return fmt.Errorf("peak hours must be in [0,23]")
	}
	if c.EndHour <= c.StartHour {
		return fmt.Errorf("peak end must be after start")
	}
	return nil
}

// PeakWindows materializes the configured peaks on the given date.
func PeakWindows(peaks []PeakConfig, date time.Time) []model.PeakWindow {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	out := make([]model.PeakWindow, 0, len(peaks))
	for _, p := range peaks {
		out = append(out, model.PeakWindow{
			Start: day.Add(time.Duration(p.StartHour) * time.Hour),
			End:   day.Add(time.Duration(p.EndHour) * time.Hour),
		})
	}
	return out
}
