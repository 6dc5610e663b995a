package breaks

import "fmt"

// ScheduledBreak is a configured daily rest period.
type ScheduledBreak struct {
	Title    string `json:"title" yaml:"title"`
	Hour     int    `json:"hour" yaml:"hour"`
	Minute   int    `json:"minute" yaml:"minute"`
	Duration int    `json:"duration_minutes" yaml:"duration_minutes"`
}

// Config lists the scheduled breaks for a planning day.
type Config struct {
	Scheduled []ScheduledBreak `json:"scheduled" yaml:"scheduled"`
	// Disabled turns off the default breaks when no explicit list is set.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// SetDefaults installs the standard lunch and afternoon breaks when none are
// configured.
func (c *Config) SetDefaults() {
	if len(c.Scheduled) == 0 && !c.Disabled {
		c.Scheduled = []ScheduledBreak{
			{Title: "Lunch break", Hour: 12, Minute: 30, Duration: 45},
			{Title: "Afternoon recharge", Hour: 15, Minute: 0, Duration: 30},
		}
	}
}

// Validate checks every configured break.
func (c Config) Validate() error {
	for _, b := range c.Scheduled {
		if b.Hour < 0 || b.Hour > 23 || b.Minute < 0 || b.Minute > 59 {
			return fmt.Errorf("break %q: invalid start %02d:%02d", b.Title, b.Hour, b.Minute)
		}
		if b.Duration <= 0 {
			return fmt.Errorf("break %q: duration must be positive", b.Title)
		}
	}
	return nil
}
