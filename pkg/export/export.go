// Package export renders optimization results for output.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kilianp07/dayplan/core/optimizer"
)

// WriteJSON writes the full result to w in JSON format.
func WriteJSON(w io.Writer, res optimizer.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCSV writes the timeline to w in CSV format.
func WriteCSV(w io.Writer, res optimizer.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"task_id", "start", "end", "duration_minutes", "kind", "break"}); err != nil {
		return err
	}
	for _, e := range res.Timeline {
		rec := []string{
			e.TaskID,
			e.Start.Format(time.RFC3339),
			e.End.Format(time.RFC3339),
			strconv.Itoa(e.EffectiveDuration),
			string(e.Kind),
			string(e.Break),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable renders the timeline as a human readable timetable.
func WriteTable(w io.Writer, res optimizer.Result) error {
	if _, err := fmt.Fprintf(w, "Daily timetable %s (final energy %.1f)\n",
		res.Date.Format("2006-01-02"), res.FinalEnergy); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-6s %-6s %-5s %-10s %s\n", "Start", "End", "Mins", "Type", "Title"); err != nil {
		return err
	}
	for _, e := range res.Timeline {
		typ := string(e.Kind)
		if e.Break != "" {
			typ = "break"
		}
		if _, err := fmt.Fprintf(w, "%-6s %-6s %-5d %-10s %s\n",
			e.Start.Format("15:04"), e.End.Format("15:04"), e.EffectiveDuration, typ, e.Title); err != nil {
			return err
		}
	}
	if len(res.Unscheduled) > 0 {
		if _, err := fmt.Fprintln(w, "Unscheduled:"); err != nil {
			return err
		}
		for _, u := range res.Unscheduled {
			if _, err := fmt.Fprintf(w, "  - %s (%s)\n", u.TaskID, u.Reason); err != nil {
				return err
			}
		}
	}
	return nil
}
