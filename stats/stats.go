// Package stats reports the time recorded in the daily summary.
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/models"
	"github.com/parkervanroy/sith/internal/timeutil"
	"github.com/parkervanroy/sith/internal/ui"
	"github.com/parkervanroy/sith/store"
)

const (
	barWidth   = 20
	barFull    = "█"
	barEmpty   = "░"
	dateLayout = "Jan 2, 2006"
	noDataMsg  = "No work recorded for the specified time range"
)

// DayReport is the work recorded on a single day.
type DayReport struct {
	Date  string           `json:"date"`
	Apps  []models.AppTime `json:"apps"`
	Total float64          `json:"total"`
}

// Report aggregates the days selected by a filter.
type Report struct {
	Start      time.Time
	End        time.Time
	Days       []DayReport
	Apps       []models.AppTime
	Total      float64
	Average    float64
	PeriodDays int
}

// Build selects the days and applications matching f. Days are ordered
// newest first and applications by time spent.
func Build(s models.Summary, f *config.FilterConfig) *Report {
	r := &Report{
		Start: f.StartTime,
		End:   f.EndTime,
	}

	totals := models.NewDay()

	for _, key := range s.Keys() {
		if !f.Includes(key) {
			continue
		}

		day := models.NewDay()

		for app, secs := range s[key].ByApp {
			if f.IncludesApp(app) {
				day.Add(app, secs)
				totals.Add(app, secs)
			}
		}

		if day.Total <= 0 {
			continue
		}

		r.Days = append(r.Days, DayReport{
			Date:  key,
			Total: day.Total,
			Apps:  day.Apps(),
		})
	}

	r.Apps = totals.Apps()
	r.Total = totals.Total

	// all-time reports start on the oldest recorded day
	if r.Start.IsZero() && len(r.Days) > 0 {
		oldest := r.Days[len(r.Days)-1].Date

		start, err := timeutil.ParseDayKey(oldest, r.End.Location())
		if err == nil {
			r.Start = start
		}
	}

	if !r.Start.IsZero() {
		r.PeriodDays = daysBetween(r.Start, r.End)
	}

	if r.PeriodDays > 0 {
		r.Average = r.Total / float64(r.PeriodDays)
	}

	return r
}

// ForDay returns the report for a single day key.
func ForDay(s models.Summary, key string) DayReport {
	d, ok := s[key]
	if !ok || d == nil {
		return DayReport{Date: key}
	}

	return DayReport{
		Date:  key,
		Total: d.Total,
		Apps:  d.Apps(),
	}
}

// daysBetween counts the calendar days from start to end, both included.
func daysBetween(start, end time.Time) int {
	from := timeutil.RoundToStart(start)
	to := timeutil.RoundToStart(end)

	return int(math.Round(to.Sub(from).Hours()/24)) + 1
}

// Bar renders share (0 to 1) as a fixed-width bar.
func Bar(share float64) string {
	share = math.Max(0, math.Min(1, share))
	n := int(math.Round(share * barWidth))

	return strings.Repeat(barFull, n) + strings.Repeat(barEmpty, barWidth-n)
}

func writeApps(w io.Writer, apps []models.AppTime, total float64, style timeutil.DisplayStyle) {
	width := 0
	for _, a := range apps {
		width = max(width, len([]rune(a.Name)))
	}

	for _, a := range apps {
		share := 0.0
		if total > 0 {
			share = a.Seconds / total
		}

		pad := strings.Repeat(" ", width-len([]rune(a.Name)))

		fmt.Fprintf(
			w,
			"  %s%s  %s %5.1f%%  %s\n",
			a.Name,
			pad,
			ui.Green(Bar(share)),
			share*100,
			timeutil.FormatSeconds(a.Seconds, style),
		)
	}
}

// Render writes the report as text.
func (r *Report) Render(w io.Writer, style timeutil.DisplayStyle) {
	if len(r.Days) == 0 {
		fmt.Fprintln(w, noDataMsg)
		return
	}

	fmt.Fprintf(
		w,
		"%s %s - %s\n\n",
		ui.Blue("Reporting period:"),
		r.Start.Format(dateLayout),
		r.End.Format(dateLayout),
	)

	fmt.Fprintf(w, "%-15s%s\n", "Total time:", ui.Green(timeutil.FormatSeconds(r.Total, style)))
	fmt.Fprintf(w, "%-15s%s\n", "Daily average:", ui.Green(timeutil.FormatSeconds(r.Average, style)))
	fmt.Fprintf(w, "%-15s%d of %d\n", "Active days:", len(r.Days), r.PeriodDays)

	fmt.Fprintf(w, "\n%s\n", ui.Blue("Applications"))
	writeApps(w, r.Apps, r.Total, style)

	for _, d := range r.Days {
		d.Render(w, style)
	}
}

// Render writes a single day as text.
func (d DayReport) Render(w io.Writer, style timeutil.DisplayStyle) {
	fmt.Fprintf(
		w,
		"\n%s  %s\n",
		ui.Blue(timeutil.HumanDate(d.Date)),
		timeutil.FormatSeconds(d.Total, style),
	)

	writeApps(w, d.Apps, d.Total, style)
}

type jsonReport struct {
	Start      string           `json:"start"`
	End        string           `json:"end"`
	Apps       []models.AppTime `json:"apps"`
	Days       []DayReport      `json:"days"`
	Total      float64          `json:"total"`
	Average    float64          `json:"average"`
	ActiveDays int              `json:"active_days"`
	PeriodDays int              `json:"period_days"`
}

// JSON writes the report as an indented JSON document.
func (r *Report) JSON(w io.Writer) error {
	out := jsonReport{
		End:        timeutil.DayKey(r.End),
		Apps:       r.Apps,
		Days:       r.Days,
		Total:      r.Total,
		Average:    r.Average,
		ActiveDays: len(r.Days),
		PeriodDays: r.PeriodDays,
	}

	if !r.Start.IsZero() {
		out.Start = timeutil.DayKey(r.Start)
	}

	if out.Apps == nil {
		out.Apps = []models.AppTime{}
	}

	if out.Days == nil {
		out.Days = []DayReport{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// Show loads the summary from db and writes the report selected by f.
func Show(
	w io.Writer,
	db store.DB,
	f *config.FilterConfig,
	style timeutil.DisplayStyle,
	asJSON bool,
) error {
	s, err := db.Load()
	if err != nil {
		return err
	}

	r := Build(s, f)

	if asJSON {
		return r.JSON(w)
	}

	r.Render(w, style)

	return nil
}
