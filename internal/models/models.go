// Package models defines the persisted sith data structures.
package models

import (
	"maps"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/maruel/natural"
)

// UnknownApp is the name under which time is recorded when the owning
// application cannot be determined.
const UnknownApp = "(unknown)"

// Day holds the seconds worked on a single day, in total and per
// application. Total always equals the sum of ByApp.
type Day struct {
	ByApp map[string]float64 `json:"by_app"`
	Total float64            `json:"total"`
}

// Summary maps ISO-8601 day keys to the work recorded on that day.
type Summary map[string]*Day

// AppTime is a single application entry of a Day, used for ordered output.
type AppTime struct {
	Name    string  `json:"name"`
	Seconds float64 `json:"seconds"`
}

// Status is the snapshot written to the status file on every tick so that
// other processes can report on a running tracker.
type Status struct {
	UpdatedAt     time.Time `json:"updated_at"`
	App           string    `json:"app"`
	WorkedSeconds float64   `json:"worked_seconds"`
	TodaySeconds  float64   `json:"today_seconds"`
	Interval      float64   `json:"interval"`
	Working       bool      `json:"working"`
}

// NewDay returns an empty day.
func NewDay() *Day {
	return &Day{
		ByApp: make(map[string]float64),
	}
}

// Add records seconds against app.
func (d *Day) Add(app string, seconds float64) {
	if d.ByApp == nil {
		d.ByApp = make(map[string]float64)
	}

	d.Total += seconds
	d.ByApp[app] += seconds
}

// Sum returns the sum of the per-app values.
func (d *Day) Sum() float64 {
	var sum float64

	for _, v := range d.ByApp {
		sum += v
	}

	return sum
}

// Apps returns the day's applications ordered by time spent, longest first.
// Ties are broken with a natural sort on the name.
func (d *Day) Apps() []AppTime {
	apps := make([]AppTime, 0, len(d.ByApp))

	for name, secs := range d.ByApp {
		apps = append(apps, AppTime{Name: name, Seconds: secs})
	}

	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].Seconds != apps[j].Seconds {
			return apps[i].Seconds > apps[j].Seconds
		}

		return natural.Less(apps[i].Name, apps[j].Name)
	})

	return apps
}

// Day returns the entry for key, creating it if this is the first time the
// day is seen.
func (s Summary) Day(key string) *Day {
	d, ok := s[key]
	if !ok || d == nil {
		d = NewDay()
		s[key] = d
	}

	return d
}

// Add records seconds for app on the day identified by key.
func (s Summary) Add(key, app string, seconds float64) {
	s.Day(key).Add(app, seconds)
}

// Total returns the total for key, or zero if the day was never seen.
func (s Summary) Total(key string) float64 {
	d, ok := s[key]
	if !ok || d == nil {
		return 0
	}

	return d.Total
}

// Keys returns the day keys, most recent first.
func (s Summary) Keys() []string {
	keys := slices.Collect(maps.Keys(s))

	slices.Sort(keys)
	slices.Reverse(keys)

	return keys
}

// Clone returns a deep copy of the summary.
func (s Summary) Clone() Summary {
	c := make(Summary, len(s))

	for k, d := range s {
		if d == nil {
			continue
		}

		c[k] = &Day{
			Total: d.Total,
			ByApp: maps.Clone(d.ByApp),
		}
	}

	return c
}

// sumTolerance absorbs floating point drift from many fractional ticks.
const sumTolerance = 1e-6

// Normalise repairs entries written by older releases: null days are
// dropped, days without a per-app breakdown have their total attributed to
// UnknownApp, and totals that disagree with the breakdown are replaced by the
// breakdown's sum. It returns the number of days that were changed.
func (s Summary) Normalise() int {
	var repaired int

	for key, d := range s {
		if d == nil {
			delete(s, key)
			repaired++

			continue
		}

		if len(d.ByApp) == 0 {
			if d.ByApp == nil {
				d.ByApp = make(map[string]float64)
			}

			if d.Total > 0 {
				d.ByApp[UnknownApp] = d.Total
				repaired++
			}

			continue
		}

		sum := d.Sum()
		if math.Abs(sum-d.Total) > sumTolerance {
			d.Total = sum
			repaired++
		}
	}

	return repaired
}
