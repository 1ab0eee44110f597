// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/hako/durafmt"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// DayLayout is the layout of the ISO-8601 date keys used by the summary.
const DayLayout = "2006-01-02"

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// DisplayStyle controls how an accumulated number of seconds is rendered.
type DisplayStyle string

const (
	StyleClock         DisplayStyle = "HH:MM:SS"
	StyleShortClock    DisplayStyle = "HH:MM"
	StyleHumanReadable DisplayStyle = "Human Readable"
)

var DisplayStyles = []DisplayStyle{
	StyleClock,
	StyleShortClock,
	StyleHumanReadable,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// DayKey returns the summary key for the day t falls on.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDayKey parses a summary key in the given location.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayLayout, key, loc)
}

// HumanDate turns a day key such as "2025-12-01" into "Dec 1, 2025". Keys
// that cannot be parsed are returned unchanged.
func HumanDate(key string) string {
	t, err := time.Parse(DayLayout, key)
	if err != nil {
		return key
	}

	return t.Format("Jan 2, 2006")
}

// SplitSeconds breaks a whole number of seconds into hours, minutes and
// seconds.
func SplitSeconds(total int) (hrs, mins, secs int) {
	if total < 0 {
		total = 0
	}

	hrs = total / secondsInAnHour
	mins = (total % secondsInAnHour) / secondsInAMinute
	secs = total % secondsInAMinute

	return
}

// FormatSeconds renders seconds according to style. Fractional seconds are
// truncated. Unknown styles fall back to HH:MM:SS.
func FormatSeconds(seconds float64, style DisplayStyle) string {
	total := int(seconds)

	hrs, mins, secs := SplitSeconds(total)

	switch style {
	case StyleShortClock:
		return fmt.Sprintf("%02d:%02d", hrs, mins)
	case StyleHumanReadable:
		if total <= 0 {
			return "0 seconds"
		}

		d := time.Duration(total) * time.Second

		return durafmt.Parse(d).LimitFirstN(2).String()
	default:
		return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
	}
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// TimeRange returns the start and end time of period relative to now.
func TimeRange(period Period, now time.Time) (start, end time.Time) {
	start = RoundToStart(now)

	end = RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case PeriodToday:
		return
	case PeriodYesterday:
		start = RoundToStart(now.AddDate(0, 0, Range[period]))
		end = RoundToEnd(start)

		return
	case PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = RoundToStart(now.AddDate(0, 0, Range[period]))
	}

	return
}
