package config

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	dps "github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/parkervanroy/sith/internal/timeutil"
)

var (
	errInvalidDateRange = errors.New(
		"the start time must be earlier than the end time",
	)

	errInvalidPeriod = errors.New(
		"please provide a valid time period",
	)

	errInvalidSince = errors.New(
		"please provide a relative date such as '3 days ago'",
	)
)

// FilterConfig selects the days and applications shown in a report.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Apps      []string
	Period    timeutil.Period
}

// Filter builds a report filter from command-line arguments. Without any
// date flags the filter covers the last 7 days.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	return newFilter(
		time.Now(),
		ctx.String("period"),
		ctx.String("start"),
		ctx.String("end"),
		ctx.String("since"),
		ctx.String("app"),
	)
}

func newFilter(now time.Time, period, start, end, since, apps string) (*FilterConfig, error) {
	f := &FilterConfig{}

	if apps != "" {
		f.Apps = ParseAppList(apps)
	}

	p := timeutil.Period(strings.TrimSpace(period))

	if p != "" && !slices.Contains(timeutil.PeriodCollection, p) {
		return nil, errInvalidPeriod
	}

	if p == "" && start == "" && since == "" {
		p = timeutil.Period7Days
	}

	if p != "" {
		f.Period = p
		f.StartTime, f.EndTime = timeutil.TimeRange(p, now)

		return f, nil
	}

	if since != "" {
		date, err := dps.Parse(&dps.Configuration{CurrentTime: now}, since)
		if err != nil || date.Time.IsZero() {
			return nil, errInvalidSince
		}

		f.StartTime = timeutil.RoundToStart(date.Time.In(now.Location()))
	}

	if start != "" {
		dateTime, err := dateparse.ParseIn(start, now.Location())
		if err != nil {
			return nil, err
		}

		f.StartTime = dateTime
	}

	f.EndTime = timeutil.RoundToEnd(now)

	if end != "" {
		dateTime, err := dateparse.ParseIn(end, now.Location())
		if err != nil {
			return nil, err
		}

		f.EndTime = timeutil.RoundToEnd(dateTime)
	}

	if f.EndTime.Before(f.StartTime) {
		return nil, errInvalidDateRange
	}

	return f, nil
}

// Includes reports whether the day identified by key is within the filter.
func (f *FilterConfig) Includes(key string) bool {
	day, err := timeutil.ParseDayKey(key, f.EndTime.Location())
	if err != nil {
		return false
	}

	return !day.Before(timeutil.RoundToStart(f.StartTime)) &&
		!day.After(f.EndTime)
}

// IncludesApp reports whether app passes the --app filter.
func (f *FilterConfig) IncludesApp(app string) bool {
	return len(f.Apps) == 0 || slices.Contains(f.Apps, app)
}
