package stats

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/models"
	"github.com/parkervanroy/sith/internal/testutil"
	"github.com/parkervanroy/sith/internal/timeutil"
	"github.com/parkervanroy/sith/store"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

type TestCase struct {
	Name       string
	GoldenFile string
	Snapshot   []byte
}

func (t TestCase) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

func sampleSummary() models.Summary {
	s := models.Summary{}
	s.Add("2025-11-20", "Code", 10)
	s.Add("2025-12-01", "Safari", 120)
	s.Add("2025-12-01", "Code", 3600)
	s.Add("2025-12-02", "Code", 42)

	return s
}

func weekFilter() *config.FilterConfig {
	return &config.FilterConfig{
		StartTime: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, time.December, 7, 23, 59, 59, 0, time.UTC),
	}
}

func TestBuild(t *testing.T) {
	r := Build(sampleSummary(), weekFilter())

	require.Len(t, r.Days, 2)
	assert.Equal(t, "2025-12-02", r.Days[0].Date)
	assert.Equal(t, "2025-12-01", r.Days[1].Date)
	assert.Equal(t, "Code", r.Days[1].Apps[0].Name)
	assert.InDelta(t, 3762.0, r.Total, 1e-9)
	assert.Equal(t, 7, r.PeriodDays)
	assert.InDelta(t, 3762.0/7, r.Average, 1e-9)
}

func TestBuildAppFilter(t *testing.T) {
	f := weekFilter()
	f.Apps = []string{"Safari"}

	r := Build(sampleSummary(), f)

	require.Len(t, r.Days, 1)
	assert.Equal(t, "2025-12-01", r.Days[0].Date)
	assert.InDelta(t, 120.0, r.Total, 1e-9)
}

func TestBuildAllTimeStartsOnOldestDay(t *testing.T) {
	f := &config.FilterConfig{
		EndTime: time.Date(2025, time.December, 7, 23, 59, 59, 0, time.UTC),
		Period:  timeutil.PeriodAllTime,
	}

	r := Build(sampleSummary(), f)

	assert.Equal(t, "2025-11-20", timeutil.DayKey(r.Start))
	assert.Equal(t, 18, r.PeriodDays)
	require.Len(t, r.Days, 3)
}

func TestRenderGolden(t *testing.T) {
	r := Build(sampleSummary(), weekFilter())

	var text, js bytes.Buffer

	r.Render(&text, timeutil.StyleClock)
	require.NoError(t, r.JSON(&js))

	testutil.CompareGoldenFile(t, TestCase{
		Name:       "week report",
		GoldenFile: "week",
		Snapshot:   text.Bytes(),
	})

	testutil.CompareGoldenFile(t, TestCase{
		Name:       "week report as JSON",
		GoldenFile: "week_json",
		Snapshot:   js.Bytes(),
	})
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer

	Build(models.Summary{}, weekFilter()).Render(&buf, timeutil.StyleClock)

	assert.Equal(t, noDataMsg+"\n", buf.String())
}

func TestRenderHumanReadable(t *testing.T) {
	var buf bytes.Buffer

	ForDay(sampleSummary(), "2025-12-01").Render(&buf, timeutil.StyleHumanReadable)

	assert.Contains(t, buf.String(), "Dec 1, 2025  1 hour 2 minutes")
	assert.Contains(t, buf.String(), "2 minutes")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░░░░░░░░░░░", Bar(0))
	assert.Equal(t, "██████████░░░░░░░░░░", Bar(0.5))
	assert.Equal(t, "████████████████████", Bar(1.7))
}

func TestShow(t *testing.T) {
	db := store.NewFile(filepath.Join(t.TempDir(), "summary.json"))
	require.NoError(t, db.Save(sampleSummary()))

	var buf bytes.Buffer

	require.NoError(t, Show(&buf, db, weekFilter(), timeutil.StyleShortClock, false))

	assert.Contains(t, buf.String(), "Dec 1, 2025  01:02")
}
