package timer

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/models"
	"github.com/parkervanroy/sith/internal/tracker"
)

type fixture struct {
	timer *Timer
	sent  []tracker.Command
	snaps chan tracker.Snapshot
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{snaps: make(chan tracker.Snapshot, 1)}

	cfg := config.NewStore(
		filepath.Join(t.TempDir(), "config.json"),
		config.Defaults(),
	)

	f.timer = New(cfg, func(c tracker.Command) {
		f.sent = append(f.sent, c)
	}, f.snaps, true)

	return f
}

func press(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func snapshot() tracker.Snapshot {
	return tracker.Snapshot{
		Time:   time.Date(2025, 12, 1, 10, 0, 0, 0, time.Local),
		App:    "Code",
		Worked: 3725,
		Today:  5400,
		State:  tracker.Working,
		TodayApps: []models.AppTime{
			{Name: "Code", Seconds: 3600},
			{Name: "Firefox", Seconds: 1800},
		},
	}
}

func TestViewShowsSessionAndStatus(t *testing.T) {
	f := newFixture(t)

	_, cmd := f.timer.Update(snapshotMsg(snapshot()))
	require.NotNil(t, cmd)

	view := f.timer.View()
	assert.Contains(t, view, "01:02:05")
	assert.Contains(t, view, "Code · ACTIVE")
	assert.NotContains(t, view, "Firefox")
}

func TestViewHidesStatusBar(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.timer.cfg.Update(func(c *config.Config) error {
		c.ShowStatusBar = false
		return nil
	}))

	f.timer.Update(snapshotMsg(snapshot()))

	assert.NotContains(t, f.timer.View(), "ACTIVE")
}

func TestSummaryToggle(t *testing.T) {
	f := newFixture(t)

	f.timer.Update(snapshotMsg(snapshot()))
	f.timer.Update(press('s'))

	view := f.timer.View()
	assert.Contains(t, view, "Code")
	assert.Contains(t, view, "Firefox")

	f.timer.Update(press('s'))
	assert.NotContains(t, f.timer.View(), "Firefox")
}

func TestKeysSendCommands(t *testing.T) {
	f := newFixture(t)

	f.timer.Update(press('r'))
	f.timer.Update(press('a'))

	assert.Equal(t, []tracker.Command{
		tracker.CmdReset,
		tracker.CmdAddCurrentApp,
	}, f.sent)
	assert.Contains(t, f.timer.View(), "Session reset")
}

func TestQuit(t *testing.T) {
	f := newFixture(t)

	_, cmd := f.timer.Update(press('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = f.timer.Update(trackerDoneMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestNotices(t *testing.T) {
	f := newFixture(t)

	snap := snapshot()
	snap.GoalReached = true
	f.timer.Update(snapshotMsg(snap))
	assert.Contains(t, f.timer.View(), "Daily goal reached")

	snap.GoalReached = false
	snap.Notice = "Slack is on the allowlist"
	f.timer.Update(snapshotMsg(snap))
	assert.Contains(t, f.timer.View(), "Slack is on the allowlist")
}

func TestWaitForSnapshot(t *testing.T) {
	ch := make(chan tracker.Snapshot, 1)

	ch <- snapshot()
	assert.IsType(t, snapshotMsg{}, waitForSnapshot(ch)())

	close(ch)
	assert.Equal(t, trackerDoneMsg{}, waitForSnapshot(ch)())
}
