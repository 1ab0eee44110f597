package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/parkervanroy/sith/internal/tracker"
)

type snapshotMsg tracker.Snapshot

// trackerDoneMsg is sent when the tracker has stopped.
type trackerDoneMsg struct{}

// waitForSnapshot blocks until the tracker produces the next snapshot.
func waitForSnapshot(ch <-chan tracker.Snapshot) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return trackerDoneMsg{}
		}

		return snapshotMsg(s)
	}
}

func (t *Timer) Init() tea.Cmd {
	return waitForSnapshot(t.snaps)
}

func (t *Timer) handleSnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	t.snap = tracker.Snapshot(msg)

	if t.snap.Notice != "" {
		t.notice = t.snap.Notice
	} else if t.snap.GoalReached {
		t.notice = "Daily goal reached"
	}

	return t, waitForSnapshot(t.snaps)
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.reset):
		t.notice = "Session reset"
		t.send(tracker.CmdReset)
	case key.Matches(msg, defaultKeymap.addApp):
		t.send(tracker.CmdAddCurrentApp)
	case key.Matches(msg, defaultKeymap.summary):
		t.showSummary = !t.showSummary
	case key.Matches(msg, defaultKeymap.quit):
		return t, tea.Quit
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		if _, ok := msg.(snapshotMsg); !ok {
			slog.Debug(spew.Sdump(msg))
		}
	}

	switch msg := msg.(type) {
	case snapshotMsg:
		return t.handleSnapshot(msg)
	case trackerDoneMsg:
		return t, tea.Quit
	case tea.KeyMsg:
		return t.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		t.help.Width = msg.Width
	}

	return t, nil
}
