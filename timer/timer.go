// Package timer renders the terminal HUD for a running tracker.
package timer

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/tracker"
)

// Timer is the bubbletea model of the HUD. It never touches the tracker's
// state directly: it renders snapshots and sends commands.
type Timer struct {
	cfg         *config.Store
	send        func(tracker.Command)
	snaps       <-chan tracker.Snapshot
	help        help.Model
	snap        tracker.Snapshot
	notice      string
	noColor     bool
	showSummary bool
}

// New returns a HUD model that reads snapshots from snaps and forwards key
// commands to send.
func New(
	cfg *config.Store,
	send func(tracker.Command),
	snaps <-chan tracker.Snapshot,
	noColor bool,
) *Timer {
	return &Timer{
		cfg:     cfg,
		send:    send,
		snaps:   snaps,
		help:    help.New(),
		noColor: noColor,
	}
}

// Run starts tr on its own goroutine and shows the HUD until the user quits
// or ctx is cancelled. The tracker is always stopped and saved before Run
// returns. tr must deliver its snapshots to snaps.
func Run(
	ctx context.Context,
	cfg *config.Store,
	tr *tracker.Tracker,
	snaps chan tracker.Snapshot,
	noColor bool,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)

	go func() {
		err := tr.Run(ctx)
		close(snaps)
		errc <- err
	}()

	p := tea.NewProgram(
		New(cfg, tr.Send, snaps, noColor),
		tea.WithContext(ctx),
	)

	_, err := p.Run()

	cancel()

	runErr := <-errc

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return runErr
}
