// Package tray runs the tracker behind a menu-bar item.
package tray

import (
	"context"

	"github.com/getlantern/systray"

	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/static"
	"github.com/parkervanroy/sith/internal/tracker"
)

type menu struct {
	status *systray.MenuItem
	notice *systray.MenuItem
	reset  *systray.MenuItem
	add    *systray.MenuItem
	quit   *systray.MenuItem
}

func newMenu() *menu {
	icon := static.Icon()

	systray.SetTemplateIcon(icon, icon)
	systray.SetTooltip("sith")

	m := &menu{}

	m.status = systray.AddMenuItem(statusLine(tracker.Snapshot{}), "")
	m.status.Disable()

	m.notice = systray.AddMenuItem("", "")
	m.notice.Disable()
	m.notice.Hide()

	systray.AddSeparator()

	m.reset = systray.AddMenuItem("Reset", "Reset the session timer")
	m.add = systray.AddMenuItem(
		"Add current app",
		"Add the current app to the allowlist",
	)

	systray.AddSeparator()

	m.quit = systray.AddMenuItem("Quit", "Save and quit")

	return m
}

func (m *menu) render(cfg *config.Config, snap tracker.Snapshot) {
	systray.SetTitle(title(cfg, snap))
	m.status.SetTitle(statusLine(snap))

	if n := notice(snap); n != "" {
		m.notice.SetTitle(n)
		m.notice.Show()
	}
}

// loop updates the menu until the tracker stops, then quits the tray.
func (m *menu) loop(
	cancel context.CancelFunc,
	cfg *config.Store,
	send func(tracker.Command),
	snaps <-chan tracker.Snapshot,
) {
	defer systray.Quit()

	for {
		select {
		case snap, ok := <-snaps:
			if !ok {
				return
			}

			m.render(cfg.Current(), snap)
		case <-m.reset.ClickedCh:
			m.notice.Hide()
			send(tracker.CmdReset)
		case <-m.add.ClickedCh:
			send(tracker.CmdAddCurrentApp)
		case <-m.quit.ClickedCh:
			m.status.SetTitle("Saving...")
			cancel()
		}
	}
}

// Run starts tr and shows the menu-bar item until Quit is clicked or ctx is
// cancelled. It must be called from the main goroutine. The summary is saved
// before Run returns.
func Run(
	ctx context.Context,
	cfg *config.Store,
	tr *tracker.Tracker,
	snaps chan tracker.Snapshot,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)

	go func() {
		err := tr.Run(ctx)
		close(snaps)
		errc <- err
	}()

	onReady := func() {
		go newMenu().loop(cancel, cfg, tr.Send, snaps)
	}

	systray.Run(onReady, cancel)

	cancel()

	return <-errc
}
