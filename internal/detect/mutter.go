package detect

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	focusedWindowDest   = "org.gnome.Shell"
	focusedWindowPath   = "/org/gnome/shell/extensions/FocusedWindow"
	focusedWindowMethod = "org.gnome.shell.extensions.FocusedWindow.Get"

	idleMonitorDest   = "org.gnome.Mutter.IdleMonitor"
	idleMonitorPath   = "/org/gnome/Mutter/IdleMonitor/Core"
	idleMonitorMethod = "org.gnome.Mutter.IdleMonitor.GetIdletime"
)

// BusCaller invokes a D-Bus method and stores its single return value in out.
type BusCaller interface {
	Call(ctx context.Context, dest, path, method string, out any) error
}

// focusedWindow is the subset of the FocusedWindow extension reply sith uses.
type focusedWindow struct {
	Title   string `json:"title"`
	WmClass string `json:"wm_class"`
}

// Mutter detects the focused window and idle time on GNOME through the
// Mutter IdleMonitor and the FocusedWindow shell extension.
type Mutter struct {
	bus BusCaller
}

// NewMutter returns a GNOME detector. A nil caller connects to the session
// bus on first use.
func NewMutter(bus BusCaller) *Mutter {
	if bus == nil {
		bus = &sessionBus{}
	}

	return &Mutter{bus: bus}
}

func (m *Mutter) FrontmostApp(ctx context.Context) string {
	var reply string

	err := m.bus.Call(
		ctx,
		focusedWindowDest,
		focusedWindowPath,
		focusedWindowMethod,
		&reply,
	)
	if err != nil {
		slog.Debug("focused window lookup failed", slog.Any("error", err))
		return Unknown
	}

	var w focusedWindow
	if err := json.Unmarshal([]byte(reply), &w); err != nil {
		slog.Debug("focused window reply invalid", slog.Any("error", err))
		return Unknown
	}

	if name := strings.TrimSpace(w.WmClass); name != "" {
		return name
	}

	return Unknown
}

func (m *Mutter) IdleSeconds(ctx context.Context) float64 {
	var ms uint64

	err := m.bus.Call(ctx, idleMonitorDest, idleMonitorPath, idleMonitorMethod, &ms)
	if err != nil {
		slog.Debug("idle time lookup failed", slog.Any("error", err))
		return 0
	}

	return float64(ms) / 1000
}

// sessionBus is a BusCaller backed by the user's D-Bus session bus.
type sessionBus struct {
	conn *dbus.Conn
	err  error
	once sync.Once
}

func (b *sessionBus) Call(ctx context.Context, dest, path, method string, out any) error {
	b.once.Do(func() {
		b.conn, b.err = dbus.ConnectSessionBus()
	})

	if b.err != nil {
		return b.err
	}

	obj := b.conn.Object(dest, dbus.ObjectPath(path))

	return obj.CallWithContext(ctx, method, 0).Store(out)
}
