// Package tracker samples the desktop on every tick, classifies the user as
// working or idle and accumulates working time into the session counter and
// the persisted daily summary.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/detect"
	"github.com/parkervanroy/sith/internal/models"
	"github.com/parkervanroy/sith/internal/timeutil"
	"github.com/parkervanroy/sith/store"
)

const (
	detectTimeout = 2 * time.Second
	commandBuffer = 8
)

// Command is a request from a presentation layer, processed on the tracker
// goroutine between ticks.
type Command int

const (
	// CmdReset zeroes the session counter.
	CmdReset Command = iota
	// CmdAddCurrentApp adds the most recently detected app to the allowlist.
	CmdAddCurrentApp
	// CmdSave writes the summary immediately.
	CmdSave
)

// Tracker owns the work session and the summary. All of its methods except
// Send must be called from a single goroutine, normally the one running Run.
type Tracker struct {
	detector   detect.Detector
	db         store.DB
	notifier   Notifier
	cfg        *config.Store
	now        func() time.Time
	onSnapshot func(Snapshot)
	async      func(func())
	summary    models.Summary
	cmds       chan Command
	statusPath string
	lastApp    string
	last       Snapshot
	session    Session
	dirty      bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithNotifier sets the desktop notifier used for the daily goal.
func WithNotifier(n Notifier) Option {
	return func(t *Tracker) {
		t.notifier = n
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithStatusFile enables writing a status snapshot to path on every tick.
func WithStatusFile(path string) Option {
	return func(t *Tracker) {
		t.statusPath = path
	}
}

// WithSnapshotHandler registers fn to receive every snapshot produced by
// Run. fn is called on the tracker goroutine and must not block.
func WithSnapshotHandler(fn func(Snapshot)) Option {
	return func(t *Tracker) {
		t.onSnapshot = fn
	}
}

// New loads the summary from db and returns a tracker in the Idle state.
func New(
	d detect.Detector,
	cfg *config.Store,
	db store.DB,
	opts ...Option,
) (*Tracker, error) {
	summary, err := db.Load()
	if err != nil {
		return nil, err
	}

	if summary == nil {
		summary = models.Summary{}
	}

	t := &Tracker{
		detector: d,
		cfg:      cfg,
		db:       db,
		summary:  summary,
		notifier: NewDesktopNotifier(),
		now:      time.Now,
		async:    func(f func()) { go f() },
		cmds:     make(chan Command, commandBuffer),
	}

	for _, opt := range opts {
		opt(t)
	}

	key := timeutil.DayKey(t.now())

	t.last = Snapshot{
		Time:      t.now(),
		Today:     t.summary.Total(key),
		TodayApps: t.todayApps(key),
	}

	return t, nil
}

// Tick samples the detector once, updates the state machine and returns the
// resulting snapshot.
func (t *Tracker) Tick(ctx context.Context) Snapshot {
	cfg := t.cfg.Current()
	now := t.now()
	key := timeutil.DayKey(now)

	dctx, cancel := context.WithTimeout(ctx, detectTimeout)
	app := t.detector.FrontmostApp(dctx)
	idle := t.detector.IdleSeconds(dctx)

	cancel()

	if app != t.lastApp {
		t.appChanged(app)
	}

	prev := t.session.State
	before := t.summary.Total(key)

	if Classify(app, idle, Allowlist(cfg.Allowlist), cfg.IdleThreshold) {
		elapsed := cfg.TickSeconds()

		t.session.State = Working
		t.session.CurrentApp = app
		t.session.Worked += elapsed
		t.summary.Add(key, app, elapsed)
		t.dirty = true
	} else {
		t.session.State = Idle
	}

	snap := Snapshot{
		Time:       now,
		App:        app,
		Idle:       idle,
		State:      t.session.State,
		Worked:     t.session.Worked,
		Today:      t.summary.Total(key),
		TodayApps:  t.todayApps(key),
		Transition: t.session.State != prev,
	}

	if goal := cfg.DailyGoal(); goal > 0 && before < goal && snap.Today >= goal {
		snap.GoalReached = true
		t.goalReached(cfg, snap)
	}

	if snap.Transition {
		slog.Debug(
			"state changed",
			slog.String("state", snap.State.String()),
			slog.String("app", app),
			slog.Float64("idle", idle),
		)

		t.runTransitionCmd(cfg.TransitionCmd, snap)
	}

	t.writeStatus(cfg, snap)

	t.last = snap

	return snap
}

func (t *Tracker) todayApps(key string) []models.AppTime {
	d, ok := t.summary[key]
	if !ok || d == nil {
		return nil
	}

	return d.Apps()
}

func (t *Tracker) appChanged(app string) {
	t.lastApp = app

	if app == detect.Unknown {
		return
	}

	if err := t.cfg.TrackRecentApp(app); err != nil {
		slog.Warn("recording recent app failed", slog.Any("error", err))
	}
}

// Session returns a copy of the work session.
func (t *Tracker) Session() Session {
	return t.session
}

// Summary returns a copy of the in-memory summary.
func (t *Tracker) Summary() models.Summary {
	return t.summary.Clone()
}

// Snapshot returns the most recent snapshot.
func (t *Tracker) Snapshot() Snapshot {
	return t.last
}

// Reset zeroes the session counter. The summary is not modified.
func (t *Tracker) Reset() Snapshot {
	t.session.Worked = 0
	t.last.Worked = 0
	t.last.Transition = false
	t.last.GoalReached = false
	t.last.Notice = ""

	slog.Info("session reset")

	return t.last
}

// AddCurrentApp adds the most recently detected application to the
// allowlist and returns its name.
func (t *Tracker) AddCurrentApp() (string, error) {
	app := t.lastApp
	if app == "" {
		app = detect.Unknown
	}

	added, err := t.cfg.AllowApp(app)
	if err != nil {
		return app, err
	}

	if added {
		slog.Info("app added to allowlist", slog.String("app", app))
	}

	return app, nil
}

// Save writes the summary if it changed since the last successful save.
func (t *Tracker) Save() error {
	if !t.dirty {
		return nil
	}

	if err := t.db.Save(t.summary); err != nil {
		return err
	}

	t.dirty = false

	return nil
}

// Send queues cmd for the tracker goroutine. It never blocks; commands are
// dropped when the queue is full.
func (t *Tracker) Send(cmd Command) {
	select {
	case t.cmds <- cmd:
	default:
		slog.Warn("tracker command dropped", slog.Int("command", int(cmd)))
	}
}

func (t *Tracker) handle(cmd Command) Snapshot {
	switch cmd {
	case CmdReset:
		return t.Reset()
	case CmdAddCurrentApp:
		snap := t.last
		snap.Transition = false
		snap.GoalReached = false

		app, err := t.AddCurrentApp()
		if err != nil {
			snap.Notice = err.Error()
		} else {
			snap.Notice = fmt.Sprintf("%s is on the allowlist", app)
		}

		return snap
	case CmdSave:
		if err := t.Save(); err != nil {
			slog.Error("saving summary failed", slog.Any("error", err))
		}
	}

	return t.last
}

// Run ticks at the configured update interval until ctx is cancelled, then
// saves the summary one last time. Snapshots are delivered to the handler
// registered with WithSnapshotHandler.
func (t *Tracker) Run(ctx context.Context) error {
	cfg := t.cfg.Current()
	interval := cfg.Interval()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var autosave <-chan time.Time

	if d := cfg.Autosave(); d > 0 {
		saveTicker := time.NewTicker(d)
		defer saveTicker.Stop()

		autosave = saveTicker.C
	}

	slog.Info("tracker started", slog.String("config", cfg.String()))

	t.emit(t.last)

	for {
		select {
		case <-ctx.Done():
			t.removeStatus()

			err := t.Save()
			if err != nil {
				slog.Error("final save failed", slog.Any("error", err))
			}

			slog.Info(
				"tracker stopped",
				slog.Float64("worked_seconds", t.session.Worked),
			)

			return err
		case <-ticker.C:
			t.emit(t.Tick(ctx))

			if next := t.cfg.Current().Interval(); next != interval {
				interval = next
				ticker.Reset(interval)
			}
		case <-autosave:
			if err := t.Save(); err != nil {
				slog.Error("autosave failed", slog.Any("error", err))
			}
		case cmd := <-t.cmds:
			t.emit(t.handle(cmd))
		}
	}
}

func (t *Tracker) emit(snap Snapshot) {
	if t.onSnapshot != nil {
		t.onSnapshot(snap)
	}
}
