package tracker

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/parkervanroy/sith/internal/apperr"
	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/models"
	"github.com/parkervanroy/sith/store"
)

// staleFactor is how many missed ticks make a status file stale.
const staleFactor = 3

var (
	ErrNotRunning = &apperr.Error{
		Message: "sith is not running",
	}

	errReadStatus = &apperr.Error{
		Message: "reading status file failed",
	}
)

func (t *Tracker) writeStatus(cfg *config.Config, snap Snapshot) {
	if t.statusPath == "" {
		return
	}

	st := models.Status{
		UpdatedAt:     snap.Time,
		App:           snap.App,
		Working:       snap.Working(),
		WorkedSeconds: snap.Worked,
		TodaySeconds:  snap.Today,
		Interval:      cfg.TickSeconds(),
	}

	if err := store.WriteJSON(t.statusPath, st); err != nil {
		slog.Debug("writing status file failed", slog.Any("error", err))
	}
}

func (t *Tracker) removeStatus() {
	if t.statusPath == "" {
		return
	}

	err := os.Remove(t.statusPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Debug("removing status file failed", slog.Any("error", err))
	}
}

// ReadStatus returns the status written by a running tracker. ErrNotRunning
// is returned when the file is missing or has not been refreshed for several
// tick intervals.
func ReadStatus(path string, now time.Time) (*models.Status, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotRunning
	}

	if err != nil {
		return nil, errReadStatus.Wrap(err)
	}

	var st models.Status

	if err := json.Unmarshal(b, &st); err != nil {
		return nil, errReadStatus.Wrap(err)
	}

	interval := time.Duration(st.Interval * float64(time.Second))
	if interval <= 0 {
		interval = time.Second
	}

	if now.Sub(st.UpdatedAt) > staleFactor*interval+time.Second {
		return nil, ErrNotRunning
	}

	return &st, nil
}
