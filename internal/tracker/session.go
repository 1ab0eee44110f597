package tracker

import (
	"time"

	"github.com/parkervanroy/sith/internal/models"
)

// State is the classification of the most recent tick.
type State int

const (
	Idle State = iota
	Working
)

func (s State) String() string {
	if s == Working {
		return "ACTIVE"
	}

	return "IDLE"
}

// Session is the in-memory work counter for the lifetime of the process.
type Session struct {
	// CurrentApp is the last application credited with work, empty until
	// the first working tick.
	CurrentApp string
	Worked     float64
	State      State
}

// Snapshot is an immutable view of the tracker after a tick or a command.
type Snapshot struct {
	Time       time.Time
	App        string
	Idle       float64
	Worked     float64
	Today      float64
	State      State
	Transition bool
	// Notice is a one-off message for the user, such as the outcome of a
	// command.
	Notice string
	// TodayApps is today's per-app breakdown, longest first.
	TodayApps []models.AppTime
	// GoalReached is set on the tick where today's total first reaches the
	// daily goal.
	GoalReached bool
}

// Working reports whether the snapshot was taken in the Working state.
func (s Snapshot) Working() bool {
	return s.State == Working
}

// Channel returns a snapshot handler that forwards to ch without blocking.
// When ch is full the oldest pending snapshot is replaced, so a slow reader
// always sees the latest state. The handler must be the only sender on ch.
func Channel(ch chan Snapshot) func(Snapshot) {
	return func(s Snapshot) {
		select {
		case ch <- s:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}

		select {
		case ch <- s:
		default:
		}
	}
}
