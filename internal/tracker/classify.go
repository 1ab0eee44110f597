package tracker

import (
	"slices"

	"github.com/parkervanroy/sith/internal/detect"
)

// Allowlist is the set of application names that count as work.
type Allowlist []string

// Contains reports whether app is allowed. Unknown is never allowed.
func (a Allowlist) Contains(app string) bool {
	if app == "" || app == detect.Unknown {
		return false
	}

	return slices.Contains(a, app)
}

// Classify reports whether a sample counts as work: the frontmost app must be
// allowed and the user must have been idle for less than threshold seconds.
func Classify(app string, idle float64, allow Allowlist, threshold float64) bool {
	if idle >= threshold {
		return false
	}

	return allow.Contains(app)
}
