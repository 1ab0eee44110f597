package store

import "github.com/parkervanroy/sith/internal/apperr"

var (
	errSithRunning = &apperr.Error{
		Message: "is sith already running? Only one instance can be active at a time",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown store backend: %q",
	}

	errReadSummary = &apperr.Error{
		Message: "reading summary from %s failed",
	}

	errWriteSummary = &apperr.Error{
		Message: "writing summary to %s failed",
	}

	errReadOnly = &apperr.Error{
		Message: "summary store %s is read-only",
	}

	errMigrate = &apperr.Error{
		Message: "importing legacy summary from %s failed",
	}
)
