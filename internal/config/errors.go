package config

import "github.com/parkervanroy/sith/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing config file failed",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidIdleThreshold = &apperr.Error{
		Message: "idle threshold must be a positive number of seconds, got %v",
	}

	errInvalidInterval = &apperr.Error{
		Message: "update interval must be between %dms and %dms, got %dms",
	}

	errInvalidAutosave = &apperr.Error{
		Message: "autosave interval cannot be negative, got %d",
	}

	errInvalidGoal = &apperr.Error{
		Message: "daily goal cannot be negative, got %d minutes",
	}

	errInvalidStyle = &apperr.Error{
		Message: "unknown time display style: %q (must be one of %v)",
	}

	errInvalidFont = &apperr.Error{
		Message: "unknown timer font family: %q (must be one of %v)",
	}

	errInvalidOpacity = &apperr.Error{
		Message: "window opacity must be between 0 and 1, got %v",
	}

	errInvalidStore = &apperr.Error{
		Message: "unknown store backend: %q (must be %q or %q)",
	}

	errInvalidTransitionCmd = &apperr.Error{
		Message: "transition command could not be parsed",
	}

	errEmptyAppName = &apperr.Error{
		Message: "application name cannot be empty",
	}

	errUnknownApp = &apperr.Error{
		Message: "cannot add %q: no frontmost application was detected",
	}

	errAppNotAllowed = &apperr.Error{
		Message: "%q is not on the allowlist",
	}

	errWatchConfig = &apperr.Error{
		Message: "watching config file failed",
	}

	errImportLegacy = &apperr.Error{
		Message: "importing legacy config from %s failed",
	}
)
