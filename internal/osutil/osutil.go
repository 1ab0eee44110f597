package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const (
	DirPermission  = 0o755
	FilePermission = 0o644
	DBPermission   = 0o600
)
