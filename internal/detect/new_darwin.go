//go:build darwin

package detect

// New returns the detector for the current platform.
func New() Detector {
	return NewDarwin(nil)
}
