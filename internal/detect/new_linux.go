//go:build linux

package detect

// New returns the detector for the current platform.
func New() Detector {
	return NewMutter(nil)
}
