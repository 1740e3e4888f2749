//go:build !darwin && !linux && !windows

package dynlib

func registerFunc(any, uintptr) error {
	return ErrUnsupportedPlatform
}
