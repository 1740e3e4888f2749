//go:build !darwin && !linux && !windows

package dynlib

type systemLoader struct{}

func (systemLoader) Open(string) (Handle, error) {
	return 0, ErrUnsupportedPlatform
}

func (systemLoader) Symbol(Handle, string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func (systemLoader) Close(Handle) error {
	return nil
}
