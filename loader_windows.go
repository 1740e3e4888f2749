//go:build windows

package dynlib

import (
	"golang.org/x/sys/windows"
)

type systemLoader struct{}

func (systemLoader) Open(path string) (Handle, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return Handle(h), nil
}

func (systemLoader) Symbol(h Handle, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(h), name)
}

func (systemLoader) Close(h Handle) error {
	if h == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(h))
}
