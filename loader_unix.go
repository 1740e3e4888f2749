//go:build darwin || linux

package dynlib

import (
	"github.com/ebitengine/purego"
)

type systemLoader struct{}

func (systemLoader) Open(path string) (Handle, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return Handle(h), nil
}

func (systemLoader) Symbol(h Handle, name string) (uintptr, error) {
	return purego.Dlsym(uintptr(h), name)
}

func (systemLoader) Close(h Handle) error {
	if h == 0 {
		return nil
	}
	return purego.Dlclose(uintptr(h))
}
