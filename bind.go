//go:build darwin || linux || windows

package dynlib

import (
	"fmt"
	"reflect"

	"github.com/ebitengine/purego"
)

func registerFunc(fptr any, addr uintptr) (err error) {
	if rv := reflect.ValueOf(fptr); rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Func {
		return fmt.Errorf("dynlib: expected a pointer to a func, got %T", fptr)
	}
	// purego panics on signatures it cannot marshal
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dynlib: %v", r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}
