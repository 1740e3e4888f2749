package dynlib

import (
	"errors"
	"fmt"
)

var (
	ErrPathEmpty           = errors.New("dynlib: the provided path is empty")
	ErrLibraryNotFound     = errors.New("dynlib: library not found")
	ErrUnsupportedPlatform = errors.New("dynlib: unsupported platform")
	ErrLibraryNotLoaded    = errors.New("dynlib: library has not been loaded")
	ErrSymbolNotFound      = errors.New("dynlib: symbol not found")
)

// LoadError is returned when the operating system refuses to map a library.
// Err carries the loader's own detail (dlerror or the Win32 error).
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dynlib: load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

type SymbolError struct {
	Name string
	Err  error
}

func (e *SymbolError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("dynlib: symbol %q not found", e.Name)
	}
	return fmt.Sprintf("dynlib: symbol %q not found: %v", e.Name, e.Err)
}

func (e *SymbolError) Unwrap() error { return e.Err }

func (e *SymbolError) Is(target error) bool { return target == ErrSymbolNotFound }

func notFound(name string, p Platform) error {
	return fmt.Errorf("%w: %q for %s", ErrLibraryNotFound, name, p)
}
