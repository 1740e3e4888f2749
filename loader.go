package dynlib

import "fmt"

// Handle is an opaque handle to a mapped library.
type Handle uintptr

// Loader maps libraries into the process and looks up their symbols.
type Loader interface {
	Open(path string) (Handle, error)
	Symbol(h Handle, name string) (uintptr, error)
	Close(h Handle) error
}

// NewLoader returns the operating system loader for p. Only libraries of
// the running operating system family can be loaded.
func NewLoader(p Platform) (Loader, error) {
	cur, err := Current()
	if err != nil {
		return nil, err
	}
	if p.Family != cur.Family {
		return nil, fmt.Errorf("%w: cannot load %s libraries on %s", ErrUnsupportedPlatform, p.Family, cur.Family)
	}
	return systemLoader{}, nil
}
