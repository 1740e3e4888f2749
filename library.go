package dynlib

import (
	"fmt"
	"reflect"

	"github.com/phuslu/log"
)

// Library is a native library: a Resolver collecting candidate paths plus
// the handle of the one loaded for the running platform.
type Library struct {
	*Resolver

	loader Loader
	handle Handle
	path   string
}

// NewLibrary creates an unloaded library. A nil loader selects the operating
// system loader for the resolver's platform.
func NewLibrary(loader Loader, opts ...Option) (*Library, error) {
	r, err := NewResolver(opts...)
	if err != nil {
		return nil, err
	}
	if loader == nil {
		loader, err = NewLoader(r.Platform())
		if err != nil {
			return nil, err
		}
	}
	return &Library{Resolver: r, loader: loader}, nil
}

// Load maps the path registered for the running platform. Loading an already
// loaded library is a no-op.
func (lib *Library) Load() error {
	if lib.handle != 0 {
		return nil
	}
	path := lib.Get()
	if path == "" {
		return fmt.Errorf("%w: no path registered for %s", ErrLibraryNotFound, lib.Platform())
	}
	if !fileExists(path) {
		return notFound(path, lib.Platform())
	}
	h, err := lib.loader.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	if h == 0 {
		return &LoadError{Path: path, Err: fmt.Errorf("loader returned a nil handle")}
	}
	log.Debug().Msgf("loaded %s", path)
	lib.handle = h
	lib.path = path
	return nil
}

func (lib *Library) Loaded() bool {
	return lib.handle != 0
}

// Path returns the path the library was loaded from.
func (lib *Library) Path() string {
	return lib.path
}

// Symbol returns the address of an exported symbol.
func (lib *Library) Symbol(name string) (uintptr, error) {
	if lib.handle == 0 {
		return 0, ErrLibraryNotLoaded
	}
	addr, err := lib.loader.Symbol(lib.handle, name)
	if err != nil {
		return 0, &SymbolError{Name: name, Err: err}
	}
	if addr == 0 {
		return 0, &SymbolError{Name: name}
	}
	return addr, nil
}

// Bind looks up name and stores a Go function calling it in fptr, which
// must be a pointer to a func variable.
func (lib *Library) Bind(fptr any, name string) error {
	addr, err := lib.Symbol(name)
	if err != nil {
		return err
	}
	return registerFunc(fptr, addr)
}

// BindStruct binds every func field of the struct v points to that carries
// an `ffi:"symbol"` tag. Untagged fields are left alone.
func (lib *Library) BindStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dynlib: BindStruct needs a pointer to a struct, got %T", v)
	}
	t := rv.Elem().Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Type.Kind() != reflect.Func {
			continue
		}
		fname := field.Tag.Get("ffi")
		if fname == "" {
			continue
		}
		if err := lib.Bind(rv.Elem().Field(i).Addr().Interface(), fname); err != nil {
			return fmt.Errorf("bind %s: %w", field.Name, err)
		}
	}
	return nil
}

// Close unmaps the library. Functions bound from it must not be called
// afterwards. Closing twice is a no-op.
func (lib *Library) Close() error {
	if lib.handle == 0 {
		return nil
	}
	err := lib.loader.Close(lib.handle)
	log.Debug().Msgf("closed %s", lib.path)
	lib.handle = 0
	lib.path = ""
	return err
}
