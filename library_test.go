package dynlib_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yuchanns.xyz/dynlib"
)

type fakeLoader struct {
	symbols map[string]uintptr
	openErr error
	opened  []string
	closed  int
}

func (l *fakeLoader) Open(path string) (dynlib.Handle, error) {
	if l.openErr != nil {
		return 0, l.openErr
	}
	l.opened = append(l.opened, path)
	return dynlib.Handle(0x1000), nil
}

func (l *fakeLoader) Symbol(_ dynlib.Handle, name string) (uintptr, error) {
	addr, ok := l.symbols[name]
	if !ok {
		return 0, errors.New("undefined symbol: " + name)
	}
	return addr, nil
}

func (l *fakeLoader) Close(dynlib.Handle) error {
	l.closed++
	return nil
}

func newLibrary(t *testing.T, loader dynlib.Loader) (*dynlib.Library, string) {
	t.Helper()
	work := t.TempDir()
	lib, err := dynlib.NewLibrary(loader,
		dynlib.WithPlatform(linuxX64),
		dynlib.WithEnvironment(dynlib.Environment{WorkDir: work}),
		dynlib.WithManifest(nil),
	)
	require.NoError(t, err)
	return lib, work
}

func TestLibraryLoad(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	loader := &fakeLoader{symbols: map[string]uintptr{"lua_newstate": 0x2000}}
	lib, work := newLibrary(t, loader)

	assert.ErrorIs(lib.Load(), dynlib.ErrLibraryNotFound)

	_, err := lib.Symbol("lua_newstate")
	assert.ErrorIs(err, dynlib.ErrLibraryNotLoaded)

	want := touch(t, work, "runtimes", "linux-x64", "liblua54.so")
	assert.NoError(lib.AddFamily("liblua54.so", dynlib.Linux))
	assert.NoError(lib.Load())
	assert.True(lib.Loaded())
	assert.Equal(want, lib.Path())
	assert.Equal([]string{want}, loader.opened)

	// loading twice keeps the first handle
	assert.NoError(lib.Load())
	assert.Len(loader.opened, 1)

	addr, err := lib.Symbol("lua_newstate")
	assert.NoError(err)
	assert.Equal(uintptr(0x2000), addr)

	_, err = lib.Symbol("lua_close")
	assert.ErrorIs(err, dynlib.ErrSymbolNotFound)
	var symErr *dynlib.SymbolError
	assert.ErrorAs(err, &symErr)
	assert.Equal("lua_close", symErr.Name)

	assert.NoError(lib.Close())
	assert.NoError(lib.Close())
	assert.Equal(1, loader.closed)
	assert.False(lib.Loaded())

	_, err = lib.Symbol("lua_newstate")
	assert.ErrorIs(err, dynlib.ErrLibraryNotLoaded)
}

func TestLibraryLoadError(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	osErr := errors.New("wrong ELF class: ELFCLASS32")
	lib, work := newLibrary(t, &fakeLoader{openErr: osErr})
	touch(t, work, "libfoo.so")
	assert.NoError(lib.Add("libfoo.so", linuxX64))

	err := lib.Load()
	var loadErr *dynlib.LoadError
	assert.ErrorAs(err, &loadErr)
	assert.ErrorIs(err, osErr)
	assert.Contains(err.Error(), "ELFCLASS32")
	assert.False(lib.Loaded())
}

type fooFFI struct {
	Init    func() int32 `ffi:"foo_init"`
	Version func() int32 `ffi:"foo_version"`
	Ignored func()
	Data    uintptr `ffi:"foo_data"`
}

func TestLibraryBindStruct(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	loader := &fakeLoader{symbols: map[string]uintptr{
		"foo_init":    0x3000,
		"foo_version": 0x3010,
	}}
	lib, work := newLibrary(t, loader)
	touch(t, work, "libfoo.so")
	assert.NoError(lib.Add("libfoo.so", linuxX64))

	var ffi fooFFI
	assert.ErrorIs(lib.BindStruct(&ffi), dynlib.ErrLibraryNotLoaded)

	assert.NoError(lib.Load())
	assert.NoError(lib.BindStruct(&ffi))
	assert.NotNil(ffi.Init)
	assert.NotNil(ffi.Version)
	assert.Nil(ffi.Ignored)

	assert.Error(lib.BindStruct(ffi))

	var missing struct {
		Fn func() `ffi:"foo_missing"`
	}
	assert.ErrorIs(lib.BindStruct(&missing), dynlib.ErrSymbolNotFound)

	var notFunc int
	assert.Error(lib.Bind(&notFunc, "foo_init"))
}
