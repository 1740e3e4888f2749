package dynlib_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yuchanns.xyz/dynlib"
)

func TestPlatformRID(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	cases := map[dynlib.Platform]string{
		{Family: dynlib.Windows, Arch: dynlib.X86}:   "win-x86",
		{Family: dynlib.Windows, Arch: dynlib.X64}:   "win-x64",
		{Family: dynlib.Windows, Arch: dynlib.Arm}:   "win-arm",
		{Family: dynlib.Windows, Arch: dynlib.Arm64}: "win-arm64",
		{Family: dynlib.MacOS, Arch: dynlib.X64}:     "osx-x64",
		{Family: dynlib.MacOS, Arch: dynlib.Arm64}:   "osx-arm64",
		{Family: dynlib.Linux, Arch: dynlib.X86}:     "linux-x86",
		{Family: dynlib.Linux, Arch: dynlib.X64}:     "linux-x64",
		{Family: dynlib.Linux, Arch: dynlib.Arm}:     "linux-arm",
		{Family: dynlib.Linux, Arch: dynlib.Arm64}:   "linux-arm64",
	}
	for p, want := range cases {
		rid, ok := p.RID()
		assert.True(ok, p.String())
		assert.Equal(want, rid)

		parsed, err := dynlib.ParseRID(rid)
		assert.NoError(err)
		assert.Equal(p, parsed)
	}

	for _, p := range []dynlib.Platform{
		{Family: dynlib.MacOS, Arch: dynlib.X86},
		{Family: dynlib.MacOS, Arch: dynlib.Arm},
		{Family: dynlib.FamilyUnknown, Arch: dynlib.X64},
		{Family: dynlib.Linux, Arch: dynlib.ArchUnknown},
	} {
		rid, ok := p.RID()
		assert.False(ok, p.String())
		assert.Empty(rid)
	}
}

func TestSupportedArchitectures(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	all := []dynlib.Arch{dynlib.X86, dynlib.X64, dynlib.Arm, dynlib.Arm64}
	assert.Equal(all, dynlib.SupportedArchitectures(dynlib.Windows))
	assert.Equal(all, dynlib.SupportedArchitectures(dynlib.Linux))
	assert.Equal([]dynlib.Arch{dynlib.X64, dynlib.Arm64}, dynlib.SupportedArchitectures(dynlib.MacOS))
	assert.Empty(dynlib.SupportedArchitectures(dynlib.FamilyUnknown))

	archs := dynlib.SupportedArchitectures(dynlib.MacOS)
	archs[0] = dynlib.Arm
	assert.Equal(dynlib.X64, dynlib.SupportedArchitectures(dynlib.MacOS)[0])
}

func TestParse(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	p, err := dynlib.ParseRID("linux-musl-arm64")
	assert.NoError(err)
	assert.Equal(dynlib.Platform{Family: dynlib.Linux, Arch: dynlib.Arm64}, p)

	for _, rid := range []string{"", "win", "osx-x86", "freebsd-x64", "linux-mips"} {
		_, err := dynlib.ParseRID(rid)
		assert.ErrorIs(err, dynlib.ErrUnsupportedPlatform, rid)
	}

	f, err := dynlib.ParseFamily("Darwin")
	assert.NoError(err)
	assert.Equal(dynlib.MacOS, f)

	a, err := dynlib.ParseArch("amd64")
	assert.NoError(err)
	assert.Equal(dynlib.X64, a)

	_, err = dynlib.ParseFamily("plan9")
	assert.ErrorIs(err, dynlib.ErrUnsupportedPlatform)
}

func TestCurrent(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	p, err := dynlib.Current()
	switch runtime.GOOS {
	case "windows", "darwin", "linux":
	default:
		assert.ErrorIs(err, dynlib.ErrUnsupportedPlatform)
		return
	}
	assert.NoError(err)
	assert.True(p.IsCurrent())

	again, err := dynlib.Current()
	assert.NoError(err)
	assert.Equal(p, again)

	rid, ok := p.RID()
	exact, exactOK := dynlib.RuntimeIdentifier()
	assert.Equal(ok, exactOK)
	if ok && runtime.GOOS != "linux" {
		assert.Equal(rid, exact)
	}
}
