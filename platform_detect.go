package dynlib

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

var goosFamilies = map[string]Family{
	"windows": Windows,
	"darwin":  MacOS,
	"linux":   Linux,
}

var goarchArchs = map[string]Arch{
	"386":   X86,
	"amd64": X64,
	"arm":   Arm,
	"arm64": Arm64,
}

var currentPlatform = sync.OnceValues(func() (Platform, error) {
	return detectPlatform(runtime.GOOS, runtime.GOARCH)
})

var currentRID = sync.OnceValues(func() (string, bool) {
	p, err := Current()
	if err != nil {
		return "", false
	}
	return exactRID(p, isMusl())
})

// Current returns the platform of the running process. The value is
// computed once.
func Current() (Platform, error) {
	return currentPlatform()
}

// RuntimeIdentifier returns the exact runtime identifier of the running
// process. It only differs from Current().RID() on musl based Linux
// distributions, where it is "linux-musl-<arch>".
func RuntimeIdentifier() (string, bool) {
	return currentRID()
}

func detectPlatform(goos, goarch string) (Platform, error) {
	f, ok := goosFamilies[goos]
	if !ok {
		return Platform{}, fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, goarch)
	}
	// an unknown architecture has no RID but is not fatal
	return Platform{Family: f, Arch: goarchArchs[goarch]}, nil
}

func exactRID(p Platform, musl bool) (string, bool) {
	rid, ok := p.RID()
	if !ok {
		return "", false
	}
	if musl && p.Family == Linux {
		return strings.Replace(rid, "linux-", "linux-musl-", 1), true
	}
	return rid, true
}

func isMusl() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	matches, err := filepath.Glob("/lib/ld-musl-*.so.1")
	return err == nil && len(matches) > 0
}
