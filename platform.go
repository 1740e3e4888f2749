package dynlib

import (
	"fmt"
	"strings"
)

// Family is an operating system family.
type Family uint8

const (
	FamilyUnknown Family = iota
	Windows
	MacOS
	Linux
)

// Arch is a CPU architecture.
type Arch uint8

const (
	ArchUnknown Arch = iota
	X86
	X64
	Arm
	Arm64
)

var familyNames = [...]string{
	FamilyUnknown: "unknown",
	Windows:       "windows",
	MacOS:         "macos",
	Linux:         "linux",
}

var archNames = [...]string{
	ArchUnknown: "unknown",
	X86:         "x86",
	X64:         "x64",
	Arm:         "arm",
	Arm64:       "arm64",
}

// ridPrefixes are the family part of a runtime identifier.
var ridPrefixes = map[Family]string{
	Windows: "win",
	MacOS:   "osx",
	Linux:   "linux",
}

var supportedArchs = map[Family][]Arch{
	Windows: {X86, X64, Arm, Arm64},
	MacOS:   {X64, Arm64},
	Linux:   {X86, X64, Arm, Arm64},
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return familyNames[FamilyUnknown]
}

func (a Arch) String() string {
	if int(a) < len(archNames) {
		return archNames[a]
	}
	return archNames[ArchUnknown]
}

// SupportedArchitectures returns the architectures a family can run. It is
// used to fan a family-only registration out into one per architecture.
func SupportedArchitectures(f Family) []Arch {
	archs := supportedArchs[f]
	out := make([]Arch, len(archs))
	copy(out, archs)
	return out
}

// Platform pairs an operating system family with an architecture.
type Platform struct {
	Family Family
	Arch   Arch
}

func (p Platform) String() string {
	return p.Family.String() + "/" + p.Arch.String()
}

// RID returns the runtime identifier of p, e.g. "win-x64" or "osx-arm64".
// Combinations the family does not support have no identifier.
func (p Platform) RID() (string, bool) {
	prefix, ok := ridPrefixes[p.Family]
	if !ok {
		return "", false
	}
	for _, a := range supportedArchs[p.Family] {
		if a == p.Arch {
			return prefix + "-" + a.String(), true
		}
	}
	return "", false
}

// IsCurrent reports whether p is the platform of the running process.
func (p Platform) IsCurrent() bool {
	cur, err := Current()
	return err == nil && cur == p
}

func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(s) {
	case "windows", "win":
		return Windows, nil
	case "macos", "osx", "darwin":
		return MacOS, nil
	case "linux":
		return Linux, nil
	}
	return FamilyUnknown, fmt.Errorf("%w: unknown os family %q", ErrUnsupportedPlatform, s)
}

func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "x86", "386", "i386":
		return X86, nil
	case "x64", "amd64", "x86_64":
		return X64, nil
	case "arm":
		return Arm, nil
	case "arm64", "aarch64":
		return Arm64, nil
	}
	return ArchUnknown, fmt.Errorf("%w: unknown architecture %q", ErrUnsupportedPlatform, s)
}

// ParseRID is the inverse of Platform.RID. Qualified identifiers such as
// "linux-musl-x64" map to their base platform.
func ParseRID(rid string) (Platform, error) {
	parts := strings.Split(rid, "-")
	if len(parts) < 2 {
		return Platform{}, fmt.Errorf("%w: malformed runtime identifier %q", ErrUnsupportedPlatform, rid)
	}
	for f, prefix := range ridPrefixes {
		if parts[0] != prefix {
			continue
		}
		a, err := ParseArch(parts[len(parts)-1])
		if err != nil {
			return Platform{}, err
		}
		p := Platform{Family: f, Arch: a}
		if _, ok := p.RID(); !ok {
			return Platform{}, fmt.Errorf("%w: %s does not support %s", ErrUnsupportedPlatform, f, a)
		}
		return p, nil
	}
	return Platform{}, fmt.Errorf("%w: unknown runtime identifier %q", ErrUnsupportedPlatform, rid)
}
