package dynlib

import (
	"fmt"
	"slices"
	"strings"

	"github.com/phuslu/log"
)

// Resolver turns logical library names into files on disk and keeps at most
// one resolved Candidate per platform. It is not safe for concurrent use.
type Resolver struct {
	env         Environment
	manifest    Manifest
	platform    Platform
	platformSet bool
	rid         string
	bruteForce  bool

	paths []Candidate
}

// NewResolver returns an empty resolver for the running platform. It fails
// with ErrUnsupportedPlatform when the operating system is unknown, unless
// WithPlatform supplies one.
func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{bruteForce: true}
	r.init(opts)
	if !r.platformSet {
		p, err := Current()
		if err != nil {
			return nil, err
		}
		r.platform = p
	}
	return r, nil
}

func (r *Resolver) init(opts []Option) {
	r.env = DefaultEnvironment()
	r.manifest = DefaultManifest()
	for _, opt := range opts {
		opt(r)
	}
}

// Platform returns the platform Get selects for.
func (r *Resolver) Platform() Platform {
	return r.platform
}

func (r *Resolver) runtimeIdentifier() (string, bool) {
	if r.rid != "" {
		return r.rid, true
	}
	if r.platformSet {
		return r.platform.RID()
	}
	return RuntimeIdentifier()
}

// Resolve runs every strategy for name and returns the first hit, or an
// empty Candidate. It does not touch the registry.
func (r *Resolver) Resolve(name string, p Platform) (Candidate, error) {
	if isBlank(name) {
		return Candidate{}, ErrPathEmpty
	}
	cfg := r.addConfig(nil)
	return Candidate{Path: r.resolve(name, p, cfg), Platform: p}, nil
}

// Add resolves path for p and registers the result, replacing any previous
// entry for p. It fails with ErrLibraryNotFound when nothing matches.
func (r *Resolver) Add(path string, p Platform, opts ...AddOption) error {
	ok, err := r.TryAdd(path, p, opts...)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(path, p)
	}
	return nil
}

// TryAdd is Add without the not found error. The only error it returns is
// ErrPathEmpty.
func (r *Resolver) TryAdd(path string, p Platform, opts ...AddOption) (bool, error) {
	if isBlank(path) {
		return false, ErrPathEmpty
	}
	resolved := r.resolve(path, p, r.addConfig(opts))
	if resolved == "" {
		return false, nil
	}
	r.put(Candidate{Path: resolved, Platform: p})
	return true, nil
}

// AddFamily registers path for every architecture of f that it resolves
// for. Brute force is disabled so binaries of different architectures that
// share a file name are not mixed up. It fails only when no architecture
// resolved.
func (r *Resolver) AddFamily(path string, f Family, opts ...AddOption) error {
	n, err := r.TryAddFamily(path, f, opts...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q for any %s architecture", ErrLibraryNotFound, path, f)
	}
	return nil
}

// TryAddFamily is AddFamily returning the number of architectures
// registered instead of failing when there are none.
func (r *Resolver) TryAddFamily(path string, f Family, opts ...AddOption) (int, error) {
	if isBlank(path) {
		return 0, ErrPathEmpty
	}
	archs := SupportedArchitectures(f)
	if len(archs) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, f)
	}
	opts = append(slices.Clip(opts), WithoutBruteForce())

	var n int
	for _, a := range archs {
		ok, err := r.TryAdd(path, Platform{Family: f, Arch: a}, opts...)
		if err != nil {
			return n, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// Get returns the registered path for the running platform, or "".
func (r *Resolver) Get() string {
	for _, c := range r.paths {
		if c.Platform == r.platform {
			return c.Path
		}
	}
	return ""
}

// Candidates returns a copy of the registry.
func (r *Resolver) Candidates() []Candidate {
	return slices.Clone(r.paths)
}

func (r *Resolver) Len() int {
	return len(r.paths)
}

func (r *Resolver) put(c Candidate) {
	for i := range r.paths {
		if r.paths[i].Platform == c.Platform {
			log.Debug().Msgf("replace %s with %s", r.paths[i], c)
			r.paths[i] = c
			return
		}
	}
	r.paths = append(r.paths, c)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
