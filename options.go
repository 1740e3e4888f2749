package dynlib

// Option configures a Resolver or a Library.
type Option func(*Resolver)

// WithEnvironment replaces the process environment the strategies probe.
func WithEnvironment(env Environment) Option {
	return func(r *Resolver) {
		r.env = env
	}
}

// WithManifest replaces DefaultManifest. A nil manifest declares no assets.
func WithManifest(m Manifest) Option {
	return func(r *Resolver) {
		r.manifest = m
	}
}

// WithPlatform makes the resolver act as if it ran on p. Get selects by it
// and the exact runtime identifier is derived from it.
func WithPlatform(p Platform) Option {
	return func(r *Resolver) {
		r.platform = p
		r.platformSet = true
	}
}

// WithRuntimeIdentifier overrides the exact runtime identifier of the
// running process, e.g. "linux-musl-x64".
func WithRuntimeIdentifier(rid string) Option {
	return func(r *Resolver) {
		r.rid = rid
	}
}

// WithBruteForce enables or disables the recursive search of the executable
// directory for every registration. Enabled by default.
func WithBruteForce(enabled bool) Option {
	return func(r *Resolver) {
		r.bruteForce = enabled
	}
}

type addConfig struct {
	resolve    bool
	bruteForce bool
}

type AddOption func(*addConfig)

// WithoutResolve registers the path only if it exists exactly as given.
func WithoutResolve() AddOption {
	return func(c *addConfig) {
		c.resolve = false
	}
}

// WithoutBruteForce skips the executable directory search for one call.
func WithoutBruteForce() AddOption {
	return func(c *addConfig) {
		c.bruteForce = false
	}
}

func (r *Resolver) addConfig(opts []AddOption) addConfig {
	c := addConfig{resolve: true, bruteForce: r.bruteForce}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
