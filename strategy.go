package dynlib

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/phuslu/log"
)

var errFound = errors.New("found")

type request struct {
	name   string
	target Platform
	cfg    addConfig
}

type strategy struct {
	name    string
	resolve func(r *Resolver, req request) (string, bool)
}

// strategies run in order until one of them finds an existing file.
var strategies = []strategy{
	{"direct", resolveDirect},
	{"exact-rid", resolveExactRID},
	{"guessed-rid", resolveGuessedRID},
	{"special-folder", resolveSpecialFolder},
	{"dependency", resolveDependency},
	{"brute-force", resolveBruteForce},
}

func (r *Resolver) resolve(name string, target Platform, cfg addConfig) string {
	req := request{name: name, target: target, cfg: cfg}
	if !cfg.resolve {
		path, _ := resolveDirect(r, req)
		return path
	}
	for _, s := range strategies {
		if path, ok := s.resolve(r, req); ok {
			log.Debug().Msgf("%s resolved %q for %s: %s", s.name, name, target, path)
			return path
		}
	}
	log.Debug().Msgf("no strategy resolved %q for %s", name, target)
	return ""
}

func (r *Resolver) probe(paths ...string) (string, bool) {
	for _, p := range paths {
		p = r.env.abs(p)
		if fileExists(p) {
			return p, true
		}
	}
	return "", false
}

func ridPaths(rid, name string) []string {
	return []string{
		filepath.Join(rid, name),
		filepath.Join("runtimes", rid, name),
	}
}

func resolveDirect(r *Resolver, req request) (string, bool) {
	return r.probe(req.name)
}

// resolveExactRID is limited to the running platform: during a family
// fan-out the running identifier would otherwise match every architecture.
func resolveExactRID(r *Resolver, req request) (string, bool) {
	if req.target != r.platform {
		return "", false
	}
	rid, ok := r.runtimeIdentifier()
	if !ok {
		return "", false
	}
	return r.probe(ridPaths(rid, req.name)...)
}

func resolveGuessedRID(r *Resolver, req request) (string, bool) {
	rid, ok := req.target.RID()
	if !ok {
		return "", false
	}
	return r.probe(ridPaths(rid, req.name)...)
}

func resolveSpecialFolder(r *Resolver, req request) (string, bool) {
	if r.platform.Family != Windows {
		return "", false
	}
	for _, dir := range r.env.SpecialFolders {
		if dir == "" {
			continue
		}
		if path, ok := r.probe(filepath.Join(dir, req.name)); ok {
			return path, true
		}
	}
	return "", false
}

func resolveDependency(r *Resolver, req request) (string, bool) {
	if r.manifest == nil {
		return "", false
	}
	var rids []string
	if req.target == r.platform {
		if rid, ok := r.runtimeIdentifier(); ok {
			rids = append(rids, rid)
		}
	}
	if rid, ok := req.target.RID(); ok && (len(rids) == 0 || rids[0] != rid) {
		rids = append(rids, rid)
	}

	for _, rid := range rids {
		for _, asset := range r.manifest.NativeAssetsFor(rid) {
			if !assetMatches(asset, req.name) {
				continue
			}
			rel := filepath.FromSlash(asset.Path)
			if path, ok := r.probe(filepath.Join(r.env.baseDir(), rel)); ok {
				return path, true
			}
			if r.env.HomeDir == "" {
				continue
			}
			cached := filepath.Join(r.env.HomeDir, ".nuget", "packages", req.name,
				strings.ToLower(asset.LibraryName), asset.LibraryVersion, rel)
			if path, ok := r.probe(cached); ok {
				return path, true
			}
		}
	}
	return "", false
}

func assetMatches(asset Asset, name string) bool {
	if asset.Path == "" || name == "" {
		return false
	}
	base := filepath.Base(filepath.FromSlash(asset.Path))
	return base == name || strings.TrimSuffix(base, filepath.Ext(base)) == name
}

func resolveBruteForce(r *Resolver, req request) (string, bool) {
	if !req.cfg.bruteForce || r.env.ExecDir == "" {
		return "", false
	}
	// a file name never matches a path with separators
	if strings.ContainsAny(req.name, `/\`) {
		return "", false
	}

	var found string
	err := doublestar.GlobWalk(os.DirFS(r.env.ExecDir), "**/"+quoteMeta(req.name),
		func(path string, d os.DirEntry) error {
			if d.IsDir() || filepath.Base(path) != req.name {
				return nil
			}
			full := filepath.Join(r.env.ExecDir, filepath.FromSlash(path))
			if !fileExists(full) {
				return nil
			}
			found = full
			return errFound
		})
	if err != nil && !errors.Is(err, errFound) {
		log.Debug().Msgf("brute force search for %q in %s failed: %v", req.name, r.env.ExecDir, err)
	}
	return found, found != ""
}

func quoteMeta(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch c {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
