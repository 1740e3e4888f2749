package dynlib

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/phuslu/log"
)

// Asset is a native file declared by an application dependency. Path is
// relative to the application base directory.
type Asset struct {
	Path           string
	LibraryName    string
	LibraryVersion string
}

// Manifest lists the native assets an application declares per runtime
// identifier. A nil Manifest declares nothing.
type Manifest interface {
	NativeAssetsFor(rid string) []Asset
}

type ManifestAsset struct {
	// RID is empty for assets that apply to every runtime identifier.
	RID  string `toml:"rid"`
	Path string `toml:"path"`
}

type ManifestLibrary struct {
	Name    string          `toml:"name"`
	Version string          `toml:"version"`
	Assets  []ManifestAsset `toml:"asset"`
}

// StaticManifest is an in-memory Manifest. It is also the shape of the TOML
// manifest format:
//
//	[[library]]
//	name = "SkiaSharp.NativeAssets.Linux"
//	version = "2.88.6"
//
//	[[library.asset]]
//	rid = "linux-x64"
//	path = "runtimes/linux-x64/native/libSkiaSharp.so"
type StaticManifest struct {
	Libraries []ManifestLibrary `toml:"library"`
}

// NativeAssetsFor returns, library by library, the assets declared for rid.
// A library without any asset for rid contributes its RID-agnostic assets.
// Entries without a path are skipped.
func (m *StaticManifest) NativeAssetsFor(rid string) []Asset {
	if m == nil {
		return nil
	}
	var out []Asset
	for _, lib := range m.Libraries {
		specific := lib.assets(rid)
		if len(specific) == 0 && rid != "" {
			specific = lib.assets("")
		}
		out = append(out, specific...)
	}
	return out
}

func (lib ManifestLibrary) assets(rid string) []Asset {
	var out []Asset
	for _, a := range lib.Assets {
		if a.RID != rid || a.Path == "" {
			continue
		}
		out = append(out, Asset{
			Path:           a.Path,
			LibraryName:    lib.Name,
			LibraryVersion: lib.Version,
		})
	}
	return out
}

// LoadManifest reads a manifest file. Files ending in .json are parsed as
// .deps.json dependency files, files ending in .toml as StaticManifest.
func LoadManifest(path string) (*StaticManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseDepsJSON(data)
	case ".toml":
		var m StaticManifest
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
		return &m, nil
	}
	return nil, fmt.Errorf("unknown manifest format %q", path)
}

type depsFile struct {
	RuntimeTarget struct {
		Name string `json:"name"`
	} `json:"runtimeTarget"`
	Targets map[string]map[string]depsTargetLibrary `json:"targets"`
}

type depsTargetLibrary struct {
	RuntimeTargets map[string]depsRuntimeTarget `json:"runtimeTargets"`
	Native         map[string]json.RawMessage   `json:"native"`
}

type depsRuntimeTarget struct {
	RID       string `json:"rid"`
	AssetType string `json:"assetType"`
}

// ParseDepsJSON converts the native assets of a .deps.json dependency file
// into a StaticManifest. Only the runtime target is read when one is named;
// otherwise every target is. Libraries and assets are sorted so lookups are
// deterministic.
func ParseDepsJSON(data []byte) (*StaticManifest, error) {
	var deps depsFile
	if err := json.Unmarshal(data, &deps); err != nil {
		return nil, fmt.Errorf("parse deps.json: %w", err)
	}

	targets := slices.Sorted(maps.Keys(deps.Targets))
	if _, ok := deps.Targets[deps.RuntimeTarget.Name]; ok {
		targets = []string{deps.RuntimeTarget.Name}
	}

	m := &StaticManifest{}
	for _, target := range targets {
		libs := deps.Targets[target]
		for _, key := range slices.Sorted(maps.Keys(libs)) {
			name, version, ok := strings.Cut(key, "/")
			if !ok {
				log.Debug().Msgf("skip deps.json library %q: no version", key)
				continue
			}
			lib := ManifestLibrary{Name: name, Version: version}
			entry := libs[key]
			for _, path := range slices.Sorted(maps.Keys(entry.RuntimeTargets)) {
				rt := entry.RuntimeTargets[path]
				if rt.AssetType != "native" || rt.RID == "" {
					continue
				}
				lib.Assets = append(lib.Assets, ManifestAsset{RID: rt.RID, Path: path})
			}
			for _, path := range slices.Sorted(maps.Keys(entry.Native)) {
				lib.Assets = append(lib.Assets, ManifestAsset{Path: path})
			}
			if len(lib.Assets) > 0 {
				m.Libraries = append(m.Libraries, lib)
			}
		}
	}
	return m, nil
}

var defaultManifest = sync.OnceValue(func() Manifest {
	exe, err := os.Executable()
	if err != nil {
		return nil
	}
	stem := strings.TrimSuffix(exe, filepath.Ext(exe))
	for _, candidate := range []string{stem + ".deps.json", stem + ".deps.toml"} {
		if !fileExists(candidate) {
			continue
		}
		m, err := LoadManifest(candidate)
		if err != nil {
			log.Warn().Msgf("ignore manifest %s: %v", candidate, err)
			return nil
		}
		log.Debug().Msgf("use manifest %s", candidate)
		return m
	}
	return nil
})

// DefaultManifest returns the manifest shipped next to the executable as
// <exe>.deps.json or <exe>.deps.toml, or nil when there is none.
func DefaultManifest() Manifest {
	return defaultManifest()
}
