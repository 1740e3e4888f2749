package dynlib

import (
	"os"
	"path/filepath"
)

// Environment holds the read-only process facts the strategies probe.
type Environment struct {
	// WorkDir anchors relative names. Empty means the process working
	// directory, and resolved paths then stay relative.
	WorkDir string
	// ExecDir is the directory of the running executable, walked by the
	// brute force strategy.
	ExecDir string
	// BaseDir anchors manifest asset paths. Defaults to ExecDir.
	BaseDir string
	// HomeDir hosts the package cache (~/.nuget/packages).
	HomeDir string
	// SpecialFolders are probed in order on Windows: System, SystemX86,
	// Windows.
	SpecialFolders []string
}

// DefaultEnvironment queries the running process. Anything that cannot be
// determined is left empty and the strategies depending on it are skipped.
func DefaultEnvironment() Environment {
	var env Environment
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		env.ExecDir = filepath.Dir(exe)
	}
	env.BaseDir = env.ExecDir
	if home, err := os.UserHomeDir(); err == nil {
		env.HomeDir = home
	}
	env.SpecialFolders = specialFolders()
	return env
}

func (env Environment) abs(name string) string {
	if env.WorkDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(env.WorkDir, name)
}

func (env Environment) baseDir() string {
	if env.BaseDir != "" {
		return env.BaseDir
	}
	return env.ExecDir
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
