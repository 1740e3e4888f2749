//go:build windows

package dynlib

import (
	"github.com/phuslu/log"
	"golang.org/x/sys/windows"
)

func specialFolders() []string {
	var dirs []string

	system, err := windows.GetSystemDirectory()
	if err != nil {
		log.Debug().Msgf("GetSystemDirectory failed: %v", err)
	} else {
		dirs = append(dirs, system)
	}

	systemX86, err := windows.KnownFolderPath(windows.FOLDERID_SystemX86, 0)
	if err != nil {
		log.Debug().Msgf("KnownFolderPath(SystemX86) failed: %v", err)
	} else {
		dirs = append(dirs, systemX86)
	}

	win, err := windows.GetWindowsDirectory()
	if err != nil {
		log.Debug().Msgf("GetWindowsDirectory failed: %v", err)
	} else {
		dirs = append(dirs, win)
	}

	return dirs
}
