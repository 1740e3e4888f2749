//go:build !windows

package dynlib

func specialFolders() []string {
	return nil
}
