// Package osutil provides the file system helpers the generators share.
//
// Generators only ever write into a single icons directory, so these helpers
// stay small: create the directory, merge a staged tree into place, and list
// what ended up there.
package osutil

import (
	"os"

	"github.com/otiai10/copy"

	"github.com/ldm-project/ldm-assets/internal/config"
)

// Mkdir creates a directory and its parents. An existing directory is not an error.
func Mkdir(path string) error {
	return os.MkdirAll(path, config.DefaultDirPerms)
}

// Merge copies the contents of the src directory into dst, creating dst if
// needed and overwriting files that already exist there.
func Merge(src, dst string) error {
	opts := copy.Options{
		OnSymlink: func(src string) copy.SymlinkAction {
			return copy.Shallow
		},
		PermissionControl: copy.PerservePermission,
		OnDirExists: func(src, dst string) copy.DirExistsAction {
			return copy.Merge
		},
	}

	return copy.Copy(src, dst, opts)
}

// IsFile returns true if the path is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
