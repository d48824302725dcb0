package osutil

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobIn expands a glob pattern relative to a base directory and returns
// sorted paths joined with baseDir. Supports doublestar (**) and {a,b}
// alternatives.
func GlobIn(baseDir, pattern string) ([]string, error) {
	var opts []doublestar.GlobOption
	if runtime.GOOS == "windows" {
		opts = append(opts, doublestar.WithNoFollow())
	}

	matches, err := doublestar.Glob(os.DirFS(baseDir), pattern, opts...)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = filepath.Join(baseDir, m)
	}
	return result, nil
}
