package config

import (
	"os"
	"path/filepath"
)

// ResolveInclude searches paths in order for a file named name: a plain
// ordered directory search, since this formatter has no package system,
// only a flat include-path list. The first directory that contains name
// wins; a directory that does not exist is skipped silently rather than
// erroring, since include_paths only needs to be searched for resolving
// include directives, not a set of directories that must themselves exist.
func ResolveInclude(paths []string, name string) (string, bool) {
	for _, dir := range paths {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
