// Package match answers read-only filesystem queries for the checker:
// single-level wildcard globbing and existence probes that keep
// "does not exist" apart from "could not be read".
package match

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob returns the entries under base matching pattern, joined back onto
// base and sorted lexically for reproducible output. Pattern uses
// shell-style wildcards, one path segment at a time ("run_*",
// "signal_supp_*/morphing_basis_vector_*"). A missing base yields zero
// matches, not an error; any other filesystem failure is returned.
func Glob(base, pattern string) ([]string, error) {
	info, err := os.Stat(base)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("match: stat %s: %w", base, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	names, err := doublestar.Glob(os.DirFS(base), pattern,
		doublestar.WithFailOnIOErrors(),
		doublestar.WithNoFollow(),
	)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("match: glob %s under %s: %w", pattern, base, err)
	}

	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, filepath.Join(base, filepath.FromSlash(n)))
	}
	sort.Strings(out)
	return out, nil
}

// Exists reports whether path exists. A non-existence result is not an
// error; anything else (e.g. permission denial on a parent) is.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("match: stat %s: %w", path, err)
}
