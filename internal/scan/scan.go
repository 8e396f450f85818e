// Package scan lists the Luau source files of a directory that a tool should
// process.
package scan

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// DefaultPattern matches .lua and .luau in any letter case.
const DefaultPattern = "*.[lL][uU][aA]*"

// Config selects candidate files. Reserved stems are compared exactly.
type Config struct {
	Pattern        string
	Reserved       []string
	ReservedPrefix string
}

// DocComments is the selection used when injecting doc comments: modules
// that are not single documented functions are skipped.
func DocComments() Config {
	return Config{
		Pattern:        DefaultPattern,
		Reserved:       []string{"init", "lib", "Error", "None", "Types", "Symbol"},
		ReservedPrefix: "_",
	}
}

// Library is the selection used when generating lib.lua.
func Library() Config {
	return Config{
		Pattern:        DefaultPattern,
		Reserved:       []string{"init", "lib"},
		ReservedPrefix: "_",
	}
}

// Stem returns the base name of path without its final extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (c Config) excluded(stem string) bool {
	if c.ReservedPrefix != "" && strings.HasPrefix(stem, c.ReservedPrefix) {
		return true
	}
	for _, r := range c.Reserved {
		if stem == r {
			return true
		}
	}
	return false
}

// Candidates returns the sorted paths of the files directly inside dir that
// match cfg.Pattern and are not reserved.
func Candidates(fs afero.Fs, dir string, cfg Config) ([]string, error) {
	pattern := cfg.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid file pattern %q", pattern)
	}
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var paths []string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		name := info.Name()
		if ok, _ := doublestar.Match(pattern, name); !ok {
			continue
		}
		if cfg.excluded(Stem(name)) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}
