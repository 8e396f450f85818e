// Package libgen generates the lib.lua aggregator that re-exports every
// sibling module of a directory.
package libgen

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/agentflare-ai/luadoc/internal/scan"
)

// DefaultFile is the aggregator file name.
const DefaultFile = "lib.lua"

// Generate returns the aggregator source for stems, sorted.
func Generate(stems []string) string {
	sorted := append([]string(nil), stems...)
	sort.Strings(sorted)
	lines := make([]string, 0, len(sorted)+2)
	lines = append(lines, "return {")
	for _, s := range sorted {
		lines = append(lines, fmt.Sprintf("    %s = require(script.Parent.%s),", s, s))
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// Build scans dir and generates its aggregator.
func Build(fs afero.Fs, dir string, cfg scan.Config) (string, error) {
	paths, err := scan.Candidates(fs, dir, cfg)
	if err != nil {
		return "", err
	}
	stems := make([]string, len(paths))
	for i, p := range paths {
		stems[i] = scan.Stem(p)
	}
	return Generate(stems), nil
}

// Write stores content as name inside dir, replacing any existing file, and
// returns the path written.
func Write(fs afero.Fs, dir, name, content string) (string, error) {
	if name == "" {
		name = DefaultFile
	}
	path := filepath.Join(dir, name)
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
