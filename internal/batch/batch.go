// Package batch runs a per-file operation over candidate files and reports
// the outcome.
package batch

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/agentflare-ai/luadoc/internal/inject"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	problemStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Outcome is a file and what happened to it.
type Outcome struct {
	Path    string `yaml:"path"`
	Message string `yaml:"message"`
}

// Summary collects outcomes in the order files were processed.
type Summary struct {
	Successes []Outcome `yaml:"successes"`
	Problems  []Outcome `yaml:"problems"`
}

// Run applies fn to every path.
func Run(paths []string, fn func(path string) inject.Result) *Summary {
	s := &Summary{}
	for _, p := range paths {
		s.Add(fn(p))
	}
	return s
}

// Add files r under successes or problems.
func (s *Summary) Add(r inject.Result) {
	o := Outcome{Path: r.Path, Message: r.Message}
	if r.OK {
		s.Successes = append(s.Successes, o)
		return
	}
	s.Problems = append(s.Problems, o)
}

// Print writes the human-readable summary. verb completes
// "N doc comments successfully <verb>.".
func (s *Summary) Print(w io.Writer, verb string) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("%d doc comments successfully %s.", len(s.Successes), verb)))
	if len(s.Problems) == 0 {
		fmt.Fprintln(w, successStyle.Render("All doc comments successfully injected!"))
		return
	}
	fmt.Fprintln(w, problemStyle.Render("Problems encountered:"))
	for _, p := range s.Problems {
		fmt.Fprintf(w, "\t%s: %s\n", pathStyle.Render(p.Path), p.Message)
	}
}

// WriteReport stores the summary as YAML at path.
func (s *Summary) WriteReport(fs afero.Fs, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
