// Package apidoc splits a Markdown API reference into per-function
// documentation entries and renders them as Luau long-comment blocks.
//
// Every `###` heading starts an entry. The first whitespace-delimited token of
// the heading is the function name; everything after it, up to the next `##`
// or `###` heading, is the description.
package apidoc

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/spf13/afero"
)

// ErrNoDescription reports a heading that is not followed by any whitespace,
// so no description can be split off the function name.
var ErrNoDescription = errors.New("section has no description after the function name")

var (
	sectionPattern = regexp2.MustCompile(`###([\s\S]*?)(?=##|\z)`, regexp2.None)
	headingMarker  = regexp.MustCompile(`###\s`)
	tagsBlock      = regexp.MustCompile(`<span class="tags">[\s\S]*?</span>\s*`)
	horizontalRule = regexp.MustCompile(`<hr>`)
)

// Entry is the documentation for one function.
type Entry struct {
	Name        string
	Key         string
	Description string
}

// Comment renders the entry as a long-comment block, each description line
// indented by one tab.
func (e Entry) Comment() string {
	var b strings.Builder
	b.WriteString("--[=[\n\n")
	for _, line := range strings.Split(e.Description, "\n") {
		b.WriteString("\t")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n]=]")
	return b.String()
}

// Docs maps lower-cased function names to their entries.
type Docs map[string]Entry

// Lookup finds the entry for name, ignoring case.
func (d Docs) Lookup(name string) (Entry, bool) {
	e, ok := d[strings.ToLower(name)]
	return e, ok
}

// Names returns the keys in sorted order.
func (d Docs) Names() []string {
	names := make([]string, 0, len(d))
	for k := range d {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SectionError describes a section that could not be split.
type SectionError struct {
	Index   int
	Heading string
	Err     error
}

func (e *SectionError) Error() string {
	if e.Heading == "" {
		return fmt.Sprintf("section %d: %v", e.Index+1, e.Err)
	}
	return fmt.Sprintf("section %d (%q): %v", e.Index+1, e.Heading, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }

// Parse extracts one entry per `###` section of markdown. Malformed sections
// are reported as joined *SectionError values; the entries that could be
// built are returned either way. CRLF line endings are read as LF.
func Parse(markdown string) (Docs, error) {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	docs := make(Docs)
	var errs []error
	m, err := sectionPattern.FindStringMatch(markdown)
	for i := 0; m != nil; i++ {
		entry, serr := parseSection(m.GroupByNumber(1).String())
		if serr != nil {
			errs = append(errs, &SectionError{Index: i, Heading: firstLine(entry.Name), Err: serr})
		} else {
			docs[entry.Key] = entry
		}
		m, err = sectionPattern.FindNextMatch(m)
	}
	if err != nil {
		return docs, fmt.Errorf("scan sections: %w", err)
	}
	return docs, errors.Join(errs...)
}

func parseSection(section string) (Entry, error) {
	section = strings.TrimSpace(section)
	if loc := headingMarker.FindStringIndex(section); loc != nil {
		section = section[:loc[0]] + section[loc[1]:]
	}
	idx := strings.IndexFunc(section, unicode.IsSpace)
	if idx < 0 {
		return Entry{Name: section}, ErrNoDescription
	}
	_, size := utf8.DecodeRuneInString(section[idx:])
	name := section[:idx]
	desc := section[idx+size:]
	desc = tagsBlock.ReplaceAllString(desc, "")
	desc = horizontalRule.ReplaceAllString(desc, "")
	return Entry{
		Name:        name,
		Key:         strings.ToLower(name),
		Description: strings.TrimSpace(desc),
	}, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Load reads and parses the Markdown file at path.
func Load(fs afero.Fs, path string) (Docs, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read api reference: %w", err)
	}
	return Parse(string(data))
}
