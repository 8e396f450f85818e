//go:build property
// +build property

package apidoc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	identifier := gen.RegexMatch(`^[A-Za-z][A-Za-z0-9_]{0,11}$`)
	sentence := gen.RegexMatch(`^[a-z]{1,8}( [a-z]{1,8}){0,5}\.$`)

	// N distinct headings produce N entries keyed by the lower-cased name.
	properties.Property("one entry per distinct section", prop.ForAll(
		func(names []string, desc string) bool {
			seen := make(map[string]bool)
			var b strings.Builder
			b.WriteString("# Reference\n\n## Functions\n\n")
			for _, n := range names {
				if seen[strings.ToLower(n)] {
					continue
				}
				seen[strings.ToLower(n)] = true
				fmt.Fprintf(&b, "### %s\n\n%s\n\n<hr>\n\n", n, desc)
			}
			docs, err := Parse(b.String())
			if err != nil || len(docs) != len(seen) {
				return false
			}
			for key := range seen {
				if _, ok := docs[key]; !ok {
					return false
				}
			}
			return true
		},
		gen.SliceOf(identifier),
		sentence,
	))

	// The comment block carries the description back out unchanged.
	properties.Property("comment round trip", prop.ForAll(
		func(lines []string) bool {
			desc := strings.TrimSpace(strings.Join(lines, "\n"))
			if desc == "" {
				return true
			}
			docs, err := Parse("### fn\n" + desc + "\n")
			if err != nil {
				return false
			}
			comment := docs["fn"].Comment()
			body := strings.TrimSuffix(strings.TrimPrefix(comment, "--[=[\n\n"), "\n\n]=]")
			out := strings.Split(body, "\n")
			for i, l := range out {
				out[i] = strings.TrimPrefix(l, "\t")
			}
			return strings.Join(out, "\n") == desc
		},
		gen.SliceOfN(4, sentence),
	))

	properties.TestingRun(t)
}
