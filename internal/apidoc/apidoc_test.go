package apidoc

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reference = `# Dash

## Functions

### map

<span class="tags">
	function
</span>

Iterates through the elements of the _input_ table.

Returns a new table.

<hr>

### Filter
Keeps elements for which the handler returns true.
<hr>

## Types

### Error
Raised when a handler fails.
`

func TestParseSplitsSections(t *testing.T) {
	docs, err := Parse(reference)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"error", "filter", "map"}, docs.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	m, ok := docs.Lookup("MAP")
	require.True(t, ok)
	assert.Equal(t, "map", m.Name)
	assert.Equal(t, "Iterates through the elements of the _input_ table.\n\nReturns a new table.", m.Description)

	f, ok := docs.Lookup("filter")
	require.True(t, ok)
	assert.Equal(t, "Filter", f.Name)
	assert.Equal(t, "Keeps elements for which the handler returns true.", f.Description)
}

func TestCommentFormat(t *testing.T) {
	e := Entry{Name: "map", Key: "map", Description: "First line.\n\nSecond line."}
	want := "--[=[\n\n\tFirst line.\n\t\n\tSecond line.\n\n]=]"
	assert.Equal(t, want, e.Comment())
}

func TestParseStripsTagsAndRules(t *testing.T) {
	docs, err := Parse("### keys\n<span class=\"tags\">x</span>\n\n\nReturns keys.<hr>\n")
	require.NoError(t, err)
	e, ok := docs.Lookup("keys")
	require.True(t, ok)
	assert.Equal(t, "Returns keys.", e.Description)
	assert.NotContains(t, e.Comment(), "span")
}

func TestParseReportsSectionWithoutDescription(t *testing.T) {
	docs, err := Parse("### lonely\n## Next\n### ok desc\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDescription))

	var serr *SectionError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 0, serr.Index)
	assert.Contains(t, serr.Error(), "lonely")

	_, ok := docs.Lookup("ok")
	assert.True(t, ok, "valid sections are still returned")
	_, ok = docs.Lookup("lonely")
	assert.False(t, ok)
}

func TestParseDuplicateHeadingKeepsLast(t *testing.T) {
	docs, err := Parse("### Foo first\n### foo second\n")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	e, _ := docs.Lookup("foo")
	assert.Equal(t, "second", e.Description)
}

func TestParseEmptyDocument(t *testing.T) {
	docs, err := Parse("# Title\n\nNo functions here.\n")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/api.md", []byte(reference), 0o644))

	docs, err := Load(fs, "/docs/api.md")
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	_, err = Load(fs, "/docs/missing.md")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "read api reference"))
}

func TestParseMultiByteSeparator(t *testing.T) {
	for _, sep := range []string{"\u00a0", "\u3000", "\u2003"} {
		docs, err := Parse("### map" + sep + "Iterates the table.\n")
		require.NoError(t, err)
		e, ok := docs.Lookup("map")
		require.True(t, ok)
		assert.Equal(t, "Iterates the table.", e.Description)
		assert.True(t, utf8.ValidString(e.Comment()))
	}
}

func TestParseCRLF(t *testing.T) {
	docs, err := Parse("### map\r\nLine one.\r\nLine two.\r\n### keys\r\nReturns keys.\r\n")
	require.NoError(t, err)
	e, ok := docs.Lookup("map")
	require.True(t, ok)
	assert.Equal(t, "--[=[\n\n\tLine one.\n\tLine two.\n\n]=]", e.Comment())
	assert.NotContains(t, docs["keys"].Description, "\r")
}
