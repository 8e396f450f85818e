// Package locate finds the line in a Luau source file where a function is
// defined, so a doc comment can be inserted in front of it.
//
// This is a textual heuristic, not a parser: a definition-looking line inside
// a string or a long comment is reported like any other.
package locate

import (
	"regexp"
)

// Find returns the byte offset of the line defining name in src.
//
// `local function name(` and the generic form `local function name<` are
// tried first; only when neither appears does it fall back to
// `[local ]name = function`.
func Find(src, name string) (int, bool) {
	for _, re := range patterns(name) {
		if loc := re.FindStringIndex(src); loc != nil {
			return loc[0], true
		}
	}
	return -1, false
}

func patterns(name string) []*regexp.Regexp {
	quoted := regexp.QuoteMeta(name)
	return []*regexp.Regexp{
		regexp.MustCompile(`(?m)^local function ` + quoted + `[(<]`),
		regexp.MustCompile(`(?m)^(local\s)?` + quoted + ` ?= ?function`),
	}
}
