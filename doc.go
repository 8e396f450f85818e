// # luadoc
//
// `luadoc` keeps a Luau library's module files in sync with its Markdown API
// reference. It replaces the two scripts that used to live next to the
// library: one that copied `api.md` sections into doc comments and one that
// regenerated `lib.lua`.
//
// Key capabilities:
//
//   - split `api.md` into one entry per `###` heading; the first word of the
//     heading names the function, the rest is its description (tag spans and
//     `<hr>` separators are dropped).
//   - insert each entry as a `--[=[ ... ]=]` long comment directly above the
//     `local function name(` (or `name = function`) line of the module file
//     with the same name.
//   - regenerate `lib.lua`, a table that requires every sibling module.
//   - dry runs by default, with optional unified diffs and a YAML report.
//   - ship a Cobra-powered CLI with shell completion and a `gen-docs` helper.
//
// ## Usage
//
//	luadoc inject <api.md path> <directory path> [--inject]
//	luadoc lib <directory path> [--write]
//	luadoc show <api.md path> [function]
//
// Examples:
//
//   - Preview which modules would receive doc comments:
//
//     luadoc inject docs/api.md src --diff
//
//   - Write the doc comments:
//
//     luadoc inject docs/api.md src --inject
//
//   - Regenerate the aggregator:
//
//     luadoc lib src --write
//
// The single-dash spellings used by the old scripts (`-inject`, `-write`)
// are accepted too.
//
// ## Skipped Files
//
// Only files directly inside the directory whose extension matches
// `*.[lL][uU][aA]*` are considered. Names starting with `_` are always
// skipped. `inject` also skips `init`, `lib`, `Error`, `None`, `Types` and
// `Symbol`; `lib` skips `init` and `lib`.
//
// ## Matching Heuristic
//
// The definition line is found textually, not by parsing Luau. A line that
// looks like a definition inside a string or long comment is treated as the
// definition. Files without a matching line are reported and left untouched.
//
// ## Configuration
//
// An optional `.luadoc.yaml` in the working directory (or `--config FILE`)
// can override the defaults:
//
//	pattern: "*.[lL][uU][aA]*"
//	reserved_prefix: "_"
//	doc_reserved: [init, lib, Error, None, Types, Symbol]
//	lib_reserved: [init, lib]
//	lib_file: lib.lua
//
// Every key can also be set from the environment as `LUADOC_<KEY>`, for
// example `LUADOC_LIB_FILE=init.lua`.
//
// ## Shell Completion
//
//	luadoc completion bash        # bash
//	luadoc completion zsh         # zsh
//	luadoc completion fish | source
//	luadoc completion powershell | Out-String | Invoke-Expression
package main
