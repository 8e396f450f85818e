// Package inject inserts doc comments from an API reference in front of the
// function a Luau module defines.
package inject

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"

	"github.com/agentflare-ai/luadoc/internal/apidoc"
	"github.com/agentflare-ai/luadoc/internal/locate"
	"github.com/agentflare-ai/luadoc/internal/scan"
)

var (
	// ErrNotDocumented means the API reference has no entry for the module.
	ErrNotDocumented = errors.New("function not found in documentation")
	// ErrNoAnchor means no definition line for the function was found.
	ErrNoAnchor = errors.New("injection failed")
)

// Result is the outcome for one file.
type Result struct {
	Path    string
	OK      bool
	Message string
	Err     error
}

// Injector writes doc comments from Docs into module files on FS.
type Injector struct {
	FS     afero.Fs
	Docs   apidoc.Docs
	DryRun bool
	Logger *log.Logger
}

// Render returns the file content before and after injection. The function
// documented is the one named after the file stem. The comment follows the
// file's line endings.
func (in *Injector) Render(path string) (before, after string, err error) {
	name := scan.Stem(path)
	entry, ok := in.Docs.Lookup(name)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrNotDocumented, name)
	}
	data, err := afero.ReadFile(in.FS, path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	before = string(data)
	pos, ok := locate.Find(before, name)
	if !ok {
		return before, "", fmt.Errorf("%w: no definition of %s in %s", ErrNoAnchor, name, path)
	}
	block := entry.Comment() + "\n\n"
	if strings.Contains(before, "\r\n") {
		block = strings.ReplaceAll(block, "\n", "\r\n")
	}
	after = before[:pos] + block + before[pos:]
	return before, after, nil
}

// Inject documents the file at path. Failures are reported in the result,
// never returned, so one bad file does not stop a batch.
func (in *Injector) Inject(path string) Result {
	_, after, err := in.Render(path)
	if err != nil {
		in.logger().Debug("skipping", "path", path, "err", err)
		return Result{Path: path, Message: err.Error(), Err: err}
	}
	if in.DryRun {
		in.logger().Debug("dry run", "path", path)
		return Result{Path: path, OK: true, Message: "dry run: doc comment not written"}
	}
	mode := os.FileMode(0o644)
	if info, err := in.FS.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := afero.WriteFile(in.FS, path, []byte(after), mode); err != nil {
		err = fmt.Errorf("write %s: %w", path, err)
		in.logger().Error("write failed", "path", path, "err", err)
		return Result{Path: path, Message: err.Error(), Err: err}
	}
	in.logger().Info("injected", "path", path)
	return Result{Path: path, OK: true, Message: "wrote doc comment to " + path}
}

// Diff returns a unified diff of the injection for path without writing.
func (in *Injector) Diff(path string) (string, error) {
	before, after, err := in.Render(path)
	if err != nil {
		return "", err
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	})
}

func (in *Injector) logger() *log.Logger {
	if in.Logger == nil {
		return log.Default()
	}
	return in.Logger
}
