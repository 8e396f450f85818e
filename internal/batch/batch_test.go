package batch

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/agentflare-ai/luadoc/internal/inject"
)

func fake(path string) inject.Result {
	if path == "bad.lua" {
		return inject.Result{Path: path, Message: "function bad not found", Err: errors.New("nope")}
	}
	return inject.Result{Path: path, OK: true, Message: "ok"}
}

func TestRunAccumulatesInOrder(t *testing.T) {
	s := Run([]string{"a.lua", "bad.lua", "b.lua"}, fake)
	assert.Equal(t, []Outcome{{Path: "a.lua", Message: "ok"}, {Path: "b.lua", Message: "ok"}}, s.Successes)
	assert.Equal(t, []Outcome{{Path: "bad.lua", Message: "function bad not found"}}, s.Problems)
}

func TestPrintAllGood(t *testing.T) {
	var buf bytes.Buffer
	Run([]string{"a.lua"}, fake).Print(&buf, "generated")
	assert.Contains(t, buf.String(), "1 doc comments successfully generated.")
	assert.Contains(t, buf.String(), "All doc comments successfully injected!")
	assert.NotContains(t, buf.String(), "Problems")
}

func TestPrintProblems(t *testing.T) {
	var buf bytes.Buffer
	Run([]string{"bad.lua", "a.lua"}, fake).Print(&buf, "injected")
	out := buf.String()
	assert.Contains(t, out, "1 doc comments successfully injected.")
	assert.Contains(t, out, "Problems encountered:")
	assert.Contains(t, out, "bad.lua")
	assert.Contains(t, out, ": function bad not found")
	assert.NotContains(t, out, "All doc comments")
}

func TestWriteReport(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := Run([]string{"a.lua", "bad.lua"}, fake)
	require.NoError(t, s.WriteReport(fs, "/report.yaml"))

	data, err := afero.ReadFile(fs, "/report.yaml")
	require.NoError(t, err)
	var got Summary
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, *s, got)

	err = s.WriteReport(afero.NewReadOnlyFs(fs), "/other.yaml")
	require.Error(t, err)
}
