package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kruskalFile = `
algorithm  = "kruskal"
node_count = 3

edge {
  from   = "1"
  to     = "2"
  weight = 1
}
edge {
  from   = "2"
  to     = "3"
  weight = 2
}
edge {
  from   = "1"
  to     = "3"
  weight = 5
}
edge {
  from   = "1"
  to     = "1"
  weight = 4
}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "algoviz dev\n", out)
}

func TestSteps_Kruskal(t *testing.T) {
	path := writeFile(t, "k.hcl", kruskalFile)
	out, errOut, err := execute(t, "steps", path, "--log-level=error")
	require.NoError(t, err)
	assert.Contains(t, out, "Start Kruskal's algorithm.")
	assert.Contains(t, out, "rejected")
	assert.True(t, strings.HasSuffix(out, "MST Total Cost: 3 | Edges in MST: 2\n"), out)
	assert.Contains(t, errOut, "dropped edge 1-1")
}

func TestSteps_AlgorithmOverride(t *testing.T) {
	path := writeFile(t, "k.hcl", kruskalFile)
	out, _, err := execute(t, "steps", path, "--algorithm=prim", "--start=2", "--markdown", "--log-level=error")
	require.NoError(t, err)
	assert.Contains(t, out, "| #")
	assert.Contains(t, out, "MST Total Cost: 3 | Nodes in MST: 2 → 1 → 3")
}

func TestSteps_ValidationError(t *testing.T) {
	path := writeFile(t, "k.hcl", kruskalFile)
	_, _, err := execute(t, "steps", path, "--algorithm=bfs", "--start=9", "--log-level=error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start")
}

func TestRun_TimerPlayback(t *testing.T) {
	path := writeFile(t, "b.hcl", `
algorithm  = "bfs"
node_count = 2
start      = "1"
edge {
  from = "1"
  to   = "2"
}
`)
	out, _, err := execute(t, "run", path, "--interval=1ms", "--narrate=false", "--history", "--log-level=error")
	require.NoError(t, err)
	assert.Contains(t, out, "  1/7")
	assert.Contains(t, out, "  7/7")
	assert.Contains(t, out, "BFS traversal complete.")
	assert.True(t, strings.HasSuffix(out, "Final order: 1 ➤ 2\n"), out)
}

func TestRun_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "algoviz.yaml", "playback:\n  interval: 1ms\nnarration:\n  enabled: false\nlog:\n  level: error\n")
	path := writeFile(t, "d.hcl", "algorithm = \"dfs\"\nnode_count = 1\nstart = \"1\"\n")
	out, _, err := execute(t, "run", path, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Final order: 1")
}

func TestBadFlags(t *testing.T) {
	_, _, err := execute(t, "version", "--log-format=xml")
	assert.Error(t, err)

	path := writeFile(t, "x.hcl", "node_count = 2\n")
	_, _, err = execute(t, "steps", path, "--log-level=error")
	assert.ErrorContains(t, err, "no algorithm set")
}

func TestGenerate_ThenSteps(t *testing.T) {
	out, _, err := execute(t, "generate", "wheel:5", "--algorithm=prim", "--seed=4", "--letters")
	require.NoError(t, err)
	assert.Contains(t, out, `start`)
	assert.Contains(t, out, `"A"`)

	path := writeFile(t, "wheel.hcl", out)
	steps, _, err := execute(t, "steps", path, "--log-level=error")
	require.NoError(t, err)
	assert.Contains(t, steps, "Nodes in MST: A")

	_, _, err = execute(t, "generate", "hexagon:6")
	assert.Error(t, err)
}
