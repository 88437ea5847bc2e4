package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabsconstantino/bipmotif/bipartite"
)

// execute runs the root command with args, capturing combined output.
// Flag state is restored afterwards so tests stay independent.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(resetFlags)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	flagComment, flagDelimiter, flagSwap = "#", "", false
	flagManifest, flagDataset, flagJSON = "", "", false
	flagSide = "left"
	for _, name := range []string{"comment", "delimiter", "swap", "manifest", "dataset", "json"} {
		rootCmd.PersistentFlags().Lookup(name).Changed = false
	}
	degreesCmd.Flags().Lookup("side").Changed = false
}

func writeEdgeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// A square u1,u2 x o1,o2 with the pendant edge u3-o1.
const squareEdgeList = `# square plus pendant
u1 o1
u1 o2
u2 o1
u2 o2
u3 o1
`

func TestCountCommand_JSON(t *testing.T) {
	path := writeEdgeList(t, squareEdgeList)

	out, err := execute(t, "count", "--json", path)
	require.NoError(t, err)

	var got countOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3, got.LeftNodes)
	assert.Equal(t, 2, got.RightNodes)
	assert.Equal(t, 5, got.Edges)
	assert.Equal(t, int64(2), got.RightWedge)
	assert.Equal(t, int64(4), got.LeftWedge)
	assert.Equal(t, int64(1), got.Square)
	assert.Equal(t, int64(1), got.SquarePlusLeft)
	assert.Equal(t, int64(0), got.K32)
}

func TestCountCommand_Text(t *testing.T) {
	path := writeEdgeList(t, squareEdgeList)

	out, err := execute(t, "count", path)
	require.NoError(t, err)
	assert.Contains(t, out, "left nodes:   3")
	assert.Contains(t, out, "square:       1")
	assert.Contains(t, out, "square+left:  1")
}

func TestCountCommand_ManifestDataset(t *testing.T) {
	dir := t.TempDir()
	edges := filepath.Join(dir, "data", "m.tsv")
	require.NoError(t, os.MkdirAll(filepath.Dir(edges), 0o755))
	require.NoError(t, os.WriteFile(edges, []byte("a::x\nb::x\n"), 0o644))
	man := filepath.Join(dir, "datasets.yml")
	require.NoError(t, os.WriteFile(man, []byte(
		"datasets:\n  m:\n    path: data/m.tsv\n    delimiter: \"::\"\n"), 0o644))

	out, err := execute(t, "count", "--json", "--manifest", man, "--dataset", "m")
	require.NoError(t, err)

	var got countOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.LeftNodes)
	assert.Equal(t, 1, got.RightNodes)
	assert.Equal(t, 2, got.Edges)
	assert.Equal(t, int64(1), got.LeftWedge)
}

func TestCountCommand_NoInput(t *testing.T) {
	_, err := execute(t, "count")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input")
}

func TestCountCommand_DatasetWithoutManifest(t *testing.T) {
	_, err := execute(t, "count", "--dataset", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--manifest")
}

func TestDegreesCommand_JSON(t *testing.T) {
	path := writeEdgeList(t, squareEdgeList)

	out, err := execute(t, "degrees", "--json", "--side", "right", path)
	require.NoError(t, err)

	var got degreesOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "right", got.Side)
	assert.Equal(t, 2, got.Nodes)
	assert.Equal(t, 5, got.Edges)
	assert.InDelta(t, 2.5, got.Average, 1e-9)
	assert.InDelta(t, 0.5, got.Distribution[2], 1e-9)
	assert.InDelta(t, 0.5, got.Distribution[3], 1e-9)
}

func TestDegreesCommand_Text(t *testing.T) {
	path := writeEdgeList(t, squareEdgeList)

	out, err := execute(t, "degrees", path)
	require.NoError(t, err)
	assert.Contains(t, out, "side:     left")
	assert.Contains(t, out, "P(1) = 0.333333")
	assert.Contains(t, out, "P(2) = 0.666667")
}

func TestDegreesCommand_BadSide(t *testing.T) {
	path := writeEdgeList(t, squareEdgeList)

	_, err := execute(t, "degrees", "--side", "sideways", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestParseSide(t *testing.T) {
	s, err := parseSide("LEFT")
	require.NoError(t, err)
	assert.Equal(t, bipartite.Left, s)

	s, err = parseSide("right")
	require.NoError(t, err)
	assert.Equal(t, bipartite.Right, s)

	_, err = parseSide("both")
	assert.Error(t, err)
}
