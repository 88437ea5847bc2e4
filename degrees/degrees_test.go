package degrees_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabsconstantino/bipmotif/bipartite"
	"github.com/sabsconstantino/bipmotif/degrees"
)

// buildStar returns one right hub adjacent to lefts u1..u4 plus the
// pendant pair u5-o2.
func buildStar(t *testing.T) *bipartite.Graph {
	t.Helper()
	g := bipartite.New()
	for _, l := range []string{"u1", "u2", "u3", "u4"} {
		require.NoError(t, g.AddEdge(l, "o1"))
	}
	require.NoError(t, g.AddEdge("u5", "o2"))
	return g
}

func TestSequence_SortedNodeOrder(t *testing.T) {
	g := buildStar(t)

	left, err := degrees.Sequence(g, bipartite.Left)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, left)

	right, err := degrees.Sequence(g, bipartite.Right)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1}, right) // o1, o2
}

func TestAverage(t *testing.T) {
	g := buildStar(t)

	left, err := degrees.Average(g, bipartite.Left)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, left, 1e-12)

	right, err := degrees.Average(g, bipartite.Right)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, right, 1e-12)
}

func TestStdDev(t *testing.T) {
	g := buildStar(t)

	// Right degrees are {4, 1}: sample stddev = sqrt(4.5).
	right, err := degrees.StdDev(g, bipartite.Right)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(4.5), right, 1e-12)

	left, err := degrees.StdDev(g, bipartite.Left)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, left, 1e-12)
}

func TestCountsAndDistribution(t *testing.T) {
	g := buildStar(t)

	counts, err := degrees.Counts(g, bipartite.Right)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 1, 4: 1}, counts)

	dist, err := degrees.Distribution(g, bipartite.Left)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 1.0}, dist)
}

func TestEmptySide(t *testing.T) {
	g := bipartite.New()
	require.NoError(t, g.AddNode("u1", bipartite.Left))

	seq, err := degrees.Sequence(g, bipartite.Right)
	require.NoError(t, err)
	assert.Empty(t, seq)

	avg, err := degrees.Average(g, bipartite.Right)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(avg))

	dist, err := degrees.Distribution(g, bipartite.Right)
	require.NoError(t, err)
	assert.Empty(t, dist)
}

func TestNilGraph(t *testing.T) {
	_, err := degrees.Sequence(nil, bipartite.Left)
	assert.ErrorIs(t, err, degrees.ErrGraphNil)

	_, err = degrees.Average(nil, bipartite.Left)
	assert.ErrorIs(t, err, degrees.ErrGraphNil)

	_, err = degrees.StdDev(nil, bipartite.Left)
	assert.ErrorIs(t, err, degrees.ErrGraphNil)

	_, err = degrees.Counts(nil, bipartite.Left)
	assert.ErrorIs(t, err, degrees.ErrGraphNil)

	_, err = degrees.Distribution(nil, bipartite.Left)
	assert.ErrorIs(t, err, degrees.ErrGraphNil)
}
