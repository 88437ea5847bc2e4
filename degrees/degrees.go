// Package degrees computes per-side degree statistics of a bipartite
// graph: sequences, averages, and the degree distribution P(k).
package degrees

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/sabsconstantino/bipmotif/bipartite"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("degrees: graph is nil")

// Sequence returns the degree of every node on one side, in the sorted
// node order of Nodes(side).
// Complexity: O(n log n).
func Sequence(g *bipartite.Graph, side bipartite.Side) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	nodes := g.Nodes(side)
	seq := make([]int, len(nodes))
	for i, id := range nodes {
		d, _ := g.Degree(id) // ids come from g itself
		seq[i] = d
	}
	return seq, nil
}

// Average returns the mean degree of one side.
// A side with no nodes yields NaN.
// Complexity: O(n log n).
func Average(g *bipartite.Graph, side bipartite.Side) (float64, error) {
	seq, err := Sequence(g, side)
	if err != nil {
		return 0, err
	}
	return stat.Mean(toFloats(seq), nil), nil
}

// StdDev returns the sample standard deviation of one side's degrees.
// A side with fewer than two nodes yields NaN.
// Complexity: O(n log n).
func StdDev(g *bipartite.Graph, side bipartite.Side) (float64, error) {
	seq, err := Sequence(g, side)
	if err != nil {
		return 0, err
	}
	return stat.StdDev(toFloats(seq), nil), nil
}

// Counts returns N(k), the number of side nodes having degree k.
// Only observed degrees appear as keys.
// Complexity: O(n log n).
func Counts(g *bipartite.Graph, side bipartite.Side) (map[int]int, error) {
	seq, err := Sequence(g, side)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int)
	for _, d := range seq {
		counts[d]++
	}
	return counts, nil
}

// Distribution returns P(k) = N(k)/n, the fraction of side nodes having
// degree k. An empty side yields an empty map.
// Complexity: O(n log n).
func Distribution(g *bipartite.Graph, side bipartite.Side) (map[int]float64, error) {
	counts, err := Counts(g, side)
	if err != nil {
		return nil, err
	}
	n := float64(g.NodeCount(side))
	dist := make(map[int]float64, len(counts))
	for k, c := range counts {
		dist[k] = float64(c) / n
	}
	return dist, nil
}

// toFloats widens a degree sequence for the gonum stat helpers.
func toFloats(seq []int) []float64 {
	data := make([]float64, len(seq))
	for i, d := range seq {
		data[i] = float64(d)
	}
	return data
}
