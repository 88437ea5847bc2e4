package degrees_test

import (
	"fmt"

	"github.com/sabsconstantino/bipmotif/bipartite"
	"github.com/sabsconstantino/bipmotif/degrees"
)

// ExampleDistribution summarizes the right side of a small purchase graph.
func ExampleDistribution() {
	g := bipartite.New()
	_ = g.AddEdge("u1", "o1")
	_ = g.AddEdge("u2", "o1")
	_ = g.AddEdge("u3", "o1")
	_ = g.AddEdge("u3", "o2")

	avg, _ := degrees.Average(g, bipartite.Right)
	dist, _ := degrees.Distribution(g, bipartite.Right)

	fmt.Printf("average: %.1f\n", avg)
	fmt.Printf("P(1)=%.1f P(3)=%.1f\n", dist[1], dist[3])

	// Output:
	// average: 2.0
	// P(1)=0.5 P(3)=0.5
}
