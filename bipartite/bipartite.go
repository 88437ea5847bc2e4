// Package bipartite provides an in-memory bipartite graph: two disjoint
// node classes (Left and Right) with undirected edges only between classes,
// no multi-edges and no self-loops. It is the input structure consumed by
// the motifs and degrees packages.
package bipartite

import (
	"fmt"
	"sort"
)

// Graph is an undirected bipartite graph over string node IDs.
// Each node carries a Side label assigned on first use; an ID can never
// appear on both sides. Parallel edges collapse into one.
// The zero value is not usable; construct with New.
type Graph struct {
	adj   map[string]map[string]struct{} // node ID → neighbor set
	side  map[string]Side                // node ID → class label
	edges int
}

// New returns an empty bipartite graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		adj:  make(map[string]map[string]struct{}),
		side: make(map[string]Side),
	}
}

// AddNode registers an isolated node with the given side.
// Adding an existing node with the same side is a no-op.
// Returns ErrEmptyNodeID for an empty ID, or ErrSideConflict if the node
// already carries the opposite label.
// Complexity: O(1).
func (g *Graph) AddNode(id string, s Side) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if have, ok := g.side[id]; ok {
		if have != s {
			return fmt.Errorf("%w: %q is already %s", ErrSideConflict, id, have)
		}
		return nil
	}
	g.side[id] = s
	g.adj[id] = make(map[string]struct{})

	return nil
}

// AddEdge inserts the undirected edge left-right, registering both
// endpoints if needed. A duplicate edge is a no-op.
// Returns ErrEmptyNodeID for an empty ID, or ErrSideConflict when an
// endpoint already carries the opposite label (including left == right).
// The graph is unchanged on error.
// Complexity: O(1).
func (g *Graph) AddEdge(left, right string) error {
	if left == "" || right == "" {
		return ErrEmptyNodeID
	}
	if left == right {
		return fmt.Errorf("%w: %q on both endpoints", ErrSideConflict, left)
	}
	// Validate both labels before mutating anything.
	if have, ok := g.side[left]; ok && have != Left {
		return fmt.Errorf("%w: %q is already %s", ErrSideConflict, left, have)
	}
	if have, ok := g.side[right]; ok && have != Right {
		return fmt.Errorf("%w: %q is already %s", ErrSideConflict, right, have)
	}
	_ = g.AddNode(left, Left)
	_ = g.AddNode(right, Right)

	if _, dup := g.adj[left][right]; dup {
		return nil
	}
	g.adj[left][right] = struct{}{}
	g.adj[right][left] = struct{}{}
	g.edges++

	return nil
}

// HasNode reports whether the node exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.side[id]
	return ok
}

// HasEdge reports whether the edge exists, in either argument order.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adj[a][b]
	return ok
}

// SideOf returns the node's class label.
// Returns ErrNodeNotFound for an unknown ID.
// Complexity: O(1).
func (g *Graph) SideOf(id string) (Side, error) {
	s, ok := g.side[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return s, nil
}

// Degree returns the number of edges incident to the node.
// Returns ErrNodeNotFound for an unknown ID.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return len(nbrs), nil
}

// Neighbors returns the node's neighbor IDs sorted ascending.
// The slice is a copy; mutating it does not affect the graph.
// Returns ErrNodeNotFound for an unknown ID.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(id string) ([]string, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// Nodes returns all node IDs of one side, sorted ascending.
// Complexity: O(n log n).
func (g *Graph) Nodes(s Side) []string {
	out := make([]string, 0, len(g.side))
	for id, have := range g.side {
		if have == s {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// NodeCount returns the number of nodes on one side.
// Complexity: O(n).
func (g *Graph) NodeCount(s Side) int {
	c := 0
	for _, have := range g.side {
		if have == s {
			c++
		}
	}
	return c
}

// EdgeCount returns the number of distinct edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Clone returns a deep copy of the graph, fully independent of the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		adj:   make(map[string]map[string]struct{}, len(g.adj)),
		side:  make(map[string]Side, len(g.side)),
		edges: g.edges,
	}
	for id, s := range g.side {
		c.side[id] = s
	}
	for id, nbrs := range g.adj {
		set := make(map[string]struct{}, len(nbrs))
		for n := range nbrs {
			set[n] = struct{}{}
		}
		c.adj[id] = set
	}

	return c
}
