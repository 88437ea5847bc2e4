package motifs

import (
	"fmt"
	"sort"

	"github.com/sabsconstantino/bipmotif/bipartite"
)

// arena is the dense integer view of one graph, built once per Count call
// and dropped when the call returns. Left nodes occupy ids [0, nLeft),
// right nodes [nLeft, nLeft+nRight); the caller's graph is never touched
// after the build.
type arena struct {
	// adj[v] lists v's neighbors as dense ids, sorted ascending.
	adj [][]int
	// deg[v] is v's degree at build time; read-only thereafter.
	deg []int
	// alive[v] is cleared when v is released. Neighbor lists of other
	// nodes may still carry a released id, so readers go through
	// neighbors rather than indexing adj directly.
	alive []bool
	// nLeft is the number of left nodes, isolated ones included.
	nLeft int
}

// newArena resolves the left/right partition of g and remaps every node
// to a dense integer id.
//
// Complexity: O((n_L+n_R) + E log E) time, O(n_L+n_R+E) memory.
func newArena(g *bipartite.Graph, o CountOptions) (*arena, error) {
	lefts, rights, err := partition(g, o)
	if err != nil {
		return nil, err
	}

	n := len(lefts) + len(rights)
	index := make(map[string]int, n)
	ordered := make([]string, 0, n)
	ordered = append(ordered, lefts...)
	ordered = append(ordered, rights...)
	for i, name := range ordered {
		index[name] = i
	}

	a := &arena{
		adj:   make([][]int, n),
		deg:   make([]int, n),
		alive: make([]bool, n),
		nLeft: len(lefts),
	}
	for i, name := range ordered {
		nbrs, _ := g.Neighbors(name) // names come from g itself
		row := make([]int, len(nbrs))
		for j, nb := range nbrs {
			row[j] = index[nb]
		}
		// Ascending ids make pair enumeration canonical (r1 < r2).
		sort.Ints(row)
		a.adj[i] = row
		a.deg[i] = len(row)
		a.alive[i] = true
	}
	return a, nil
}

// partition resolves every node of g to one side. With no explicit lists
// the sides recorded on the graph are used, in sorted node order;
// otherwise the lists classify every node, in list order.
func partition(g *bipartite.Graph, o CountOptions) (lefts, rights []string, err error) {
	if o.Left == nil && o.Right == nil {
		return g.Nodes(bipartite.Left), g.Nodes(bipartite.Right), nil
	}

	lefts = dedupe(o.Left)
	rights = dedupe(o.Right)

	side := make(map[string]bipartite.Side, len(lefts)+len(rights))
	for _, name := range lefts {
		if !g.HasNode(name) {
			return nil, nil, fmt.Errorf("%w: listed node %q not in graph", ErrPartitionUnknown, name)
		}
		side[name] = bipartite.Left
	}
	for _, name := range rights {
		if !g.HasNode(name) {
			return nil, nil, fmt.Errorf("%w: listed node %q not in graph", ErrPartitionUnknown, name)
		}
		if _, ok := side[name]; ok {
			return nil, nil, fmt.Errorf("%w: node %q listed on both sides", ErrPartitionConflict, name)
		}
		side[name] = bipartite.Right
	}

	// Every node of the graph must be classified.
	for _, s := range []bipartite.Side{bipartite.Left, bipartite.Right} {
		for _, name := range g.Nodes(s) {
			if _, ok := side[name]; !ok {
				return nil, nil, fmt.Errorf("%w: node %q not named by either list", ErrPartitionUnknown, name)
			}
		}
	}
	return lefts, rights, nil
}

// dedupe drops repeated names, keeping first occurrences in order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// release soft-deletes v: its adjacency slice is dropped so the memory
// can be reclaimed mid-pass, and its alive bit is cleared.
func (a *arena) release(v int) {
	a.adj[v] = nil
	a.alive[v] = false
}

// neighbors returns v's sorted neighbor ids, or nil once v is released.
func (a *arena) neighbors(v int) []int {
	if !a.alive[v] {
		return nil
	}
	return a.adj[v]
}
