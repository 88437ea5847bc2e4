package motifs

import (
	"github.com/sabsconstantino/bipmotif/bipartite"
)

// counter carries the pipeline state for one Count call.
type counter struct {
	a   *arena
	vec Vector
}

// Count computes the eight motif counts of the bipartite graph g,
// applying any number of functional Options.
//
// The pipeline runs four sequential stages: dense index normalization,
// degree capture, a right-right co-occurrence build deriving the
// right-anchored slots, then the mirrored left-left pass for the
// remaining slots. The right table is discarded before the left table is
// built, and each right node's adjacency is released as soon as its left
// pairs are harvested, so peak working memory is bounded by the larger
// of the two tables rather than their sum.
//
// g is only read and stays valid after the call; the destructive prune
// happens on a private arena. The call either returns the full vector or
// a zero Vector with a non-nil error, never partial counts. Counting is
// single-threaded, synchronous, and deterministic.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for invalid
// options, and ErrPartitionUnknown or ErrPartitionConflict when explicit
// partition lists do not classify every node exactly once.
//
// Complexity: O((n_L+n_R) + E log E + W) time with W = Σ_v C(deg(v),2),
// the wedge count of the graph; memory O(n_L + n_R + E) for the arena
// plus one co-occurrence table at a time.
func Count(g *bipartite.Graph, opts ...Option) (Vector, error) {
	if g == nil {
		return Vector{}, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Vector{}, o.err
	}

	a, err := newArena(g, o)
	if err != nil {
		return Vector{}, err
	}

	c := &counter{a: a}
	c.rightStage()
	c.leftStage()
	return c.vec, nil
}

// rightStage builds the right-right co-occurrence table over all left
// anchors, derives slots 0, 2, 3, 4, 5 and 7, and lets the table go out
// of scope before leftStage allocates its own.
func (c *counter) rightStage() {
	pc := newPairCounts()
	for v := 0; v < c.a.nLeft; v++ {
		c.harvest(pc, v)
	}
	c.deriveRight(pc)
}

// leftStage builds the left-left co-occurrence table over all right
// anchors and derives slots 1 and 6. Each right node is released as soon
// as its pairs are harvested.
func (c *counter) leftStage() {
	pc := newPairCounts()
	for v := c.a.nLeft; v < len(c.a.adj); v++ {
		c.harvest(pc, v)
		c.a.release(v)
	}
	c.deriveLeft(pc)
}

// harvest adds every unordered pair of v's neighbors to pc, one unit of
// co-occurrence per pair. Anchors with degree < 2 contribute nothing.
func (c *counter) harvest(pc *pairCounts, v int) {
	nbrs := c.a.neighbors(v)
	if len(nbrs) < 2 {
		return
	}
	for i := 0; i < len(nbrs)-1; i++ {
		for j := i + 1; j < len(nbrs); j++ {
			pc.add(nbrs[i], nbrs[j])
		}
	}
}

// deriveRight folds the right-right table into the right-anchored slots.
// For an entry {r1,r2} with count p and degree sum s = deg(r1)+deg(r2):
//
//	RightWedge     += p
//	WedgePlusLeft  += n_L - (s - p)      lefts adjacent to neither (inclusion-exclusion)
//	ThreePath      += s - 2              only where p == 1
//	Square         += C(p,2)
//	SquarePlusLeft += C(p,2) * (s - 2p)  lefts adjacent to exactly one
//	K32            += C(p,3)
//
// Iteration order over the table does not matter: every update is an
// integer addition.
func (c *counter) deriveRight(pc *pairCounts) {
	nL := int64(c.a.nLeft)
	for k, p := range pc.m {
		s := int64(c.a.deg[k.a] + c.a.deg[k.b])
		sq := p * (p - 1) / 2

		c.vec[RightWedge] += p
		c.vec[WedgePlusLeft] += nL - (s - p)
		if p == 1 {
			c.vec[ThreePath] += s - 2
		}
		c.vec[Square] += sq
		c.vec[SquarePlusLeft] += sq * (s - 2*p)
		c.vec[K32] += p * (p - 1) * (p - 2) / 6
	}
}

// deriveLeft folds the left-left table into the remaining slots. For an
// entry {l1,l2} with count q and degree sum s = deg(l1)+deg(l2):
//
//	LeftWedge       += q
//	SquarePlusRight += C(q,2) * (s - 2q)
func (c *counter) deriveLeft(pc *pairCounts) {
	for k, q := range pc.m {
		s := int64(c.a.deg[k.a] + c.a.deg[k.b])
		c.vec[LeftWedge] += q
		c.vec[SquarePlusRight] += q * (q - 1) / 2 * (s - 2*q)
	}
}
