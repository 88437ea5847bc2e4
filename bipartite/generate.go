package bipartite

import (
	"fmt"
	"math/rand"
)

// Complete returns the complete bipartite graph K_{nLeft,nRight}:
// left IDs "L0".."L<nLeft-1>", right IDs "R0".."R<nRight-1>", every
// cross pair connected. Emission order is i ascending over the left side,
// j ascending over the right side.
// Returns ErrBadPartSize unless both sizes are at least 1.
// Complexity: O(nLeft × nRight).
func Complete(nLeft, nRight int) (*Graph, error) {
	if nLeft < 1 || nRight < 1 {
		return nil, fmt.Errorf("%w: nLeft=%d, nRight=%d", ErrBadPartSize, nLeft, nRight)
	}
	g := New()
	for i := 0; i < nLeft; i++ {
		u := fmt.Sprintf("L%d", i)
		for j := 0; j < nRight; j++ {
			if err := g.AddEdge(u, fmt.Sprintf("R%d", j)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Random samples a bipartite graph over nLeft left and nRight right nodes,
// including each cross pair independently with probability p. All nodes are
// registered up front, so isolated nodes survive in the result. Trials run
// in stable (i asc, j asc) order, so a fixed seed reproduces the same graph.
// Returns ErrBadPartSize unless both sizes are at least 1, and
// ErrBadProbability unless 0 ≤ p ≤ 1.
// Complexity: O(nLeft × nRight) Bernoulli trials.
func Random(nLeft, nRight int, p float64, seed int64) (*Graph, error) {
	if nLeft < 1 || nRight < 1 {
		return nil, fmt.Errorf("%w: nLeft=%d, nRight=%d", ErrBadPartSize, nLeft, nRight)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%g", ErrBadProbability, p)
	}

	g := New()
	for i := 0; i < nLeft; i++ {
		if err := g.AddNode(fmt.Sprintf("L%d", i), Left); err != nil {
			return nil, err
		}
	}
	for j := 0; j < nRight; j++ {
		if err := g.AddNode(fmt.Sprintf("R%d", j), Right); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < nLeft; i++ {
		u := fmt.Sprintf("L%d", i)
		for j := 0; j < nRight; j++ {
			// Float64 lies in [0,1), so p=0 never fires and p=1 always does.
			if rng.Float64() < p {
				if err := g.AddEdge(u, fmt.Sprintf("R%d", j)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
