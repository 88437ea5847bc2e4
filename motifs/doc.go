// Package motifs counts the eight smallest connected motifs of a sparse
// bipartite graph exactly, without enumerating subgraphs.
//
// What:
//
//   - Count runs a sequential four-stage pipeline: dense index
//     normalization, degree capture, a right-right co-occurrence build
//     with algebraic derivation of six slots, then the mirrored
//     left-left pass for the remaining two.
//   - The eight counts come back as a Vector, indexed by the Slot
//     constants: RightWedge, LeftWedge, WedgePlusLeft, ThreePath,
//     Square, SquarePlusLeft, SquarePlusRight, K32.
//   - All arithmetic is exact int64; totals on real interaction graphs
//     reach the order of 1e10.
//
// Why:
//
//   - Motif profiles characterize user-object interaction networks
//     (recommendation data, purchase logs) far more cheaply than
//     explicit subgraph enumeration.
//   - Wedge and square counts feed clustering-style coefficients for
//     bipartite data, where the usual triangle measures do not exist.
//
// Complexity:
//
//   - Count: O((n_L+n_R) + E log E + W) time with W = Σ_v C(deg(v),2)
//     the wedge count; memory O(n_L + n_R + E) plus one sparse
//     co-occurrence table at a time (the right table is discarded
//     before the left one is built).
//
// Options:
//
//   - WithPartition(left, right): classify every node explicitly instead
//     of trusting the sides recorded on the graph.
//
// Errors:
//
//   - ErrGraphNil: nil graph pointer.
//   - ErrPartitionUnknown: a node's side cannot be resolved.
//   - ErrPartitionConflict: a node listed on both sides.
//   - ErrOptionViolation: invalid Option supplied.
package motifs
