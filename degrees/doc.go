// Package degrees summarizes the degree structure of a bipartite graph,
// one side at a time.
//
// What:
//
//   - Sequence: every node's degree, in sorted node order.
//   - Average, StdDev: mean and sample spread of a side's degrees
//     (gonum/stat backed).
//   - Counts, Distribution: N(k) and P(k) = N(k)/n, the histogram
//     usually inspected log-log for heavy tails.
//
// Why:
//
//   - Degree statistics are the first sanity check on an interaction
//     dataset before motif counting: they bound the wedge work
//     Σ_v C(deg(v),2) and expose skew between the two sides.
//
// Errors:
//
//   - ErrGraphNil: nil graph pointer.
//
// Averages over an empty side and spreads over fewer than two nodes
// come back NaN, following the underlying gonum conventions.
package degrees
