// Package bipartite provides the two-class interaction graph consumed by
// the motifs and degrees packages, plus ingestion and generation helpers.
//
// What:
//
//   - Graph holds two disjoint node sets (Left, Right) with undirected
//     edges only between classes; no multi-edges, no self-loops.
//   - Side labels are assigned on first use and enforced thereafter, so a
//     same-class edge is unrepresentable through this API.
//   - Load/LoadFile turn two-column edge lists (whitespace- or
//     delimiter-separated, comment lines skipped) into a Graph.
//   - Complete and Random generate K_{m,n} and seeded Bernoulli graphs
//     for tests and benchmarks.
//
// Why:
//
//   - Interaction datasets (user-object, customer-product) arrive as edge
//     tables; analysis needs O(1) adjacency, per-side enumeration, and a
//     class label per node.
//   - Deterministic generators make exactness oracles and benchmarks
//     reproducible.
//
// Complexity:
//
//   - AddNode/AddEdge/HasEdge/Degree: O(1).
//   - Neighbors: O(d log d); Nodes: O(n log n) (both sorted ascending).
//   - Load: O(E); Clone: O(V + E).
//
// Errors:
//
//   - ErrEmptyNodeID: a node ID is the empty string.
//   - ErrNodeNotFound: query for an unknown node.
//   - ErrSideConflict: an ID used on both sides.
//   - ErrBadEdgeLine: an edge-list line with fewer than two columns.
//   - ErrBadPartSize, ErrBadProbability: invalid generator parameters.
package bipartite
