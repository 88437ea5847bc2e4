// Package bipmotif counts small subgraph patterns ("motifs") in large
// sparse bipartite graphs, exactly and without enumerating subgraphs:
// wedges, paths, 4-cycles and their one-node extensions.
//
// 🚀 What is bipmotif?
//
//	A library for offline analysis of two-class interaction data
//	(users × objects, customers × products, authors × papers):
//		• bipartite/ : the graph itself, with edge-list loading and
//		  deterministic generators for tests and benchmarks
//		• motifs/    : the counter, an 8-slot exact count vector derived
//		  from sparse pair co-occurrence, one synchronous pass per side
//		• degrees/   : degree sequences, averages and distributions
//		• cmd/       : the bipmotif CLI, counting motifs and degree
//		  stats straight from edge-list files
//
// ✨ Why bipmotif?
//
//   - Exact integer counts: int64 throughout, no floating-point drift,
//     magnitudes beyond 10^10 handled as a matter of course
//   - Memory-conscious: co-occurrence matrices are built, consumed and
//     released one side at a time, never held together
//   - Small API: load a graph, call motifs.Count, read eight numbers
//
// Quick ASCII example:
//
//	u1───o1
//	 │    │
//	u2───o2
//
//	a single "square": two users who both picked the same two objects.
//
//	go get github.com/sabsconstantino/bipmotif
package bipmotif
