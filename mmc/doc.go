// Package mmc implements Karp's algorithm for finding a directed cycle of
// minimum mean arc length (a minimum mean cycle, MMC) in a finite directed
// multigraph built with lvlath's core.Graph.
//
// Given a graph and a per-arc length function, the engine either reports
// that the graph is acyclic, or produces the mean length of the cheapest
// directed cycle together with an explicit arc-by-arc walk achieving it.
// Internally it decomposes the graph into strongly connected components
// (core.Graph offers no SCC of its own, so mmc carries a small Tarjan pass),
// then for each component fills a layered shortest-walk table D[v][k] —
// the length of the cheapest walk of exactly k arcs from a fixed root to v —
// and reads the minimum cycle mean off that table via Karp's inner-maximum
// characterization.
//
// The accumulator type (LargeValue in Karp's original terminology) is a type
// parameter: NewIntKarp fixes it to int64 with exact comparisons, NewFloatKarp
// fixes it to float64 with an epsilon-tolerant comparison. The two modes
// never mix within a single search.
//
// The engine is single-threaded, performs no I/O, and holds no state between
// calls to FindMinMean: every invocation resets the strongly connected
// component partition, the DP table, and the previously found cycle before
// recomputing from scratch.
//
// Typical usage:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
//	g.AddEdge("a", "b", 1)
//	g.AddEdge("b", "a", 2)
//	k := mmc.NewIntKarp(g, mmc.WeightLength[int64](g))
//	if k.Run() {
//	    fmt.Println(k.CycleMean(), k.Cycle().Arcs())
//	}
package mmc
