// File: scc.go
// Role: the SCC decomposer (spec §4.2). core.Graph carries no strongly
// connected components pass of its own, so mmc carries a small recursive
// Tarjan implementation, adapted from gonum's topo.TarjanSCC to operate
// directly on *core.Graph's string-keyed vertices and Neighbors.
package mmc

import "github.com/katalvlaran/mmc/core"

// sccResult is the SCC decomposer's output for one graph: each node's
// component index, the node lists per component,
// and, per node, the out-arcs whose target lies in the same component.
type sccResult struct {
	comp     map[string]int      // node ID -> component index
	nodes    [][]string          // component index -> member node IDs
	outArcs  map[string][]*core.Edge // node ID -> restricted out-arcs (same-component targets only)
}

// findComponents runs Tarjan's algorithm over g and restricts each node's
// out-arcs to those whose target lies in the same component, per spec §4.2:
// a cycle is entirely contained in one SCC, so the DP engine never needs
// to look outside it.
func findComponents(g *core.Graph) *sccResult {
	t := &tarjan{
		g:          g,
		indexTable: make(map[string]int),
		lowLink:    make(map[string]int),
		onStack:    make(map[string]bool),
	}
	for _, v := range g.Vertices() {
		if _, visited := t.indexTable[v]; !visited {
			t.strongconnect(v)
		}
	}

	res := &sccResult{
		comp:    make(map[string]int, len(t.indexTable)),
		nodes:   t.sccs,
		outArcs: make(map[string][]*core.Edge, len(t.indexTable)),
	}
	for ci, nodes := range t.sccs {
		for _, v := range nodes {
			res.comp[v] = ci
		}
	}
	for v := range t.indexTable {
		neighbors, err := g.Neighbors(v)
		if err != nil {
			// Every v came from g.Vertices(), so this cannot happen.
			continue
		}
		var restricted []*core.Edge
		for _, e := range neighbors {
			if e.From == v && res.comp[e.To] == res.comp[v] {
				restricted = append(restricted, e)
			}
		}
		res.outArcs[v] = restricted
	}

	return res
}

// tarjan is the recursive-descent Tarjan state, one instance per graph.
type tarjan struct {
	g *core.Graph

	index      int
	indexTable map[string]int
	lowLink    map[string]int
	onStack    map[string]bool

	stack []string
	sccs  [][]string
}

// strongconnect implements the classic Tarjan strongconnect step, keyed by
// core.Graph's string vertex IDs instead of integer node IDs.
func (t *tarjan) strongconnect(v string) {
	t.indexTable[v] = t.index
	t.lowLink[v] = t.index
	t.index++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	neighbors, err := t.g.Neighbors(v)
	if err != nil {
		return
	}
	for _, e := range neighbors {
		if e.From != v {
			continue
		}
		w := e.To
		if _, visited := t.indexTable[w]; !visited {
			t.strongconnect(w)
			t.lowLink[v] = min(t.lowLink[v], t.lowLink[w])
		} else if t.onStack[w] {
			t.lowLink[v] = min(t.lowLink[v], t.indexTable[w])
		}
	}

	if t.lowLink[v] == t.indexTable[v] {
		var scc []string
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		t.sccs = append(t.sccs, scc)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
