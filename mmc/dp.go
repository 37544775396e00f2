// File: dp.go
// Role: the layered DP engine (spec §4.3): per component, fills D[v][k] for
// k in 0..n with the minimum length of any walk of exactly k arcs from the
// component root to v. Runs build-set rounds while the active set is
// smaller than the component, then full rounds for the remainder.
package mmc

import "github.com/katalvlaran/mmc/core"

// processComponent runs the DP engine and mean-cycle extraction for one
// SCC, updating the global winner fields on k if this component's best
// candidate beats the current one. nodes is the component's member list.
func (k *Karp[V]) processComponent(nodes []string) {
	n := len(nodes)
	root := nodes[0]
	outArcs := k.scc.outArcs

	// Skip condition (spec §4.3): a lone node with no self-loop cannot
	// close a cycle. A lone node WITH a self-loop still has one out-arc
	// targeting itself and must be processed (spec §9 open question ii).
	if n == 1 && len(outArcs[root]) == 0 {
		return
	}

	// Allocate this component's DP rows. Each node's row is independently
	// sized to n+1 and keyed by node ID, never reused across components
	// within the same search: the reconstructor (reconstruct.go) reads the
	// winning component's rows after every component has been processed,
	// so a shared cross-component buffer would have already been
	// overwritten by the time it is needed.
	for _, v := range nodes {
		row := make([]pathData[V], n+1)
		for i := range row {
			row[i] = pathData[V]{dist: k.inf, pred: nil}
		}
		k.data[v] = row
	}
	k.data[root][0] = pathData[V]{dist: 0, pred: nil}

	active := []string{root}
	fullMode := false
	for layer := 1; layer <= n; layer++ {
		if !fullMode && len(active) >= n {
			fullMode = true
		}
		if fullMode {
			k.fullRound(nodes, outArcs, layer)
		} else {
			active = k.buildRound(active, outArcs, layer)
		}
	}

	k.extractComponent(nodes, n)
}

// buildRound relaxes arcs only out of the current active set and returns
// the next round's active set: every node that saw its first-ever
// relaxation at this layer (spec §4.3, "first relaxation at this layer").
func (k *Karp[V]) buildRound(active []string, outArcs map[string][]*core.Edge, layer int) []string {
	var next []string
	seen := make(map[string]bool)
	for _, u := range active {
		du := k.data[u][layer-1].dist
		if du == k.inf {
			continue
		}
		for _, e := range outArcs[u] {
			v := e.To
			d := du + k.lengths[e.ID]
			cell := &k.data[v][layer]
			if k.tol.Less(d, cell.dist) {
				wasInf := cell.dist == k.inf
				cell.dist = d
				cell.pred = e
				if wasInf && !seen[v] {
					seen[v] = true
					next = append(next, v)
				}
			}
		}
	}

	return next
}

// fullRound relaxes arcs out of every node in the component, used once the
// active set has grown to cover the whole component. Relaxation rule is
// identical to buildRound; no active set is tracked from here on.
func (k *Karp[V]) fullRound(nodes []string, outArcs map[string][]*core.Edge, layer int) {
	for _, u := range nodes {
		du := k.data[u][layer-1].dist
		if du == k.inf {
			continue
		}
		for _, e := range outArcs[u] {
			v := e.To
			d := du + k.lengths[e.ID]
			cell := &k.data[v][layer]
			if k.tol.Less(d, cell.dist) {
				cell.dist = d
				cell.pred = e
			}
		}
	}
}
