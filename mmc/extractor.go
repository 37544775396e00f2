// File: extractor.go
// Role: the mean-cycle extractor (spec §4.4). Derives each component's best
// cycle-mean candidate from the DP table via Karp's inner-maximum
// characterization, and folds it into the global winner. Every comparison
// here is exact cross-multiplication in V; the tolerance policy (tolerance.go)
// is never consulted, by design (spec §4.1, §4.4).
package mmc

// extractComponent computes, for every node u in the component with
// D[u][n] reachable, the pair (L_u, s_u) maximizing the mean
// (D[u][n]-D[u][k])/(n-k) over valid k, then folds the component's best
// such pair into the engine's global winner.
func (k *Karp[V]) extractComponent(nodes []string, n int) {
	for _, u := range nodes {
		row := k.data[u]
		top := row[n].dist
		if top == k.inf {
			continue
		}

		found := false
		var bestL V
		var bestS int
		for kk := 0; kk < n; kk++ {
			if row[kk].dist == k.inf {
				continue
			}
			L := top - row[kk].dist
			s := n - kk
			if !found || L*V(bestS) > bestL*V(s) {
				found = true
				bestL = L
				bestS = s
			}
		}
		if !found {
			continue
		}

		k.updateGlobal(u, bestL, bestS)
	}
}

// updateGlobal applies the minimum rule (spec §4.4): replace the global
// winner iff it is unset, or the candidate's mean is strictly smaller under
// exact cross-multiplication.
func (k *Karp[V]) updateGlobal(u string, L V, s int) {
	if !k.found || L*V(k.bestS) < k.bestL*V(s) {
		k.found = true
		k.bestAt = u
		k.bestL = L
		k.bestS = s
	}
}
