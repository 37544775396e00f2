// File: reconstruct.go
// Role: the cycle reconstructor (spec §4.5). Walks the winning component's
// DP predecessors backward until a node repeats, then re-walks forward
// from that repeat to produce the ordered arc sequence, overwriting the
// earlier (L_u, s_u) estimate with the authoritative reconstructed values.
package mmc

// reconstruct fills k.cycle with the winning cycle's arcs and overwrites
// k.bestL/k.bestS with the authoritative length and arc count computed
// during the walk (spec §4.5 step 6). Requires k.found and k.data to still
// hold the winning component's rows, i.e. to run before the next
// FindMinMean call clears them.
func (k *Karp[V]) reconstruct() {
	k.cycle.Clear()

	u := k.bestAt
	reached := make(map[string]int, len(k.data[u]))
	r := len(k.data[u])

	for {
		if _, ok := reached[u]; ok {
			break
		}
		r--
		reached[u] = r
		e := k.data[u][r].pred
		u = e.From
	}

	r = reached[u]
	e := k.data[u][r].pred
	k.cycle.PrependArc(e)
	cycleLen := k.lengths[e.ID]
	cycleSize := 1

	for v := e.From; v != u; v = e.From {
		r--
		e = k.data[v][r].pred
		k.cycle.PrependArc(e)
		cycleLen += k.lengths[e.ID]
		cycleSize++
	}

	k.bestL = cycleLen
	k.bestS = cycleSize
}
