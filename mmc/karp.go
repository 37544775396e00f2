// File: karp.go
// Role: the public façade (spec §4.6): construction, container ownership,
// the three driving operations (findMinMean/findCycle/Run), and the pure
// query methods. Orchestration of SCC -> per-component DP -> extraction
// lives in dp.go and extractor.go; cycle reconstruction lives in
// reconstruct.go.
package mmc

import "github.com/katalvlaran/mmc/core"

// Karp finds the minimum mean cycle of a directed graph using Karp's
// layered-DP algorithm. V is the accumulator type ("LargeValue"): use
// NewIntKarp for integral lengths (exact comparisons) or NewFloatKarp for
// floating lengths (epsilon-tolerant comparisons). A Karp value is not
// safe for concurrent use; it is single-threaded and strictly sequential
// by design, matching the algorithm's own data dependencies.
type Karp[V Number] struct {
	g       *core.Graph
	lengths LengthMap[V]
	tol     Tolerance[V]
	inf     V

	cycle     *Cycle
	ownsCycle bool

	scc  *sccResult
	data map[string][]pathData[V]

	found   bool
	bestAt  string
	bestL   V
	bestS   int
	haveMin bool // true once findMinMean has completed successfully at least once
	haveCyc bool // true once findCycle has produced a cycle for the current bestAt
}

// NewKarp constructs a Karp engine over g and lengths with a caller-chosen
// tolerance policy. Most callers want NewIntKarp or NewFloatKarp instead.
// Panics if g or lengths is nil — an invalid construction argument, not a
// query-time precondition violation.
func NewKarp[V Number](g *core.Graph, lengths LengthMap[V], inf V, tol Tolerance[V], opts ...Option[V]) *Karp[V] {
	if g == nil {
		panic(ErrNilGraph.Error())
	}
	if lengths == nil {
		panic(ErrNilLengthMap.Error())
	}
	if tol == nil {
		panic(ErrNilTolerance.Error())
	}

	k := &Karp[V]{
		g:         g,
		lengths:   lengths,
		tol:       tol,
		inf:       inf,
		cycle:     NewCycle(),
		ownsCycle: true,
		bestS:     1, // guard sentinel (spec §3, §9 open question i), valid even pre-run
	}
	for _, opt := range opts {
		opt(k)
	}

	return k
}

// intInfinity is large enough to dominate any walk of n <= a few million
// arcs at int64 lengths without itself overflowing under one addition,
// matching the n^2*max|length| budget spec §4.4 documents.
const intInfinity int64 = 1 << 60

// floatInfinity is the floating Infinity sentinel (spec §3): any value
// larger than any reachable walk length.
const floatInfinity float64 = 1e18

// NewIntKarp binds g and lengths with V fixed to int64 and an exact
// tolerance policy (spec §3's integer LargeValue default).
func NewIntKarp(g *core.Graph, lengths LengthMap[int64], opts ...Option[int64]) *Karp[int64] {
	return NewKarp(g, lengths, intInfinity, newExactTolerance[int64](), opts...)
}

// NewFloatKarp binds g and lengths with V fixed to float64 and an
// epsilon-tolerant policy using DefaultEpsilon (spec §3's floating
// LargeValue default). Use WithTolerance to supply a different epsilon.
func NewFloatKarp(g *core.Graph, lengths LengthMap[float64], opts ...Option[float64]) *Karp[float64] {
	return NewKarp(g, lengths, floatInfinity, newEpsilonTolerance[float64](DefaultEpsilon), opts...)
}

// useCycleContainer replaces the engine-owned container with a borrowed
// one. The engine releases its previously owned container, if any. A nil
// c reverts to an engine-owned container.
func (k *Karp[V]) useCycleContainer(c *Cycle) {
	if c == nil {
		k.cycle = NewCycle()
		k.ownsCycle = true

		return
	}
	k.cycle = c
	k.ownsCycle = false
}

// FindMinMean runs SCC decomposition, then the layered DP engine and
// mean-cycle extractor for every component, recording the global winner.
// It returns true iff the graph contains a directed cycle (node* set).
// Idempotent and re-runnable: every call resets D, the SCC partition, the
// global winner, and the cycle container before recomputing from scratch
// (spec §3 Lifecycle, §4.6, §12.2).
func (k *Karp[V]) FindMinMean() bool {
	k.found = false
	k.bestAt = ""
	k.bestL = 0
	k.bestS = 1 // guard value, never observed while !k.found (spec §3, §9 open question i)
	k.haveCyc = false
	k.cycle.Clear()
	k.data = make(map[string][]pathData[V])

	k.scc = findComponents(k.g)
	for _, nodes := range k.scc.nodes {
		k.processComponent(nodes)
	}

	k.haveMin = true

	return k.found
}

// FindCycle reconstructs the winning cycle into the current container.
// Requires a prior successful FindMinMean; per spec §7 this precondition
// is not enforced with a panic, it simply returns false and leaves the
// container untouched, matching this package's general aversion to
// panicking on query-time preconditions (panics here are reserved for
// invalid construction arguments, as in NewKarp).
func (k *Karp[V]) FindCycle() bool {
	if !k.haveMin || !k.found {
		return false
	}

	k.reconstruct()
	k.haveCyc = true

	return true
}

// Run is equivalent to FindMinMean() && FindCycle().
func (k *Karp[V]) Run() bool {
	return k.FindMinMean() && k.FindCycle()
}

// CycleLength returns the authoritative length sum of the reconstructed
// cycle, or 0 if no cycle has been found.
func (k *Karp[V]) CycleLength() V {
	if !k.found {
		return 0
	}

	return k.bestL
}

// CycleArcNum returns the arc count of the winning cycle, or 1 (the guard
// sentinel spec §3/§9 preserves) if no cycle has been found.
func (k *Karp[V]) CycleArcNum() int {
	return k.bestS
}

// CycleMean returns CycleLength()/CycleArcNum() as a float64. When no
// cycle has been found this divides the guard values 0/1 = 0, which spec
// §9 flags as a preserved but dubious open question rather than a
// meaningful answer: callers must check FindMinMean's/Run's return value.
func (k *Karp[V]) CycleMean() float64 {
	return float64(k.bestL) / float64(k.bestS)
}

// Cycle returns the container holding the reconstructed arc sequence. Its
// contents are only meaningful after a successful FindCycle/Run.
func (k *Karp[V]) Cycle() *Cycle {
	return k.cycle
}
