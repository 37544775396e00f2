// File: types.go
// Role: generic numeric constraint, length oracle, path-data cell, and the
// functional-options surface for Karp.
package mmc

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/mmc/core"
)

// Number is the set of accumulator types Karp[V] may be instantiated over.
// It mirrors spec's "LargeValue": a 64-bit signed integer for integral
// lengths, or a double-precision float for floating lengths. The two modes
// never mix within a single search (chosen once, at construction).
type Number interface {
	constraints.Integer | constraints.Float
}

// LengthMap is a read-only mapping from arc identity (core.Edge.ID) to its
// length in V. The engine never mutates it and never indexes it by anything
// but an edge ID actually present in the bound graph.
type LengthMap[V Number] map[string]V

// LengthFunc derives a length for every edge of g using fn, producing a
// LengthMap suitable for NewKarp/NewIntKarp/NewFloatKarp.
func LengthFunc[V Number](g *core.Graph, fn func(e *core.Edge) V) LengthMap[V] {
	edges := g.Edges()
	lm := make(LengthMap[V], len(edges))
	for _, e := range edges {
		lm[e.ID] = fn(e)
	}

	return lm
}

// WeightLength builds a LengthMap straight off each edge's Weight field,
// converted to V. This is the common case: the graph's own edge weights
// are the arc lengths Karp should minimize the cycle mean over.
func WeightLength[V Number](g *core.Graph) LengthMap[V] {
	return LengthFunc(g, func(e *core.Edge) V { return V(e.Weight) })
}

// pathData is the DP engine's path-data cell: the length of the cheapest
// walk of exactly k arcs from the component root to a node, and the arc
// that achieved it. pred == nil iff dist is the infinity sentinel, or this
// is the root cell at k=0.
type pathData[V Number] struct {
	dist V
	pred *core.Edge
}

// Option configures a Karp[V] engine at construction time.
type Option[V Number] func(*Karp[V])

// WithCycleContainer replaces the engine-owned Cycle with one borrowed from
// the caller. The engine releases any previously owned container and never
// allocates its own again until the next call to WithCycleContainer(nil) or
// a fresh NewKarp/NewIntKarp/NewFloatKarp construction.
func WithCycleContainer[V Number](c *Cycle) Option[V] {
	return func(k *Karp[V]) { k.useCycleContainer(c) }
}

// WithTolerance overrides the default tolerance policy. Most callers should
// use NewIntKarp (exact tolerance) or NewFloatKarp (epsilon tolerance)
// instead of reaching for this directly.
func WithTolerance[V Number](t Tolerance[V]) Option[V] {
	return func(k *Karp[V]) {
		if t == nil {
			panic(ErrNilTolerance.Error())
		}
		k.tol = t
	}
}
