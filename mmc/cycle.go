// File: cycle.go
// Role: the minimal path-container capability (spec §4.5, §6, §9 open
// question iii): the only operation the reconstructor requires is
// "prepend an arc at the front". Cycle realizes that minimal contract
// directly rather than through an interface, since mmc is the only
// producer and consumer in this module; callers who want the result
// written into a container they own can pass their own *Cycle with
// WithCycleContainer.
package mmc

import "github.com/katalvlaran/mmc/core"

// Cycle holds the ordered arc sequence of a reconstructed minimum mean
// cycle, front to back in the forward (source-to-target, wrapping) walk
// direction. The zero value is an empty, ready-to-use Cycle.
type Cycle struct {
	arcs []*core.Edge
}

// NewCycle returns an empty Cycle ready for use with WithCycleContainer.
func NewCycle() *Cycle {
	return &Cycle{}
}

// PrependArc inserts e at the front of the arc sequence. Called by the
// reconstructor once per arc, in reverse discovery order, so that the
// final sequence reads forward.
func (c *Cycle) PrependArc(e *core.Edge) {
	c.arcs = append(c.arcs, nil)
	copy(c.arcs[1:], c.arcs)
	c.arcs[0] = e
}

// Clear empties the container without releasing its backing array, so the
// capacity built up over one search is reused by the next.
func (c *Cycle) Clear() {
	c.arcs = c.arcs[:0]
}

// Len reports the number of arcs currently held.
func (c *Cycle) Len() int {
	return len(c.arcs)
}

// Arcs returns the arc sequence front to back. The returned slice aliases
// Cycle's internal storage and is only valid until the next reconstruction;
// callers that need to retain it must copy.
func (c *Cycle) Arcs() []*core.Edge {
	return c.arcs
}
