// File: spec.go
// Role: the declarative graph description karpcli reads from disk: a list
// of nodes and weighted arcs, decoded from YAML and validated before it is
// lowered into a *core.Graph.
package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mmc/core"
)

// ArcSpec is one declared arc: a directed edge from From to To carrying
// Weight. From and To must name nodes declared in GraphSpec.Nodes.
type ArcSpec struct {
	From   string `yaml:"from" validate:"required"`
	To     string `yaml:"to" validate:"required"`
	Weight int64  `yaml:"weight"`
}

// GraphSpec is the top-level decoded document: the node set and the arc
// list describing a directed, weighted multigraph with optional self-loops.
type GraphSpec struct {
	Nodes []string  `yaml:"nodes" validate:"required,min=1,dive,required"`
	Arcs  []ArcSpec `yaml:"arcs" validate:"dive"`
}

// loadGraphSpec decodes and validates a GraphSpec from raw YAML bytes.
func loadGraphSpec(data []byte) (*GraphSpec, error) {
	var spec GraphSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("karpcli: decode graph spec: %w", err)
	}

	if err := validator.New().Struct(&spec); err != nil {
		return nil, fmt.Errorf("karpcli: invalid graph spec: %w", err)
	}

	declared := make(map[string]bool, len(spec.Nodes))
	for _, n := range spec.Nodes {
		declared[n] = true
	}
	for _, a := range spec.Arcs {
		if !declared[a.From] {
			return nil, fmt.Errorf("karpcli: arc references undeclared node %q", a.From)
		}
		if !declared[a.To] {
			return nil, fmt.Errorf("karpcli: arc references undeclared node %q", a.To)
		}
	}

	return &spec, nil
}

// build lowers a validated GraphSpec into a *core.Graph: directed, weighted,
// with self-loops and multi-edges permitted (a declarative fixture may
// legitimately describe either).
func (s *GraphSpec) build() (*core.Graph, error) {
	g := core.NewGraph(
		core.WithDirected(true),
		core.WithWeighted(),
		core.WithLoops(),
		core.WithMultiEdges(),
	)
	for _, n := range s.Nodes {
		if err := g.AddVertex(n); err != nil {
			return nil, fmt.Errorf("karpcli: add node %q: %w", n, err)
		}
	}
	for _, a := range s.Arcs {
		if _, err := g.AddEdge(a.From, a.To, a.Weight); err != nil {
			return nil, fmt.Errorf("karpcli: add arc %s->%s: %w", a.From, a.To, err)
		}
	}

	return g, nil
}
