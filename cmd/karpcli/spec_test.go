package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGraphSpec_Valid(t *testing.T) {
	data := []byte(`
nodes: ["0", "1", "2"]
arcs:
  - from: "0"
    to: "1"
    weight: 1
  - from: "1"
    to: "2"
    weight: 2
  - from: "2"
    to: "0"
    weight: 3
`)
	spec, err := loadGraphSpec(data)
	require.NoError(t, err)
	assert.Len(t, spec.Nodes, 3)
	assert.Len(t, spec.Arcs, 3)

	g, err := spec.build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestLoadGraphSpec_UndeclaredNodeRejected(t *testing.T) {
	data := []byte(`
nodes: ["0"]
arcs:
  - from: "0"
    to: "1"
    weight: 1
`)
	_, err := loadGraphSpec(data)
	assert.Error(t, err)
}

func TestLoadGraphSpec_EmptyNodesRejected(t *testing.T) {
	_, err := loadGraphSpec([]byte(`nodes: []`))
	assert.Error(t, err)
}
