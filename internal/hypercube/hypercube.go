// Package hypercube builds the static vertex and edge sets of a 4D unit
// hypercube. Vertex order is lexicographic over (x, y, z, w) with -1 before
// +1, so edge indices stay valid for the lifetime of a run.
package hypercube

import (
	"errors"
	"fmt"

	"github.com/san-kum/tesseract/internal/geom"
)

const (
	VertexCount = 16
	EdgeCount   = 32
	Degree      = 4
)

// ErrInvalidTopology indicates a vertex set or edge set that does not
// describe a tesseract. It is a construction bug, not a runtime transient.
var ErrInvalidTopology = errors.New("hypercube: invalid topology")

// TopologyError wraps ErrInvalidTopology with the offending detail.
type TopologyError struct {
	Vertex  int
	Message string
}

func (e *TopologyError) Error() string {
	if e.Vertex >= 0 {
		return fmt.Sprintf("%s: vertex %d: %s", ErrInvalidTopology, e.Vertex, e.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidTopology, e.Message)
}

func (e *TopologyError) Unwrap() error { return ErrInvalidTopology }

// Edge joins two vertex indices, I < J.
type Edge struct {
	I, J int
}

// GenerateVertices returns every {-1,+1} combination over four axes.
func GenerateVertices() []geom.Vector4 {
	signs := [2]float64{-1, 1}
	vs := make([]geom.Vector4, 0, VertexCount)
	for _, x := range signs {
		for _, y := range signs {
			for _, z := range signs {
				for _, w := range signs {
					vs = append(vs, geom.Vector4{X: x, Y: y, Z: z, W: w})
				}
			}
		}
	}
	return vs
}

// GenerateEdges links every pair whose coordinates differ in exactly one
// axis, i.e. whose Manhattan distance is 2. Every coordinate must be ±1.
func GenerateEdges(vertices []geom.Vector4) ([]Edge, error) {
	for i, v := range vertices {
		for _, c := range v.Coords() {
			if c != 1 && c != -1 {
				return nil, &TopologyError{Vertex: i, Message: fmt.Sprintf("coordinate %v not in {-1,+1}", c)}
			}
		}
	}

	edges := make([]Edge, 0, EdgeCount)
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if vertices[i].ManhattanDistance(vertices[j]) == 2 {
				edges = append(edges, Edge{I: i, J: j})
			}
		}
	}
	return edges, nil
}

// Model is the read-only tesseract shared by the animation loop.
type Model struct {
	vertices []geom.Vector4
	edges    []Edge
}

// New generates and validates the tesseract.
func New() (*Model, error) {
	vs := GenerateVertices()
	es, err := GenerateEdges(vs)
	if err != nil {
		return nil, err
	}
	m := &Model{vertices: vs, edges: es}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks vertex count, edge count and per-vertex degree.
func (m *Model) Validate() error {
	if len(m.vertices) != VertexCount {
		return &TopologyError{Vertex: -1, Message: fmt.Sprintf("expected %d vertices, got %d", VertexCount, len(m.vertices))}
	}
	if len(m.edges) != EdgeCount {
		return &TopologyError{Vertex: -1, Message: fmt.Sprintf("expected %d edges, got %d", EdgeCount, len(m.edges))}
	}
	for i := range m.vertices {
		if d := m.Degree(i); d != Degree {
			return &TopologyError{Vertex: i, Message: fmt.Sprintf("degree %d, want %d", d, Degree)}
		}
	}
	return nil
}

// Vertices returns a copy of the vertex set.
func (m *Model) Vertices() []geom.Vector4 {
	out := make([]geom.Vector4, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// Edges returns a copy of the edge set.
func (m *Model) Edges() []Edge {
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)
	return out
}

// Degree counts edges incident to vertex i.
func (m *Model) Degree(i int) int {
	n := 0
	for _, e := range m.edges {
		if e.I == i || e.J == i {
			n++
		}
	}
	return n
}
