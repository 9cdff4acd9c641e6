package scene

import (
	"fmt"

	"shader-demos/core"
)

// FaceGroup is a contiguous index range drawn with one material.
type FaceGroup struct {
	Offset int // first index
	Count  int // number of indices
}

// Mesh holds CPU-side vertex/index data split into face groups, with one
// material per group. GPU upload is managed by the renderer backend.
type Mesh struct {
	Name      string
	Vertices  []core.Vertex
	Indices   []uint32
	Groups    []FaceGroup
	Materials []*Material

	// GPUData is set by the renderer backend. Do not access directly.
	GPUData interface{}
}

// NewMesh builds a single-group mesh spanning all indices.
func NewMesh(name string, vertices []core.Vertex, indices []uint32, material *Material) *Mesh {
	return &Mesh{
		Name:      name,
		Vertices:  vertices,
		Indices:   indices,
		Groups:    []FaceGroup{{Offset: 0, Count: len(indices)}},
		Materials: []*Material{material},
	}
}

// Validate checks the face-group invariants: one material per group, and
// every group within the index buffer.
func (m *Mesh) Validate() error {
	if len(m.Materials) != len(m.Groups) {
		return fmt.Errorf("mesh %q: %d materials for %d face groups",
			m.Name, len(m.Materials), len(m.Groups))
	}
	for i, g := range m.Groups {
		if g.Offset < 0 || g.Count < 0 || g.Offset+g.Count > len(m.Indices) {
			return fmt.Errorf("mesh %q: group %d range [%d, %d) outside %d indices",
				m.Name, i, g.Offset, g.Offset+g.Count, len(m.Indices))
		}
	}
	return nil
}
