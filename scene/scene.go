package scene

import (
	"shader-demos/core"
)

// BackgroundKind selects how the frame is cleared behind the geometry.
type BackgroundKind int

const (
	BackgroundSolid   BackgroundKind = iota // single clear color
	BackgroundCubeMap                       // six-face environment map
)

// Background is the scene's backdrop configuration, immutable after setup.
// A cube-map background falls back to Color until the map reports ready.
type Background struct {
	Kind    BackgroundKind
	Color   core.Color
	CubeMap *CubeMap
}

// Scene holds the node graph root and the background.
type Scene struct {
	Root       *Node
	Background Background
}

func NewScene() *Scene {
	return &Scene{
		Root:       NewNode("Root"),
		Background: Background{Kind: BackgroundSolid, Color: core.ColorBlack},
	}
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

// MeshNodes returns all visible nodes carrying a mesh, in traversal order.
func (s *Scene) MeshNodes() []*Node {
	var nodes []*Node
	s.Root.Traverse(func(n *Node) {
		if n.Visible && n.Mesh != nil {
			nodes = append(nodes, n)
		}
	})
	return nodes
}
