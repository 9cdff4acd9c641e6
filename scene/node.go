package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Node is an object in the scene graph. Rotation is Euler angles in
// radians, applied Y, X, Z.
type Node struct {
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Parent   *Node
	Children []*Node
	Mesh     *Mesh
	Visible  bool
}

func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   mgl32.Vec3{1, 1, 1},
		Visible: true,
	}
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// LocalMatrix returns the node's transform: translate · rotate(Y,X,Z) · scale.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := mgl32.HomogRotate3DY(n.Rotation.Y()).
		Mul4(mgl32.HomogRotate3DX(n.Rotation.X())).
		Mul4(mgl32.HomogRotate3DZ(n.Rotation.Z()))
	s := mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix composes the local transform with all ancestors.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	local := n.LocalMatrix()
	if n.Parent != nil {
		return n.Parent.WorldMatrix().Mul4(local)
	}
	return local
}

// Traverse visits this node and all descendants.
func (n *Node) Traverse(callback func(*Node)) {
	callback(n)
	for _, child := range n.Children {
		child.Traverse(callback)
	}
}
