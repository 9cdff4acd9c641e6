package main

import (
	"fmt"

	"shader-demos/core"
	"shader-demos/scene"
	"shader-demos/shading"
)

// tickStep is the fixed per-tick increment applied to the rotation and to
// the animated faces' time uniforms.
const tickStep = float32(0.01)

// pyramidDemo is a four-faced cone spinning at a fixed rate per tick, one
// shader pattern per face.
type pyramidDemo struct {
	scene     *scene.Scene
	node      *scene.Node
	materials []*scene.Material

	// ticks counts update calls; time and rotation are recomputed from it
	// each tick so they stay exact multiples of tickStep.
	ticks int

	timeSlots []*float32
}

func newPyramidDemo() (*pyramidDemo, error) {
	materials := make([]*scene.Material, len(shading.PyramidFaces))
	for i, face := range shading.PyramidFaces {
		mat := scene.NewMaterial(face.Name, face.VertexSrc(), face.FragmentSrc())
		if face.Displacement != "" {
			mat.DeclareFloat("uTime", 0)
		}
		materials[i] = mat
	}

	mesh := scene.CreateGroupedCone(1, 1.5, len(materials), materials)
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("cone mesh: %w", err)
	}

	node := scene.NewNode("pyramid")
	node.Mesh = mesh

	s := scene.NewScene()
	s.AddNode(node)
	s.Background.Color = core.Color{R: 0.08, G: 0.08, B: 0.1, A: 1}

	d := &pyramidDemo{
		scene:     s,
		node:      node,
		materials: materials,
	}
	for _, mat := range materials {
		if slot, err := mat.FloatSlot("uTime"); err == nil {
			d.timeSlots = append(d.timeSlots, slot)
		}
	}
	return d, nil
}

// update advances one tick. Time and rotation are recomputed as
// tick-count × step rather than accumulated, so 100 ticks yield exactly
// 1.0 in float32.
func (d *pyramidDemo) update() {
	d.ticks++
	t := float32(d.ticks) * tickStep

	for _, slot := range d.timeSlots {
		*slot = t
	}
	d.node.Rotation[1] = t
}
