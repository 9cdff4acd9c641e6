package main

import (
	"fmt"

	"shader-demos/core"
	"shader-demos/internal/opengl"
	"shader-demos/scene"
	"shader-demos/shading"
)

// sunDemo is a sphere whose surface ripples with two layered sine waves.
// The wave and color uniforms are live-editable through the debug panel.
type sunDemo struct {
	scene    *scene.Scene
	node     *scene.Node
	material *scene.Material
	cubeMap  *scene.CubeMap

	timeSlot *float32
}

// newSunDemo builds the sphere, its material with default uniform values
// and the scene around them. skyPaths is empty for a solid background.
func newSunDemo(skyPaths [6]string) (*sunDemo, error) {
	mat := scene.NewMaterial("sun", shading.SunVertexSrc, shading.SunFragmentSrc)
	mat.DeclareFloat("uTime", 0)
	mat.DeclareFloat("uWaveSpeed", 1.0)
	mat.DeclareFloat("uSmallWaveFrequency", 10.0)
	mat.DeclareFloat("uSmallWaveSpeed", 2.0)
	mat.DeclareFloat("uWaveHeight", 0.15)
	mat.DeclareFloat("uColorMultiplier", 1.0)
	mat.DeclareColor("uSurfaceColor", core.Color{R: 1.0, G: 0.75, B: 0.2, A: 1})
	mat.DeclareColor("uDepthColor", core.Color{R: 0.6, G: 0.1, B: 0.0, A: 1})

	mesh := scene.CreateSphere(1, 64, 32, mat)
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("sphere mesh: %w", err)
	}

	node := scene.NewNode("sun")
	node.Mesh = mesh

	s := scene.NewScene()
	s.AddNode(node)
	s.Background.Color = core.Color{R: 0.02, G: 0.02, B: 0.05, A: 1}

	d := &sunDemo{
		scene:    s,
		node:     node,
		material: mat,
	}

	if skyPaths[0] != "" {
		d.cubeMap = scene.LoadCubeMapAsync(skyPaths)
		s.Background.Kind = scene.BackgroundCubeMap
		s.Background.CubeMap = d.cubeMap
	}

	slot, err := mat.FloatSlot("uTime")
	if err != nil {
		return nil, err
	}
	d.timeSlot = slot
	return d, nil
}

// update advances the time uniform to the wall-clock elapsed seconds.
func (d *sunDemo) update(elapsed float32) {
	*d.timeSlot = elapsed
}

// syncCubeMap uploads the cube map once decoding finishes. Until then the
// solid background color keeps rendering; a decode failure is logged once
// and the fallback stays.
func (d *sunDemo) syncCubeMap() {
	if d.cubeMap == nil || d.cubeMap.Uploaded() || !d.cubeMap.Ready() {
		return
	}
	if err := opengl.UploadCubeMap(d.cubeMap); err != nil {
		fmt.Printf("[Sky] cube map unavailable, keeping solid background: %v\n", err)
		d.cubeMap = nil
		d.scene.Background.Kind = scene.BackgroundSolid
		d.scene.Background.CubeMap = nil
		return
	}
	fmt.Println("[Sky] cube map ready")
}
