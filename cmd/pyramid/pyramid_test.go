package main

import (
	"testing"

	"shader-demos/app"
)

func TestHundredTicks(t *testing.T) {
	demo, err := newPyramidDemo()
	if err != nil {
		t.Fatalf("newPyramidDemo: %v", err)
	}

	loop := &app.Loop{Update: func(dt float32) { demo.update() }}
	if ran := loop.Advance(100, tickStep); ran != 100 {
		t.Fatalf("expected 100 ticks, ran %d", ran)
	}

	want := float32(100) * tickStep
	if got := demo.node.Rotation[1]; got != want {
		t.Errorf("rotation.y: expected exactly %v, got %v", want, got)
	}
	if got := demo.materials[0].Float("uTime"); got != want {
		t.Errorf("wave face uTime: expected exactly %v, got %v", want, got)
	}
	if got := demo.materials[3].Float("uTime"); got != want {
		t.Errorf("ripple face uTime: expected exactly %v, got %v", want, got)
	}
}

func TestAnimatedFacesOnly(t *testing.T) {
	demo, err := newPyramidDemo()
	if err != nil {
		t.Fatalf("newPyramidDemo: %v", err)
	}

	// Only the wave and ripple faces carry a time uniform
	if len(demo.timeSlots) != 2 {
		t.Errorf("expected 2 animated faces, got %d", len(demo.timeSlots))
	}
	for _, i := range []int{1, 2} {
		if _, ok := demo.materials[i].Uniforms["uTime"]; ok {
			t.Errorf("face %d should have no time uniform", i)
		}
	}
}

func TestFaceMaterialOrder(t *testing.T) {
	demo, err := newPyramidDemo()
	if err != nil {
		t.Fatalf("newPyramidDemo: %v", err)
	}

	want := []string{"wave", "checkerboard", "radial", "ripple"}
	for i, name := range want {
		if demo.materials[i].Name != name {
			t.Errorf("face %d: expected %s, got %s", i, name, demo.materials[i].Name)
		}
	}
	if len(demo.node.Mesh.Groups) != len(want) {
		t.Errorf("expected %d face groups, got %d", len(want), len(demo.node.Mesh.Groups))
	}
}
