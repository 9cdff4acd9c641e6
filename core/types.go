package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Color struct {
	R, G, B, A float32
}

var ColorBlack = Color{0, 0, 0, 1}

// Vec3 returns the RGB channels as a vector, for shader uniform upload.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// ScaledViewport converts a logical window size to a render resolution.
// The device content scale is capped at 2 to bound per-pixel shader cost
// on high-DPI displays.
func ScaledViewport(width, height int, scale float32) (int, int) {
	if scale > 2 {
		scale = 2
	}
	return int(float32(width) * scale), int(float32(height) * scale)
}
