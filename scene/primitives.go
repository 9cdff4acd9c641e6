package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"shader-demos/core"
)

// CreateSphere generates a UV-sphere mesh with a single face group.
// UV.Y runs 0 at the top pole to 1 at the bottom, so shaders can grade
// color along the vertical texture coordinate.
func CreateSphere(radius float32, segments, rings int, material *Material) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []core.Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi := math32.Sin(phi)
		cosPhi := math32.Cos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2 * math32.Pi / float32(segments)
			sinTheta := math32.Sin(theta)
			cosTheta := math32.Cos(theta)

			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       mgl32.Vec2{float32(seg) / float32(segments), float32(ring) / float32(rings)},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return NewMesh("Sphere", vertices, indices, material)
}

// CreateGroupedCone generates a cone whose side faces are flat triangles,
// one face group per radial segment, so each face can carry its own
// material. Each face spans the full [0,1]² UV square: base corners at
// (0,0) and (1,0), tip at (0.5,1). There is no base cap, so the group
// count equals the segment count exactly.
//
// materials must contain one material per segment.
func CreateGroupedCone(radius, height float32, segments int, materials []*Material) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32
	groups := make([]FaceGroup, 0, segments)
	halfHeight := height / 2

	for i := 0; i < segments; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(segments)
		nextTheta := float32(i+1) * 2 * math32.Pi / float32(segments)

		a := mgl32.Vec3{math32.Cos(theta) * radius, -halfHeight, math32.Sin(theta) * radius}
		b := mgl32.Vec3{math32.Cos(nextTheta) * radius, -halfHeight, math32.Sin(nextTheta) * radius}
		tip := mgl32.Vec3{0, halfHeight, 0}

		normal := b.Sub(a).Cross(tip.Sub(a)).Normalize()

		base := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: normal, UV: mgl32.Vec2{0, 0}},
			core.Vertex{Position: b, Normal: normal, UV: mgl32.Vec2{1, 0}},
			core.Vertex{Position: tip, Normal: normal, UV: mgl32.Vec2{0.5, 1}},
		)

		groups = append(groups, FaceGroup{Offset: len(indices), Count: 3})
		indices = append(indices, base, base+2, base+1)
	}

	return &Mesh{
		Name:      "Cone",
		Vertices:  vertices,
		Indices:   indices,
		Groups:    groups,
		Materials: materials,
	}
}
