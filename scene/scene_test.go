package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"shader-demos/core"
)

func testMaterials(n int) []*Material {
	mats := make([]*Material, n)
	for i := range mats {
		mats[i] = NewMaterial("test", "", "")
	}
	return mats
}

func TestCameraSetAspect(t *testing.T) {
	c := NewCamera(math.Pi/3, 1, 0.1, 100)

	c.SetAspect(1920, 1080)
	if c.Aspect != 1920.0/1080.0 {
		t.Errorf("expected aspect %v, got %v", 1920.0/1080.0, c.Aspect)
	}

	c.SetAspect(800, 600)
	if c.Aspect != 800.0/600.0 {
		t.Errorf("expected aspect %v, got %v", 800.0/600.0, c.Aspect)
	}

	// Zero height leaves the aspect unchanged
	before := c.Aspect
	c.SetAspect(800, 0)
	if c.Aspect != before {
		t.Errorf("zero height changed aspect from %v to %v", before, c.Aspect)
	}
}

func TestOrbitCameraDamping(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{}, 5, math.Pi/3, 16.0/9.0)

	c.Orbit(1.0, 0)
	// One short tick moves part of the way, not all of it
	c.Update(0.016)
	if c.Yaw <= 0 || c.Yaw >= 1.0 {
		t.Errorf("expected damped yaw between 0 and 1, got %v", c.Yaw)
	}

	// Many ticks converge on the target
	for i := 0; i < 600; i++ {
		c.Update(0.016)
	}
	if math.Abs(float64(c.Yaw-1.0)) > 0.001 {
		t.Errorf("expected yaw to converge to 1.0, got %v", c.Yaw)
	}
}

func TestOrbitCameraPitchClamp(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{}, 5, math.Pi/3, 1)
	c.Orbit(0, 10)
	for i := 0; i < 600; i++ {
		c.Update(0.016)
	}
	if c.Pitch > maxPitch+0.001 {
		t.Errorf("pitch exceeded clamp: %v", c.Pitch)
	}
}

func TestOrbitCameraDistance(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{}, 5, math.Pi/3, 1)
	c.Zoom(-100)
	for i := 0; i < 600; i++ {
		c.Update(0.016)
	}
	if c.Distance < minDistance-0.001 {
		t.Errorf("distance fell below minimum: %v", c.Distance)
	}

	// Camera sits Distance away from the orbit target
	got := c.Position.Sub(c.Camera.Target).Len()
	if math.Abs(float64(got-c.Distance)) > 0.001 {
		t.Errorf("expected position at distance %v, got %v", c.Distance, got)
	}
}

func TestMeshValidate(t *testing.T) {
	mats := testMaterials(4)
	cone := CreateGroupedCone(1, 1.5, 4, mats)
	if err := cone.Validate(); err != nil {
		t.Errorf("valid cone failed: %v", err)
	}

	// Material count must match the group count
	cone.Materials = mats[:3]
	if err := cone.Validate(); err == nil {
		t.Error("expected error for 3 materials on 4 groups")
	}
	cone.Materials = mats

	// Group range outside the index buffer
	cone.Groups[0].Count = len(cone.Indices) + 3
	if err := cone.Validate(); err == nil {
		t.Error("expected error for group range past index buffer")
	}
}

func TestCreateGroupedCone(t *testing.T) {
	mesh := CreateGroupedCone(1, 1.5, 4, testMaterials(4))

	if len(mesh.Groups) != 4 {
		t.Fatalf("expected 4 face groups, got %d", len(mesh.Groups))
	}
	for i, g := range mesh.Groups {
		if g.Count != 3 {
			t.Errorf("group %d: expected 3 indices, got %d", i, g.Count)
		}
		if g.Offset != i*3 {
			t.Errorf("group %d: expected offset %d, got %d", i, i*3, g.Offset)
		}
	}

	// Every face spans the full UV square
	for i := 0; i < 4; i++ {
		a := mesh.Vertices[i*3].UV
		b := mesh.Vertices[i*3+1].UV
		tip := mesh.Vertices[i*3+2].UV
		if a != (mgl32.Vec2{0, 0}) || b != (mgl32.Vec2{1, 0}) || tip != (mgl32.Vec2{0.5, 1}) {
			t.Errorf("face %d: unexpected UVs %v %v %v", i, a, b, tip)
		}
	}
}

func TestCreateSphere(t *testing.T) {
	mesh := CreateSphere(1, 16, 8, NewMaterial("sun", "", ""))
	if err := mesh.Validate(); err != nil {
		t.Fatalf("sphere failed validation: %v", err)
	}
	if len(mesh.Groups) != 1 {
		t.Fatalf("expected 1 face group, got %d", len(mesh.Groups))
	}

	// Every vertex sits on the unit sphere and the normal points outward
	for i, v := range mesh.Vertices {
		r := v.Position.Len()
		if math.Abs(float64(r-1)) > 0.0001 {
			t.Fatalf("vertex %d: radius %v, expected 1", i, r)
		}
		if v.Position.Sub(v.Normal).Len() > 0.0001 {
			t.Fatalf("vertex %d: normal does not match unit-sphere position", i)
		}
	}
}

func TestNodeRotationMatrix(t *testing.T) {
	n := NewNode("spin")
	n.Rotation = mgl32.Vec3{0, float32(math.Pi / 2), 0}

	// Rotating +X by 90° around Y gives -Z
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, n.LocalMatrix())
	tolerance := 0.001
	if math.Abs(float64(p.X())) > tolerance ||
		math.Abs(float64(p.Y())) > tolerance ||
		math.Abs(float64(p.Z()+1)) > tolerance {
		t.Errorf("expected approximately (0,0,-1), got %v", p)
	}
}

func TestMaterialUniformSlots(t *testing.T) {
	m := NewMaterial("sun", "", "")
	m.DeclareFloat("uWaveSpeed", 1.0)

	slot, err := m.FloatSlot("uWaveSpeed")
	if err != nil {
		t.Fatalf("FloatSlot: %v", err)
	}

	// Writing through the slot is visible via the material (live binding)
	*slot = 2.5
	if got := m.Float("uWaveSpeed"); got != 2.5 {
		t.Errorf("expected 2.5 through slot write, got %v", got)
	}
	m.SetFloat("uWaveSpeed", 0.25)
	if *slot != 0.25 {
		t.Errorf("expected 0.25 through SetFloat, got %v", *slot)
	}

	if _, err := m.FloatSlot("uMissing"); err == nil {
		t.Error("expected error for missing uniform")
	}

	m.DeclareColor("uSurfaceColor", core.Color{R: 1, G: 0.8, B: 0, A: 1})
	if _, err := m.FloatSlot("uSurfaceColor"); err == nil {
		t.Error("expected error for float slot on color uniform")
	}
	if _, err := m.ColorSlot("uSurfaceColor"); err != nil {
		t.Errorf("ColorSlot: %v", err)
	}
}
