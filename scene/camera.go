package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective look-at camera.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	FOV      float32 // vertical field of view, radians
	Aspect   float32
	Near     float32
	Far      float32
}

func NewCamera(fov, aspect, near, far float32) *Camera {
	return &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// SetAspect recomputes the aspect ratio from display dimensions.
// Invariant: aspect always equals width/height for height > 0.
func (c *Camera) SetAspect(width, height float32) {
	if height > 0 {
		c.Aspect = width / height
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// OrbitCamera orbits a target point on a damped yaw/pitch/distance sphere.
// Input adjusts the target values; Update moves the live values toward them
// so the camera keeps gliding after the drag stops.
type OrbitCamera struct {
	Camera
	Distance float32
	Yaw      float32
	Pitch    float32

	// Damping is the exponential approach rate per second (higher = snappier).
	Damping float32

	targetYaw      float32
	targetPitch    float32
	targetDistance float32
}

const (
	maxPitch    = 1.5
	minDistance = 0.5
)

func NewOrbitCamera(target mgl32.Vec3, distance, fov, aspect float32) *OrbitCamera {
	c := &OrbitCamera{
		Distance:       distance,
		Pitch:          0.3,
		Damping:        8,
		targetPitch:    0.3,
		targetDistance: distance,
	}
	c.Camera = *NewCamera(fov, aspect, 0.1, 100)
	c.Camera.Target = target
	c.updatePosition()
	return c
}

// Orbit nudges the target yaw/pitch; the movement lands over the following
// Update calls.
func (c *OrbitCamera) Orbit(deltaYaw, deltaPitch float32) {
	c.targetYaw += deltaYaw
	c.targetPitch = clamp(c.targetPitch+deltaPitch, -maxPitch, maxPitch)
}

func (c *OrbitCamera) Zoom(delta float32) {
	c.targetDistance += delta
	if c.targetDistance < minDistance {
		c.targetDistance = minDistance
	}
}

// Update advances the damped yaw/pitch/distance toward their targets and
// recomputes the camera position.
func (c *OrbitCamera) Update(dt float32) {
	blend := 1 - math32.Exp(-c.Damping*dt)
	c.Yaw += (c.targetYaw - c.Yaw) * blend
	c.Pitch += (c.targetPitch - c.Pitch) * blend
	c.Distance += (c.targetDistance - c.Distance) * blend
	c.updatePosition()
}

func (c *OrbitCamera) updatePosition() {
	cosPitch := math32.Cos(c.Pitch)
	sinPitch := math32.Sin(c.Pitch)
	cosYaw := math32.Cos(c.Yaw)
	sinYaw := math32.Sin(c.Yaw)

	offset := mgl32.Vec3{
		c.Distance * cosPitch * sinYaw,
		c.Distance * sinPitch,
		c.Distance * cosPitch * cosYaw,
	}
	c.Position = c.Camera.Target.Add(offset)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
