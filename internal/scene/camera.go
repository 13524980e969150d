package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// NearFarMargin is the minimum gap kept between the near and far planes
	NearFarMargin = 0.5
	// MinNear is the smallest accepted near plane distance
	MinNear = 0.1

	// Eye height range reachable from the keyboard
	MinHeight = 0.0
	MaxHeight = 20.0
)

// Camera holds the eye/at/up frame and the perspective parameters
type Camera struct {
	Eye mgl32.Vec3
	At  mgl32.Vec3
	Up  mgl32.Vec3

	Fovy   float32 // degrees
	Aspect float32
	Near   float32
	Far    float32

	// AspectLocked keeps Aspect when the framebuffer is resized
	AspectLocked bool
}

// NewCamera returns the startup camera
func NewCamera() *Camera {
	return &Camera{
		Eye:    mgl32.Vec3{5, 5, 5},
		At:     mgl32.Vec3{0, 0.5, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Fovy:   45,
		Aspect: 1,
		Near:   0.1,
		Far:    20,
	}
}

// ViewMatrix returns the look-at matrix for the current eye frame
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.At, c.Up)
}

// ProjectionMatrix returns the perspective projection for the current parameters
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), c.Aspect, c.Near, c.Far)
}

// Orbit rotates the eye around the vertical axis by deltaDegrees.
// Radius in the XZ plane and eye height are preserved.
func (c *Camera) Orbit(deltaDegrees float32) {
	radius := math32.Hypot(c.Eye.X(), c.Eye.Z())
	if radius == 0 {
		return
	}
	angle := math32.Atan2(c.Eye.Z(), c.Eye.X()) + mgl32.DegToRad(deltaDegrees)
	sin, cos := math32.Sincos(angle)
	c.Eye[0] = radius * cos
	c.Eye[2] = radius * sin
}

// OnResize derives the aspect ratio from the framebuffer size
func (c *Camera) OnResize(width, height int) {
	if height <= 0 || width <= 0 || c.AspectLocked {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// SetNear moves the near plane, keeping it at least NearFarMargin in front of the far plane
func (c *Camera) SetNear(v float32) {
	c.Near = mgl32.Clamp(v, MinNear, c.Far-NearFarMargin)
}

// SetFar moves the far plane, keeping it at least NearFarMargin behind the near plane
func (c *Camera) SetFar(v float32) {
	c.Far = max(v, c.Near+NearFarMargin)
}

// SetPerspective applies all four projection parameters with the usual clamps.
// Far is applied first so that a near value valid for the new far is accepted.
func (c *Camera) SetPerspective(fovy, aspect, near, far float32) {
	c.Fovy = fovy
	if aspect > 0 {
		c.Aspect = aspect
	}
	c.Near = max(near, MinNear)
	c.Far = max(far, c.Near+NearFarMargin)
	c.SetNear(near)
}

// SetHeight places the eye at height y, clamped to the keyboard range
func (c *Camera) SetHeight(y float32) {
	c.Eye[1] = mgl32.Clamp(y, MinHeight, MaxHeight)
}

// AdjustHeight moves the eye up or down by dy
func (c *Camera) AdjustHeight(dy float32) {
	c.SetHeight(c.Eye.Y() + dy)
}
