package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraMovement is a keyboard-driven translation direction.
type CameraMovement int

const (
	Forward CameraMovement = iota
	Backward
	Left
	Right
)

// Camera defaults.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0
	DefaultZoomMin     = 1.0

	// MaxPitch keeps the front vector away from world-up so the cross
	// product that yields Right never degenerates.
	MaxPitch = 89.0
)

// Camera is a free-look camera oriented by Euler angles in degrees.
// Front, Right and Up are derived from Yaw and Pitch; call SetFront to go
// the other way.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
	ZoomMin          float32
	ZoomMax          float32
}

// NewCamera places a camera at position looking down -Z.
func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
		ZoomMin:          DefaultZoomMin,
		ZoomMax:          DefaultZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the look-at matrix for the current position and front.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns a perspective projection using Zoom as the
// vertical field of view.
func (c *Camera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

// ProcessKeyboard moves the camera along its front or right axis.
func (c *Camera) ProcessKeyboard(direction CameraMovement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by an offset in screen units. A
// positive yOffset looks up. Pitch is clamped to ±MaxPitch.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch = clamp(c.Pitch+yOffset*c.MouseSensitivity, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// ProcessMouseScroll narrows (positive yOffset) or widens the field of view
// within [ZoomMin, ZoomMax].
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Zoom = clamp(c.Zoom-yOffset, c.ZoomMin, c.ZoomMax)
}

// SetZoomBand sets the field-of-view limits and pulls Zoom back inside
// them.
func (c *Camera) SetZoomBand(lo, hi float32) {
	c.ZoomMin, c.ZoomMax = lo, hi
	c.Zoom = clamp(c.Zoom, lo, hi)
}

// SetFront points the camera along dir and re-derives Yaw and Pitch, so a
// later mouse movement continues from this orientation. Front keeps dir
// exactly as given; Right and Up follow the derived angles. A zero dir is
// ignored. The norm is taken in float64 so tiny components survive.
func (c *Camera) SetFront(dir mgl32.Vec3) {
	x, y, z := float64(dir[0]), float64(dir[1]), float64(dir[2])
	l := math.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return
	}
	sinPitch := math.Max(-1, math.Min(1, y/l))
	c.Pitch = clamp(mgl32.RadToDeg(float32(math.Asin(sinPitch))), -MaxPitch, MaxPitch)
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(z, x)))
	c.updateVectors()
	c.Front = dir
}

// updateVectors recomputes Front, Right and Up from the Euler angles.
func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
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
