package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PointLight is an omni light with quadratic distance attenuation
// 1 / (Constant + Linear*d + Quadratic*d²).
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32
}

// SpotLight is a cone light. CutOff and OuterCutOff are cosines of the inner
// and outer half-angles; intensity fades between them.
type SpotLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	CutOff      float32
	OuterCutOff float32
}

// NewBeachLight returns the warm point light used for both lamps on the
// beach.
func NewBeachLight(position mgl32.Vec3) PointLight {
	return PointLight{
		Position:  position,
		Ambient:   mgl32.Vec3{0.35, 0.35, 0.35},
		Diffuse:   mgl32.Vec3{0.84, 0.84, 0.84},
		Specular:  mgl32.Vec3{1, 1, 1},
		Constant:  0.1,
		Linear:    0.03,
		Quadratic: 0.032,
	}
}

// NewFlashlight returns a spot light sitting at the camera and pointing
// where it looks.
func NewFlashlight(cam *Camera) SpotLight {
	return SpotLight{
		Position:    cam.Position,
		Direction:   cam.Front,
		Ambient:     mgl32.Vec3{0, 0, 0},
		Diffuse:     mgl32.Vec3{1, 1, 1},
		Specular:    mgl32.Vec3{1, 1, 1},
		Constant:    0.5,
		Linear:      0.03,
		Quadratic:   0.032,
		CutOff:      cosDeg(12.5),
		OuterCutOff: cosDeg(15),
	}
}

// cosDeg converts an angle in degrees to its cosine (for spot light cutoffs).
func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}
