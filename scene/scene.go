package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Fixed layout of the beach. Positions are world-space.
var (
	// LampPositions feed the two point lights of the model shader.
	LampPositions = [2]mgl32.Vec3{
		{-2.32, 0.54, 6.8},
		{-1, 3, 4},
	}
	// LightCubePositions mark the lamps with small unlit cubes.
	LightCubePositions = [2]mgl32.Vec3{
		{-3.32, 0.54, 6.8},
		{-1, 3, 4},
	}
	// FloorLightPosition is the single light of the floor shader.
	FloorLightPosition = mgl32.Vec3{-3.75, 0, 3.5}
	// GrassPositions are the bottom-left corners of the grass sprites.
	GrassPositions = []mgl32.Vec3{
		{10, -8.5, 3.5},
		{10, -7, 3.5},
		{10, -5.5, 3.5},
		{10, -8.5, 6.5},
		{10, -7, 6.5},
		{10, -5.5, 6.5},
	}
)

const (
	NearPlane = 0.1
	FarPlane  = 100.0

	MaterialShininess = 32.0

	// BallDirection scales the ball's bobbing offset; -1 bounces it
	// toward the camera side of its rest point.
	BallDirection = -1.0
)

var (
	xAxis = mgl32.Vec3{1, 0, 0}
	yAxis = mgl32.Vec3{0, 1, 0}
)

// rotate builds a rotation about an arbitrary, not necessarily unit, axis.
func rotate(deg float32, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize())
}

func UmbrellaTransform() mgl32.Mat4 {
	return mgl32.Translate3D(-2.5, -1.2, 10.5).
		Mul4(rotate(80, mgl32.Vec3{0.85, 0, 1})).
		Mul4(rotate(150, yAxis)).
		Mul4(mgl32.Scale3D(0.017, 0.017, 0.017))
}

// BallTransform bobs the ball on a sine of the elapsed time t in seconds.
func BallTransform(t float64) mgl32.Mat4 {
	offset := mgl32.Vec3{0, float32(math.Sin(t*4) * 4), 2}.Mul(BallDirection)
	pos := mgl32.Vec3{8, -15, 35}.Add(offset)
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(rotate(30, yAxis)).
		Mul4(mgl32.Scale3D(0.2, 0.2, 0.2))
}

func CoconutTransform() mgl32.Mat4 {
	return mgl32.Translate3D(-13, -8, 3.5).
		Mul4(rotate(-90, xAxis)).
		Mul4(mgl32.Scale3D(0.008, 0.008, 0.008))
}

func TowelTransform() mgl32.Mat4 {
	return mgl32.Translate3D(-3.5, -7.6, 25).
		Mul4(rotate(90, mgl32.Vec3{0.4, 0, 0})).
		Mul4(mgl32.Scale3D(3, 3, 3))
}

func LightCubeTransform(pos mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.Scale3D(0.2, 0.2, 0.2))
}

func GrassTransform(pos mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.Scale3D(2.5, 2.5, 2.5)).
		Mul4(rotate(90, yAxis))
}

// Frame is every value one frame of the beach needs, in draw order.
type Frame struct {
	ClearColor mgl32.Vec3

	Projection mgl32.Mat4
	View       mgl32.Mat4
	// SkyboxView is View with its translation removed.
	SkyboxView mgl32.Mat4
	ViewPos    mgl32.Vec3

	Lamps      [2]PointLight
	Flashlight SpotLight
	Shininess  float32

	Umbrella mgl32.Mat4
	Ball     mgl32.Mat4
	Coconut  mgl32.Mat4
	Towel    mgl32.Mat4

	LightCubes [2]mgl32.Mat4

	FloorLight mgl32.Vec3
	Blinn      bool

	Grass []mgl32.Mat4
}

// PlanFrame computes the frame for st at time t (seconds) and the given
// viewport aspect ratio.
func PlanFrame(st *ProgramState, aspect float32, t float64) Frame {
	cam := st.Camera
	view := cam.ViewMatrix()

	f := Frame{
		ClearColor: st.ClearColor,
		Projection: cam.ProjectionMatrix(aspect, NearPlane, FarPlane),
		View:       view,
		SkyboxView: view.Mat3().Mat4(),
		ViewPos:    cam.Position,
		Flashlight: NewFlashlight(cam),
		Shininess:  MaterialShininess,
		Umbrella:   UmbrellaTransform(),
		Ball:       BallTransform(t),
		Coconut:    CoconutTransform(),
		Towel:      TowelTransform(),
		FloorLight: FloorLightPosition,
		Blinn:      st.Blinn,
		Grass:      make([]mgl32.Mat4, len(GrassPositions)),
	}
	for i, p := range LampPositions {
		f.Lamps[i] = NewBeachLight(p)
	}
	for i, p := range LightCubePositions {
		f.LightCubes[i] = LightCubeTransform(p)
	}
	for i, p := range GrassPositions {
		f.Grass[i] = GrassTransform(p)
	}
	return f
}

// ShadingName names the floor's lighting model for diagnostics.
func (f Frame) ShadingName() string {
	if f.Blinn {
		return "Blinn-Phong"
	}
	return "Phong"
}
