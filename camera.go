package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	MinFOVDegrees = 60
	MaxFOVDegrees = 120

	DefaultFOVDegrees = 90
	DefaultNearPlane  = 0.1
	DefaultFarPlane   = 1000.0
)

// Camera holds the view parameters of the single viewpoint a frame is
// rendered from. Rotation is Euler angles in degrees; FOV is kept in
// radians internally.
type Camera struct {
	Position *Vec3d
	Rotation *Vec3d
	FOV      float64
	Near     float64
	Far      float64
}

// NewCamera builds a camera with the default lens (90 degree field of
// view, near 0.1, far 1000).
func NewCamera(position, rotation *Vec3d) *Camera {
	return NewCameraLens(position, rotation, DefaultFOVDegrees, DefaultNearPlane, DefaultFarPlane)
}

// NewCameraLens builds a camera with an explicit lens. The field of view is
// given in degrees and pinned to [60,120]; out-of-range values are clamped
// to the nearer boundary, never rejected.
func NewCameraLens(position, rotation *Vec3d, fovDegrees, near, far float64) *Camera {
	if fovDegrees < MinFOVDegrees {
		fovDegrees = MinFOVDegrees
	}
	if fovDegrees > MaxFOVDegrees {
		fovDegrees = MaxFOVDegrees
	}
	return &Camera{
		Position: position.Copy(),
		Rotation: rotation.Copy(),
		FOV:      mgl64.DegToRad(fovDegrees),
		Near:     near,
		Far:      far,
	}
}

// ProjectionMatrix derives the perspective transform for the given aspect
// ratio (height over width).
func (c *Camera) ProjectionMatrix(aspect float64) *Mat4 {
	m := &Mat4{}
	m[1][1] = 1 / math.Tan(c.FOV/2)
	m[0][0] = aspect * m[1][1]
	m[2][2] = c.Far / (c.Far - c.Near)
	m[3][2] = (-c.Far * c.Near) / (c.Far - c.Near)
	m[2][3] = 1
	return m
}

// Difference is the backface test: the dot product of a triangle's normal
// with the vector from the camera to the triangle's centre. Negative means
// front-facing. The test is orientation-only; it ignores camera rotation
// and field of view, so a front-facing triangle can still lie outside the
// viewing frustum.
func (c *Camera) Difference(t *Triangle) float64 {
	return t.Normal.Dot(Sub(t.Center, c.Position))
}
