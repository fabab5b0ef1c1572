package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Vec2d struct {
	X float64
	Y float64
}

func NewVec2d(x, y float64) *Vec2d {
	return &Vec2d{X: x, Y: y}
}

// Rotate rotates the vector counter-clockwise by the given angle in radians.
func (v *Vec2d) Rotate(angle float64) {
	v.X, v.Y = NewRotationMat2(angle).Apply(v.X, v.Y)
}

func (v *Vec2d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

type Vec3d struct {
	X float64
	Y float64
	Z float64
}

func NewVec3d(x, y, z float64) *Vec3d {
	return &Vec3d{X: x, Y: y, Z: z}
}

func (v *Vec3d) Copy() *Vec3d {
	return &Vec3d{X: v.X, Y: v.Y, Z: v.Z}
}

func (v *Vec3d) Add(other *Vec3d) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// Sub returns a new Vec3d that is the difference v1 - v2.
func Sub(v1, v2 *Vec3d) *Vec3d {
	return NewVec3d(v1.X-v2.X, v1.Y-v2.Y, v1.Z-v2.Z)
}

// Cross returns the cross product of two vectors as a new Vec3d.
func Cross(a, b *Vec3d) *Vec3d {
	return NewVec3d(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

func (v *Vec3d) Dot(other *Vec3d) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v *Vec3d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize divides the vector by its length in place. A zero vector
// produces NaN components; callers are expected not to feed one in.
func (v *Vec3d) Normalize() {
	length := v.Length()
	v.X /= length
	v.Y /= length
	v.Z /= length
}

// Rotate applies three 2D rotations about the X, then Y, then Z axis, in
// that order. The order is not commutative and the rest of the pipeline
// depends on it. Each component of degrees selects the angle for its axis.
func (v *Vec3d) Rotate(degrees *Vec3d) {
	rx := NewRotationMat2(mgl64.DegToRad(degrees.X))
	ry := NewRotationMat2(mgl64.DegToRad(degrees.Y))
	rz := NewRotationMat2(mgl64.DegToRad(degrees.Z))

	v.Y, v.Z = rx.Apply(v.Y, v.Z)
	v.Z, v.X = ry.Apply(v.Z, v.X)
	v.X, v.Y = rz.Apply(v.X, v.Y)
}

// MultiplyByMatrix4x4 treats the vector as a row vector (x y z 1), applies
// the homogeneous transform and divides by the resulting w. When w is zero
// the components are left un-normalized; that is not an error.
func (v *Vec3d) MultiplyByMatrix4x4(m *Mat4) {
	x := v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0]
	y := v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1]
	z := v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2]
	w := v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + m[3][3]

	if w != 0 {
		x /= w
		y /= w
		z /= w
	}
	v.X, v.Y, v.Z = x, y, z
}

// Project turns the world-space vector into pixel coordinates: camera
// translation, camera rotation, perspective transform, then a remap of the
// [-1,1] clip range onto [0,width]x[0,height]. Z keeps its post-projection
// value but nothing downstream reads it.
func (v *Vec3d) Project(camera *Camera, width, height float64, projection *Mat4) {
	v.X -= camera.Position.X
	v.Y -= camera.Position.Y
	v.Z -= camera.Position.Z

	v.Rotate(camera.Rotation)
	v.MultiplyByMatrix4x4(projection)

	v.X = (v.X + 1) * 0.5 * width
	v.Y = (v.Y + 1) * 0.5 * height
}

// component returns the value of the axis'th component (0=X, 1=Y, 2=Z).
func (v *Vec3d) component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (v *Vec3d) setComponent(axis int, value float64) {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
}
