package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const float64EqualityThreshold = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vecAlmostEqual(a, b *Vec3d) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestRotateByZeroIsIdentity(t *testing.T) {
	v := NewVec3d(1.5, -2.25, 3.75)
	want := v.Copy()

	v.Rotate(NewVec3d(0, 0, 0))

	if !vecAlmostEqual(v, want) {
		t.Errorf("Rotate(0,0,0) = %v, want %v", v, want)
	}
}

func TestRotateMatchesReferenceMatrices(t *testing.T) {
	// The X then Y then Z composition must agree with the equivalent
	// Rz*Ry*Rx homogeneous rotation built by mgl64.
	testCases := []struct {
		name    string
		degrees *Vec3d
		vec     *Vec3d
	}{
		{"single axis", NewVec3d(90, 0, 0), NewVec3d(0, 1, 0)},
		{"two axes", NewVec3d(30, 45, 0), NewVec3d(1, 2, 3)},
		{"all axes", NewVec3d(10, 20, 30), NewVec3d(-1, 0.5, 2)},
		{"negative angles", NewVec3d(-75, 120, -200), NewVec3d(3, -4, 5)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reference := mgl64.HomogRotate3DZ(mgl64.DegToRad(tc.degrees.Z)).
				Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(tc.degrees.Y))).
				Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(tc.degrees.X)))

			want := tc.vec.Copy()
			want.MultiplyByMatrix4x4(Mat4FromMGL(reference))

			got := tc.vec.Copy()
			got.Rotate(tc.degrees)

			if !vecAlmostEqual(got, want) {
				t.Errorf("Rotate(%v) = %v, want %v", tc.degrees, got, want)
			}
		})
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := NewVec3d(2, -3, 6)
	before := v.Length()

	v.Rotate(NewVec3d(33, -127, 289))

	if !almostEqual(before, v.Length()) {
		t.Errorf("rotation changed length from %f to %f", before, v.Length())
	}
}

func TestNormalizeIdempotentOnUnitVector(t *testing.T) {
	v := NewVec3d(1, 2, 2)
	v.Normalize()
	want := v.Copy()

	v.Normalize()

	if !vecAlmostEqual(v, want) {
		t.Errorf("second Normalize() = %v, want %v", v, want)
	}
	if !almostEqual(v.Length(), 1) {
		t.Errorf("normalized length = %f, want 1", v.Length())
	}
}

func TestNormalizeZeroVectorYieldsNaN(t *testing.T) {
	v := NewVec3d(0, 0, 0)
	v.Normalize()

	if !math.IsNaN(v.X) || !math.IsNaN(v.Y) || !math.IsNaN(v.Z) {
		t.Errorf("Normalize() on zero vector = %v, want NaN components", v)
	}
}

func TestMultiplyByMatrix4x4PerspectiveDivide(t *testing.T) {
	// w comes out as the input z with this matrix.
	m := &Mat4{}
	m[0][0], m[1][1], m[2][2] = 1, 1, 1
	m[2][3] = 1

	v := NewVec3d(4, 6, 2)
	v.MultiplyByMatrix4x4(m)

	if !vecAlmostEqual(v, NewVec3d(2, 3, 1)) {
		t.Errorf("divide by w: got %v, want (2 3 1)", v)
	}
}

func TestMultiplyByMatrix4x4SkipsDivideWhenWZero(t *testing.T) {
	m := &Mat4{}
	m[0][0], m[1][1], m[2][2] = 1, 1, 1
	m[2][3] = 1 // w = z, which is zero here

	v := NewVec3d(4, 6, 0)
	v.MultiplyByMatrix4x4(m)

	if !vecAlmostEqual(v, NewVec3d(4, 6, 0)) {
		t.Errorf("w=0: got %v, want values left un-normalized (4 6 0)", v)
	}
}

func TestProjectCenterOfView(t *testing.T) {
	camera := NewCamera(NewVec3d(0, 0, 0), NewVec3d(0, 0, 0))
	width, height := 800.0, 600.0
	projection := camera.ProjectionMatrix(height / width)

	v := NewVec3d(0, 0, 10)
	v.Project(camera, width, height, projection)

	if !almostEqual(v.X, width/2) || !almostEqual(v.Y, height/2) {
		t.Errorf("point on the view axis projected to (%f, %f), want screen centre (400, 300)", v.X, v.Y)
	}
}

func TestProjectSubtractsCameraPosition(t *testing.T) {
	camera := NewCamera(NewVec3d(1, -2, -10), NewVec3d(0, 0, 0))
	width, height := 800.0, 600.0
	projection := camera.ProjectionMatrix(height / width)

	// Same world offset from the camera as in TestProjectCenterOfView.
	v := NewVec3d(1, -2, 0)
	v.Project(camera, width, height, projection)

	if !almostEqual(v.X, width/2) || !almostEqual(v.Y, height/2) {
		t.Errorf("camera-relative point projected to (%f, %f), want (400, 300)", v.X, v.Y)
	}
}

func TestVec2dRotate(t *testing.T) {
	v := NewVec2d(1, 0)
	v.Rotate(math.Pi / 2)

	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 1) {
		t.Errorf("rotating (1,0) by 90 degrees = (%f, %f), want (0, 1)", v.X, v.Y)
	}
}
