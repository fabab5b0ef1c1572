package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat2 is a 2x2 matrix stored as [row][column].
type Mat2 [2][2]float64

// NewRotationMat2 builds the standard counter-clockwise rotation matrix for
// the given angle in radians.
func NewRotationMat2(theta float64) *Mat2 {
	c, s := math.Cos(theta), math.Sin(theta)
	return &Mat2{
		{c, -s},
		{s, c},
	}
}

// Apply multiplies the matrix with the column vector (a, b).
func (m *Mat2) Apply(a, b float64) (float64, float64) {
	return m[0][0]*a + m[0][1]*b, m[1][0]*a + m[1][1]*b
}

// Mat4 is a 4x4 matrix stored as [row][column], applied to row vectors so
// that translation lives in the fourth row.
type Mat4 [4][4]float64

func IdentMat4() *Mat4 {
	m := &Mat4{}
	m[0][0], m[1][1], m[2][2], m[3][3] = 1, 1, 1, 1
	return m
}

// Mat4FromMGL converts a column-major mgl64 matrix into the row-vector
// convention used here.
func Mat4FromMGL(m mgl64.Mat4) *Mat4 {
	out := &Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row][col] = m[row*4+col]
		}
	}
	return out
}
