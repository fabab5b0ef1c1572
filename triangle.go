package engine

// Triangle is a single face with three corners and the derived data the
// pipeline needs: a unit normal and the centroid. Both are recomputed every
// time the corners change so they can never be observed stale. A zero-area
// triangle has no defined normal and ends up with NaN components.
//
// Color holds the display colour of the most recent shaded draw as a hex
// string. It is render output, not part of the triangle's identity, and is
// overwritten every frame the shaded path runs.
type Triangle struct {
	A *Vec3d
	B *Vec3d
	C *Vec3d

	Normal *Vec3d
	Center *Vec3d
	Color  string
}

// NewTriangle builds a triangle from copies of the given corners.
func NewTriangle(a, b, c *Vec3d) *Triangle {
	t := &Triangle{
		A: a.Copy(),
		B: b.Copy(),
		C: c.Copy(),
	}
	t.recomputeNormal()
	t.recomputeCenter()
	return t
}

func (t *Triangle) Copy() *Triangle {
	return NewTriangle(t.A, t.B, t.C)
}

func (t *Triangle) recomputeNormal() {
	n := Cross(Sub(t.B, t.A), Sub(t.C, t.A))
	n.Normalize()
	t.Normal = n
}

func (t *Triangle) recomputeCenter() {
	t.Center = NewVec3d(
		(t.A.X+t.B.X+t.C.X)/3,
		(t.A.Y+t.B.Y+t.C.Y)/3,
		(t.A.Z+t.B.Z+t.C.Z)/3,
	)
}

// SetLocation translates all three corners by delta. Translation preserves
// orientation, so only the centroid needs recomputing.
func (t *Triangle) SetLocation(delta *Vec3d) {
	t.A.Add(delta)
	t.B.Add(delta)
	t.C.Add(delta)
	t.recomputeCenter()
}

// Rotate rotates all three corners about the origin by the given degree
// vector, then refreshes the derived normal and centroid.
func (t *Triangle) Rotate(degrees *Vec3d) {
	t.A.Rotate(degrees)
	t.B.Rotate(degrees)
	t.C.Rotate(degrees)
	t.recomputeNormal()
	t.recomputeCenter()
}

// Project moves all three corners into pixel space and refreshes the
// derived fields.
func (t *Triangle) Project(camera *Camera, width, height float64, projection *Mat4) {
	t.A.Project(camera, width, height, projection)
	t.B.Project(camera, width, height, projection)
	t.C.Project(camera, width, height, projection)
	t.recomputeNormal()
	t.recomputeCenter()
}
