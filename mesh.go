package engine

import "sort"

// Mesh is one renderable object: an immutable set of source triangles, a
// per-frame working copy the pipeline is free to destroy, and the rotation
// accumulated so far. currentRotation is the only state that survives a
// frame; Reset rebuilds everything else.
type Mesh struct {
	ID     string
	Config *MeshConfig

	source          []*Triangle
	working         []*Triangle
	projected       []*Triangle
	currentRotation *Vec3d
}

// NewMesh builds a mesh from parser output. The triangles are deep-copied
// in, so the caller keeps no handle on the mesh's geometry. A nil config
// means defaults.
func NewMesh(id string, triangles []*Triangle, config *MeshConfig) *Mesh {
	if config == nil {
		config = NewMeshConfig()
	}
	cfg := config.sanitizedCopy(id)

	m := &Mesh{
		ID:              id,
		Config:          cfg,
		currentRotation: cfg.InitialRotation.Copy(),
	}
	m.source = make([]*Triangle, len(triangles))
	for i, t := range triangles {
		m.source[i] = t.Copy()
	}
	m.Reset()
	return m
}

// Rotate advances the spin for the frame and places the mesh in the world.
// When rotation is enabled each configured axis moves its component of
// currentRotation by RotationSpeed, resetting to zero once the forward
// value reaches 360 or the reverse value reaches -360. Every working
// triangle is then rotated by currentRotation and translated by the
// configured position — the position is applied after the rotation, so it
// is always a world-axis offset.
func (m *Mesh) Rotate() {
	if m.Config.RotationEnabled {
		for _, axis := range m.Config.RotationAxes {
			sel := axisSelectors[axis]
			value := m.currentRotation.component(sel.component) + sel.direction*m.Config.RotationSpeed
			if sel.direction > 0 && value >= 360 {
				value = 0
			}
			if sel.direction < 0 && value <= -360 {
				value = 0
			}
			m.currentRotation.setComponent(sel.component, value)
		}
	}

	for _, t := range m.working {
		t.Rotate(m.currentRotation)
		t.SetLocation(m.Config.Position)
	}
}

// Project depth-sorts the working triangles farthest-first (stable, so
// equal depths keep their input order), drops back-facing ones when
// culling is enabled, and moves the rest into pixel space.
func (m *Mesh) Project(camera *Camera, width, height float64) {
	projection := camera.ProjectionMatrix(height / width)

	sort.SliceStable(m.working, func(i, j int) bool {
		return m.working[i].Center.Z > m.working[j].Center.Z
	})

	m.projected = m.projected[:0]
	for _, t := range m.working {
		if m.Config.Culling && camera.Difference(t) >= 0 {
			continue
		}
		t.Project(camera, width, height, projection)
		m.projected = append(m.projected, t)
	}
}

// Draw emits primitives for every projected triangle in painter order.
func (m *Mesh) Draw(surface Surface) {
	solid, _ := parseHexColor(m.Config.Color)

	for _, t := range m.projected {
		switch m.Config.DrawMode {
		case DrawVertex:
			surface.PlotPixel(t.A.X, t.A.Y, solid)
			surface.PlotPixel(t.B.X, t.B.Y, solid)
			surface.PlotPixel(t.C.X, t.C.Y, solid)
		case DrawCrosses:
			for _, p := range []*Vec3d{t.A, t.B, t.C} {
				drawCross(surface, p.X, p.Y, solid)
			}
		case DrawWire:
			surface.StrokeTriangle(t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y, 1, solid)
		case DrawShaded:
			intensity := (m.Config.LightSource.Dot(t.Normal) + 1) / 2
			t.Color = shadeHexColor(m.Config.Color, intensity)
			shaded, _ := parseHexColor(t.Color)
			surface.FillTriangle(t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y, shaded)
			surface.StrokeTriangle(t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y, 1, shaded)
		}
	}
}

// Reset throws the working copy away and rebuilds it from the source
// triangles. currentRotation is deliberately left alone.
func (m *Mesh) Reset() {
	m.working = make([]*Triangle, len(m.source))
	for i, t := range m.source {
		m.working[i] = t.Copy()
	}
	m.projected = nil
}
