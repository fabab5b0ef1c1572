package engine

import "image/color"

// Renderer runs the per-frame pipeline for a list of meshes against one
// camera. One RenderFrame call is one tick: rotate, project, draw and
// reset every mesh, synchronously, in list order.
type Renderer struct {
	Camera     *Camera
	DrawOrigin bool

	meshes []*Mesh
}

func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{Camera: camera}
}

func (r *Renderer) AddMesh(m *Mesh) {
	r.meshes = append(r.meshes, m)
}

func (r *Renderer) Meshes() []*Mesh {
	return r.meshes
}

// RenderFrame draws one frame onto the surface and returns once every
// mesh has been processed.
func (r *Renderer) RenderFrame(surface Surface) {
	width, height := surface.Size()

	for _, m := range r.meshes {
		m.Rotate()
		m.Project(r.Camera, width, height)
		m.Draw(surface)
		m.Reset()
	}

	if r.DrawOrigin {
		origin := NewVec3d(0, 0, 0)
		origin.Project(r.Camera, width, height, r.Camera.ProjectionMatrix(height/width))
		drawCross(surface, origin.X, origin.Y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
}
