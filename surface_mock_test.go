package engine

import "image/color"

// recordingSurface is a Surface that keeps what was drawn on it, so tests
// can assert on emitted primitives without an ebiten context.
type recordingSurface struct {
	width  float64
	height float64

	pixels  [][2]float64
	lines   int
	strokes []color.RGBA
	fills   []color.RGBA
}

func newRecordingSurface(width, height float64) *recordingSurface {
	return &recordingSurface{width: width, height: height}
}

func (s *recordingSurface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *recordingSurface) PlotPixel(x, y float64, clr color.RGBA) {
	s.pixels = append(s.pixels, [2]float64{x, y})
}

func (s *recordingSurface) Line(x1, y1, x2, y2 float64, width float32, clr color.RGBA) {
	s.lines++
}

func (s *recordingSurface) StrokeTriangle(x1, y1, x2, y2, x3, y3 float64, width float32, clr color.RGBA) {
	s.strokes = append(s.strokes, clr)
}

func (s *recordingSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, clr color.RGBA) {
	s.fills = append(s.fills, clr)
}
