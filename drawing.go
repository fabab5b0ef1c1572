package engine

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// ImageSurface adapts an ebiten image to the Surface interface.
type ImageSurface struct {
	Image *ebiten.Image
}

func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{Image: img}
}

func (s *ImageSurface) Size() (float64, float64) {
	bounds := s.Image.Bounds()
	return float64(bounds.Dx()), float64(bounds.Dy())
}

func (s *ImageSurface) PlotPixel(x, y float64, clr color.RGBA) {
	s.Image.Set(int(x), int(y), clr)
}

func (s *ImageSurface) Line(x1, y1, x2, y2 float64, width float32, clr color.RGBA) {
	vector.StrokeLine(s.Image, float32(x1), float32(y1), float32(x2), float32(y2), width, clr, false)
}

func (s *ImageSurface) StrokeTriangle(x1, y1, x2, y2, x3, y3 float64, width float32, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.LineTo(float32(x3), float32(y3))
	path.Close()

	strokeOp := &vector.StrokeOptions{Width: width}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)
	s.drawSolid(vertices, indices, clr)
}

func (s *ImageSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, clr color.RGBA) {
	vertices := make([]ebiten.Vertex, 3)
	for i, p := range [][2]float64{{x1, y1}, {x2, y2}, {x3, y3}} {
		vertices[i] = ebiten.Vertex{
			DstX: float32(p[0]),
			DstY: float32(p[1]),
			SrcX: 1,
			SrcY: 1,
		}
	}
	s.drawSolid(vertices, []uint16{0, 1, 2}, clr)
}

// drawSolid colours the vertices and draws them against the 1x1 white
// sub-image so the vertex colour comes through unmodified.
func (s *ImageSurface) drawSolid(vertices []ebiten.Vertex, indices []uint16, clr color.RGBA) {
	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	op := &ebiten.DrawTrianglesOptions{}
	s.Image.DrawTriangles(vertices, indices, whiteSub, op)
}
