package engine

import "image/color"

// Surface is the drawing sink the renderer emits pixel-space primitives
// to. It is written from a single goroutine in mesh-list order; no
// synchronization is expected of implementations.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (width, height float64)

	PlotPixel(x, y float64, clr color.RGBA)
	Line(x1, y1, x2, y2 float64, width float32, clr color.RGBA)
	StrokeTriangle(x1, y1, x2, y2, x3, y3 float64, width float32, clr color.RGBA)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, clr color.RGBA)
}

const crossArm = 5 // an 11-pixel "+" mark

func drawCross(surface Surface, x, y float64, clr color.RGBA) {
	surface.Line(x-crossArm, y, x+crossArm, y, 1, clr)
	surface.Line(x, y-crossArm, x, y+crossArm, 1, clr)
}
