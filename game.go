package engine

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game drives the renderer from ebiten's frame loop: one Update/Draw pair
// per tick is the externally-owned frame signal. Dragging the mouse orbits
// the camera, the arrow keys move it.
type Game struct {
	Renderer *Renderer

	width    int
	height   int
	dragging bool
	lastX    int
	lastY    int
}

func NewGame(renderer *Renderer, width, height int) *Game {
	return &Game{
		Renderer: renderer,
		width:    width,
		height:   height,
	}
}

func (g *Game) Update() error {
	cam := g.Renderer.Camera

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		cam.Rotation.Y += float64(x-g.lastX) / 4.0
		cam.Rotation.X += float64(y-g.lastY) / 4.0
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	const step = 0.25
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		cam.Position.Z += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		cam.Position.Z -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		cam.Position.X -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		cam.Position.X += step
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.Renderer.RenderFrame(NewImageSurface(screen))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
