package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	engine "github.com/aracsidev/3d-engine"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

func main() {
	scenePath := flag.String("scene", "", "TOML scene file to load (default: built-in demo scene)")
	drawOrigin := flag.Bool("origin", false, "mark the world origin")
	flag.Parse()

	var (
		renderer *engine.Renderer
		err      error
	)
	if *scenePath != "" {
		renderer, err = engine.LoadScene(*scenePath)
		if err != nil {
			log.Fatalf("loading scene: %v", err)
		}
	} else {
		renderer = demoScene()
	}
	renderer.DrawOrigin = *drawOrigin

	log.Printf("rendering %d meshes", len(renderer.Meshes()))

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("3d-engine viewer")
	if err := ebiten.RunGame(engine.NewGame(renderer, screenWidth, screenHeight)); err != nil {
		log.Fatal(err)
	}
}

func demoScene() *engine.Renderer {
	camera := engine.NewCamera(engine.NewVec3d(0, 0, -6), engine.NewVec3d(0, 0, 0))
	renderer := engine.NewRenderer(camera)

	cube := engine.NewMeshConfig()
	cube.Position = engine.NewVec3d(-1.5, 0, 0)
	cube.RotationAxes = []engine.Axis{engine.AxisX, engine.AxisY}
	cube.DrawMode = engine.DrawShaded
	cube.Color = "#E04F1A"
	cube.LightSource = engine.NewVec3d(0.5, -0.5, -1)
	renderer.AddMesh(engine.NewMesh("cube", engine.CubeTriangles(2), cube))

	sphere := engine.NewMeshConfig()
	sphere.Position = engine.NewVec3d(1.5, 0, 0)
	sphere.RotationAxes = []engine.Axis{engine.AxisNegY}
	sphere.RotationSpeed = 0.5
	sphere.DrawMode = engine.DrawWire
	sphere.Color = "#3FA7D6"
	renderer.AddMesh(engine.NewMesh("sphere", engine.UVSphereTriangles(1, 14, 8), sphere))

	return renderer
}
