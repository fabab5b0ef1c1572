package engine

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// SceneFile is the on-disk description of a renderable scene: one camera
// and any number of meshes. Mesh geometry comes from a local file, an
// HTTP(S) URL or one of the built-in shapes.
type SceneFile struct {
	Camera CameraSpec `toml:"camera"`
	Meshes []MeshSpec `toml:"mesh"`
}

type CameraSpec struct {
	Position [3]float64 `toml:"position"`
	Rotation [3]float64 `toml:"rotation"`
	FOV      float64    `toml:"fov"`
	Near     float64    `toml:"near"`
	Far      float64    `toml:"far"`
}

type MeshSpec struct {
	ID string `toml:"id"`

	// Exactly one geometry source.
	File  string  `toml:"file"`
	URL   string  `toml:"url"`
	Shape string  `toml:"shape"` // "cube" or "sphere"
	Size  float64 `toml:"size"`

	Position        [3]float64  `toml:"position"`
	InitialRotation [3]float64  `toml:"initialRotation"`
	RotationEnabled *bool       `toml:"rotationEnabled"`
	RotationSpeed   *float64    `toml:"rotationSpeed"`
	RotationAxes    []string    `toml:"rotationAxes"`
	Culling         *bool       `toml:"culling"`
	Color           string      `toml:"color"`
	Draw            string      `toml:"draw"`
	LightSource     *[3]float64 `toml:"lightSource"`
}

func vec3FromArray(a [3]float64) *Vec3d {
	return NewVec3d(a[0], a[1], a[2])
}

// LoadScene reads a TOML scene file, fetches and parses every mesh source
// and returns a renderer ready to draw frames. Relative mesh file paths
// are resolved against the scene file's directory.
func LoadScene(path string) (*Renderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	var scene SceneFile
	if err := toml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}

	return BuildScene(&scene, filepath.Dir(path))
}

// BuildScene turns a parsed scene description into a renderer. baseDir is
// where relative mesh file paths are resolved.
func BuildScene(scene *SceneFile, baseDir string) (*Renderer, error) {
	fov := scene.Camera.FOV
	if fov == 0 {
		fov = DefaultFOVDegrees
	}
	near := scene.Camera.Near
	if near == 0 {
		near = DefaultNearPlane
	}
	far := scene.Camera.Far
	if far == 0 {
		far = DefaultFarPlane
	}
	camera := NewCameraLens(
		vec3FromArray(scene.Camera.Position),
		vec3FromArray(scene.Camera.Rotation),
		fov, near, far,
	)

	renderer := NewRenderer(camera)
	for i, spec := range scene.Meshes {
		id := spec.ID
		if id == "" {
			id = fmt.Sprintf("mesh-%d", i)
		}

		triangles, err := loadGeometry(&spec, baseDir)
		if err != nil {
			return nil, fmt.Errorf("mesh %s: %w", id, err)
		}

		config, err := meshConfigFromSpec(&spec)
		if err != nil {
			return nil, fmt.Errorf("mesh %s: %w", id, err)
		}

		renderer.AddMesh(NewMesh(id, triangles, config))
	}
	return renderer, nil
}

func loadGeometry(spec *MeshSpec, baseDir string) ([]*Triangle, error) {
	switch {
	case spec.Shape != "":
		size := spec.Size
		if size == 0 {
			size = 1
		}
		switch strings.ToLower(spec.Shape) {
		case "cube":
			return CubeTriangles(size), nil
		case "sphere":
			return UVSphereTriangles(size/2, 14, 8), nil
		default:
			return nil, fmt.Errorf("unknown shape %q", spec.Shape)
		}
	case spec.URL != "":
		source, err := fetchMeshSource(spec.URL)
		if err != nil {
			return nil, err
		}
		return ParseMeshString(source)
	case spec.File != "":
		path := spec.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading mesh source: %w", err)
		}
		return ParseMeshString(string(data))
	default:
		return nil, fmt.Errorf("no geometry source configured")
	}
}

// fetchMeshSource retrieves mesh description text over HTTP(S). The fetch
// always completes before the mesh is built; the pipeline never sees a
// pending retrieval.
func fetchMeshSource(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching mesh source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching mesh source %s: %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading mesh source %s: %w", url, err)
	}
	return string(data), nil
}

func meshConfigFromSpec(spec *MeshSpec) (*MeshConfig, error) {
	config := NewMeshConfig()
	config.Position = vec3FromArray(spec.Position)
	config.InitialRotation = vec3FromArray(spec.InitialRotation)

	if spec.RotationEnabled != nil {
		config.RotationEnabled = *spec.RotationEnabled
	}
	if spec.RotationSpeed != nil {
		config.RotationSpeed = *spec.RotationSpeed
	}
	if spec.Culling != nil {
		config.Culling = *spec.Culling
	}
	if spec.Color != "" {
		config.Color = spec.Color
	}
	if spec.Draw != "" {
		mode, err := ParseDrawMode(spec.Draw)
		if err != nil {
			return nil, err
		}
		config.DrawMode = mode
	}
	if len(spec.RotationAxes) > 0 {
		config.RotationAxes = config.RotationAxes[:0]
		for _, name := range spec.RotationAxes {
			axis, err := ParseAxis(name)
			if err != nil {
				return nil, err
			}
			config.RotationAxes = append(config.RotationAxes, axis)
		}
	}
	if spec.LightSource != nil {
		config.LightSource = vec3FromArray(*spec.LightSource)
	}
	return config, nil
}
