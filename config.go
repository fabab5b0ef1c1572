package engine

import (
	"fmt"
	"log"
	"strings"
)

// DrawMode selects which primitives a mesh emits for its projected
// triangles. The modes are mutually exclusive.
type DrawMode int

const (
	DrawVertex DrawMode = iota
	DrawCrosses
	DrawWire
	DrawShaded
)

var drawModeNames = [...]string{"VERTEX", "CROSSES", "WIRE", "SHADED"}

func (d DrawMode) String() string {
	if d < 0 || int(d) >= len(drawModeNames) {
		return fmt.Sprintf("DrawMode(%d)", int(d))
	}
	return drawModeNames[d]
}

func ParseDrawMode(s string) (DrawMode, error) {
	for i, name := range drawModeNames {
		if strings.EqualFold(s, name) {
			return DrawMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown draw mode %q", s)
}

// Axis names one signed rotation axis. Spinning a mesh around "x"
// increments the x component of its rotation each tick, "-x" decrements it.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisNegX
	AxisNegY
	AxisNegZ
)

var axisNames = [...]string{"x", "y", "z", "-x", "-y", "-z"}

// axisSelectors maps each Axis onto the rotation component it drives
// (0=X, 1=Y, 2=Z) and the direction it moves in.
var axisSelectors = [...]struct {
	component int
	direction float64
}{
	AxisX:    {0, 1},
	AxisY:    {1, 1},
	AxisZ:    {2, 1},
	AxisNegX: {0, -1},
	AxisNegY: {1, -1},
	AxisNegZ: {2, -1},
}

func (a Axis) String() string {
	if a < 0 || int(a) >= len(axisNames) {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

func ParseAxis(s string) (Axis, error) {
	for i, name := range axisNames {
		if strings.EqualFold(s, name) {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rotation axis %q", s)
}

// MeshConfig carries everything about a mesh that is decided at load time.
// A Mesh keeps its own sanitized copy, so a config is effectively immutable
// once the mesh is built.
type MeshConfig struct {
	Position        *Vec3d
	InitialRotation *Vec3d
	RotationEnabled bool
	RotationSpeed   float64 // degrees per tick
	RotationAxes    []Axis  // 1 to 3 entries
	Culling         bool
	DrawMode        DrawMode
	Color           string // #rrggbb
	LightSource     *Vec3d // unit direction after sanitize
}

// NewMeshConfig returns the defaults: a white, culled wireframe spinning
// around Y, lit from straight ahead.
func NewMeshConfig() *MeshConfig {
	return &MeshConfig{
		Position:        NewVec3d(0, 0, 0),
		InitialRotation: NewVec3d(0, 0, 0),
		RotationEnabled: true,
		RotationSpeed:   1,
		RotationAxes:    []Axis{AxisY},
		Culling:         true,
		DrawMode:        DrawWire,
		Color:           "#FFFFFF",
		LightSource:     NewVec3d(0, 0, -1),
	}
}

// sanitizedCopy validates the config and returns the private copy a mesh
// holds on to. Invalid values are corrected to safe defaults with a logged
// warning; nothing here is fatal.
func (c *MeshConfig) sanitizedCopy(meshID string) *MeshConfig {
	out := &MeshConfig{
		RotationEnabled: c.RotationEnabled,
		RotationSpeed:   c.RotationSpeed,
		Culling:         c.Culling,
		DrawMode:        c.DrawMode,
		Color:           c.Color,
	}

	out.Position = NewVec3d(0, 0, 0)
	if c.Position != nil {
		out.Position = c.Position.Copy()
	}
	out.InitialRotation = NewVec3d(0, 0, 0)
	if c.InitialRotation != nil {
		out.InitialRotation = c.InitialRotation.Copy()
	}

	if !hexColorPattern.MatchString(out.Color) {
		log.Printf("mesh %s: invalid color %q, using white", meshID, out.Color)
		out.Color = "#FFFFFF"
	}

	out.RotationAxes = append(out.RotationAxes, c.RotationAxes...)
	if len(out.RotationAxes) == 0 {
		out.RotationAxes = []Axis{AxisY}
	}
	if len(out.RotationAxes) > 3 {
		log.Printf("mesh %s: %d rotation axes configured, keeping the first 3", meshID, len(out.RotationAxes))
		out.RotationAxes = out.RotationAxes[:3]
	}

	out.LightSource = NewVec3d(0, 0, -1)
	if c.LightSource != nil && c.LightSource.Length() > 0 {
		out.LightSource = c.LightSource.Copy()
		out.LightSource.Normalize()
	}

	return out
}
