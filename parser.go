package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatError reports mesh source text that cannot describe any geometry.
// It is fatal to mesh construction.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "mesh format: " + e.Reason
}

// IndexError reports a face referencing a vertex outside the parsed range.
// The parser fails fast on it instead of producing corrupt geometry.
type IndexError struct {
	Face        int
	Index       int
	VertexCount int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("face %d references vertex %d, but only %d vertices were parsed",
		e.Face, e.Index, e.VertexCount)
}

// ParseMesh reads a mesh description line by line and returns its faces as
// an ordered triangle list. The format is a restrictive subset of OBJ:
//
//	v <float> <float> <float>   vertex, exactly three fields
//	f <int> <int> <int>         face, exactly three 1-based vertex indices
//
// Every other line is ignored, including faces with more or fewer than
// three fields.
func ParseMesh(r io.Reader) ([]*Triangle, error) {
	var (
		vertices []*Vec3d
		faces    [][3]int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 4 {
			continue
		}

		switch fields[0] {
		case "v":
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			z, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				continue
			}
			vertices = append(vertices, NewVec3d(x, y, z))
		case "f":
			a, errA := strconv.Atoi(fields[1])
			b, errB := strconv.Atoi(fields[2])
			c, errC := strconv.Atoi(fields[3])
			if errA != nil || errB != nil || errC != nil {
				continue
			}
			faces = append(faces, [3]int{a, b, c})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh source: %w", err)
	}

	if len(vertices) == 0 {
		return nil, &FormatError{Reason: "no vertices"}
	}
	if len(faces) == 0 {
		return nil, &FormatError{Reason: "no faces"}
	}

	triangles := make([]*Triangle, 0, len(faces))
	for faceNum, face := range faces {
		corners := make([]*Vec3d, 3)
		for i, idx := range face {
			// Face indices are 1-based in the source text.
			idx--
			if idx < 0 || idx >= len(vertices) {
				return nil, &IndexError{Face: faceNum + 1, Index: face[i], VertexCount: len(vertices)}
			}
			corners[i] = vertices[idx]
		}
		triangles = append(triangles, NewTriangle(corners[0], corners[1], corners[2]))
	}

	return triangles, nil
}

// ParseMeshString is ParseMesh over an in-memory source.
func ParseMeshString(source string) ([]*Triangle, error) {
	return ParseMesh(strings.NewReader(source))
}
