package engine

import "math"

// CubeTriangles returns the 12 triangles of an axis-aligned cube centred
// on the origin, wound so every normal points outward.
func CubeTriangles(size float64) []*Triangle {
	s := size / 2
	corners := []*Vec3d{
		NewVec3d(-s, -s, -s),
		NewVec3d(s, -s, -s),
		NewVec3d(s, s, -s),
		NewVec3d(-s, s, -s),
		NewVec3d(-s, -s, s),
		NewVec3d(s, -s, s),
		NewVec3d(s, s, s),
		NewVec3d(-s, s, s),
	}

	faces := [][3]int{
		{0, 2, 1}, {0, 3, 2}, // z-
		{4, 5, 6}, {4, 6, 7}, // z+
		{1, 2, 6}, {1, 6, 5}, // x+
		{0, 7, 3}, {0, 4, 7}, // x-
		{3, 7, 6}, {3, 6, 2}, // y+
		{0, 1, 5}, {0, 5, 4}, // y-
	}

	triangles := make([]*Triangle, 0, len(faces))
	for _, f := range faces {
		triangles = append(triangles, NewTriangle(corners[f[0]], corners[f[1]], corners[f[2]]))
	}
	return triangles
}

// UVSphereTriangles builds a triangulated UV sphere centred on the origin.
// segments is the number of longitudinal slices, rings the number of
// latitudinal bands; both are pinned to a sane minimum. Degenerate pole
// triangles are dropped.
func UVSphereTriangles(radius float64, segments, rings int) []*Triangle {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	at := func(ring, segment int) *Vec3d {
		theta := math.Pi * float64(ring) / float64(rings)
		phi := 2 * math.Pi * float64(segment) / float64(segments)
		return NewVec3d(
			radius*math.Sin(theta)*math.Cos(phi),
			radius*math.Cos(theta),
			radius*math.Sin(theta)*math.Sin(phi),
		)
	}

	var triangles []*Triangle
	for ring := 0; ring < rings; ring++ {
		for segment := 0; segment < segments; segment++ {
			p1 := at(ring, segment)
			p2 := at(ring+1, segment)
			p3 := at(ring+1, segment+1)
			p4 := at(ring, segment+1)

			// The band touching a pole collapses one of its two triangles
			// into a line; keep only the non-degenerate one there.
			if ring < rings-1 {
				triangles = append(triangles, NewTriangle(p1, p3, p2))
			}
			if ring > 0 {
				triangles = append(triangles, NewTriangle(p1, p4, p3))
			}
		}
	}
	return triangles
}
