package mesh

import "github.com/matthew-oconnell/vulcan-mesh/pkg/math"

// buildGeometry resolves 1-indexed triangles against the OBJ vertex
// table, applies the normalization transform to each vertex, and
// expands a flat per-face normal across the triangle's three
// vertex-normal slots. Triangles referencing out-of-range indices are
// skipped; a degenerate triangle (zero-length cross product) gets a
// zero normal.
func buildGeometry(verts [][3]float32, faces [][3]int, center [3]float64, scale float64) TriangleBuffer {
	geo := TriangleBuffer{
		Positions: make([]float32, 0, len(faces)*9),
		Normals:   make([]float32, 0, len(faces)*9),
	}

	for _, face := range faces {
		var tri [3]math.Vec3
		valid := true
		for j, idx := range face {
			if idx < 1 || idx > len(verts) {
				valid = false
				break
			}
			v := verts[idx-1]
			tri[j] = math.Vec3{
				X: float32((float64(v[0]) - center[0]) * scale),
				Y: float32((float64(v[1]) - center[1]) * scale),
				Z: float32((float64(v[2]) - center[2]) * scale),
			}
		}
		if !valid {
			continue
		}

		n := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0])).Normalize()

		for j := 0; j < 3; j++ {
			geo.Positions = append(geo.Positions, tri[j].X, tri[j].Y, tri[j].Z)
			geo.Normals = append(geo.Normals, n.X, n.Y, n.Z)
		}
	}

	return geo
}
