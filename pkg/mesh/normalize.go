package mesh

import gomath "math"

// NormalizedSize is the extent of the longest bounding-box axis after
// normalization.
const NormalizedSize = 10.0

// normalizationTransform derives the shared centering and scaling
// transform from a bounding box: center is the box midpoint and scale
// maps the longest axis to NormalizedSize. A degenerate box (all
// vertices coincident) keeps its coordinates and only recenters.
func normalizationTransform(minB, maxB [3]float64) (center [3]float64, scale float64) {
	for k := 0; k < 3; k++ {
		center[k] = (minB[k] + maxB[k]) / 2
	}

	maxDim := maxB[0] - minB[0]
	if d := maxB[1] - minB[1]; d > maxDim {
		maxDim = d
	}
	if d := maxB[2] - minB[2]; d > maxDim {
		maxDim = d
	}

	if maxDim == 0 {
		return center, 1
	}
	return center, NormalizedSize / maxDim
}

// normalize computes one bounding box over every vertex in every
// region and rewrites all positions in place as (v - center) * scale.
// Regions are never rescaled independently, so relative proportions
// between regions are preserved. Runs exactly once, before the mesh is
// exposed to callers.
func (m *Mesh) normalize() {
	minB := [3]float64{gomath.Inf(1), gomath.Inf(1), gomath.Inf(1)}
	maxB := [3]float64{gomath.Inf(-1), gomath.Inf(-1), gomath.Inf(-1)}

	seen := false
	for ri := range m.Regions {
		pos := m.Regions[ri].Geometry.Positions
		for i := 0; i+2 < len(pos); i += 3 {
			seen = true
			for k := 0; k < 3; k++ {
				v := float64(pos[i+k])
				if v < minB[k] {
					minB[k] = v
				}
				if v > maxB[k] {
					maxB[k] = v
				}
			}
		}
	}

	if !seen {
		m.Scale = 1
		return
	}

	center, scale := normalizationTransform(minB, maxB)
	m.Center = center
	m.Scale = scale

	for ri := range m.Regions {
		pos := m.Regions[ri].Geometry.Positions
		for i := 0; i+2 < len(pos); i += 3 {
			for k := 0; k < 3; k++ {
				pos[i+k] = float32((float64(pos[i+k]) - center[k]) * scale)
			}
		}
	}
}

// vertexTableBounds computes the bounding box of an OBJ vertex table.
// ok is false when the table is empty.
func vertexTableBounds(verts [][3]float32) (minB, maxB [3]float64, ok bool) {
	if len(verts) == 0 {
		return minB, maxB, false
	}

	minB = [3]float64{gomath.Inf(1), gomath.Inf(1), gomath.Inf(1)}
	maxB = [3]float64{gomath.Inf(-1), gomath.Inf(-1), gomath.Inf(-1)}

	for _, v := range verts {
		for k := 0; k < 3; k++ {
			f := float64(v[k])
			if f < minB[k] {
				minB[k] = f
			}
			if f > maxB[k] {
				maxB[k] = f
			}
		}
	}

	return minB, maxB, true
}
