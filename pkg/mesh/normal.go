package mesh

import "github.com/matthew-oconnell/vulcan-mesh/pkg/math"

// AreaWeightedNormal derives a single unit normal representative of
// the overall orientation of a triangle soup, used downstream for
// visualization-plane placement. Each triangle contributes its
// averaged (not area-weighted) vertex normal, re-normalized, weighted
// by the triangle's area. Returns (0, 0, 1) when the geometry is
// empty, the total area is zero, or the accumulated vector degenerates.
func AreaWeightedNormal(geo TriangleBuffer) math.Vec3 {
	var sum math.Vec3
	var totalArea float32

	for t := 0; t < geo.TriangleCount(); t++ {
		base := t * 9
		p0 := math.Vec3{X: geo.Positions[base], Y: geo.Positions[base+1], Z: geo.Positions[base+2]}
		p1 := math.Vec3{X: geo.Positions[base+3], Y: geo.Positions[base+4], Z: geo.Positions[base+5]}
		p2 := math.Vec3{X: geo.Positions[base+6], Y: geo.Positions[base+7], Z: geo.Positions[base+8]}

		area := p1.Sub(p0).Cross(p2.Sub(p0)).Length() / 2

		n0 := math.Vec3{X: geo.Normals[base], Y: geo.Normals[base+1], Z: geo.Normals[base+2]}
		n1 := math.Vec3{X: geo.Normals[base+3], Y: geo.Normals[base+4], Z: geo.Normals[base+5]}
		n2 := math.Vec3{X: geo.Normals[base+6], Y: geo.Normals[base+7], Z: geo.Normals[base+8]}
		avg := n0.Add(n1).Add(n2).Scale(1.0 / 3).Normalize()

		sum = sum.Add(avg.Scale(area))
		totalArea += area
	}

	if totalArea == 0 {
		return math.Vec3{Z: 1}
	}

	n := sum.Scale(1 / totalArea).Normalize()
	if n == (math.Vec3{}) {
		return math.Vec3{Z: 1}
	}
	return n
}
