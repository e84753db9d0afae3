package mesh

import (
	gomath "math"
	"testing"

	"github.com/matthew-oconnell/vulcan-mesh/pkg/math"
)

// flatSquare is a unit square in the XY plane, both triangles carrying
// the (0,0,1) flat normal.
func flatSquare() TriangleBuffer {
	return TriangleBuffer{
		Positions: []float32{
			0, 0, 0, 1, 0, 0, 1, 1, 0,
			0, 0, 0, 1, 1, 0, 0, 1, 0,
		},
		Normals: []float32{
			0, 0, 1, 0, 0, 1, 0, 0, 1,
			0, 0, 1, 0, 0, 1, 0, 0, 1,
		},
	}
}

func TestAreaWeightedNormal_FlatSquare(t *testing.T) {
	n := AreaWeightedNormal(flatSquare())
	if n != (math.Vec3{Z: 1}) {
		t.Errorf("normal = %v, want (0,0,1)", n)
	}
}

func TestAreaWeightedNormal_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		geo  TriangleBuffer
	}{
		{"empty geometry", TriangleBuffer{}},
		{
			"zero-area triangle",
			TriangleBuffer{
				Positions: []float32{0, 0, 0, 1, 0, 0, 2, 0, 0},
				Normals:   []float32{0, 1, 0, 0, 1, 0, 0, 1, 0},
			},
		},
		{
			"opposing normals cancel",
			func() TriangleBuffer {
				geo := flatSquare()
				for i := 2; i < 9; i += 3 {
					geo.Normals[i] = -1
				}
				return geo
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := AreaWeightedNormal(tt.geo); n != (math.Vec3{Z: 1}) {
				t.Errorf("normal = %v, want (0,0,1) fallback", n)
			}
		})
	}
}

func TestAreaWeightedNormal_AreaWeighting(t *testing.T) {
	// A large +Z triangle against a small +X triangle: the large area
	// must dominate the result.
	geo := TriangleBuffer{
		Positions: []float32{
			0, 0, 0, 10, 0, 0, 0, 10, 0, // area 50
			0, 0, 0, 0, 1, 0, 0, 0, 1, // area 0.5
		},
		Normals: []float32{
			0, 0, 1, 0, 0, 1, 0, 0, 1,
			1, 0, 0, 1, 0, 0, 1, 0, 0,
		},
	}

	n := AreaWeightedNormal(geo)
	if n.Z <= n.X || n.Z < 0.99 {
		t.Errorf("normal = %v, want strongly +Z dominant", n)
	}
	if gomath.Abs(float64(n.Length())-1) > 1e-5 {
		t.Errorf("normal length = %v, want 1", n.Length())
	}
}
