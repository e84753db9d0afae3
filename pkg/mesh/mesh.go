// Package mesh parses STL and OBJ files into a normalized, tagged
// collection of triangle-soup surfaces ready for rendering upload and
// for association with boundary-condition metadata.
package mesh

import "errors"

// Parse errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported mesh format")
	ErrCorruptBinarySTL  = errors.New("truncated binary STL data")
)

// TriangleBuffer holds non-indexed triangle-soup geometry as flat
// float32 sequences: 9 position values per triangle (3 vertices x XYZ)
// and 9 parallel normal values. Positions and Normals always have the
// same length, a multiple of 9.
type TriangleBuffer struct {
	Positions []float32
	Normals   []float32
}

// VertexCount returns the number of vertices in the buffer.
func (b *TriangleBuffer) VertexCount() int {
	return len(b.Positions) / 3
}

// TriangleCount returns the number of triangles in the buffer.
func (b *TriangleBuffer) TriangleCount() int {
	return len(b.Positions) / 9
}

// Clone returns a deep copy of the buffer.
func (b *TriangleBuffer) Clone() TriangleBuffer {
	return TriangleBuffer{
		Positions: append([]float32(nil), b.Positions...),
		Normals:   append([]float32(nil), b.Normals...),
	}
}

// Append concatenates another buffer's geometry onto b.
func (b *TriangleBuffer) Append(other TriangleBuffer) {
	b.Positions = append(b.Positions, other.Positions...)
	b.Normals = append(b.Normals, other.Normals...)
}

// Region is a named span of triangle geometry. Tag is a positive
// integer boundary identifier used to associate the geometry with
// solver boundary-condition metadata. STL files always yield exactly
// one region with Tag 1, named after the file.
type Region struct {
	Name     string
	Tag      int
	Geometry TriangleBuffer
}

// Mesh is a fully parsed mesh file. Every vertex in every region has
// been rewritten in place by the global normalization transform before
// the Mesh is returned; Center and Scale record that transform.
type Mesh struct {
	Regions       []Region
	TotalVertices int
	TotalFaces    int
	Center        [3]float64
	Scale         float64
}

// Surface is a render-ready region after optional lumping. When Lumped
// is false, OriginalRegionCount is always 1.
type Surface struct {
	ID                  int
	Name                string
	Tag                 int
	Lumped              bool
	OriginalRegionCount int
	Geometry            TriangleBuffer
}
