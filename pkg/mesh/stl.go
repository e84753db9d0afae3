package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	gomath "math"
	"path/filepath"
	"strconv"
	"strings"
)

// Binary STL layout: an 80-byte header, a 4-byte little-endian triangle
// count, then 50 bytes per triangle (normal + 3 vertices + a 2-byte
// attribute field).
const (
	stlHeaderSize = 84
	stlRecordSize = 50

	// Some writers append trailing padding or garbage after the last
	// record; the size check tolerates a small mismatch.
	stlSizeTolerance = 100
)

// parseSTL decodes STL data into a single-region mesh named after the
// file (extension stripped), tagged 1.
func parseSTL(filename string, data []byte) (*Mesh, error) {
	var geo TriangleBuffer
	if isASCIISTL(data) {
		geo = decodeASCIISTL(data)
	} else {
		var err error
		geo, err = decodeBinarySTL(data)
		if err != nil {
			return nil, err
		}
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	m := &Mesh{
		Regions:       []Region{{Name: name, Tag: 1, Geometry: geo}},
		TotalVertices: geo.VertexCount(),
		TotalFaces:    geo.TriangleCount(),
	}
	m.normalize()
	return m, nil
}

// isBinarySTL reports whether data matches the binary STL size
// equation expected = 84 + N*50. Anything shorter than a header plus
// triangle count cannot be binary.
func isBinarySTL(data []byte) bool {
	if len(data) < stlHeaderSize {
		return false
	}
	n := int64(binary.LittleEndian.Uint32(data[80:84]))
	expected := int64(stlHeaderSize) + n*stlRecordSize
	diff := int64(len(data)) - expected
	if diff < 0 {
		diff = -diff
	}
	return diff < stlSizeTolerance
}

// isASCIISTL reports whether data should take the ASCII decode path.
// The size heuristic takes precedence: binary files whose 80-byte
// header comment happens to start with "solid" must still decode as
// binary, so a "solid" prefix alone is not enough.
func isASCIISTL(data []byte) bool {
	if isBinarySTL(data) {
		return false
	}
	head := data
	if len(head) > 80 {
		head = head[:80]
	}
	return strings.HasPrefix(strings.ToLower(string(head)), "solid")
}

// decodeBinarySTL extracts triangle soup from binary STL data. The
// face normal is written into all three vertex-normal slots (flat
// shading). The declared triangle count is validated against the
// buffer length before any record is read.
func decodeBinarySTL(data []byte) (TriangleBuffer, error) {
	if len(data) < stlHeaderSize {
		return TriangleBuffer{}, fmt.Errorf("%w: %d bytes is shorter than the %d-byte header", ErrCorruptBinarySTL, len(data), stlHeaderSize)
	}

	n := int(binary.LittleEndian.Uint32(data[80:84]))
	need := stlHeaderSize + n*stlRecordSize
	if len(data) < need {
		return TriangleBuffer{}, fmt.Errorf("%w: %d triangles need %d bytes, have %d", ErrCorruptBinarySTL, n, need, len(data))
	}

	geo := TriangleBuffer{
		Positions: make([]float32, 0, n*9),
		Normals:   make([]float32, 0, n*9),
	}

	for i := 0; i < n; i++ {
		rec := data[stlHeaderSize+i*stlRecordSize:]
		nx := readFloat32(rec[0:])
		ny := readFloat32(rec[4:])
		nz := readFloat32(rec[8:])

		for v := 0; v < 3; v++ {
			off := 12 + v*12
			geo.Positions = append(geo.Positions,
				readFloat32(rec[off:]),
				readFloat32(rec[off+4:]),
				readFloat32(rec[off+8:]))
			geo.Normals = append(geo.Normals, nx, ny, nz)
		}
		// The 2-byte attribute field is skipped.
	}

	return geo, nil
}

// decodeASCIISTL extracts triangle soup from ASCII STL text. A "facet
// normal" line sets the pending normal; each "vertex" line appends a
// position together with that normal (triplicated per face). All other
// grammar lines are ignored. A vertex appearing before any facet
// normal gets a zero normal.
func decodeASCIISTL(data []byte) TriangleBuffer {
	var geo TriangleBuffer
	var pending [3]float32

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "facet normal"):
			fields := strings.Fields(line)
			if len(fields) >= 5 {
				pending[0] = parseFloatToken(fields[2])
				pending[1] = parseFloatToken(fields[3])
				pending[2] = parseFloatToken(fields[4])
			}
		case strings.HasPrefix(line, "vertex"):
			fields := strings.Fields(line)
			if len(fields) >= 4 {
				geo.Positions = append(geo.Positions,
					parseFloatToken(fields[1]),
					parseFloatToken(fields[2]),
					parseFloatToken(fields[3]))
				geo.Normals = append(geo.Normals, pending[0], pending[1], pending[2])
			}
		}
	}

	return geo
}

// EncodeBinarySTL serializes a triangle buffer using the binary STL
// layout. The per-face normal is taken from the first vertex's normal
// slot of each triangle.
func EncodeBinarySTL(geo TriangleBuffer) []byte {
	n := geo.TriangleCount()
	out := make([]byte, stlHeaderSize+n*stlRecordSize)
	copy(out[:80], "vulcan-mesh binary STL export")
	binary.LittleEndian.PutUint32(out[80:84], uint32(n))

	for i := 0; i < n; i++ {
		rec := out[stlHeaderSize+i*stlRecordSize:]
		putFloat32(rec[0:], geo.Normals[i*9])
		putFloat32(rec[4:], geo.Normals[i*9+1])
		putFloat32(rec[8:], geo.Normals[i*9+2])

		for v := 0; v < 3; v++ {
			off := 12 + v*12
			putFloat32(rec[off:], geo.Positions[i*9+v*3])
			putFloat32(rec[off+4:], geo.Positions[i*9+v*3+1])
			putFloat32(rec[off+8:], geo.Positions[i*9+v*3+2])
		}
	}

	return out
}

func readFloat32(b []byte) float32 {
	return gomath.Float32frombits(binary.LittleEndian.Uint32(b))
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, gomath.Float32bits(v))
}

// parseFloatToken parses a float token from ASCII STL or OBJ text.
// Malformed tokens become NaN rather than aborting the parse; they
// surface in the geometry instead of as errors.
func parseFloatToken(tok string) float32 {
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return float32(gomath.NaN())
	}
	return float32(v)
}
