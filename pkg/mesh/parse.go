package mesh

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Parse decodes mesh data, selecting a decoder by the filename
// extension (.stl or .obj). Within the STL path, the choice between
// binary and ASCII is content-based, not extension-based. The returned
// mesh is already normalized.
func Parse(filename string, data []byte) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".stl":
		return parseSTL(filename, data)
	case ".obj":
		return parseOBJ(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// ParseFile parses a mesh file from disk.
func ParseFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}
	return Parse(filepath.Base(path), data)
}
