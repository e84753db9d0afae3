package mesh

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// objTagPattern extracts the boundary tag from an object name like
// "inlet_tag_3".
var objTagPattern = regexp.MustCompile(`(?i)tag_(\d+)`)

// objRegion accumulates the 1-indexed triangles of one "{group}_{tag}"
// region while scanning the file.
type objRegion struct {
	name  string
	tag   int
	faces [][3]int
}

// parseOBJ decodes the supported OBJ subset: v, g, o (with the
// tag_<digits> suffix convention) and f directives with triangle or
// quad faces. Faces with any other vertex count are dropped. Regions
// are keyed by "{group}_{tag}" and kept in first-seen order.
func parseOBJ(data []byte) (*Mesh, error) {
	var verts [][3]float32
	var order []string
	regions := make(map[string]*objRegion)

	group := "default"
	tag := 1

	current := func() *objRegion {
		key := fmt.Sprintf("%s_%d", group, tag)
		r, ok := regions[key]
		if !ok {
			r = &objRegion{name: group, tag: tag}
			regions[key] = r
			order = append(order, key)
		}
		return r
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) >= 4 {
				verts = append(verts, [3]float32{
					parseFloatToken(fields[1]),
					parseFloatToken(fields[2]),
					parseFloatToken(fields[3]),
				})
			}

		case "g":
			if len(fields) >= 2 {
				group = fields[1]
			}

		case "o":
			// The previous tag is retained when the object name
			// carries no tag_<digits> suffix.
			if len(fields) >= 2 {
				if m := objTagPattern.FindStringSubmatch(fields[1]); m != nil {
					if n, err := strconv.Atoi(m[1]); err == nil {
						tag = n
					}
				}
			}
			current()

		case "f":
			idx := make([]int, 0, 4)
			for _, tok := range fields[1:] {
				idx = append(idx, parseFaceIndex(tok))
			}

			r := current()
			switch len(idx) {
			case 3:
				r.faces = append(r.faces, [3]int{idx[0], idx[1], idx[2]})
			case 4:
				// Fan triangulation: (v0,v1,v2) then (v0,v2,v3).
				r.faces = append(r.faces,
					[3]int{idx[0], idx[1], idx[2]},
					[3]int{idx[0], idx[2], idx[3]})
			}
		}
	}

	// The normalization transform is computed over the whole vertex
	// table before any region's geometry is built, so every region
	// shares one center and scale.
	minB, maxB, ok := vertexTableBounds(verts)
	center := [3]float64{}
	scale := 1.0
	if ok {
		center, scale = normalizationTransform(minB, maxB)
	}

	m := &Mesh{Center: center, Scale: scale}
	for _, key := range order {
		r := regions[key]
		geo := buildGeometry(verts, r.faces, center, scale)
		m.Regions = append(m.Regions, Region{Name: r.name, Tag: r.tag, Geometry: geo})
		m.TotalVertices += geo.VertexCount()
		m.TotalFaces += geo.TriangleCount()
	}

	return m, nil
}

// parseFaceIndex extracts the leading vertex index from an OBJ face
// token, ignoring any /texcoord/normal suffix.
func parseFaceIndex(tok string) int {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	n, _ := strconv.Atoi(tok)
	return n
}
