package mesh

import "sort"

// BuildSurfaces converts parsed regions into render-ready surfaces.
//
// When lump is false every region becomes its own surface unchanged,
// with OriginalRegionCount 1. When lump is true, regions sharing a
// name are merged: regions are walked in ascending original-tag order,
// each distinct name gets a fresh sequential tag starting at 1 in
// first-seen order, and later same-named regions have their geometry
// concatenated onto the merged surface in walk order. A surface is
// marked Lumped only when more than one original region carried its
// name.
func BuildSurfaces(m *Mesh, lump bool) []Surface {
	if !lump {
		surfaces := make([]Surface, len(m.Regions))
		for i, r := range m.Regions {
			surfaces[i] = Surface{
				ID:                  i + 1,
				Name:                r.Name,
				Tag:                 r.Tag,
				Lumped:              false,
				OriginalRegionCount: 1,
				Geometry:            r.Geometry,
			}
		}
		return surfaces
	}

	// Provenance counts, taken over all regions before merging.
	counts := make(map[string]int, len(m.Regions))
	for _, r := range m.Regions {
		counts[r.Name]++
	}

	sorted := make([]Region, len(m.Regions))
	copy(sorted, m.Regions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Tag < sorted[j].Tag
	})

	surfaces := make([]Surface, 0, len(counts))
	index := make(map[string]int, len(counts))
	nextTag := 1

	for _, r := range sorted {
		if i, ok := index[r.Name]; ok {
			surfaces[i].Geometry.Append(r.Geometry)
			continue
		}

		index[r.Name] = len(surfaces)
		surfaces = append(surfaces, Surface{
			ID:                  nextTag,
			Name:                r.Name,
			Tag:                 nextTag,
			Lumped:              counts[r.Name] > 1,
			OriginalRegionCount: counts[r.Name],
			Geometry:            r.Geometry.Clone(),
		})
		nextTag++
	}

	return surfaces
}
