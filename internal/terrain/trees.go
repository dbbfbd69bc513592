package terrain

import "github.com/Faultbox/lowpoly-terrain/pkg/math"

// TreeSites returns the distinct vertex positions whose colour equals
// marker. Hosts place scenery (trees) at these surface points.
func TreeSites(m *Mesh, marker Color) []math.Vec3 {
	if len(m.Colors) != len(m.Vertices) {
		return nil
	}
	seen := make(map[math.Vec3]struct{})
	var sites []math.Vec3
	for i, c := range m.Colors {
		if c != marker {
			continue
		}
		v := m.Vertices[i]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		sites = append(sites, v)
	}
	return sites
}

// TreeMarker returns the colour of the third gradient key, which marks
// tree-bearing ground. ok is false when the gradient has fewer keys.
func TreeMarker(g Gradient) (Color, bool) {
	if len(g.Keys) < 3 {
		return Color{}, false
	}
	return FromColorful(g.Keys[2].Color), true
}
