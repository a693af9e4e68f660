package rama

// Point is a position on the Ramachandran plot, in degrees.
type Point struct {
	Phi, Psi float64
}

// Polygon is a closed list of vertices: the first vertex is repeated as the
// last one.
type Polygon []Point

// Contains reports whether (phi, psi) lies inside the polygon, using the
// even-odd rule: a horizontal ray cast from the point crosses the polygon's
// edges an odd number of times if and only if the point is inside.
//
// Points exactly on an edge may fall on either side.
func (poly Polygon) Contains(phi, psi float64) bool {
	inside := false
	for k := 0; k+1 < len(poly); k++ {
		a, b := poly[k], poly[k+1]
		if (a.Psi > psi) == (b.Psi > psi) {
			continue
		}
		cross := a.Phi + (psi-a.Psi)*(b.Phi-a.Phi)/(b.Psi-a.Psi)
		if phi < cross {
			inside = !inside
		}
	}
	return inside
}

// Region is a named area of the Ramachandran plot.
type Region struct {
	Label   Label
	Polygon Polygon
}

// classify tests every region in order and returns the label of the LAST
// region containing (phi, psi), or Out if there is none.
func classify(regions []Region, phi, psi float64) Label {
	label := Out
	for _, region := range regions {
		if region.Polygon.Contains(phi, psi) {
			label = region.Label
		}
	}
	return label
}
