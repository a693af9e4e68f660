package backbone

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const degrees = 180 / math.Pi

// Distance returns the Euclidean distance between two points.
func Distance(p, q r3.Vec) float64 {
	return r3.Norm(r3.Sub(p, q))
}

// Centroid calculates the average position of a set of points. The centroid
// of no points is the origin.
func Centroid(points []r3.Vec) r3.Vec {
	var sum r3.Vec
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(points)), sum)
}

// Dihedral returns the dihedral angle (in degrees, in the range [-180, 180])
// defined by four points, following the IUPAC sign convention.
func Dihedral(p0, p1, p2, p3 r3.Vec) float64 {
	b1 := r3.Sub(p1, p0)
	b2 := r3.Sub(p2, p1)
	b3 := r3.Sub(p3, p2)

	n2 := r3.Cross(b2, b3)
	y := r3.Norm(b2) * r3.Dot(b1, n2)
	x := r3.Dot(r3.Cross(b1, b2), n2)
	return math.Atan2(y, x) * degrees
}

// Angle returns the angle (in degrees) between two vectors. It uses
// atan2(|u x v|, u . v), which stays accurate near 0 and 180 degrees.
// The angle involving a zero vector is 0.
func Angle(u, v r3.Vec) float64 {
	return math.Atan2(r3.Norm(r3.Cross(u, v)), r3.Dot(u, v)) * degrees
}

// Phi returns the phi dihedral of residue i in chain. It is undefined (and ok
// is false) for the first residue, when residue i-1 is not linked to residue
// i, or when any of the required backbone atoms are missing.
func Phi(chain []Residue, i int) (phi float64, ok bool) {
	if i <= 0 || i >= len(chain) || !Continuous(chain[i-1], chain[i]) {
		return 0, false
	}
	cPrev, ok1 := chain[i-1].Atom(AtomC)
	n, ok2 := chain[i].Atom(AtomN)
	ca, ok3 := chain[i].Atom(AtomCA)
	c, ok4 := chain[i].Atom(AtomC)
	if !(ok1 && ok2 && ok3 && ok4) {
		return 0, false
	}
	return Dihedral(cPrev, n, ca, c), true
}

// Psi returns the psi dihedral of residue i in chain. It is undefined (and ok
// is false) for the last residue, when residue i is not linked to residue
// i+1, or when any of the required backbone atoms are missing.
func Psi(chain []Residue, i int) (psi float64, ok bool) {
	if i < 0 || i >= len(chain)-1 || !Continuous(chain[i], chain[i+1]) {
		return 0, false
	}
	n, ok1 := chain[i].Atom(AtomN)
	ca, ok2 := chain[i].Atom(AtomCA)
	c, ok3 := chain[i].Atom(AtomC)
	nNext, ok4 := chain[i+1].Atom(AtomN)
	if !(ok1 && ok2 && ok3 && ok4) {
		return 0, false
	}
	return Dihedral(n, ca, c, nNext), true
}
