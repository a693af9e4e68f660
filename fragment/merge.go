package fragment

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TuftsBCB/ssfrag/backbone"
)

// Merge repeatedly joins adjacent fragments of the same family whose
// characteristic vectors are nearly parallel, until no such pair remains.
// frags must be fragments of chain in chain order; they are not modified.
//
// Two fragments are adjacent when the second starts right where the first
// ends and the two residues at the seam are backbone continuous.
// Both fragments were trimmed when they were built, so the merged fragment
// spans exactly the residues of the two. Helices
// (straight or curved) merge when their vectors are less than MaxHelixAngle
// degrees apart, and strands when they are less than MaxBetaAngle apart. The
// merged fragment spans both and is always of the curved type of its family.
//
// Running Merge on its own output returns the same fragments.
func Merge(chain []backbone.Residue, frags []Fragment) ([]Fragment, error) {
	arena := append([]Fragment(nil), frags...)
	for {
		merged := false
		for i := 0; i+1 < len(arena); i++ {
			a, b := arena[i], arena[i+1]
			if !mergeable(chain, a, b) {
				continue
			}

			trace := make([]TracePoint, 0, len(a.Trace)+len(b.Trace))
			trace = append(trace, a.Trace...)
			trace = append(trace, b.Trace...)
			joined, err := build(chain, a.Start, b.End, a.Type.Curved(), trace,
				false, false)
			if err != nil {
				return nil, err
			}
			arena[i] = joined
			arena = append(arena[:i+1], arena[i+2:]...)
			merged = true
			break
		}
		if !merged {
			return arena, nil
		}
	}
}

func mergeable(chain []backbone.Residue, a, b Fragment) bool {
	if a.End != b.Start || a.End <= 0 || b.Start >= len(chain) {
		return false
	}
	if !backbone.Continuous(chain[a.End-1], chain[b.Start]) {
		return false
	}

	var limit float64
	switch {
	case a.Type.Helix() && b.Type.Helix():
		limit = MaxHelixAngle
	case a.Type.Beta() && b.Type.Beta():
		limit = MaxBetaAngle
	default:
		return false
	}

	va, vb := a.Vector(), b.Vector()
	if isZero(va) || isZero(vb) {
		return false
	}
	return backbone.Angle(va, vb) < limit
}

func isZero(v r3.Vec) bool {
	return v == r3.Vec{}
}
