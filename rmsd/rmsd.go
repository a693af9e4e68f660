package rmsd

import (
	"fmt"

	"github.com/TuftsBCB/structure"

	"github.com/TuftsBCB/ssfrag/fragment"
)

// Fragments returns the RMSD between the alpha-carbons of two fragments after
// optimal superposition. The fragments must have the same number of residues
// and an alpha-carbon for every one of them; otherwise an error is returned.
func Fragments(a, b fragment.Fragment) (float64, error) {
	if err := checkComparable(a, b); err != nil {
		return 0, err
	}
	return structure.RMSDMem(structure.NewMemory(len(a.CaAtoms)),
		a.CaAtoms, b.CaAtoms), nil
}

// Comparer computes the RMSD of many pairs of fragments of one length
// without allocating for each pair. A Comparer must only be used from one
// goroutine at a time.
type Comparer struct {
	size int
	mem  structure.Memory
}

// NewComparer creates a Comparer for fragments with size residues.
func NewComparer(size int) *Comparer {
	return &Comparer{size, structure.NewMemory(size)}
}

// RMSD is like Fragments, but also fails if the fragments do not have the
// size the Comparer was made for.
func (c *Comparer) RMSD(a, b fragment.Fragment) (float64, error) {
	if err := checkComparable(a, b); err != nil {
		return 0, err
	}
	if len(a.CaAtoms) != c.size {
		return 0, fmt.Errorf("Fragment %s has %d residues, but this "+
			"comparer is for fragments with %d residues.",
			a, len(a.CaAtoms), c.size)
	}
	return structure.RMSDMem(c.mem, a.CaAtoms, b.CaAtoms), nil
}

func checkComparable(a, b fragment.Fragment) error {
	switch {
	case a.IsCorrupt() || b.IsCorrupt():
		return fmt.Errorf("Fragments %s and %s must have an alpha-carbon "+
			"for every residue.", a, b)
	case len(a.CaAtoms) != len(b.CaAtoms):
		return fmt.Errorf("Computing the RMSD of two fragments requires "+
			"that they have equal length. But fragments %s and %s have "+
			"lengths %d and %d.", a, b, len(a.CaAtoms), len(b.CaAtoms))
	case len(a.CaAtoms) == 0:
		return fmt.Errorf("Cannot compute the RMSD of empty fragments.")
	}
	return nil
}
