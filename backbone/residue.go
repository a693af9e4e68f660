package backbone

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Names of the backbone atoms used by this package.
const (
	AtomN  = "N"
	AtomCA = "CA"
	AtomC  = "C"
	AtomO  = "O"
)

// MaxPeptideBond is the largest distance (in Angstroms) between the carbonyl
// carbon of one residue and the amide nitrogen of the next for the two to be
// considered covalently linked.
const MaxPeptideBond = 1.5

// ResidueID uniquely identifies a residue within a set of structures.
type ResidueID struct {
	Structure string
	Model     int
	Chain     byte
	SeqNum    int
	ICode     byte
}

// String returns a compact form like "1ubqA/1:45" or "1ubqA/1:45B" when an
// insertion code is present.
func (id ResidueID) String() string {
	s := fmt.Sprintf("%s%c/%d:%d", id.Structure, id.Chain, id.Model, id.SeqNum)
	if id.ICode != 0 && id.ICode != ' ' {
		s += string(id.ICode)
	}
	return s
}

// Residue is a single amino acid of one model of one chain. Only the
// backbone atoms are of interest here, and any of them may be missing.
type Residue struct {
	ID    ResidueID
	Name  string // three letter code, e.g., "GLY"
	Atoms map[string]r3.Vec
}

// Atom returns the coordinates of the named atom and whether the residue
// has it.
func (r Residue) Atom(name string) (r3.Vec, bool) {
	v, ok := r.Atoms[name]
	return v, ok
}

// Has returns true if the residue has an atom with the given name.
func (r Residue) Has(name string) bool {
	_, ok := r.Atoms[name]
	return ok
}

// Continuous returns true when the C atom of a and the N atom of b are no
// further apart than MaxPeptideBond. If either atom is missing, the residues
// are not continuous.
func Continuous(a, b Residue) bool {
	c, ok := a.Atom(AtomC)
	if !ok {
		return false
	}
	n, ok := b.Atom(AtomN)
	if !ok {
		return false
	}
	return Distance(c, n) <= MaxPeptideBond
}

// Breaks reports, for every consecutive pair of residues (i, i+1), whether
// the link between them is broken. The result has length len(chain)-1, or
// is nil for chains with fewer than two residues.
func Breaks(chain []Residue) []bool {
	if len(chain) < 2 {
		return nil
	}
	breaks := make([]bool, len(chain)-1)
	for i := range breaks {
		breaks[i] = !Continuous(chain[i], chain[i+1])
	}
	return breaks
}

// IDs returns the identifiers of every residue given.
func IDs(residues []Residue) []ResidueID {
	ids := make([]ResidueID, len(residues))
	for i, r := range residues {
		ids[i] = r.ID
	}
	return ids
}
