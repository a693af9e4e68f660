package fragment

import (
	"fmt"

	"github.com/TuftsBCB/seq"
	"github.com/TuftsBCB/structure"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TuftsBCB/ssfrag/backbone"
)

// Characteristic values of ideal secondary structure, and the half widths of
// the bands around them. A CV within StrongBand of a target is a strong match
// and within WeakBand a weak one.
const (
	AlphaCV    = 2.2
	BetaCV     = 1.4
	StrongBand = 0.10
	WeakBand   = 0.15
)

const (
	// MinLength is the smallest number of residues in a fragment that is
	// ever reported.
	MinLength = 3

	// MaxDistortions is the number of consecutive distorted residues that
	// closes an open fragment.
	MaxDistortions = 3

	// MaxBetaAngle and MaxHelixAngle are the largest angles (in degrees)
	// between the characteristic vectors of two adjacent fragments of the
	// same family for them to be merged.
	MaxBetaAngle  = 30.0
	MaxHelixAngle = 35.0
)

// SSType is the secondary structure type of a fragment.
type SSType int

const (
	Nothing SSType = iota
	AlphaHelix
	BetaStrand
	CurvedHelix
	CurvedBeta
)

func (t SSType) String() string {
	switch t {
	case Nothing:
		return "nothing"
	case AlphaHelix:
		return "ah"
	case BetaStrand:
		return "bs"
	case CurvedHelix:
		return "ch"
	case CurvedBeta:
		return "cbs"
	}
	panic(fmt.Sprintf("Unknown secondary structure type %d.", int(t)))
}

// Helix returns true for alpha and curved helices.
func (t SSType) Helix() bool {
	return t == AlphaHelix || t == CurvedHelix
}

// Beta returns true for straight and curved beta strands.
func (t SSType) Beta() bool {
	return t == BetaStrand || t == CurvedBeta
}

// Curved returns the curved variant of the type's family. Types without a
// family are returned unchanged.
func (t SSType) Curved() SSType {
	switch {
	case t.Helix():
		return CurvedHelix
	case t.Beta():
		return CurvedBeta
	}
	return t
}

// Mark is the label given to a single residue while fragments are
// discovered. The list of marks of a fragment's residues is its trace.
type Mark string

const (
	MarkAlpha         Mark = "ah"
	MarkAlphaWeak     Mark = "ahd"
	MarkBeta          Mark = "bs"
	MarkBetaWeak      Mark = "bsd"
	MarkDistorted     Mark = "d"
	MarkDistortedMore Mark = "dd"
	MarkBetaVetoed    Mark = "bsr"
	MarkCurved        Mark = "ch"
	MarkBroken        Mark = "brk"
)

// Boundary returns true for marks that may be trimmed from either end of a
// fragment.
func (m Mark) Boundary() bool {
	switch m {
	case MarkDistorted, MarkDistortedMore, MarkBetaVetoed, MarkCurved:
		return true
	}
	return false
}

// Distortion returns true for marks that neither match a band nor break the
// chain.
func (m Mark) Distortion() bool {
	switch m {
	case MarkDistorted, MarkDistortedMore, MarkBetaVetoed:
		return true
	}
	return false
}

func (m Mark) alpha() bool {
	return m == MarkAlpha || m == MarkAlphaWeak
}

func (m Mark) beta() bool {
	return m == MarkBeta || m == MarkBetaWeak
}

// TracePoint is the mark of one residue along with the index of the window
// whose characteristic value it took.
type TracePoint struct {
	Window int
	Mark   Mark
}

// Fragment is a contiguous run of residues of one chain with a single
// secondary structure type.
//
// Start and End are the half-open range of the fragment in the chain it was
// built from. Every other field is derived from that range.
type Fragment struct {
	Type       SSType
	Start, End int
	Residues   []backbone.ResidueID
	Sequence   string

	CentroidCA, CentroidO r3.Vec
	CVLength              float64

	Trace []TracePoint

	// CaAtoms is a copy of the alpha-carbon coordinates of every residue.
	// It is nil if any residue lacks an alpha-carbon.
	CaAtoms []structure.Coords
}

// Len returns the number of residues in the fragment.
func (frag Fragment) Len() int {
	return frag.End - frag.Start
}

// Vector returns the characteristic vector of the fragment, pointing from the
// oxygen centroid to the alpha-carbon centroid.
func (frag Fragment) Vector() r3.Vec {
	return r3.Sub(frag.CentroidCA, frag.CentroidO)
}

// IsCorrupt returns true when the fragment could not be paired with an
// alpha-carbon position for every one of its residues.
func (frag Fragment) IsCorrupt() bool {
	return frag.CaAtoms == nil
}

// Seq returns the one letter sequence of the fragment as a named sequence.
func (frag Fragment) Seq(name string) seq.Sequence {
	residues := make([]seq.Residue, len(frag.Sequence))
	for i := 0; i < len(frag.Sequence); i++ {
		residues[i] = seq.Residue(frag.Sequence[i])
	}
	return seq.Sequence{Name: name, Residues: residues}
}

func (frag Fragment) String() string {
	if len(frag.Residues) == 0 {
		return fmt.Sprintf("%s (empty)", frag.Type)
	}
	return fmt.Sprintf("%s %s-%s (%d)", frag.Type,
		frag.Residues[0], frag.Residues[len(frag.Residues)-1], frag.Len())
}

// BookkeepingError is returned when a fragment is requested over a range of
// residues that cannot make up a fragment. It always indicates a bug in the
// caller.
type BookkeepingError struct {
	Start, End int
	Reason     string
}

func (err BookkeepingError) Error() string {
	return fmt.Sprintf("Cannot build a fragment over residues [%d, %d): %s",
		err.Start, err.End, err.Reason)
}
