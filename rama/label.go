package rama

// Label names the Ramachandran region a residue occupies.
type Label string

// Labels that are not regions.
const (
	// None is given to residues whose phi or psi is undefined (chain
	// termini, missing backbone atoms or broken links).
	None Label = "none"

	// Out is given to residues outside of every region.
	Out Label = "out"
)

// General (non glycine, non proline) regions. Beta and both alpha regions
// come in a narrow core band ("1") and a wider band ("2") around it.
const (
	BetaCore        Label = "bs1"
	BetaWide        Label = "bs2"
	RightAlphaCore  Label = "rah1"
	RightAlphaWide  Label = "rah2"
	LeftAlphaCore   Label = "lah1"
	LeftAlphaWide   Label = "lah2"
	BetaWrap        Label = "1oth1"
	ZeroPhi         Label = "1oth2"
	Epsilon         Label = "2oth1"
	Gamma           Label = "3oth1"
	Bridge          Label = "4oth1"
	PositivePhiLow  Label = "5oth1"
	PositivePhiHigh Label = "5oth2"
)

// Glycine regions. Glycine has two partitions of its plot: "Area2" is tested
// first, "Area1" second.
const (
	GlyA2RightAlpha Label = "gly2rah"
	GlyA2LeftAlpha  Label = "gly2lah"
	GlyA2Beta       Label = "gly2bs"
	GlyA2MirrorBeta Label = "gly2bsm"
	GlyA1RightAlpha Label = "gly1rah"
	GlyA1LeftAlpha  Label = "gly1lah"
	GlyA1Beta       Label = "gly1bs"
	GlyA1MirrorBeta Label = "gly1bsm"
)

// Proline regions.
const (
	ProAlphaWide Label = "prorah2"
	ProAlphaCore Label = "prorah1"
	ProBetaWide  Label = "probs2"
	ProBetaCore  Label = "probs1"
	ProBridge    Label = "prooth1"
	ProBetaWrap  Label = "prooth2"
)

// Family groups labels by the kind of secondary structure they are
// compatible with.
type Family int

const (
	FamilyNone Family = iota
	FamilyAlpha
	FamilyBeta
	FamilyOther
	FamilyOut
)

var families = map[Label]Family{
	None: FamilyNone,
	Out:  FamilyOut,

	BetaCore: FamilyBeta, BetaWide: FamilyBeta,
	RightAlphaCore: FamilyAlpha, RightAlphaWide: FamilyAlpha,
	LeftAlphaCore: FamilyAlpha, LeftAlphaWide: FamilyAlpha,
	BetaWrap: FamilyOther, ZeroPhi: FamilyOther, Epsilon: FamilyOther,
	Gamma: FamilyOther, Bridge: FamilyOther,
	PositivePhiLow: FamilyOther, PositivePhiHigh: FamilyOther,

	GlyA2RightAlpha: FamilyAlpha, GlyA2LeftAlpha: FamilyAlpha,
	GlyA2Beta: FamilyBeta, GlyA2MirrorBeta: FamilyBeta,
	GlyA1RightAlpha: FamilyAlpha, GlyA1LeftAlpha: FamilyAlpha,
	GlyA1Beta: FamilyBeta, GlyA1MirrorBeta: FamilyBeta,

	ProAlphaWide: FamilyAlpha, ProAlphaCore: FamilyAlpha,
	ProBetaWide: FamilyBeta, ProBetaCore: FamilyBeta,
	ProBridge: FamilyOther, ProBetaWrap: FamilyOther,
}

// Family returns the family of the label. Unknown labels belong to
// FamilyOther.
func (l Label) Family() Family {
	if f, ok := families[l]; ok {
		return f
	}
	return FamilyOther
}

// Classified returns false for None and Out.
func (l Label) Classified() bool {
	return l != None && l != Out
}

// VetoesAlpha returns true when a residue with this label cannot be part of
// a helix, whatever its characteristic value says.
func (l Label) VetoesAlpha() bool {
	f := l.Family()
	return f == FamilyBeta || f == FamilyOut
}

// VetoesBeta returns true when a residue with this label cannot be part of
// a strand, whatever its characteristic value says.
func (l Label) VetoesBeta() bool {
	f := l.Family()
	return f == FamilyAlpha || f == FamilyOut
}

func (l Label) String() string {
	return string(l)
}
