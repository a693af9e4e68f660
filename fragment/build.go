package fragment

import (
	"math"

	"github.com/TuftsBCB/structure"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TuftsBCB/ssfrag/backbone"
)

// Build creates a fragment of type t from the residues [start, end) of chain.
//
// trace must contain one point for every residue in the range. If it is nil,
// the trace is recomputed from the characteristic values of the range alone,
// without Ramachandran vetoes.
//
// A single residue at either end whose mark is a boundary mark is trimmed
// from the fragment, as long as at least one residue remains.
//
// A BookkeepingError is returned if the range is empty or out of bounds, if
// the trace has the wrong length, or if the residues in the range are not
// backbone continuous.
func Build(
	chain []backbone.Residue,
	start, end int,
	t SSType,
	trace []TracePoint,
) (Fragment, error) {
	return build(chain, start, end, t, trace, true, true)
}

// build is Build, but only trims the ends it is asked to.
func build(
	chain []backbone.Residue,
	start, end int,
	t SSType,
	trace []TracePoint,
	trimFirst, trimLast bool,
) (Fragment, error) {
	if start < 0 || end > len(chain) || start >= end {
		return Fragment{}, BookkeepingError{start, end,
			"the range is empty or out of bounds"}
	}
	if trace == nil {
		trace = localTrace(chain, start, end)
	} else if len(trace) != end-start {
		return Fragment{}, BookkeepingError{start, end,
			"the trace does not have one point per residue"}
	}
	for i := start; i+1 < end; i++ {
		if !backbone.Continuous(chain[i], chain[i+1]) {
			return Fragment{}, BookkeepingError{start, end,
				"the residues are not backbone continuous"}
		}
	}

	if trimFirst && len(trace) > 1 && trace[0].Mark.Boundary() {
		start, trace = start+1, trace[1:]
	}
	if trimLast && len(trace) > 1 && trace[len(trace)-1].Mark.Boundary() {
		end, trace = end-1, trace[:len(trace)-1]
	}

	residues := chain[start:end]
	frag := Fragment{
		Type:     t,
		Start:    start,
		End:      end,
		Residues: backbone.IDs(residues),
		Sequence: backbone.Sequence(residues),
		Trace:    append([]TracePoint(nil), trace...),
	}

	var cas, os []r3.Vec
	for _, r := range residues {
		if ca, ok := r.Atom(backbone.AtomCA); ok {
			cas = append(cas, ca)
		}
		if o, ok := r.Atom(backbone.AtomO); ok {
			os = append(os, o)
		}
	}
	frag.CentroidCA = backbone.Centroid(cas)
	frag.CentroidO = backbone.Centroid(os)
	frag.CVLength = backbone.Distance(frag.CentroidCA, frag.CentroidO)

	// We copy here so a fragment never aliases its chain.
	if len(cas) == len(residues) {
		frag.CaAtoms = make([]structure.Coords, len(cas))
		for i, ca := range cas {
			frag.CaAtoms[i] = structure.Coords{X: ca.X, Y: ca.Y, Z: ca.Z}
		}
	}
	return frag, nil
}

// localTrace marks the residues [start, end) using only the characteristic
// values of windows inside the range. Ranges shorter than the default window
// use a window as long as the range.
func localTrace(chain []backbone.Residue, start, end int) []TracePoint {
	sub := chain[start:end]
	size := backbone.DefaultWindow
	if len(sub) < size {
		size = len(sub)
	}
	values := backbone.ResidueValues(sub, size)
	nwin := len(sub) - size + 1

	trace := make([]TracePoint, len(sub))
	prev := Mark("")
	for k, cv := range values {
		m := bandMark(cv, prev)
		trace[k] = TracePoint{start + backbone.WindowOf(k, size, nwin), m}
		prev = m
	}
	return trace
}

// bandMark marks a characteristic value by the band it falls into. prev is
// the mark of the previous residue and decides between the two distortion
// marks.
func bandMark(cv float64, prev Mark) Mark {
	switch {
	case cv == backbone.Broken:
		return MarkBroken
	case math.Abs(cv-AlphaCV) <= StrongBand:
		return MarkAlpha
	case math.Abs(cv-AlphaCV) <= WeakBand:
		return MarkAlphaWeak
	case math.Abs(cv-BetaCV) <= StrongBand:
		return MarkBeta
	case math.Abs(cv-BetaCV) <= WeakBand:
		return MarkBetaWeak
	}
	return distortion(prev)
}

func distortion(prev Mark) Mark {
	if prev.Distortion() {
		return MarkDistortedMore
	}
	return MarkDistorted
}
