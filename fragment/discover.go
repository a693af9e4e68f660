package fragment

import (
	"github.com/TuftsBCB/ssfrag/backbone"
	"github.com/TuftsBCB/ssfrag/rama"
)

// Discover finds the fragments of chain, using windows of the given size for
// characteristic values and classifying every residue on the Ramachandran
// plot. Fragments are returned in chain order and do not overlap.
//
// A chain shorter than the window has no fragments. Discover panics if the
// window size is less than 1.
func Discover(chain []backbone.Residue, window int) ([]Fragment, error) {
	return DiscoverLabeled(chain, window, rama.ClassifyChain(chain))
}

// DiscoverLabeled is like Discover, but uses the Ramachandran labels given
// (one per residue) instead of classifying the chain.
func DiscoverLabeled(
	chain []backbone.Residue,
	window int,
	labels []rama.Label,
) ([]Fragment, error) {
	if len(labels) != len(chain) {
		return nil, BookkeepingError{0, len(chain),
			"there must be one Ramachandran label per residue"}
	}
	values := backbone.ResidueValues(chain, window)
	if values == nil {
		return nil, nil
	}

	d := &discoverer{
		chain:  chain,
		labels: labels,
		window: window,
		marks:  make([]TracePoint, len(chain)),
		seam:   -1,
	}
	nwin := len(chain) - window + 1
	breaks := backbone.Breaks(chain)
	for r, cv := range values {
		w := backbone.WindowOf(r, window, nwin)
		if cv == backbone.Broken || (r > 0 && breaks[r-1]) {
			d.marks[r] = TracePoint{w, MarkBroken}
			d.seam = -1
			if err := d.close(r, closeBroken); err != nil {
				return nil, err
			}
			continue
		}

		m := d.mark(r, cv)
		d.marks[r] = TracePoint{w, m}
		var err error
		switch {
		case m.alpha():
			err = d.match(r, stateAlpha)
		case m.beta():
			err = d.match(r, stateBeta)
		default:
			err = d.distort(r)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := d.close(len(chain), closeEnd); err != nil {
		return nil, err
	}
	return d.frags, nil
}

type state int

const (
	stateIdle state = iota
	stateAlpha
	stateBeta
	stateCurvedHelix
)

func (s state) ssType() SSType {
	switch s {
	case stateAlpha:
		return AlphaHelix
	case stateBeta:
		return BetaStrand
	case stateCurvedHelix:
		return CurvedHelix
	}
	return Nothing
}

func (s state) helix() bool {
	return s == stateAlpha || s == stateCurvedHelix
}

// family returns the state a new run of the same family starts in.
func (s state) family() state {
	if s == stateCurvedHelix {
		return stateAlpha
	}
	return s
}

type closeReason int

const (
	closeSwitch closeReason = iota
	closeDistorted
	closeBroken
	closeEnd
)

// discoverer is the state of one pass over a chain. The run that is open
// starts at 'start', its first band matching residue is 'first' and its last
// is 'last'. A run only starts before its first match when it picks up the
// distortions left by a run of its family that closed just before it.
type discoverer struct {
	chain  []backbone.Residue
	labels []rama.Label
	window int
	marks  []TracePoint
	frags  []Fragment

	state              state
	start, first, last int
	distortions        int

	// seam is the end of the last fragment closed for distortion, or -1.
	// seamState is the family it was built in.
	seam      int
	seamState state
}

// mark gives residue r its band mark, downgraded to a distortion if the
// residue's Ramachandran label vetoes the band.
func (d *discoverer) mark(r int, cv float64) Mark {
	var prev Mark
	if r > 0 {
		prev = d.marks[r-1].Mark
	}
	m := bandMark(cv, prev)
	switch {
	case m.alpha() && d.labels[r].VetoesAlpha():
		return distortion(prev)
	case m.beta() && d.labels[r].VetoesBeta():
		return MarkBetaVetoed
	}
	return m
}

func (d *discoverer) match(r int, s state) error {
	switch {
	case d.state == stateIdle:
	case s == stateAlpha && d.state.helix():
		if d.distortions > 0 {
			d.state = stateCurvedHelix
		}
		d.last, d.distortions = r, 0
		return nil
	case s == d.state:
		d.last, d.distortions = r, 0
		return nil
	default:
		if err := d.close(r, closeSwitch); err != nil {
			return err
		}
	}
	start := r
	if d.seam >= 0 && s == d.seamState && r-d.seam <= MaxDistortions {
		start = d.seam
	}
	d.seam = -1
	d.state, d.start, d.first, d.last, d.distortions = s, start, r, r, 0
	return nil
}

func (d *discoverer) distort(r int) error {
	if d.state == stateIdle {
		return nil
	}
	d.distortions++
	if d.distortions >= MaxDistortions {
		return d.close(r, closeDistorted)
	}
	return nil
}

// close ends the open run, if any, at residue r (the residue being processed
// when the run had to end) and emits it as a fragment if it is long enough.
//
// The run covers the residues up to its last band match, plus the next
// residue if it is a distortion. A fragment closed for distortion leaves the
// rest of its distortions to the next run of its family, if that run starts
// right after them, so that the two fragments touch.
//
// A helix run too short to keep, closed for distortion or a break at a
// residue that cannot be classified and that is followed by a full window of
// residues that cannot be classified either, is instead closed as a curved
// helix covering every residue before r.
func (d *discoverer) close(r int, why closeReason) error {
	if d.state == stateIdle {
		return nil
	}
	defer func() {
		d.state, d.distortions = stateIdle, 0
	}()

	end := d.last + 1
	if why != closeBroken && end < r && d.marks[end].Mark.Distortion() {
		end++
	}
	frag, err := d.build(d.state.ssType(), end)
	if err != nil {
		return err
	}
	if d.keep(frag) {
		d.frags = append(d.frags, frag)
		if why == closeDistorted {
			d.seam, d.seamState = frag.End, d.state.family()
		}
		return nil
	}

	if why != closeDistorted && why != closeBroken {
		return nil
	}
	if !d.state.helix() || !d.unclassifiable(r) {
		return nil
	}
	for i := d.last + 1; i < r; i++ {
		d.marks[i].Mark = MarkCurved
	}
	frag, err = d.build(CurvedHelix, r)
	if err != nil {
		return err
	}
	if d.keep(frag) {
		d.frags = append(d.frags, frag)
	}
	return nil
}

// build creates a fragment of type t from the open run, ending at end. The
// distortions a run picked up at its start are kept.
func (d *discoverer) build(t SSType, end int) (Fragment, error) {
	trace := append([]TracePoint(nil), d.marks[d.start:end]...)
	return build(d.chain, d.start, end, t, trace, d.start == d.first, true)
}

// keep returns true if frag is long enough to be emitted, not counting any
// distortions the run picked up at its start.
func (d *discoverer) keep(frag Fragment) bool {
	return frag.Len() >= MinLength && frag.End-d.first >= MinLength
}

// unclassifiable returns true if residue r and the window residues after it
// (those in the chain) have no Ramachandran region.
func (d *discoverer) unclassifiable(r int) bool {
	if r >= len(d.labels) {
		return false
	}
	for i := r; i <= r+d.window && i < len(d.labels); i++ {
		if d.labels[i].Classified() {
			return false
		}
	}
	return true
}
