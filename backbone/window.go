package backbone

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultWindow is the number of consecutive residues averaged for each
// characteristic value.
const DefaultWindow = 3

// Broken is the characteristic value given to a window that is not usable,
// either because its residues are not backbone continuous or because one of
// them lacks an alpha-carbon or carbonyl oxygen. It is far outside any
// secondary structure band, so it always forces a fragment boundary.
const Broken = 100.0

// Window is one position of the sliding window over a chain.
type Window struct {
	Index    int
	CV       float64
	Residues []ResidueID
}

// IsBroken returns true if the window's characteristic value is the Broken
// sentinel.
func (w Window) IsBroken() bool {
	return w.CV == Broken
}

// Windows returns every window of the given size over chain, in order.
// See CharacteristicValues for details.
func Windows(chain []Residue, size int) []Window {
	cvs := CharacteristicValues(chain, size)
	if cvs == nil {
		return nil
	}
	windows := make([]Window, len(cvs))
	for i, cv := range cvs {
		windows[i] = Window{
			Index:    i,
			CV:       cv,
			Residues: IDs(chain[i : i+size]),
		}
	}
	return windows
}

// CharacteristicValues computes one value for every window of the given size
// over chain: the distance between the average alpha-carbon position and the
// average carbonyl oxygen position of the residues [i, i+size-1]. The result
// has length len(chain)-size+1, and is nil when the chain is shorter than the
// window.
//
// The averages are maintained incrementally: each step adds the residue
// entering the window and subtracts the one leaving it.
//
// A window containing a broken link or a residue without both CA and O gets
// the Broken sentinel instead of a value.
//
// CharacteristicValues panics if size is less than 1.
func CharacteristicValues(chain []Residue, size int) []float64 {
	if size < 1 {
		panic(fmt.Sprintf("The window size must be at least 1, but %d was "+
			"given.", size))
	}
	if len(chain) < size {
		return nil
	}

	breaks := Breaks(chain)
	cvs := make([]float64, len(chain)-size+1)
	scale := 1 / float64(size)

	var sumCA, sumO r3.Vec
	missing, broken := 0, 0
	for j := range chain {
		ca, o, ok := caAndO(chain[j])
		if ok {
			sumCA, sumO = r3.Add(sumCA, ca), r3.Add(sumO, o)
		} else {
			missing++
		}
		if size > 1 && j > 0 && breaks[j-1] {
			broken++
		}

		// Drop the residue (and its link to the next one) that just fell
		// out of the window.
		if out := j - size; out >= 0 {
			ca, o, ok := caAndO(chain[out])
			if ok {
				sumCA, sumO = r3.Sub(sumCA, ca), r3.Sub(sumO, o)
			} else {
				missing--
			}
			if size > 1 && breaks[out] {
				broken--
			}
		}

		i := j - size + 1
		if i < 0 {
			continue
		}
		if missing > 0 || broken > 0 {
			cvs[i] = Broken
			continue
		}
		cvs[i] = Distance(r3.Scale(scale, sumCA), r3.Scale(scale, sumO))
	}
	return cvs
}

// ResidueValues spreads the window values of CharacteristicValues over the
// residues of chain. Residue r takes the value of the window centred on it
// (window r - size/2); residues near either end that have no such window take
// the value of the nearest window. The result is nil when the chain is
// shorter than the window.
func ResidueValues(chain []Residue, size int) []float64 {
	cvs := CharacteristicValues(chain, size)
	if cvs == nil {
		return nil
	}
	values := make([]float64, len(chain))
	for r := range values {
		values[r] = cvs[WindowOf(r, size, len(cvs))]
	}
	return values
}

// WindowOf returns the index of the window whose value residue r takes in
// ResidueValues, given the window size and the number of windows.
func WindowOf(r, size, windows int) int {
	w := r - size/2
	switch {
	case w < 0:
		return 0
	case w >= windows:
		return windows - 1
	}
	return w
}

func caAndO(r Residue) (ca, o r3.Vec, ok bool) {
	ca, okCA := r.Atom(AtomCA)
	o, okO := r.Atom(AtomO)
	return ca, o, okCA && okO
}
