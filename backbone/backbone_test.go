package backbone

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	matrix "github.com/skelterjohn/go.matrix"
	"gonum.org/v1/gonum/spatial/r3"
)

const epsilon = 1e-9

// linear builds a chain of n residues laid out along the x axis. Each
// residue's carbonyl oxygen sits at CA - cv*x, so every intact window has a
// characteristic value of exactly cv.
func linear(n int, cv float64) []Residue {
	chain := make([]Residue, n)
	for i := range chain {
		ca := r3.Vec{X: 3 * float64(i)}
		chain[i] = Residue{
			ID:   ResidueID{Structure: "test", Model: 1, Chain: 'A', SeqNum: i + 1},
			Name: "ALA",
			Atoms: map[string]r3.Vec{
				AtomN:  r3.Add(ca, r3.Vec{X: -1, Y: 0.3}),
				AtomCA: ca,
				AtomC:  r3.Add(ca, r3.Vec{X: 1, Y: 0.3}),
				AtomO:  r3.Sub(ca, r3.Vec{X: cv}),
			},
		}
	}
	return chain
}

// shift moves every residue from index 'from' onwards by d.
func shift(chain []Residue, from int, d r3.Vec) {
	for i := from; i < len(chain); i++ {
		for name, v := range chain[i].Atoms {
			chain[i].Atoms[name] = r3.Add(v, d)
		}
	}
}

func TestContinuous(t *testing.T) {
	chain := linear(3, 2.2)
	if !Continuous(chain[0], chain[1]) {
		t.Fatalf("Residues 0 and 1 should be linked.")
	}
	if Continuous(chain[1], chain[0]) {
		t.Fatalf("Residue 1 is not linked to residue 0 (wrong order).")
	}

	delete(chain[2].Atoms, AtomN)
	if Continuous(chain[1], chain[2]) {
		t.Fatalf("A residue without N cannot be linked to its predecessor.")
	}

	chain = linear(4, 2.2)
	shift(chain, 2, r3.Vec{X: 4})
	breaks := Breaks(chain)
	if len(breaks) != 3 || breaks[0] || !breaks[1] || breaks[2] {
		t.Fatalf("Expected only the link 1-2 to be broken, got %v.", breaks)
	}
	if Breaks(chain[:1]) != nil {
		t.Fatalf("A single residue has no links.")
	}
}

func TestDihedral(t *testing.T) {
	tests := []struct {
		p      [4]r3.Vec
		answer float64
	}{
		{[4]r3.Vec{{X: 1}, {}, {Y: 1}, {Y: 1, Z: 1}}, -90},
		{[4]r3.Vec{{X: 1}, {}, {Y: 1}, {Y: 1, Z: -1}}, 90},
		{[4]r3.Vec{{X: 1}, {}, {Y: 1}, {X: 1, Y: 1}}, 0},
		{[4]r3.Vec{{X: 1}, {}, {Y: 1}, {X: -1, Y: 1}}, 180},
	}
	for _, test := range tests {
		got := Dihedral(test.p[0], test.p[1], test.p[2], test.p[3])
		diff := math.Mod(math.Abs(got-test.answer), 360)
		if diff > epsilon && 360-diff > epsilon {
			t.Fatalf("Dihedral of %v should be %f, but we said %f.",
				test.p, test.answer, got)
		}
	}
}

func TestAngle(t *testing.T) {
	x := r3.Vec{X: 2}
	for _, deg := range []float64{0, 10, 35, 90, 135, 179.9} {
		rad := deg * math.Pi / 180
		v := r3.Vec{X: 5 * math.Cos(rad), Y: 5 * math.Sin(rad)}
		if got := Angle(x, v); math.Abs(got-deg) > 1e-6 {
			t.Fatalf("Expected an angle of %f, but got %f.", deg, got)
		}
	}
}

func TestPhiPsiUndefined(t *testing.T) {
	chain := linear(5, 2.2)
	if _, ok := Phi(chain, 0); ok {
		t.Fatalf("Phi of the first residue must be undefined.")
	}
	if _, ok := Psi(chain, 4); ok {
		t.Fatalf("Psi of the last residue must be undefined.")
	}
	if _, ok := Phi(chain, 2); !ok {
		t.Fatalf("Phi of an interior residue should be defined.")
	}

	delete(chain[2].Atoms, AtomCA)
	if _, ok := Psi(chain, 2); ok {
		t.Fatalf("Psi is undefined without an alpha-carbon.")
	}

	chain = linear(5, 2.2)
	shift(chain, 3, r3.Vec{Z: 5})
	if _, ok := Psi(chain, 2); ok {
		t.Fatalf("Psi across a chain break must be undefined.")
	}
	if _, ok := Phi(chain, 3); ok {
		t.Fatalf("Phi across a chain break must be undefined.")
	}
}

func TestCharacteristicValues(t *testing.T) {
	chain := linear(10, 2.2)
	cvs := CharacteristicValues(chain, 3)
	if len(cvs) != 8 {
		t.Fatalf("10 residues should give 8 windows of size 3, got %d.",
			len(cvs))
	}
	for i, cv := range cvs {
		if math.Abs(cv-2.2) > epsilon {
			t.Fatalf("Window %d should have a CV of 2.2, but has %f.", i, cv)
		}
	}

	if cvs := CharacteristicValues(chain[:2], 3); cvs != nil {
		t.Fatalf("A chain shorter than the window has no windows, got %v.",
			cvs)
	}
}

func TestCharacteristicValuesBroken(t *testing.T) {
	// A 5 Angstrom gap between residues 5 and 6 (indices 4 and 5).
	chain := linear(12, 2.2)
	shift(chain, 5, r3.Vec{X: 4})

	windows := Windows(chain, 3)
	for _, w := range windows {
		spansGap := w.Index <= 4 && w.Index+2 >= 5
		if spansGap != w.IsBroken() {
			t.Fatalf("Window %d (%v): spans gap = %v, but CV = %f.",
				w.Index, w.Residues, spansGap, w.CV)
		}
	}

	// A missing oxygen only breaks the windows containing that residue.
	chain = linear(8, 1.4)
	delete(chain[6].Atoms, AtomO)
	cvs := CharacteristicValues(chain, 3)
	for i, cv := range cvs {
		contains := i <= 6 && i+2 >= 6
		if contains != (cv == Broken) {
			t.Fatalf("Window %d: contains residue 6 = %v, but CV = %f.",
				i, contains, cv)
		}
	}
}

// TestCharacteristicValuesOracle compares the incremental computation with
// a from-scratch one done with go.matrix: each window's centroids are the
// product of an averaging row vector with the window's coordinates.
func TestCharacteristicValuesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{1, 2, 3, 4, 5} {
		chain := randomChain(rng, 40)
		cvs := CharacteristicValues(chain, size)

		avg := make([]float64, size)
		for i := range avg {
			avg[i] = 1 / float64(size)
		}
		avgRow := matrix.MakeDenseMatrix(avg, 1, size)
		for i, cv := range cvs {
			cas := make([]float64, 0, 3*size)
			os := make([]float64, 0, 3*size)
			for _, r := range chain[i : i+size] {
				ca, o := r.Atoms[AtomCA], r.Atoms[AtomO]
				cas = append(cas, ca.X, ca.Y, ca.Z)
				os = append(os, o.X, o.Y, o.Z)
			}
			caMean, err := avgRow.TimesDense(matrix.MakeDenseMatrix(cas, size, 3))
			if err != nil {
				t.Fatal(err)
			}
			oMean, err := avgRow.TimesDense(matrix.MakeDenseMatrix(os, size, 3))
			if err != nil {
				t.Fatal(err)
			}
			c, o := caMean.Array(), oMean.Array()
			answer := Distance(r3.Vec{X: c[0], Y: c[1], Z: c[2]},
				r3.Vec{X: o[0], Y: o[1], Z: o[2]})
			if math.Abs(cv-answer) > 1e-6 {
				t.Fatalf("Window %d (size %d): expected CV %f, but we said %f.",
					i, size, answer, cv)
			}
		}
	}
}

func TestResidueValues(t *testing.T) {
	chain := linear(6, 2.2)
	shift(chain, 3, r3.Vec{X: 4}) // windows 1 and 2 are broken

	values := ResidueValues(chain, 3)
	answer := []bool{false, false, true, true, false, false}
	for r, v := range values {
		if (v == Broken) != answer[r] {
			t.Fatalf("Residue %d: expected broken = %v, got CV %f.",
				r, answer[r], v)
		}
	}
	if WindowOf(0, 3, 4) != 0 || WindowOf(5, 3, 4) != 3 ||
		WindowOf(2, 3, 4) != 1 {
		t.Fatalf("Residues are not mapped to their centred windows.")
	}
}

func TestWindowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("A window of size 0 should panic.")
		}
	}()
	CharacteristicValues(linear(3, 2.2), 0)
}

func ExampleSequence() {
	residues := []Residue{{Name: "MET"}, {Name: "GLY"}, {Name: "HOH"}, {Name: "trp"}}
	fmt.Println(Sequence(residues))
	fmt.Println(ThreeLetter('P'), ThreeLetter('B'))
	// Output:
	// MGXW
	// PRO UNK
}

func randomChain(rng *rand.Rand, n int) []Residue {
	chain := linear(n, 0)
	for i := range chain {
		jitter := r3.Vec{
			X: rng.Float64() * 3,
			Y: rng.Float64() * 3,
			Z: rng.Float64() * 3,
		}
		chain[i].Atoms[AtomO] = r3.Add(chain[i].Atoms[AtomCA], jitter)
	}
	return chain
}
