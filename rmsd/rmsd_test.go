package rmsd

import (
	"fmt"
	"math"
	"testing"

	"github.com/TuftsBCB/structure"

	"github.com/TuftsBCB/ssfrag/fragment"
)

var (
	trace1 = []structure.Coords{
		{X: -2.803, Y: -15.373, Z: 24.556},
		{X: 0.893, Y: -16.062, Z: 25.147},
		{X: 1.368, Y: -12.371, Z: 25.885},
		{X: -1.651, Y: -12.153, Z: 28.177},
		{X: -0.440, Y: -15.218, Z: 30.068},
		{X: 2.551, Y: -13.273, Z: 31.372},
		{X: 0.105, Y: -11.330, Z: 33.567},
	}
	trace2 = []structure.Coords{
		{X: -14.739, Y: -18.673, Z: 15.040},
		{X: -12.473, Y: -15.810, Z: 16.074},
		{X: -14.802, Y: -13.307, Z: 14.408},
		{X: -17.782, Y: -14.852, Z: 16.171},
		{X: -16.124, Y: -14.617, Z: 19.584},
		{X: -15.029, Y: -11.037, Z: 18.902},
		{X: -18.577, Y: -10.001, Z: 17.996},
	}
)

func frag(cas []structure.Coords) fragment.Fragment {
	return fragment.Fragment{
		Type:    fragment.AlphaHelix,
		End:     len(cas),
		CaAtoms: cas,
	}
}

func ExampleFragments() {
	rms, err := Fragments(frag(trace1), frag(trace2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("RMSD: %0.3f\n", rms)
	// Output:
	// RMSD: 0.719
}

func TestSuperposition(t *testing.T) {
	// Rotate trace1 by 90 degrees around z and translate it. The two traces
	// then superpose exactly.
	moved := make([]structure.Coords, len(trace1))
	for i, c := range trace1 {
		moved[i] = structure.Coords{X: -c.Y + 5, Y: c.X - 3, Z: c.Z + 10}
	}
	rms, err := Fragments(frag(trace1), frag(moved))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rms) > 1e-4 {
		t.Fatalf("A rigid motion of a fragment should have an RMSD of 0, "+
			"but we said %f.", rms)
	}

	c := NewComparer(len(trace1))
	for i := 0; i < 3; i++ {
		again, err := c.RMSD(frag(trace1), frag(trace2))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(again-0.719106) > 1e-4 {
			t.Fatalf("Expected an RMSD of 0.719106, but got %f.", again)
		}
	}
}

func TestIncomparable(t *testing.T) {
	if _, err := Fragments(frag(trace1), frag(trace2[:5])); err == nil {
		t.Fatalf("Fragments of different lengths must not be compared.")
	}
	if _, err := Fragments(frag(trace1), fragment.Fragment{End: 7}); err == nil {
		t.Fatalf("Fragments without alpha-carbons must not be compared.")
	}
	if _, err := NewComparer(5).RMSD(frag(trace1), frag(trace2)); err == nil {
		t.Fatalf("A comparer must reject fragments of the wrong size.")
	}
}
