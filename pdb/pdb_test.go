package pdb

import (
	"testing"

	iopdb "github.com/TuftsBCB/io/pdb"

	"github.com/TuftsBCB/ssfrag/backbone"
)

func TestRead(t *testing.T) {
	chains, err := Read("testdata/1tst.pdb")
	if err != nil {
		t.Fatal(err)
	}
	if len(chains) != 1 {
		t.Fatalf("Expected 1 protein chain, but got %d.", len(chains))
	}

	c := chains[0]
	if c.Structure != "1tst" || c.Ident != 'A' {
		t.Fatalf("Expected chain 1tstA, but got %s.", c)
	}
	if len(c.Residues) != 5 {
		t.Fatalf("Expected 5 residues, but got %d.", len(c.Residues))
	}
	if seq := backbone.Sequence(c.Residues); seq != "AGPWV" {
		t.Fatalf("Expected sequence AGPWV, but got %s.", seq)
	}
	for i, r := range c.Residues {
		if len(r.Atoms) != 4 {
			t.Fatalf("Residue %s should only keep its 4 backbone atoms, "+
				"but has %d.", r.ID, len(r.Atoms))
		}
		if r.ID.SeqNum != i+1 {
			t.Fatalf("Residue %d has sequence number %d.", i, r.ID.SeqNum)
		}
	}
	if o := c.Residues[1].Atoms[backbone.AtomO]; o.X != 3 || o.Z != -2.2 {
		t.Fatalf("Wrong oxygen coordinates for residue 2: %v.", o)
	}
	if breaks := backbone.Breaks(c.Residues); breaks[0] || breaks[3] {
		t.Fatalf("The test chain should be continuous, got breaks %v.", breaks)
	}

	if _, ok := Find(chains, 'A', c.Model); !ok {
		t.Fatalf("Could not find chain A in %v.", chains)
	}
	if _, ok := Find(chains, 'B', c.Model); ok {
		t.Fatalf("Found a chain B that does not exist.")
	}
}

func TestReadMissing(t *testing.T) {
	if _, err := Read("testdata/does-not-exist.pdb"); err == nil {
		t.Fatalf("Reading a missing file should fail.")
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		path, answer string
	}{
		{"1ubq.pdb", "1ubq"},
		{"/data/pdb/pdb1UBQ.ent.gz", "1ubq"},
		{"/data/model.pdb", "model"},
		{"pdbfile.pdb", "pdbfile"},
		{"nodots", "nodots"},
	}
	for _, test := range tests {
		got := Name(&iopdb.Entry{Path: test.path})
		if got != test.answer {
			t.Fatalf("Name of '%s' should be '%s', but we said '%s'.",
				test.path, test.answer, got)
		}
	}
}
