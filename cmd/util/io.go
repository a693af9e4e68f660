package util

import (
	"os"
	"strconv"

	"github.com/TuftsBCB/io/fasta"
	"github.com/TuftsBCB/seq"

	"github.com/TuftsBCB/ssfrag/fragment"
	"github.com/TuftsBCB/ssfrag/pdb"
)

func PDBRead(path string) []pdb.Chain {
	chains, err := pdb.Read(path)
	Assert(err, "Could not open PDB file '%s'", path)
	return chains
}

// PDBChain returns the chain with the given identifier and model number in
// the PDB file at path, or quits if there is none. Model 0 is the first model
// of the chain.
func PDBChain(path string, ident byte, model int) pdb.Chain {
	chains := PDBRead(path)
	if model == 0 {
		for _, c := range chains {
			if c.Ident == ident {
				return c
			}
		}
	}
	chain, ok := pdb.Find(chains, ident, model)
	if !ok {
		Fatalf("Could not find model %d of chain '%c' in '%s'.",
			model, ident, path)
	}
	return chain
}

func FragmentsRead(path string) []fragment.Chain {
	f := OpenFile(path)
	defer f.Close()

	chains, err := fragment.Open(f)
	Assert(err, "Could not GOB decode fragments '%s'", path)
	return chains
}

func FragmentsWrite(path string, chains []fragment.Chain) {
	f := CreateFile(path)
	defer f.Close()
	Assert(fragment.Save(f, chains), "Could not GOB encode fragments")
}

func FastaWrite(path string, seqs []seq.Sequence) {
	f := CreateFile(path)
	defer f.Close()

	w := fasta.NewWriter(f)
	Assert(w.WriteAll(seqs), "Could not write FASTA file '%s'", path)
}

func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}

func ParseInt(str string) int {
	num, err := strconv.ParseInt(str, 10, 32)
	Assert(err, "Could not parse '%s' as an integer", str)
	return int(num)
}
