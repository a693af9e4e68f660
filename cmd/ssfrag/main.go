// Command ssfrag finds the secondary structure fragments of every protein
// chain in one or more PDB files and prints them as a table per chain.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/TuftsBCB/seq"

	"github.com/TuftsBCB/ssfrag/cmd/util"
	"github.com/TuftsBCB/ssfrag/fragment"
	"github.com/TuftsBCB/ssfrag/pdb"
)

var (
	flagFasta = ""
	flagGob   = ""
	flagQuiet = false
)

func init() {
	flag.StringVar(&flagFasta, "fasta", flagFasta,
		"When set, the sequence of every fragment is written to this file\n"+
			"in FASTA format.")
	flag.StringVar(&flagGob, "gob", flagGob,
		"When set, every fragment is saved to this file. It can be read\n"+
			"back by frag-rmsd.")
	flag.BoolVar(&flagQuiet, "quiet", flagQuiet,
		"When set, the fragment tables are not printed.")

	util.FlagUse("cpu", "verbose", "window", "no-merge", "chain", "model")
	util.FlagParse("pdb-file [pdb-file ...]",
		"Finds alpha-helix, beta-strand and curved fragments in the\n"+
			"backbone of every protein chain in the PDB files given.")
	util.AssertLeastNArg(1)
}

func main() {
	var chains []pdb.Chain
	for _, pdbFile := range util.Args() {
		read, err := pdb.Read(pdbFile)
		if util.Warning(err, "Skipping '%s'", pdbFile) {
			continue
		}
		for _, chain := range read {
			if util.Selected(chain.Ident, chain.Model) {
				chains = append(chains, chain)
			}
		}
	}
	if len(chains) == 0 {
		util.Fatalf("Could not find any protein chains.")
	}
	util.Verbosef("Finding fragments in %d chains from %d files with a "+
		"window of %d.\n", len(chains), util.NArg(), util.FlagWindow)

	found := make([]fragment.Chain, len(chains))
	failed := make([]bool, len(chains))
	progress := util.NewProgress(len(chains), "chains")
	pool := newFragmentWorkers(util.FlagCpu)
	collected := make(chan struct{})
	go func() {
		for r := range pool.results {
			found[r.index], failed[r.index] = r.chain, r.err != nil
			progress.JobDone(r.err)
		}
		close(collected)
	}()
	for i, chain := range chains {
		pool.enqueue(i, chain)
	}
	pool.done()
	<-collected
	if errs := progress.Close(); errs > 0 {
		util.Warnf("Fragments could not be found in %d of %d chains.",
			errs, len(chains))
	}

	var ok []fragment.Chain
	for i, c := range found {
		if !failed[i] {
			ok = append(ok, c)
		}
	}
	if !flagQuiet {
		for _, c := range ok {
			fmt.Printf("> %s\n", c)
			util.Assert(fragment.Write(os.Stdout, c.Fragments),
				"Could not write fragments")
			fmt.Println()
		}
	}
	if len(flagFasta) > 0 {
		util.FastaWrite(flagFasta, sequences(ok))
	}
	if len(flagGob) > 0 {
		util.FragmentsWrite(flagGob, ok)
	}
}

// sequences names every fragment by its chain and position in the chain,
// e.g., "1ubqA/1:3 ah".
func sequences(chains []fragment.Chain) []seq.Sequence {
	var seqs []seq.Sequence
	for _, c := range chains {
		for i, frag := range c.Fragments {
			name := fmt.Sprintf("%s%c/%d:%d %s",
				c.Structure, c.Ident, c.Model, i, frag.Type)
			seqs = append(seqs, frag.Seq(name))
		}
	}
	return seqs
}
