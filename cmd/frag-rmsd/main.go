// Command frag-rmsd prints the alpha-carbon RMSD between two fragments, each
// given by a PDB file, a chain identifier and the index of the fragment in
// the list ssfrag prints for that chain.
//
// With -gob, fragments are taken from a file saved by ssfrag instead, and
// each PDB file is replaced by the name of a structure in that file.
package main

import (
	"flag"
	"fmt"

	"github.com/TuftsBCB/ssfrag/cmd/util"
	"github.com/TuftsBCB/ssfrag/fragment"
	"github.com/TuftsBCB/ssfrag/rmsd"
)

var flagGob = ""

func init() {
	flag.StringVar(&flagGob, "gob", flagGob,
		"When set, fragments are read from this file (written by ssfrag).")

	util.FlagUse("window", "no-merge", "model")
	util.FlagParse("pdb-file chain-id index pdb-file chain-id index", "")
	util.AssertNArg(6)
}

func main() {
	var saved []fragment.Chain
	if len(flagGob) > 0 {
		saved = util.FragmentsRead(flagGob)
	}

	frag1 := fragmentAt(saved, util.Arg(0), util.Arg(1), util.Arg(2))
	frag2 := fragmentAt(saved, util.Arg(3), util.Arg(4), util.Arg(5))

	r, err := rmsd.Fragments(frag1, frag2)
	util.Assert(err)
	fmt.Printf("%s\n%s\n%f\n", frag1, frag2, r)
}

func fragmentAt(saved []fragment.Chain, source, chainID, index string) fragment.Fragment {
	if len(chainID) != 1 {
		util.Fatalf("A chain identifier is a single character, but '%s' "+
			"was given.", chainID)
	}

	var name string
	var frags []fragment.Fragment
	if saved != nil {
		c, ok := savedChain(saved, source, chainID[0], util.FlagModel)
		if !ok {
			util.Fatalf("Could not find chain '%s%s' in '%s'.",
				source, chainID, flagGob)
		}
		name, frags = c.String(), c.Fragments
	} else {
		chain := util.PDBChain(source, chainID[0], util.FlagModel)
		name = chain.String()

		var err error
		frags, err = fragment.Discover(chain.Residues, util.FlagWindow)
		util.Assert(err, "Could not find fragments in %s", chain)
		if !util.FlagNoMerge {
			frags, err = fragment.Merge(chain.Residues, frags)
			util.Assert(err, "Could not merge fragments in %s", chain)
		}
	}

	i := util.ParseInt(index)
	if i < 0 || i >= len(frags) {
		util.Fatalf("Chain %s has %d fragments; there is no fragment %d.",
			name, len(frags), i)
	}
	return frags[i]
}

func savedChain(
	saved []fragment.Chain,
	structure string,
	ident byte,
	model int,
) (fragment.Chain, bool) {
	for _, c := range saved {
		if c.Structure != structure || c.Ident != ident {
			continue
		}
		if model == 0 || c.Model == model {
			return c, true
		}
	}
	return fragment.Chain{}, false
}
