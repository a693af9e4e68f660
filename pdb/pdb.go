/*
Package pdb turns PDB entries read by github.com/TuftsBCB/io/pdb into the
backbone chains used to discover fragments.

Every model of every protein chain becomes one Chain. Only the backbone atoms
(N, CA, C and O) of standard ATOM records are kept; alternate locations are
dropped in favor of the first one listed.
*/
package pdb

import (
	"fmt"
	"path"
	"strings"

	iopdb "github.com/TuftsBCB/io/pdb"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TuftsBCB/ssfrag/backbone"
)

// Chain is one model of one protein chain, as a list of backbone residues.
type Chain struct {
	Structure string
	Model     int
	Ident     byte
	Residues  []backbone.Residue
}

func (c Chain) String() string {
	return fmt.Sprintf("%s%c/%d", c.Structure, c.Ident, c.Model)
}

// Read reads the PDB file at the path given (which may be gzipped) and
// returns all of its protein chains.
func Read(fpath string) ([]Chain, error) {
	entry, err := iopdb.ReadPDB(fpath)
	if err != nil {
		return nil, fmt.Errorf("Could not read PDB file '%s': %w", fpath, err)
	}
	return Chains(entry), nil
}

// Chains returns one Chain for every model of every protein chain in the
// entry, in the order they appear in the entry.
func Chains(entry *iopdb.Entry) []Chain {
	name := Name(entry)
	chains := make([]Chain, 0, len(entry.Chains))
	for _, chain := range entry.Chains {
		if !chain.IsProtein() {
			continue
		}
		for _, model := range chain.Models {
			chains = append(chains, NewChain(name, chain, model))
		}
	}
	return chains
}

// NewChain converts one model of a chain. Residues keep their sequence
// numbers and insertion codes, and are identified as part of the structure
// given by name.
func NewChain(name string, chain *iopdb.Chain, model *iopdb.Model) Chain {
	c := Chain{
		Structure: name,
		Model:     model.Num,
		Ident:     chain.Ident,
		Residues:  make([]backbone.Residue, 0, len(model.Residues)),
	}
	for _, res := range model.Residues {
		r := backbone.Residue{
			ID: backbone.ResidueID{
				Structure: name,
				Model:     model.Num,
				Chain:     chain.Ident,
				SeqNum:    res.SequenceNum,
				ICode:     res.InsertionCode,
			},
			Name:  backbone.ThreeLetter(byte(res.Name)),
			Atoms: make(map[string]r3.Vec, 4),
		}
		for _, atom := range res.Atoms {
			if atom.Het || !isBackbone(atom.Name) || r.Has(atom.Name) {
				continue
			}
			r.Atoms[atom.Name] = r3.Vec{X: atom.X, Y: atom.Y, Z: atom.Z}
		}
		c.Residues = append(c.Residues, r)
	}
	return c
}

// Find returns the chain with the given identifier and model number.
func Find(chains []Chain, ident byte, model int) (Chain, bool) {
	for _, c := range chains {
		if c.Ident == ident && c.Model == model {
			return c, true
		}
	}
	return Chain{}, false
}

// Name returns a short name for an entry, taken from its file name with any
// "pdb" prefix and all extensions removed: "/data/pdb1ubq.ent.gz" is "1ubq".
func Name(entry *iopdb.Entry) string {
	base := path.Base(entry.Path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	base = strings.ToLower(base)
	if len(base) == 7 && strings.HasPrefix(base, "pdb") &&
		base[3] >= '0' && base[3] <= '9' {
		base = base[3:]
	}
	return base
}

func isBackbone(name string) bool {
	switch name {
	case backbone.AtomN, backbone.AtomCA, backbone.AtomC, backbone.AtomO:
		return true
	}
	return false
}
