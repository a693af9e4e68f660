/*
Package rama classifies residues into named regions of the Ramachandran
plot from their phi and psi backbone dihedrals.

Regions are hand digitized polygons. Glycine and proline have their own
sets of regions; every other residue uses the general set. Regions may
overlap, and the classifier always resolves overlaps the same way: every
region is tested in its fixed order and the last one containing the point
wins. Boundary points depend on this order, so it is part of the contract.
*/
package rama

import (
	"strings"

	"github.com/TuftsBCB/ssfrag/backbone"
)

// Classify returns the region label of a residue of the given type (three
// letter code) with the given phi and psi (in degrees). A point outside every
// region is labeled Out.
func Classify(phi, psi float64, residue string) Label {
	return classify(Regions(residue), phi, psi)
}

// Regions returns the regions, in test order, used for a residue type.
// The slice returned must not be modified.
func Regions(residue string) []Region {
	switch strings.ToUpper(residue) {
	case "GLY":
		return glycineRegions
	case "PRO":
		return prolineRegions
	}
	return generalRegions
}

// ClassifyResidue returns the label of residue i in chain, or None if its
// phi or psi is undefined.
func ClassifyResidue(chain []backbone.Residue, i int) Label {
	phi, ok := backbone.Phi(chain, i)
	if !ok {
		return None
	}
	psi, ok := backbone.Psi(chain, i)
	if !ok {
		return None
	}
	return Classify(phi, psi, chain[i].Name)
}

// ClassifyChain returns the label of every residue in chain.
func ClassifyChain(chain []backbone.Residue) []Label {
	labels := make([]Label, len(chain))
	for i := range chain {
		labels[i] = ClassifyResidue(chain, i)
	}
	return labels
}
