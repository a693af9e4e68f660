/*
Package fragment finds secondary structure fragments in a protein backbone.

Discovery slides a small window along a chain and measures, for every window,
the distance between the average alpha-carbon and the average carbonyl oxygen
positions (the characteristic value, or CV). Helices and strands have
distinct CVs, so each residue is marked as matching the helix band, the
strand band or neither. A residue's Ramachandran region may veto a band
match: a residue in the beta region of the plot is never part of a helix, for
example.

Runs of matching residues become fragments. A run survives up to two
distorted residues; a helix that does so continues as a curved helix. Three
distortions in a row, a change of family, or a break in the backbone closes
the run. Runs shorter than MinLength residues are dropped.

Finally, Merge joins adjacent fragments of the same family whose
characteristic vectors point in nearly the same direction into a single
curved fragment.

A typical use:

	frags, err := fragment.Discover(chain, backbone.DefaultWindow)
	if err != nil {
		log.Fatal(err)
	}
	frags, err = fragment.Merge(chain, frags)

Nothing in this package keeps a reference to the residues it is given.
*/
package fragment
