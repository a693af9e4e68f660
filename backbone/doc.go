/*
Package backbone provides the minimal view of a protein chain needed to
detect secondary structure fragments: residues with identities and backbone
atom coordinates, the geometric continuity test between consecutive
residues, phi/psi dihedrals and the sliding window "characteristic value"
(CV) stream.

A characteristic value is the distance between the average alpha-carbon
position and the average carbonyl oxygen position over a small window of
consecutive residues (three by default). Helices and strands produce
distinctly different values, which is what the fragment package keys on.

Nothing in this package reads files. Residues are usually built by the pdb
package from a parsed PDB entry, but any code can construct them.
*/
package backbone
