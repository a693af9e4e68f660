/*
Package rmsd compares the alpha-carbon traces of fragments by their root mean
square deviation after optimal superposition (the Kabsch algorithm, as
implemented by github.com/TuftsBCB/structure).

Fragments of different lengths are never compared; asking for their RMSD is
an error rather than a panic.
*/
package rmsd
