package backbone

import "strings"

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// AminoOneToThree is the reverse of AminoThreeToOne. It is created in
// this packages 'init' function.
var AminoOneToThree = map[byte]string{}

func init() {
	for k, v := range AminoThreeToOne {
		AminoOneToThree[v] = k
	}
}

// OneLetter returns the single letter code for a three letter residue name.
// Unknown names map to 'X'.
func OneLetter(name string) byte {
	if one, ok := AminoThreeToOne[strings.ToUpper(name)]; ok {
		return one
	}
	return 'X'
}

// ThreeLetter returns the three letter code for a single letter residue.
// Unknown residues map to "UNK".
func ThreeLetter(one byte) string {
	if three, ok := AminoOneToThree[one]; ok {
		return three
	}
	return "UNK"
}

// Sequence returns the one letter amino acid sequence of the residues given.
func Sequence(residues []Residue) string {
	bs := make([]byte, len(residues))
	for i, r := range residues {
		bs[i] = OneLetter(r.Name)
	}
	return string(bs)
}
