package fragment

import (
	"encoding/gob"
	"fmt"
	"io"
	"text/tabwriter"
)

// Chain is the list of fragments found in one model of one chain.
type Chain struct {
	Structure string
	Model     int
	Ident     byte
	Fragments []Fragment
}

func (c Chain) String() string {
	return fmt.Sprintf("%s%c/%d (%d fragments)",
		c.Structure, c.Ident, c.Model, len(c.Fragments))
}

// Write writes a table of fragments to w, one fragment per line.
func Write(w io.Writer, frags []Fragment) error {
	tabw := tabwriter.NewWriter(w, 0, 4, 4, ' ', 0)
	fmt.Fprintln(tabw, "Type\tFirst\tLast\tLength\tCV\tSequence")
	for _, frag := range frags {
		if len(frag.Residues) == 0 {
			continue
		}
		fmt.Fprintf(tabw, "%s\t%s\t%s\t%d\t%0.3f\t%s\n",
			frag.Type,
			frag.Residues[0], frag.Residues[len(frag.Residues)-1],
			frag.Len(), frag.CVLength, frag.Sequence)
	}
	return tabw.Flush()
}

// Save writes the chains given to w. They can be read back with Open.
func Save(w io.Writer, chains []Chain) error {
	enc := gob.NewEncoder(w)
	return enc.Encode(chains)
}

// Open reads chains written by Save from r.
func Open(r io.Reader) ([]Chain, error) {
	var chains []Chain

	dec := gob.NewDecoder(r)
	if err := dec.Decode(&chains); err != nil {
		return nil, err
	}
	return chains, nil
}
