package graphio

import (
	"bufio"
	"fmt"
	"io"
)

// WriteGFA writes g as a GFA graph: a header line, one segment (S) line
// per compacted vertex, and one link (L) line per directed edge, both
// strands fixed at '+' and CIGAR fixed at "0M" since the compacted graph
// carries no overlap information.
func WriteGFA(w io.Writer, g *CompactedGraph) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("H\tVN:Z:1.0\n"); err != nil {
		return err
	}
	for i, label := range g.Labels {
		if _, err := fmt.Fprintf(bw, "S\t%d\t%s\n", i, label); err != nil {
			return err
		}
	}
	for i, neighbors := range g.Adjacency {
		for _, u := range neighbors {
			if _, err := fmt.Fprintf(bw, "L\t%d\t+\t%d\t+\t0M\n", i, u); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
