package graphio

import "github.com/lvlath-bio/seqgraphalign/charseq"

// Expand turns a CompactedGraph, whose vertices carry one label per chain
// of characters, into the character-per-vertex charseq.Graph the alignment
// engine consumes. The first character of each compacted label keeps that
// vertex's original id; each additional character becomes a new vertex
// appended after all of the original ids, chained in sequence, with the
// last vertex of the chain inheriting the compacted vertex's original
// out-neighbors.
func Expand(g *CompactedGraph) (*charseq.Graph, error) {
	numCompacted := len(g.Labels)

	labels := make([]byte, 0, numCompacted)
	adjacency := make([][]int, numCompacted, numCompacted*2)
	for _, label := range g.Labels {
		labels = append(labels, label[0])
	}

	nextVertexID := numCompacted
	for compactedID, label := range g.Labels {
		n := len(label)
		if n == 1 {
			adjacency[compactedID] = append(adjacency[compactedID], g.Adjacency[compactedID]...)
			continue
		}

		for i := 1; i < n; i++ {
			labels = append(labels, label[i])
			adjacency = append(adjacency, nil)
			vertexID := nextVertexID

			if i == 1 {
				adjacency[compactedID] = append(adjacency[compactedID], vertexID)
			}
			if i+1 < n {
				adjacency[vertexID] = append(adjacency[vertexID], vertexID+1)
			} else {
				adjacency[vertexID] = append(adjacency[vertexID], g.Adjacency[compactedID]...)
			}

			nextVertexID++
		}
	}

	return charseq.Build(labels, adjacency)
}
