package charseq

// Graph is a character-labeled directed graph in compressed sparse row form.
//
// offsets has length n+1; neighbors has length offsets[n]. succ(v) is
// neighbors[offsets[v]:offsets[v+1]]. Graph is immutable after Build: all
// reads are safe to share across goroutines without locking.
type Graph struct {
	labels    []byte
	offsets   []int
	neighbors []int
}

// Build constructs a CharGraph from a labeled adjacency list: labels[v] is
// the single-byte label of vertex v, adjacency[v] lists the successor ids
// of v in the order they should appear in CSR form. Vertex 0 is the source.
//
// Build runs Validate before returning and surfaces the same sentinel
// errors; a Graph returned from Build without an error is always
// well-formed.
func Build(labels []byte, adjacency [][]int) (*Graph, error) {
	n := len(labels)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if len(adjacency) != n {
		return nil, ErrAdjacencyLength
	}

	offsets := make([]int, n+1)
	total := 0
	for v := 0; v < n; v++ {
		offsets[v] = total
		total += len(adjacency[v])
	}
	offsets[n] = total

	neighbors := make([]int, 0, total)
	for v := 0; v < n; v++ {
		neighbors = append(neighbors, adjacency[v]...)
	}

	g := &Graph{labels: labels, offsets: offsets, neighbors: neighbors}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate checks the CSR invariants required by the alignment engine:
// offsets[0] == 0, offsets is monotone non-decreasing, and every neighbor
// id lies in [0, n). It is called automatically by Build, and can be
// called again by callers who mutate a Graph's slices directly (not done
// anywhere in this module, but kept as a public safety net).
func (g *Graph) Validate() error {
	n := g.N()
	if len(g.offsets) != n+1 {
		return ErrOffsetsNotMonotone
	}
	if g.offsets[0] != 0 {
		return ErrBadOffsetOrigin
	}
	for v := 0; v < n; v++ {
		if g.offsets[v+1] < g.offsets[v] {
			return ErrOffsetsNotMonotone
		}
	}
	for _, u := range g.neighbors {
		if u < 0 || u >= n {
			return ErrNeighborOutOfRange
		}
	}

	return nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return len(g.labels) }

// NumVertices is a longer-named alias for N, for callers that prefer a
// descriptive diagnostic accessor over the terse CSR-style name.
func (g *Graph) NumVertices() int { return g.N() }

// NumEdges returns the total number of directed edges.
func (g *Graph) NumEdges() int { return len(g.neighbors) }

// Label returns the single-byte label of vertex v.
func (g *Graph) Label(v int) byte { return g.labels[v] }

// Succ returns the successor ids of v, in CSR order. The returned slice is
// a view into the graph's internal storage and must not be modified.
func (g *Graph) Succ(v int) []int {
	return g.neighbors[g.offsets[v]:g.offsets[v+1]]
}
