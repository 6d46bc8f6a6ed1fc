// Package charseq defines CharGraph, a character-labeled directed graph
// stored in compressed sparse row (CSR) form.
//
// Each vertex carries a single byte label. Vertex 0 is a distinguished
// source whose score participates in every alignment column. Successors of
// a vertex are a contiguous slice of the neighbors array, located by
// offsets, giving O(1) successor access with no per-vertex allocation.
//
// CharGraph is immutable after Build: construct it once per graph and share
// it read-only across as many Aligner instances as needed.
package charseq

import "errors"

// Sentinel errors for CharGraph construction and validation.
var (
	// ErrEmptyGraph indicates zero vertices were supplied to Build.
	ErrEmptyGraph = errors.New("charseq: graph must have at least one vertex")

	// ErrNeighborOutOfRange indicates a neighbor id fell outside [0, n).
	ErrNeighborOutOfRange = errors.New("charseq: neighbor id out of range")

	// ErrAdjacencyLength indicates adjacency did not have one entry per label.
	ErrAdjacencyLength = errors.New("charseq: adjacency length must match labels length")

	// ErrOffsetsNotMonotone indicates offsets[v+1] < offsets[v] for some v,
	// or that offsets does not have exactly n+1 entries.
	ErrOffsetsNotMonotone = errors.New("charseq: offsets are not monotone")

	// ErrBadOffsetOrigin indicates offsets[0] != 0.
	ErrBadOffsetOrigin = errors.New("charseq: offsets[0] must be 0")
)
