// Package graphio implements the textual adjacency-graph format and GFA
// output, plus the compacted (label-per-chain) graph expansion into the
// character-per-vertex CharGraph the alignment engine consumes. These are
// I/O and preprocessing collaborators: nothing here participates in the
// alignment DP itself.
package graphio

import "errors"

// Sentinel errors for the textual graph format.
var (
	// ErrEmptyFile indicates the input had no header line.
	ErrEmptyFile = errors.New("graphio: input file is empty")

	// ErrTooFewRows indicates fewer adjacency rows than the header count.
	ErrTooFewRows = errors.New("graphio: fewer rows than the declared vertex count")

	// ErrMissingLabel indicates an adjacency row had no tokens at all, so
	// no label could be read.
	ErrMissingLabel = errors.New("graphio: adjacency row is missing its label token")

	// ErrBadNeighborID indicates a non-integer or out-of-range neighbor token.
	ErrBadNeighborID = errors.New("graphio: neighbor id token is not a valid vertex id")
)
