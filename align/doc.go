// Package align implements the layered dynamic-programming alignment
// engine: given a CharGraph and a ScoringConfig, it computes the minimum
// edit distance between a linear query and the best path through the
// graph, trying both the forward query and its reverse complement.
//
// The per-column update is split into two collaborating stages:
//
//   - Initializer fills a column's match/substitution/deletion
//     contributions and produces a vertex order sorted by the
//     initialized distance without calling a general sort, by carrying
//     the previous column's sorted order through a three-way merge and a
//     counting sort (see initializer.go).
//   - InsertionPropagator then relaxes insertion edges to a fixed point
//     in linear time, using the initialized order as one of two merged
//     monotone streams (see propagator.go).
//
// NavarroEngine (navarro.go) is an independent, deliberately simpler
// recursive-relaxation implementation of the same per-column update, kept
// as a correctness oracle: for any input, its final layer must equal the
// fast engine's layer element-wise.
//
// Aligner (aligner.go) owns a Graph and a ScoringConfig for its lifetime
// and reuses its scratch buffers across every Align call; nothing in the
// inner loop allocates once buffers are sized.
package align

import "errors"

// transitionKind identifies which of the three operations produced a
// vertex's initialized score.
type transitionKind int

const (
	match transitionKind = iota
	subst
	del
)

// Sentinel errors surfaced by the alignment engine.
var (
	// ErrNilGraph indicates a nil *charseq.Graph was passed to NewAligner.
	ErrNilGraph = errors.New("align: graph is nil")

	// ErrEmptyQuery indicates an empty query was passed to Align.
	ErrEmptyQuery = errors.New("align: query must be non-empty")

	// ErrInvalidQueryByte indicates a query byte outside {A,C,G,T,N}.
	ErrInvalidQueryByte = errors.New("align: query byte outside accepted alphabet")
)
