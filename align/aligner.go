package align

import (
	"github.com/lvlath-bio/seqgraphalign/charseq"
	"github.com/lvlath-bio/seqgraphalign/scoring"
)

// acceptedQueryAlphabet is the set of query bytes the engine accepts
// directly; mapping arbitrary input onto this alphabet, if desired, is the
// caller's responsibility.
var acceptedQueryAlphabet = [256]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}

func validateQueryAlphabet(query []byte) error {
	for _, b := range query {
		if !acceptedQueryAlphabet[b] {
			return ErrInvalidQueryByte
		}
	}

	return nil
}

// Aligner is the driver that orchestrates per-base layer updates using the
// fast initializer and insertion-propagator pair. It owns a Graph and
// ScoringConfig for its lifetime and reuses its scratch buffers across
// every Align call: nothing in the inner loop allocates once the Aligner
// is constructed.
//
// A single Aligner must not be used concurrently by two Align calls; a
// read-only Graph may be shared by any number of Aligners, each with its
// own buffers.
type Aligner struct {
	graph   *charseq.Graph
	scoring scoring.Config
	buf     *layerBuffers
}

// NewAligner validates cfg and builds an Aligner over g, pre-allocating
// all scratch needed for alignment.
func NewAligner(g *charseq.Graph, cfg scoring.Config) (*Aligner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Aligner{
		graph:   g,
		scoring: cfg,
		buf:     newLayerBuffers(g.N()),
	}, nil
}

// Align returns the minimum of the forward and reverse-complement costs of
// aligning query against the best path through the graph.
func (a *Aligner) Align(query []byte) (scoring.Score, error) {
	forward, reverse, err := a.AlignBoth(query)
	if err != nil {
		return 0, err
	}
	if reverse < forward {
		return reverse, nil
	}

	return forward, nil
}

// AlignBoth returns the forward and reverse-complement costs separately,
// for callers who want the raw pair instead of just the minimum.
func (a *Aligner) AlignBoth(query []byte) (forward, reverse scoring.Score, err error) {
	if len(query) == 0 {
		return 0, 0, ErrEmptyQuery
	}
	if err = validateQueryAlphabet(query); err != nil {
		return 0, 0, err
	}
	if _, err = a.scoring.SentinelFor(len(query)); err != nil {
		return 0, 0, err
	}

	forward = a.alignOneDirection(query)
	reverse = a.alignOneDirection(charseq.ReverseComplementQuery(query))

	return forward, reverse, nil
}

// alignOneDirection runs the free-start/initialize/propagate column loop
// for a single query orientation, using this Aligner's reusable buffers.
func (a *Aligner) alignOneDirection(query []byte) scoring.Score {
	buf := a.buf
	buf.seedFreeStart()

	for _, b := range query {
		buf.swap()
		initializeColumn(a.graph, a.scoring, b, buf)
		propagateInsertions(a.graph, a.scoring, buf)
	}

	return buf.currentLayer[buf.currentOrder[0]]
}
