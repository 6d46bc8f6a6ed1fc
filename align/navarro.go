package align

import (
	"github.com/lvlath-bio/seqgraphalign/charseq"
	"github.com/lvlath-bio/seqgraphalign/scoring"
)

// NavarroEngine is an independent, deliberately simple recursive-relaxation
// propagator kept as a correctness oracle for the fast engine. It does not
// need the rank table, parents, or types that the fast engine's order
// production relies on — only the initialized layer values.
//
// It may revisit vertices many times on adversarial graphs; that
// inefficiency is the point of keeping it separate from the linear-time
// engine, not a bug to fix.
type NavarroEngine struct {
	graph   *charseq.Graph
	scoring scoring.Config

	// NumPropagations counts successful relaxations during the most
	// recent Align call, a diagnostic for how much re-relaxation work
	// adversarial graphs force on this oracle.
	NumPropagations int
}

// NewNavarroEngine builds an oracle engine over the same graph and cost
// model as a fast Aligner.
func NewNavarroEngine(g *charseq.Graph, cfg scoring.Config) (*NavarroEngine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &NavarroEngine{graph: g, scoring: cfg}, nil
}

// Align computes the alignment cost using only the recursive-relaxation
// propagator, trying both strands exactly as the fast driver does.
func (e *NavarroEngine) Align(query []byte) (scoring.Score, error) {
	if len(query) == 0 {
		return 0, ErrEmptyQuery
	}
	if err := validateQueryAlphabet(query); err != nil {
		return 0, err
	}

	forward := e.alignOneDirection(query)
	reverse := e.alignOneDirection(charseq.ReverseComplementQuery(query))

	if reverse < forward {
		return reverse, nil
	}

	return forward, nil
}

func (e *NavarroEngine) alignOneDirection(query []byte) scoring.Score {
	n := e.graph.N()
	// Free-start seed: every vertex begins as a zero-cost start, so an
	// alignment may begin anywhere in the graph, not only at vertex 0.
	current := make([]scoring.Score, n)
	previous := make([]scoring.Score, n)

	e.NumPropagations = 0

	for i := range query {
		previous, current = current, previous
		current = e.computeLayerNavarro(query[i], previous)
	}

	best := current[0]
	for _, v := range current {
		if v < best {
			best = v
		}
	}

	return best
}

// computeLayerNavarro initializes a fresh distance vector from the
// previous layer using the same match/substitution/deletion rules as the
// fast engine's initializer, then recursively relaxes insertion edges out
// of every vertex except the source (vertices 1..n-1).
func (e *NavarroEngine) computeLayerNavarro(b byte, previous []scoring.Score) []scoring.Score {
	g := e.graph
	cfg := e.scoring
	n := g.N()

	d := make([]scoring.Score, n)
	d[0] = previous[0] + cfg.Deletion
	for v := 1; v < n; v++ {
		cost := cfg.Substitution
		if b == g.Label(v) {
			cost = 0
		}
		d[v] = previous[0] + cost
	}

	for v := 1; v < n; v++ {
		if candidate := previous[v] + cfg.Deletion; candidate < d[v] {
			d[v] = candidate
		}
		for _, u := range g.Succ(v) {
			cost := cfg.Substitution
			if b == g.Label(u) {
				cost = 0
			}
			if candidate := previous[v] + cost; candidate < d[u] {
				d[u] = candidate
			}
		}
	}

	for v := 1; v < n; v++ {
		for _, u := range g.Succ(v) {
			e.relax(d, v, u)
		}
	}

	return d
}

// relax recursively applies insertion relaxation: if the edge v->u
// improves u's score, apply it and recurse into u's successors.
func (e *NavarroEngine) relax(d []scoring.Score, v, u int) {
	if candidate := d[v] + e.scoring.Insertion; candidate < d[u] {
		d[u] = candidate
		e.NumPropagations++
		for _, w := range e.graph.Succ(u) {
			e.relax(d, u, w)
		}
	}
}
