package randgraph

import (
	"math/rand"

	"github.com/lvlath-bio/seqgraphalign/charseq"
)

// config holds every knob Generate needs; options only mutate it.
type config struct {
	vertexCount int
	edgeDensity float64
	rng         *rand.Rand
	alphabet    []byte
}

// Option customizes a Generate call.
type Option func(*config)

// WithVertexCount sets the number of vertices to generate. Panics if n < 1.
func WithVertexCount(n int) Option {
	if n < 1 {
		panic(ErrTooFewVertices)
	}

	return func(c *config) { c.vertexCount = n }
}

// WithEdgeDensity sets the probability that a forward candidate edge is
// included, in addition to the spanning edges that guarantee weak
// connectivity from vertex 0.
func WithEdgeDensity(p float64) Option {
	return func(c *config) { c.edgeDensity = p }
}

// WithSeed seeds the generator's RNG for reproducible fixtures.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAlphabet overrides the label alphabet for vertices 1..n-1 (default
// A, C, G, T). Vertex 0 is always labeled N.
func WithAlphabet(alphabet []byte) Option {
	return func(c *config) { c.alphabet = alphabet }
}

func defaultConfig() config {
	return config{
		vertexCount: 8,
		edgeDensity: 0.3,
		rng:         rand.New(rand.NewSource(1)),
		alphabet:    []byte("ACGT"),
	}
}

// Generate builds a random weakly-connected CharGraph with vertex 0 as
// source. It first lays down a random spanning structure guaranteeing
// every vertex is reachable from 0 (so every vertex is within reach of an
// all-substitution/deletion path from the source, a precondition several
// alignment-cost invariants rely on), then adds extra forward edges at the
// requested density.
func Generate(opts ...Option) (*charseq.Graph, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	n := c.vertexCount
	labels := make([]byte, n)
	labels[0] = 'N'
	for v := 1; v < n; v++ {
		labels[v] = c.alphabet[c.rng.Intn(len(c.alphabet))]
	}

	adjacency := make([][]int, n)
	for v := range adjacency {
		adjacency[v] = []int{}
	}

	// Spanning structure: attach each vertex v>=1 to a random earlier
	// vertex, guaranteeing weak connectivity from 0 in O(n).
	for v := 1; v < n; v++ {
		parent := c.rng.Intn(v)
		adjacency[parent] = append(adjacency[parent], v)
	}

	// Extra forward edges at the requested density.
	for v := 0; v < n; v++ {
		for u := v + 1; u < n; u++ {
			if c.rng.Float64() < c.edgeDensity {
				adjacency[v] = append(adjacency[v], u)
			}
		}
	}

	return charseq.Build(labels, adjacency)
}
