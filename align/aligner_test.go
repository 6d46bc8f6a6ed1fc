package align_test

import (
	"testing"

	"github.com/lvlath-bio/seqgraphalign/align"
	"github.com/lvlath-bio/seqgraphalign/charseq"
	"github.com/lvlath-bio/seqgraphalign/internal/randgraph"
	"github.com/lvlath-bio/seqgraphalign/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAligner_NilGraph(t *testing.T) {
	cfg, _ := scoring.New()
	_, err := align.NewAligner(nil, cfg)
	assert.ErrorIs(t, err, align.ErrNilGraph)
}

func TestNewAligner_InvalidCost(t *testing.T) {
	g := buildPathGraph()
	cfg := scoring.Config{Substitution: -1}
	_, err := align.NewAligner(g, cfg)
	assert.ErrorIs(t, err, scoring.ErrInvalidCost)
}

func TestAlign_EmptyQuery(t *testing.T) {
	g := buildPathGraph()
	cfg, _ := scoring.New()
	aligner, err := align.NewAligner(g, cfg)
	require.NoError(t, err)

	_, err = aligner.Align(nil)
	assert.ErrorIs(t, err, align.ErrEmptyQuery)
}

func TestAlign_InvalidQueryByte(t *testing.T) {
	g := buildPathGraph()
	cfg, _ := scoring.New()
	aligner, err := align.NewAligner(g, cfg)
	require.NoError(t, err)

	_, err = aligner.Align([]byte("ACGX"))
	assert.ErrorIs(t, err, align.ErrInvalidQueryByte)
}

// TestAlign_FreeStartInvariant checks that a query exactly matching a path
// starting at a non-zero vertex with no edge from the source still scores
// 0, because every vertex is a free start.
func TestAlign_FreeStartInvariant(t *testing.T) {
	// Vertex 0 (N) is isolated; 1->2->3 spells "CGT" and has no edge
	// reachable from vertex 0 at all.
	g, err := charseq.Build([]byte("NCGT"), [][]int{{}, {2}, {3}, {}})
	require.NoError(t, err)
	cfg, _ := scoring.New()
	aligner, err := align.NewAligner(g, cfg)
	require.NoError(t, err)

	cost, err := aligner.Align([]byte("CGT"))
	require.NoError(t, err)
	assert.Equal(t, scoring.Score(0), cost)
}

// TestInitializer_SourceBroadcast checks that vertex 0 broadcasts
// match/substitution into every other vertex directly, not only its CSR
// neighbors.
func TestInitializer_SourceBroadcast(t *testing.T) {
	// Vertex 0 has no outgoing edges at all; vertex 3 (label 'T') is
	// reachable only via the direct source broadcast, not via any edge.
	g, err := charseq.Build([]byte("NACT"), [][]int{{}, {}, {}, {}})
	require.NoError(t, err)
	cfg, _ := scoring.New()
	aligner, err := align.NewAligner(g, cfg)
	require.NoError(t, err)

	cost, err := aligner.Align([]byte("T"))
	require.NoError(t, err)
	assert.Equal(t, scoring.Score(0), cost)
}

func TestAlign_Idempotent(t *testing.T) {
	g := buildPathGraph()
	cfg, _ := scoring.New()
	aligner, err := align.NewAligner(g, cfg)
	require.NoError(t, err)

	first, err := aligner.Align([]byte("ACGT"))
	require.NoError(t, err)
	second, err := aligner.Align([]byte("ACGT"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAlignBoth_ReturnsRawPair(t *testing.T) {
	g, err := charseq.Build([]byte("NAAAA"), [][]int{{1}, {2}, {3}, {4}, {}})
	require.NoError(t, err)
	cfg, _ := scoring.New()
	aligner, err := align.NewAligner(g, cfg)
	require.NoError(t, err)

	forward, reverse, err := aligner.AlignBoth([]byte("TTTT"))
	require.NoError(t, err)
	assert.Equal(t, scoring.Score(0), reverse)
	assert.GreaterOrEqual(t, forward, reverse)
}

// --- property tests over random graphs ------------------------------------

var propertySeeds = []int64{1, 2, 3, 7, 99}

func TestProperty_TriangleInequality(t *testing.T) {
	for _, seed := range propertySeeds {
		g, err := randgraph.Generate(randgraph.WithSeed(seed), randgraph.WithVertexCount(12))
		require.NoError(t, err)
		cfg, _ := scoring.New()
		aligner, err := align.NewAligner(g, cfg)
		require.NoError(t, err)

		query := []byte("ACGTACGT")
		cost, err := aligner.Align(query)
		require.NoError(t, err)

		bound := scoring.Score(len(query)) * cfg.MaxCost()
		assert.LessOrEqual(t, cost, bound, "seed %d", seed)
	}
}

func TestProperty_MonotonicityInCosts(t *testing.T) {
	for _, seed := range propertySeeds {
		g, err := randgraph.Generate(randgraph.WithSeed(seed), randgraph.WithVertexCount(10))
		require.NoError(t, err)

		low, err := scoring.New(scoring.WithSubstitution(1), scoring.WithDeletion(1), scoring.WithInsertion(1))
		require.NoError(t, err)
		high, err := scoring.New(scoring.WithSubstitution(3), scoring.WithDeletion(1), scoring.WithInsertion(1))
		require.NoError(t, err)

		query := []byte("ACGTACGT")
		lowAligner, err := align.NewAligner(g, low)
		require.NoError(t, err)
		highAligner, err := align.NewAligner(g, high)
		require.NoError(t, err)

		lowCost, err := lowAligner.Align(query)
		require.NoError(t, err)
		highCost, err := highAligner.Align(query)
		require.NoError(t, err)

		assert.LessOrEqual(t, lowCost, highCost, "seed %d", seed)
	}
}

func TestProperty_ReverseComplementSymmetry(t *testing.T) {
	for _, seed := range propertySeeds {
		g, err := randgraph.Generate(randgraph.WithSeed(seed), randgraph.WithVertexCount(10))
		require.NoError(t, err)
		cfg, _ := scoring.New()
		aligner, err := align.NewAligner(g, cfg)
		require.NoError(t, err)

		query := []byte("ACGTACGT")
		direct, err := aligner.Align(query)
		require.NoError(t, err)

		rc := charseq.ReverseComplementQuery(query)
		viaRC, err := aligner.Align(rc)
		require.NoError(t, err)

		assert.Equal(t, direct, viaRC, "seed %d", seed)
	}
}

func TestProperty_AgreesWithNavarroOracle(t *testing.T) {
	for _, seed := range propertySeeds {
		g, err := randgraph.Generate(randgraph.WithSeed(seed), randgraph.WithVertexCount(9), randgraph.WithEdgeDensity(0.4))
		require.NoError(t, err)
		cfg, err := scoring.New(scoring.WithSubstitution(2), scoring.WithDeletion(1), scoring.WithInsertion(1))
		require.NoError(t, err)

		fast, err := align.NewAligner(g, cfg)
		require.NoError(t, err)
		oracle, err := align.NewNavarroEngine(g, cfg)
		require.NoError(t, err)

		for _, query := range [][]byte{[]byte("ACGT"), []byte("A"), []byte("ACGTACGT")} {
			fastCost, err := fast.Align(query)
			require.NoError(t, err)
			oracleCost, err := oracle.Align(query)
			require.NoError(t, err)

			assert.Equal(t, oracleCost, fastCost, "seed %d query %s", seed, query)
		}
	}
}
