package graphio_test

import (
	"testing"

	"github.com/lvlath-bio/seqgraphalign/graphio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_SingleCharacterLabelsPassThrough(t *testing.T) {
	compacted := &graphio.CompactedGraph{
		Labels:    []string{"N", "A", "C"},
		Adjacency: [][]int{{1}, {2}, {}},
	}

	g, err := graphio.Expand(compacted)
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, byte('N'), g.Label(0))
	assert.Equal(t, byte('A'), g.Label(1))
	assert.Equal(t, byte('C'), g.Label(2))
	assert.Equal(t, []int{1}, g.Succ(0))
	assert.Equal(t, []int{2}, g.Succ(1))
	assert.Empty(t, g.Succ(2))
}

// TestExpand_MultiCharacterChain pins the chain-expansion rule: a
// compacted vertex "ACG" keeps vertex id 1 for its first character, and
// gets two new trailing vertices appended after all of the original ids,
// with the last one inheriting the compacted vertex's original
// out-neighbors.
func TestExpand_MultiCharacterChain(t *testing.T) {
	compacted := &graphio.CompactedGraph{
		Labels:    []string{"N", "ACG", "T"},
		Adjacency: [][]int{{1}, {2}, {}},
	}

	g, err := graphio.Expand(compacted)
	require.NoError(t, err)
	require.Equal(t, 5, g.N())

	assert.Equal(t, byte('N'), g.Label(0))
	assert.Equal(t, byte('A'), g.Label(1))
	assert.Equal(t, byte('T'), g.Label(2))
	assert.Equal(t, byte('C'), g.Label(3))
	assert.Equal(t, byte('G'), g.Label(4))

	assert.Equal(t, []int{1}, g.Succ(0))  // N -> A
	assert.Equal(t, []int{3}, g.Succ(1))  // A -> C (first link in the chain)
	assert.Empty(t, g.Succ(2))            // T is terminal
	assert.Equal(t, []int{4}, g.Succ(3))  // C -> G (mid-chain link)
	assert.Equal(t, []int{2}, g.Succ(4))  // G inherits ACG's neighbor: T
}

func TestExpand_EmptyCompactedGraph(t *testing.T) {
	compacted := &graphio.CompactedGraph{}
	_, err := graphio.Expand(compacted)
	assert.Error(t, err)
}
