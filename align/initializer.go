package align

import (
	"github.com/lvlath-bio/seqgraphalign/charseq"
	"github.com/lvlath-bio/seqgraphalign/scoring"
)

// initializeColumn takes the previous layer and its sorted order
// (buf.previousLayer, buf.previousOrder) and the column base b, and fills
// buf.initLayer with the match/substitution/deletion contributions and
// buf.initOrder with a vertex order sorted by the initialized distance,
// produced without a general sort.
func initializeColumn(g *charseq.Graph, cfg scoring.Config, b byte, buf *layerBuffers) {
	computeInitializedLayer(g, cfg, b, buf)
	produceInitializedOrder(g, cfg, buf)
}

// computeInitializedLayer fills buf.initLayer, buf.parents, and buf.types,
// trying candidates in a fixed order so ties resolve deterministically:
// source-from-0 (MATCH/SUBST) first, then self-deletion, then in-neighbor
// MATCH/SUBST in CSR order (the natural order of the nested loop below).
// Every update uses strict '<' so the first attaining predecessor wins.
func computeInitializedLayer(g *charseq.Graph, cfg scoring.Config, b byte, buf *layerBuffers) {
	n := buf.n
	p := buf.previousLayer

	// Source broadcast: vertex 0 opens a deletion into itself and a
	// match/substitution into every other vertex.
	buf.initLayer[0] = p[0] + cfg.Deletion
	buf.parents[0] = 0
	buf.types[0] = del

	for v := 1; v < n; v++ {
		cost := cfg.Substitution
		if b == g.Label(v) {
			cost = 0
		}
		buf.initLayer[v] = p[0] + cost
		buf.parents[v] = 0
		if cost == 0 {
			buf.types[v] = match
		} else {
			buf.types[v] = subst
		}
	}

	// Self-deletion, then in-neighbor propagation, visiting predecessors
	// in ascending vertex id and their successors in CSR order.
	for v := 1; v < n; v++ {
		if candidate := p[v] + cfg.Deletion; candidate < buf.initLayer[v] {
			buf.initLayer[v] = candidate
			buf.parents[v] = v
			buf.types[v] = del
		}

		for _, u := range g.Succ(v) {
			cost := cfg.Substitution
			kind := subst
			if b == g.Label(u) {
				cost = 0
				kind = match
			}
			if candidate := p[v] + cost; candidate < buf.initLayer[u] {
				buf.initLayer[u] = candidate
				buf.parents[u] = v
				buf.types[u] = kind
			}
		}
	}
}

// produceInitializedOrder builds a rank look-up table by a three-way merge
// over the previous order, then uses it to bucket-emit buf.initOrder in
// O(n) with no comparison sort.
func produceInitializedOrder(g *charseq.Graph, cfg scoring.Config, buf *layerBuffers) {
	n := buf.n
	p := buf.previousLayer
	order := buf.previousOrder

	buildRankTable(p, order, cfg, n, buf.rank)

	// Bucket each vertex by the rank of the (predecessor, type) pair that
	// produced its initialized score.
	for i := range buf.countsAux {
		buf.countsAux[i] = 0
	}
	keyOf := func(v int) int {
		return int(buf.types[v])*n + buf.parents[v]
	}
	for v := 0; v < n; v++ {
		buf.countsAux[buf.rank[keyOf(v)]]++
	}

	buf.offsetsAux[0] = 0
	for i := 1; i <= 3*n; i++ {
		buf.offsetsAux[i] = buf.offsetsAux[i-1] + buf.countsAux[i-1]
	}

	cursor := buf.offsetsAux[:3*n]
	for v := 0; v < n; v++ {
		key := buf.rank[keyOf(v)]
		pos := cursor[key]
		buf.initOrder[pos] = v
		cursor[key]++
	}
}

// buildRankTable performs the three-way merge over the monotone sequences
// A (MATCH), B (SUBST), C (DEL) derived from the previous layer's sorted
// order, assigning each (predecessor, type) pair a global rank in
// [0, 3n). Ties break MATCH before SUBST before DEL.
func buildRankTable(p []scoring.Score, order []int, cfg scoring.Config, n int, rank []int) {
	i, j, l := 0, 0, 0
	globalRank := 0

	keyA := func(k int) scoring.Score { return p[order[k]] }
	keyB := func(k int) scoring.Score { return p[order[k]] + cfg.Substitution }
	keyC := func(k int) scoring.Score { return p[order[k]] + cfg.Deletion }

	for i < n || j < n || l < n {
		// Pick the smallest available key; on ties, MATCH < SUBST < DEL.
		pickA, pickB, pickC := false, false, false
		switch {
		case i < n && (j >= n || keyA(i) <= keyB(j)) && (l >= n || keyA(i) <= keyC(l)):
			pickA = true
		case j < n && (l >= n || keyB(j) <= keyC(l)):
			pickB = true
		default:
			pickC = true
		}

		switch {
		case pickA:
			rank[int(match)*n+order[i]] = globalRank
			i++
		case pickB:
			rank[int(subst)*n+order[j]] = globalRank
			j++
		case pickC:
			rank[int(del)*n+order[l]] = globalRank
			l++
		}
		globalRank++
	}
}
