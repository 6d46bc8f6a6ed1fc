package align

import (
	"github.com/lvlath-bio/seqgraphalign/charseq"
	"github.com/lvlath-bio/seqgraphalign/scoring"
)

// propagateInsertions relaxes insertion edges (uniform weight ci) to a
// fixed point in linear time by merging the already-sorted initialized
// order with a FIFO of candidate improvements, instead of a priority
// queue: every edge weight is the same ci, so newly relaxed vertices are
// already non-decreasing in arrival order and a plain queue keeps them
// sorted without a heap.
//
// On entry, buf.initLayer/buf.initOrder hold the initialized column.
// On exit, buf.currentLayer holds the settled layer and buf.currentOrder
// the emission order, which is sorted by the final layer value.
func propagateInsertions(g *charseq.Graph, cfg scoring.Config, buf *layerBuffers) {
	n := buf.n
	d := buf.currentLayer
	copy(d, buf.initLayer)

	for v := 0; v < n; v++ {
		buf.visited[v] = false
	}
	buf.queue.reset()

	cursor := 0
	emitted := 0
	for cursor < n || !buf.queue.empty() {
		var candidate int
		switch {
		case cursor < n && (buf.queue.empty() || d[buf.initOrder[cursor]] <= d[buf.queue.front()]):
			candidate = buf.initOrder[cursor]
			cursor++
		default:
			candidate = buf.queue.popFront()
		}

		if buf.visited[candidate] {
			continue
		}
		buf.visited[candidate] = true
		buf.currentOrder[emitted] = candidate
		emitted++

		for _, u := range g.Succ(candidate) {
			if buf.visited[u] {
				continue
			}
			if relaxed := d[candidate] + cfg.Insertion; relaxed < d[u] {
				d[u] = relaxed
				buf.queue.push(u)
			}
		}
	}
}
