package align

import "github.com/lvlath-bio/seqgraphalign/scoring"

// layerBuffers is the pre-allocated scratch an Aligner reuses across every
// column of every query: two layer vectors, two order vectors, and the
// auxiliary parent/type/rank/counting-sort arrays the initializer and
// propagator need. It is sized once to n (vertex count) and 3n (rank
// domain) and never reallocated by the inner loop.
type layerBuffers struct {
	n int

	// previous/current layer+order, swapped at the top of each column.
	previousLayer []scoring.Score
	previousOrder []int
	currentLayer  []scoring.Score
	currentOrder  []int

	// initializer scratch.
	initLayer  []scoring.Score
	initOrder  []int
	parents    []int
	types      []transitionKind
	rank       []int // size 3n
	offsetsAux []int // size 3n+1
	countsAux  []int // size 3n

	// propagator scratch.
	visited []bool
	queue   ringQueue
}

func newLayerBuffers(n int) *layerBuffers {
	return &layerBuffers{
		n:             n,
		previousLayer: make([]scoring.Score, n),
		previousOrder: make([]int, n),
		currentLayer:  make([]scoring.Score, n),
		currentOrder:  make([]int, n),
		initLayer:     make([]scoring.Score, n),
		initOrder:     make([]int, n),
		parents:       make([]int, n),
		types:         make([]transitionKind, n),
		rank:          make([]int, 3*n),
		offsetsAux:    make([]int, 3*n+1),
		countsAux:     make([]int, 3*n),
		visited:       make([]bool, n),
		queue:         newRingQueue(n),
	}
}

// swap exchanges the previous and current layer/order buffers, the first
// step of every column in the Aligner driver's per-base loop.
func (b *layerBuffers) swap() {
	b.previousLayer, b.currentLayer = b.currentLayer, b.previousLayer
	b.previousOrder, b.currentOrder = b.currentOrder, b.previousOrder
}

// seedFreeStart resets current to the all-zero, every-vertex-is-a-start
// state required at the beginning of every Align call: any vertex may be
// where the alignment begins, not only vertex 0.
func (b *layerBuffers) seedFreeStart() {
	for v := 0; v < b.n; v++ {
		b.currentLayer[v] = 0
		b.currentOrder[v] = v
	}
}

// ringQueue is a slice-backed FIFO used by insertion propagation in place
// of a priority queue or container/list: propagation only ever needs
// append-at-tail, pop-from-head, and a length check, so a flat slice with
// head/tail indices is sufficient. The backing slice grows via append and
// is reset (not reallocated) at the start of every column.
type ringQueue struct {
	items []int
	head  int
}

func newRingQueue(capacityHint int) ringQueue {
	return ringQueue{items: make([]int, 0, capacityHint)}
}

func (q *ringQueue) reset() {
	q.items = q.items[:0]
	q.head = 0
}

func (q *ringQueue) empty() bool {
	return q.head >= len(q.items)
}

func (q *ringQueue) push(v int) {
	q.items = append(q.items, v)
}

func (q *ringQueue) front() int {
	return q.items[q.head]
}

func (q *ringQueue) popFront() int {
	v := q.items[q.head]
	q.head++

	return v
}
