package watershed

import (
	"github.com/morphlab/ndmorph/ndarray"
)

// markerInfo is one frontier entry: the flood cost of the cell, the
// monotonically increasing insertion sequence, the cell's flat index, and
// its cached boundary margin.
type markerInfo[T any] struct {
	cost   T
	seq    int
	flat   int
	margin int
}

// markerQueue is a min-heap of markerInfo ordered by cost, ties broken by
// insertion sequence (earlier first). It implements heap.Interface; the
// lazy-deletion discipline (stale entries skipped on pop via the status
// bitmap) keeps Push the only mutation the flood needs.
type markerQueue[T ndarray.Integer] []markerInfo[T]

func (q markerQueue[T]) Len() int { return len(q) }

// Less orders by cost, then by insertion sequence. The sequence tie-break is
// load-bearing: a heap keyed on cost alone assigns plateau cells to an
// arbitrary basin, and the flood's output would no longer be deterministic.
func (q markerQueue[T]) Less(i, j int) bool {
	if q[i].cost == q[j].cost {
		return q[i].seq < q[j].seq
	}

	return q[i].cost < q[j].cost
}

func (q markerQueue[T]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x; only container/heap calls this.
func (q *markerQueue[T]) Push(x any) {
	*q = append(*q, x.(markerInfo[T]))
}

// Pop removes and returns the last element; only container/heap calls this.
func (q *markerQueue[T]) Pop() any {
	old := *q
	n := len(old) - 1
	item := old[n]
	*q = old[:n]

	return item
}
