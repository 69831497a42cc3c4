package watershed

import (
	"container/heap"

	"github.com/morphlab/ndmorph/ndarray"
	"github.com/morphlab/ndmorph/strel"
)

// neighbourElem is one precompiled structuring-element neighbor: the
// flat-index displacement, its Chebyshev magnitude (the margin a frontier
// cell must spend to reach it), and the n-tuple offset for the boundary
// slow path.
type neighbourElem struct {
	delta     int
	chebyshev int
	offset    ndarray.Position
}

// Watershed floods the cost array a from the nonzero cells of markers,
// assigning every reached cell the label of the basin that claims it first.
// Connectivity is given by bc's nonzero cells (centre excluded). The label
// array has a's shape and element type; unreached cells keep the zero label.
//
// With WithLines, the second return value is a boolean array marking
// watershed ridges: cells first re-reached at no better cost from a basin
// with a different label. Without it the second return value is nil.
//
// The flood pops the cheapest frontier entry (FIFO within equal cost),
// finalizes it, and offers its cost to each neighbor: a strict improvement
// claims the neighbor and extends the frontier; anything else can only
// contribute a ridge. Determinism follows from the sequence tie-break and
// the row-major marker enumeration.
//
// Complexity: O(size · size(Bc) · log size) time, O(size) memory.
func Watershed[T ndarray.Integer](a, markers, bc *ndarray.Array[T], opts ...Option) (*ndarray.Array[T], *ndarray.Array[bool], error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the input contract before allocating anything.
	if a == nil || markers == nil || bc == nil {
		return nil, nil, ErrNilArray
	}
	if !ndarray.SameShape(a, markers) {
		return nil, nil, ErrShapeMismatch
	}
	if bc.Rank() != a.Rank() {
		return nil, nil, ErrRankMismatch
	}

	// 3) Compile the neighbor table from bc's centre-excluded offsets.
	offsets := strel.Neighbours(bc, false)
	neighbours := make([]neighbourElem, 0, len(offsets))
	for _, off := range offsets {
		neighbours = append(neighbours, neighbourElem{
			delta:     a.FlatOffset(off),
			chebyshev: off.Chebyshev(),
			offset:    off,
		})
	}

	// 4) Allocate the flood state: labels, best-cost table, finalization
	//    bitmap, ridge map (on request), and the priority queue.
	res := ndarray.NewLike[T](a)
	var lines *ndarray.Array[bool]
	if cfg.Lines {
		lines = ndarray.NewLike[bool](a)
	}

	n := a.Size()
	cost := make([]T, n)
	maxCost := ndarray.MaxValue[T]()
	for i := range cost {
		cost[i] = maxCost
	}
	status := make([]bool, n)

	pq := make(markerQueue[T], 0, n/4+1)
	heap.Init(&pq)

	// 5) Seed the queue with every marker cell in row-major order; the
	//    sequence numbers fix plateau ownership.
	seq := 0
	it := markers.Positions()
	for it.Next() {
		p, i := it.Position(), it.Flat()
		label := markers.AtFlat(i)
		if ndarray.IsZero(label) {
			continue
		}
		heap.Push(&pq, markerInfo[T]{
			cost:   a.AtFlat(i),
			seq:    seq,
			flat:   i,
			margin: a.Margin(p),
		})
		seq++
		res.SetFlat(i, label)
		cost[i] = a.AtFlat(i)
	}

	// 6) Flood.
	pos := make(ndarray.Position, a.Rank())
	np := make(ndarray.Position, a.Rank())
	for pq.Len() > 0 {
		next := heap.Pop(&pq).(markerInfo[T])
		if status[next.flat] {
			continue // stale duplicate, already finalized
		}
		status[next.flat] = true

		for _, nb := range neighbours {
			nflat := next.flat + nb.delta
			nmargin := next.margin - nb.chebyshev
			if nmargin < 0 {
				// The margin fast path failed: materialize the neighbor.
				// Flat arithmetic can wrap past a face onto a valid but
				// wrong cell, so the n-tuple check is authoritative.
				a.FlatToPosInto(pos, next.flat)
				pos.AddInto(np, nb.offset)
				if !a.ValidPosition(np) {
					continue
				}
				// In bounds after all; the cached margin was just stale.
				nmargin = a.Margin(np)
			}
			if status[nflat] {
				continue
			}
			ncost := a.AtFlat(nflat)
			if ncost < cost[nflat] {
				cost[nflat] = ncost
				res.SetFlat(nflat, res.AtFlat(next.flat))
				heap.Push(&pq, markerInfo[T]{cost: ncost, seq: seq, flat: nflat, margin: nmargin})
				seq++
			} else if lines != nil && res.AtFlat(next.flat) != res.AtFlat(nflat) && !lines.AtFlat(nflat) {
				lines.SetFlat(nflat, true)
			}
		}
	}

	return res, lines, nil
}
