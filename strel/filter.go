package strel

import (
	"github.com/morphlab/ndmorph/ndarray"
)

// Filter is the stateless cursor gather-style operators iterate a structuring
// element with. It precomputes, for every member cell of the element, the
// offset from the centre and the flat-index delta in the base array's
// strides, plus the element's reach — the largest Chebyshev magnitude among
// the offsets.
//
// At a centre position p with Margin(p) ≥ Reach(), every member cell is
// provably in bounds and AtFast applies raw flat arithmetic. Closer to the
// boundary, At clamps each neighbor coordinate componentwise into the array
// (nearest extension).
type Filter[T ndarray.Element] struct {
	offsets []ndarray.Position
	deltas  []int
	reach   int
	shape   []int
}

// NewFilter builds a Filter of bc's nonzero cells (centre included, when
// nonzero) against base's shape and strides.
// Returns ErrNilArray or ErrRankMismatch on malformed inputs.
// Complexity: O(size(Bc) · rank).
func NewFilter[T ndarray.Element](base, bc *ndarray.Array[T]) (*Filter[T], error) {
	if base == nil || bc == nil {
		return nil, ErrNilArray
	}
	if base.Rank() != bc.Rank() {
		return nil, ErrRankMismatch
	}

	offsets := Neighbours(bc, true)
	f := &Filter[T]{
		offsets: offsets,
		deltas:  make([]int, len(offsets)),
		shape:   base.Shape(),
	}
	for j, off := range offsets {
		f.deltas[j] = base.FlatOffset(off)
		if m := off.Chebyshev(); m > f.reach {
			f.reach = m
		}
	}

	return f, nil
}

// Len returns the number of member cells.
func (f *Filter[T]) Len() int { return len(f.offsets) }

// Reach returns the maximum Chebyshev magnitude among the member offsets:
// the margin a centre position needs for unchecked access.
func (f *Filter[T]) Reach() int { return f.reach }

// Offsets returns the member offsets in row-major order. Callers must not
// mutate the slice.
func (f *Filter[T]) Offsets() []ndarray.Position { return f.offsets }

// Delta returns the flat-index displacement of member j.
func (f *Filter[T]) Delta(j int) int { return f.deltas[j] }

// AtFast fetches member j's value relative to the centre cell at flat index
// i. Only valid when the centre's margin is at least Reach().
func (f *Filter[T]) AtFast(a *ndarray.Array[T], i, j int) T {
	return a.AtFlat(i + f.deltas[j])
}

// At fetches member j's value relative to centre position p, clamping each
// coordinate of the neighbor into [0, shape[d]) — the nearest-extension
// boundary policy.
// Complexity: O(rank).
func (f *Filter[T]) At(a *ndarray.Array[T], p ndarray.Position, j int) T {
	off := f.offsets[j]
	i := 0
	for d, c := range p {
		c += off[d]
		if c < 0 {
			c = 0
		} else if c >= f.shape[d] {
			c = f.shape[d] - 1
		}
		i += c * a.Stride(d)
	}

	return a.AtFlat(i)
}
