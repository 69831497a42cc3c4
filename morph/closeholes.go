package morph

import (
	"github.com/morphlab/ndmorph/ndarray"
	"github.com/morphlab/ndmorph/strel"
)

// CloseHoles fills the holes of the binary image ref: the result is ref union
// every background component that does not reach the array boundary,
// connectivity given by bc's member offsets (centre excluded).
//
// The fill works from the outside in. Every background cell on a boundary
// face seeds an explicit-stack flood over the background; cells the flood
// never reaches are enclosed, and complementing the reachability mask yields
// the closed image.
//
// Returns a freshly allocated array of ref's shape.
// Complexity: O(size(ref) · size(Bc)) time, O(size(ref)) memory.
func CloseHoles(ref, bc *ndarray.Array[bool]) (*ndarray.Array[bool], error) {
	// 1) Validate inputs.
	if ref == nil || bc == nil {
		return nil, ErrNilArray
	}
	if bc.Rank() != ref.Rank() {
		return nil, ErrRankMismatch
	}

	rank := ref.Rank()
	offsets := strel.Neighbours(bc, false)

	// 2) Reachability scratch, false everywhere; doubles as the result after
	//    in-place complement.
	f := ndarray.NewLike[bool](ref)

	// 3) Seed the flood with every background cell on a boundary face
	//    (margin 0 ⇔ some coordinate touches a face).
	stack := ndarray.NewPositionStack(rank, ref.Size()/4+1)
	it := ref.Positions()
	for it.Next() {
		p, i := it.Position(), it.Flat()
		if ref.Margin(p) != 0 {
			continue
		}
		if !ref.AtFlat(i) && !f.AtFlat(i) {
			f.SetFlat(i, true)
			stack.Push(p)
		}
	}

	// 4) Depth-first flood over the background.
	cur := make(ndarray.Position, rank)
	np := make(ndarray.Position, rank)
	for !stack.Empty() {
		stack.Pop(cur)
		for _, off := range offsets {
			cur.AddInto(np, off)
			if ref.ValidPosition(np) && !ref.At(np) && !f.At(np) {
				f.Set(np, true)
				stack.Push(np)
			}
		}
	}

	// 5) Complement in place: unreached background and all foreground.
	data := f.Data()
	for i := range data {
		data[i] = !data[i]
	}

	return f, nil
}
