package extrema

import (
	"github.com/morphlab/ndmorph/ndarray"
	"github.com/morphlab/ndmorph/strel"
)

// RegMin marks every regional minimum of a under bc: connected plateaus
// whose external neighbors are all strictly greater. Computed as LocMin
// followed by false-plateau pruning.
// Complexity: O(size(a) · size(Bc)).
func RegMin[T ndarray.Integer](res *ndarray.Array[bool], a, bc *ndarray.Array[T]) error {
	if err := locMinMax(res, a, bc, true); err != nil {
		return err
	}
	removeFake(res, a, bc, true)

	return nil
}

// RegMax marks every regional maximum of a under bc: connected plateaus
// whose external neighbors are all strictly less.
func RegMax[T ndarray.Integer](res *ndarray.Array[bool], a, bc *ndarray.Array[T]) error {
	if err := locMinMax(res, a, bc, false); err != nil {
		return err
	}
	removeFake(res, a, bc, false)

	return nil
}

// removeFake prunes plateaus that leak to an equal-or-better value outside
// the mask. Both the leak test and the unmarking flood run on the element's
// centre-excluded offsets: "regional" is defined relative to bc's non-centre
// neighborhood.
//
// A marked cell with an unmarked neighbor at value ≤ (≥ for maxima) its own
// cannot belong to a regional extremum; neither can the rest of its plateau,
// which an explicit-stack flood unmarks in one sweep. Every cell is unmarked
// at most once, keeping the pass linear in the mask size.
func removeFake[T ndarray.Integer](regmin *ndarray.Array[bool], a, bc *ndarray.Array[T], isMin bool) {
	offsets := strel.Neighbours(bc, false)
	rank := a.Rank()

	stack := ndarray.NewPositionStack(rank, 64)
	cur := make(ndarray.Position, rank)
	np := make(ndarray.Position, rank)

	it := a.Positions()
	for it.Next() {
		if !regmin.AtFlat(it.Flat()) {
			continue
		}
		pos := it.Position()
		val := a.AtFlat(it.Flat())
		for _, off := range offsets {
			pos.AddInto(np, off)
			if !a.ValidPosition(np) || regmin.At(np) {
				continue
			}
			nv := a.At(np)
			if (isMin && nv <= val) || (!isMin && nv >= val) {
				// The plateau leaks through np: unmark it wholesale.
				regmin.Set(pos, false)
				stack.Push(pos)
				for !stack.Empty() {
					stack.Pop(cur)
					for _, o := range offsets {
						cur.AddInto(np, o)
						if regmin.ValidPosition(np) && regmin.At(np) {
							regmin.Set(np, false)
							stack.Push(np)
						}
					}
				}
				break
			}
		}
	}
}
