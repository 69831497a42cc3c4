package extrema

import (
	"github.com/morphlab/ndmorph/ndarray"
	"github.com/morphlab/ndmorph/strel"
)

// checkArgs validates the shared extrema contract.
func checkArgs[T ndarray.Integer](res *ndarray.Array[bool], a, bc *ndarray.Array[T]) error {
	if res == nil || a == nil || bc == nil {
		return ErrNilArray
	}
	if !ndarray.SameShape(res, a) {
		return ErrShapeMismatch
	}
	if bc.Rank() != a.Rank() {
		return ErrRankMismatch
	}

	return nil
}

// LocMin marks every local minimum of a under bc: cells whose value is ≤
// every neighbor value. res is a boolean mask of a's shape.
// Complexity: O(size(a) · size(Bc)).
func LocMin[T ndarray.Integer](res *ndarray.Array[bool], a, bc *ndarray.Array[T]) error {
	return locMinMax(res, a, bc, true)
}

// LocMax marks every local maximum of a under bc: cells whose value is ≥
// every neighbor value.
func LocMax[T ndarray.Integer](res *ndarray.Array[bool], a, bc *ndarray.Array[T]) error {
	return locMinMax(res, a, bc, false)
}

// locMinMax is the shared scan. A cell fails the test as soon as one
// neighbor is strictly better; otherwise it is marked.
func locMinMax[T ndarray.Integer](res *ndarray.Array[bool], a, bc *ndarray.Array[T], isMin bool) error {
	// 1) Validate before touching res.
	if err := checkArgs(res, a, bc); err != nil {
		return err
	}

	// 2) Compile the neighborhood.
	f, err := strel.NewFilter(a, bc)
	if err != nil {
		return err
	}
	n2, reach := f.Len(), f.Reach()

	// 3) Scan. The centre cell compares against itself harmlessly, so it
	//    needs no special casing; boundary clamps are likewise neutral.
	res.Fill(false)
	it := a.Positions()
	for it.Next() {
		p, i := it.Position(), it.Flat()
		cur := a.AtFlat(i)
		ok := true
		if a.Margin(p) >= reach {
			for j := 0; j < n2; j++ {
				nv := f.AtFast(a, i, j)
				if (isMin && nv < cur) || (!isMin && nv > cur) {
					ok = false
					break
				}
			}
		} else {
			for j := 0; j < n2; j++ {
				nv := f.At(a, p, j)
				if (isMin && nv < cur) || (!isMin && nv > cur) {
					ok = false
					break
				}
			}
		}
		if ok {
			res.SetFlat(i, true)
		}
	}

	return nil
}
