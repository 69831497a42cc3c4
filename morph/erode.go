package morph

import (
	"github.com/morphlab/ndmorph/ndarray"
	"github.com/morphlab/ndmorph/strel"
)

// checkUnary validates the common operator contract: non-nil arrays, output
// shape equal to the input's, structuring element rank equal to the input's.
func checkUnary[T, R ndarray.Element](res *ndarray.Array[R], a, bc *ndarray.Array[T]) error {
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

// Erode computes the grayscale erosion of a under the structuring element bc:
// res[p] = min over bc's member offsets δ of a[p+δ], with nearest extension
// at the boundary. res must have a's shape and must not alias a.
//
// Interior positions (margin ≥ the element's reach) run on precomputed
// flat-index deltas; boundary positions clamp componentwise.
//
// Complexity: O(size(a) · size(Bc)).
func Erode[T ndarray.Integer](res, a, bc *ndarray.Array[T]) error {
	// 1) Validate the operator contract before touching res.
	if err := checkUnary(res, a, bc); err != nil {
		return err
	}

	// 2) Compile the structuring element against a's layout.
	f, err := strel.NewFilter(a, bc)
	if err != nil {
		return err
	}
	n2, reach := f.Len(), f.Reach()

	// 3) Gather the running minimum at every position.
	it := a.Positions()
	for it.Next() {
		p, i := it.Position(), it.Flat()
		v := ndarray.MaxValue[T]()
		if a.Margin(p) >= reach {
			for j := 0; j < n2; j++ {
				if nv := f.AtFast(a, i, j); nv < v {
					v = nv
				}
			}
		} else {
			for j := 0; j < n2; j++ {
				if nv := f.At(a, p, j); nv < v {
					v = nv
				}
			}
		}
		res.SetFlat(i, v)
	}

	return nil
}

// ErodeBinary computes the binary erosion of a under bc: res[p] is true iff
// every member neighbor of p is true. The boolean specialization of Erode's
// min-reduction.
//
// Complexity: O(size(a) · size(Bc)).
func ErodeBinary(res, a, bc *ndarray.Array[bool]) error {
	if err := checkUnary(res, a, bc); err != nil {
		return err
	}
	f, err := strel.NewFilter(a, bc)
	if err != nil {
		return err
	}
	n2, reach := f.Len(), f.Reach()

	it := a.Positions()
	for it.Next() {
		p, i := it.Position(), it.Flat()
		v := true
		if a.Margin(p) >= reach {
			for j := 0; j < n2; j++ {
				if !f.AtFast(a, i, j) {
					v = false
					break
				}
			}
		} else {
			for j := 0; j < n2; j++ {
				if !f.At(a, p, j) {
					v = false
					break
				}
			}
		}
		res.SetFlat(i, v)
	}

	return nil
}
