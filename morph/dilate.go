package morph

import (
	"github.com/morphlab/ndmorph/ndarray"
	"github.com/morphlab/ndmorph/strel"
)

// Dilate computes the grayscale dilation of a under the structuring element
// bc in scatter form, the natural dual of Erode's gather: res is initialized
// to the type minimum, then every cell pushes its value into its member
// neighborhood under max. Scatter targets outside the array are skipped,
// which under the replicate boundary policy is equivalent to clamping (the
// clamped write duplicates an in-bounds contribution).
//
// res must have a's shape and must not alias a.
// Complexity: O(size(a) · size(Bc)).
func Dilate[T ndarray.Integer](res, a, bc *ndarray.Array[T]) error {
	// 1) Validate the operator contract before touching res.
	if err := checkUnary(res, a, bc); err != nil {
		return err
	}

	// 2) Compile the structuring element and reset the accumulator.
	f, err := strel.NewFilter(a, bc)
	if err != nil {
		return err
	}
	n2, reach := f.Len(), f.Reach()
	offsets := f.Offsets()
	res.Fill(ndarray.MinValue[T]())

	// 3) Scatter each cell's value under max.
	out := res.Data()
	np := make(ndarray.Position, a.Rank())
	it := a.Positions()
	for it.Next() {
		p, i := it.Position(), it.Flat()
		v := a.AtFlat(i)
		if a.Margin(p) >= reach {
			for j := 0; j < n2; j++ {
				if q := i + f.Delta(j); v > out[q] {
					out[q] = v
				}
			}
		} else {
			for j := 0; j < n2; j++ {
				p.AddInto(np, offsets[j])
				if !a.ValidPosition(np) {
					continue
				}
				if q := i + f.Delta(j); v > out[q] {
					out[q] = v
				}
			}
		}
	}

	return nil
}

// DilateBinary computes the binary dilation of a under bc: res[p] is true iff
// any member neighbor of p is true. The boolean specialization of Dilate's
// max-scatter.
//
// Complexity: O(size(a) · size(Bc)).
func DilateBinary(res, a, bc *ndarray.Array[bool]) error {
	if err := checkUnary(res, a, bc); err != nil {
		return err
	}
	f, err := strel.NewFilter(a, bc)
	if err != nil {
		return err
	}
	n2, reach := f.Len(), f.Reach()
	offsets := f.Offsets()
	res.Fill(false)

	out := res.Data()
	np := make(ndarray.Position, a.Rank())
	it := a.Positions()
	for it.Next() {
		p, i := it.Position(), it.Flat()
		if !a.AtFlat(i) {
			continue
		}
		if a.Margin(p) >= reach {
			for j := 0; j < n2; j++ {
				out[i+f.Delta(j)] = true
			}
		} else {
			for j := 0; j < n2; j++ {
				p.AddInto(np, offsets[j])
				if a.ValidPosition(np) {
					out[i+f.Delta(j)] = true
				}
			}
		}
	}

	return nil
}
