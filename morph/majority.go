package morph

import (
	"github.com/morphlab/ndmorph/ndarray"
)

// MajorityFilter votes over every n×n window of the 2-D boolean image a,
// writing true at the window's centre in res when the window holds at least
// ⌊n²/2⌋ true pixels. Cells no window centres on stay false, and images
// smaller than the window come back all false.
//
// n must be positive and odd. res must have a's shape and must not alias a.
// Both arrays are walked through their raw row-major buffers.
//
// Complexity: O(rows · cols · n²).
func MajorityFilter(res, a *ndarray.Array[bool], n int) error {
	// 1) Validate: 2-D arrays, matching shape, sane window.
	if res == nil || a == nil {
		return ErrNilArray
	}
	if a.Rank() != 2 || res.Rank() != 2 {
		return ErrNotTwoDim
	}
	if !ndarray.SameShape(res, a) {
		return ErrShapeMismatch
	}
	if n < 1 || n%2 == 0 {
		return ErrBadWindow
	}

	res.Fill(false)
	rows, cols := a.Dim(0), a.Dim(1)
	if rows < n || cols < n {
		return nil
	}

	// 2) Count each window, writing its centre on a majority.
	in, out := a.Data(), res.Data()
	thresh := n * n / 2
	for y := 0; y <= rows-n; y++ {
		o := (y+n/2)*cols + n/2
		for x := 0; x <= cols-n; x++ {
			count := 0
			for dy := 0; dy < n; dy++ {
				row := (y+dy)*cols + x
				for dx := 0; dx < n; dx++ {
					if in[row+dx] {
						count++
					}
				}
			}
			if count >= thresh {
				out[o] = true
			}
			o++
		}
	}

	return nil
}
