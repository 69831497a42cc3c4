package morph

import (
	"math/rand"

	"github.com/morphlab/ndmorph/ndarray"
	"github.com/morphlab/ndmorph/strel"
)

// hitmissSeed fixes the template shuffle, keeping HitMiss bit-deterministic.
// The shuffle only reorders the early-exit probes; results are identical for
// any order.
const hitmissSeed = 42

// hmNeighbour is one non-don't-care template cell: its flat-index delta in
// the input's strides and the pixel value it requires.
type hmNeighbour[T ndarray.Integer] struct {
	delta int
	value T
}

// HitMiss matches the template bc at every position of a. Template cells
// carry 0 (pixel must be 0), 1 (pixel must be 1), or 2 (don't care);
// res[p] = 1 iff every non-don't-care cell matches, and 0 otherwise.
// Positions too close to a boundary for the template to fit are 0.
//
// The scan keeps a slack counter along the last axis: once a position is
// deep enough inside a, the next shape[last]−Bc.shape[last]+1 cells are
// provably in bounds and skip the per-axis margin checks; when slack runs
// out the margins are recomputed, zero-filling any run of boundary cells.
//
// Complexity: O(size(a) · size(Bc)) worst case; structured inputs exit early.
func HitMiss[T ndarray.Integer](res, a, bc *ndarray.Array[T]) error {
	// 1) Validate the operator contract.
	if err := checkUnary(res, a, bc); err != nil {
		return err
	}

	rank := a.Rank()
	n := a.Size()

	// 2) Collect the non-don't-care template cells as flat deltas.
	centre := strel.Centre(bc)
	neigh := make([]hmNeighbour[T], 0, bc.Size())
	itb := bc.Positions()
	for itb.Next() {
		v := bc.AtFlat(itb.Flat())
		if v == 2 {
			continue
		}
		off := itb.Position().Sub(centre)
		neigh = append(neigh, hmNeighbour[T]{delta: a.FlatOffset(off), value: v})
	}

	// 3) Shuffle the probes. On structured inputs a mismatch then tends to
	//    surface before the whole template is walked.
	rng := rand.New(rand.NewSource(hitmissSeed))
	rng.Shuffle(len(neigh), func(i, j int) { neigh[i], neigh[j] = neigh[j], neigh[i] })

	// 4) Scan with the slack counter.
	pos := make(ndarray.Position, rank)
	slack := 0
	for i := 0; i < n; i++ {
		for slack == 0 {
			a.FlatToPosInto(pos, i)
			moved := false
			for d := 0; d < rank; d++ {
				margin := pos[d]
				if r := a.Dim(d) - pos[d] - 1; r < margin {
					margin = r
				}
				if margin < bc.Dim(d)/2 {
					// Too close to a face on axis d: the whole run of cells
					// below this axis is out of template range.
					size := 1
					for dd := d + 1; dd < rank; dd++ {
						size *= a.Dim(dd)
					}
					for j := 0; j < size; j++ {
						res.SetFlat(i, 0)
						i++
						if i == n {
							return nil
						}
					}
					moved = true
					break
				}
			}
			if !moved {
				slack = a.Dim(rank-1) - bc.Dim(rank-1) + 1
			}
		}
		slack--

		value := T(1)
		for _, nb := range neigh {
			if a.AtFlat(i+nb.delta) != nb.value {
				value = 0
				break
			}
		}
		res.SetFlat(i, value)
	}

	return nil
}
