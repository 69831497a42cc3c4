// Package strel_test validates offset enumeration, the standard connectivity
// elements, and the filter cursor's boundary clamping.
package strel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morphlab/ndmorph/ndarray"
	"github.com/morphlab/ndmorph/strel"
)

// containsOffset reports whether offs holds an offset equal to want.
func containsOffset(offs []ndarray.Position, want ndarray.Position) bool {
	for _, o := range offs {
		if o.Equal(want) {
			return true
		}
	}

	return false
}

// ------------------------------------------------------------------------
// Neighbours and Centre
// ------------------------------------------------------------------------

func TestCentre(t *testing.T) {
	bc, err := ndarray.New[uint8](3, 5)
	require.NoError(t, err)
	assert.True(t, strel.Centre(bc).Equal(ndarray.Position{1, 2}))
}

func TestNeighbours_CrossExcludingCentre(t *testing.T) {
	bc, err := strel.Cross[uint8](2)
	require.NoError(t, err)

	offs := strel.Neighbours(bc, false)
	require.Len(t, offs, 4)
	for _, want := range []ndarray.Position{{-1, 0}, {0, -1}, {0, 1}, {1, 0}} {
		assert.True(t, containsOffset(offs, want), "missing offset %v", want)
	}
}

func TestNeighbours_IncludeCentre(t *testing.T) {
	bc, err := strel.Cross[uint8](2)
	require.NoError(t, err)

	offs := strel.Neighbours(bc, true)
	require.Len(t, offs, 5)
	assert.True(t, containsOffset(offs, ndarray.Position{0, 0}))
}

// TestNeighbours_RowMajorOrder pins the enumeration order the flood fills and
// the watershed rely on for determinism.
func TestNeighbours_RowMajorOrder(t *testing.T) {
	bc, err := strel.Cross[uint8](1)
	require.NoError(t, err)

	offs := strel.Neighbours(bc, false)
	require.Len(t, offs, 2)
	assert.True(t, offs[0].Equal(ndarray.Position{-1}))
	assert.True(t, offs[1].Equal(ndarray.Position{1}))
}

func TestNeighbours_ZeroCellsExcluded(t *testing.T) {
	bc, err := ndarray.FromFlat([]uint8{0, 1, 0, 1, 1, 1, 0, 1, 0}, 3, 3)
	require.NoError(t, err)

	offs := strel.Neighbours(bc, false)
	assert.Len(t, offs, 4, "corner zeros must not be members")
	assert.False(t, containsOffset(offs, ndarray.Position{-1, -1}))
}

// ------------------------------------------------------------------------
// Standard elements
// ------------------------------------------------------------------------

func TestBox_3D(t *testing.T) {
	bc, err := strel.Box[bool](3)
	require.NoError(t, err)
	assert.Equal(t, 27, bc.Size())
	assert.Len(t, strel.Neighbours(bc, false), 26)
}

func TestCross_3D(t *testing.T) {
	bc, err := strel.Cross[bool](3)
	require.NoError(t, err)
	// City-block unit ball in 3-D: centre + 6 face neighbours.
	assert.Len(t, strel.Neighbours(bc, true), 7)
}

func TestCross_BadRank(t *testing.T) {
	_, err := strel.Cross[uint8](0)
	assert.ErrorIs(t, err, strel.ErrBadRank)
}

// ------------------------------------------------------------------------
// Filter cursor
// ------------------------------------------------------------------------

func TestNewFilter_Validation(t *testing.T) {
	a, err := ndarray.New[uint8](4, 4)
	require.NoError(t, err)
	bc1, err := strel.Cross[uint8](1)
	require.NoError(t, err)

	_, err = strel.NewFilter[uint8](nil, bc1)
	assert.ErrorIs(t, err, strel.ErrNilArray)

	_, err = strel.NewFilter(a, bc1)
	assert.ErrorIs(t, err, strel.ErrRankMismatch)
}

func TestFilter_ReachAndLen(t *testing.T) {
	a, err := ndarray.New[uint8](4, 4)
	require.NoError(t, err)
	bc, err := strel.Box[uint8](2)
	require.NoError(t, err)

	f, err := strel.NewFilter(a, bc)
	require.NoError(t, err)
	assert.Equal(t, 9, f.Len())
	assert.Equal(t, 1, f.Reach())
}

// TestFilter_NearestClamp checks that boundary retrieval replicates the
// nearest in-bounds cell componentwise.
func TestFilter_NearestClamp(t *testing.T) {
	a, err := ndarray.FromFlat([]uint8{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 3, 3)
	require.NoError(t, err)
	bc, err := strel.Box[uint8](2)
	require.NoError(t, err)
	f, err := strel.NewFilter(a, bc)
	require.NoError(t, err)

	// At the top-left corner, the (-1,-1) member clamps to the corner itself.
	corner := ndarray.Position{0, 0}
	for j := 0; j < f.Len(); j++ {
		if f.Offsets()[j].Equal(ndarray.Position{-1, -1}) {
			assert.Equal(t, uint8(1), f.At(a, corner, j))
		}
		if f.Offsets()[j].Equal(ndarray.Position{1, 1}) {
			assert.Equal(t, uint8(5), f.At(a, corner, j))
		}
	}
}

// TestFilter_FastSlowAgree verifies that on interior positions the unchecked
// flat path and the clamping path fetch the same values.
func TestFilter_FastSlowAgree(t *testing.T) {
	data := make([]uint8, 25)
	for i := range data {
		data[i] = uint8(i * 7 % 256)
	}
	a, err := ndarray.FromFlat(data, 5, 5)
	require.NoError(t, err)
	bc, err := strel.Box[uint8](2)
	require.NoError(t, err)
	f, err := strel.NewFilter(a, bc)
	require.NoError(t, err)

	it := a.Positions()
	for it.Next() {
		p, i := it.Position(), it.Flat()
		if a.Margin(p) < f.Reach() {
			continue
		}
		for j := 0; j < f.Len(); j++ {
			require.Equal(t, f.At(a, p, j), f.AtFast(a, i, j))
		}
	}
}
