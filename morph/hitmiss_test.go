package morph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morphlab/ndmorph/morph"
	"github.com/morphlab/ndmorph/ndarray"
)

// isolatedTemplate is the classic isolated-pixel detector: centre must be 1,
// the four side cells must be 0, corners are don't-care.
func isolatedTemplate(t *testing.T) *ndarray.Array[uint8] {
	t.Helper()

	return mustArr(t, []uint8{
		2, 0, 2,
		0, 1, 0,
		2, 0, 2,
	}, 3, 3)
}

// TestHitMiss_IsolatedPixels: only the interior pixel with no 4-neighbor
// matches; the touching pair and every boundary cell stay 0.
func TestHitMiss_IsolatedPixels(t *testing.T) {
	a := mustArr(t, []uint8{
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 1, 1, 0,
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
	}, 7, 7)
	res := ndarray.NewLike[uint8](a)

	require.NoError(t, morph.HitMiss(res, a, isolatedTemplate(t)))

	want := make([]uint8, 49)
	want[2*7+2] = 1
	assert.Equal(t, want, res.Data())
}

// TestHitMiss_DontCareCorners: diagonal neighbors do not disqualify an
// isolated pixel — the corner cells carry 2.
func TestHitMiss_DontCareCorners(t *testing.T) {
	a := mustArr(t, []uint8{
		0, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}, 5, 5)
	res := ndarray.NewLike[uint8](a)

	require.NoError(t, morph.HitMiss(res, a, isolatedTemplate(t)))
	assert.Equal(t, uint8(1), res.At(ndarray.Position{2, 2}),
		"diagonal contact is don't-care for this template")
	assert.Equal(t, uint8(1), res.At(ndarray.Position{1, 1}))
}

// TestHitMiss_BoundaryForcedZero: cells whose template would overhang any
// face are 0 even when the visible cells match.
func TestHitMiss_BoundaryForcedZero(t *testing.T) {
	a := mustArr(t, []uint8{
		1, 0, 0,
		0, 0, 0,
		0, 0, 1,
	}, 3, 3)
	res := ndarray.NewLike[uint8](a)

	require.NoError(t, morph.HitMiss(res, a, isolatedTemplate(t)))
	assert.Equal(t, uint8(0), res.At(ndarray.Position{0, 0}))
	assert.Equal(t, uint8(0), res.At(ndarray.Position{2, 2}))
}

// TestHitMiss_Deterministic: two runs on the same input are bit-identical.
func TestHitMiss_Deterministic(t *testing.T) {
	a := mustArr(t, []uint8{
		0, 1, 0, 1, 0,
		1, 0, 1, 0, 1,
		0, 1, 0, 1, 0,
		1, 0, 1, 0, 1,
		0, 1, 0, 1, 0,
	}, 5, 5)

	r1 := ndarray.NewLike[uint8](a)
	r2 := ndarray.NewLike[uint8](a)
	require.NoError(t, morph.HitMiss(r1, a, isolatedTemplate(t)))
	require.NoError(t, morph.HitMiss(r2, a, isolatedTemplate(t)))
	assert.True(t, r1.Equal(r2))
}

// TestHitMiss_1D: the slack scan also covers rank 1.
func TestHitMiss_1D(t *testing.T) {
	a := mustArr(t, []uint8{0, 1, 0, 1, 1, 0, 1, 0}, 8)
	// 0-1-0 pattern: isolated pulse.
	bc := mustArr(t, []uint8{0, 1, 0}, 3)
	res := ndarray.NewLike[uint8](a)

	require.NoError(t, morph.HitMiss(res, a, bc))
	assert.Equal(t, []uint8{0, 1, 0, 0, 0, 0, 1, 0}, res.Data())
}

func TestHitMiss_Validation(t *testing.T) {
	a := mustArr(t, []uint8{0, 0, 0, 0}, 2, 2)
	bc := mustArr(t, []uint8{1}, 1)

	err := morph.HitMiss(ndarray.NewLike[uint8](a), a, bc)
	assert.ErrorIs(t, err, morph.ErrRankMismatch)
}
