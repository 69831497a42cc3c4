package ndarray

import (
	"fmt"
)

// Array is a dense, contiguous, row-major n-dimensional array of T.
// shape holds the extent of every axis, strides the flat-index step per axis
// (strides[rank−1] == 1), and data the size == ∏shape backing elements.
type Array[T Element] struct {
	shape   []int
	strides []int
	data    []T
}

// New creates an array of the given shape with all cells at the zero value.
// Returns ErrEmptyShape if rank is 0 or any extent is < 1.
// Complexity: O(size) time and memory.
func New[T Element](shape ...int) (*Array[T], error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	sh := make([]int, len(shape))
	copy(sh, shape)

	return &Array[T]{
		shape:   sh,
		strides: rowMajorStrides(sh),
		data:    make([]T, product(sh)),
	}, nil
}

// FromFlat wraps an existing row-major buffer as an array of the given shape.
// The buffer is used directly (no copy); its length must equal the shape
// product. Returns ErrEmptyShape or ErrDataLength on mismatch.
func FromFlat[T Element](data []T, shape ...int) (*Array[T], error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	if len(data) != product(shape) {
		return nil, fmt.Errorf("%w: have %d, shape wants %d", ErrDataLength, len(data), product(shape))
	}
	sh := make([]int, len(shape))
	copy(sh, shape)

	return &Array[T]{shape: sh, strides: rowMajorStrides(sh), data: data}, nil
}

// NewLike creates a zero-filled array with the same shape as a.
func NewLike[T, U Element](a *Array[U]) *Array[T] {
	return &Array[T]{
		shape:   append([]int(nil), a.shape...),
		strides: append([]int(nil), a.strides...),
		data:    make([]T, len(a.data)),
	}
}

// checkShape validates rank ≥ 1 and every extent ≥ 1.
func checkShape(shape []int) error {
	if len(shape) == 0 {
		return ErrEmptyShape
	}
	for _, n := range shape {
		if n < 1 {
			return fmt.Errorf("%w: extent %d", ErrEmptyShape, n)
		}
	}

	return nil
}

// rowMajorStrides computes strides for a contiguous row-major layout.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= shape[d]
	}

	return strides
}

func product(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}

	return n
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int { return len(a.shape) }

// Size returns the total cell count ∏shape.
func (a *Array[T]) Size() int { return len(a.data) }

// Dim returns the extent of axis d.
func (a *Array[T]) Dim(d int) int { return a.shape[d] }

// Shape returns the shape slice. Callers must not mutate it.
func (a *Array[T]) Shape() []int { return a.shape }

// Stride returns the flat-index step of axis d.
func (a *Array[T]) Stride(d int) int { return a.strides[d] }

// Data returns the raw row-major backing slice. Contiguous fast paths
// (majority filter row walks, the dilation scatter) read and write through
// it directly.
func (a *Array[T]) Data() []T { return a.data }

// ValidPosition reports whether p indexes a cell: rank matches and
// 0 ≤ p[d] < shape[d] on every axis.
func (a *Array[T]) ValidPosition(p Position) bool {
	if len(p) != len(a.shape) {
		return false
	}
	for d, c := range p {
		if c < 0 || c >= a.shape[d] {
			return false
		}
	}

	return true
}

// PosToFlat maps an n-tuple position to its row-major flat index. The mapping
// is the stride dot product and is only meaningful for valid positions;
// FlatOffset serves signed neighbor deltas.
func (a *Array[T]) PosToFlat(p Position) int {
	i := 0
	for d, c := range p {
		i += c * a.strides[d]
	}

	return i
}

// FlatOffset returns the signed flat-index displacement of a relative offset:
// Σ_d delta[d]·strides[d]. Adding it to a cell's flat index lands on the cell
// displaced by delta, provided that cell is in bounds.
func (a *Array[T]) FlatOffset(delta Position) int {
	return a.PosToFlat(delta)
}

// FlatToPos maps a flat index back to its n-tuple position, the inverse of
// PosToFlat over valid indices.
// Complexity: O(rank).
func (a *Array[T]) FlatToPos(i int) Position {
	p := make(Position, len(a.shape))
	a.FlatToPosInto(p, i)

	return p
}

// FlatToPosInto writes the position of flat index i into dst and returns dst.
func (a *Array[T]) FlatToPosInto(dst Position, i int) Position {
	for d, s := range a.strides {
		dst[d] = i / s
		i %= s
	}

	return dst
}

// At returns the value at position p. The caller guarantees validity; the
// position is not checked per axis, so an out-of-range position panics via
// the runtime bounds check only when its flat index falls outside the buffer
// and otherwise reads another cell.
func (a *Array[T]) At(p Position) T {
	return a.data[a.PosToFlat(p)]
}

// Set writes v at position p.
func (a *Array[T]) Set(p Position, v T) {
	a.data[a.PosToFlat(p)] = v
}

// AtFlat returns the value at flat index i.
func (a *Array[T]) AtFlat(i int) T { return a.data[i] }

// SetFlat writes v at flat index i.
func (a *Array[T]) SetFlat(i int, v T) { a.data[i] = v }

// Fill sets every cell to v.
// Complexity: O(size).
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns a deep copy of a.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{
		shape:   append([]int(nil), a.shape...),
		strides: append([]int(nil), a.strides...),
		data:    make([]T, len(a.data)),
	}
	copy(c.data, a.data)

	return c
}

// Equal reports whether b has the same shape and cell-for-cell contents.
func (a *Array[T]) Equal(b *Array[T]) bool {
	if !SameShape(a, b) {
		return false
	}
	for i, v := range a.data {
		if b.data[i] != v {
			return false
		}
	}

	return true
}

// SameShape reports whether two arrays (of possibly different element types)
// have identical rank and extents.
func SameShape[T, U Element](a *Array[T], b *Array[U]) bool {
	if a.Rank() != b.Rank() {
		return false
	}
	for d, n := range a.shape {
		if b.shape[d] != n {
			return false
		}
	}

	return true
}

// Margin returns the margin of p within a's shape; see the package-level
// Margin function.
func (a *Array[T]) Margin(p Position) int {
	return Margin(p, a.shape)
}
