package strel

import (
	"github.com/morphlab/ndmorph/ndarray"
)

// Centre returns the origin cell ⌊shape/2⌋ of a structuring element.
func Centre[T ndarray.Element](bc *ndarray.Array[T]) ndarray.Position {
	c := make(ndarray.Position, bc.Rank())
	for d := 0; d < bc.Rank(); d++ {
		c[d] = bc.Dim(d) / 2
	}

	return c
}

// Neighbours returns the offsets of bc's nonzero cells relative to its
// centre, in row-major order. The centre itself is included only when
// includeCentre is set and its cell is nonzero.
// Complexity: O(size(Bc) · rank).
func Neighbours[T ndarray.Element](bc *ndarray.Array[T], includeCentre bool) []ndarray.Position {
	centre := Centre(bc)
	res := make([]ndarray.Position, 0, bc.Size())

	it := bc.Positions()
	for it.Next() {
		if ndarray.IsZero(bc.AtFlat(it.Flat())) {
			continue
		}
		off := it.Position().Sub(centre)
		if off.Chebyshev() == 0 && !includeCentre {
			continue
		}
		res = append(res, off)
	}

	return res
}

// one returns the multiplicative identity of T: true for bool, 1 otherwise.
func one[T ndarray.Element]() T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = true
	case *int8:
		*p = 1
	case *int16:
		*p = 1
	case *int32:
		*p = 1
	case *int64:
		*p = 1
	case *uint8:
		*p = 1
	case *uint16:
		*p = 1
	case *uint32:
		*p = 1
	case *uint64:
		*p = 1
	}

	return v
}

// Cross returns the 3^rank city-block unit ball: cells whose offset from the
// centre has L1 magnitude ≤ 1. In 2-D this is the 4-connectivity cross.
// Panics are impossible: rank is validated and the shape is fixed.
func Cross[T ndarray.Element](rank int) (*ndarray.Array[T], error) {
	if rank < 1 {
		return nil, ErrBadRank
	}
	shape := make([]int, rank)
	for d := range shape {
		shape[d] = 3
	}
	bc, err := ndarray.New[T](shape...)
	if err != nil {
		return nil, err
	}

	member := one[T]()
	it := bc.Positions()
	for it.Next() {
		l1 := 0
		for _, c := range it.Position() {
			if c != 1 {
				l1++
			}
		}
		if l1 <= 1 {
			bc.SetFlat(it.Flat(), member)
		}
	}

	return bc, nil
}

// Box returns the 3^rank Chebyshev unit ball: every cell set. In 2-D this is
// the 8-connectivity box.
func Box[T ndarray.Element](rank int) (*ndarray.Array[T], error) {
	if rank < 1 {
		return nil, ErrBadRank
	}
	shape := make([]int, rank)
	for d := range shape {
		shape[d] = 3
	}
	bc, err := ndarray.New[T](shape...)
	if err != nil {
		return nil, err
	}
	bc.Fill(one[T]())

	return bc, nil
}
