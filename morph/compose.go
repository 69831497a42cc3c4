package morph

import (
	"github.com/morphlab/ndmorph/ndarray"
)

// Open computes the morphological opening of a: erosion followed by dilation
// under the same structuring element. Removes foreground details smaller
// than the element while preserving the larger structure.
//
// Allocates one scratch array of a's shape.
func Open[T ndarray.Integer](res, a, bc *ndarray.Array[T]) error {
	if err := checkUnary(res, a, bc); err != nil {
		return err
	}
	tmp := ndarray.NewLike[T](a)
	if err := Erode(tmp, a, bc); err != nil {
		return err
	}

	return Dilate(res, tmp, bc)
}

// Close computes the morphological closing of a: dilation followed by
// erosion under the same structuring element. Fills background details
// smaller than the element.
func Close[T ndarray.Integer](res, a, bc *ndarray.Array[T]) error {
	if err := checkUnary(res, a, bc); err != nil {
		return err
	}
	tmp := ndarray.NewLike[T](a)
	if err := Dilate(tmp, a, bc); err != nil {
		return err
	}

	return Erode(res, tmp, bc)
}

// OpenBinary is the boolean opening: ErodeBinary then DilateBinary.
func OpenBinary(res, a, bc *ndarray.Array[bool]) error {
	if err := checkUnary(res, a, bc); err != nil {
		return err
	}
	tmp := ndarray.NewLike[bool](a)
	if err := ErodeBinary(tmp, a, bc); err != nil {
		return err
	}

	return DilateBinary(res, tmp, bc)
}

// CloseBinary is the boolean closing: DilateBinary then ErodeBinary.
func CloseBinary(res, a, bc *ndarray.Array[bool]) error {
	if err := checkUnary(res, a, bc); err != nil {
		return err
	}
	tmp := ndarray.NewLike[bool](a)
	if err := DilateBinary(tmp, a, bc); err != nil {
		return err
	}

	return ErodeBinary(res, tmp, bc)
}
