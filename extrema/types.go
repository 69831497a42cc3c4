// Package extrema defines the sentinel errors of the extrema detectors.
package extrema

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every precondition failure in this
// package.
var ErrInvalidArgument = errors.New("extrema: invalid argument")

var (
	// ErrNilArray indicates a nil input or output array.
	ErrNilArray = fmt.Errorf("%w: array is nil", ErrInvalidArgument)
	// ErrShapeMismatch indicates an output whose shape differs from the input's.
	ErrShapeMismatch = fmt.Errorf("%w: output shape differs from input", ErrInvalidArgument)
	// ErrRankMismatch indicates a structuring element whose rank differs from the input's.
	ErrRankMismatch = fmt.Errorf("%w: structuring element rank differs from input", ErrInvalidArgument)
)
