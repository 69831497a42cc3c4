// Package morph defines the sentinel errors shared by the morphology
// operators. Every precondition failure wraps ErrInvalidArgument, so callers
// can match the single error kind or the specific cause.
package morph

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every precondition failure in this
// package. errors.Is(err, ErrInvalidArgument) holds for all of them.
var ErrInvalidArgument = errors.New("morph: invalid argument")

var (
	// ErrNilArray indicates a nil input or output array.
	ErrNilArray = fmt.Errorf("%w: array is nil", ErrInvalidArgument)
	// ErrShapeMismatch indicates an output whose shape differs from the input's.
	ErrShapeMismatch = fmt.Errorf("%w: output shape differs from input", ErrInvalidArgument)
	// ErrRankMismatch indicates a structuring element whose rank differs from the input's.
	ErrRankMismatch = fmt.Errorf("%w: structuring element rank differs from input", ErrInvalidArgument)
	// ErrNotTwoDim indicates a non-2-D input where only 2-D is supported.
	ErrNotTwoDim = fmt.Errorf("%w: operator requires a 2-D array", ErrInvalidArgument)
	// ErrBadWindow indicates a majority-filter window that is not a positive odd integer.
	ErrBadWindow = fmt.Errorf("%w: window size must be positive and odd", ErrInvalidArgument)
)
