// Package watershed defines options, sentinel errors, and the priority-queue
// entry type for the watershed flood.
package watershed

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every precondition failure in this
// package.
var ErrInvalidArgument = errors.New("watershed: invalid argument")

var (
	// ErrNilArray indicates a nil cost, marker, or structuring-element array.
	ErrNilArray = fmt.Errorf("%w: array is nil", ErrInvalidArgument)
	// ErrShapeMismatch indicates markers whose shape differs from the cost array's.
	ErrShapeMismatch = fmt.Errorf("%w: marker shape differs from cost array", ErrInvalidArgument)
	// ErrRankMismatch indicates a structuring element whose rank differs from the cost array's.
	ErrRankMismatch = fmt.Errorf("%w: structuring element rank differs from cost array", ErrInvalidArgument)
)

// Options configures a watershed run.
type Options struct {
	// Lines requests the boolean ridge map alongside the label array.
	Lines bool
}

// Option mutates Options; apply with Watershed(..., opts...).
type Option func(*Options)

// DefaultOptions returns the baseline configuration: no ridge map.
func DefaultOptions() Options {
	return Options{Lines: false}
}

// WithLines requests watershed-line tracking: the second return value of
// Watershed becomes a boolean array marking cells first reached at equal
// cost from two differently-labeled basins.
func WithLines() Option {
	return func(o *Options) { o.Lines = true }
}
