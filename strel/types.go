// Package strel defines sentinel errors for structuring-element construction.
package strel

import (
	"errors"
)

// Sentinel errors for structuring-element operations.
var (
	// ErrNilArray indicates a nil base or structuring-element array.
	ErrNilArray = errors.New("strel: array is nil")
	// ErrRankMismatch indicates a structuring element whose rank differs from
	// the base array's rank.
	ErrRankMismatch = errors.New("strel: structuring element rank does not match base array")
	// ErrBadRank indicates a requested element rank < 1.
	ErrBadRank = errors.New("strel: rank must be ≥ 1")
)
