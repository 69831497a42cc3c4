// Package ndarray provides the dense n-dimensional array container that every
// operator in this module works on: a typed, row-major, contiguous buffer with
// shape, strides, and bidirectional mapping between n-tuple positions and flat
// indices.
//
// Core pieces:
//
//   - Array[T]: generic dense array over the supported element set
//     (fixed-width signed/unsigned integers and bool).
//   - Position: an n-tuple of signed coordinates, one per array axis.
//   - PositionIterator: forward row-major cursor that tracks both the flat
//     index and the n-tuple position of the current cell without allocating.
//   - PositionStack: explicit depth-first worklist for flood fills (recursion
//     is not an option — fill depth can reach the full cell count).
//   - Margin: minimum distance from a position to any array face, the basis
//     for the bounds-check fast path used in the hot neighbor loops.
//
// Guarantees:
//
//   - PosToFlat and FlatToPos are inverse bijections over valid positions.
//   - Arrays are always contiguous row-major; Stride(d) equals the product of
//     the dimensions after d.
//   - Element access by flat index never allocates; access by Position costs
//     O(rank).
//
// Complexity: all single-cell operations are O(1) or O(rank); whole-array
// operations (Fill, Clone, Equal) are O(size).
package ndarray
