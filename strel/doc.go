// Package strel implements the structuring-element abstraction shared by
// every neighborhood operator in this module: offset enumeration, the
// boundary-aware filter cursor, and the standard connectivity elements.
//
// A structuring element ("Bc") is an ndarray of the same rank as the base
// array it is applied to, read as a neighborhood mask: a cell belongs to the
// neighborhood iff its value is nonzero, and the element's origin is the
// centre cell ⌊shape/2⌋ componentwise.
//
// Three views of the same mask:
//
//   - Neighbours(bc, includeCentre) lists the member offsets relative to the
//     centre, in row-major order. Flood fills and the watershed build their
//     neighbor tables from this list.
//   - Filter pairs the offsets with precomputed flat-index deltas and the
//     element's reach (maximum Chebyshev magnitude), so gather-style
//     operators can split every position into an interior fast path (pure
//     flat arithmetic, no bounds checks) and a boundary slow path with
//     nearest-extension clamping.
//   - Cross and Box construct the two standard unit-ball elements for any
//     rank: Cross is the city-block ball (4-connectivity in 2-D), Box the
//     Chebyshev ball (8-connectivity in 2-D).
//
// Boundary extension policy is uniformly "nearest" (replicate): coordinates
// outside the base array are clamped componentwise into [0, shape[d]).
//
// Complexity: building a Filter or offset list is O(size(Bc) · rank);
// Filter.AtFast is O(1) on the interior fast path and Filter.At is O(rank)
// at the boundary.
package strel
