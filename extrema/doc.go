// Package extrema detects local and regional extrema of grayscale n-d arrays
// under a structuring-element neighborhood.
//
// A cell is a local minimum (maximum) when its value is ≤ (≥) every neighbor
// value, the neighborhood given by the element's nonzero cells and the
// comparison including the cell itself. Out-of-bounds neighbors follow the
// nearest-extension policy, which is neutral for the comparison.
//
// A regional minimum (maximum) is stricter: a maximal connected plateau of
// equal values whose external neighbors are all strictly greater (less).
// RegMin/RegMax start from the local-extrema mask and prune the plateaus
// that leak: when a marked cell has an unmarked neighbor at an equal-or-
// better value, its whole plateau is unmarked by an explicit-stack flood
// over the marked cells. Both the leak test and the flood use the element's
// centre-excluded offsets, so "regional" is always relative to the supplied
// connectivity.
//
// Outputs are boolean masks of the input's shape; RegMin ⊆ LocMin pointwise
// (and likewise for maxima).
//
// Errors wrap ErrInvalidArgument and are raised before any output is
// written.
//
// Complexity: LocMin/LocMax are O(size · size(Bc)); the pruning pass visits
// every plateau cell at most once, so RegMin/RegMax stay O(size · size(Bc)).
package extrema
