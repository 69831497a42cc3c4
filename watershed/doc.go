// Package watershed implements marker-controlled watershed segmentation of
// grayscale n-d arrays by priority flooding.
//
// Seeds are the nonzero cells of a marker array parallel to the cost array;
// each seed's label floods outward through the structuring element's
// neighborhood, always expanding the globally cheapest frontier cell next.
// The queue orders entries by (cost, insertion sequence): FIFO within equal
// cost, which pins plateau ownership to the earlier-inserted marker and
// makes the output fully deterministic.
//
// Per frontier cell the flood caches its boundary margin. A neighbor whose
// margin stays non-negative after subtracting the offset's Chebyshev
// magnitude is provably in bounds and is reached by pure flat-index
// arithmetic; otherwise the n-tuple neighbor is materialized, validated,
// and its margin recomputed — flat arithmetic alone could wrap past a face
// onto a valid but wrong cell.
//
// A neighbor is claimed only when its cost strictly improves the best cost
// seen for it. A later equal-cost arrival from a differently-labeled region
// instead marks the cell as a watershed line (when line tracking is enabled
// via WithLines), so ridges are recorded on first contact between basins,
// not on finalization.
//
// Complexity: O(size · size(Bc) · log size) time, O(size) memory.
package watershed
