// Package ndmorph is a mathematical-morphology and grayscale-topology
// toolkit for dense n-dimensional arrays — the neighborhood operators of
// classical image processing, generalized to arbitrary rank.
//
// 🚀 What is ndmorph?
//
//	A pure-Go library of pixel operators sharing one structuring-element
//	iteration framework:
//		• Erosion & dilation: flat grayscale and binary, gather/scatter duals
//		• Local & regional extrema: plateau-aware, with flood-fill pruning
//		• Hole closing: boundary-seeded background flood on any rank
//		• Watershed: marker-controlled priority flood with FIFO tie-breaking
//		• Hit-or-miss: template matching with a batched bounds-check scan
//		• Majority filter: 2-D boolean window vote
//
// ✨ Why choose ndmorph?
//
//   - Rank-generic – the same operators run on signals, images, and volumes
//   - Deterministic – every operator is a pure function with pinned
//     iteration and tie-breaking order
//   - Explicit boundaries – nearest extension throughout, with a margin
//     fast path that keeps interior loops free of bounds checks
//   - Typed end to end – generics over the fixed integer widths plus bool,
//     no reflection, no interface{} arrays
//
// Everything is organized under focused subpackages:
//
//	ndarray/   — dense row-major Array[T], positions, iterators, margins
//	strel/     — structuring elements: offsets, filter cursor, Cross/Box
//	morph/     — erode, dilate, open/close, hit-or-miss, majority, holes
//	extrema/   — local & regional minima/maxima
//	watershed/ — marker-controlled priority flood with ridge lines
//	imgio/     — PNG/TIFF ↔ array bridging for the CLI and tests
//
// Quick ASCII example:
//
//	costs   1 2 3 4 3 2 1      labels   1 1 1 1 2 2 2
//	markers 1 . . . . . 2  ⇒   ridge    . . . ^ . . .
//
//	two basins flooding a 1-D mountain; the summit becomes the watershed.
//
// Dive into the per-package docs for semantics, complexity notes, and the
// exact boundary and tie-breaking rules.
//
//	go get github.com/morphlab/ndmorph
package ndmorph
