// Package morph implements the neighborhood morphology operators of this
// module over dense n-dimensional arrays: grayscale and binary erosion and
// dilation, hit-or-miss template matching, the 2-D majority filter, binary
// hole closing, and the composed opening/closing.
//
// Every operator reads an input array and a structuring element of the same
// rank and writes a caller-provided output of the same shape (CloseHoles
// allocates its result). Structuring elements are neighborhood masks: a cell
// participates iff its value is nonzero (hit-or-miss instead reads cell
// values 0/1 as required pixels and 2 as "don't care"). Out-of-bounds
// neighbors follow the nearest-extension policy for the gather operators;
// the dilation scatter skips them, which is equivalent under replication.
//
// Semantics in brief:
//
//   - Erode:  res[p] = min over member neighbors of a[p+δ]; boolean AND.
//   - Dilate: scatter dual — res initialized to the type minimum, then every
//     cell pushes its value into its neighborhood under max; boolean OR.
//   - HitMiss: res[p] = 1 iff every non-don't-care template cell matches,
//     with a slack counter that batches bounds checks along the last axis
//     and a deterministic template shuffle for earlier mismatch exits.
//   - MajorityFilter: 2-D boolean vote over every N×N window, writing the
//     window centre when the count reaches ⌊N²/2⌋.
//   - CloseHoles: background components not reaching the array boundary are
//     filled, via an explicit-stack flood from the boundary faces.
//   - Open/Close: Erode∘Dilate compositions (and binary forms).
//
// Operators are pure, single-threaded, and deterministic; inputs are never
// mutated and no state survives a call. Outputs must not alias inputs.
//
// Errors: all precondition failures (nil arrays, shape or rank mismatch,
// bad window) wrap ErrInvalidArgument and are detected before any output
// cell is written.
package morph
