// Package imgio bridges 2-D ndarray data and on-disk grayscale images, so
// the operator core can be driven by real pictures: PNG via the standard
// library codec and TIFF via golang.org/x/image/tiff, selected by file
// extension.
//
// Arrays map to images row-major: shape [rows, cols] ↔ image height × width,
// one uint8 luminance value per cell. Binarize and FromMask convert between
// grayscale arrays and boolean masks for the binary operators.
package imgio
