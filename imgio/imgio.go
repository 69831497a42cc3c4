package imgio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/morphlab/ndmorph/ndarray"
)

// Sentinel errors for image bridging.
var (
	// ErrUnsupportedFormat indicates a file extension no codec handles.
	ErrUnsupportedFormat = errors.New("imgio: unsupported image format (want .png, .tif, or .tiff)")
	// ErrNotTwoDim indicates an array that is not rank 2.
	ErrNotTwoDim = errors.New("imgio: array must be 2-D")
	// ErrNilArray indicates a nil array argument.
	ErrNilArray = errors.New("imgio: array is nil")
)

// FromImage converts any image to a 2-D uint8 array of its grayscale
// values, shape [height, width].
// Complexity: O(width · height).
func FromImage(img image.Image) *ndarray.Array[uint8] {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data[y*w+x] = color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray).Y
		}
	}
	a, _ := ndarray.FromFlat(data, h, w) // shape is valid by construction

	return a
}

// ToImage converts a 2-D uint8 array into a grayscale image sharing no
// memory with the array.
func ToImage(a *ndarray.Array[uint8]) (*image.Gray, error) {
	if a == nil {
		return nil, ErrNilArray
	}
	if a.Rank() != 2 {
		return nil, ErrNotTwoDim
	}
	h, w := a.Dim(0), a.Dim(1)
	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, a.Data())

	return img, nil
}

// Load reads a grayscale array from a PNG or TIFF file, selected by
// extension.
func Load(path string) (*ndarray.Array[uint8], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio: open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(f)
	case ".tif", ".tiff":
		img, err = tiff.Decode(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("imgio: decode %s: %w", path, err)
	}

	return FromImage(img), nil
}

// Save writes a 2-D uint8 array as a PNG or TIFF file, selected by
// extension.
func Save(path string, a *ndarray.Array[uint8]) error {
	img, err := ToImage(a)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgio: create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("imgio: encode %s: %w", path, err)
	}

	return nil
}

// Binarize thresholds a grayscale array into a boolean mask: true where the
// value is ≥ threshold.
func Binarize(a *ndarray.Array[uint8], threshold uint8) (*ndarray.Array[bool], error) {
	if a == nil {
		return nil, ErrNilArray
	}
	mask := ndarray.NewLike[bool](a)
	in, out := a.Data(), mask.Data()
	for i, v := range in {
		out[i] = v >= threshold
	}

	return mask, nil
}

// FromMask renders a boolean mask as a grayscale array: 255 where true.
func FromMask(m *ndarray.Array[bool]) (*ndarray.Array[uint8], error) {
	if m == nil {
		return nil, ErrNilArray
	}
	gray := ndarray.NewLike[uint8](m)
	in, out := m.Data(), gray.Data()
	for i, v := range in {
		if v {
			out[i] = 255
		}
	}

	return gray, nil
}
