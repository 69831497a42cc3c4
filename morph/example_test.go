// File: morph/example_test.go
package morph_test

import (
	"fmt"

	"github.com/morphlab/ndmorph/morph"
	"github.com/morphlab/ndmorph/ndarray"
	"github.com/morphlab/ndmorph/strel"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Erode
////////////////////////////////////////////////////////////////////////////////

// ExampleErode demonstrates flat grayscale erosion with a full 3-cell window:
// the single low value spreads to its neighbors, and boundary cells replicate
// the nearest in-bounds value.
func ExampleErode() {
	a, _ := ndarray.FromFlat([]uint8{5, 5, 5, 1, 5, 5, 5}, 7)
	bc, _ := ndarray.FromFlat([]uint8{1, 1, 1}, 3)
	res := ndarray.NewLike[uint8](a)

	_ = morph.Erode(res, a, bc)
	fmt.Println(res.Data())

	// Output:
	// [5 5 1 1 1 5 5]
}

////////////////////////////////////////////////////////////////////////////////
// Example: CloseHoles
////////////////////////////////////////////////////////////////////////////////

// ExampleCloseHoles fills the cavity of a hollow ring under 4-connectivity.
func ExampleCloseHoles() {
	data := []bool{
		false, false, false, false, false,
		false, true, true, true, false,
		false, true, false, true, false,
		false, true, true, true, false,
		false, false, false, false, false,
	}
	ref, _ := ndarray.FromFlat(data, 5, 5)
	bc, _ := strel.Cross[bool](2)

	res, _ := morph.CloseHoles(ref, bc)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if res.At(ndarray.Position{y, x}) {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}

	// Output:
	// .....
	// .###.
	// .###.
	// .###.
	// .....
}
