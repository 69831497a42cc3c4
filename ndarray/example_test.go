// File: ndarray/example_test.go
package ndarray_test

import (
	"fmt"

	"github.com/morphlab/ndmorph/ndarray"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Positions
////////////////////////////////////////////////////////////////////////////////

// ExampleArray_Positions walks a 2×3 array in row-major order, showing the
// paired flat index and n-tuple position the iterator maintains.
func ExampleArray_Positions() {
	a, _ := ndarray.New[uint8](2, 3)

	it := a.Positions()
	for it.Next() {
		fmt.Printf("%d:%v ", it.Flat(), it.Position())
	}
	fmt.Println()

	// Output:
	// 0:[0 0] 1:[0 1] 2:[0 2] 3:[1 0] 4:[1 1] 5:[1 2]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Margin
////////////////////////////////////////////////////////////////////////////////

// ExampleMargin shows the distance-to-face computation behind the
// bounds-check fast path: the centre of a 5×5 array is two cells from every
// face, a corner is flush against two of them.
func ExampleMargin() {
	shape := []int{5, 5}
	fmt.Println(ndarray.Margin(ndarray.Position{2, 2}, shape))
	fmt.Println(ndarray.Margin(ndarray.Position{0, 4}, shape))

	// Output:
	// 2
	// 0
}
