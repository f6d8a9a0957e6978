// Package builder generates bounded inputs for the steppers: integer arrays
// with values in [1,100] and small connected weighted graphs.
//
// All generators are driven by a caller-supplied *rand.Rand, so a fixed seed
// reproduces the same input and, therefore, the same trace.
package builder

import (
	"math/rand"
	"sort"
)

// Value and length bounds shared with the validation layer.
const (
	// MinValue is the smallest array element the steppers visualize.
	MinValue = 1

	// MaxValue is the largest array element the steppers visualize.
	MaxValue = 100

	// MinLen is the shortest supported array.
	MinLen = 5

	// MaxLen is the longest supported array.
	MaxLen = 50
)

// RandomArray returns n values uniformly drawn from [MinValue, MaxValue].
func RandomArray(n int, rng *rand.Rand) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = MinValue + rng.Intn(MaxValue-MinValue+1)
	}
	return out
}

// SortedArray returns a non-decreasing random array, suitable as binary
// search input.
func SortedArray(n int, rng *rand.Rand) []int {
	out := RandomArray(n, rng)
	sort.Ints(out)
	return out
}

// ReversedArray returns a non-increasing random array, the worst case for
// the quadratic sorts.
func ReversedArray(n int, rng *rand.Rand) []int {
	out := SortedArray(n, rng)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NearlySorted returns a sorted array disturbed by the given number of
// random adjacent swaps.
func NearlySorted(n, swaps int, rng *rand.Rand) []int {
	out := SortedArray(n, rng)
	for s := 0; s < swaps && n > 1; s++ {
		i := rng.Intn(n - 1)
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}
