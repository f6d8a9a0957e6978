package sorting_test

import (
	"testing"

	"github.com/katalvlaran/stepviz/sorting"
)

// worstCase is a reversed max-length input, the heaviest trace the
// quadratic sorts produce.
func worstCase() []int {
	arr := make([]int, 50)
	for i := range arr {
		arr[i] = 100 - i
	}
	return arr
}

func BenchmarkBubble(b *testing.B) {
	arr := worstCase()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Bubble(arr)
	}
}

func BenchmarkQuick(b *testing.B) {
	arr := worstCase()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.Quick(arr)
	}
}
