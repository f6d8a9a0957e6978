package mst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/mst"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	g, err := builder.RandomConnectedGraph(50, 100, rand.New(rand.NewSource(42)))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkPrim(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mst.Prim(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKruskal(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mst.Kruskal(g); err != nil {
			b.Fatal(err)
		}
	}
}
