package mst_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/mst"
)

// ExampleKruskal traces Kruskal's algorithm over a four-node graph and prints
// the terminal step.
func ExampleKruskal() {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		_ = g.AddNode(core.Node{ID: i})
	}
	edges := []core.Edge{
		{ID: "e01", Source: 0, Target: 1, Weight: 4},
		{ID: "e12", Source: 1, Target: 2, Weight: 2},
		{ID: "e23", Source: 2, Target: 3, Weight: 5},
		{ID: "e03", Source: 0, Target: 3, Weight: 3},
	}
	for _, e := range edges {
		_, _ = g.AddEdge(e)
	}

	steps, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	last := steps[len(steps)-1]
	fmt.Println(last.Message)
	for _, e := range last.MSTEdges {
		fmt.Printf("%s (%d-%d, w=%d)\n", e.ID, e.Source, e.Target, e.Weight)
	}
	// Output:
	// minimum spanning tree complete: 3 edge(s), total cost 9
	// e12 (1-2, w=2)
	// e03 (0-3, w=3)
	// e01 (0-1, w=4)
}

// ExamplePrim grows a tree from node 0 and prints every step message.
func ExamplePrim() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		_ = g.AddNode(core.Node{ID: i})
	}
	_, _ = g.AddEdge(core.Edge{ID: "e01", Source: 0, Target: 1, Weight: 1})
	_, _ = g.AddEdge(core.Edge{ID: "e12", Source: 1, Target: 2, Weight: 2})
	_, _ = g.AddEdge(core.Edge{ID: "e02", Source: 0, Target: 2, Weight: 3})

	steps, err := mst.Prim(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range steps {
		fmt.Println(s.Message)
	}
	// Output:
	// starting from node 0; frontier seeded with 2 candidate edge(s)
	// accepted edge e01 (0-1, w=1); tree cost is now 1
	// rescanned node 1; frontier holds 1 candidate edge(s)
	// accepted edge e12 (1-2, w=2); tree cost is now 3
	// rescanned node 2; frontier holds 0 candidate edge(s)
	// minimum spanning tree complete: 2 edge(s), total cost 3
}
