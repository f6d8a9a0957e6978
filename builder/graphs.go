package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/stepviz/core"
)

// MaxEdgeWeight bounds generated edge weights.
const MaxEdgeWeight = 20

// RandomConnectedGraph returns a connected, weighted graph of n nodes:
// a spanning chain guarantees connectivity, then up to extra additional
// random edges are added between distinct, not-yet-connected pairs.
//
// Node coordinates are laid out on a circle purely for presentation; edge
// IDs are assigned deterministically ("e0", "e1", ...) so a fixed seed
// reproduces the graph byte for byte.
func RandomConnectedGraph(n, extra int, rng *rand.Rand) (*core.Graph, error) {
	g := core.NewGraph()

	const radius, center = 200.0, 250.0
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		err := g.AddNode(core.Node{
			ID: i,
			X:  center + radius*math.Cos(angle),
			Y:  center + radius*math.Sin(angle),
		})
		if err != nil {
			return nil, err
		}
	}

	next := 0
	addEdge := func(u, v int) error {
		_, err := g.AddEdge(core.Edge{
			ID:     fmt.Sprintf("e%d", next),
			Source: u,
			Target: v,
			Weight: 1 + rng.Intn(MaxEdgeWeight),
		})
		if err == nil {
			next++
		}
		return err
	}

	seen := make(map[[2]int]struct{}, n+extra)
	link := func(u, v int) [2]int {
		if u > v {
			u, v = v, u
		}
		return [2]int{u, v}
	}

	// Spanning chain keeps the graph connected.
	for i := 1; i < n; i++ {
		if err := addEdge(i-1, i); err != nil {
			return nil, err
		}
		seen[link(i-1, i)] = struct{}{}
	}

	// Extra edges; give up on a pair after a bounded number of retries so a
	// near-complete request cannot spin forever.
	for added, attempts := 0, 0; added < extra && attempts < extra*20; attempts++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if _, dup := seen[link(u, v)]; dup {
			continue
		}
		if err := addEdge(u, v); err != nil {
			return nil, err
		}
		seen[link(u, v)] = struct{}{}
		added++
	}

	return g, nil
}
