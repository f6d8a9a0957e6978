package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/validate"
)

// scenarioFile is the YAML shape of a stored scenario.
type scenarioFile struct {
	Array  []int      `yaml:"array"`
	Target int        `yaml:"target"`
	Start  int        `yaml:"start"`
	Graph  *graphSpec `yaml:"graph"`
}

type graphSpec struct {
	Nodes []nodeSpec `yaml:"nodes"`
	Edges []edgeSpec `yaml:"edges"`
}

type nodeSpec struct {
	ID int     `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

type edgeSpec struct {
	ID     string `yaml:"id"`
	Source int    `yaml:"source"`
	Target int    `yaml:"target"`
	Weight int    `yaml:"weight"`
}

// inputs is one validated scenario, ready for the steppers.
// sortedArray is a presorted copy for binary search: presorting is the
// caller's responsibility, the stepper itself never re-sorts.
type inputs struct {
	array       []int
	sortedArray []int
	target      int
	start       int
	graph       *core.Graph
}

// loadInputs reads and validates a scenario. An empty path yields the
// built-in seeded scenario, so the demo is runnable with no arguments.
func loadInputs(path string) (*inputs, error) {
	var sf scenarioFile
	if path == "" {
		sf = defaultScenario()
	} else {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading scenario: %w", err)
		}
		if err = yaml.Unmarshal(raw, &sf); err != nil {
			return nil, fmt.Errorf("parsing scenario: %w", err)
		}
	}

	if err := validate.Array(sf.Array); err != nil {
		return nil, err
	}
	if err := validate.Search(sf.Array, sf.Target); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	if sf.Graph != nil {
		for _, n := range sf.Graph.Nodes {
			if err := g.AddNode(core.Node{ID: n.ID, X: n.X, Y: n.Y}); err != nil {
				return nil, err
			}
		}
		for _, e := range sf.Graph.Edges {
			_, err := g.AddEdge(core.Edge{ID: e.ID, Source: e.Source, Target: e.Target, Weight: e.Weight})
			if err != nil {
				return nil, err
			}
		}
	}
	if err := validate.Graph(g); err != nil {
		return nil, err
	}

	sorted := append([]int(nil), sf.Array...)
	sort.Ints(sorted)

	return &inputs{
		array:       sf.Array,
		sortedArray: sorted,
		target:      sf.Target,
		start:       sf.Start,
		graph:       g,
	}, nil
}

// defaultScenario builds a fixed-seed scenario: a 12-value array, a target
// that is present, and a 6-node connected graph.
func defaultScenario() scenarioFile {
	rng := rand.New(rand.NewSource(7))
	arr := builder.RandomArray(12, rng)

	g, err := builder.RandomConnectedGraph(6, 4, rng)
	if err != nil {
		// The generator cannot fail on these fixed parameters.
		panic(err)
	}
	spec := &graphSpec{}
	for _, n := range g.Nodes() {
		spec.Nodes = append(spec.Nodes, nodeSpec{ID: n.ID, X: n.X, Y: n.Y})
	}
	for _, e := range g.Edges() {
		spec.Edges = append(spec.Edges, edgeSpec{ID: e.ID, Source: e.Source, Target: e.Target, Weight: e.Weight})
	}

	return scenarioFile{
		Array:  arr,
		Target: arr[len(arr)/2],
		Start:  0,
		Graph:  spec,
	}
}
