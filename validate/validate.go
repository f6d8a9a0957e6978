// Package validate is the caller-side input validation layer.
//
// The steppers assume validated input; the shipped consumer never invokes a
// stepper with malformed data. Array and search bounds are enforced through
// go-playground/validator struct tags; graph shape checks that the tag
// engine cannot express (endpoint resolution) are performed directly.
package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/stepviz/core"
)

// ErrInvalidInput wraps every validation failure reported by this package.
var ErrInvalidInput = errors.New("validate: invalid input")

var v = validator.New()

// ArrayInput bounds a sorting/searching array: length in [5,50], values in
// [1,100].
type ArrayInput struct {
	Values []int `validate:"required,min=5,max=50,dive,min=1,max=100"`
}

// SearchInput bounds a search run: the array bounds plus a target in
// [1,100].
type SearchInput struct {
	Values []int `validate:"required,min=5,max=50,dive,min=1,max=100"`
	Target int   `validate:"min=1,max=100"`
}

// Array validates a sorting input.
func Array(values []int) error {
	if err := v.Struct(ArrayInput{Values: values}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// Search validates a searching input.
func Search(values []int, target int) error {
	if err := v.Struct(SearchInput{Values: values, Target: target}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// Graph validates a graph input: non-nil, at least one node, and every edge
// resolving to registered endpoints with a positive weight. core.Graph
// enforces these at construction; re-checking here keeps the layer honest
// about inputs assembled elsewhere.
func Graph(g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidInput)
	}
	if g.NodeCount() == 0 {
		return fmt.Errorf("%w: graph has no nodes", ErrInvalidInput)
	}
	for _, e := range g.Edges() {
		if !g.HasNode(e.Source) || !g.HasNode(e.Target) {
			return fmt.Errorf("%w: edge %q references a missing node", ErrInvalidInput, e.ID)
		}
		if e.Weight <= 0 {
			return fmt.Errorf("%w: edge %q has non-positive weight %d", ErrInvalidInput, e.ID, e.Weight)
		}
	}
	return nil
}
