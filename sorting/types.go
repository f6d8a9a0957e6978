package sorting

import (
	"errors"

	"github.com/katalvlaran/stepviz/step"
)

// ErrUnknownMethod is returned by Compute for an unrecognized method name.
var ErrUnknownMethod = errors.New("sorting: unknown method")

// Method names accepted by Compute.
const (
	// MethodBubble selects bubble sort.
	MethodBubble = "bubble"

	// MethodSelection selects selection sort.
	MethodSelection = "selection"

	// MethodInsertion selects insertion sort.
	MethodInsertion = "insertion"

	// MethodMerge selects merge sort.
	MethodMerge = "merge"

	// MethodQuick selects quick sort.
	MethodQuick = "quick"
)

// Methods returns the supported method names in presentation order.
// The set is fixed; there is no runtime registration.
func Methods() []string {
	return []string{MethodBubble, MethodSelection, MethodInsertion, MethodMerge, MethodQuick}
}

// Options selects which sorting stepper Compute runs.
type Options struct {
	// Method is one of the Method* constants.
	Method string
}

// Option configures Options via functional arguments.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// DefaultOptions returns Options selecting bubble sort.
func DefaultOptions() Options {
	return Options{Method: MethodBubble}
}

// Compute dispatches to the stepper named by the options.
// Returns ErrUnknownMethod (wrapped with the offending name) for any method
// outside the fixed set.
func Compute(arr []int, opts ...Option) ([]step.ArrayStep, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodBubble:
		return Bubble(arr), nil
	case MethodSelection:
		return Selection(arr), nil
	case MethodInsertion:
		return Insertion(arr), nil
	case MethodMerge:
		return Merge(arr), nil
	case MethodQuick:
		return Quick(arr), nil
	default:
		return nil, errUnknown(o.Method)
	}
}
