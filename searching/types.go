package searching

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// ErrUnknownMethod is returned by Compute for an unrecognized method name.
var ErrUnknownMethod = errors.New("searching: unknown method")

// Method names accepted by Compute.
const (
	// MethodLinear selects linear search.
	MethodLinear = "linear"

	// MethodBinary selects binary search.
	MethodBinary = "binary"
)

// Methods returns the supported method names in presentation order.
func Methods() []string {
	return []string{MethodLinear, MethodBinary}
}

// Options selects which search stepper Compute runs.
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

// DefaultOptions returns Options selecting linear search.
func DefaultOptions() Options {
	return Options{Method: MethodLinear}
}

// Compute dispatches to the stepper named by the options.
func Compute(arr []int, target int, opts ...Option) ([]step.ArrayStep, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodLinear:
		return Linear(arr, target), nil
	case MethodBinary:
		return Binary(arr, target), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// probe owns one search run's working state and output trace.
// Snapshot discipline matches the sorting tracer: every emission clones the
// array, so later pointer moves never alter emitted steps.
type probe struct {
	work           []int
	target         int
	found          int
	low, high, mid int
	steps          []step.ArrayStep
}

// newProbe copies input so the caller's slice is never mutated.
func newProbe(input []int, target int) *probe {
	return &probe{
		work:   append([]int(nil), input...),
		target: target,
		found:  step.None,
		low:    step.None,
		high:   step.None,
		mid:    step.None,
	}
}

// record emits a snapshot of the current search state.
func (p *probe) record(msg string, highlight ...int) {
	p.steps = append(p.steps, step.ArrayStep{
		Array:      step.CopyInts(p.work),
		Highlight:  step.CopyInts(highlight),
		Pivot:      step.None,
		Target:     p.target,
		FoundIndex: p.found,
		Low:        p.low,
		High:       p.high,
		Mid:        p.mid,
		Message:    msg,
	})
}
