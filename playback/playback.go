// Package playback provides a pure cursor over an already-computed step
// trace.
//
// The player never re-runs an algorithm and never schedules anything: it
// only indexes into the immutable sequence a stepper returned. Timer-driven
// playback belongs to the consumer; the core exposes no time-based API.
package playback

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by Seek for an index outside [0, Len()-1].
var ErrOutOfRange = errors.New("playback: step index out of range")

// Player is a cursor over one trace. The zero index is the first step.
// Because every step is self-contained, seeking is O(1): no prior steps are
// replayed.
type Player[T any] struct {
	steps []T
	idx   int
}

// New returns a Player positioned at the first step of trace.
// The trace slice is not copied; traces are immutable by contract.
func New[T any](trace []T) *Player[T] {
	return &Player[T]{steps: trace}
}

// Len returns the number of steps in the trace.
func (p *Player[T]) Len() int { return len(p.steps) }

// Index returns the current cursor position.
func (p *Player[T]) Index() int { return p.idx }

// Current returns the step under the cursor; ok is false for an empty trace.
func (p *Player[T]) Current() (t T, ok bool) {
	if len(p.steps) == 0 {
		return t, false
	}
	return p.steps[p.idx], true
}

// Next advances the cursor and returns the step it lands on; ok is false at
// the end of the trace, leaving the cursor in place.
func (p *Player[T]) Next() (t T, ok bool) {
	if p.idx+1 >= len(p.steps) {
		return t, false
	}
	p.idx++
	return p.steps[p.idx], true
}

// Prev moves the cursor back and returns the step it lands on; ok is false
// at the start of the trace, leaving the cursor in place.
func (p *Player[T]) Prev() (t T, ok bool) {
	if p.idx == 0 || len(p.steps) == 0 {
		return t, false
	}
	p.idx--
	return p.steps[p.idx], true
}

// Seek jumps the cursor to i.
// Returns ErrOutOfRange (wrapped with the index) when i is invalid.
func (p *Player[T]) Seek(i int) error {
	if i < 0 || i >= len(p.steps) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(p.steps))
	}
	p.idx = i
	return nil
}

// Rewind moves the cursor back to the first step.
func (p *Player[T]) Rewind() { p.idx = 0 }

// End jumps the cursor to the terminal step of a non-empty trace.
func (p *Player[T]) End() {
	if n := len(p.steps); n > 0 {
		p.idx = n - 1
	}
}

// Done reports whether the cursor sits on the terminal step.
func (p *Player[T]) Done() bool {
	return len(p.steps) == 0 || p.idx == len(p.steps)-1
}
