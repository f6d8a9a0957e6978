// Package stepviz turns classic sorting, searching, and minimum-spanning-tree
// algorithms into replayable step traces.
//
// Each algorithm runs to completion in a single pure call and records every
// visually significant instant (comparisons, swaps, pointer moves, frontier
// updates, union-find merges) as an immutable snapshot. A consumer can pause,
// rewind, and scrub through the resulting sequence without ever re-running the
// algorithm: every snapshot embeds the full array or graph state of its moment.
//
// Package map:
//
//	core/       Node, Edge, Graph data model with deterministic ordering
//	step/       ArrayStep / GraphStep snapshot variants shared by all steppers
//	dsu/        disjoint-set union with path compression and value snapshots
//	sorting/    bubble, selection, insertion, merge, and quick sort steppers
//	searching/  linear and binary search steppers
//	mst/        Prim and Kruskal steppers plus their frontier structure
//	playback/   pure cursor over a computed trace (no timers, no goroutines)
//	builder/    bounded random arrays and connected weighted graphs
//	validate/   caller-side input validation for the shipped consumer
//	cmd/stepviz terminal playback of traces over YAML scenarios
//
// Traces are deterministic: re-invoking a stepper with identical input
// reproduces an identical sequence. Steppers never mutate their inputs and
// share no state across invocations, so independent runs may safely execute
// in parallel.
package stepviz
