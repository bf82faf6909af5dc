// Package partition builds and solves the ILP bipartition formulations
// that place a dataflow.Graph's vertices onto slot.Manager leaves: a
// four-way split (two binary coordinates) or an eight-way split (three),
// plus the four-way retry loop that relaxes the area cap until a probe
// succeeds or a hard limit is reached.
//
// Every exported solve here builds a fresh ilp.Model per call (stateless
// across calls, per the recursive-refinement contract a caller relies on
// when it recurses into a sub-slot-manager and a subgraph), and returns an
// empty dataflow.V2S rather than an error on an optimization failure:
// infeasibility and timeout are probe outcomes, not programming errors.
// Only configuration mistakes (unknown vertex in a grouping or
// pre-assignment, a pre-assignment that lands outside every current leaf)
// and a ctx that is done when the solve finishes return an error.
package partition
