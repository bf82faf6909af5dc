// Package ilp provides a small mixed binary/integer linear programming
// model and an exact branch-and-bound solver for it.
//
// No general-purpose MIP solver is available anywhere in this module's
// dependency surface (see the root DESIGN.md), so this package builds one
// from scratch, structured the way tsp.TSPBranchAndBound structures its
// exact search: an explicit engine struct (not closures), deterministic
// branching order, admissible pruning, and sparse deadline polling.
//
// Model exposes AddBinaryVar/AddIntegerVar/AddLinearConstraint/SetObjective;
// logic.go layers the boolean-connective (AND/NOT/XOR) and absolute-value
// encodings partition needs on top of that linear core. Every integer
// variable this package ever introduces follows the AbsVar pattern (t >= e,
// t >= -e), so the solver never branches on integers: once every binary
// variable is fixed, each integer variable's optimal value follows from
// interval arithmetic on its defining expression, and is resolved
// analytically rather than searched.
package ilp
