package partition

import "errors"

// Sentinel errors for the partition package. These are configuration
// errors only: an optimization failure (infeasible, timed out) is never
// reported through an error, it is reported as an empty dataflow.V2S.
var (
	// ErrUnknownVertexInGrouping indicates a grouping list referenced a
	// vertex absent from the initial assignment.
	ErrUnknownVertexInGrouping = errors.New("partition: grouping references a vertex outside init_v2s")
	// ErrUnknownVertexInPreAssignment indicates a pre-assignment key is
	// absent from the initial assignment.
	ErrUnknownVertexInPreAssignment = errors.New("partition: pre-assignment references a vertex outside init_v2s")
	// ErrPreAssignmentUnreachable indicates a pre-assignment's target slot
	// is not contained in any current leaf slot.
	ErrPreAssignmentUnreachable = errors.New("partition: pre-assignment target slot is outside every current leaf")
)
