package partition

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/slrfloorplan/dataflow"
	"github.com/katalvlaran/slrfloorplan/ilp"
	"github.com/katalvlaran/slrfloorplan/slot"
)

// EightWayOptions configures one EightWay solve.
type EightWayOptions struct {
	MaxAreaRatio              float64
	PerBoundaryCrossingLimits [3]int
	MaxSearchTime             time.Duration
}

// DefaultEightWayOptions mirrors DefaultFourWayOptions.
func DefaultEightWayOptions() EightWayOptions {
	return EightWayOptions{
		MaxAreaRatio:              0.8,
		PerBoundaryCrossingLimits: [3]int{12000, 12000, 12000},
		MaxSearchTime:             600 * time.Second,
	}
}

// EightWay splits vertices across the eight leaves mgr produces from
// three horizontal splits, honoring grouping and pre-assignments. Its
// three crossing categories correspond directly to the three coordinate
// bits flipping (unlike FourWay's SLR0-1/SLR2-3 boundaries, which need the
// inSLRx indicator because SLR0 and SLR3 are corner leaves rather than
// whole coordinate halves).
//
// vertices need not be an entire graph: see FourWay's doc comment.
func EightWay(
	ctx context.Context,
	vertices []*dataflow.Vertex,
	mgr *slot.Manager,
	grouping [][]*dataflow.Vertex,
	preAssignments map[*dataflow.Vertex]*slot.Slot,
	opts EightWayOptions,
) (dataflow.V2S, error) {
	leaves, err := mgr.GetLeafSlotsAfterPartition([]slot.Direction{slot.Horizontal, slot.Horizontal, slot.Horizontal})
	if err != nil {
		return nil, err
	}

	m := ilp.NewModel()
	bits := bitVars(m, 3, vertices)

	addAreaConstraints(m, bits, vertices, leaves, 3, opts.MaxAreaRatio)

	if err := addGroupingConstraints(m, bits, grouping); err != nil {
		return nil, err
	}
	if err := addPreAssignmentConstraints(m, bits, leaves, 3, preAssignments); err != nil {
		return nil, err
	}

	edges := dataflow.AllEdgesReachableFrom(vertices)
	addEightWayCrossingConstraints(m, bits, edges, opts.PerBoundaryCrossingLimits)
	addHammingObjective(m, bits, edges, 3)

	status, err := m.Solve(ctx, ilp.SolveOptions{TimeLimit: opts.MaxSearchTime})
	if err != nil {
		return nil, err
	}
	if status != ilp.Optimal && status != ilp.Feasible {
		return dataflow.V2S{}, nil
	}

	return extractAssignment(m, bits, leaves, 3)
}

// addEightWayCrossingConstraints adds one budget per coordinate bit: the
// total width of edges whose endpoints disagree on that bit.
func addEightWayCrossingConstraints(m *ilp.Model, bits map[*dataflow.Vertex][]ilp.VarID, edges []*dataflow.Edge, limits [3]int) {
	sums := [3]ilp.LinExpr{}

	for i, e := range edges {
		if e.Width == 0 {
			continue
		}
		width := float64(e.Width)
		for bitIdx := 0; bitIdx < 3; bitIdx++ {
			xor := m.LogicXor(fmt.Sprintf("xor%d_%d", bitIdx, i), bits[e.Src][bitIdx], bits[e.Dst][bitIdx])
			sums[bitIdx] = sums[bitIdx].Plus(ilp.VarExpr(xor, width))
		}
	}

	for bitIdx := 0; bitIdx < 3; bitIdx++ {
		m.LEConstraint(sums[bitIdx], float64(limits[bitIdx]))
	}
}
