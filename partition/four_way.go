package partition

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/slrfloorplan/dataflow"
	"github.com/katalvlaran/slrfloorplan/ilp"
	"github.com/katalvlaran/slrfloorplan/slot"
)

// FourWayOptions configures one FourWay solve.
type FourWayOptions struct {
	MaxAreaRatio float64
	// PerBoundaryCrossingLimits holds, in order, the SLR0-1, SLR1-2, and
	// SLR2-3 crossing budgets. The outer search drives all three from one
	// crossing cap by default, but they are independently settable: see
	// the root SPEC_FULL.md's open-question decisions (section 11).
	PerBoundaryCrossingLimits [3]int
	MaxSearchTime             time.Duration
}

// DefaultFourWayOptions returns the defaults carried over from the
// original implementation: every boundary budget at 12000.
func DefaultFourWayOptions() FourWayOptions {
	return FourWayOptions{
		MaxAreaRatio:              0.8,
		PerBoundaryCrossingLimits: [3]int{12000, 12000, 12000},
		MaxSearchTime:             600 * time.Second,
	}
}

// FourWay splits vertices across the four leaves mgr produces from two
// horizontal splits (L[0][0]=SLR0 ... L[1][1]=SLR3), honoring grouping and
// pre-assignments, and returns the resulting assignment. An empty
// dataflow.V2S (nil error) means the ILP was infeasible or timed out; a
// non-nil error means a configuration mistake was found before solving,
// or that ctx was done when the solve finished.
//
// vertices need not be an entire graph: FourWay only looks at the edges
// reachable from them, so a caller may pass a subgraph's vertex set when
// recursively refining a parent region.
func FourWay(
	ctx context.Context,
	vertices []*dataflow.Vertex,
	mgr *slot.Manager,
	grouping [][]*dataflow.Vertex,
	preAssignments map[*dataflow.Vertex]*slot.Slot,
	opts FourWayOptions,
) (dataflow.V2S, error) {
	leaves, err := mgr.GetLeafSlotsAfterPartition([]slot.Direction{slot.Horizontal, slot.Horizontal})
	if err != nil {
		return nil, err
	}

	m := ilp.NewModel()
	bits := bitVars(m, 2, vertices)

	addAreaConstraints(m, bits, vertices, leaves, 2, opts.MaxAreaRatio)

	if err := addGroupingConstraints(m, bits, grouping); err != nil {
		return nil, err
	}
	if err := addPreAssignmentConstraints(m, bits, leaves, 2, preAssignments); err != nil {
		return nil, err
	}

	edges := dataflow.AllEdgesReachableFrom(vertices)
	addFourWayCrossingConstraints(m, bits, edges, opts.PerBoundaryCrossingLimits)
	addHammingObjective(m, bits, edges, 2)

	status, err := m.Solve(ctx, ilp.SolveOptions{TimeLimit: opts.MaxSearchTime})
	if err != nil {
		return nil, err
	}
	if status != ilp.Optimal && status != ilp.Feasible {
		return dataflow.V2S{}, nil
	}

	return extractAssignment(m, bits, leaves, 2)
}

// addFourWayCrossingConstraints adds the three named boundary budgets:
// SLR0-1 and SLR2-3 via an inSLRx-XOR indicator, SLR1-2 via a direct XOR
// of the y1 coordinate.
func addFourWayCrossingConstraints(m *ilp.Model, bits map[*dataflow.Vertex][]ilp.VarID, edges []*dataflow.Edge, limits [3]int) {
	slr01 := ilp.LinExpr{}
	slr12 := ilp.LinExpr{}
	slr23 := ilp.LinExpr{}

	inSLR0 := make(map[*dataflow.Vertex]ilp.VarID, len(bits))
	inSLR3 := make(map[*dataflow.Vertex]ilp.VarID, len(bits))
	for v, vb := range bits {
		inSLR0[v] = pickIndicator(m, fmt.Sprintf("inSLR0_%s", v.Name), vb, 0, 2)
		inSLR3[v] = pickIndicator(m, fmt.Sprintf("inSLR3_%s", v.Name), vb, 3, 2)
	}

	for i, e := range edges {
		if e.Width == 0 {
			continue
		}
		width := float64(e.Width)

		xor01 := m.LogicXor(fmt.Sprintf("xor01_%d", i), inSLR0[e.Src], inSLR0[e.Dst])
		slr01 = slr01.Plus(ilp.VarExpr(xor01, width))

		xor12 := m.LogicXor(fmt.Sprintf("xor12_%d", i), bits[e.Src][0], bits[e.Dst][0])
		slr12 = slr12.Plus(ilp.VarExpr(xor12, width))

		xor23 := m.LogicXor(fmt.Sprintf("xor23_%d", i), inSLR3[e.Src], inSLR3[e.Dst])
		slr23 = slr23.Plus(ilp.VarExpr(xor23, width))
	}

	m.LEConstraint(slr01, float64(limits[0]))
	m.LEConstraint(slr12, float64(limits[1]))
	m.LEConstraint(slr23, float64(limits[2]))
}
