package partition

import (
	"fmt"

	"github.com/katalvlaran/slrfloorplan/dataflow"
	"github.com/katalvlaran/slrfloorplan/ilp"
	"github.com/katalvlaran/slrfloorplan/slot"
)

// bitVars declares numBits fresh binary variables per vertex (y1_v, y2_v,
// ... in the spec's naming), returned keyed by vertex for O(1) lookup
// during constraint construction.
func bitVars(m *ilp.Model, numBits int, vertices []*dataflow.Vertex) map[*dataflow.Vertex][]ilp.VarID {
	out := make(map[*dataflow.Vertex][]ilp.VarID, len(vertices))
	for _, v := range vertices {
		bits := make([]ilp.VarID, numBits)
		for j := 0; j < numBits; j++ {
			bits[j] = m.AddBinaryVar(fmt.Sprintf("y%d_%s", j+1, v.Name))
		}
		out[v] = bits
	}
	return out
}

// pickIndicator introduces pick_{v,leafIdx} = AND over bits of [y_j_v ==
// bit_j(leafIdx)], the conjunction the area constraint needs to charge v's
// bundled area to exactly the leaf its coordinates select. Negated bits
// (leafIdx's bit is 0) are passed as ilp.LogicNot(bits[j]) directly, with
// no extra variable: LogicAnd accepts any 0/1-valued linear expression.
func pickIndicator(m *ilp.Model, label string, bits []ilp.VarID, leafIdx, numBits int) ilp.VarID {
	terms := make([]ilp.LinExpr, numBits)
	for j := 0; j < numBits; j++ {
		bit := (leafIdx >> (numBits - 1 - j)) & 1
		if bit == 1 {
			terms[j] = ilp.VarExpr(bits[j], 1)
		} else {
			terms[j] = ilp.LogicNot(bits[j])
		}
	}
	return m.LogicAnd(label, terms...)
}

// addAreaConstraints adds, for every leaf and every resource, the capacity
// constraint Σ_v pick_{v,leaf}·bundledArea[v][r] <= capacity[leaf][r]*ratio.
func addAreaConstraints(m *ilp.Model, bits map[*dataflow.Vertex][]ilp.VarID, vertices []*dataflow.Vertex, leaves []*slot.Slot, numBits int, maxAreaRatio float64) {
	numLeaves := 1 << uint(numBits)
	for leafIdx := 0; leafIdx < numLeaves; leafIdx++ {
		leaf := leaves[leafIdx]
		picks := make(map[*dataflow.Vertex]ilp.VarID, len(vertices))
		for _, v := range vertices {
			picks[v] = pickIndicator(m, fmt.Sprintf("pick_%s_%d", v.Name, leafIdx), bits[v], leafIdx, numBits)
		}
		for _, r := range slot.RESOURCE_TYPES {
			expr := ilp.LinExpr{}
			for _, v := range vertices {
				area := float64(v.BundledArea().Get(r))
				if area == 0 {
					continue
				}
				expr = expr.Plus(ilp.VarExpr(picks[v], area))
			}
			cap := float64(leaf.Capacity().Get(r)) * maxAreaRatio
			m.LEConstraint(expr, cap)
		}
	}
}

// addGroupingConstraints pins every member of each group to the same
// coordinate as the group's first member, on every bit.
func addGroupingConstraints(m *ilp.Model, bits map[*dataflow.Vertex][]ilp.VarID, grouping [][]*dataflow.Vertex) error {
	for _, group := range grouping {
		if len(group) == 0 {
			continue
		}
		head, ok := bits[group[0]]
		if !ok {
			return fmt.Errorf("partition: grouping vertex %q: %w", group[0].Name, ErrUnknownVertexInGrouping)
		}
		for _, member := range group[1:] {
			memberBits, ok := bits[member]
			if !ok {
				return fmt.Errorf("partition: grouping vertex %q: %w", member.Name, ErrUnknownVertexInGrouping)
			}
			for j := range head {
				m.EQConstraint(ilp.VarExpr(head[j], 1).Minus(ilp.VarExpr(memberBits[j], 1)), 0)
			}
		}
	}
	return nil
}

// addPreAssignmentConstraints pins every forced vertex to the leaf
// containing its required slot, by fixing each coordinate bit to the
// matching bit of that leaf's index.
func addPreAssignmentConstraints(m *ilp.Model, bits map[*dataflow.Vertex][]ilp.VarID, leaves []*slot.Slot, numBits int, preAssignments map[*dataflow.Vertex]*slot.Slot) error {
	for v, target := range preAssignments {
		vBits, ok := bits[v]
		if !ok {
			return fmt.Errorf("partition: pre-assignment vertex %q: %w", v.Name, ErrUnknownVertexInPreAssignment)
		}
		idx, err := slot.LeafIndexContaining(leaves, target)
		if err != nil {
			dlX, dlY := target.DownLeft()
			urX, urY := target.UpRight()
			return fmt.Errorf("partition: pre-assignment vertex %q to slot [(%d,%d),(%d,%d)]: %w", v.Name, dlX, dlY, urX, urY, ErrPreAssignmentUnreachable)
		}
		for j := 0; j < numBits; j++ {
			bit := (idx >> (numBits - 1 - j)) & 1
			m.EQConstraint(ilp.VarExpr(vBits[j], 1), float64(bit))
		}
	}
	return nil
}

// posYExpr returns the linear expression for posY(v) = sum_j bit_j * 2^(numBits-1-j).
func posYExpr(bits []ilp.VarID) ilp.LinExpr {
	expr := ilp.LinExpr{}
	n := len(bits)
	for j, b := range bits {
		weight := float64(uint(1) << uint(n-1-j))
		expr = expr.Plus(ilp.VarExpr(b, weight))
	}
	return expr
}

// addHammingObjective sets Σ_e width(e)·|posY(src)-posY(dst)| as the
// objective to minimize, the proxy cost every bipartition level uses.
func addHammingObjective(m *ilp.Model, bits map[*dataflow.Vertex][]ilp.VarID, edges []*dataflow.Edge, numBits int) {
	maxSpan := int64(1 << uint(numBits))
	obj := ilp.LinExpr{}
	for i, e := range edges {
		srcPos := posYExpr(bits[e.Src])
		dstPos := posYExpr(bits[e.Dst])
		diff := srcPos.Minus(dstPos)
		cost := m.AbsVar(fmt.Sprintf("cost_%d", i), diff, -maxSpan, maxSpan)
		if e.Width != 0 {
			obj = obj.Plus(ilp.VarExpr(cost, float64(e.Width)))
		}
	}
	m.SetObjective(obj, true)
}

// extractAssignment decodes every vertex's solved bit values into its
// chosen leaf, building the returned dataflow.V2S.
func extractAssignment(m *ilp.Model, bits map[*dataflow.Vertex][]ilp.VarID, leaves []*slot.Slot, numBits int) (dataflow.V2S, error) {
	out := make(dataflow.V2S, len(bits))
	for v, vBits := range bits {
		idx := 0
		for j := 0; j < numBits; j++ {
			val, err := m.Value(vBits[j])
			if err != nil {
				return nil, err
			}
			bit := 0
			if val > 0.5 {
				bit = 1
			}
			idx = idx<<1 | bit
		}
		out[v] = leaves[idx]
	}
	return out, nil
}
