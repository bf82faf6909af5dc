package dataflow

import "errors"

// ErrCyclicGraph indicates DetectCycle found a directed cycle.
var ErrCyclicGraph = errors.New("dataflow: graph contains a cycle")

// vertex color states for the three-color DFS cycle check.
const (
	white = 0
	gray  = 1
	black = 2
)

// DetectCycle reports whether g contains a directed cycle, using a
// three-color depth-first search: white is unvisited, gray is on the
// current recursion stack, black is fully explored. A gray-to-gray edge
// is a back edge and closes a cycle. Vertices are visited in g.Vertices()
// order so the result (cycle-found or not) is independent of map
// iteration order.
//
// A pipeline with a feedback edge has no well-defined bundled-area
// accounting: DetectCycle lets callers reject such graphs before
// partitioning rather than let the ILP formulations silently misbehave
// on them.
func (g *Graph) DetectCycle() error {
	color := make(map[*Vertex]int, len(g.vertices))
	var visit func(v *Vertex) error
	visit = func(v *Vertex) error {
		color[v] = gray
		for _, e := range v.OutEdges {
			switch color[e.Dst] {
			case white:
				if err := visit(e.Dst); err != nil {
					return err
				}
			case gray:
				return ErrCyclicGraph
			}
		}
		color[v] = black
		return nil
	}

	for _, v := range g.Vertices() {
		if color[v] == white {
			if err := visit(v); err != nil {
				return err
			}
		}
	}

	return nil
}
