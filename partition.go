package slrfloorplan

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/slrfloorplan/dataflow"
	"github.com/katalvlaran/slrfloorplan/partition"
	"github.com/katalvlaran/slrfloorplan/report"
	"github.com/katalvlaran/slrfloorplan/search"
	"github.com/katalvlaran/slrfloorplan/slot"
)

// ErrUnsupportedPartitionMethod indicates an unrecognized PartitionMethod.
var ErrUnsupportedPartitionMethod = errors.New("slrfloorplan: unsupported partition method")

// Partition assigns every vertex in initV2S to a leaf slot of mgr,
// honoring grouping and pre-assignment constraints, by driving the
// chosen bipartition ILP (opts.PartitionMethod) through the chosen outer
// search strategy (opts.SearchPriority).
//
// The returned dataflow.V2S is empty when the search exhausts its bounds
// without finding a feasible mapping; a non-nil error means a
// configuration mistake (unknown vertex in a grouping or pre-assignment,
// or an unrecognized option) was found before any solving began, or that
// ctx was done when a probe's solve finished.
func Partition(
	ctx context.Context,
	initV2S dataflow.V2S,
	mgr *slot.Manager,
	grouping [][]*dataflow.Vertex,
	preAssignments map[*dataflow.Vertex]*slot.Slot,
	opts Options,
) (dataflow.V2S, error) {
	sink := opts.sink()
	vertices := vertexKeys(initV2S)

	sink.Infof("partitioning %d vertices, method=%v priority=%v", len(vertices), opts.PartitionMethod, opts.SearchPriority)

	partitioner, err := buildPartitioner(ctx, vertices, mgr, grouping, preAssignments, opts, sink)
	if err != nil {
		return nil, err
	}

	var v2s dataflow.V2S
	switch opts.SearchPriority {
	case search.AreaPriority:
		v2s, err = search.AreaPrioritized(ctx, opts.MinArea, opts.MaxArea, opts.MinCrossing, opts.MaxCrossing, partitioner)
	case search.SLRCrossingPrioritized:
		v2s, err = search.CrossingPrioritized(ctx, opts.MinArea, opts.MaxArea, opts.MinCrossing, opts.MaxCrossing, partitioner)
	default:
		return nil, search.ErrUnsupportedPriority
	}
	if err != nil {
		return nil, err
	}

	if len(v2s) == 0 {
		sink.Infof("partition failed within bounds [%v,%v] area, [%v,%v] crossing", opts.MinArea, opts.MaxArea, opts.MinCrossing, opts.MaxCrossing)
		return dataflow.V2S{}, nil
	}

	sink.Infof("partition succeeded")
	return v2s, nil
}

// buildPartitioner adapts partition.FourWay/EightWay into the
// search.PartitionerFunc shape, fixing every argument except the probe's
// area ratio and crossing limit.
func buildPartitioner(
	ctx context.Context,
	vertices []*dataflow.Vertex,
	mgr *slot.Manager,
	grouping [][]*dataflow.Vertex,
	preAssignments map[*dataflow.Vertex]*slot.Slot,
	opts Options,
	sink report.EventSink,
) (search.PartitionerFunc, error) {
	switch opts.PartitionMethod {
	case FourWay:
		base := partition.DefaultFourWayOptions()
		base.MaxSearchTime = opts.MaxSearchTime
		return func(ctx context.Context, area, cross float64) (dataflow.V2S, error) {
			trial := base
			trial.MaxAreaRatio = area
			limit := int(cross)
			trial.PerBoundaryCrossingLimits = [3]int{limit, limit, limit}
			sink.Debugf("probe four-way area=%.4f crossing=%d", area, limit)
			return partition.FourWay(ctx, vertices, mgr, grouping, preAssignments, trial)
		}, nil
	case EightWay:
		base := partition.DefaultEightWayOptions()
		base.MaxSearchTime = opts.MaxSearchTime
		return func(ctx context.Context, area, cross float64) (dataflow.V2S, error) {
			trial := base
			trial.MaxAreaRatio = area
			limit := int(cross)
			trial.PerBoundaryCrossingLimits = [3]int{limit, limit, limit}
			sink.Debugf("probe eight-way area=%.4f crossing=%d", area, limit)
			return partition.EightWay(ctx, vertices, mgr, grouping, preAssignments, trial)
		}, nil
	default:
		return nil, ErrUnsupportedPartitionMethod
	}
}

// vertexKeys returns v2s's keys sorted by name for deterministic
// downstream variable/constraint creation order.
func vertexKeys(v2s dataflow.V2S) []*dataflow.Vertex {
	out := make([]*dataflow.Vertex, 0, len(v2s))
	for v := range v2s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
