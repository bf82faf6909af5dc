package search

import (
	"context"

	"github.com/katalvlaran/slrfloorplan/dataflow"
)

// CrossingPrioritized mirrors AreaPrioritized with the two searches
// swapped: crossing limit first (at maxArea), then area at the crossing
// optimum it found.
func CrossingPrioritized(
	ctx context.Context,
	minArea, maxArea, minCrossing, maxCrossing float64,
	partitioner PartitionerFunc,
) (dataflow.V2S, error) {
	crossV2S, crossLimit, err := bisectMinimize(minCrossing, maxCrossing, crossingThreshold, func(cross float64) (dataflow.V2S, error) {
		return partitioner(ctx, maxArea, cross)
	})
	if err != nil {
		return nil, err
	}
	if len(crossV2S) == 0 {
		return dataflow.V2S{}, nil
	}

	areaV2S, _, err := bisectMinimize(minArea, maxArea, areaThreshold, func(area float64) (dataflow.V2S, error) {
		return partitioner(ctx, area, crossLimit)
	})
	if err != nil {
		return nil, err
	}
	if len(areaV2S) == 0 {
		return crossV2S, nil
	}

	return areaV2S, nil
}
