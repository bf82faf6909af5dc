package search

import (
	"context"

	"github.com/katalvlaran/slrfloorplan/dataflow"
)

// AreaPrioritized binary-searches the minimum feasible area cap first
// (holding the crossing limit at maxCrossing), then — if that succeeds —
// binary-searches the minimum feasible crossing limit at the area cap it
// found. It returns the crossing-search mapping when that search finds
// one, otherwise falls back to the area-search mapping.
func AreaPrioritized(
	ctx context.Context,
	minArea, maxArea, minCrossing, maxCrossing float64,
	partitioner PartitionerFunc,
) (dataflow.V2S, error) {
	areaV2S, areaLimit, err := bisectMinimize(minArea, maxArea, areaThreshold, func(area float64) (dataflow.V2S, error) {
		return partitioner(ctx, area, maxCrossing)
	})
	if err != nil {
		return nil, err
	}
	if len(areaV2S) == 0 {
		return dataflow.V2S{}, nil
	}

	crossV2S, _, err := bisectMinimize(minCrossing, maxCrossing, crossingThreshold, func(cross float64) (dataflow.V2S, error) {
		return partitioner(ctx, areaLimit, cross)
	})
	if err != nil {
		return nil, err
	}
	if len(crossV2S) == 0 {
		return areaV2S, nil
	}

	return crossV2S, nil
}
