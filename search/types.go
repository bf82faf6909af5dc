package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/slrfloorplan/dataflow"
)

// ErrUnsupportedPriority indicates an unrecognized Priority value.
var ErrUnsupportedPriority = errors.New("search: unsupported floorplan optimization priority")

// Priority selects which bound the outer search tightens first.
type Priority int

const (
	AreaPriority Priority = iota
	SLRCrossingPrioritized
)

func (p Priority) String() string {
	if p == SLRCrossingPrioritized {
		return "SLR_CROSSING_PRIORITIZED"
	}
	return "AREA_PRIORITIZED"
}

// PartitionerFunc runs one partition probe at the given area ratio and
// crossing-width limit (the limit applies uniformly across whichever
// boundaries the underlying partitioner — four-way or eight-way — exposes)
// and reports the resulting assignment. An empty, nil-error dataflow.V2S
// means the probe was infeasible or timed out.
type PartitionerFunc func(ctx context.Context, areaRatio float64, crossingLimit float64) (dataflow.V2S, error)

// areaThreshold and crossingThreshold are the binary search termination
// thresholds spec.md fixes: area search stops once the bracket narrows
// below 0.01, crossing search once it narrows below 500.
const (
	areaThreshold     = 0.01
	crossingThreshold = 500
)
