package partition

import (
	"context"
	"math"

	"github.com/katalvlaran/slrfloorplan/dataflow"
	"github.com/katalvlaran/slrfloorplan/slot"
)

// RetryDelta and RetryHardLimit are the defaults from the original
// implementation's retry loop.
const (
	RetryDelta     = 0.02
	RetryHardLimit = 2.0
)

// FourWayWithRetry repeatedly relaxes the area cap by RetryDelta starting
// from refUsageRatio until FourWay finds a mapping or the cap reaches
// RetryHardLimit, returning the accepted area cap alongside the mapping.
// The relaxation is monotone, so termination is guaranteed.
func FourWayWithRetry(
	ctx context.Context,
	vertices []*dataflow.Vertex,
	mgr *slot.Manager,
	grouping [][]*dataflow.Vertex,
	preAssignments map[*dataflow.Vertex]*slot.Slot,
	refUsageRatio float64,
	opts FourWayOptions,
) (dataflow.V2S, float64, error) {
	area := refUsageRatio
	for {
		trial := opts
		trial.MaxAreaRatio = area

		v2s, err := FourWay(ctx, vertices, mgr, grouping, preAssignments, trial)
		if err != nil {
			return nil, area, err
		}
		if len(v2s) > 0 {
			return v2s, area, nil
		}

		area = round2(area + RetryDelta)
		if area >= RetryHardLimit {
			return dataflow.V2S{}, area, nil
		}
	}
}

// round2 rounds x to two decimal places, matching the original loop's
// `round(area + delta, 2)` step.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
