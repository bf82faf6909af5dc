package search

import "github.com/katalvlaran/slrfloorplan/dataflow"

// probeFn runs one probe at bound value x.
type probeFn func(x float64) (dataflow.V2S, error)

// bisectMinimize finds the smallest feasible x in [lo, hi] at which probe
// succeeds, narrowing the bracket until it is tighter than threshold.
//
// State machine per probe: PROBE -> SOLVE -> (FEASIBLE: shrink hi, keep
// mapping) | (INFEASIBLE: raise lo) -> next probe or TERMINATE. This
// mirrors the source's _binary_search_area_limit /
// _binary_search_slr_crossing_limit, generalized over the bound type
// (float64 for area ratio, float64 for the crossing width so the same
// primitive serves both — the crossing search's lo/hi just happen to be
// integer-valued).
func bisectMinimize(lo, hi, threshold float64, probe probeFn) (dataflow.V2S, float64, error) {
	var (
		best    dataflow.V2S
		bestX   = hi
		haveOne bool
	)

	for hi-lo >= threshold {
		mid := (lo + hi) / 2

		v2s, err := probe(mid)
		if err != nil {
			return nil, 0, err
		}

		if len(v2s) > 0 {
			best = v2s
			bestX = mid
			haveOne = true
			hi = mid
		} else {
			lo = mid
		}
	}

	if !haveOne {
		return dataflow.V2S{}, hi, nil
	}

	return best, bestX, nil
}
