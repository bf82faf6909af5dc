package report

import (
	"sort"

	"github.com/katalvlaran/slrfloorplan/dataflow"
	"github.com/katalvlaran/slrfloorplan/slot"
)

// ResourceUsage is one leaf's usage of one resource type.
type ResourceUsage struct {
	Resource slot.ResourceType
	Used     int64
	Capacity int64
	Ratio    float64
}

// LeafUsage is the full per-resource breakdown for one leaf slot.
type LeafUsage struct {
	Leaf      *slot.Slot
	Resources []ResourceUsage
}

// Utilization is the complete summary of a solved dataflow.V2S: one
// LeafUsage per occupied leaf, sorted for deterministic output.
type Utilization struct {
	Leaves []LeafUsage
}

// Summarize computes the per-leaf, per-resource utilization of v2s. Every
// distinct *slot.Slot appearing as a value in v2s gets one LeafUsage
// entry, even if several vertices share it.
func Summarize(v2s dataflow.V2S) Utilization {
	type accum struct {
		leaf  *slot.Slot
		usage map[slot.ResourceType]int64
	}
	byLeaf := make(map[*slot.Slot]*accum)

	for v, leaf := range v2s {
		a, ok := byLeaf[leaf]
		if !ok {
			a = &accum{leaf: leaf, usage: make(map[slot.ResourceType]int64)}
			byLeaf[leaf] = a
		}
		bundled := v.BundledArea()
		for _, r := range slot.RESOURCE_TYPES {
			a.usage[r] += bundled.Get(r)
		}
	}

	leaves := make([]*accum, 0, len(byLeaf))
	for _, a := range byLeaf {
		leaves = append(leaves, a)
	}
	sort.Slice(leaves, func(i, j int) bool {
		xi, yi := leaves[i].leaf.DownLeft()
		xj, yj := leaves[j].leaf.DownLeft()
		if xi != xj {
			return xi < xj
		}
		return yi < yj
	})

	out := Utilization{Leaves: make([]LeafUsage, 0, len(leaves))}
	for _, a := range leaves {
		lu := LeafUsage{Leaf: a.leaf, Resources: make([]ResourceUsage, 0, len(slot.RESOURCE_TYPES))}
		for _, r := range slot.RESOURCE_TYPES {
			capacity := a.leaf.Capacity().Get(r)
			used := a.usage[r]
			var ratio float64
			if capacity > 0 {
				ratio = float64(used) / float64(capacity)
			}
			lu.Resources = append(lu.Resources, ResourceUsage{Resource: r, Used: used, Capacity: capacity, Ratio: ratio})
		}
		out.Leaves = append(out.Leaves, lu)
	}

	return out
}

// BoundaryCrossing is the usage/limit summary for one inter-SLR boundary.
type BoundaryCrossing struct {
	Name  string
	Used  int64
	Limit int64
	Ratio float64
}

// CrossingSummary computes, for each named boundary, the total width of
// edges whose endpoints fall on opposite sides of it, against the supplied
// limit. classify reports which side of the boundary leaf belongs to.
func CrossingSummary(name string, edges []*dataflow.Edge, v2s dataflow.V2S, classify func(*slot.Slot) bool, limit int64) BoundaryCrossing {
	var used int64
	for _, e := range edges {
		srcSide := classify(v2s[e.Src])
		dstSide := classify(v2s[e.Dst])
		if srcSide != dstSide {
			used += int64(e.Width)
		}
	}
	var ratio float64
	if limit > 0 {
		ratio = float64(used) / float64(limit)
	}
	return BoundaryCrossing{Name: name, Used: used, Limit: limit, Ratio: ratio}
}
