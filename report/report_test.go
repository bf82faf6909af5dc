package report

import (
	"testing"

	"github.com/katalvlaran/slrfloorplan/dataflow"
	"github.com/katalvlaran/slrfloorplan/slot"
)

func TestSummarize_AggregatesPerLeaf(t *testing.T) {
	leaf, err := slot.New(0, 0, 1, 1, slot.ResourceVector{slot.LUT: 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := &dataflow.Vertex{Name: "A", Area: slot.ResourceVector{slot.LUT: 50}}
	b := &dataflow.Vertex{Name: "B", Area: slot.ResourceVector{slot.LUT: 30}, InboundFIFOArea: slot.ResourceVector{slot.LUT: 20}}
	v2s := dataflow.V2S{a: leaf, b: leaf}

	util := Summarize(v2s)
	if len(util.Leaves) != 1 {
		t.Fatalf("got %d leaves; want 1", len(util.Leaves))
	}

	var lutUsage ResourceUsage
	for _, r := range util.Leaves[0].Resources {
		if r.Resource == slot.LUT {
			lutUsage = r
		}
	}
	if lutUsage.Used != 100 {
		t.Errorf("LUT used = %d; want 100 (50+30+20)", lutUsage.Used)
	}
	if lutUsage.Ratio != 0.5 {
		t.Errorf("LUT ratio = %v; want 0.5", lutUsage.Ratio)
	}
}

func TestCrossingSummary(t *testing.T) {
	left, _ := slot.New(0, 0, 1, 1, nil)
	right, _ := slot.New(1, 0, 2, 1, nil)

	a := &dataflow.Vertex{Name: "A"}
	b := &dataflow.Vertex{Name: "B"}
	e := &dataflow.Edge{Src: a, Dst: b, Width: 64}
	v2s := dataflow.V2S{a: left, b: right}

	classify := func(s *slot.Slot) bool {
		x, _ := s.DownLeft()
		return x > 0
	}

	summary := CrossingSummary("boundary", []*dataflow.Edge{e}, v2s, classify, 1000)
	if summary.Used != 64 {
		t.Errorf("Used = %d; want 64", summary.Used)
	}
	if summary.Ratio != 0.064 {
		t.Errorf("Ratio = %v; want 0.064", summary.Ratio)
	}
}
