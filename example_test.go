package slrfloorplan_test

import (
	"context"
	"testing"

	slrfloorplan "github.com/katalvlaran/slrfloorplan"
	"github.com/katalvlaran/slrfloorplan/dataflow"
	"github.com/katalvlaran/slrfloorplan/slot"
)

// TestPartition_TrivialTwoVertex drives the full Partition entry point
// (search + partition + ilp) against scenario S1: two vertices, one edge,
// four leaves of 1000 LUT each with every vertex taking 10% of a leaf, so
// there is ample area and crossing headroom. The optimum must co-locate
// them.
func TestPartition_TrivialTwoVertex(t *testing.T) {
	root, err := slot.New(0, 0, 4, 4, slot.ResourceVector{slot.LUT: 4000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mgr := slot.NewManager(root)

	a := &dataflow.Vertex{Name: "A", Area: slot.ResourceVector{slot.LUT: 100}}
	b := &dataflow.Vertex{Name: "B", Area: slot.ResourceVector{slot.LUT: 100}}
	a.OutEdges = []*dataflow.Edge{{Src: a, Dst: b, Width: 100}}
	b.InEdges = a.OutEdges

	initV2S := dataflow.V2S{a: root, b: root}

	opts := slrfloorplan.DefaultOptions()
	opts.PartitionMethod = slrfloorplan.FourWay
	opts.MinArea = 0.5
	opts.MaxArea = 0.9
	opts.MinCrossing = 0
	opts.MaxCrossing = 1000

	v2s, err := slrfloorplan.Partition(context.Background(), initV2S, mgr, nil, nil, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v2s) == 0 {
		t.Fatalf("expected a non-empty mapping")
	}
	if !v2s[a].Equal(v2s[b]) {
		t.Errorf("expected A and B to share a leaf")
	}
}

// TestPartition_UnsupportedMethod verifies the configuration-error path
// for an unrecognized PartitionMethod.
func TestPartition_UnsupportedMethod(t *testing.T) {
	root, err := slot.New(0, 0, 4, 4, slot.ResourceVector{slot.LUT: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mgr := slot.NewManager(root)

	a := &dataflow.Vertex{Name: "A", Area: slot.ResourceVector{slot.LUT: 10}}
	initV2S := dataflow.V2S{a: root}

	opts := slrfloorplan.DefaultOptions()
	opts.PartitionMethod = slrfloorplan.PartitionMethod(99)

	_, err = slrfloorplan.Partition(context.Background(), initV2S, mgr, nil, nil, opts)
	if err != slrfloorplan.ErrUnsupportedPartitionMethod {
		t.Errorf("error = %v; want %v", err, slrfloorplan.ErrUnsupportedPartitionMethod)
	}
}
