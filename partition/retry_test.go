package partition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slrfloorplan/dataflow"
	"github.com/katalvlaran/slrfloorplan/partition"
	"github.com/katalvlaran/slrfloorplan/slot"
)

// TestFourWayWithRetry_Escalates is scenario S5: a ratio of 0.70 is
// infeasible but the vertices fit comfortably once the cap relaxes past
// their actual usage, so the retry loop must climb past the starting
// ratio before succeeding.
func TestFourWayWithRetry_Escalates(t *testing.T) {
	root, err := slot.New(0, 0, 4, 4, slot.ResourceVector{slot.LUT: 3840})
	require.NoError(t, err)
	mgr := slot.NewManager(root)

	g := dataflow.NewGraph()
	// Every leaf has capacity 960 (3840/4); the three grouped vertices (240
	// each, 720 together) must share one leaf, which needs a ratio of 0.75:
	// they do not fit at 0.70 (672), 0.72 (691.2) or 0.74 (710.4), and do
	// at 0.76 (729.6), three increments later.
	names := []string{"A", "B", "C"}
	var vs []*dataflow.Vertex
	for _, n := range names {
		v := &dataflow.Vertex{Name: n, Area: slot.ResourceVector{slot.LUT: 240}}
		require.NoError(t, g.AddVertex(v))
		vs = append(vs, v)
	}

	opts := partition.DefaultFourWayOptions()
	grouping := [][]*dataflow.Vertex{vs}

	v2s, area, err := partition.FourWayWithRetry(context.Background(), g.Vertices(), mgr, grouping, nil, 0.70, opts)
	require.NoError(t, err)
	require.NotEmpty(t, v2s)
	require.GreaterOrEqual(t, area, 0.70)
	require.Less(t, area, partition.RetryHardLimit)
}

// TestFourWayWithRetry_HardLimit is scenario S6 under the retry loop:
// total area so far exceeds the device even at the hard limit.
func TestFourWayWithRetry_HardLimit(t *testing.T) {
	root, err := slot.New(0, 0, 4, 4, slot.ResourceVector{slot.LUT: 4})
	require.NoError(t, err)
	mgr := slot.NewManager(root)

	g := dataflow.NewGraph()
	v := &dataflow.Vertex{Name: "Huge", Area: slot.ResourceVector{slot.LUT: 100000}}
	require.NoError(t, g.AddVertex(v))

	opts := partition.DefaultFourWayOptions()
	v2s, area, err := partition.FourWayWithRetry(context.Background(), g.Vertices(), mgr, nil, nil, 0.70, opts)
	require.NoError(t, err)
	require.Empty(t, v2s)
	require.GreaterOrEqual(t, area, partition.RetryHardLimit)
}
