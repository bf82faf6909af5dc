package partition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slrfloorplan/dataflow"
	"github.com/katalvlaran/slrfloorplan/partition"
	"github.com/katalvlaran/slrfloorplan/slot"
)

func TestEightWay_TrivialCoLocation(t *testing.T) {
	root, err := slot.New(0, 0, 8, 8, slot.ResourceVector{slot.LUT: 1000})
	require.NoError(t, err)
	mgr := slot.NewManager(root)

	g := dataflow.NewGraph()
	a := &dataflow.Vertex{Name: "A", Area: slot.ResourceVector{slot.LUT: 50}}
	b := &dataflow.Vertex{Name: "B", Area: slot.ResourceVector{slot.LUT: 50}}
	require.NoError(t, g.AddVertex(a))
	require.NoError(t, g.AddVertex(b))
	_, err = g.AddEdge(a, b, 50)
	require.NoError(t, err)

	opts := partition.DefaultEightWayOptions()
	v2s, err := partition.EightWay(context.Background(), g.Vertices(), mgr, nil, nil, opts)
	require.NoError(t, err)
	require.NotEmpty(t, v2s)
	require.True(t, v2s[a].Equal(v2s[b]))
}
