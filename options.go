package slrfloorplan

import (
	"time"

	"github.com/katalvlaran/slrfloorplan/report"
	"github.com/katalvlaran/slrfloorplan/search"
)

// PartitionMethod selects the bipartition ILP formulation.
type PartitionMethod int

const (
	EightWay PartitionMethod = iota
	FourWay
)

func (m PartitionMethod) String() string {
	if m == FourWay {
		return "FOUR_WAY"
	}
	return "EIGHT_WAY"
}

// Options configures a top-level Partition call.
type Options struct {
	MinArea, MaxArea         float64
	MinCrossing, MaxCrossing float64
	MaxSearchTime            time.Duration

	PartitionMethod PartitionMethod
	SearchPriority  search.Priority

	// Sink receives progress/diagnostic events. A nil Sink is treated as
	// report.NoopSink.
	Sink report.EventSink
}

// DefaultOptions returns the defaults carried over from the original
// implementation's partition() entry point.
func DefaultOptions() Options {
	return Options{
		MinArea:         0.65,
		MaxArea:         0.85,
		MinCrossing:     10000,
		MaxCrossing:     15000,
		MaxSearchTime:   600 * time.Second,
		PartitionMethod: EightWay,
		SearchPriority:  search.AreaPriority,
		Sink:            report.NoopSink{},
	}
}

func (o Options) sink() report.EventSink {
	if o.Sink == nil {
		return report.NoopSink{}
	}
	return o.Sink
}
