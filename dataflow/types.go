package dataflow

import (
	"errors"

	"github.com/katalvlaran/slrfloorplan/slot"
)

// Sentinel errors for the dataflow package.
var (
	// ErrEmptyVertexName indicates a Vertex was added with an empty Name.
	ErrEmptyVertexName = errors.New("dataflow: vertex name is empty")
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("dataflow: vertex not found")
	// ErrDuplicateVertex indicates AddVertex was called twice for the same name.
	ErrDuplicateVertex = errors.New("dataflow: vertex already exists")
	// ErrUnknownEdgeEndpoint indicates AddEdge referenced a vertex not yet added.
	ErrUnknownEdgeEndpoint = errors.New("dataflow: edge endpoint not found")
)

// Vertex is one hardware module (a Vivado HLS/RTL pipeline stage) in the
// dataflow graph. Area is the module's own resource footprint;
// InboundFIFOArea is the resource footprint of FIFOs feeding its inbound
// edges, which the partitioner charges to the consumer per spec rather than
// splitting between producer and consumer.
type Vertex struct {
	Name string

	Area            slot.ResourceVector
	InboundFIFOArea slot.ResourceVector

	InEdges  []*Edge
	OutEdges []*Edge
}

// BundledArea returns Area plus InboundFIFOArea: the quantity partition
// compares against slot capacity when deciding whether v fits a slot.
func (v *Vertex) BundledArea() slot.ResourceVector {
	if v == nil {
		return nil
	}
	return v.Area.Add(v.InboundFIFOArea)
}

// Edge is a directed dataflow connection between two vertices, carrying
// Width bits of FIFO crossing. Width contributes to the SLR-crossing count
// whenever Src and Dst end up in slots on opposite sides of a device
// boundary.
type Edge struct {
	Src, Dst *Vertex
	Width    int
}

// V2S is a complete assignment of vertices to slots: the object a
// partitioner searches over and a report summarizes.
type V2S map[*Vertex]*slot.Slot
