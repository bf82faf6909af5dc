// Package dataflow models the application's dataflow graph: Vertex values
// carry the resource area a hardware module occupies, Edge values carry the
// FIFO width crossing between two modules, and Graph ties them together
// behind a read-write lock the way core.Graph does.
//
// V2S is the assignment a partitioner searches over: a mapping from every
// Vertex to the slot.Slot it is placed in.
package dataflow
