// Package slrfloorplan places a dataflow graph's vertices onto the SLR
// (Super Logic Region) slots of a multi-die FPGA, by driving an exact
// ILP-based bipartition (package partition, built on package ilp) through
// a two-phase binary search over area and inter-SLR crossing budgets
// (package search).
//
// slot models the device as a hierarchy of rectangular regions; dataflow
// models the application graph being placed; ilp is a small from-scratch
// mixed binary/integer linear solver; partition builds the four-way and
// eight-way ILP formulations on top of it; search drives partition
// through AREA_PRIORITIZED or SLR_CROSSING_PRIORITIZED bisection; report
// summarizes a solved assignment's utilization.
//
// Partition is the single entry point most callers need:
//
//	v2s, err := slrfloorplan.Partition(ctx, initV2S, mgr, grouping, preAssignments, slrfloorplan.DefaultOptions())
package slrfloorplan
