// Package search implements the outer two-phase binary search that drives
// a partition probe (partition.FourWay or partition.EightWay, wrapped as a
// PartitionerFunc) toward the tightest area cap and crossing cap a device
// can sustain.
//
// Two strategies share one bisection primitive: AreaPrioritized searches
// the area cap first, then the crossing cap at the area optimum it found;
// CrossingPrioritized swaps that order. Each probe is independent — a
// fresh partition.FourWay/EightWay call — so the search itself holds no
// state beyond the current [lo, hi] bracket and the best mapping seen.
package search
