// Package slot models the physical device as a hierarchy of axis-aligned
// rectangular regions ("slots") over a grid of Super Logic Regions (SLRs),
// and the per-resource capacity each region carries.
//
// A Slot is immutable once produced: Manager owns the root slot and derives
// leaves by repeatedly bipartitioning along a caller-chosen axis
// (Horizontal or Vertical), caching the leaves for a given partition order
// so repeated calls with the same order are O(1) after the first.
//
// Capacity is modeled as a ResourceVector, the same vocabulary dataflow
// uses for vertex area: a slot's capacity and a vertex's area are
// commensurable so partition can compare Σarea against capacity·ratio.
package slot
