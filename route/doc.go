// Package route is the Route object produced by every routefinder and by
// dstarlite: an ordered sequence of visited coords plus a chronological
// visit log, per-coord visit counters, success/cost bookkeeping, and the
// running average-direction state used by the direction-change
// predicates.
//
// Grounded on original_source/byul/route/route.cpp.
package route
