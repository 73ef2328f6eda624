// Package dstarlite is the incremental D*-Lite planner (Koenig-Likhachev
// optimized D*-Lite) and its tick-driven executor: the planner maintains
// g/rhs estimates and a lexicographically-keyed priority queue so that
// replanning after a handful of blocked-cell changes touches only the
// vertices whose shortest-route estimate actually changed, instead of
// rerunning a full search; the executor ties one planner instance to a
// tick.Tick scheduler with a unit-distance/speed movement model.
//
// Grounded on spec.md §4.7 for the planner core (no original_source
// dstar_lite.cpp/.h was retrieved for this pack — Koenig-Likhachev D*-Lite
// is a standard, fully-specified algorithm, so the planner is built
// directly from the spec's normative key/update_vertex/
// compute_shortest_route description) and on
// original_source/byul/navsys/dstar_lite/dstar_lite_tick.cpp for the
// executor (prepare/prepare_full/update/complete state machine, MAX_STEP
// bound, movement-rate accounting).
package dstarlite
