// Package coordpq is the min-heap keyed by (float32 cost, Coord) that the
// best-first route finders (A*, Dijkstra, Greedy-Best-First, Weighted A*,
// SMA*) and Fast-Marching's narrow band use as their open set: equal-cost
// entries pop in push order, and an out-of-date entry can be retired by
// (cost, coord). D*-Lite keeps its own open queue in package dstarlite.
//
// Grounded on the teacher's container/heap-backed priority queues
// (dijkstra.nodePQ, graph.edgePQ) and spec.md §4.4/§9 — Go's
// container/heap alone does not preserve insertion order among equal
// keys, so each entry carries an incrementing sequence number that breaks
// ties exactly the way spec.md §9 prescribes.
package coordpq
