// Package routefinder implements byul's family of grid route finders —
// A*, Dijkstra, BFS, DFS, Greedy-Best-First, Weighted A*, IDA*, SMA*,
// Fringe Search, Fast-Marching, and RTA* — all sharing one surface: a
// NavGrid, a start/goal pair, optional cost and heuristic functions, and
// algorithm-specific options, producing a route.Route that always has
// Success set (on failure, most finders return a best-effort partial path
// for debugging; Fast-Marching's failed route carries no path). RTA* is
// the exception: it returns one step at a time rather than a Route.
//
// Grounded on original_source/byul/route_finder/route_finder_common.cpp
// (cost/heuristic functions) and the per-algorithm headers under
// original_source/byul/navsys/route_finder/, styled after the teacher's
// dijkstra.Dijkstra (functional options, container/heap open sets,
// numbered precondition checks) and graph.BFS/DFS (traversal shape).
package routefinder

import (
	"math"

	"github.com/jrjojr/byul/coord"
)

// DiagonalCost is √2, the cost of a diagonal grid step.
const DiagonalCost = 1.41421356

// CostFunc returns the cost of moving from a to b.
type CostFunc func(a, b coord.Coord) float32

// HeuristicFunc estimates the remaining cost from a to b.
type HeuristicFunc func(a, b coord.Coord) float32

// DefaultCost always returns 1.
func DefaultCost(a, b coord.Coord) float32 { return 1 }

// ZeroCost always returns 0.
func ZeroCost(a, b coord.Coord) float32 { return 0 }

// DiagonalCostFn returns 1 for a cardinal step, √2 for a diagonal one.
func DiagonalCostFn(a, b coord.Coord) float32 {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	if dx != 0 && dy != 0 {
		return DiagonalCost
	}
	return 1
}

// EuclideanHeuristic is the straight-line distance.
func EuclideanHeuristic(a, b coord.Coord) float32 {
	dx, dy := float32(a.X-b.X), float32(a.Y-b.Y)
	return sqrt32(dx*dx + dy*dy)
}

// ManhattanHeuristic is |dx|+|dy|.
func ManhattanHeuristic(a, b coord.Coord) float32 {
	return float32(absInt(a.X-b.X) + absInt(a.Y-b.Y))
}

// ChebyshevHeuristic is max(|dx|,|dy|).
func ChebyshevHeuristic(a, b coord.Coord) float32 {
	return float32(maxInt(absInt(a.X-b.X), absInt(a.Y-b.Y)))
}

// OctileHeuristic is max(dx,dy) + (√2-1)·min(dx,dy), admissible for
// 8-connected grids with diagonal cost √2.
func OctileHeuristic(a, b coord.Coord) float32 {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	const f = 0.41421356
	return float32(maxInt(dx, dy)) + f*float32(minInt(dx, dy))
}

// ZeroHeuristic always returns 0 (turns A* into Dijkstra).
func ZeroHeuristic(a, b coord.Coord) float32 { return 0 }

// DefaultHeuristic is EuclideanHeuristic.
func DefaultHeuristic(a, b coord.Coord) float32 { return EuclideanHeuristic(a, b) }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
