package routefinder

import (
	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/route"
)

// Dijkstra finds a minimum-cost route from start to goal using f(n) =
// g(n), i.e. AStar with the heuristic forced to zero.
//
// Grounded on original_source/byul/navsys/route_finder/modules/dijkstra.h
// and the teacher's dijkstra.Dijkstra.
func Dijkstra(grid *navgrid.NavGrid, start, goal coord.Coord, opts *Options) (*route.Route, error) {
	cost := opts.costFn()
	return weightedSearch(grid, start, goal, cost, func(g float32, node, goal coord.Coord) float32 {
		return g
	}, opts)
}

// Greedy finds a route from start to goal using f(n) = h(n), ignoring the
// accumulated path cost entirely. Fast but not guaranteed optimal.
//
// Grounded on original_source/byul/navsys/route_finder/modules/greedy_best_first.h.
func Greedy(grid *navgrid.NavGrid, start, goal coord.Coord, opts *Options) (*route.Route, error) {
	cost := opts.costFn()
	h := opts.heuristicFn()
	return weightedSearch(grid, start, goal, cost, func(g float32, node, goal coord.Coord) float32 {
		return h(node, goal)
	}, opts)
}
