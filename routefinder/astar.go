package routefinder

import (
	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/route"
)

// AStar finds a route from start to goal using f(n) = g(n) + h(n).
//
// Grounded on original_source/byul/navsys/route_finder/modules/a_star.h.
func AStar(grid *navgrid.NavGrid, start, goal coord.Coord, opts *Options) (*route.Route, error) {
	cost := opts.costFn()
	h := opts.heuristicFn()
	return weightedSearch(grid, start, goal, cost, func(g float32, node, goal coord.Coord) float32 {
		return g + h(node, goal)
	}, opts)
}

// WeightedAStar finds a route using f(n) = g(n) + weight*h(n). weight>1
// trades optimality for speed; weight<=0 is coerced to 1, behaving like
// plain AStar.
//
// Grounded on original_source/byul/navsys/route_finder/modules/weighted_astar.h.
func WeightedAStar(grid *navgrid.NavGrid, start, goal coord.Coord, weight float32, opts *Options) (*route.Route, error) {
	if weight <= 0 {
		weight = 1
	}
	cost := opts.costFn()
	h := opts.heuristicFn()
	return weightedSearch(grid, start, goal, cost, func(g float32, node, goal coord.Coord) float32 {
		return g + weight*h(node, goal)
	}, opts)
}
