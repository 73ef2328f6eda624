package routefinder

import (
	"math"

	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/route"
)

// IDAStar finds an optimal route from start to goal using Iterative
// Deepening A*: repeated depth-first searches bounded by a growing f =
// g+h threshold, trading the open/closed-set memory of AStar for
// re-exploration. If opts.HeuristicFn is nil this defaults to
// ManhattanHeuristic (the original source notes Manhattan converges in
// far fewer iterations than Euclidean on this algorithm specifically).
// opts.MaxRetry bounds the number of threshold-deepening iterations, not
// node expansions.
//
// Grounded on original_source/byul/navsys/route_finder/ida_star.h.
func IDAStar(grid *navgrid.NavGrid, start, goal coord.Coord, opts *Options) (*route.Route, error) {
	if err := validateGrid(grid); err != nil {
		return nil, err
	}
	if start.Equal(goal) {
		return sameStartGoal(start), nil
	}

	cost := opts.costFn()
	h := opts.heuristicFn()
	if opts == nil || opts.HeuristicFn == nil {
		h = ManhattanHeuristic
	}
	limit := opts.maxRetry()

	r := route.New()
	threshold := h(start, goal)
	onPath := coord.NewCoordHash[struct{}]()
	onPath.Insert(start, struct{}{})
	path := coord.NewCoordList()
	path.Push(start)

	iterations := 0
	for {
		iterations++
		if retryExceeded(limit, iterations) {
			break
		}
		nextThreshold := float32(math.MaxFloat32)
		var foundCost float32
		if idaVisit(grid, start, goal, 0, threshold, cost, h, path, onPath, r, opts, &nextThreshold, &foundCost) {
			r.Coords = path
			r.Success = true
			r.Cost = foundCost
			r.TotalRetryCount = iterations
			return r, nil
		}
		if nextThreshold == float32(math.MaxFloat32) {
			break // search space exhausted, no path exists
		}
		threshold = nextThreshold
	}

	r.TotalRetryCount = iterations
	r.Success = false
	r.Coords = path
	return r, nil
}

func idaVisit(grid *navgrid.NavGrid, current, goal coord.Coord, g, threshold float32, cost CostFunc, h HeuristicFunc, path *coord.CoordList, onPath *coord.CoordHash[struct{}], r *route.Route, opts *Options, nextThreshold, foundCost *float32) bool {
	f := g + h(current, goal)
	if f > threshold {
		if f < *nextThreshold {
			*nextThreshold = f
		}
		return false
	}
	if opts.keepVisited() {
		r.RecordVisit(current)
	}
	if current.Equal(goal) {
		*foundCost = g
		return true
	}

	for _, next := range grid.Neighbors(current) {
		if onPath.Contains(next) {
			continue
		}
		onPath.Insert(next, struct{}{})
		path.Push(next)
		if idaVisit(grid, next, goal, g+cost(current, next), threshold, cost, h, path, onPath, r, opts, nextThreshold, foundCost) {
			return true
		}
		path.Pop()
		onPath.Remove(next)
	}
	return false
}
