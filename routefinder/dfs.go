package routefinder

import (
	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/route"
)

// DFS finds *a* route from start to goal by depth-first traversal. It
// makes no optimality guarantee — the returned path can be arbitrarily
// longer than necessary — and exists for completeness/comparison with the
// other finders, not for production pathing.
//
// Grounded on original_source/byul/navsys/route_finder/modules/dfs.h and
// the teacher's graph.DFS traversal shape, using an explicit stack instead
// of recursion to respect MaxRetry deterministically.
func DFS(grid *navgrid.NavGrid, start, goal coord.Coord, opts *Options) (*route.Route, error) {
	if err := validateGrid(grid); err != nil {
		return nil, err
	}
	if start.Equal(goal) {
		return sameStartGoal(start), nil
	}

	visited := coord.NewCoordHash[struct{}]()
	cameFrom := coord.NewCoordHash[coord.Coord]()
	stack := []coord.Coord{start}
	visited.Insert(start, struct{}{})

	r := route.New()
	count := 0
	limit := opts.maxRetry()
	best := start

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if opts.keepVisited() {
			r.RecordVisit(current)
		}
		best = current

		if current.Equal(goal) {
			r.Reconstruct(cameFrom, start, goal)
			r.Success = true
			r.Cost = float32(r.Coords.Len() - 1)
			r.TotalRetryCount = count
			return r, nil
		}

		count++
		if retryExceeded(limit, count) {
			break
		}

		for _, next := range grid.Neighbors(current) {
			if visited.Contains(next) {
				continue
			}
			visited.Insert(next, struct{}{})
			cameFrom.Insert(next, current)
			stack = append(stack, next)
		}
	}

	r.TotalRetryCount = count
	r.Success = false
	r.Reconstruct(cameFrom, start, best)
	return r, nil
}
