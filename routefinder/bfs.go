package routefinder

import (
	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/route"
)

// BFS finds a route from start to goal by breadth-first traversal,
// treating every edge as unit cost regardless of opts.CostFn. Optimal on
// unweighted grids, and always terminates since every cell is visited at
// most once.
//
// Grounded on original_source/byul/navsys/route_finder/modules/bfs.h and
// the teacher's graph.BFS (queue-of-frontier shape, parent map).
func BFS(grid *navgrid.NavGrid, start, goal coord.Coord, opts *Options) (*route.Route, error) {
	if err := validateGrid(grid); err != nil {
		return nil, err
	}
	if start.Equal(goal) {
		return sameStartGoal(start), nil
	}

	visited := coord.NewCoordHash[struct{}]()
	cameFrom := coord.NewCoordHash[coord.Coord]()
	queue := []coord.Coord{start}
	visited.Insert(start, struct{}{})

	r := route.New()
	count := 0
	limit := opts.maxRetry()
	best := start

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
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
			queue = append(queue, next)
		}
	}

	r.TotalRetryCount = count
	r.Success = false
	r.Reconstruct(cameFrom, start, best)
	return r, nil
}
