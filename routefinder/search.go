package routefinder

import (
	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/coordpq"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/route"
)

// priorityFunc computes the open-set priority of extending to `node` with
// accumulated path cost g, given the goal. A*/Dijkstra/WeightedA* differ
// only in this function; Greedy-Best-First ignores g entirely.
type priorityFunc func(g float32, node, goal coord.Coord) float32

// weightedSearch is the shared best-first-search engine behind A*,
// Dijkstra, Weighted A*, and Greedy-Best-First. It expands nodes in
// priority order from a coordpq.Queue, tracks the best g-score seen per
// coord in a coord.CoordHash, and reconstructs via cameFrom on success.
//
// Grounded on the teacher's dijkstra.Dijkstra (container/heap open set,
// gScore map, numbered precondition checks) generalized with a pluggable
// priority function to cover the A*-family headers under
// original_source/byul/navsys/route_finder/.
func weightedSearch(grid *navgrid.NavGrid, start, goal coord.Coord, cost CostFunc, prio priorityFunc, opts *Options) (*route.Route, error) {
	if err := validateGrid(grid); err != nil {
		return nil, err
	}
	if start.Equal(goal) {
		return sameStartGoal(start), nil
	}

	open := coordpq.New()
	gScore := coord.NewCoordHash[float32]()
	cameFrom := coord.NewCoordHash[coord.Coord]()
	closed := coord.NewCoordHash[struct{}]()

	gScore.Insert(start, 0)
	open.Push(prio(0, start, goal), start)

	r := route.New()
	limit := opts.maxRetry()
	count := 0
	best := start

	for open.Len() > 0 {
		entry, _ := open.Pop()
		current := entry.Value
		if closed.Contains(current) {
			continue
		}
		closed.Insert(current, struct{}{})
		if opts.keepVisited() {
			r.RecordVisit(current)
		}
		best = current

		if current.Equal(goal) {
			r.Reconstruct(cameFrom, start, goal)
			r.Success = true
			g, _ := gScore.Get(goal)
			r.Cost = g
			r.TotalRetryCount = count
			return r, nil
		}

		count++
		if retryExceeded(limit, count) {
			break
		}

		curG, _ := gScore.Get(current)
		for _, next := range grid.Neighbors(current) {
			if closed.Contains(next) {
				continue
			}
			tentative := curG + cost(current, next)
			existing, ok := gScore.Get(next)
			if ok && tentative >= existing {
				continue
			}
			gScore.Insert(next, tentative)
			cameFrom.Insert(next, current)
			open.Push(prio(tentative, next, goal), next)
		}
	}

	r.TotalRetryCount = count
	r.Success = false
	r.Reconstruct(cameFrom, start, best)
	return r, nil
}
