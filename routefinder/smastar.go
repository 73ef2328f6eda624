package routefinder

import (
	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/coordpq"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/route"
)

// SMAStar finds a route from start to goal using Simplified
// Memory-Bounded A*: an ordinary f=g+h best-first search whose open set
// is trimmed to memoryLimit entries whenever it grows past that bound,
// dropping the currently-worst (highest-f) entries. A trimmed node loses
// its cameFrom entry, so the returned path may be a worse, or even
// failed, approximation of the true optimum depending on how aggressive
// memoryLimit is. memoryLimit<=0 behaves like AStar (no trimming).
//
// Grounded on original_source/byul/navsys/route_finder/sma_star.h.
func SMAStar(grid *navgrid.NavGrid, start, goal coord.Coord, memoryLimit int, opts *Options) (*route.Route, error) {
	if err := validateGrid(grid); err != nil {
		return nil, err
	}
	if start.Equal(goal) {
		return sameStartGoal(start), nil
	}

	cost := opts.costFn()
	h := opts.heuristicFn()
	limit := opts.maxRetry()

	open := coordpq.New()
	gScore := coord.NewCoordHash[float32]()
	cameFrom := coord.NewCoordHash[coord.Coord]()
	closed := coord.NewCoordHash[struct{}]()

	gScore.Insert(start, 0)
	open.Push(h(start, goal), start)

	r := route.New()
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
			open.Push(tentative+h(next, goal), next)
		}

		if memoryLimit > 0 && open.Len() > memoryLimit {
			before := open.Entries()
			open.TrimWorst(open.Len() - memoryLimit)
			after := open.Entries()
			survived := coord.NewCoordHash[struct{}]()
			for _, e := range after {
				survived.Insert(e.Value, struct{}{})
			}
			for _, e := range before {
				if !survived.Contains(e.Value) {
					cameFrom.Remove(e.Value)
					gScore.Remove(e.Value)
				}
			}
		}
	}

	r.TotalRetryCount = count
	r.Success = false
	r.Reconstruct(cameFrom, start, best)
	return r, nil
}
