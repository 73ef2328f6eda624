package routefinder

import (
	"math"

	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/route"
)

// FringeSearch finds a route from start to goal using Fringe Search: a
// single ordered fringe list is repeatedly swept, each pass only
// expanding nodes whose f=g+h falls within threshold+deltaEpsilon;
// expanded nodes are replaced in-place by their improved children so
// within-round propagation happens immediately, while nodes exceeding
// the threshold carry over to seed the next, larger threshold. Avoids
// the open-list sort A* pays for, at the cost of an optimality guarantee.
// deltaEpsilon<=0 defaults to 0.5.
//
// Grounded on original_source/byul/route_finder/modules/fringe_search.h.
func FringeSearch(grid *navgrid.NavGrid, start, goal coord.Coord, deltaEpsilon float32, opts *Options) (*route.Route, error) {
	if err := validateGrid(grid); err != nil {
		return nil, err
	}
	if start.Equal(goal) {
		return sameStartGoal(start), nil
	}
	if deltaEpsilon <= 0 {
		deltaEpsilon = 0.5
	}

	cost := opts.costFn()
	h := opts.heuristicFn()
	limit := opts.maxRetry()

	gScore := coord.NewCoordHash[float32]()
	cameFrom := coord.NewCoordHash[coord.Coord]()
	inFringe := coord.NewCoordHash[struct{}]()
	gScore.Insert(start, 0)
	inFringe.Insert(start, struct{}{})
	fringe := []coord.Coord{start}
	threshold := h(start, goal)

	r := route.New()
	iterations := 0
	best := start

	for len(fringe) > 0 {
		iterations++
		if retryExceeded(limit, iterations) {
			break
		}
		nextThreshold := float32(math.MaxFloat32)
		i := 0
		for i < len(fringe) {
			current := fringe[i]
			gc, _ := gScore.Get(current)
			f := gc + h(current, goal)
			if f > threshold+deltaEpsilon {
				if f < nextThreshold {
					nextThreshold = f
				}
				i++
				continue
			}

			if opts.keepVisited() {
				r.RecordVisit(current)
			}
			best = current

			if current.Equal(goal) {
				r.Reconstruct(cameFrom, start, goal)
				r.Success = true
				r.Cost = gc
				r.TotalRetryCount = iterations
				return r, nil
			}

			var children []coord.Coord
			for _, next := range grid.Neighbors(current) {
				tentative := gc + cost(current, next)
				existing, ok := gScore.Get(next)
				if ok && tentative >= existing {
					continue
				}
				gScore.Insert(next, tentative)
				cameFrom.Insert(next, current)
				if !inFringe.Contains(next) {
					inFringe.Insert(next, struct{}{})
					children = append(children, next)
				}
			}
			inFringe.Remove(current)

			tail := append([]coord.Coord{}, fringe[i+1:]...)
			fringe = append(fringe[:i], append(children, tail...)...)
			// i intentionally unchanged: re-examine the splice point, which
			// is now the first freshly-inserted child (or the old i+1 node).
		}
		if nextThreshold == float32(math.MaxFloat32) {
			break
		}
		threshold = nextThreshold
	}

	r.TotalRetryCount = iterations
	r.Success = false
	r.Reconstruct(cameFrom, start, best)
	return r, nil
}
