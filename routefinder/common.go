package routefinder

import (
	"errors"

	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/route"
)

// ErrNilGrid is returned when a nil *navgrid.NavGrid is passed to a finder.
var ErrNilGrid = errors.New("routefinder: grid is nil")

// Options configures the common knobs every finder accepts. A nil
// CostFn/HeuristicFn falls back to that finder's documented default.
type Options struct {
	CostFn      CostFunc
	HeuristicFn HeuristicFunc

	// MaxRetry bounds the number of expansions/iterations; ≤0 means
	// unlimited.
	MaxRetry int

	// KeepVisitedOrder, when true, records every expanded cell into the
	// returned Route's VisitedOrder log (useful for diagnostics/ASCII
	// dumps by the caller; off by default to avoid the allocation cost
	// on hot paths).
	KeepVisitedOrder bool
}

func (o *Options) costFn() CostFunc {
	if o == nil || o.CostFn == nil {
		return DefaultCost
	}
	return o.CostFn
}

func (o *Options) heuristicFn() HeuristicFunc {
	if o == nil || o.HeuristicFn == nil {
		return DefaultHeuristic
	}
	return o.HeuristicFn
}

func (o *Options) maxRetry() int {
	if o == nil {
		return 0
	}
	return o.MaxRetry
}

func (o *Options) keepVisited() bool { return o != nil && o.KeepVisitedOrder }

// retryExceeded reports whether count has exceeded the configured
// MaxRetry (≤0 meaning unlimited).
func retryExceeded(limit, count int) bool {
	return limit > 0 && count > limit
}

// sameStartGoal builds the trivial single-cell success Route shared by
// every finder's start==goal edge case.
func sameStartGoal(start coord.Coord) *route.Route {
	r := route.New()
	r.Coords.Push(start)
	r.Success = true
	r.Cost = 0
	return r
}

// bestEffortPartial builds the failure Route from the best node seen
// (tracked by the caller) back to start via cameFrom, for finders whose
// open set is exhausted without reaching goal.
func bestEffortPartial(cameFrom *coord.CoordHash[coord.Coord], start, best coord.Coord) *route.Route {
	r := route.New()
	r.Success = false
	r.Reconstruct(cameFrom, start, best)
	return r
}

func validateGrid(g *navgrid.NavGrid) error {
	if g == nil {
		return ErrNilGrid
	}
	return nil
}
