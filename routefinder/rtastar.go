package routefinder

import (
	"math"
	"sort"

	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/navgrid"
)

// RTATable is the persistent learned-heuristic table RTAStar mutates
// across calls: the heuristic value stored for a coord overrides the
// HeuristicFunc supplied to RTAStar once that coord has been left at
// least once. Share one RTATable across an entire RTA* journey; a fresh
// table starts every coord at its plain heuristic value.
type RTATable struct {
	learned *coord.CoordHash[float32]
}

// NewRTATable builds an empty learned-heuristic table.
func NewRTATable() *RTATable {
	return &RTATable{learned: coord.NewCoordHash[float32]()}
}

func (t *RTATable) lookup(h HeuristicFunc, c, goal coord.Coord) float32 {
	if v, ok := t.learned.Get(c); ok {
		return v
	}
	return h(c, goal)
}

// RTAStar computes a single step of Real-Time A*: a depth-limited
// lookahead (depthLimit plies, recommend 3-10) from current evaluates
// every neighbor by the minimum f=g+h reachable within the remaining
// depth, picks the neighbor with the smallest such value as next, and
// records into table, as current's learned heuristic, the larger of the
// second-best neighbor's value and any value already learned for current
// (a learned value never decreases) — so a future visit to current sees a heuristic
// informed by this lookahead instead of the raw HeuristicFunc. The
// caller is expected to loop externally, calling RTAStar again with
// next as the new current, until done is true or next no longer
// changes. done is true once current already equals goal; a current
// with no unvisited-this-call neighbors returns (current, false, nil),
// signaling the caller to stop (stuck).
//
// Grounded on original_source/byul/navsys/route_finder/ — no standalone
// rta_star header was retrieved; behavior follows spec.md §4.6's
// description of standard RTA*'s heuristic-update rule.
func RTAStar(grid *navgrid.NavGrid, current, goal coord.Coord, depthLimit int, table *RTATable, opts *Options) (next coord.Coord, done bool, err error) {
	if err := validateGrid(grid); err != nil {
		return coord.Coord{}, false, err
	}
	if table == nil {
		table = NewRTATable()
	}
	if current.Equal(goal) {
		return current, true, nil
	}
	if depthLimit < 1 {
		depthLimit = 1
	}

	cost := opts.costFn()
	h := opts.heuristicFn()

	neighbors := grid.Neighbors(current)
	if len(neighbors) == 0 {
		return current, false, nil
	}

	type scored struct {
		c coord.Coord
		f float32
	}
	scores := make([]scored, 0, len(neighbors))
	visited := coord.NewCoordHash[struct{}]()
	visited.Insert(current, struct{}{})
	for _, n := range neighbors {
		f := cost(current, n) + rtaLookahead(grid, n, goal, depthLimit-1, cost, h, table, visited)
		scores = append(scores, scored{n, f})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].f < scores[j].f })

	secondBest := scores[0].f
	if len(scores) > 1 {
		secondBest = scores[1].f
	}
	if existing, ok := table.learned.Get(current); ok && existing > secondBest {
		secondBest = existing
	}
	table.learned.Insert(current, secondBest)

	return scores[0].c, false, nil
}

// rtaLookahead returns the minimum g+h reachable from node within the
// remaining depth plies, using table's learned values in place of h
// wherever a coord has already been left once. visited prevents the
// lookahead from doubling back along the edge it just arrived on.
func rtaLookahead(grid *navgrid.NavGrid, node, goal coord.Coord, depth int, cost CostFunc, h HeuristicFunc, table *RTATable, visited *coord.CoordHash[struct{}]) float32 {
	if node.Equal(goal) {
		return 0
	}
	if depth <= 0 {
		return table.lookup(h, node, goal)
	}

	neighbors := grid.Neighbors(node)
	best := float32(math.MaxFloat32)
	for _, n := range neighbors {
		if visited.Contains(n) {
			continue
		}
		visited.Insert(n, struct{}{})
		val := cost(node, n) + rtaLookahead(grid, n, goal, depth-1, cost, h, table, visited)
		visited.Remove(n)
		if val < best {
			best = val
		}
	}
	if best == float32(math.MaxFloat32) {
		return table.lookup(h, node, goal)
	}
	return best
}
