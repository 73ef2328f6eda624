package routefinder

import (
	"math"

	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/coordpq"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/numal"
	"github.com/jrjojr/byul/route"
)

// MaxRadius is the propagation radius substituted for any
// ComputeFastMarching radiusLimit that is <=0 or larger than this value.
const MaxRadius float32 = 1e6

// FMMState is a Fast Marching Method cell's band membership.
type FMMState int

const (
	FMMFar FMMState = iota
	FMMNarrow
	FMMKnown
)

// FMMCell is one distance-field sample.
type FMMCell struct {
	State FMMState
	Value float32
}

// FMMGrid is the distance field produced by ComputeFastMarching: every
// reached coord's arrival time from the seed, plus the order cells were
// finalized in.
type FMMGrid struct {
	Width, Height   int
	cells           *coord.CoordHash[*FMMCell]
	VisitOrder      []coord.Coord
	TotalRetryCount int
}

// Cell returns the distance-field sample at c, or (nil, false) if c was
// never reached.
func (g *FMMGrid) Cell(c coord.Coord) (*FMMCell, bool) {
	return g.cells.Get(c)
}

// ComputeFastMarching propagates a wavefront out from start across grid,
// finalizing the cell with the smallest tentative arrival time on each
// step (a coordpq.Queue narrow band) until every reachable cell within
// radiusLimit is KNOWN. costFn supplies the local speed's reciprocal
// (inverse speed F per unit grid step); nil defaults to DefaultCost.
// radiusLimit<=0 uses MaxRadius. maxRetry<=0 is unlimited.
//
// Grounded on original_source/byul/navsys/route_finder/fast_marching.h
// (fmm_grid_t, fmm_cell_t, fmm_compute).
func ComputeFastMarching(grid *navgrid.NavGrid, start coord.Coord, costFn CostFunc, radiusLimit float32, maxRetry int) *FMMGrid {
	if costFn == nil {
		costFn = DefaultCost
	}
	if radiusLimit <= 0 || radiusLimit > MaxRadius {
		radiusLimit = MaxRadius
	}

	fg := &FMMGrid{Width: grid.Width, Height: grid.Height, cells: coord.NewCoordHash[*FMMCell]()}
	fg.cells.Insert(start, &FMMCell{State: FMMNarrow, Value: 0})

	narrow := coordpq.New()
	narrow.Push(0, start)
	count := 0

	for narrow.Len() > 0 {
		entry, _ := narrow.Pop()
		current := entry.Value
		cell, ok := fg.cells.Get(current)
		if !ok || cell.State == FMMKnown {
			continue
		}
		if cell.Value > radiusLimit {
			continue
		}
		cell.State = FMMKnown
		fg.VisitOrder = append(fg.VisitOrder, current)
		count++
		if maxRetry > 0 && count > maxRetry {
			break
		}

		for _, next := range grid.Neighbors(current) {
			if nc, exists := fg.cells.Get(next); exists && nc.State == FMMKnown {
				continue
			}
			f := costFn(current, next)
			if f <= 0 {
				f = 1
			}
			tx, okx := axisMinKnown(fg, next, 1, 0)
			ty, oky := axisMinKnown(fg, next, 0, 1)
			value := eikonalUpdate(tx, ty, okx, oky, f)

			nc, exists := fg.cells.Get(next)
			if !exists {
				nc = &FMMCell{State: FMMNarrow, Value: value}
				fg.cells.Insert(next, nc)
				narrow.Push(value, next)
			} else if value < nc.Value {
				nc.Value = value
				narrow.Push(value, next)
			}
		}
	}

	fg.TotalRetryCount = count
	return fg
}

// axisMinKnown looks at the two neighbors of c along the (dx,dy) axis
// and returns the smaller KNOWN value among them, if any.
func axisMinKnown(fg *FMMGrid, c coord.Coord, dx, dy int) (float32, bool) {
	a := coord.Coord{X: c.X - dx, Y: c.Y - dy}
	b := coord.Coord{X: c.X + dx, Y: c.Y + dy}
	var best float32
	found := false
	if cell, ok := fg.cells.Get(a); ok && cell.State == FMMKnown {
		best, found = cell.Value, true
	}
	if cell, ok := fg.cells.Get(b); ok && cell.State == FMMKnown {
		if !found || cell.Value < best {
			best, found = cell.Value, true
		}
	}
	return best, found
}

// eikonalUpdate solves the discrete Eikonal equation (T-Tx)²+(T-Ty)²=F²
// for the arrival time T at a cell with known axis-neighbor times tx/ty
// and local slowness f, via numal's stable quadratic solver, taking the
// larger (causal) root. Falls back to the 1-D update along whichever
// single axis has a known neighbor, or to f alone if neither does.
func eikonalUpdate(tx, ty float32, okx, oky bool, f float32) float32 {
	switch {
	case okx && oky:
		a, b, c := float32(2), -2 * (tx + ty), tx*tx+ty*ty-f*f
		_, t1, ok := numal.SolveQuadraticStable(a, b, c)
		m := tx
		if ty < tx {
			m = ty
		}
		if ok && t1 >= m {
			return t1
		}
		return m + f
	case okx:
		return tx + f
	case oky:
		return ty + f
	default:
		return f
	}
}

// FindFastMarching computes the distance field from start via
// ComputeFastMarching, then reconstructs start->goal by greedy descent:
// from goal, repeatedly stepping to the unvisited KNOWN neighbor with the
// smallest arrival time, until start is reached. debugModeEnabled records
// the field's finalization order into the returned Route's visit log.
//
// Grounded on original_source/byul/navsys/route_finder/fast_marching.h
// (find_fast_marching).
func FindFastMarching(grid *navgrid.NavGrid, start, goal coord.Coord, costFn CostFunc, maxRetry int, debugModeEnabled bool) (*route.Route, error) {
	if err := validateGrid(grid); err != nil {
		return nil, err
	}
	if start.Equal(goal) {
		return sameStartGoal(start), nil
	}

	fg := ComputeFastMarching(grid, start, costFn, 0, maxRetry)
	r := route.New()
	if debugModeEnabled {
		for _, c := range fg.VisitOrder {
			r.RecordVisit(c)
		}
	}
	r.TotalRetryCount = fg.TotalRetryCount

	goalCell, ok := fg.Cell(goal)
	if !ok || goalCell.State != FMMKnown {
		r.Success = false
		return r, nil
	}

	path := coord.NewCoordList()
	visited := coord.NewCoordHash[struct{}]()
	current := goal
	path.Push(current)
	visited.Insert(current, struct{}{})

	for !current.Equal(start) {
		bestVal := float32(math.MaxFloat32)
		var bestNext coord.Coord
		found := false
		for _, n := range grid.Neighbors(current) {
			if visited.Contains(n) {
				continue
			}
			cell, ok := fg.Cell(n)
			if !ok || cell.State != FMMKnown {
				continue
			}
			if cell.Value < bestVal {
				bestVal, bestNext, found = cell.Value, n, true
			}
		}
		if !found {
			r.Success = false
			return r, nil
		}
		current = bestNext
		path.Push(current)
		visited.Insert(current, struct{}{})
	}

	path.Reverse()
	r.Coords = path
	r.Success = true
	r.Cost = goalCell.Value
	return r, nil
}
