package route

import (
	"math"

	"github.com/jrjojr/byul/coord"
)

// Direction is an 8-directional (plus Unknown) compass enum.
type Direction int

const (
	DirUnknown Direction = iota
	DirUp
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
)

var directionVectors = map[Direction][2]int{
	DirUp:        {0, -1},
	DirUpRight:   {1, -1},
	DirRight:     {1, 0},
	DirDownRight: {1, 1},
	DirDown:      {0, 1},
	DirDownLeft:  {-1, 1},
	DirLeft:      {-1, 0},
	DirUpLeft:    {-1, -1},
}

// Route is the result object produced by every route finder and by
// dstarlite: the ordered path, a diagnostic visit log, per-coord visit
// counts, and running cost/success bookkeeping.
type Route struct {
	Coords          *coord.CoordList
	VisitedOrder    []coord.Coord
	VisitedCount    *coord.CoordHash[int]
	Cost            float32
	Success         bool
	TotalRetryCount int

	avgVecX, avgVecY float32
	vecCount         int
}

// New builds an empty Route.
func New() *Route {
	return &Route{
		Coords:       coord.NewCoordList(),
		VisitedCount: coord.NewCoordHash[int](),
	}
}

// RecordVisit appends c to the chronological visit log and bumps its
// visit counter.
func (r *Route) RecordVisit(c coord.Coord) {
	r.VisitedOrder = append(r.VisitedOrder, c)
	n, _ := r.VisitedCount.Get(c)
	r.VisitedCount.Insert(c, n+1)
}

// Reconstruct walks cameFrom backward from goal, prepending each
// predecessor, and stores the result (start..goal) in r.Coords. It fails
// (returns false, leaving r.Coords untouched) if a predecessor is missing
// before reaching start.
func (r *Route) Reconstruct(cameFrom *coord.CoordHash[coord.Coord], start, goal coord.Coord) bool {
	reversed := coord.NewCoordList()
	current := goal
	reversed.Push(current)
	for !current.Equal(start) {
		prev, ok := cameFrom.Get(current)
		if !ok {
			return false
		}
		current = prev
		reversed.Push(current)
	}
	reversed.Reverse()
	r.Coords = reversed
	return true
}

// Direction returns the step vector at index i: for i<len-1 it is
// coords[i+1]-coords[i]; at the last index it repeats the final step
// coords[i]-coords[i-1]; for len<2 it is (0,0).
func (r *Route) Direction(i int) coord.Coord {
	n := r.Coords.Len()
	if n < 2 || i < 0 || i >= n {
		return coord.Coord{}
	}
	curr := r.Coords.At(i)
	if i == n-1 {
		prev := r.Coords.At(i - 1)
		return curr.Sub(prev)
	}
	next := r.Coords.At(i + 1)
	return next.Sub(curr)
}

// DirectionEnum maps a step vector to its 8-directional enum by sign,
// clamping each component to {-1,0,1} first. (0,0) maps to DirUnknown.
func DirectionEnum(dxdy coord.Coord) Direction {
	clamp := func(v int) int {
		if v > 1 {
			return 1
		}
		if v < -1 {
			return -1
		}
		return v
	}
	nx, ny := clamp(dxdy.X), clamp(dxdy.Y)
	if nx == 0 && ny == 0 {
		return DirUnknown
	}
	for d, v := range directionVectors {
		if v[0] == nx && v[1] == ny {
			return d
		}
	}
	return DirUnknown
}

// DirectionByIndex is DirectionEnum(Direction(i)).
func (r *Route) DirectionByIndex(i int) Direction {
	return DirectionEnum(r.Direction(i))
}

// AverageFacing returns the clamped compass direction from the coord
// `history` steps back from the end to the last coord.
func (r *Route) AverageFacing(history int) Direction {
	if history < 1 || r.Coords.Len() < 2 {
		return DirUnknown
	}
	n := r.Coords.Len()
	from := n - history - 1
	if from < 0 {
		from = 0
	}
	delta := r.Coords.At(n - 1).Sub(r.Coords.At(from))
	return DirectionEnum(delta)
}

// AverageDir returns the angle in degrees (atan2 convention) from the
// coord `history` steps back from the end to the last coord, or 0 if no
// net displacement.
func (r *Route) AverageDir(history int) float32 {
	if history < 1 || r.Coords.Len() < 2 {
		return 0
	}
	n := r.Coords.Len()
	from := n - history - 1
	if from < 0 {
		from = 0
	}
	delta := r.Coords.At(n - 1).Sub(r.Coords.At(from))
	if delta.X == 0 && delta.Y == 0 {
		return 0
	}
	return float32(math.Atan2(float64(delta.Y), float64(delta.X))) * 180 / math.Pi
}

func unitStep(from, to coord.Coord) (x, y, length float32) {
	dx := float32(to.X - from.X)
	dy := float32(to.Y - from.Y)
	l := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	return dx, dy, l
}

// HasChanged reports whether the unit step from->to deviates from the
// running average-direction accumulator by more than thresholdDeg,
// WITHOUT folding the new step into the accumulator (read-only check).
func (r *Route) HasChanged(from, to coord.Coord, thresholdDeg float32) bool {
	changed, _ := r.hasChangedAngle(from, to, thresholdDeg, false)
	return changed
}

// HasChangedWithAngle is HasChanged but also returns the measured angle,
// and folds the new unit step into the running accumulator — exactly
// like the read-only call, except this one updates state. The very first
// call for a fresh Route initializes the accumulator without reporting a
// change.
func (r *Route) HasChangedWithAngle(from, to coord.Coord, thresholdDeg float32) (changed bool, angleDeg float32) {
	return r.hasChangedAngle(from, to, thresholdDeg, true)
}

func (r *Route) hasChangedAngle(from, to coord.Coord, thresholdDeg float32, fold bool) (bool, float32) {
	dx, dy, l := unitStep(from, to)
	if l < numalEps {
		return false, 0
	}
	cx, cy := dx/l, dy/l

	if fold && r.vecCount == 0 {
		r.avgVecX, r.avgVecY, r.vecCount = cx, cy, 1
		return false, 0
	}

	avgX, avgY := r.avgVecX, r.avgVecY
	avgLen := float32(math.Sqrt(float64(avgX*avgX + avgY*avgY)))
	if avgLen < numalEps {
		if fold {
			r.avgVecX += cx
			r.avgVecY += cy
			r.vecCount++
		}
		return false, 0
	}
	avgX, avgY = avgX/avgLen, avgY/avgLen

	dot := cx*avgX + cy*avgY
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	angle := float32(math.Acos(float64(dot))) * 180 / math.Pi

	if fold {
		r.avgVecX += cx
		r.avgVecY += cy
		r.vecCount++
	}
	return angle > thresholdDeg, angle
}

// numalEps mirrors numal.EPS_LEN without importing numal, to keep this
// package's int-coordinate domain independent of the float3 kernel.
const numalEps = 1e-6
