// Package navgrid is the integer-grid navigation surface that route
// finders and D*-Lite query: a rectangle of cells, each blocked or not,
// with 4- or 8-connected neighbor iteration.
//
// NavGrid is purely a queryable surface — maze and obstacle generators
// are external collaborators that write into the same blocked set through
// SetBlocked; this package has no opinion on how cells got blocked.
//
// Grounded on the teacher's gridgraph.GridGraph (Conn4/Conn8 enum and
// GridOptions-style configuration) generalized from a float-valued terrain
// grid to a boolean-blocked navigation grid.
package navgrid

import "github.com/jrjojr/byul/coord"

// Connectivity selects 4- or 8-directional neighbor iteration.
type Connectivity int

const (
	// Conn4 yields N, E, S, W neighbors.
	Conn4 Connectivity = iota
	// Conn8 yields N, NE, E, SE, S, SW, W, NW neighbors, diagonals
	// included unconditionally — there is no corner-cutting filter, a
	// deliberate choice preserved so heuristic-admissibility tests stay
	// valid (spec.md §4.2).
	Conn8
)

var offsets4 = []coord.Coord{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
var offsets8 = []coord.Coord{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

// NavGrid is a width×height rectangle of cells with a persisted blocked
// set.
type NavGrid struct {
	Width, Height int
	Connectivity  Connectivity
	blocked       *coord.CoordHash[struct{}]
}

// Create builds a NavGrid. width and height must each be ≥ 1.
func Create(width, height int, connectivity Connectivity) *NavGrid {
	return &NavGrid{
		Width:        width,
		Height:       height,
		Connectivity: connectivity,
		blocked:      coord.NewCoordHash[struct{}](),
	}
}

// InBounds reports whether c lies within [0,Width)×[0,Height).
func (g *NavGrid) InBounds(c coord.Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// SetBlocked marks c blocked (flag==true) or clears it (flag==false).
func (g *NavGrid) SetBlocked(c coord.Coord, flag bool) {
	if flag {
		g.blocked.Insert(c, struct{}{})
	} else {
		g.blocked.Remove(c)
	}
}

// IsBlocked reports whether c is in the blocked set.
func (g *NavGrid) IsBlocked(c coord.Coord) bool {
	return g.blocked.Contains(c)
}

// Neighbors returns the in-bounds, non-blocked cells adjacent to c under
// the grid's active connectivity.
func (g *NavGrid) Neighbors(c coord.Coord) []coord.Coord {
	offsets := offsets4
	if g.Connectivity == Conn8 {
		offsets = offsets8
	}
	out := make([]coord.Coord, 0, len(offsets))
	for _, o := range offsets {
		n := coord.Coord{X: c.X + o.X, Y: c.Y + o.Y}
		if g.InBounds(n) && !g.IsBlocked(n) {
			out = append(out, n)
		}
	}
	return out
}

// BlockedSet exposes the persisted blocked coords for callers (e.g. maze
// generators) that want to merge changes directly.
func (g *NavGrid) BlockedSet() *coord.CoordHash[struct{}] { return g.blocked }
