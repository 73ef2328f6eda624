package dstarlite

import (
	"testing"

	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/tick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProtoSucceedsOnOpenGrid(t *testing.T) {
	g := navgrid.Create(8, 8, navgrid.Conn4)
	p := New(g, coord.New(0, 0), coord.New(7, 7))
	r := p.FindProto()
	require.True(t, r.Success)
	assert.Equal(t, coord.New(0, 0), r.Coords.At(0))
	assert.Equal(t, coord.New(7, 7), r.Coords.At(r.Coords.Len()-1))
}

func TestFindProtoFailsWhenGoalWalledOff(t *testing.T) {
	g := navgrid.Create(5, 5, navgrid.Conn4)
	for y := 0; y < 5; y++ {
		g.SetBlocked(coord.New(2, y), true)
	}
	p := New(g, coord.New(0, 2), coord.New(4, 2))
	r := p.FindProto()
	assert.False(t, r.Success)
}

func TestUpdateVertexReactsToNewlyBlockedCell(t *testing.T) {
	g := navgrid.Create(5, 5, navgrid.Conn4)
	p := New(g, coord.New(0, 0), coord.New(4, 0))
	r1 := p.FindProto()
	require.True(t, r1.Success)

	// Block the middle of the straight-line route and replan. Neighbors()
	// is queried from (2,0) itself, which still reports its geometric
	// neighbors regardless of its own blocked flag; only their incident
	// edges through (2,0) become Inf-cost once it is blocked.
	g.SetBlocked(coord.New(2, 0), true)
	for _, n := range g.Neighbors(coord.New(2, 0)) {
		p.UpdateVertex(n)
	}
	p.ComputeShortestRoute()

	r2 := p.FindProto()
	require.True(t, r2.Success)
	assert.False(t, r2.Coords.Contains(coord.New(2, 0)))
}

func TestExecutorWalksToGoalOverMultipleTicks(t *testing.T) {
	g := navgrid.Create(6, 6, navgrid.Conn4)
	start, goal := coord.New(0, 0), coord.New(5, 5)
	p := New(g, start, goal)
	p.FindProto()

	exec := NewExecutorFull(p, 1, 1, 30)
	tk := tick.New()
	exec.Prepare(tk)

	for i := 0; i < 40 && exec.Ticked(); i++ {
		tk.Update(1.0)
	}

	require.NotNil(t, p.RealRoute)
	assert.True(t, p.RealRoute.Success)
	assert.Equal(t, goal, p.Start)
}

func TestExecutorFailsClosedWhenGoalUnreachable(t *testing.T) {
	g := navgrid.Create(5, 5, navgrid.Conn4)
	for y := 0; y < 5; y++ {
		g.SetBlocked(coord.New(2, y), true)
	}
	start, goal := coord.New(0, 2), coord.New(4, 2)
	p := New(g, start, goal)
	p.FindProto()

	exec := NewExecutorFull(p, 1, 1, 5)
	tk := tick.New()
	exec.Prepare(tk)

	for i := 0; i < 10 && exec.Ticked(); i++ {
		tk.Update(1.0)
	}

	assert.False(t, p.RealRoute.Success)
	assert.False(t, exec.Ticked())
}

func TestExecutorStartAlreadyAtGoalFinalizesImmediately(t *testing.T) {
	g := navgrid.Create(3, 3, navgrid.Conn4)
	goal := coord.New(1, 1)
	p := New(g, goal, goal)
	exec := NewExecutor(p)
	tk := tick.New()
	exec.Prepare(tk)
	tk.Update(0.1)
	assert.True(t, p.RealRoute.Success)
	assert.False(t, exec.Ticked())
}
