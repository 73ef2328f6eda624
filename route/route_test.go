package route

import (
	"testing"

	"github.com/jrjojr/byul/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructSuccess(t *testing.T) {
	cameFrom := coord.NewCoordHash[coord.Coord]()
	start := coord.New(0, 0)
	mid := coord.New(1, 0)
	goal := coord.New(2, 0)
	cameFrom.Insert(mid, start)
	cameFrom.Insert(goal, mid)

	r := New()
	ok := r.Reconstruct(cameFrom, start, goal)
	require.True(t, ok)
	first, _ := r.Coords.First()
	last, _ := r.Coords.Last()
	assert.Equal(t, start, first)
	assert.Equal(t, goal, last)
	assert.Equal(t, 3, r.Coords.Len())
}

func TestReconstructFailsOnMissingPredecessor(t *testing.T) {
	cameFrom := coord.NewCoordHash[coord.Coord]()
	r := New()
	ok := r.Reconstruct(cameFrom, coord.New(0, 0), coord.New(5, 5))
	assert.False(t, ok)
}

func TestDirectionEndpoints(t *testing.T) {
	r := New()
	r.Coords.Push(coord.New(0, 0))
	r.Coords.Push(coord.New(1, 0))
	r.Coords.Push(coord.New(2, 1))

	assert.Equal(t, coord.New(1, 0), r.Direction(0))
	assert.Equal(t, coord.New(1, 1), r.Direction(1))
	assert.Equal(t, coord.New(1, 1), r.Direction(2)) // repeats last step
}

func TestDirectionShortRoute(t *testing.T) {
	r := New()
	r.Coords.Push(coord.New(0, 0))
	assert.Equal(t, coord.Coord{}, r.Direction(0))
}

func TestDirectionEnumMapping(t *testing.T) {
	assert.Equal(t, DirRight, DirectionEnum(coord.New(5, 0)))
	assert.Equal(t, DirDownRight, DirectionEnum(coord.New(3, 3)))
	assert.Equal(t, DirUnknown, DirectionEnum(coord.New(0, 0)))
}

func TestHasChangedWithAngleFirstCallInitializes(t *testing.T) {
	r := New()
	changed, angle := r.HasChangedWithAngle(coord.New(0, 0), coord.New(1, 0), 10)
	assert.False(t, changed)
	assert.Equal(t, float32(0), angle)

	changed, angle = r.HasChangedWithAngle(coord.New(1, 0), coord.New(1, 1), 10)
	assert.True(t, changed)
	assert.Greater(t, angle, float32(10))
}
