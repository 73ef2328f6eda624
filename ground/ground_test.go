package ground

import (
	"testing"

	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/numal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformSampleAtReturnsPlaneMaterial(t *testing.T) {
	body := DefaultBodyProps()
	body.Friction = 0.9
	g := NewUniform(body, numal.NewPlane(numal.NewVec3(0, 0, 1), 0))

	point, normal, b, ok := g.SampleAt(numal.NewVec3(3, 4, 7))
	require.True(t, ok)
	assert.InDelta(t, 0, point.Z, 1e-4)
	assert.InDelta(t, 1, normal.Z, 1e-4)
	assert.Equal(t, float32(0.9), b.Friction)
}

func TestUniformRaycastExactHit(t *testing.T) {
	g := NewUniform(DefaultBodyProps(), numal.NewPlane(numal.NewVec3(0, 0, 1), 0))

	point, normal, _, thit, ok := g.Raycast(numal.NewVec3(0, 0, 10), numal.NewVec3(0, 0, -1), 100)
	require.True(t, ok)
	assert.InDelta(t, 10, thit, 1e-3)
	assert.InDelta(t, 0, point.Z, 1e-3)
	assert.InDelta(t, 1, normal.Z, 1e-3)
}

func TestUniformRaycastParallelMisses(t *testing.T) {
	g := NewUniform(DefaultBodyProps(), numal.NewPlane(numal.NewVec3(0, 0, 1), 0))

	_, _, _, _, ok := g.Raycast(numal.NewVec3(0, 0, 5), numal.NewVec3(1, 0, 0), 50)
	assert.False(t, ok)
}

func TestUniformRaycastBeyondMaxDistMisses(t *testing.T) {
	g := NewUniform(DefaultBodyProps(), numal.NewPlane(numal.NewVec3(0, 0, 1), 0))

	_, _, _, _, ok := g.Raycast(numal.NewVec3(0, 0, 10), numal.NewVec3(0, 0, -1), 2)
	assert.False(t, ok)
}

func flatHeightfield(w, h int, cell float32, z float32) []float32 {
	out := make([]float32, w*h)
	for i := range out {
		out[i] = z
	}
	return out
}

func TestHeightfieldSampleAtFlatGrid(t *testing.T) {
	heights := flatHeightfield(4, 4, 1.0, 2.5)
	g := NewHeightfield(4, 4, 1.0, heights, DefaultBodyProps())

	point, normal, _, ok := g.SampleAt(numal.NewVec3(1.5, 1.5, 99))
	require.True(t, ok)
	assert.InDelta(t, 2.5, point.Z, 1e-4)
	assert.InDelta(t, 1, normal.Z, 1e-3)
}

func TestHeightfieldSampleAtRampSlope(t *testing.T) {
	w, h := 5, 3
	cell := float32(1.0)
	heights := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			heights[y*w+x] = float32(x)
		}
	}
	g := NewHeightfield(w, h, cell, heights, DefaultBodyProps())

	point, normal, _, ok := g.SampleAt(numal.NewVec3(2.0, 1.0, 0))
	require.True(t, ok)
	assert.InDelta(t, 2.0, point.Z, 1e-3)
	assert.Less(t, normal.X, float32(0))
}

func TestHeightfieldRaycastStraightDownHitsSurface(t *testing.T) {
	heights := flatHeightfield(6, 6, 1.0, 3.0)
	g := NewHeightfield(6, 6, 1.0, heights, DefaultBodyProps())

	point, _, _, thit, ok := g.Raycast(numal.NewVec3(3, 3, 20), numal.NewVec3(0, 0, -1), 100)
	require.True(t, ok)
	assert.InDelta(t, 17, thit, 0.05)
	assert.InDelta(t, 3.0, point.Z, 0.05)
}

func TestHeightfieldRaycastMissesWhenAboveMaxDist(t *testing.T) {
	heights := flatHeightfield(6, 6, 1.0, 3.0)
	g := NewHeightfield(6, 6, 1.0, heights, DefaultBodyProps())

	_, _, _, _, ok := g.Raycast(numal.NewVec3(3, 3, 20), numal.NewVec3(0, 0, -1), 5)
	assert.False(t, ok)
}

func cellMapper(cell float32) TileMapper {
	return func(pos numal.Vec3) coord.Coord {
		return coord.New(int(pos.X/cell), int(pos.Y/cell))
	}
}

func TestTilesOverrideWins(t *testing.T) {
	bodyTable := coord.NewCoordHash[BodyProps]()
	overrideBody := DefaultBodyProps()
	overrideBody.Friction = 0.1
	bodyTable.Insert(coord.Coord{X: 0, Y: 0}, overrideBody)

	uniformBody := DefaultBodyProps()
	uniformBody.Friction = 0.8

	g := NewTiles(bodyTable, nil, cellMapper(1.0), uniformBody, numal.NewPlane(numal.NewVec3(0, 0, 1), 0))

	b, ok := g.MaterialAt(numal.NewVec3(0.5, 0.5, 0))
	require.True(t, ok)
	assert.Equal(t, float32(0.1), b.Friction)

	b2, ok2 := g.MaterialAt(numal.NewVec3(5.5, 5.5, 0))
	require.True(t, ok2)
	assert.Equal(t, float32(0.8), b2.Friction)
}

func TestTilesPlaneOverrideShiftsSampledHeight(t *testing.T) {
	planeTable := coord.NewCoordHash[numal.Plane]()
	planeTable.Insert(coord.Coord{X: 2, Y: 0}, numal.NewPlane(numal.NewVec3(0, 0, 1), -5))

	g := NewTiles(nil, planeTable, cellMapper(1.0), DefaultBodyProps(), numal.NewPlane(numal.NewVec3(0, 0, 1), 0))

	pointOverride, _, _, ok := g.SampleAt(numal.NewVec3(2.5, 0.5, 0))
	require.True(t, ok)
	assert.InDelta(t, 5, pointOverride.Z, 1e-3)

	pointDefault, _, _, ok2 := g.SampleAt(numal.NewVec3(0.5, 0.5, 0))
	require.True(t, ok2)
	assert.InDelta(t, 0, pointDefault.Z, 1e-3)
}

func TestTilesRaycastHitsOverriddenCell(t *testing.T) {
	planeTable := coord.NewCoordHash[numal.Plane]()
	planeTable.Insert(coord.Coord{X: 0, Y: 0}, numal.NewPlane(numal.NewVec3(0, 0, 1), -2))

	g := NewTiles(nil, planeTable, cellMapper(1.0), DefaultBodyProps(), numal.NewPlane(numal.NewVec3(0, 0, 1), 0))

	point, _, _, thit, ok := g.Raycast(numal.NewVec3(0.5, 0.5, 10), numal.NewVec3(0, 0, -1), 50)
	require.True(t, ok)
	assert.InDelta(t, 8, thit, 0.05)
	assert.InDelta(t, 2, point.Z, 0.05)
}
