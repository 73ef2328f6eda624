package navgrid

import (
	"testing"

	"github.com/jrjojr/byul/coord"
	"github.com/stretchr/testify/assert"
)

func TestNeighbors4Connectivity(t *testing.T) {
	g := Create(5, 5, Conn4)
	ns := g.Neighbors(coord.New(2, 2))
	assert.Len(t, ns, 4)
}

func TestNeighbors8ConnectivityNoCornerCut(t *testing.T) {
	g := Create(5, 5, Conn8)
	g.SetBlocked(coord.New(2, 1), true)
	g.SetBlocked(coord.New(1, 2), true)
	// diagonal (1,1) must still be yielded even though both orthogonal
	// cells around it are blocked — no corner-cutting filter.
	ns := g.Neighbors(coord.New(2, 2))
	found := false
	for _, n := range ns {
		if n.Equal(coord.New(1, 1)) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNeighborsExcludesBlockedAndOutOfBounds(t *testing.T) {
	g := Create(3, 3, Conn4)
	g.SetBlocked(coord.New(1, 0), true)
	ns := g.Neighbors(coord.New(0, 0))
	for _, n := range ns {
		assert.True(t, g.InBounds(n))
		assert.False(t, g.IsBlocked(n))
	}
}
