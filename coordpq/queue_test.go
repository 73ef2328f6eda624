package coordpq

import (
	"testing"

	"github.com/jrjojr/byul/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueTieBreakByInsertionOrder(t *testing.T) {
	q := New()
	q.Push(1.0, coord.New(9, 9)) // pushed first, same cost
	q.Push(1.0, coord.New(0, 0)) // pushed second
	q.Push(1.0, coord.New(5, 5))

	e1, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, coord.New(9, 9), e1.Value)

	e2, _ := q.Pop()
	assert.Equal(t, coord.New(0, 0), e2.Value)

	e3, _ := q.Pop()
	assert.Equal(t, coord.New(5, 5), e3.Value)
}

func TestQueueRemoveAndContains(t *testing.T) {
	q := New()
	q.Push(2.0, coord.New(1, 1))
	q.Push(3.0, coord.New(2, 2))

	assert.True(t, q.Contains(coord.New(1, 1)))
	assert.True(t, q.Remove(2.0, coord.New(1, 1)))
	assert.False(t, q.Contains(coord.New(1, 1)))
	assert.Equal(t, 1, q.Len())
}

func TestQueueTrimWorstDropsHighestCost(t *testing.T) {
	q := New()
	q.Push(5.0, coord.New(5, 5))
	q.Push(1.0, coord.New(1, 1))
	q.Push(3.0, coord.New(3, 3))

	q.TrimWorst(1)
	assert.Equal(t, 2, q.Len())
	assert.False(t, q.Contains(coord.New(5, 5)))
	assert.True(t, q.Contains(coord.New(1, 1)))
}

func TestQueuePeekCost(t *testing.T) {
	q := New()
	_, ok := q.PeekCost()
	assert.False(t, ok)
	q.Push(4.0, coord.New(0, 0))
	c, ok := q.PeekCost()
	assert.True(t, ok)
	assert.Equal(t, float32(4.0), c)
}
