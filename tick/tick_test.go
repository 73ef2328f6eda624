package tick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCallsEveryAttachedFuncInOrder(t *testing.T) {
	tk := New()
	var order []int
	_, err := tk.Attach("a", func(dt float32) { order = append(order, 1) })
	require.NoError(t, err)
	_, err = tk.Attach("b", func(dt float32) { order = append(order, 2) })
	require.NoError(t, err)
	tk.Update(0.016)
	assert.Equal(t, []int{1, 2}, order)
}

func TestDetachRemovesImmediately(t *testing.T) {
	tk := New()
	calls := 0
	h, err := tk.Attach("a", func(dt float32) { calls++ })
	require.NoError(t, err)
	require.True(t, tk.Detach(h))
	tk.Update(0.016)
	assert.Equal(t, 0, calls)
}

func TestDetachUnknownHandleFails(t *testing.T) {
	tk := New()
	assert.False(t, tk.Detach(Handle(999)))
}

func TestRequestDetachDeferredToNextUpdate(t *testing.T) {
	tk := New()
	calls := 0
	var h Handle
	h, err := tk.Attach("a", func(dt float32) {
		calls++
		tk.RequestDetach(h)
	})
	require.NoError(t, err)
	tk.Update(0.016)
	assert.Equal(t, 1, calls)
	tk.Update(0.016)
	assert.Equal(t, 1, calls, "callback should not run again after RequestDetach")
}

func TestAttachDuringUpdateIsSafeAndAppliesNextUpdate(t *testing.T) {
	tk := New()
	secondCalls := 0
	_, err := tk.Attach("a", func(dt float32) {
		_, innerErr := tk.Attach("b", func(dt float32) { secondCalls++ })
		assert.NoError(t, innerErr)
	})
	require.NoError(t, err)
	tk.Update(0.016)
	assert.Equal(t, 0, secondCalls, "newly attached callback is not in this Update's snapshot")
	tk.Update(0.016)
	assert.Equal(t, 1, secondCalls)
}

func TestListAttachedReflectsCurrentSubscribers(t *testing.T) {
	tk := New()
	h1, err := tk.Attach("a", func(dt float32) {})
	require.NoError(t, err)
	h2, err := tk.Attach("b", func(dt float32) {})
	require.NoError(t, err)
	assert.ElementsMatch(t, []Handle{h1, h2}, tk.ListAttached())
	tk.Detach(h1)
	assert.Equal(t, []Handle{h2}, tk.ListAttached())
}

func TestAttachDuplicateKeyFailsWithoutDetaching(t *testing.T) {
	tk := New()
	calls := 0
	_, err := tk.Attach("dup", func(dt float32) { calls++ })
	require.NoError(t, err)

	_, err = tk.Attach("dup", func(dt float32) { calls += 100 })
	assert.ErrorIs(t, err, ErrAlreadyAttached)

	tk.Update(0.016)
	assert.Equal(t, 1, calls, "only the original entry for the key should have run")
}

func TestAttachSameKeySucceedsAfterDetach(t *testing.T) {
	tk := New()
	h, err := tk.Attach("dup", func(dt float32) {})
	require.NoError(t, err)
	require.True(t, tk.Detach(h))

	_, err = tk.Attach("dup", func(dt float32) {})
	assert.NoError(t, err)
}
