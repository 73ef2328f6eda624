package tick

import (
	"errors"
	"sync"
)

// Func is a tick callback, invoked with the elapsed time in seconds.
type Func func(dt float32)

// Handle identifies one attached Func for later Detach/RequestDetach
// calls.
type Handle int64

// ErrAlreadyAttached is returned by Attach when key is already in use by
// a currently-attached entry.
var ErrAlreadyAttached = errors.New("tick: key already attached")

type entry struct {
	handle Handle
	key    any
	fn     Func
}

// Tick is the scheduler. The zero value is not usable; build one with
// New.
type Tick struct {
	mu            sync.Mutex
	entries       []entry
	pendingDetach map[Handle]struct{}
	nextHandle    Handle
}

// New builds an empty Tick scheduler.
func New() *Tick {
	return &Tick{pendingDetach: make(map[Handle]struct{})}
}

// Attach registers fn under key, returning a Handle to later Detach or
// RequestDetach it. key stands in for the source's (func,context) pair —
// Go func values aren't comparable, so identity is tracked via key
// instead. Attaching a key already present among the current entries
// fails with ErrAlreadyAttached, matching byul_tick_attach's "already
// exists" rejection.
func (t *Tick) Attach(key any, fn Func) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range t.entries {
		if e.key == key {
			return 0, ErrAlreadyAttached
		}
	}
	t.nextHandle++
	h := t.nextHandle
	t.entries = append(t.entries, entry{handle: h, key: key, fn: fn})
	return h, nil
}

// Detach immediately removes the subscriber registered under h, reporting
// whether one was found. Calling Detach from inside a callback currently
// running under Update is safe (Update snapshots before invoking) but
// RequestDetach is preferred there for symmetry with deferred removal of
// other handles mid-sweep.
func (t *Tick) Detach(h Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, e := range t.entries {
		if e.handle == h {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return true
		}
	}
	return false
}

// RequestDetach marks h for removal on the next Update instead of
// removing it immediately.
func (t *Tick) RequestDetach(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pendingDetach[h] = struct{}{}
}

// Update first folds in any pending detach requests, takes a snapshot of
// the attached list under lock, then invokes every callback with dt
// outside the lock.
func (t *Tick) Update(dt float32) {
	t.mu.Lock()
	if len(t.pendingDetach) > 0 {
		kept := t.entries[:0:0]
		for _, e := range t.entries {
			if _, drop := t.pendingDetach[e.handle]; drop {
				continue
			}
			kept = append(kept, e)
		}
		t.entries = kept
		t.pendingDetach = make(map[Handle]struct{})
	}
	snapshot := make([]entry, len(t.entries))
	copy(snapshot, t.entries)
	t.mu.Unlock()

	for _, e := range snapshot {
		if e.fn != nil {
			e.fn(dt)
		}
	}
}

// ListAttached returns the handles currently attached, in attach order.
func (t *Tick) ListAttached() []Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Handle, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.handle
	}
	return out
}
