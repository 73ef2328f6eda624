package dstarlite

import (
	"container/heap"
	"math"

	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/navgrid"
	"github.com/jrjojr/byul/route"
)

// Inf stands in for the C source's FLT_MAX-as-infinity sentinel.
var Inf = float32(math.Inf(1))

// CostFunc is the edge cost from a to b on grid; DefaultCost returns Inf
// if either endpoint is blocked.
type CostFunc func(grid *navgrid.NavGrid, a, b coord.Coord) float32

// HeuristicFunc estimates the remaining cost from a to b.
type HeuristicFunc func(a, b coord.Coord) float32

// MoveFunc is invoked once per executed step with the newly-occupied
// coord.
type MoveFunc func(next coord.Coord)

// ChangedCoordsFunc returns the cells whose blocked state changed since
// the planner last checked, or nil/empty if nothing changed.
type ChangedCoordsFunc func() []coord.Coord

// DefaultCost is |a-b| in the grid's active metric (Euclidean on Conn8,
// Manhattan on Conn4), or Inf if either endpoint is blocked.
func DefaultCost(grid *navgrid.NavGrid, a, b coord.Coord) float32 {
	if grid.IsBlocked(a) || grid.IsBlocked(b) {
		return Inf
	}
	return gridDistance(grid, a, b)
}

func gridDistance(grid *navgrid.NavGrid, a, b coord.Coord) float32 {
	dx, dy := float32(a.X-b.X), float32(a.Y-b.Y)
	if grid.Connectivity == navgrid.Conn8 {
		return float32(math.Sqrt(float64(dx*dx + dy*dy)))
	}
	return absf32(dx) + absf32(dy)
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Key is a D*-Lite priority: lexicographically-ordered (K1, K2).
type Key struct{ K1, K2 float32 }

func (a Key) less(b Key) bool {
	if a.K1 != b.K1 {
		return a.K1 < b.K1
	}
	return a.K2 < b.K2
}

type pqEntry struct {
	key Key
	c   coord.Coord
	seq int64
}

type innerHeap []pqEntry

func (h innerHeap) Len() int { return len(h) }
func (h innerHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key.less(h[j].key)
	}
	return h[i].seq < h[j].seq
}
func (h innerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x any)   { *h = append(*h, x.(pqEntry)) }
func (h *innerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// openQueue is the D*-Lite priority queue, keyed lexicographically by
// Key with FIFO tie-break, mirroring coordpq.Queue's heap shape but over
// a two-component key instead of a single float32 cost.
type openQueue struct {
	h       innerHeap
	nextSeq int64
}

func newOpenQueue() *openQueue {
	q := &openQueue{}
	heap.Init(&q.h)
	return q
}

func (q *openQueue) push(key Key, c coord.Coord) {
	heap.Push(&q.h, pqEntry{key: key, c: c, seq: q.nextSeq})
	q.nextSeq++
}

func (q *openQueue) pop() (Key, coord.Coord, bool) {
	if q.h.Len() == 0 {
		return Key{}, coord.Coord{}, false
	}
	e := heap.Pop(&q.h).(pqEntry)
	return e.key, e.c, true
}

func (q *openQueue) peek() (Key, coord.Coord, bool) {
	if q.h.Len() == 0 {
		return Key{}, coord.Coord{}, false
	}
	top := q.h[0]
	return top.key, top.c, true
}

func (q *openQueue) remove(c coord.Coord) bool {
	for i, e := range q.h {
		if e.c.Equal(c) {
			heap.Remove(&q.h, i)
			return true
		}
	}
	return false
}

func (q *openQueue) len() int { return q.h.Len() }

// Planner is one incremental D*-Lite search over a NavGrid.
type Planner struct {
	Grid            *navgrid.NavGrid
	Start, Goal     coord.Coord
	CostFn          CostFunc
	HeuristicFn     HeuristicFunc
	MoveFn          MoveFunc
	ChangedCoordsFn ChangedCoordsFunc
	ForceQuit       bool

	DebugModeEnabled bool
	VisitCount       *coord.CoordHash[int]

	RealRoute  *route.Route
	ProtoRoute *route.Route

	// IntervalSec is set by an Executor's Prepare/PrepareFull to the
	// unit_m/speed_sec time a single step consumes; informational only
	// to the planner itself.
	IntervalSec float32

	g, rhs *coord.CoordHash[float32]
	km     float32
	open   *openQueue
	sLast  coord.Coord
}

// New builds a Planner and seeds the open queue with goal, whose rhs is
// pinned to 0.
func New(grid *navgrid.NavGrid, start, goal coord.Coord) *Planner {
	p := &Planner{
		Grid:        grid,
		Start:       start,
		Goal:        goal,
		CostFn:      DefaultCost,
		VisitCount:  coord.NewCoordHash[int](),
		g:           coord.NewCoordHash[float32](),
		rhs:         coord.NewCoordHash[float32](),
		open:        newOpenQueue(),
		sLast:       start,
		IntervalSec: 1,
	}
	p.HeuristicFn = func(a, b coord.Coord) float32 { return gridDistance(grid, a, b) }
	p.rhs.Insert(goal, 0)
	p.open.push(p.calcKey(goal), goal)
	return p
}

// G returns the current g-value of c, Inf if never computed.
func (p *Planner) G(c coord.Coord) float32 { return p.gOf(c) }

// Rhs returns the current rhs-value of c, Inf if never computed.
func (p *Planner) Rhs(c coord.Coord) float32 { return p.rhsOf(c) }

func (p *Planner) gOf(c coord.Coord) float32 {
	if v, ok := p.g.Get(c); ok {
		return v
	}
	return Inf
}

func (p *Planner) rhsOf(c coord.Coord) float32 {
	if v, ok := p.rhs.Get(c); ok {
		return v
	}
	return Inf
}

func (p *Planner) calcKey(c coord.Coord) Key {
	m := minf32(p.gOf(c), p.rhsOf(c))
	return Key{K1: m + p.HeuristicFn(p.Start, c) + p.km, K2: m}
}

// UpdateVertex recomputes rhs[c] from its successors (goal's rhs stays
// pinned at 0), drops any stale queue entry for c, and re-inserts c with
// its current key if g and rhs disagree.
func (p *Planner) UpdateVertex(c coord.Coord) {
	if !c.Equal(p.Goal) {
		best := Inf
		for _, succ := range p.Grid.Neighbors(c) {
			cand := p.CostFn(p.Grid, c, succ) + p.gOf(succ)
			if cand < best {
				best = cand
			}
		}
		p.rhs.Insert(c, best)
	}
	p.open.remove(c)
	if p.gOf(c) != p.rhsOf(c) {
		p.open.push(p.calcKey(c), c)
	}
}

// ComputeShortestRoute drains the open queue until the top key is no
// longer less than k(start) and g(start)==rhs(start), propagating
// g/rhs changes to predecessors as it goes.
func (p *Planner) ComputeShortestRoute() {
	for {
		key, c, ok := p.open.peek()
		if !ok {
			break
		}
		startKey := p.calcKey(p.Start)
		if !key.less(startKey) && p.gOf(p.Start) == p.rhsOf(p.Start) {
			break
		}
		p.open.pop()

		if p.DebugModeEnabled {
			n, _ := p.VisitCount.Get(c)
			p.VisitCount.Insert(c, n+1)
		}

		if newKey := p.calcKey(c); newKey != key {
			p.open.push(newKey, c)
			continue
		}

		if p.gOf(c) > p.rhsOf(c) {
			p.g.Insert(c, p.rhsOf(c))
			for _, pred := range p.Grid.Neighbors(c) {
				p.UpdateVertex(pred)
			}
		} else {
			p.g.Insert(c, Inf)
			p.UpdateVertex(c)
			for _, pred := range p.Grid.Neighbors(c) {
				p.UpdateVertex(pred)
			}
		}
	}
}

// FetchNext returns the neighbor of current that minimizes
// cost(current,next)+g(next) — the planner's deterministic successor
// rule used both by FindProto and by the executor's per-step advance.
func (p *Planner) FetchNext(current coord.Coord) (coord.Coord, bool) {
	best := current
	bestVal := Inf
	found := false
	for _, next := range p.Grid.Neighbors(current) {
		val := p.CostFn(p.Grid, current, next) + p.gOf(next)
		if val < bestVal {
			bestVal, best, found = val, next, true
		}
	}
	return best, found
}

// FindProto runs ComputeShortestRoute then walks FetchNext from Start to
// Goal to build a one-shot initial plan, stored in ProtoRoute (and
// returned).
func (p *Planner) FindProto() *route.Route {
	p.ComputeShortestRoute()

	r := route.New()
	current := p.Start
	r.Coords.Push(current)
	visited := coord.NewCoordHash[struct{}]()
	visited.Insert(current, struct{}{})

	for !current.Equal(p.Goal) {
		next, found := p.FetchNext(current)
		if !found || next.Equal(current) || visited.Contains(next) {
			r.Success = false
			p.ProtoRoute = r
			return r
		}
		r.Coords.Push(next)
		visited.Insert(next, struct{}{})
		current = next
	}
	r.Success = true
	p.ProtoRoute = r
	return r
}

// FoldChangedCoords consults ChangedCoordsFn (a no-op if nil or empty),
// bumps km by h(sLast,Start), updates sLast, and calls UpdateVertex on
// every changed cell. It does not itself rerun ComputeShortestRoute —
// callers (e.g. the executor, or a manual replan loop) do that next.
func (p *Planner) FoldChangedCoords() {
	if p.ChangedCoordsFn == nil {
		return
	}
	changed := p.ChangedCoordsFn()
	if len(changed) == 0 {
		return
	}
	p.km += p.HeuristicFn(p.sLast, p.Start)
	p.sLast = p.Start
	for _, c := range changed {
		p.UpdateVertex(c)
	}
}

// Reset clears g/rhs/open/km back to a fresh planner state for the same
// Grid/Start/Goal, leaving CostFn/HeuristicFn/MoveFn/ChangedCoordsFn
// untouched.
func (p *Planner) Reset() {
	p.g = coord.NewCoordHash[float32]()
	p.rhs = coord.NewCoordHash[float32]()
	p.open = newOpenQueue()
	p.km = 0
	p.sLast = p.Start
	p.rhs.Insert(p.Goal, 0)
	p.open.push(p.calcKey(p.Goal), p.Goal)
}
