package dstarlite

import (
	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/route"
	"github.com/jrjojr/byul/tick"
)

// MaxStepsPerUpdate bounds how many grid steps a single Executor.Update
// call will consume, regardless of how much elapsed time has built up.
const MaxStepsPerUpdate = 64

// Executor drives one Planner through a tick.Tick scheduler, advancing
// it one grid step every unit_m/speed_sec seconds of accumulated tick
// time.
//
// Grounded on original_source/byul/navsys/dstar_lite/dstar_lite_tick.cpp.
type Executor struct {
	Planner  *Planner
	MaxTime  float32
	UnitM    float32
	SpeedSec float32

	curTime    float32
	curElapsed float32
	ticked     bool
	handle     tick.Handle
}

// NewExecutor builds an Executor with the source's defaults: unit_m=1,
// speed_sec=1, max_time=10.
func NewExecutor(p *Planner) *Executor {
	return &Executor{Planner: p, MaxTime: 10, UnitM: 1, SpeedSec: 1}
}

// NewExecutorFull builds an Executor with caller-chosen movement rate
// and time budget.
func NewExecutorFull(p *Planner, unitM, speedSec, maxTime float32) *Executor {
	return &Executor{Planner: p, UnitM: unitM, SpeedSec: speedSec, MaxTime: maxTime}
}

// Ticked reports whether this executor is still attached and actively
// stepping (false once it has finalized success or failure).
func (e *Executor) Ticked() bool { return e.ticked }

func (e *Executor) requiredTime() float32 { return e.UnitM / e.SpeedSec }

func (e *Executor) resetState() {
	p := e.Planner
	p.sLast = p.Start
	p.RealRoute = route.New()
	p.RealRoute.Coords.Push(p.Start)
	p.VisitCount = coord.NewCoordHash[int]()
	e.ticked = true
	e.curTime = 0
	e.curElapsed = 0
}

// Prepare attaches to tk using the executor's current unit_m/speed_sec,
// resetting RealRoute to [Start] and the visit counter. e itself is used
// as the attach key, standing in for the source's (func,context) pair:
// an Executor already Prepare'd on tk (and not yet Complete'd) cannot be
// Prepare'd again without first detaching.
func (e *Executor) Prepare(tk *tick.Tick) {
	e.resetState()
	e.Planner.IntervalSec = e.requiredTime()
	e.handle, _ = tk.Attach(e, e.Update)
}

// PrepareFull configures unit_m/speed_sec/max_time and attaches to tk.
func (e *Executor) PrepareFull(unitM, speedSec, maxTime float32, tk *tick.Tick) {
	e.UnitM, e.SpeedSec, e.MaxTime = unitM, speedSec, maxTime
	e.resetState()
	e.Planner.IntervalSec = e.requiredTime()
	e.handle, _ = tk.Attach(e, e.Update)
}

// Complete requests detachment from tk and marks the executor no longer
// ticking. Safe to call from inside Update itself.
func (e *Executor) Complete(tk *tick.Tick) {
	tk.RequestDetach(e.handle)
	e.ticked = false
}

// Update is the tick.Func attached by Prepare/PrepareFull: it accumulates
// dt, and while enough elapsed time has built up (and fewer than
// MaxStepsPerUpdate steps have run this call), advances the planner one
// grid step at a time via FetchNext, folds in any changed coords, and
// reruns ComputeShortestRoute, finalizing success/failure once the goal
// is reached, the budget is exhausted, or movement stalls. Finalizing
// sets Ticked to false; Update does not detach the executor, so the tick
// keeps calling it until Complete is called.
func (e *Executor) Update(dt float32) {
	p := e.Planner
	e.curTime += dt
	e.curElapsed += dt

	start := p.Start
	if start.Equal(p.Goal) || e.curTime >= e.MaxTime || p.ForceQuit {
		e.ticked = false
		p.RealRoute.Success = start.Equal(p.Goal)
		return
	}

	required := e.requiredTime()
	steps := 0
	for e.curElapsed >= required && steps < MaxStepsPerUpdate {
		steps++
		e.curElapsed -= required

		if p.rhsOf(start) == Inf {
			p.RealRoute.Success = false
			e.ticked = false
			return
		}

		next, found := p.FetchNext(start)
		if !found || next.Equal(start) {
			p.RealRoute.Success = false
			e.ticked = false
			return
		}

		p.Start = next
		p.UpdateVertex(next)
		p.RealRoute.RecordVisit(next)
		p.RealRoute.Coords.Push(next)

		if p.MoveFn != nil {
			p.MoveFn(next)
		}

		p.FoldChangedCoords()
		p.ComputeShortestRoute()

		if next.Equal(p.Goal) {
			p.RealRoute.Success = true
			e.ticked = false
			return
		}
		start = p.Start
	}

	if e.curTime >= e.MaxTime {
		p.RealRoute.Success = start.Equal(p.Goal)
		e.ticked = false
	}
}
