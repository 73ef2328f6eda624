package integrator

import "github.com/jrjojr/byul/numal"

// Type selects which scheme Integrate dispatches to.
type Type int

const (
	Euler Type = iota
	SemiImplicit
	Verlet
	RK4
)

// Config pairs an integrator Type with the fixed timestep it runs at.
type Config struct {
	Type Type
	Dt   float32
}

// LinearState is the position/velocity/acceleration triple a linear
// integrator advances. Verlet does not use Velocity; callers using it
// exclusively may leave the field zero.
type LinearState struct {
	Position     numal.Vec3
	Velocity     numal.Vec3
	Acceleration numal.Vec3
}

// AngularState is the orientation/angular-velocity/angular-acceleration
// triple an angular integrator advances.
type AngularState struct {
	Orientation         numal.Quat
	AngularVelocity     numal.Vec3
	AngularAcceleration numal.Vec3
}

// Integrate advances state in place by config.Dt under accel, dispatching
// to the scheme named in config.Type. For Verlet, which needs a previous
// position, this entry point derives one as Position − Velocity·dt and
// advances Position only (Velocity is left unchanged); use
// IntegrateVerlet directly to carry a real previous position across calls.
func Integrate(state *LinearState, accel numal.Vec3, config Config) {
	switch config.Type {
	case Euler:
		IntegrateEuler(state, accel, config.Dt)
	case SemiImplicit:
		IntegrateSemiImplicit(state, accel, config.Dt)
	case RK4:
		IntegrateRK4(state, accel, config.Dt)
	case Verlet:
		prev := state.Position.Sub(state.Velocity.Scale(config.Dt))
		state.Position = IntegrateVerlet(state.Position, prev, accel, config.Dt)
	}
}

// IntegrateEuler applies v←v+a·dt; p←p+v_prev·dt — the velocity update
// uses the NEW velocity only after the position has advanced with the
// OLD one, unlike IntegrateSemiImplicit.
func IntegrateEuler(state *LinearState, accel numal.Vec3, dt float32) {
	vPrev := state.Velocity
	state.Velocity = state.Velocity.Add(accel.Scale(dt))
	state.Position = state.Position.Add(vPrev.Scale(dt))
	state.Acceleration = accel
}

// IntegrateSemiImplicit applies v←v+a·dt; p←p+v·dt, advancing position
// with the already-updated velocity. More stable than plain Euler for
// real-time simulation and the recommended default.
func IntegrateSemiImplicit(state *LinearState, accel numal.Vec3, dt float32) {
	state.Velocity = state.Velocity.Add(accel.Scale(dt))
	state.Position = state.Position.Add(state.Velocity.Scale(dt))
	state.Acceleration = accel
}

// IntegrateVerlet returns the next position via p_next = 2p - p_prev +
// a·dt². The caller owns p_prev across calls; there is no velocity
// state to update.
func IntegrateVerlet(position, prevPosition, accel numal.Vec3, dt float32) numal.Vec3 {
	return position.Scale(2).Sub(prevPosition).Add(accel.Scale(dt * dt))
}

// IntegrateRK4 advances (p,v) one step via the standard 4-stage
// Runge-Kutta scheme with acceleration held constant over dt.
func IntegrateRK4(state *LinearState, accel numal.Vec3, dt float32) {
	type deriv struct {
		dp numal.Vec3
		dv numal.Vec3
	}
	eval := func(v numal.Vec3) deriv {
		return deriv{dp: v, dv: accel}
	}

	k1 := eval(state.Velocity)
	k2 := eval(state.Velocity.Add(k1.dv.Scale(dt / 2)))
	k3 := eval(state.Velocity.Add(k2.dv.Scale(dt / 2)))
	k4 := eval(state.Velocity.Add(k3.dv.Scale(dt)))

	dp := k1.dp.Add(k2.dp.Scale(2)).Add(k3.dp.Scale(2)).Add(k4.dp).Scale(dt / 6)
	dv := k1.dv.Add(k2.dv.Scale(2)).Add(k3.dv.Scale(2)).Add(k4.dv).Scale(dt / 6)

	state.Position = state.Position.Add(dp)
	state.Velocity = state.Velocity.Add(dv)
	state.Acceleration = accel
}

// IntegrateAngular advances orientation by dt under the current angular
// velocity via the exp-map quaternion step q_next = normalize(delta_q(ω,
// dt)·q), then advances angular velocity by angular acceleration.
func IntegrateAngular(state *AngularState, angularAccel numal.Vec3, dt float32) {
	deltaQ := numal.QuatFromAngularVelocity(state.AngularVelocity, dt)
	state.Orientation = deltaQ.Mul(state.Orientation).Normalize()
	state.AngularVelocity = state.AngularVelocity.Add(angularAccel.Scale(dt))
	state.AngularAcceleration = angularAccel
}
