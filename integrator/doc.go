// Package integrator advances kinematic state by a fixed timestep under
// a constant external acceleration, using one of four schemes (Euler,
// semi-implicit Euler, Verlet, RK4) for linear state, plus an
// exponential-map quaternion step for angular state.
//
// Grounded on original_source/byul/numeq/numeq_integrator.h.
package integrator
