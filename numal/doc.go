// Package numal is the self-contained linear-algebra kernel that the rest
// of byul is built on: 3-vectors, quaternions, dual quaternions, planes,
// and rigid transforms, plus the numerical-stability helpers (a Citardauq
// quadratic solver and a colinearity test) that the collision and
// navigation packages depend on for exact, branchless math.
//
// Every operation here is a pure function: inputs are read-only, results
// are returned by value, and nothing retains hidden state between calls.
// Rotation operations assume the caller passes a unit Quat — this package
// never silently renormalizes one for you.
package numal

// EPS_LEN is the "zero length" threshold: a vector whose length is below
// this is treated as having no meaningful direction.
const EPS_LEN = 1e-6

// EPS_LEN2 is the "zero vector" threshold applied to squared length, used
// wherever avoiding a sqrt matters.
const EPS_LEN2 = 1e-12

// EpsEqual is the relative epsilon used by FloatEqual and Vec3.NearlyEqual.
const EpsEqual = 1e-5
