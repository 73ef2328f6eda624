package collision

import (
	"testing"

	"github.com/jrjojr/byul/numal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPlaneCollisionHeadOnHit(t *testing.T) {
	pos0 := numal.NewVec3(0, 10, 0)
	pos1 := numal.NewVec3(0, 0, 0)
	vel := numal.NewVec3(0, -10, 0)
	accel := numal.Vec3{}
	plane := numal.NewVec3(0, 0, 0)
	normal := numal.NewVec3(0, 1, 0)

	impact, tHit, ok := DetectPlaneCollision(pos0, pos1, vel, accel, plane, normal, 0, 1)
	require.True(t, ok)
	assert.InDelta(t, 1, tHit, 1e-4)
	assert.InDelta(t, 0, impact.Y, 1e-3)
}

func TestDetectPlaneCollisionParallelNeverHits(t *testing.T) {
	pos0 := numal.NewVec3(0, 5, 0)
	pos1 := numal.NewVec3(10, 5, 0)
	vel := numal.NewVec3(10, 0, 0)
	accel := numal.Vec3{}
	plane := numal.NewVec3(0, 0, 0)
	normal := numal.NewVec3(0, 1, 0)

	_, _, ok := DetectPlaneCollision(pos0, pos1, vel, accel, plane, normal, 0, 1)
	assert.False(t, ok)
}

func TestDetectSphereCollisionStraightApproach(t *testing.T) {
	pos := numal.NewVec3(0, 0, -10)
	vel := numal.NewVec3(0, 0, 10)
	accel := numal.Vec3{}
	target := numal.Vec3{}

	impact, tHit, ok := DetectSphereCollision(pos, vel, accel, target, 1, 0, 1)
	require.True(t, ok)
	assert.InDelta(t, 1, impact.Length(), 1e-3)
	assert.Less(t, tHit, float32(1))
}

func TestDetectSphereCollisionMiss(t *testing.T) {
	pos := numal.NewVec3(0, 5, -10)
	vel := numal.NewVec3(0, 0, 10)
	accel := numal.Vec3{}
	target := numal.Vec3{}

	_, _, ok := DetectSphereCollision(pos, vel, accel, target, 1, 0, 1)
	assert.False(t, ok)
}

func TestDetectSphereCollisionStartsInside(t *testing.T) {
	pos := numal.NewVec3(0.1, 0, 0)
	vel := numal.NewVec3(1, 0, 0)
	accel := numal.Vec3{}
	target := numal.Vec3{}

	impact, tHit, ok := DetectSphereCollision(pos, vel, accel, target, 1, 3, 1)
	require.True(t, ok)
	assert.Equal(t, float32(3), tHit)
	assert.InDelta(t, 1, impact.Length(), 1e-3)
}

func TestDetectSphereCollisionPreciseColinearMatchesExact(t *testing.T) {
	pos := numal.NewVec3(0, 0, -10)
	vel := numal.NewVec3(0, 0, 5)
	accel := numal.NewVec3(0, 0, 1)
	target := numal.Vec3{}

	impact, tHit, ok := DetectSphereCollisionPrecise(pos, vel, accel, target, 1, 0, 3)
	require.True(t, ok)
	assert.InDelta(t, 1, impact.Length(), 1e-2)
	assert.Greater(t, tHit, float32(0))
}

func TestDetectSphereCollisionMovingTargetRecedingMiss(t *testing.T) {
	pos := numal.NewVec3(0, 0, -10)
	vel := numal.NewVec3(0, 0, 1)
	accel := numal.Vec3{}
	target := numal.Vec3{}
	targetVel := numal.NewVec3(0, 0, 20)

	_, _, ok := DetectSphereCollisionMoving(pos, vel, accel, target, targetVel, numal.Vec3{}, 1, 0, 1)
	assert.False(t, ok)
}

func TestDetectSphereCollisionMovingTargetApproaching(t *testing.T) {
	pos := numal.NewVec3(0, 0, -10)
	vel := numal.Vec3{}
	accel := numal.Vec3{}
	target := numal.NewVec3(0, 0, 5)
	targetVel := numal.NewVec3(0, 0, -20)

	impact, tHit, ok := DetectSphereCollisionMoving(pos, vel, accel, target, targetVel, numal.Vec3{}, 1, 0, 1)
	require.True(t, ok)
	assert.Greater(t, tHit, float32(0))
	assert.LessOrEqual(t, tHit, float32(1))
	_ = impact
}

func TestDetectSphereCollisionMovingPreciseAgreesWithMovingOnColinearCase(t *testing.T) {
	pos := numal.NewVec3(0, 0, -10)
	vel := numal.NewVec3(0, 0, 1)
	accel := numal.Vec3{}
	target := numal.Vec3{}
	targetVel := numal.Vec3{}
	targetAccel := numal.Vec3{}

	impactA, timeA, okA := DetectSphereCollisionMoving(pos, vel, accel, target, targetVel, targetAccel, 1, 0, 20)
	impactB, timeB, okB := DetectSphereCollisionMovingPrecise(pos, vel, accel, target, targetVel, targetAccel, 1, 0, 20)
	require.True(t, okA)
	require.True(t, okB)
	assert.InDelta(t, timeA, timeB, 1e-2)
	assert.InDelta(t, impactA.Length(), impactB.Length(), 1e-2)
}

func flatTriangle() (a, b, c numal.Vec3) {
	return numal.NewVec3(-1, 0, -1), numal.NewVec3(1, 0, -1), numal.NewVec3(0, 0, 1)
}

func TestDetectTriangleCollisionMovingHitsInterior(t *testing.T) {
	a, b, c := flatTriangle()
	p0 := numal.NewVec3(0, 5, 0)
	vp := numal.NewVec3(0, -5, 0)
	ap := numal.Vec3{}

	impact, tHit, ok := DetectTriangleCollisionMoving(p0, vp, ap, a, b, c, numal.Vec3{}, numal.Vec3{}, 0, 1)
	require.True(t, ok)
	assert.InDelta(t, 0, impact.Y, 1e-3)
	assert.InDelta(t, 1, tHit, 1e-4)
}

func TestDetectTriangleCollisionMovingMissesOutsideTriangle(t *testing.T) {
	a, b, c := flatTriangle()
	p0 := numal.NewVec3(5, 5, 5)
	vp := numal.NewVec3(0, -5, 0)
	ap := numal.Vec3{}

	_, _, ok := DetectTriangleCollisionMoving(p0, vp, ap, a, b, c, numal.Vec3{}, numal.Vec3{}, 0, 1)
	assert.False(t, ok)
}

func TestDetectTriangleCollisionMovingTriangleDriftShiftsImpactTime(t *testing.T) {
	// The triangle's own translation only enters the TOI-time solve (via
	// vrel=Vp-Vt along the frozen normal); the containment test still runs
	// against the original A0,B0,C0, so a vertical drift shifts when the
	// hit happens without moving where it lands.
	a, b, c := flatTriangle()
	p0 := numal.NewVec3(0, 5, 0)
	vp := numal.NewVec3(0, -5, 0)
	ap := numal.Vec3{}
	vt := numal.NewVec3(0, -2, 0)

	impact, tHit, ok := DetectTriangleCollisionMoving(p0, vp, ap, a, b, c, vt, numal.Vec3{}, 0, 3)
	require.True(t, ok)
	assert.InDelta(t, float32(5.0/3.0), tHit, 1e-3)
	assert.InDelta(t, 0, impact.Y, 1e-3)
}

func TestDetectTriangleCollisionRotatingZeroOmegaMatchesMoving(t *testing.T) {
	a, b, c := flatTriangle()
	p0 := numal.NewVec3(0, 5, 0)
	vp := numal.NewVec3(0, -5, 0)
	ap := numal.Vec3{}

	impactMoving, timeMoving, okMoving := DetectTriangleCollisionMoving(p0, vp, ap, a, b, c, numal.Vec3{}, numal.Vec3{}, 0, 1)
	impactRot, timeRot, okRot := DetectTriangleCollisionRotating(p0, vp, ap, a, b, c, numal.Vec3{}, numal.Vec3{}, numal.Vec3{}, numal.Vec3{}, 0, 1)
	require.True(t, okMoving)
	require.True(t, okRot)
	assert.InDelta(t, timeMoving, timeRot, 1e-4)
	assert.True(t, impactMoving.NearlyEqual(impactRot))
}

func TestDetectTriangleCollisionRotatingSpinningTriangleStillHit(t *testing.T) {
	a, b, c := flatTriangle()
	p0 := numal.NewVec3(0, 5, 0)
	vp := numal.NewVec3(0, -5, 0)
	ap := numal.Vec3{}
	omega := numal.NewVec3(0, 1, 0)
	center := numal.Vec3{}

	_, tHit, ok := DetectTriangleCollisionRotating(p0, vp, ap, a, b, c, numal.Vec3{}, numal.Vec3{}, center, omega, 0, 1)
	require.True(t, ok)
	assert.InDelta(t, 1, tHit, 1e-4)
}

func TestDetectTriangleCollisionRotatingAlphaZeroMatchesRotating(t *testing.T) {
	a, b, c := flatTriangle()
	p0 := numal.NewVec3(0, 5, 0)
	vp := numal.NewVec3(0, -5, 0)
	ap := numal.Vec3{}
	k := numal.NewVec3(0, 1, 0)
	omega0 := numal.NewVec3(0, 2, 0)

	impactRot, timeRot, okRot := DetectTriangleCollisionRotating(p0, vp, ap, a, b, c, numal.Vec3{}, numal.Vec3{}, numal.Vec3{}, omega0, 0, 1)
	impactAlpha, timeAlpha, okAlpha := DetectTriangleCollisionRotatingAlpha(p0, vp, ap, a, b, c, numal.Vec3{}, numal.Vec3{}, numal.Vec3{}, k, omega0, numal.Vec3{}, 0, 1)
	require.True(t, okRot)
	require.True(t, okAlpha)
	assert.InDelta(t, timeRot, timeAlpha, 1e-3)
	assert.True(t, impactRot.NearlyEqual(impactAlpha))
}

func TestDetectTriangleCollisionRotatingAlphaWithAngularAccel(t *testing.T) {
	a, b, c := flatTriangle()
	p0 := numal.NewVec3(0, 5, 0)
	vp := numal.NewVec3(0, -5, 0)
	ap := numal.Vec3{}
	k := numal.NewVec3(0, 1, 0)
	alpha := numal.NewVec3(0, 3, 0)

	_, tHit, ok := DetectTriangleCollisionRotatingAlpha(p0, vp, ap, a, b, c, numal.Vec3{}, numal.Vec3{}, numal.Vec3{}, k, numal.Vec3{}, alpha, 0, 1)
	require.True(t, ok)
	assert.InDelta(t, 1, tHit, 1e-4)
}
