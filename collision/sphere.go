package collision

import "github.com/jrjojr/byul/numal"

func snapToSphere(rel numal.Vec3, center numal.Vec3, R float32) numal.Vec3 {
	l := rel.Length()
	if l <= numal.EPS_LEN2 {
		return center
	}
	return center.Add(rel.Scale(R / l))
}

// DetectSphereCollision finds the earliest TOI of a projectile against a
// static sphere of the given radius, using the closed-form segment-TOI
// formulation: the endpoint P1 = p0+v*dt+0.5*a*dt^2 defines a segment
// whose quadratic intersection with the sphere gives the earliest valid
// root s in [0,1], converted to t=s*dt and evaluated on the kinematic
// model rather than by linear interpolation.
func DetectSphereCollision(posPrev, velPrev, accel, targetPos numal.Vec3, targetRadius, tPrev, dt float32) (impactPos numal.Vec3, impactTime float32, ok bool) {
	if dt <= 0 || targetRadius < 0 {
		return numal.Vec3{}, 0, false
	}
	R, R2 := targetRadius, targetRadius*targetRadius

	u0 := posPrev.Sub(targetPos)
	if u0.LengthSq() <= R2 {
		return snapToSphere(u0, targetPos, R), tPrev, true
	}

	p1 := posPrev.Project(velPrev, accel, dt)
	d := p1.Sub(posPrev)

	A := d.Dot(d)
	B := 2 * u0.Dot(d)
	C := u0.Dot(u0) - R2
	if A <= 1e-20 {
		return numal.Vec3{}, 0, false
	}

	s0, s1, solved := numal.SolveQuadraticStable(A, B, C)
	if !solved {
		return numal.Vec3{}, 0, false
	}
	s := inf
	if s0 >= 0 && s0 <= 1 {
		s = s0
	} else if s1 >= 0 && s1 <= 1 {
		s = s1
	}
	if isInf(s) {
		return numal.Vec3{}, 0, false
	}

	tHit := s * dt
	p := posPrev.Project(velPrev, accel, tHit)
	rel := p.Sub(targetPos)
	return snapToSphere(rel, targetPos, R), tPrev + tHit, true
}

// DetectSphereCollisionPrecise is DetectSphereCollision's higher-fidelity
// sibling: when (u0, velPrev, accel) are nearly colinear it solves the
// exact 1-D problem instead, and otherwise applies a single Newton
// refinement to the segment-TOI estimate whenever the curvature metric
// exceeds numal.DefaultCurvatureThresh.
func DetectSphereCollisionPrecise(posPrev, velPrev, accel, targetPos numal.Vec3, targetRadius, tPrev, dt float32) (impactPos numal.Vec3, impactTime float32, ok bool) {
	if dt <= 0 || targetRadius < 0 {
		return numal.Vec3{}, 0, false
	}
	R, R2 := targetRadius, targetRadius*targetRadius

	u0 := posPrev.Sub(targetPos)
	if u0.LengthSq() <= R2 {
		return snapToSphere(u0, targetPos, R), tPrev, true
	}

	colVA := numal.NearlyColinear(velPrev, accel, numal.DefaultColinearCosEps)
	colUV := numal.NearlyColinear(u0, velPrev, numal.DefaultColinearCosEps) ||
		numal.NearlyColinear(u0, accel, numal.DefaultColinearCosEps)
	if colVA && colUV {
		axis := selectAxisFor1D(u0, velPrev, accel)
		x0 := u0.Dot(axis)
		v := velPrev.Dot(axis)
		a := accel.Dot(axis)
		if tExact, found := solve1DExactTime(x0, v, a, R, dt); found {
			p := posPrev.Project(velPrev, accel, tExact)
			rel := p.Sub(targetPos)
			return snapToSphere(rel, targetPos, R), tPrev + tExact, true
		}
	}

	p1 := posPrev.Project(velPrev, accel, dt)
	d := p1.Sub(posPrev)
	A := d.Dot(d)
	B := 2 * u0.Dot(d)
	C := u0.Dot(u0) - R2
	if A <= 1e-20 {
		return numal.Vec3{}, 0, false
	}
	s0, s1, solved := numal.SolveQuadraticStable(A, B, C)
	if !solved {
		return numal.Vec3{}, 0, false
	}
	s := inf
	if s0 >= 0 && s0 <= 1 {
		s = s0
	}
	if s1 >= 0 && s1 <= 1 && s1 < s {
		s = s1
	}
	if isInf(s) {
		return numal.Vec3{}, 0, false
	}

	t0 := s * dt
	curv := curvatureMetric(velPrev, accel, dt)
	tHit := t0
	if curv > numal.DefaultCurvatureThresh {
		tHit = newtonOnceRel(t0, u0, velPrev, accel, R, dt)
	}

	p := posPrev.Project(velPrev, accel, tHit)
	rel := p.Sub(targetPos)
	return snapToSphere(rel, targetPos, R), tPrev + tHit, true
}

// DetectSphereCollisionMoving is DetectSphereCollision generalized to a
// moving (and optionally accelerating) sphere center: the segment TOI is
// solved on the relative motion (pos_prev−target_pos, relative segment),
// and the impact position snaps the projectile onto the sphere centered
// at the target's own position at t_impact.
func DetectSphereCollisionMoving(posPrev, velPrev, accel, targetPos, targetVel, targetAccel numal.Vec3, targetRadius, tPrev, dt float32) (impactPos numal.Vec3, impactTime float32, ok bool) {
	if dt <= 0 || targetRadius < 0 {
		return numal.Vec3{}, 0, false
	}
	R, R2 := targetRadius, targetRadius*targetRadius

	u0 := posPrev.Sub(targetPos)
	if u0.LengthSq() <= R2 {
		return snapToSphere(u0, targetPos, R), tPrev, true
	}

	p1 := posPrev.Project(velPrev, accel, dt)
	c1 := targetPos.Project(targetVel, targetAccel, dt)
	d := p1.Sub(posPrev).Sub(c1.Sub(targetPos))

	A := d.Dot(d)
	B := 2 * u0.Dot(d)
	C := u0.Dot(u0) - R2
	if A <= 1e-20 {
		return numal.Vec3{}, 0, false
	}
	s0, s1, solved := numal.SolveQuadraticStable(A, B, C)
	if !solved {
		return numal.Vec3{}, 0, false
	}
	s := inf
	if s0 >= 0 && s0 <= 1 {
		s = s0
	} else if s1 >= 0 && s1 <= 1 {
		s = s1
	}
	if isInf(s) {
		return numal.Vec3{}, 0, false
	}

	tHit := s * dt
	projHit := posPrev.Project(velPrev, accel, tHit)
	targHit := targetPos.Project(targetVel, targetAccel, tHit)
	rel := projHit.Sub(targHit)
	if rel.Length() <= numal.EPS_LEN2 {
		return projHit, tPrev + tHit, true
	}
	return snapToSphere(rel, targHit, R), tPrev + tHit, true
}

// DetectSphereCollisionMovingPrecise is DetectSphereCollisionMoving's
// high-fidelity sibling, applying the same 1-D-exact / curvature-gated
// Newton refinement as DetectSphereCollisionPrecise to the relative
// motion, plus a dual-seed Newton fallback when the segment TOI has no
// valid root but the curvature metric indicates a likely high-curvature
// miss.
func DetectSphereCollisionMovingPrecise(posPrev, velPrev, accel, targetPos, targetVel, targetAccel numal.Vec3, targetRadius, tPrev, dt float32) (impactPos numal.Vec3, impactTime float32, ok bool) {
	if dt <= 0 || targetRadius < 0 {
		return numal.Vec3{}, 0, false
	}
	R, R2 := targetRadius, targetRadius*targetRadius

	u0 := posPrev.Sub(targetPos)
	vrel := velPrev.Sub(targetVel)
	arel := accel.Sub(targetAccel)

	if u0.LengthSq() <= R2 {
		return snapToSphere(u0, targetPos, R), tPrev, true
	}

	finishAt := func(t float32) (numal.Vec3, float32, bool) {
		projHit := posPrev.Project(velPrev, accel, t)
		targHit := targetPos.Project(targetVel, targetAccel, t)
		rel := projHit.Sub(targHit)
		if rel.Length() <= numal.EPS_LEN2 {
			return projHit, tPrev + t, true
		}
		return snapToSphere(rel, targHit, R), tPrev + t, true
	}

	colVA := numal.NearlyColinear(vrel, arel, numal.DefaultColinearCosEps)
	colUV := numal.NearlyColinear(u0, vrel, numal.DefaultColinearCosEps)
	colUA := numal.NearlyColinear(u0, arel, numal.DefaultColinearCosEps)
	if colVA && (colUV || colUA) {
		axis := selectAxisFor1D(u0, vrel, arel)
		x0 := u0.Dot(axis)
		v := vrel.Dot(axis)
		a := arel.Dot(axis)
		if tExact, found := solve1DExactTime(x0, v, a, R, dt); found {
			return finishAt(tExact)
		}
	}

	d := vrel.Scale(dt).Add(arel.Scale(0.5 * dt * dt))
	A := d.Dot(d)
	B := 2 * u0.Dot(d)
	C := u0.Dot(u0) - R2
	if A <= 1e-20 {
		return numal.Vec3{}, 0, false
	}
	s0, s1, hasRoots := numal.SolveQuadraticStable(A, B, C)
	s := inf
	sInRange := false
	if hasRoots {
		if s0 >= 0 && s0 <= 1 {
			s, sInRange = s0, true
		}
		if s1 >= 0 && s1 <= 1 && s1 < s {
			s, sInRange = s1, true
		}
	}

	curv := curvatureMetric(vrel, arel, dt)

	if sInRange {
		t0 := s * dt
		tHit := t0
		if curv > numal.DefaultCurvatureThresh {
			tHit = newtonOnceRel(t0, u0, vrel, arel, R, dt)
		}
		return finishAt(tHit)
	}

	if curv <= numal.DefaultCurvatureThresh {
		return numal.Vec3{}, 0, false
	}

	d2 := d.Dot(d)
	if d2 <= 1e-20 {
		return numal.Vec3{}, 0, false
	}
	sGuess := clamp(-u0.Dot(d)/d2, 0, 1)
	tSeed1 := sGuess * dt
	tSeed2 := clamp(2*minf32(tSeed1, dt-tSeed1), 0, dt)

	tA := newtonOnceRel(tSeed1, u0, vrel, arel, R, dt)
	tB := newtonOnceRel(tSeed2, u0, vrel, arel, R, dt)
	tBest := tA
	if residualAt(tB, u0, vrel, arel, R) < residualAt(tA, u0, vrel, arel, R) {
		tBest = tB
	}
	tBest = newtonOnceRel(tBest, u0, vrel, arel, R, dt)
	tBest = newtonOnceRel(tBest, u0, vrel, arel, R, dt)

	return finishAt(tBest)
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
