package collision

import "github.com/jrjojr/byul/numal"

const epsInside = 1e-5

func triangleNormal(a, b, c numal.Vec3) (numal.Vec3, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	l2 := n.LengthSq()
	if l2 <= 1e-20 {
		return numal.Vec3{}, false
	}
	return n.Scale(1 / sqrtf(l2)), true
}

// DetectTriangleCollisionMoving finds the earliest TOI of a projectile
// against a triangle that only translates (Vt, At) over the tick. The
// plane normal is taken once at t_prev; the scalar quadratic along it
// gives the earliest root, at which the projectile is snapped onto the
// plane and tested for barycentric containment against the triangle's
// t_prev vertices (A0, B0, C0); the triangle's own displacement up to the
// impact time is not applied to that containment test.
func DetectTriangleCollisionMoving(P0, Vp, Ap, A0, B0, C0, Vt, At numal.Vec3, tPrev, dt float32) (impactPos numal.Vec3, impactTime float32, ok bool) {
	if dt <= 0 {
		return numal.Vec3{}, 0, false
	}
	n, valid := triangleNormal(A0, B0, C0)
	if !valid {
		return numal.Vec3{}, 0, false
	}

	w0 := P0.Sub(A0)
	vrel := Vp.Sub(Vt)
	arel := Ap.Sub(At)

	s0 := w0.Dot(n)
	vn := vrel.Dot(n)
	an := arel.Dot(n)

	var t0, t1 float32
	solved := false
	if absf(an) < numal.EPS_LEN2 {
		if absf(vn) > numal.EPS_LEN2 {
			tLin := -s0 / vn
			if tLin >= 0 && tLin <= dt {
				t0, t1, solved = tLin, tLin, true
			}
		}
	} else {
		r0, r1, ok2 := numal.SolveQuadraticStable(0.5*an, vn, s0)
		if ok2 {
			t0, t1, solved = r0, r1, true
		}
	}
	if !solved {
		return numal.Vec3{}, 0, false
	}

	th := inf
	if t0 >= 0 && t0 <= dt {
		th = t0
	}
	if t1 >= 0 && t1 <= dt && t1 < th {
		th = t1
	}
	if isInf(th) {
		return numal.Vec3{}, 0, false
	}

	hit := P0.Project(Vp, Ap, th)
	hit = snapToPlane(hit, A0, n)
	if !triContainsPointBarycentric(A0, B0, C0, hit, epsInside) {
		return numal.Vec3{}, 0, false
	}
	return hit, tPrev + th, true
}

func rotatePointAboutAxis(p, center, axisUnit numal.Vec3, angle float32) numal.Vec3 {
	q := numal.QuatFromAxisAngle(axisUnit, angle)
	return center.Add(q.RotateVector(p.Sub(center)))
}

// DetectTriangleCollisionRotating is DetectTriangleCollisionMoving
// generalized to a triangle that also rotates at constant angular
// velocity omega about triCenter. The TOI quadratic still uses the
// normal frozen at t_prev; at each of up to two candidate roots the
// triangle vertices are rebuilt via Rodrigues rotation plus translation
// and re-tested for containment against the instantaneous plane.
func DetectTriangleCollisionRotating(P0, Vp, Ap, A0, B0, C0, Vt, At, triCenter, omega numal.Vec3, tPrev, dt float32) (impactPos numal.Vec3, impactTime float32, ok bool) {
	if dt <= 0 {
		return numal.Vec3{}, 0, false
	}
	n0, valid := triangleNormal(A0, B0, C0)
	if !valid {
		return numal.Vec3{}, 0, false
	}

	w0 := P0.Sub(A0)
	vrel := Vp.Sub(Vt)
	arel := Ap.Sub(At)

	s0 := w0.Dot(n0)
	vn := vrel.Dot(n0)
	an := arel.Dot(n0)

	var r0, r1 float32
	haveRoots := false
	if absf(an) < numal.EPS_LEN2 {
		if absf(vn) > numal.EPS_LEN2 {
			tLin := -s0 / vn
			if tLin >= 0 && tLin <= dt {
				r0, r1, haveRoots = tLin, tLin, true
			}
		}
	} else {
		r0, r1, haveRoots = numal.SolveQuadraticStable(0.5*an, vn, s0)
	}
	if !haveRoots {
		return numal.Vec3{}, 0, false
	}

	evalTriangleAt := func(t float32) (numal.Vec3, numal.Vec3, numal.Vec3) {
		T := numal.Vec3{}.Project(Vt, At, t)
		omegaLen := omega.Length()
		a, b, c := A0, B0, C0
		if omegaLen > numal.EPS_LEN2 {
			axis := omega.Scale(1 / omegaLen)
			angle := omegaLen * t
			a = rotatePointAboutAxis(A0, triCenter, axis, angle)
			b = rotatePointAboutAxis(B0, triCenter, axis, angle)
			c = rotatePointAboutAxis(C0, triCenter, axis, angle)
		}
		return a.Add(T), b.Add(T), c.Add(T)
	}

	cand := [2]float32{r0, r1}
	if cand[0] > cand[1] {
		cand[0], cand[1] = cand[1], cand[0]
	}

	for _, th := range cand {
		if isInf(th) || th < 0 || th > dt {
			continue
		}
		pHit := P0.Project(Vp, Ap, th)
		aT, bT, cT := evalTriangleAt(th)
		nT, validT := triangleNormal(aT, bT, cT)
		if !validT {
			continue
		}
		pHit = snapToPlane(pHit, aT, nT)
		if triContainsPointBarycentric(aT, bT, cT, pHit, epsInside) {
			return pHit, tPrev + th, true
		}
	}
	return numal.Vec3{}, 0, false
}

// DetectTriangleCollisionRotatingAlpha is DetectTriangleCollisionRotating
// generalized to a constant angular acceleration alpha about a fixed unit
// axis kAxisUnit, with rotation angle theta(t) = (omega0·k)*t +
// ½*(alpha·k)*t².
func DetectTriangleCollisionRotatingAlpha(P0, Vp, Ap, A0, B0, C0, Vt, At, triCenter, kAxisUnit, omega0, alpha numal.Vec3, tPrev, dt float32) (impactPos numal.Vec3, impactTime float32, ok bool) {
	if dt <= 0 {
		return numal.Vec3{}, 0, false
	}
	n0, valid := triangleNormal(A0, B0, C0)
	if !valid {
		return numal.Vec3{}, 0, false
	}
	k2 := kAxisUnit.LengthSq()
	if k2 <= 1e-20 {
		return numal.Vec3{}, 0, false
	}
	k := kAxisUnit.Scale(1 / sqrtf(k2))

	w0 := P0.Sub(A0)
	vrel := Vp.Sub(Vt)
	arel := Ap.Sub(At)

	s0 := w0.Dot(n0)
	vn := vrel.Dot(n0)
	an := arel.Dot(n0)

	var r0, r1 float32
	haveRoots := false
	if absf(an) < numal.EPS_LEN2 {
		if absf(vn) > numal.EPS_LEN2 {
			tLin := -s0 / vn
			if tLin >= 0 && tLin <= dt {
				r0, r1, haveRoots = tLin, tLin, true
			}
		} else if absf(s0) <= 1e-6 {
			r0, r1, haveRoots = 0, 0, true
		}
	} else {
		r0, r1, haveRoots = numal.SolveQuadraticStable(0.5*an, vn, s0)
	}
	if !haveRoots {
		return numal.Vec3{}, 0, false
	}

	w0s := omega0.Dot(k)
	als := alpha.Dot(k)

	tryCandidate := func(th float32) (numal.Vec3, float32, bool) {
		if isInf(th) || th < 0 || th > dt {
			return numal.Vec3{}, 0, false
		}
		pHit := P0.Project(Vp, Ap, th)

		theta := w0s*th + 0.5*als*th*th
		T := numal.Vec3{}.Project(Vt, At, th)
		a := rotatePointAboutAxis(A0, triCenter, k, theta).Add(T)
		b := rotatePointAboutAxis(B0, triCenter, k, theta).Add(T)
		c := rotatePointAboutAxis(C0, triCenter, k, theta).Add(T)

		n, validN := triangleNormal(a, b, c)
		if !validN {
			return numal.Vec3{}, 0, false
		}
		pHit = snapToPlane(pHit, a, n)
		if !triContainsPointBarycentric(a, b, c, pHit, epsInside) {
			return numal.Vec3{}, 0, false
		}
		return pHit, tPrev + th, true
	}

	tA, tB := r0, r1
	if tA > tB {
		tA, tB = tB, tA
	}
	if p, t, ok := tryCandidate(tA); ok {
		return p, t, true
	}
	if p, t, ok := tryCandidate(tB); ok {
		return p, t, true
	}
	return numal.Vec3{}, 0, false
}
