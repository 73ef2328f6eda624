package collision

import "github.com/jrjojr/byul/numal"

// DetectPlaneCollision finds the earliest TOI of a kinematic projectile
// (pos_prev, vel_prev, accel constant over dt) against the plane through
// planePoint with the given normal. It first solves the scalar motion
// along the normal as a quadratic on [0,dt]; if that has no root, it falls
// back to a linear segment-vs-plane test between pos_prev and pos_curr.
// The returned impact position is snapped exactly onto the plane.
func DetectPlaneCollision(posPrev, posCurr, velPrev, accel, planePoint, planeNormal numal.Vec3, tPrev, dt float32) (impactPos numal.Vec3, impactTime float32, ok bool) {
	if dt <= 0 {
		return numal.Vec3{}, 0, false
	}
	n := planeNormal
	nlen2 := n.LengthSq()
	if nlen2 <= numal.EPS_LEN2 {
		return numal.Vec3{}, 0, false
	}
	n = n.Scale(1 / sqrtf(nlen2))

	w0 := posPrev.Sub(planePoint)
	s0 := w0.Dot(n)
	vn := velPrev.Dot(n)
	an := accel.Dot(n)

	tHit := float32(-1)
	if absf(an) < numal.EPS_LEN2 {
		if absf(vn) > numal.EPS_LEN2 {
			tLin := -s0 / vn
			if tLin >= 0 && tLin <= dt {
				tHit = tLin
			}
		} else if absf(s0) <= 1e-6 {
			tHit = 0
		}
	} else {
		r0, r1, solved := numal.SolveQuadraticStable(0.5*an, vn, s0)
		if solved {
			best := inf
			if r0 >= 0 && r0 <= dt {
				best = r0
			}
			if r1 >= 0 && r1 <= dt && r1 < best {
				best = r1
			}
			if !isInf(best) {
				tHit = best
			}
		}
	}

	if tHit >= 0 {
		p := posPrev.Project(velPrev, accel, tHit)
		p = snapToPlane(p, planePoint, n)
		return p, tPrev + tHit, true
	}

	d := posCurr.Sub(posPrev)
	segLen2 := d.LengthSq()
	if segLen2 <= 1e-16 {
		return numal.Vec3{}, 0, false
	}
	nd := n.Dot(d)
	if absf(nd) <= numal.EPS_LEN2 {
		return numal.Vec3{}, 0, false
	}
	const epsDt = 1e-8
	u := -n.Dot(w0) / nd
	if u < -epsDt || u > 1+epsDt {
		return numal.Vec3{}, 0, false
	}
	u = clamp(u, 0, 1)

	hit := posPrev.Add(d.Scale(u))
	hit = snapToPlane(hit, planePoint, n)
	return hit, tPrev + u*dt, true
}
