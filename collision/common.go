package collision

import (
	"math"

	"github.com/jrjojr/byul/numal"
)

// solve1DExactTime solves x(t) = x0+v*t+0.5*a*t^2 == ±R for the earliest
// t in [0,dt], trying both the +R and -R targets.
func solve1DExactTime(x0, v, a, R, dt float32) (float32, bool) {
	best := float32(inf)
	for _, sgn := range [2]float32{-1, 1} {
		c := x0 - sgn*R
		var t float32 = inf
		if absf(a) <= numal.EPS_LEN2 {
			if absf(v) <= numal.EPS_LEN2 {
				continue
			}
			t = -c / v
		} else {
			t0, t1, ok := numal.SolveQuadraticStable(0.5*a, v, c)
			if !ok {
				continue
			}
			cand := float32(inf)
			if t0 >= 0 && t0 <= dt {
				cand = t0
			}
			if t1 >= 0 && t1 <= dt && t1 < cand {
				cand = t1
			}
			t = cand
		}
		if t >= 0 && t <= dt && t < best {
			best = t
		}
	}
	if isInf(best) {
		return 0, false
	}
	return best, true
}

// curvatureMetric returns |a_perp|*dt / (|v_mid|+1e-6) with v_mid = v +
// a*dt/2 and a_perp the component of a orthogonal to v_mid.
func curvatureMetric(v, a numal.Vec3, dt float32) float32 {
	vmid := v.Add(a.Scale(0.5 * dt))
	vm2 := vmid.LengthSq()
	if vm2 <= numal.EPS_LEN2 {
		return a.Length() * dt
	}
	proj := a.Dot(vmid) / vm2
	aPerp := a.Sub(vmid.Scale(proj))
	return aPerp.Length() * dt / (sqrtf(vm2) + 1e-6)
}

// newtonOnceRel refines t0 toward the root of f(t)=|u0+v*t+0.5*a*t^2|^2-R^2
// with a single Newton step, clamped to [0,dt].
func newtonOnceRel(t0 float32, u0, v, a numal.Vec3, R, dt float32) float32 {
	rt := u0.Add(v.Scale(t0)).Add(a.Scale(0.5 * t0 * t0))
	vel := v.Add(a.Scale(t0))
	f := rt.Dot(rt) - R*R
	fp := 2 * rt.Dot(vel)
	if absf(fp) < numal.EPS_LEN2 {
		return clamp(t0, 0, dt)
	}
	t1 := t0 - f/fp
	return clamp(t1, 0, dt)
}

func residualAt(t float32, u0, v, a numal.Vec3, R float32) float32 {
	rt := u0.Add(v.Scale(t)).Add(a.Scale(0.5 * t * t))
	res := rt.Dot(rt) - R*R
	return absf(res)
}

// triContainsPointBarycentric is a loop-free point-in-triangle test via
// barycentric coordinates, tolerant by eps on each component.
func triContainsPointBarycentric(a, b, c, p numal.Vec3, eps float32) bool {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot11 := v1.Dot(v1)
	dot02 := v0.Dot(v2)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if absf(denom) < 1e-20 {
		return false
	}
	invD := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invD
	v := (dot00*dot12 - dot01*dot02) * invD
	return u >= -eps && v >= -eps && u+v <= 1+eps
}

// snapToPlane removes p's residual component along unit normal n from the
// plane through ref.
func snapToPlane(p, ref, n numal.Vec3) numal.Vec3 {
	off := p.Sub(ref).Dot(n)
	return p.Sub(n.Scale(off))
}

// selectAxisFor1D mirrors the source's axis preference order (v0, a, u0),
// normalizing the first non-near-zero candidate.
func selectAxisFor1D(u0, v0, a numal.Vec3) numal.Vec3 {
	base := v0
	if nearlyZeroVec(base) {
		base = a
	}
	if nearlyZeroVec(base) {
		base = u0
	}
	l := base.Length()
	if l > numal.EPS_LEN2 {
		return base.Scale(1 / l)
	}
	return base
}

func nearlyZeroVec(v numal.Vec3) bool { return v.LengthSq() <= numal.EPS_LEN2 }

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sqrtf(v float32) float32 { return float32(math.Sqrt(float64(v))) }

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var inf = float32(math.Inf(1))

func isInf(v float32) bool { return math.IsInf(float64(v), 0) }
