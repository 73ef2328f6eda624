package numal

// DualQuat represents a rigid motion (rotation + translation) as a pair
// of quaternions (Real, Dual).
type DualQuat struct {
	Real Quat
	Dual Quat
}

// DualQuatFrom builds a DualQuat from a rotation q and translation t:
// Real=q, Dual = ½·(t_q · q) where t_q=(0,tx,ty,tz).
func DualQuatFrom(q Quat, t Vec3) DualQuat {
	tq := Quat{0, t.X, t.Y, t.Z}
	dual := tq.Mul(q)
	dual = Quat{dual.W * 0.5, dual.X * 0.5, dual.Y * 0.5, dual.Z * 0.5}
	return DualQuat{Real: q, Dual: dual}
}

// Rotation returns the rotation component (Real, as-is).
func (d DualQuat) Rotation() Quat { return d.Real }

// Translation recovers t = 2·(dual · conj(real)).xyz.
func (d DualQuat) Translation() Vec3 {
	t := d.Dual.Mul(d.Real.Conjugate())
	return Vec3{2 * t.X, 2 * t.Y, 2 * t.Z}
}

// align flips both parts when Real.W < 0, keeping interpolation on the
// short arc (sign alignment per spec).
func (d DualQuat) align() DualQuat {
	if d.Real.W < 0 {
		return DualQuat{
			Real: Quat{-d.Real.W, -d.Real.X, -d.Real.Y, -d.Real.Z},
			Dual: Quat{-d.Dual.W, -d.Dual.X, -d.Dual.Y, -d.Dual.Z},
		}
	}
	return d
}

func dqNormalize(real, dual Quat) DualQuat {
	l := real.Length()
	if l <= EPS_LEN {
		return DualQuat{Real: Identity}
	}
	return DualQuat{
		Real: Quat{real.W / l, real.X / l, real.Y / l, real.Z / l},
		Dual: Quat{dual.W / l, dual.X / l, dual.Y / l, dual.Z / l},
	}
}

// Lerp linearly interpolates both parts component-wise and renormalizes.
func (a DualQuat) Lerp(b DualQuat, t float32) DualQuat {
	a, b = a.align(), b.align()
	real := Quat{
		(1-t)*a.Real.W + t*b.Real.W,
		(1-t)*a.Real.X + t*b.Real.X,
		(1-t)*a.Real.Y + t*b.Real.Y,
		(1-t)*a.Real.Z + t*b.Real.Z,
	}
	dual := Quat{
		(1-t)*a.Dual.W + t*b.Dual.W,
		(1-t)*a.Dual.X + t*b.Dual.X,
		(1-t)*a.Dual.Y + t*b.Dual.Y,
		(1-t)*a.Dual.Z + t*b.Dual.Z,
	}
	return dqNormalize(real, dual)
}

// Nlerp is an explicit alias for Lerp (componentwise interpolation +
// renormalize), kept distinct per spec for callers that want to be
// explicit about which interpolation they intend.
func (a DualQuat) Nlerp(b DualQuat, t float32) DualQuat { return a.Lerp(b, t) }

// Slerp interpolates the rotation with quaternion slerp and the
// translation linearly.
func (a DualQuat) Slerp(b DualQuat, t float32) DualQuat {
	a, b = a.align(), b.align()
	rot := a.Real.Slerp(b.Real, t)
	ta, tb := a.Translation(), b.Translation()
	tr := ta.Lerp(tb, t)
	return DualQuatFrom(rot, tr)
}

// WeightedBlend combines several dual quaternions with the given weights
// (lerp-and-renormalize form, the standard DLB blend).
func WeightedBlend(dqs []DualQuat, weights []float32) DualQuat {
	var real, dual Quat
	for i, d := range dqs {
		w := weights[i]
		d = d.align()
		real.W += w * d.Real.W
		real.X += w * d.Real.X
		real.Y += w * d.Real.Y
		real.Z += w * d.Real.Z
		dual.W += w * d.Dual.W
		dual.X += w * d.Dual.X
		dual.Y += w * d.Dual.Y
		dual.Z += w * d.Dual.Z
	}
	return dqNormalize(real, dual)
}
