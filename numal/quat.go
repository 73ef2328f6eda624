package numal

import "math"

// EulerOrder selects the axis composition order used by Euler conversion.
type EulerOrder int

const (
	EulerZYX EulerOrder = iota
	EulerXYZ
	EulerXZY
	EulerYXZ
	EulerYZX
	EulerZXY
)

// Quat is a (w,x,y,z) quaternion. Rotation operations assume the caller
// passes a unit quaternion; this package never silently renormalizes.
type Quat struct {
	W, X, Y, Z float32
}

// Identity is the no-rotation quaternion.
var Identity = Quat{W: 1}

// NewQuat builds a quaternion from its four components.
func NewQuat(w, x, y, z float32) Quat { return Quat{w, x, y, z} }

// QuatFromAxisAngle builds a rotation of radians around axis. A
// near-zero-length axis yields Identity.
func QuatFromAxisAngle(axis Vec3, radians float32) Quat {
	n := axis.Normalize()
	if n.LengthSq() <= EPS_LEN2 {
		return Identity
	}
	half := radians * 0.5
	s := float32(math.Sin(float64(half)))
	c := float32(math.Cos(float64(half)))
	return Quat{W: c, X: n.X * s, Y: n.Y * s, Z: n.Z * s}
}

// QuatFromAxisDeg is QuatFromAxisAngle with degrees.
func QuatFromAxisDeg(axis Vec3, degrees float32) Quat {
	return QuatFromAxisAngle(axis, degrees*math.Pi/180)
}

func axisQuat(axis byte, radians float32) Quat {
	half := radians * 0.5
	s := float32(math.Sin(float64(half)))
	c := float32(math.Cos(float64(half)))
	switch axis {
	case 'x':
		return Quat{c, s, 0, 0}
	case 'y':
		return Quat{c, 0, s, 0}
	default:
		return Quat{c, 0, 0, s}
	}
}

// QuatFromEuler composes a quaternion from three axis rotations (radians)
// in the given order. Composition order matches byul's original_source:
// e.g. EulerZYX means q = qz * qy * qx (apply x first, then y, then z).
func QuatFromEuler(rx, ry, rz float32, order EulerOrder) Quat {
	qx := axisQuat('x', rx)
	qy := axisQuat('y', ry)
	qz := axisQuat('z', rz)
	switch order {
	case EulerZYX:
		return qz.Mul(qy).Mul(qx)
	case EulerXYZ:
		return qx.Mul(qy).Mul(qz)
	case EulerXZY:
		return qx.Mul(qz).Mul(qy)
	case EulerYXZ:
		return qy.Mul(qx).Mul(qz)
	case EulerYZX:
		return qy.Mul(qz).Mul(qx)
	case EulerZXY:
		return qz.Mul(qx).Mul(qy)
	default:
		return Identity
	}
}

// QuatFromEulerDeg is QuatFromEuler with degrees.
func QuatFromEulerDeg(dx, dy, dz float32, order EulerOrder) Quat {
	const d2r = math.Pi / 180
	return QuatFromEuler(dx*d2r, dy*d2r, dz*d2r, order)
}

// QuatFromAngularVelocity returns the small-angle exp-map quaternion for
// angular velocity omega applied over dt, i.e. the delta_q used by
// integrator.IntegrateAngular.
func QuatFromAngularVelocity(omega Vec3, dt float32) Quat {
	theta := omega.Scale(dt)
	angle := theta.Length()
	if angle <= EPS_LEN {
		return Identity
	}
	return QuatFromAxisAngle(theta, angle)
}

// Mul returns the Hamilton product a*b (apply b first, then a).
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// Conjugate returns (w,-x,-y,-z).
func (a Quat) Conjugate() Quat { return Quat{a.W, -a.X, -a.Y, -a.Z} }

// LengthSq returns the squared 4-norm.
func (a Quat) LengthSq() float32 { return a.W*a.W + a.X*a.X + a.Y*a.Y + a.Z*a.Z }

// Length returns the 4-norm.
func (a Quat) Length() float32 { return float32(math.Sqrt(float64(a.LengthSq()))) }

// Normalize returns a/|a|, or Identity if |a| is near zero.
func (a Quat) Normalize() Quat {
	l := a.Length()
	if l <= EPS_LEN {
		return Identity
	}
	return Quat{a.W / l, a.X / l, a.Y / l, a.Z / l}
}

// Inverse returns the multiplicative inverse (conjugate/|a|² for non-unit
// quaternions, equal to Conjugate for unit ones).
func (a Quat) Inverse() Quat {
	ls := a.LengthSq()
	if ls <= EPS_LEN2 {
		return Identity
	}
	c := a.Conjugate()
	return Quat{c.W / ls, c.X / ls, c.Y / ls, c.Z / ls}
}

// RotateVector rotates v by this quaternion (q * v * q⁻¹).
func (a Quat) RotateVector(v Vec3) Vec3 {
	qv := Quat{0, v.X, v.Y, v.Z}
	r := a.Mul(qv).Mul(a.Conjugate())
	return Vec3{r.X, r.Y, r.Z}
}

// Dot returns the 4-component dot product.
func (a Quat) Dot(b Quat) float32 { return a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Lerp linearly interpolates and renormalizes, taking the short arc.
func (a Quat) Lerp(b Quat, t float32) Quat {
	if a.Dot(b) < 0 {
		b = Quat{-b.W, -b.X, -b.Y, -b.Z}
	}
	return Quat{
		(1-t)*a.W + t*b.W,
		(1-t)*a.X + t*b.X,
		(1-t)*a.Y + t*b.Y,
		(1-t)*a.Z + t*b.Z,
	}.Normalize()
}

// Slerp spherically interpolates from a to b at t ∈ [0,1], choosing the
// short arc by dot-sign. Slerp(q,q,t)==q and Slerp(q0,q1,0)==q0,
// Slerp(q0,q1,1)==q1.
func (a Quat) Slerp(b Quat, t float32) Quat {
	dot := a.Dot(b)
	if dot < 0 {
		b = Quat{-b.W, -b.X, -b.Y, -b.Z}
		dot = -dot
	}
	if dot > 0.9995 {
		return a.Lerp(b, t)
	}
	theta0 := float32(math.Acos(float64(dot)))
	theta := theta0 * t
	sinTheta0 := float32(math.Sin(float64(theta0)))
	sinTheta := float32(math.Sin(float64(theta)))
	s0 := float32(math.Cos(float64(theta))) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0
	return Quat{
		s0*a.W + s1*b.W,
		s0*a.X + s1*b.X,
		s0*a.Y + s1*b.Y,
		s0*a.Z + s1*b.Z,
	}
}

// ToEuler decomposes this quaternion into (rx,ry,rz) radians under the
// given composition order, the inverse of QuatFromEuler for small-angle
// round-trips (subject to gimbal lock).
func (a Quat) ToEuler(order EulerOrder) (rx, ry, rz float32) {
	q := a.Normalize()
	w, x, y, z := q.W, q.X, q.Y, q.Z
	clampOne := func(v float32) float32 {
		if v > 1 {
			return 1
		}
		if v < -1 {
			return -1
		}
		return v
	}
	asin := func(v float32) float32 { return float32(math.Asin(float64(clampOne(v)))) }
	atan2 := func(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

	switch order {
	case EulerZYX:
		rx = atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
		ry = asin(2 * (w*y - z*x))
		rz = atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	case EulerXYZ:
		ry = asin(2 * (w*y + x*z))
		rx = atan2(-2*(y*z-w*x), 1-2*(x*x+y*y))
		rz = atan2(-2*(x*y-w*z), 1-2*(y*y+z*z))
	case EulerXZY:
		rz = asin(2 * (w*z - x*y))
		rx = atan2(2*(y*z+w*x), 1-2*(x*x+z*z))
		ry = atan2(2*(x*z+w*y), 1-2*(z*z+y*y))
	case EulerYXZ:
		rx = asin(2 * (w*x - y*z))
		ry = atan2(2*(x*z+w*y), 1-2*(x*x+y*y))
		rz = atan2(2*(x*y+w*z), 1-2*(x*x+z*z))
	case EulerYZX:
		rz = asin(2 * (w*z + x*y))
		ry = atan2(-2*(x*z-w*y), 1-2*(y*y+z*z))
		rx = atan2(-2*(y*z-w*x), 1-2*(x*x+z*z))
	case EulerZXY:
		rx = asin(2 * (w*x + y*z))
		rz = atan2(-2*(x*y-w*z), 1-2*(x*x+z*z))
		ry = atan2(-2*(x*z-w*y), 1-2*(y*y+z*z))
	}
	return rx, ry, rz
}

// Equal is strict component-wise equality.
func (a Quat) Equal(b Quat) bool { return a.W == b.W && a.X == b.X && a.Y == b.Y && a.Z == b.Z }

// NearlyEqual applies the relative FloatEqual convention component-wise.
func (a Quat) NearlyEqual(b Quat) bool {
	return FloatEqual(a.W, b.W) && FloatEqual(a.X, b.X) && FloatEqual(a.Y, b.Y) && FloatEqual(a.Z, b.Z)
}
