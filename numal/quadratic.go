package numal

import "math"

// SolveQuadraticStable solves A·t²+B·t+C=0 for real roots using the
// Citardauq formulation (multiplying by -B∓√Δ on the opposite branch) to
// avoid the catastrophic cancellation that the naive quadratic formula
// suffers when B is large relative to A·C. Returns (t0, t1, ok); ok is
// false only when the discriminant is negative after accounting for
// rounding. t0 ≤ t1 when both are finite.
func SolveQuadraticStable(A, B, C float32) (t0, t1 float32, ok bool) {
	if A == 0 {
		if B == 0 {
			return 0, 0, false
		}
		t := -C / B
		return t, t, true
	}

	a, b, c := float64(A), float64(B), float64(C)
	disc := b*b - 4*a*c
	if disc < 0 {
		// Allow for rounding: treat a tiny negative discriminant as a
		// repeated root rather than "no real roots".
		if disc > -1e-6*math.Max(1, b*b) {
			disc = 0
		} else {
			return 0, 0, false
		}
	}
	sq := math.Sqrt(disc)

	var q float64
	if b >= 0 {
		q = -0.5 * (b + sq)
	} else {
		q = -0.5 * (b - sq)
	}

	var r0, r1 float64
	if q != 0 {
		r0 = q / a
		r1 = c / q
	} else {
		r0 = -b / (2 * a)
		r1 = r0
	}
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return float32(r0), float32(r1), true
}
