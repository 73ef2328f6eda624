package numal

// DefaultColinearCosEps is the default cosine threshold for NearlyColinear
// (≈2.56°), matching BYUL_TOI_COLINEAR_COS.
const DefaultColinearCosEps = 0.999

// DefaultCurvatureThresh is the TOI curvature metric above which a single
// Newton refinement is applied to a segment-TOI estimate, matching
// BYUL_TOI_CURVATURE_THRESH.
const DefaultCurvatureThresh = 0.25

// NearlyColinear reports whether a and b point in (nearly) the same or
// opposite direction, within cosEps of the unit dot product. A zero-length
// vector is treated as colinear with anything, so that 1-D collision paths
// still work when v0 or a is null.
func NearlyColinear(a, b Vec3, cosEps float32) bool {
	if a.LengthSq() <= EPS_LEN2 || b.LengthSq() <= EPS_LEN2 {
		return true
	}
	na, nb := a.Normalize(), b.Normalize()
	d := na.Dot(nb)
	if d < 0 {
		d = -d
	}
	return d >= cosEps
}
