package numal

// Plane is the set of points x with dot(Normal,x)+D == 0, Normal assumed
// unit-length.
type Plane struct {
	Normal Vec3
	D      float32
}

// NewPlane normalizes n and builds a plane through it with offset d.
func NewPlane(n Vec3, d float32) Plane {
	return Plane{Normal: n.Normalize(), D: d}
}

// PlaneFromPoint builds the plane through point with the given unit
// normal: d = -dot(n, point).
func PlaneFromPoint(n Vec3, point Vec3) Plane {
	nn := n.Normalize()
	return Plane{Normal: nn, D: -nn.Dot(point)}
}

// SignedDistance returns dot(Normal,x)+D.
func (p Plane) SignedDistance(x Vec3) float32 { return p.Normal.Dot(x) + p.D }

// RotateOrigin rotates the plane's normal about the world origin; D is
// preserved because the plane still passes through the same distance from
// the origin along the new normal.
func (p Plane) RotateOrigin(q Quat) Plane {
	return Plane{Normal: q.RotateVector(p.Normal).Normalize(), D: p.D}
}

// RotatePivot rotates the plane about an arbitrary pivot point: the
// anchor point -D·Normal is rotated about pivot, and D is re-derived from
// the rotated anchor, unlike RotateOrigin which preserves D directly.
func (p Plane) RotatePivot(q Quat, pivot Vec3) Plane {
	anchor := p.Normal.Scale(-p.D)
	rel := anchor.Sub(pivot)
	rotated := q.RotateVector(rel).Add(pivot)
	n := q.RotateVector(p.Normal).Normalize()
	return PlaneFromPoint(n, rotated)
}
