package ground

import (
	"math"

	"github.com/jrjojr/byul/coord"
	"github.com/jrjojr/byul/numal"
)

// Mode selects which of Ground's three representations is active.
type Mode int

const (
	ModeUniform Mode = iota
	ModeTiles
	ModeHeightfield
)

// TileMapper maps a world position to the grid coord its tile override
// table is keyed by. Go closures already capture whatever context a C
// callback would need via an opaque void*, so unlike
// ground_tile_mapper_cb this takes no separate context parameter.
type TileMapper func(posWorld numal.Vec3) coord.Coord

type uniformGround struct {
	body  BodyProps
	plane numal.Plane
}

type tilesGround struct {
	bodyTable  *coord.CoordHash[BodyProps]
	planeTable *coord.CoordHash[numal.Plane]
	mapper     TileMapper
}

type heightfield struct {
	w, h int
	cell float32
	h0   []float32
}

// Ground is a walking/impact surface in one of three representations:
// a single infinite plane, sparse per-cell overrides, or a height grid.
type Ground struct {
	mode   Mode
	uni    uniformGround
	tiles  tilesGround
	height heightfield
}

// NewUniform builds a Ground backed by a single plane and material.
func NewUniform(body BodyProps, plane numal.Plane) *Ground {
	return &Ground{mode: ModeUniform, uni: uniformGround{body: body, plane: plane}}
}

// NewTiles builds a Ground backed by sparse per-cell overrides. bodyTable
// and/or planeTable may be nil, in which case every lookup for that
// concern falls back to uniformFallback. mapper must not be nil.
func NewTiles(bodyTable *coord.CoordHash[BodyProps], planeTable *coord.CoordHash[numal.Plane], mapper TileMapper, uniformFallback BodyProps, uniformPlane numal.Plane) *Ground {
	return &Ground{
		mode: ModeTiles,
		uni:  uniformGround{body: uniformFallback, plane: uniformPlane},
		tiles: tilesGround{
			bodyTable:  bodyTable,
			planeTable: planeTable,
			mapper:     mapper,
		},
	}
}

// NewHeightfield builds a Ground backed by a w×h regular grid of heights
// spaced cell world units apart, row-major h[y*w+x]. The material at
// every point is the uniform default (heightfields carry no per-cell
// material override).
func NewHeightfield(w, h int, cell float32, heights []float32, uniformBody BodyProps) *Ground {
	return &Ground{
		mode:   ModeHeightfield,
		uni:    uniformGround{body: uniformBody},
		height: heightfield{w: w, h: h, cell: cell, h0: heights},
	}
}

func iclamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float32) float32 { return a + (b-a)*clamp01(t) }

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func (hf heightfield) at(ix, iy int) float32 {
	ix = iclamp(ix, 0, hf.w-1)
	iy = iclamp(iy, 0, hf.h-1)
	return hf.h0[iy*hf.w+ix]
}

func (hf heightfield) sampleBilinear(xw, yw float32) float32 {
	if hf.w <= 0 || hf.h <= 0 || hf.cell <= 0 {
		return 0
	}
	gx, gy := xw/hf.cell, yw/hf.cell
	ix := int(math.Floor(float64(gx)))
	iy := int(math.Floor(float64(gy)))
	fx, fy := gx-float32(ix), gy-float32(iy)

	h00 := hf.at(ix, iy)
	h10 := hf.at(ix+1, iy)
	h01 := hf.at(ix, iy+1)
	h11 := hf.at(ix+1, iy+1)

	hx0 := lerp(h00, h10, fx)
	hx1 := lerp(h01, h11, fx)
	return lerp(hx0, hx1, fy)
}

func (hf heightfield) normalAt(xw, yw float32) numal.Vec3 {
	gx, gy := xw/hf.cell, yw/hf.cell
	ix := iclamp(int(math.Floor(float64(gx))), 0, hf.w-1)
	iy := iclamp(int(math.Floor(float64(gy))), 0, hf.h-1)

	hL := hf.at(ix-1, iy)
	hR := hf.at(ix+1, iy)
	hD := hf.at(ix, iy-1)
	hU := hf.at(ix, iy+1)

	dzdx := (hR - hL) / (2 * hf.cell)
	dzdy := (hU - hD) / (2 * hf.cell)

	return numal.NewVec3(-dzdx, -dzdy, 1).Normalize()
}

func planeSamplePoint(p numal.Plane, pos numal.Vec3) numal.Vec3 {
	return pos.Sub(p.Normal.Scale(p.SignedDistance(pos)))
}

// planeEstimateNormal rebuilds an approximate normal the way the source
// does: project three nearby world points onto the plane and take the
// cross product of the resulting in-plane offsets (x-offset × y-offset,
// so the result points toward +Z). For an exact plane whose normal has a
// positive Z component this returns p.Normal, but the estimate is kept to mirror the
// source's raycast/sample symmetry when planes are swapped for
// non-exact surfaces in the future.
func planeEstimateNormal(p numal.Plane, pos numal.Vec3) numal.Vec3 {
	p0 := planeSamplePoint(p, pos)
	qx := pos.Add(numal.NewVec3(0.25, 0, 0))
	qy := pos.Add(numal.NewVec3(0, 0.25, 0))
	px := planeSamplePoint(p, qx)
	py := planeSamplePoint(p, qy)
	ex := px.Sub(p0)
	ey := py.Sub(p0)
	return ex.Cross(ey).Normalize()
}

// SampleAt reports the surface point, unit normal, and material at a
// world position. Always succeeds for a well-formed Ground.
func (g *Ground) SampleAt(posWorld numal.Vec3) (point, normal numal.Vec3, body BodyProps, ok bool) {
	switch g.mode {
	case ModeUniform:
		return planeSamplePoint(g.uni.plane, posWorld), planeEstimateNormal(g.uni.plane, posWorld), g.uni.body, true

	case ModeHeightfield:
		z := g.height.sampleBilinear(posWorld.X, posWorld.Y)
		point = posWorld
		point.Z = z
		return point, g.height.normalAt(posWorld.X, posWorld.Y), g.uni.body, true

	case ModeTiles:
		c, mapped := g.tileCoord(posWorld)

		if mapped && g.tiles.planeTable != nil {
			if pl, found := g.tiles.planeTable.Get(c); found {
				return planeSamplePoint(pl, posWorld), planeEstimateNormal(pl, posWorld), g.tileBody(c, mapped), true
			}
		}
		return planeSamplePoint(g.uni.plane, posWorld), planeEstimateNormal(g.uni.plane, posWorld), g.tileBody(c, mapped), true
	}
	return numal.Vec3{}, numal.Vec3{}, BodyProps{}, false
}

func (g *Ground) tileCoord(posWorld numal.Vec3) (coord.Coord, bool) {
	if g.tiles.mapper == nil {
		return coord.Coord{}, false
	}
	return g.tiles.mapper(posWorld), true
}

func (g *Ground) tileBody(c coord.Coord, mapped bool) BodyProps {
	if mapped && g.tiles.bodyTable != nil {
		if b, found := g.tiles.bodyTable.Get(c); found {
			return b
		}
	}
	return g.uni.body
}

// MaterialAt fetches only the material at a world position: tiles
// override, else the uniform default (heightfields carry no per-cell
// material).
func (g *Ground) MaterialAt(posWorld numal.Vec3) (BodyProps, bool) {
	if g.mode == ModeTiles {
		c, mapped := g.tileCoord(posWorld)
		if mapped && g.tiles.bodyTable != nil {
			if b, found := g.tiles.bodyTable.Get(c); found {
				return b, true
			}
		}
	}
	return g.uni.body, true
}

const rayEps = 1e-6

// raycastUniform solves the exact analytic ray/plane intersection
// t = −sd/(n·dir), treating |n·dir| ≤ rayEps as parallel (a hit only if
// the origin is already within rayEps of the plane).
func (g *Ground) raycastUniform(origin, dirUnit numal.Vec3, maxDist float32) (point, normal numal.Vec3, body BodyProps, t float32, ok bool) {
	n := g.uni.plane.Normal
	sd := g.uni.plane.SignedDistance(origin)
	denom := n.Dot(dirUnit)

	if absf32(denom) <= rayEps {
		if absf32(sd) <= rayEps {
			return origin, n, g.uni.body, 0, true
		}
		return numal.Vec3{}, numal.Vec3{}, BodyProps{}, 0, false
	}

	th := -sd / denom
	if th < 0 || th > maxDist {
		return numal.Vec3{}, numal.Vec3{}, BodyProps{}, 0, false
	}
	return origin.Add(dirUnit.Scale(th)), n, g.uni.body, th, true
}

// raycastMarching walks the ray in fixed steps (cell/2 for heightfields,
// clamped to a minimum of 0.05, else 0.25) looking for a sign change in
// f(t) = ray_z(t) − ground_z(t), then bisects 16 times to refine the hit.
func (g *Ground) raycastMarching(origin, dirUnit numal.Vec3, maxDist float32) (point, normal numal.Vec3, body BodyProps, t float32, ok bool) {
	step := float32(0.25)
	if g.mode == ModeHeightfield {
		base := g.height.cell * 0.5
		if base > 0.05 {
			step = base
		} else {
			step = 0.05
		}
	}

	fAt := func(t float32) (float32, bool) {
		pos := origin.Add(dirUnit.Scale(t))
		surf, _, _, ok := g.SampleAt(pos)
		if !ok {
			return 0, false
		}
		return pos.Z - surf.Z, true
	}

	tPrev := float32(0)
	fPrev, _ := fAt(0)

	for tCur := step; tCur <= maxDist+1e-6; tCur += step {
		fCur, sampleOk := fAt(tCur)
		if !sampleOk {
			tPrev, fPrev = tCur, 0
			continue
		}

		if fPrev >= 0 && fCur < 0 {
			a, b := tPrev, tCur
			for i := 0; i < 16; i++ {
				m := 0.5 * (a + b)
				fm, _ := fAt(m)
				if fm > 0 {
					a = m
				} else {
					b = m
				}
			}
			thit := 0.5 * (a + b)
			hitPos := origin.Add(dirUnit.Scale(thit))
			surf, nrm, bd, sampleOk := g.SampleAt(hitPos)
			if !sampleOk {
				return numal.Vec3{}, numal.Vec3{}, BodyProps{}, 0, false
			}
			return surf, nrm, bd, thit, true
		}

		tPrev, fPrev = tCur, fCur
	}
	return numal.Vec3{}, numal.Vec3{}, BodyProps{}, 0, false
}

// Raycast fires a ray from origin along dir (need not be normalized) up
// to maxDist, returning the first surface hit.
func (g *Ground) Raycast(origin, dir numal.Vec3, maxDist float32) (point, normal numal.Vec3, body BodyProps, t float32, ok bool) {
	if maxDist <= 0 {
		return numal.Vec3{}, numal.Vec3{}, BodyProps{}, 0, false
	}
	dirUnit := dir.Normalize()
	if g.mode == ModeUniform {
		return g.raycastUniform(origin, dirUnit, maxDist)
	}
	return g.raycastMarching(origin, dirUnit, maxDist)
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
