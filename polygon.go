package origami

import (
	"math"
	"sort"
)

// geomEpsilon separates "on the crease" from "strictly on one side" during
// splits, and collapses coincident vertices before hull construction.
const geomEpsilon = 1e-9

// Polygon is an ordered ring of vertices. The simulator maintains two
// invariants between folds: at least 3 vertices, and counter-clockwise
// winding (positive signed area). Transforms return new polygons; folds never
// alias vertex storage across iterations.
type Polygon []Point

// Rect returns the axis-aligned rectangle (x,y)-(x+w,y+h) as a CCW polygon.
func Rect(x, y, w, h float64) Polygon {
	return Polygon{
		Pt(x, y),
		Pt(x+w, y),
		Pt(x+w, y+h),
		Pt(x, y+h),
	}
}

// SignedArea returns the shoelace area: positive for counter-clockwise rings.
func (pg Polygon) SignedArea() float64 {
	if len(pg) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pg {
		q := pg[(i+1)%len(pg)]
		sum += p.Cross(q)
	}
	return sum / 2
}

// IsCCW reports whether the ring has positive signed area.
func (pg Polygon) IsCCW() bool {
	return pg.SignedArea() > 0
}

// EnsureCCW returns the ring with positive winding, reversing if needed.
func (pg Polygon) EnsureCCW() Polygon {
	if len(pg) < 3 || pg.IsCCW() {
		return pg
	}
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[len(pg)-1-i] = p
	}
	return out
}

// Bounds returns the axis-aligned bounding box as (min, max) corners.
// An empty polygon yields two zero points.
func (pg Polygon) Bounds() (Point, Point) {
	if len(pg) == 0 {
		return Point{}, Point{}
	}
	min, max := pg[0], pg[0]
	for _, p := range pg[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Centroid returns the vertex average. Good enough for recentering; the
// simulator never needs the exact area centroid.
func (pg Polygon) Centroid() Point {
	if len(pg) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pg {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(pg)))
}

// Clone returns an independent copy of the ring.
func (pg Polygon) Clone() Polygon {
	out := make(Polygon, len(pg))
	copy(out, pg)
	return out
}

// line is an infinite crease line: a point on it plus a unit direction.
// The positive side is the one the unit normal (dir rotated CCW) points into.
type line struct {
	origin Point
	dir    Point
}

// side returns the signed distance of p from the line.
func (l line) side(p Point) float64 {
	return p.Sub(l.origin).Dot(l.dir.Perp())
}

// splitByLine cuts the ring into the sub-polygons on the positive and
// negative sides of l in a single Sutherland-Hodgman style pass. Vertices on
// the line (within geomEpsilon) belong to both halves, so the two outputs
// share the crease edge. Either half can come back with fewer than 3
// vertices when the line misses or grazes the ring; callers treat that as a
// failed fold attempt, not an error.
func (pg Polygon) splitByLine(l line) (pos, neg Polygon) {
	n := len(pg)
	if n < 3 {
		return nil, nil
	}
	pos = make(Polygon, 0, n+2)
	neg = make(Polygon, 0, n+2)
	for i := 0; i < n; i++ {
		a := pg[i]
		b := pg[(i+1)%n]
		sa := l.side(a)
		sb := l.side(b)

		if sa >= -geomEpsilon {
			pos = append(pos, a)
		}
		if sa <= geomEpsilon {
			neg = append(neg, a)
		}
		// Strict sign change: emit the crossing point into both halves.
		if (sa > geomEpsilon && sb < -geomEpsilon) || (sa < -geomEpsilon && sb > geomEpsilon) {
			t := sa / (sa - sb)
			x := a.Lerp(b, t)
			pos = append(pos, x)
			neg = append(neg, x)
		}
	}
	return pos, neg
}

// convexHull returns the convex hull of pts as a CCW ring via Andrew's
// monotone chain. Coincident points (within geomEpsilon) are collapsed first
// so folds that land vertices on top of each other cannot degrade the hull.
// Fewer than 3 distinct points yield a ring shorter than 3, which fold
// attempts reject.
func convexHull(pts []Point) Polygon {
	uniq := dedupePoints(pts)
	n := len(uniq)
	if n < 3 {
		return Polygon(uniq)
	}
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].X != uniq[j].X {
			return uniq[i].X < uniq[j].X
		}
		return uniq[i].Y < uniq[j].Y
	})

	hull := make([]Point, 0, 2*n)
	// Lower chain.
	for _, p := range uniq {
		for len(hull) >= 2 && hull[len(hull)-1].Sub(hull[len(hull)-2]).Cross(p.Sub(hull[len(hull)-2])) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Upper chain.
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := uniq[i]
		for len(hull) >= lower && hull[len(hull)-1].Sub(hull[len(hull)-2]).Cross(p.Sub(hull[len(hull)-2])) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return Polygon(hull[:len(hull)-1])
}

// dedupePoints drops points that coincide with an already-kept point.
// Quadratic, but fold unions hand it a few dozen points at most.
func dedupePoints(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Approx(q, geomEpsilon) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// fitInto returns the ring recentered on the target rectangle's center and
// uniformly scaled so its longer bounding side equals frac of the target's
// shorter side. The fold loop applies this every few folds to stop the
// silhouette from drifting off-canvas or collapsing to a sliver.
func (pg Polygon) fitInto(x, y, w, h, frac float64) Polygon {
	if len(pg) < 3 || w <= 0 || h <= 0 {
		return pg
	}
	min, max := pg.Bounds()
	bw := max.X - min.X
	bh := max.Y - min.Y
	longest := math.Max(bw, bh)
	if longest <= geomEpsilon {
		return pg
	}
	scale := frac * math.Min(w, h) / longest
	center := Pt(x+w/2, y+h/2)
	from := Pt((min.X+max.X)/2, (min.Y+max.Y)/2)

	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[i] = center.Add(p.Sub(from).Mul(scale))
	}
	return out
}

// clipSegmentToRect clips segment a-b to the rectangle (x,y)-(x+w,y+h) with
// the Liang-Barsky parametric walk. ok is false when the segment lies fully
// outside.
func clipSegmentToRect(a, b Point, x, y, w, h float64) (ca, cb Point, ok bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	if !clip(-dx, a.X-x) || !clip(dx, x+w-a.X) ||
		!clip(-dy, a.Y-y) || !clip(dy, y+h-a.Y) {
		return Point{}, Point{}, false
	}
	ca = Pt(a.X+t0*dx, a.Y+t0*dy)
	cb = Pt(a.X+t1*dx, a.Y+t1*dy)
	return ca, cb, true
}

// segmentIntersection returns the intersection point of segments p1-p2 and
// q1-q2. Parallel and near-parallel pairs report ok=false; the intersection
// pass skips them rather than manufacturing unstable points.
func segmentIntersection(p1, p2, q1, q2 Point) (Point, bool) {
	r := p2.Sub(p1)
	s := q2.Sub(q1)
	denom := r.Cross(s)
	if math.Abs(denom) < geomEpsilon {
		return Point{}, false
	}
	qp := q1.Sub(p1)
	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return p1.Add(r.Mul(t)), true
}
