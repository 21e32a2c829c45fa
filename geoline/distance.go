package geoline

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Distance returns the minimum planar distance between two geometries
// built from points, multi-points and line strings. ok is false when
// either geometry is empty.
func Distance(a, b orb.Geometry) (float64, bool) {
	pa, pb, ok := closestPoints(a, b)
	if !ok {
		return 0, false
	}

	return planar.Distance(pa, pb), true
}

// ShortestLine returns the connecting line between the closest pair of
// points of the two geometries.
func ShortestLine(a, b orb.Geometry) (orb.LineString, bool) {
	pa, pb, ok := closestPoints(a, b)
	if !ok {
		return nil, false
	}

	return orb.LineString{pa, pb}, true
}

type segment struct {
	a, b orb.Point
}

type shape struct {
	points []orb.Point
	segs   []segment
}

func (s *shape) empty() bool {
	return len(s.points) == 0 && len(s.segs) == 0
}

func decompose(g orb.Geometry, s *shape) {
	switch gv := g.(type) {
	case orb.Point:
		s.points = append(s.points, gv)
	case orb.MultiPoint:
		s.points = append(s.points, gv...)
	case orb.LineString:
		if len(gv) == 1 {
			s.points = append(s.points, gv[0])
		}

		for i := 1; i < len(gv); i++ {
			s.segs = append(s.segs, segment{a: gv[i-1], b: gv[i]})
		}
	case orb.MultiLineString:
		for _, ls := range gv {
			decompose(ls, s)
		}
	case orb.Collection:
		for _, sub := range gv {
			decompose(sub, s)
		}
	}
}

func closestPoints(a, b orb.Geometry) (pa, pb orb.Point, ok bool) {
	var sa, sb shape

	decompose(a, &sa)
	decompose(b, &sb)

	if sa.empty() || sb.empty() {
		return
	}

	best := -1.0

	consider := func(ca, cb orb.Point) {
		d := planar.DistanceSquared(ca, cb)
		if best < 0 || d < best {
			best = d
			pa = ca
			pb = cb
			ok = true
		}
	}

	for _, p := range sa.points {
		for _, q := range sb.points {
			consider(p, q)
		}

		for _, seg := range sb.segs {
			cp, _ := closestPointOnSegment(p, seg.a, seg.b)
			consider(p, cp)
		}
	}

	for _, seg := range sa.segs {
		for _, q := range sb.points {
			cp, _ := closestPointOnSegment(q, seg.a, seg.b)
			consider(cp, q)
		}

		for _, other := range sb.segs {
			ca, cb := closestSegmentPoints(seg, other)
			consider(ca, cb)
		}
	}

	return
}

// closestSegmentPoints returns the closest pair between two segments.
// Properly intersecting segments yield the intersection point twice.
func closestSegmentPoints(s1, s2 segment) (orb.Point, orb.Point) {
	if p, crossed := segmentIntersection(s1, s2); crossed {
		return p, p
	}

	bestA, _ := closestPointOnSegment(s2.a, s1.a, s1.b)
	best := planar.DistanceSquared(bestA, s2.a)
	pa, pb := bestA, s2.a

	if cp, _ := closestPointOnSegment(s2.b, s1.a, s1.b); planar.DistanceSquared(cp, s2.b) < best {
		best = planar.DistanceSquared(cp, s2.b)
		pa, pb = cp, s2.b
	}

	if cp, _ := closestPointOnSegment(s1.a, s2.a, s2.b); planar.DistanceSquared(s1.a, cp) < best {
		best = planar.DistanceSquared(s1.a, cp)
		pa, pb = s1.a, cp
	}

	if cp, _ := closestPointOnSegment(s1.b, s2.a, s2.b); planar.DistanceSquared(s1.b, cp) < best {
		pa, pb = s1.b, cp
	}

	return pa, pb
}

func segmentIntersection(s1, s2 segment) (orb.Point, bool) {
	d1x := s1.b[0] - s1.a[0]
	d1y := s1.b[1] - s1.a[1]
	d2x := s2.b[0] - s2.a[0]
	d2y := s2.b[1] - s2.a[1]

	den := d1x*d2y - d1y*d2x
	if den > -Epsilon && den < Epsilon {
		// Parallel: endpoint projections cover it.
		return orb.Point{}, false
	}

	ex := s2.a[0] - s1.a[0]
	ey := s2.a[1] - s1.a[1]

	t := (ex*d2y - ey*d2x) / den
	u := (ex*d1y - ey*d1x) / den

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return orb.Point{}, false
	}

	return lerpPoint(s1.a, s1.b, t), true
}
