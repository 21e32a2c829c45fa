package geoline

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Epsilon is the fixed tolerance applied everywhere positions and
// coordinates are compared.
const Epsilon = 1e-12

func PointsEqual(a, b orb.Point) bool {
	return planar.Distance(a, b) < Epsilon
}

func Length(ls orb.LineString) (total float64) {
	for i := 1; i < len(ls); i++ {
		total += planar.Distance(ls[i-1], ls[i])
	}

	return
}

// PointAtFraction returns the point at fraction f in [0,1] of the line
// length, measured from its first vertex.
func PointAtFraction(ls orb.LineString, f float64) orb.Point {
	if len(ls) == 0 {
		return orb.Point{}
	}

	if f <= 0 {
		return ls[0]
	}

	if f >= 1 {
		return ls[len(ls)-1]
	}

	target := f * Length(ls)

	walked := 0.0

	for i := 1; i < len(ls); i++ {
		seg := planar.Distance(ls[i-1], ls[i])
		if walked+seg >= target {
			if seg < Epsilon {
				return ls[i]
			}

			t := (target - walked) / seg

			return lerpPoint(ls[i-1], ls[i], t)
		}

		walked += seg
	}

	return ls[len(ls)-1]
}

// Locate returns the fraction along the line of the point on the line
// closest to p.
func Locate(ls orb.LineString, p orb.Point) float64 {
	if len(ls) < 2 {
		return 0
	}

	total := Length(ls)
	if total < Epsilon {
		return 0
	}

	best := math.MaxFloat64
	bestAt := 0.0
	walked := 0.0

	for i := 1; i < len(ls); i++ {
		seg := planar.Distance(ls[i-1], ls[i])

		cp, t := closestPointOnSegment(p, ls[i-1], ls[i])

		if d := planar.Distance(p, cp); d < best {
			best = d
			bestAt = walked + t*seg
		}

		walked += seg
	}

	return bestAt / total
}

// Substring extracts the part of the line between fractions f1 < f2.
func Substring(ls orb.LineString, f1, f2 float64) orb.LineString {
	if f1 < 0 {
		f1 = 0
	}

	if f2 > 1 {
		f2 = 1
	}

	total := Length(ls)
	if total < Epsilon {
		return orb.LineString{ls[0], ls[len(ls)-1]}
	}

	from := f1 * total
	to := f2 * total

	out := orb.LineString{PointAtFraction(ls, f1)}

	walked := 0.0

	for i := 1; i < len(ls); i++ {
		walked += planar.Distance(ls[i-1], ls[i])

		if walked > from && walked < to {
			appendVertex(&out, ls[i])
		}
	}

	appendVertex(&out, PointAtFraction(ls, f2))

	if len(out) == 1 {
		out = append(out, out[0])
	}

	return out
}

func Reverse(ls orb.LineString) orb.LineString {
	out := make(orb.LineString, len(ls))

	for i, p := range ls {
		out[len(ls)-1-i] = p
	}

	return out
}

// Azimuth returns the north-based clockwise heading from a to b in
// radians in [0, 2π). ok is false when the points coincide.
func Azimuth(a, b orb.Point) (float64, bool) {
	if PointsEqual(a, b) {
		return 0, false
	}

	az := math.Atan2(b[0]-a[0], b[1]-a[1])
	if az < 0 {
		az += 2 * math.Pi
	}

	return az, true
}

func lerpPoint(a, b orb.Point, t float64) orb.Point {
	return orb.Point{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
	}
}

func appendVertex(ls *orb.LineString, p orb.Point) {
	if n := len(*ls); n > 0 && PointsEqual((*ls)[n-1], p) {
		return
	}

	*ls = append(*ls, p)
}

func closestPointOnSegment(p, a, b orb.Point) (orb.Point, float64) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]

	den := dx*dx + dy*dy
	if den < Epsilon*Epsilon {
		return a, 0
	}

	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / den

	if t < 0 {
		t = 0
	}

	if t > 1 {
		t = 1
	}

	return lerpPoint(a, b, t), t
}
