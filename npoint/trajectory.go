package npoint

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/sgostarter/libeasygo/cuserror"
	"github.com/sgostarter/libmobility/geoline"
	"github.com/sgostarter/libmobility/network"
	"github.com/sgostarter/libmobility/temporal"
)

// Trajectory projects a temporal network point to the planar geometry
// it covers. Stepwise motion has no path between samples, so the
// discrete variants yield the distinct visited points; linear motion
// traces the literal path along the route.
func Trajectory(tm TNPoint, cat network.Catalog) (orb.Geometry, error) {
	switch tv := tm.(type) {
	case temporal.Instant[NPoint]:
		return Geometry(tv.Value, cat)
	case *temporal.InstantSet[NPoint]:
		return visitedGeometry(tv.Instants(), cat)
	case *temporal.Sequence[NPoint]:
		return sequenceTrajectory(tv, cat)
	case *temporal.SequenceSet[NPoint]:
		return sequenceSetTrajectory(tv, cat)
	}

	return nil, cuserror.NewWithErrorMsg("unknown temporal kind")
}

// VisitedPoints returns the distinct network points of the samples, in
// first-visit order.
func VisitedPoints(insts []temporal.Instant[NPoint]) []NPoint {
	points := make([]NPoint, 0, len(insts))

	for _, inst := range insts {
		found := false

		for _, np := range points {
			if Equal(inst.Value, np) {
				found = true

				break
			}
		}

		if !found {
			points = append(points, inst.Value)
		}
	}

	return points
}

func visitedGeometry(insts []temporal.Instant[NPoint], cat network.Catalog) (orb.Geometry, error) {
	points := VisitedPoints(insts)

	if len(points) == 1 {
		return Geometry(points[0], cat)
	}

	mp := make(orb.MultiPoint, 0, len(points))

	for _, np := range points {
		p, err := Geometry(np, cat)
		if err != nil {
			return nil, err
		}

		mp = append(mp, p)
	}

	return mp, nil
}

// pairTrajectory computes the geometry between two consecutive samples
// on one route: a point when the positions coincide, the whole route
// line when the pair spans it, otherwise the route substring, reversed
// when traversed backward.
func pairTrajectory(np1, np2 NPoint, line orb.LineString) orb.Geometry {
	if math.Abs(np1.Pos-np2.Pos) < Epsilon {
		return geoline.PointAtFraction(line, np1.Pos)
	}

	if np1.Pos == 0 && np2.Pos == 1 {
		return line
	}

	if np1.Pos == 1 && np2.Pos == 0 {
		return geoline.Reverse(line)
	}

	if np1.Pos < np2.Pos {
		return geoline.Substring(line, np1.Pos, np2.Pos)
	}

	return geoline.Reverse(geoline.Substring(line, np2.Pos, np1.Pos))
}

func sequenceTrajectory(seq *temporal.Sequence[NPoint], cat network.Catalog) (orb.Geometry, error) {
	if seq.NumInstants() == 1 {
		return Geometry(seq.InstantAt(0).Value, cat)
	}

	if seq.Interpolation() == temporal.Step {
		return visitedGeometry(seq.Instants(), cat)
	}

	rid, err := ensureSameRoute(seq)
	if err != nil {
		return nil, err
	}

	line, err := cat.RouteGeometry(rid)
	if err != nil {
		return nil, err
	}

	var out orb.LineString

	for i := 1; i < seq.NumInstants(); i++ {
		np1 := seq.InstantAt(i - 1).Value
		np2 := seq.InstantAt(i).Value

		if math.Abs(np1.Pos-np2.Pos) < Epsilon {
			continue
		}

		part, _ := pairTrajectory(np1, np2, line).(orb.LineString)

		for _, p := range part {
			appendPoint(&out, p)
		}
	}

	// The object never moves
	if len(out) == 0 {
		return Geometry(seq.InstantAt(0).Value, cat)
	}

	return out, nil
}

func sequenceSetTrajectory(ss *temporal.SequenceSet[NPoint], cat network.Catalog) (orb.Geometry, error) {
	if ss.Interpolation() == temporal.Step {
		return visitedGeometry(ss.Instants(), cat)
	}

	if ss.NumSequences() == 1 {
		return sequenceTrajectory(ss.SequenceAt(0), cat)
	}

	geoms := make([]orb.Geometry, 0, ss.NumSequences())

	for i := 0; i < ss.NumSequences(); i++ {
		g, err := sequenceTrajectory(ss.SequenceAt(i), cat)
		if err != nil {
			return nil, err
		}

		geoms = append(geoms, g)
	}

	return mergeGeometries(geoms), nil
}

func mergeGeometries(geoms []orb.Geometry) orb.Geometry {
	if len(geoms) == 1 {
		return geoms[0]
	}

	var points orb.MultiPoint

	var lines orb.MultiLineString

	for _, g := range geoms {
		switch gv := g.(type) {
		case orb.Point:
			points = append(points, gv)
		case orb.MultiPoint:
			points = append(points, gv...)
		case orb.LineString:
			lines = append(lines, gv)
		}
	}

	if len(lines) == 0 {
		return points
	}

	if len(points) == 0 {
		if len(lines) == 1 {
			return lines[0]
		}

		return lines
	}

	return orb.Collection{points, lines}
}

func appendPoint(ls *orb.LineString, p orb.Point) {
	if n := len(*ls); n > 0 && geoline.PointsEqual((*ls)[n-1], p) {
		return
	}

	*ls = append(*ls, p)
}
