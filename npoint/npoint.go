package npoint

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/sgostarter/libmobility/geoline"
	"github.com/sgostarter/libmobility/network"
	"github.com/sgostarter/libmobility/temporal"
)

// Epsilon is the fixed tolerance for comparing route positions.
const Epsilon = 1e-12

// NPoint is a location on the route network: a route identifier and a
// fractional position in [0,1] along that route. Immutable value type.
type NPoint struct {
	Rid uint64  `json:"rid" yaml:"rid"`
	Pos float64 `json:"pos" yaml:"pos"`
}

type TNPoint = temporal.Temporal[NPoint]

type TFloat = temporal.Temporal[float64]

func New(rid uint64, pos float64) (NPoint, error) {
	if pos < 0 || pos > 1 {
		return NPoint{}, ErrBadPosition
	}

	return NPoint{
		Rid: rid,
		Pos: pos,
	}, nil
}

func (np NPoint) SameRoute(o NPoint) bool {
	return np.Rid == o.Rid
}

// Equal reports whether two network points name the same position on
// the same route.
func Equal(a, b NPoint) bool {
	return a.Rid == b.Rid && math.Abs(a.Pos-b.Pos) < Epsilon
}

// Same reports whether two network points are the same geographical
// point. Points on different routes may still coincide at a route
// intersection, so the comparison falls back to the projected
// geometries.
func Same(a, b NPoint, cat network.Catalog) (bool, error) {
	if a.Rid == b.Rid {
		return math.Abs(a.Pos-b.Pos) < Epsilon, nil
	}

	ga, err := Geometry(a, cat)
	if err != nil {
		return false, err
	}

	gb, err := Geometry(b, cat)
	if err != nil {
		return false, err
	}

	return geoline.PointsEqual(ga, gb), nil
}

// Geometry projects a network point onto the plane.
func Geometry(np NPoint, cat network.Catalog) (orb.Point, error) {
	line, err := cat.RouteGeometry(np.Rid)
	if err != nil {
		return orb.Point{}, err
	}

	return geoline.PointAtFraction(line, np.Pos), nil
}

// Synchronize restricts two temporal network points to their common
// time domain (see temporal.Synchronize). Returns (nil, nil, nil) when
// the time domains do not intersect.
func Synchronize(a, b TNPoint) (TNPoint, TNPoint, error) {
	return temporal.Synchronize(a, b, lerp)
}

func lerp(a, b NPoint, frac float64) (NPoint, error) {
	if a.Rid != b.Rid {
		return NPoint{}, ErrRouteMismatch
	}

	return NPoint{
		Rid: a.Rid,
		Pos: a.Pos + (b.Pos-a.Pos)*frac,
	}, nil
}

// ensureSameRoute validates that every sample of a linear sequence
// stays on one route and returns that route's id.
func ensureSameRoute(seq *temporal.Sequence[NPoint]) (uint64, error) {
	rid := seq.InstantAt(0).Value.Rid

	for i := 1; i < seq.NumInstants(); i++ {
		if seq.InstantAt(i).Value.Rid != rid {
			return 0, ErrRouteMismatch
		}
	}

	return rid, nil
}
