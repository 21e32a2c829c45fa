package npoint

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/sgostarter/libeasygo/cuserror"
	"github.com/sgostarter/libmobility/geoline"
	"github.com/sgostarter/libmobility/network"
	"github.com/sgostarter/libmobility/temporal"
)

// Distance computes the distance-over-time signal of two moving
// network points: both operands are synchronized onto their common
// timestamp set and the planar distance is evaluated pointwise per
// matching instant. A nil result (without error) means the time
// domains do not intersect.
func Distance(a, b TNPoint, cat network.Catalog) (TFloat, error) {
	_, signal, err := synchronizedDistance(a, b, cat)

	return signal, err
}

// NearestApproachDistance returns the minimum of the distance-over-time
// signal. ok is false when the operands never overlap in time.
func NearestApproachDistance(a, b TNPoint, cat network.Catalog) (d float64, ok bool, err error) {
	signal, err := Distance(a, b, cat)
	if err != nil || signal == nil {
		return
	}

	d, ok = temporal.MinValue(signal, lessFloat)

	return
}

// NearestApproachInstant returns the first operand's position at the
// earliest instant where the distance-over-time signal attains its
// minimum.
func NearestApproachInstant(a, b TNPoint, cat network.Catalog) (nearest temporal.Instant[NPoint], ok bool, err error) {
	sa, signal, err := synchronizedDistance(a, b, cat)
	if err != nil || signal == nil {
		return
	}

	minInst, ok := temporal.MinInstant(signal, lessFloat)
	if !ok {
		return
	}

	// The minimum may sit on an exclusive bound where no value is
	// defined; the bound instant still carries the position.
	nearest, ok = instantAt(sa, minInst.At)

	return
}

// ShortestLine returns the line connecting the two operands where they
// come closest, evaluated over their synchronized trajectories.
func ShortestLine(a, b TNPoint, cat network.Catalog) (line orb.LineString, ok bool, err error) {
	sa, sb, err := Synchronize(a, b)
	if err != nil || sa == nil {
		return
	}

	ga, err := Trajectory(sa, cat)
	if err != nil {
		return
	}

	gb, err := Trajectory(sb, cat)
	if err != nil {
		return
	}

	line, ok = geoline.ShortestLine(ga, gb)

	return
}

/*
 * Static operand variants. An empty static geometry is a valid "no
 * result" outcome, not an error.
 */

func NearestApproachDistanceGeometry(tm TNPoint, g orb.Geometry, cat network.Catalog) (d float64, ok bool, err error) {
	traj, err := Trajectory(tm, cat)
	if err != nil {
		return
	}

	d, ok = geoline.Distance(traj, g)

	return
}

func NearestApproachDistancePoint(tm TNPoint, np NPoint, cat network.Catalog) (d float64, ok bool, err error) {
	p, err := Geometry(np, cat)
	if err != nil {
		return
	}

	return NearestApproachDistanceGeometry(tm, p, cat)
}

func NearestApproachInstantGeometry(tm TNPoint, g orb.Geometry, cat network.Catalog) (nearest temporal.Instant[NPoint], ok bool, err error) {
	signal, err := sampleDistanceSignal(tm, g, cat)
	if err != nil || signal == nil {
		return
	}

	minInst, ok := temporal.MinInstant(signal, lessFloat)
	if !ok {
		return
	}

	nearest, ok = instantAt(tm, minInst.At)

	return
}

func NearestApproachInstantPoint(tm TNPoint, np NPoint, cat network.Catalog) (temporal.Instant[NPoint], bool, error) {
	p, err := Geometry(np, cat)
	if err != nil {
		return temporal.Instant[NPoint]{}, false, err
	}

	return NearestApproachInstantGeometry(tm, p, cat)
}

func ShortestLineGeometry(tm TNPoint, g orb.Geometry, cat network.Catalog) (line orb.LineString, ok bool, err error) {
	traj, err := Trajectory(tm, cat)
	if err != nil {
		return
	}

	line, ok = geoline.ShortestLine(traj, g)

	return
}

func ShortestLinePoint(tm TNPoint, np NPoint, cat network.Catalog) (orb.LineString, bool, error) {
	p, err := Geometry(np, cat)
	if err != nil {
		return nil, false, err
	}

	return ShortestLineGeometry(tm, p, cat)
}

func lessFloat(a, b float64) bool { return a < b }

func synchronizedDistance(a, b TNPoint, cat network.Catalog) (sa TNPoint, signal TFloat, err error) {
	sa, sb, err := Synchronize(a, b)
	if err != nil || sa == nil {
		return
	}

	signal, err = distanceSignal(sa, sb, cat)

	return
}

// distanceSignal zips two synchronized temporal network points into a
// stepwise temporal float of the pointwise planar distances.
func distanceSignal(sa, sb TNPoint, cat network.Catalog) (TFloat, error) {
	switch sav := sa.(type) {
	case temporal.Instant[NPoint]:
		sbv, _ := sb.(temporal.Instant[NPoint])

		d, err := pointDistance(sav.Value, sbv.Value, cat)
		if err != nil {
			return nil, err
		}

		return temporal.NewInstant(d, sav.At), nil
	case *temporal.InstantSet[NPoint]:
		sbv, _ := sb.(*temporal.InstantSet[NPoint])

		insts, err := zipDistances(sav.Instants(), sbv.Instants(), cat)
		if err != nil {
			return nil, err
		}

		return temporal.NewInstantSet(insts)
	case *temporal.Sequence[NPoint]:
		sbv, _ := sb.(*temporal.Sequence[NPoint])

		return sequenceDistance(sav, sbv, cat)
	case *temporal.SequenceSet[NPoint]:
		sbv, _ := sb.(*temporal.SequenceSet[NPoint])

		seqs := make([]*temporal.Sequence[float64], 0, sav.NumSequences())

		for i := 0; i < sav.NumSequences(); i++ {
			seq, err := sequenceDistance(sav.SequenceAt(i), sbv.SequenceAt(i), cat)
			if err != nil {
				return nil, err
			}

			seqs = append(seqs, seq)
		}

		return temporal.NewSequenceSet(seqs, temporal.Step)
	}

	return nil, cuserror.NewWithErrorMsg("unknown temporal kind")
}

func sequenceDistance(sa, sb *temporal.Sequence[NPoint], cat network.Catalog) (*temporal.Sequence[float64], error) {
	insts, err := zipDistances(sa.Instants(), sb.Instants(), cat)
	if err != nil {
		return nil, err
	}

	return temporal.NewSequence(insts, sa.LowerInc(), sa.UpperInc(), temporal.Step)
}

func zipDistances(ia, ib []temporal.Instant[NPoint], cat network.Catalog) ([]temporal.Instant[float64], error) {
	insts := make([]temporal.Instant[float64], 0, len(ia))

	for i := range ia {
		d, err := pointDistance(ia[i].Value, ib[i].Value, cat)
		if err != nil {
			return nil, err
		}

		insts = append(insts, temporal.NewInstant(d, ia[i].At))
	}

	return insts, nil
}

func pointDistance(a, b NPoint, cat network.Catalog) (float64, error) {
	ga, err := Geometry(a, cat)
	if err != nil {
		return 0, err
	}

	gb, err := Geometry(b, cat)
	if err != nil {
		return 0, err
	}

	return planar.Distance(ga, gb), nil
}

func instantAt(tm TNPoint, at time.Time) (temporal.Instant[NPoint], bool) {
	for _, inst := range tm.Instants() {
		if inst.At.Equal(at) {
			return inst, true
		}
	}

	return temporal.Instant[NPoint]{}, false
}

// sampleDistanceSignal evaluates the distance to a static geometry at
// the moving operand's own sample instants.
func sampleDistanceSignal(tm TNPoint, g orb.Geometry, cat network.Catalog) (TFloat, error) {
	insts := make([]temporal.Instant[float64], 0, tm.NumInstants())

	for _, inst := range tm.Instants() {
		// Adjacent sequences of a set may share a boundary sample.
		if n := len(insts); n > 0 && !insts[n-1].At.Before(inst.At) {
			continue
		}

		p, err := Geometry(inst.Value, cat)
		if err != nil {
			return nil, err
		}

		d, ok := geoline.Distance(p, g)
		if !ok {
			// Empty static geometry
			return nil, nil
		}

		insts = append(insts, temporal.NewInstant(d, inst.At))
	}

	if len(insts) == 1 {
		return temporal.NewInstant(insts[0].Value, insts[0].At), nil
	}

	return temporal.NewInstantSet(insts)
}
