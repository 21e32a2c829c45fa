package npoint

import (
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/sgostarter/libmobility/geoline"
	"github.com/sgostarter/libmobility/network"
	"github.com/sgostarter/libmobility/temporal"
)

// Azimuth derives the temporal heading of a moving network point, in
// radians clockwise from north.
//
// Heading is defined only while the object actually moves, and is
// computed per geometric vertex of the traversed line, not per sample:
// one straight pair of samples may cross several route vertices, each
// with its own heading and an interpolated timestamp. Maximal spans of
// motion between two stationary boundaries become separate stepwise
// sequences of the result; each is closed with one instant repeating
// the last heading at the boundary time, so the run time-covers up to
// where motion stopped. A nil result (without error) means the object
// never moves.
func Azimuth(tm TNPoint, cat network.Catalog) (TFloat, error) {
	if tm.Interpolation() != temporal.Linear {
		return nil, nil
	}

	var seqs []*temporal.Sequence[float64]

	switch tv := tm.(type) {
	case *temporal.Sequence[NPoint]:
		runs, err := sequenceAzimuth(tv, cat)
		if err != nil {
			return nil, err
		}

		seqs = runs
	case *temporal.SequenceSet[NPoint]:
		// Run state does not cross sequence boundaries.
		for i := 0; i < tv.NumSequences(); i++ {
			runs, err := sequenceAzimuth(tv.SequenceAt(i), cat)
			if err != nil {
				return nil, err
			}

			seqs = append(seqs, runs...)
		}
	default:
		return nil, nil
	}

	if len(seqs) == 0 {
		return nil, nil
	}

	seqs, err := mergeRuns(seqs)
	if err != nil {
		return nil, err
	}

	return temporal.NewSequenceSet(seqs, temporal.Step)
}

// mergeRuns joins runs that touch at an inclusive boundary, which
// happens when one member sequence ends moving exactly where the next
// one starts moving. The later run's heading wins at the boundary.
func mergeRuns(runs []*temporal.Sequence[float64]) ([]*temporal.Sequence[float64], error) {
	merged := make([]*temporal.Sequence[float64], 0, len(runs))

	for _, run := range runs {
		if len(merged) == 0 {
			merged = append(merged, run)

			continue
		}

		prev := merged[len(merged)-1]

		boundary := prev.InstantAt(prev.NumInstants() - 1).At
		if !prev.UpperInc() || !run.LowerInc() || !boundary.Equal(run.InstantAt(0).At) {
			merged = append(merged, run)

			continue
		}

		insts := prev.Instants()

		joined, err := temporal.NewSequence(append(insts[:len(insts)-1], run.Instants()...),
			prev.LowerInc(), run.UpperInc(), temporal.Step)
		if err != nil {
			return nil, err
		}

		merged[len(merged)-1] = joined
	}

	return merged, nil
}

func sequenceAzimuth(seq *temporal.Sequence[NPoint], cat network.Catalog) ([]*temporal.Sequence[float64], error) {
	if seq.NumInstants() == 1 {
		return nil, nil
	}

	rid, err := ensureSameRoute(seq)
	if err != nil {
		return nil, err
	}

	line, err := cat.RouteGeometry(rid)
	if err != nil {
		return nil, err
	}

	var runs []*temporal.Sequence[float64]

	var run []temporal.Instant[float64]

	firstRun := true

	closeRun := func(boundary time.Time) error {
		if len(run) == 0 {
			return nil
		}

		// Close the run: repeat the last heading at the boundary so the
		// output covers up to where motion stopped.
		run = append(run, temporal.NewInstant(run[len(run)-1].Value, boundary))

		lowerInc := true
		if firstRun {
			lowerInc = seq.LowerInc()
		}

		closed, err := temporal.NewSequence(run, lowerInc, true, temporal.Step)
		if err != nil {
			return err
		}

		runs = append(runs, closed)
		run = nil
		firstRun = false

		return nil
	}

	for i := 0; i+1 < seq.NumInstants(); i++ {
		inst1 := seq.InstantAt(i)
		inst2 := seq.InstantAt(i + 1)

		insts := pairAzimuth(inst1, inst2, line)
		if len(insts) == 0 {
			// Stationary pair: heading is undefined from here.
			if err := closeRun(inst1.At); err != nil {
				return nil, err
			}

			continue
		}

		run = append(run, insts...)
	}

	if err := closeRun(seq.InstantAt(seq.NumInstants() - 1).At); err != nil {
		return nil, err
	}

	return runs, nil
}

// pairAzimuth computes one heading instant per vertex pair of the line
// traversed between two consecutive samples. Each instant is stamped
// with the time the object passes its first vertex, interpolated from
// the vertex's fraction along the traversed line; the first keeps
// inst1's time.
func pairAzimuth(inst1, inst2 temporal.Instant[NPoint], line orb.LineString) []temporal.Instant[float64] {
	if math.Abs(inst1.Value.Pos-inst2.Value.Pos) < Epsilon {
		return nil
	}

	traj, ok := pairTrajectory(inst1.Value, inst2.Value, line).(orb.LineString)
	if !ok || len(traj) < 2 {
		return nil
	}

	insts := make([]temporal.Instant[float64], 0, len(traj)-1)

	span := inst2.At.Sub(inst1.At)
	at := inst1.At

	for i := 0; i+1 < len(traj); i++ {
		az, defined := geoline.Azimuth(traj[i], traj[i+1])
		if defined {
			insts = append(insts, temporal.NewInstant(az, at))
		}

		fraction := geoline.Locate(traj, traj[i+1])
		at = inst1.At.Add(time.Duration(float64(span) * fraction))
	}

	return insts
}
