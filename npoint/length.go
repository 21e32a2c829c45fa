package npoint

import (
	"math"

	"github.com/sgostarter/libeasygo/cuserror"
	"github.com/sgostarter/libmobility/network"
	"github.com/sgostarter/libmobility/temporal"
)

// Length returns the total length traversed. Only linear motion
// accrues distance; discrete and stepwise variants return 0.
func Length(tm TNPoint, cat network.Catalog) (float64, error) {
	if tm.Interpolation() != temporal.Linear {
		return 0, nil
	}

	switch tv := tm.(type) {
	case *temporal.Sequence[NPoint]:
		return sequenceLength(tv, cat)
	case *temporal.SequenceSet[NPoint]:
		total := 0.0

		for i := 0; i < tv.NumSequences(); i++ {
			length, err := sequenceLength(tv.SequenceAt(i), cat)
			if err != nil {
				return 0, err
			}

			total += length
		}

		return total, nil
	}

	return 0, nil
}

func sequenceLength(seq *temporal.Sequence[NPoint], cat network.Catalog) (float64, error) {
	if seq.NumInstants() == 1 {
		return 0, nil
	}

	rid, err := ensureSameRoute(seq)
	if err != nil {
		return 0, err
	}

	rlength, err := cat.RouteLength(rid)
	if err != nil {
		return 0, err
	}

	fraction := 0.0

	for i := 1; i < seq.NumInstants(); i++ {
		fraction += math.Abs(seq.InstantAt(i).Value.Pos - seq.InstantAt(i-1).Value.Pos)
	}

	return rlength * fraction, nil
}

// CumulativeLength derives the running traversed distance as a
// temporal float. priorLength seeds the total, letting a caller chain
// trajectories.
func CumulativeLength(tm TNPoint, priorLength float64, cat network.Catalog) (TFloat, error) {
	switch tv := tm.(type) {
	case temporal.Instant[NPoint]:
		// No second sample, no accrual possible.
		return temporal.NewInstant(0.0, tv.At), nil
	case *temporal.InstantSet[NPoint]:
		insts := make([]temporal.Instant[float64], 0, tv.NumInstants())

		for _, inst := range tv.Instants() {
			insts = append(insts, temporal.NewInstant(0.0, inst.At))
		}

		return temporal.NewInstantSet(insts)
	case *temporal.Sequence[NPoint]:
		return sequenceCumulativeLength(tv, priorLength, cat)
	case *temporal.SequenceSet[NPoint]:
		seqs := make([]*temporal.Sequence[float64], 0, tv.NumSequences())

		length := priorLength

		for i := 0; i < tv.NumSequences(); i++ {
			seq, err := sequenceCumulativeLength(tv.SequenceAt(i), length, cat)
			if err != nil {
				return nil, err
			}

			seqs = append(seqs, seq)
			length = seq.InstantAt(seq.NumInstants() - 1).Value
		}

		return temporal.NewSequenceSet(seqs, tv.Interpolation())
	}

	return nil, cuserror.NewWithErrorMsg("unknown temporal kind")
}

func sequenceCumulativeLength(seq *temporal.Sequence[NPoint], priorLength float64, cat network.Catalog) (*temporal.Sequence[float64], error) {
	insts := make([]temporal.Instant[float64], 0, seq.NumInstants())

	if seq.Interpolation() == temporal.Step {
		// Distance does not accrue without the linear motion assumption.
		for _, inst := range seq.Instants() {
			insts = append(insts, temporal.NewInstant(priorLength, inst.At))
		}

		return temporal.NewSequence(insts, seq.LowerInc(), seq.UpperInc(), seq.Interpolation())
	}

	rid, err := ensureSameRoute(seq)
	if err != nil {
		return nil, err
	}

	rlength, err := cat.RouteLength(rid)
	if err != nil {
		return nil, err
	}

	length := priorLength

	insts = append(insts, temporal.NewInstant(length, seq.InstantAt(0).At))

	for i := 1; i < seq.NumInstants(); i++ {
		inst := seq.InstantAt(i)

		length += math.Abs(inst.Value.Pos-seq.InstantAt(i-1).Value.Pos) * rlength
		insts = append(insts, temporal.NewInstant(length, inst.At))
	}

	return temporal.NewSequence(insts, seq.LowerInc(), seq.UpperInc(), seq.Interpolation())
}
