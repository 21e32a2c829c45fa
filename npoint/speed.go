package npoint

import (
	"math"

	"github.com/sgostarter/libeasygo/cuserror"
	"github.com/sgostarter/libmobility/network"
	"github.com/sgostarter/libmobility/temporal"
)

// Speed derives the instantaneous speed signal in length units per
// second. Speed is averaged over the gap to the next sample, so the
// result always carries stepwise interpolation. A nil result (without
// error) means no sequence had enough samples to define a speed.
func Speed(tm TNPoint, cat network.Catalog) (TFloat, error) {
	switch tv := tm.(type) {
	case temporal.Instant[NPoint]:
		return temporal.NewInstant(0.0, tv.At), nil
	case *temporal.InstantSet[NPoint]:
		insts := make([]temporal.Instant[float64], 0, tv.NumInstants())

		for _, inst := range tv.Instants() {
			insts = append(insts, temporal.NewInstant(0.0, inst.At))
		}

		return temporal.NewInstantSet(insts)
	case *temporal.Sequence[NPoint]:
		seq, err := sequenceSpeed(tv, cat)
		if err != nil || seq == nil {
			return nil, err
		}

		return seq, nil
	case *temporal.SequenceSet[NPoint]:
		seqs := make([]*temporal.Sequence[float64], 0, tv.NumSequences())

		for i := 0; i < tv.NumSequences(); i++ {
			seq, err := sequenceSpeed(tv.SequenceAt(i), cat)
			if err != nil {
				return nil, err
			}

			if seq != nil {
				seqs = append(seqs, seq)
			}
		}

		if len(seqs) == 0 {
			return nil, nil
		}

		return temporal.NewSequenceSet(seqs, temporal.Step)
	}

	return nil, cuserror.NewWithErrorMsg("unknown temporal kind")
}

func sequenceSpeed(seq *temporal.Sequence[NPoint], cat network.Catalog) (*temporal.Sequence[float64], error) {
	// Instantaneous sequence: no interval to average over.
	if seq.NumInstants() == 1 {
		return nil, nil
	}

	insts := make([]temporal.Instant[float64], 0, seq.NumInstants())

	if seq.Interpolation() == temporal.Step {
		for _, inst := range seq.Instants() {
			insts = append(insts, temporal.NewInstant(0.0, inst.At))
		}

		return temporal.NewSequence(insts, seq.LowerInc(), seq.UpperInc(), temporal.Step)
	}

	rid, err := ensureSameRoute(seq)
	if err != nil {
		return nil, err
	}

	rlength, err := cat.RouteLength(rid)
	if err != nil {
		return nil, err
	}

	speed := 0.0

	for i := 0; i+1 < seq.NumInstants(); i++ {
		inst1 := seq.InstantAt(i)
		inst2 := seq.InstantAt(i + 1)

		length := math.Abs(inst2.Value.Pos-inst1.Value.Pos) * rlength
		speed = length / inst2.At.Sub(inst1.At).Seconds()

		insts = append(insts, temporal.NewInstant(speed, inst1.At))
	}

	// The final sample repeats the last computed speed.
	insts = append(insts, temporal.NewInstant(speed, seq.InstantAt(seq.NumInstants()-1).At))

	return temporal.NewSequence(insts, seq.LowerInc(), seq.UpperInc(), temporal.Step)
}
