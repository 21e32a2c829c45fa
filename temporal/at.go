package temporal

import "time"

// Lerp interpolates between two values of V at frac in [0,1]. It may
// fail when no continuous path between the two values exists.
type Lerp[V any] func(a, b V, frac float64) (V, error)

// ValueAt evaluates a temporal value at the given timestamp. ok is
// false when the value is not defined there: outside the period, at an
// exclusive bound, or between the samples of a discrete variant.
func ValueAt[V any](tm Temporal[V], at time.Time, lerp Lerp[V]) (v V, ok bool, err error) {
	switch tv := tm.(type) {
	case Instant[V]:
		if tv.At.Equal(at) {
			return tv.Value, true, nil
		}
	case *InstantSet[V]:
		for _, inst := range tv.insts {
			if inst.At.Equal(at) {
				return inst.Value, true, nil
			}

			if inst.At.After(at) {
				break
			}
		}
	case *Sequence[V]:
		if !tv.Period().Contains(at) {
			return
		}

		return tv.valueAt(at, lerp)
	case *SequenceSet[V]:
		for _, seq := range tv.seqs {
			if seq.Period().Contains(at) {
				return seq.valueAt(at, lerp)
			}
		}
	}

	return
}

// valueAt evaluates inside the sample span without consulting the
// bound inclusivity flags: synchronization samples sequences at
// exclusive bound instants too.
func (s *Sequence[V]) valueAt(at time.Time, lerp Lerp[V]) (v V, ok bool, err error) {
	if at.Before(s.insts[0].At) || at.After(s.insts[len(s.insts)-1].At) {
		return
	}

	n := 0
	for n+1 < len(s.insts) && !s.insts[n+1].At.After(at) {
		n++
	}

	inst1 := s.insts[n]
	if inst1.At.Equal(at) || s.interp == Step || n+1 >= len(s.insts) {
		return inst1.Value, true, nil
	}

	inst2 := s.insts[n+1]
	frac := float64(at.Sub(inst1.At)) / float64(inst2.At.Sub(inst1.At))

	v, err = lerp(inst1.Value, inst2.Value, frac)
	if err != nil {
		return
	}

	return v, true, nil
}
