package temporal

import (
	"sort"
	"time"
)

// Synchronize restricts two temporal values to their common time
// domain, resampling each one at the other's breakpoints, so that a
// binary computation can be evaluated pointwise. Both results carry
// the identical timestamp set. A (nil, nil, nil) return means the time
// domains do not intersect.
func Synchronize[V any](a, b Temporal[V], lerp Lerp[V]) (sa, sb Temporal[V], err error) {
	if inst, ok := a.(Instant[V]); ok {
		return syncInstant(inst, b, lerp)
	}

	if inst, ok := b.(Instant[V]); ok {
		sb, sa, err = syncInstant(inst, a, lerp)

		return
	}

	if set, ok := a.(*InstantSet[V]); ok {
		return syncInstantSet(set, b, lerp)
	}

	if set, ok := b.(*InstantSet[V]); ok {
		sb, sa, err = syncInstantSet(set, a, lerp)

		return
	}

	return syncContinuous(a, b, lerp)
}

func syncInstant[V any](inst Instant[V], other Temporal[V], lerp Lerp[V]) (Temporal[V], Temporal[V], error) {
	v, ok, err := ValueAt(other, inst.At, lerp)
	if err != nil {
		return nil, nil, err
	}

	if !ok {
		return nil, nil, nil
	}

	return inst, NewInstant(v, inst.At), nil
}

func syncInstantSet[V any](set *InstantSet[V], other Temporal[V], lerp Lerp[V]) (Temporal[V], Temporal[V], error) {
	insts := make([]Instant[V], 0, len(set.insts))
	others := make([]Instant[V], 0, len(set.insts))

	for _, inst := range set.insts {
		v, ok, err := ValueAt(other, inst.At, lerp)
		if err != nil {
			return nil, nil, err
		}

		if !ok {
			continue
		}

		insts = append(insts, inst)
		others = append(others, NewInstant(v, inst.At))
	}

	if len(insts) == 0 {
		return nil, nil, nil
	}

	rs, err := NewInstantSet(insts)
	if err != nil {
		return nil, nil, err
	}

	ro, err := NewInstantSet(others)
	if err != nil {
		return nil, nil, err
	}

	return rs, ro, nil
}

func syncContinuous[V any](a, b Temporal[V], lerp Lerp[V]) (Temporal[V], Temporal[V], error) {
	seqsA := componentSequences(a)
	seqsB := componentSequences(b)

	outA := make([]*Sequence[V], 0, len(seqsA)+len(seqsB))
	outB := make([]*Sequence[V], 0, len(seqsA)+len(seqsB))

	for _, sa := range seqsA {
		for _, sb := range seqsB {
			ra, rb, err := syncSequences(sa, sb, lerp)
			if err != nil {
				return nil, nil, err
			}

			if ra == nil {
				continue
			}

			outA = append(outA, ra)
			outB = append(outB, rb)
		}
	}

	if len(outA) == 0 {
		return nil, nil, nil
	}

	if a.Kind() == KindSequence && b.Kind() == KindSequence {
		return outA[0], outB[0], nil
	}

	ssa, err := NewSequenceSet(outA, a.Interpolation())
	if err != nil {
		return nil, nil, err
	}

	ssb, err := NewSequenceSet(outB, b.Interpolation())
	if err != nil {
		return nil, nil, err
	}

	return ssa, ssb, nil
}

func syncSequences[V any](a, b *Sequence[V], lerp Lerp[V]) (*Sequence[V], *Sequence[V], error) {
	p, ok := a.Period().Intersect(b.Period())
	if !ok {
		return nil, nil, nil
	}

	times := mergeTimes(a, b, p)

	instsA := make([]Instant[V], 0, len(times))
	instsB := make([]Instant[V], 0, len(times))

	for _, t := range times {
		va, _, err := a.valueAt(t, lerp)
		if err != nil {
			return nil, nil, err
		}

		vb, _, err := b.valueAt(t, lerp)
		if err != nil {
			return nil, nil, err
		}

		instsA = append(instsA, NewInstant(va, t))
		instsB = append(instsB, NewInstant(vb, t))
	}

	ra, err := NewSequence(instsA, p.LowerInc, p.UpperInc, a.interp)
	if err != nil {
		return nil, nil, err
	}

	rb, err := NewSequence(instsB, p.LowerInc, p.UpperInc, b.interp)
	if err != nil {
		return nil, nil, err
	}

	return ra, rb, nil
}

func mergeTimes[V any](a, b *Sequence[V], p Period) []time.Time {
	times := make([]time.Time, 0, len(a.insts)+len(b.insts)+2)
	times = append(times, p.Start)

	for _, inst := range a.insts {
		if inst.At.After(p.Start) && inst.At.Before(p.End) {
			times = append(times, inst.At)
		}
	}

	for _, inst := range b.insts {
		if inst.At.After(p.Start) && inst.At.Before(p.End) {
			times = append(times, inst.At)
		}
	}

	if p.End.After(p.Start) {
		times = append(times, p.End)
	}

	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	dedup := times[:1]
	for _, t := range times[1:] {
		if !t.Equal(dedup[len(dedup)-1]) {
			dedup = append(dedup, t)
		}
	}

	return dedup
}

func componentSequences[V any](tm Temporal[V]) []*Sequence[V] {
	switch tv := tm.(type) {
	case *Sequence[V]:
		return []*Sequence[V]{tv}
	case *SequenceSet[V]:
		return tv.seqs
	}

	return nil
}
