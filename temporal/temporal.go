package temporal

import "time"

// Interp governs how a continuous sequence is read between two
// consecutive samples.
type Interp int

const (
	Step Interp = iota
	Linear
)

type Kind int

const (
	KindInstant Kind = iota
	KindInstantSet
	KindSequence
	KindSequenceSet
)

// Temporal is the tagged union over the four duration variants.
// Values are immutable once constructed.
type Temporal[V any] interface {
	Kind() Kind
	Interpolation() Interp
	Period() Period
	NumInstants() int
	Instants() []Instant[V]
}

/*
 * Instant
 */

type Instant[V any] struct {
	Value V
	At    time.Time
}

func NewInstant[V any](v V, at time.Time) Instant[V] {
	return Instant[V]{
		Value: v,
		At:    at,
	}
}

func (i Instant[V]) Kind() Kind { return KindInstant }

func (i Instant[V]) Interpolation() Interp { return Step }

func (i Instant[V]) Period() Period {
	return NewPeriod(i.At, i.At, true, true)
}

func (i Instant[V]) NumInstants() int { return 1 }

func (i Instant[V]) Instants() []Instant[V] {
	return []Instant[V]{i}
}

/*
 * InstantSet
 */

// InstantSet is a discrete, time-ordered set of instants. No value is
// defined between two samples.
type InstantSet[V any] struct {
	insts []Instant[V]
}

func NewInstantSet[V any](insts []Instant[V]) (*InstantSet[V], error) {
	if len(insts) == 0 {
		return nil, ErrNoInstants
	}

	if err := ensureIncreasing(insts); err != nil {
		return nil, err
	}

	return &InstantSet[V]{
		insts: append([]Instant[V]{}, insts...),
	}, nil
}

func (is *InstantSet[V]) Kind() Kind { return KindInstantSet }

func (is *InstantSet[V]) Interpolation() Interp { return Step }

func (is *InstantSet[V]) Period() Period {
	return NewPeriod(is.insts[0].At, is.insts[len(is.insts)-1].At, true, true)
}

func (is *InstantSet[V]) NumInstants() int { return len(is.insts) }

func (is *InstantSet[V]) InstantAt(n int) Instant[V] { return is.insts[n] }

func (is *InstantSet[V]) Instants() []Instant[V] {
	return append([]Instant[V]{}, is.insts...)
}

/*
 * Sequence
 */

// Sequence spans the interval between its first and last sample. A
// single-sample sequence is instantaneous and both bounds are
// inclusive.
type Sequence[V any] struct {
	insts    []Instant[V]
	lowerInc bool
	upperInc bool
	interp   Interp
}

func NewSequence[V any](insts []Instant[V], lowerInc, upperInc bool, interp Interp) (*Sequence[V], error) {
	if len(insts) == 0 {
		return nil, ErrNoInstants
	}

	if err := ensureIncreasing(insts); err != nil {
		return nil, err
	}

	if len(insts) == 1 {
		lowerInc = true
		upperInc = true
	}

	return &Sequence[V]{
		insts:    append([]Instant[V]{}, insts...),
		lowerInc: lowerInc,
		upperInc: upperInc,
		interp:   interp,
	}, nil
}

func (s *Sequence[V]) Kind() Kind { return KindSequence }

func (s *Sequence[V]) Interpolation() Interp { return s.interp }

func (s *Sequence[V]) LowerInc() bool { return s.lowerInc }

func (s *Sequence[V]) UpperInc() bool { return s.upperInc }

func (s *Sequence[V]) Period() Period {
	return NewPeriod(s.insts[0].At, s.insts[len(s.insts)-1].At, s.lowerInc, s.upperInc)
}

func (s *Sequence[V]) NumInstants() int { return len(s.insts) }

func (s *Sequence[V]) InstantAt(n int) Instant[V] { return s.insts[n] }

func (s *Sequence[V]) Instants() []Instant[V] {
	return append([]Instant[V]{}, s.insts...)
}

/*
 * SequenceSet
 */

// SequenceSet is a time-ordered collection of disjoint sequences
// sharing one interpolation mode.
type SequenceSet[V any] struct {
	seqs   []*Sequence[V]
	interp Interp
}

func NewSequenceSet[V any](seqs []*Sequence[V], interp Interp) (*SequenceSet[V], error) {
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}

	for i, seq := range seqs {
		if seq.interp != interp {
			return nil, ErrMixedInterpolation
		}

		if i == 0 {
			continue
		}

		if seqs[i-1].Period().Overlaps(seq.Period()) {
			return nil, ErrOverlappingSequences
		}

		if seq.Period().Start.Before(seqs[i-1].Period().End) {
			return nil, ErrOverlappingSequences
		}
	}

	return &SequenceSet[V]{
		seqs:   append([]*Sequence[V]{}, seqs...),
		interp: interp,
	}, nil
}

func (ss *SequenceSet[V]) Kind() Kind { return KindSequenceSet }

func (ss *SequenceSet[V]) Interpolation() Interp { return ss.interp }

func (ss *SequenceSet[V]) Period() Period {
	first := ss.seqs[0].Period()
	last := ss.seqs[len(ss.seqs)-1].Period()

	return NewPeriod(first.Start, last.End, first.LowerInc, last.UpperInc)
}

func (ss *SequenceSet[V]) NumSequences() int { return len(ss.seqs) }

func (ss *SequenceSet[V]) SequenceAt(n int) *Sequence[V] { return ss.seqs[n] }

func (ss *SequenceSet[V]) NumInstants() (n int) {
	for _, seq := range ss.seqs {
		n += len(seq.insts)
	}

	return
}

func (ss *SequenceSet[V]) Instants() []Instant[V] {
	insts := make([]Instant[V], 0, ss.NumInstants())

	for _, seq := range ss.seqs {
		insts = append(insts, seq.insts...)
	}

	return insts
}

func ensureIncreasing[V any](insts []Instant[V]) error {
	for i := 1; i < len(insts); i++ {
		if !insts[i-1].At.Before(insts[i].At) {
			return ErrUnorderedInstants
		}
	}

	return nil
}
