package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynchronizeInstant(t *testing.T) {
	seq, err := NewSequence([]Instant[float64]{utInst(0, 0), utInst(10, 10)}, true, true, Linear)
	assert.Nil(t, err)

	sa, sb, err := Synchronize[float64](NewInstant(7.0, utAt(4)), seq, utLerp)
	assert.Nil(t, err)
	assert.NotNil(t, sa)
	assert.EqualValues(t, KindInstant, sa.Kind())
	assert.EqualValues(t, KindInstant, sb.Kind())
	assert.InDelta(t, 4, sb.Instants()[0].Value, 1e-9)

	// Outside the period: both nil, no error
	sa, sb, err = Synchronize[float64](NewInstant(7.0, utAt(20)), seq, utLerp)
	assert.Nil(t, err)
	assert.Nil(t, sa)
	assert.Nil(t, sb)
}

func TestSynchronizeInstantSet(t *testing.T) {
	set, err := NewInstantSet([]Instant[float64]{utInst(1, 2), utInst(2, 5), utInst(3, 20)})
	assert.Nil(t, err)

	seq, err := NewSequence([]Instant[float64]{utInst(0, 0), utInst(10, 10)}, true, true, Linear)
	assert.Nil(t, err)

	sa, sb, err := Synchronize[float64](set, seq, utLerp)
	assert.Nil(t, err)

	// The sample at second 20 falls outside the sequence and is dropped
	assert.EqualValues(t, 2, sa.NumInstants())
	assert.EqualValues(t, 2, sb.NumInstants())
	assert.InDelta(t, 2, sb.Instants()[0].Value, 1e-9)
	assert.InDelta(t, 5, sb.Instants()[1].Value, 1e-9)
}

func TestSynchronizeSequences(t *testing.T) {
	a, err := NewSequence([]Instant[float64]{utInst(0, 0), utInst(10, 10)}, true, true, Linear)
	assert.Nil(t, err)

	b, err := NewSequence([]Instant[float64]{utInst(100, 4), utInst(200, 14)}, true, true, Linear)
	assert.Nil(t, err)

	sa, sb, err := Synchronize[float64](a, b, utLerp)
	assert.Nil(t, err)
	assert.EqualValues(t, KindSequence, sa.Kind())

	instsA := sa.Instants()
	instsB := sb.Instants()
	assert.EqualValues(t, len(instsA), len(instsB))

	// Identical timestamp set over the common domain [4, 10]
	assert.Len(t, instsA, 2)
	assert.EqualValues(t, utAt(4), instsA[0].At)
	assert.EqualValues(t, utAt(10), instsA[1].At)

	for i := range instsA {
		assert.EqualValues(t, instsA[i].At, instsB[i].At)
	}

	assert.InDelta(t, 4, instsA[0].Value, 1e-9)
	assert.InDelta(t, 100, instsB[0].Value, 1e-9)
	assert.InDelta(t, 10, instsA[1].Value, 1e-9)
	assert.InDelta(t, 160, instsB[1].Value, 1e-9)
}

func TestSynchronizeBreakpointUnion(t *testing.T) {
	a, err := NewSequence([]Instant[float64]{utInst(0, 0), utInst(10, 10)}, true, true, Linear)
	assert.Nil(t, err)

	b, err := NewSequence([]Instant[float64]{utInst(0, 0), utInst(5, 5), utInst(0, 10)}, true, true, Linear)
	assert.Nil(t, err)

	sa, sb, err := Synchronize[float64](a, b, utLerp)
	assert.Nil(t, err)

	// a gains b's breakpoint at second 5
	assert.EqualValues(t, 3, sa.NumInstants())
	assert.InDelta(t, 5, sa.Instants()[1].Value, 1e-9)
	assert.InDelta(t, 5, sb.Instants()[1].Value, 1e-9)
}

func TestSynchronizeSequenceSet(t *testing.T) {
	s1, err := NewSequence([]Instant[float64]{utInst(0, 0), utInst(1, 2)}, true, true, Linear)
	assert.Nil(t, err)

	s2, err := NewSequence([]Instant[float64]{utInst(2, 6), utInst(3, 8)}, true, true, Linear)
	assert.Nil(t, err)

	ss, err := NewSequenceSet([]*Sequence[float64]{s1, s2}, Linear)
	assert.Nil(t, err)

	b, err := NewSequence([]Instant[float64]{utInst(10, 1), utInst(20, 7)}, true, true, Linear)
	assert.Nil(t, err)

	sa, sb, err := Synchronize[float64](ss, b, utLerp)
	assert.Nil(t, err)
	assert.EqualValues(t, KindSequenceSet, sa.Kind())
	assert.EqualValues(t, KindSequenceSet, sb.Kind())

	ssa, ok := sa.(*SequenceSet[float64])
	assert.True(t, ok)
	assert.EqualValues(t, 2, ssa.NumSequences())

	// Common domains are [1,2] and [6,7]
	p0 := ssa.SequenceAt(0).Period()
	assert.EqualValues(t, utAt(1), p0.Start)
	assert.EqualValues(t, utAt(2), p0.End)

	p1 := ssa.SequenceAt(1).Period()
	assert.EqualValues(t, utAt(6), p1.Start)
	assert.EqualValues(t, utAt(7), p1.End)
}

func TestSynchronizeDisjoint(t *testing.T) {
	a, err := NewSequence([]Instant[float64]{utInst(0, 0), utInst(1, 5)}, true, true, Linear)
	assert.Nil(t, err)

	b, err := NewSequence([]Instant[float64]{utInst(0, 6), utInst(1, 9)}, true, true, Linear)
	assert.Nil(t, err)

	sa, sb, err := Synchronize[float64](a, b, utLerp)
	assert.Nil(t, err)
	assert.Nil(t, sa)
	assert.Nil(t, sb)
}
