package npoint

import (
	"math"
	"testing"

	"github.com/sgostarter/libmobility/temporal"
	"github.com/stretchr/testify/assert"
)

func TestAzimuthStraightRun(t *testing.T) {
	cat := utCatalog()

	// Moves east until second 10, then stands still
	seq := utLinearSeq(t, utNPInst(1, 0, 0), utNPInst(1, 0.5, 10), utNPInst(1, 0.5, 20))

	az, err := Azimuth(seq, cat)
	assert.Nil(t, err)
	assert.NotNil(t, az)

	ss, ok := az.(*temporal.SequenceSet[float64])
	assert.True(t, ok)
	assert.EqualValues(t, 1, ss.NumSequences())
	assert.EqualValues(t, temporal.Step, ss.Interpolation())

	run := ss.SequenceAt(0)
	assert.EqualValues(t, 2, run.NumInstants())

	// The run closes at the time motion stopped, repeating the heading
	assert.EqualValues(t, utAt(0), run.InstantAt(0).At)
	assert.InDelta(t, math.Pi/2, run.InstantAt(0).Value, 1e-9)
	assert.EqualValues(t, utAt(10), run.InstantAt(1).At)
	assert.InDelta(t, math.Pi/2, run.InstantAt(1).Value, 1e-9)
	assert.True(t, run.UpperInc())
}

func TestAzimuthAcrossVertices(t *testing.T) {
	cat := utCatalog()

	// Full traversal of the L-shaped route: east, then north
	seq := utLinearSeq(t, utNPInst(2, 0, 0), utNPInst(2, 1, 10))

	az, err := Azimuth(seq, cat)
	assert.Nil(t, err)
	assert.NotNil(t, az)

	ss, ok := az.(*temporal.SequenceSet[float64])
	assert.True(t, ok)
	assert.EqualValues(t, 1, ss.NumSequences())

	run := ss.SequenceAt(0)
	assert.EqualValues(t, 3, run.NumInstants())

	assert.EqualValues(t, utAt(0), run.InstantAt(0).At)
	assert.InDelta(t, math.Pi/2, run.InstantAt(0).Value, 1e-9)

	// The corner sits halfway along the route, so the heading changes
	// at the interpolated second 5
	assert.EqualValues(t, utAt(5), run.InstantAt(1).At)
	assert.InDelta(t, 0, run.InstantAt(1).Value, 1e-9)

	assert.EqualValues(t, utAt(10), run.InstantAt(2).At)
	assert.InDelta(t, 0, run.InstantAt(2).Value, 1e-9)
}

func TestAzimuthRuns(t *testing.T) {
	cat := utCatalog()

	// Move, stop, move again: two separate runs
	seq := utLinearSeq(t,
		utNPInst(1, 0, 0),
		utNPInst(1, 0.2, 10),
		utNPInst(1, 0.2, 20),
		utNPInst(1, 0.1, 30),
	)

	az, err := Azimuth(seq, cat)
	assert.Nil(t, err)

	ss, ok := az.(*temporal.SequenceSet[float64])
	assert.True(t, ok)
	assert.EqualValues(t, 2, ss.NumSequences())

	first := ss.SequenceAt(0)
	assert.EqualValues(t, utAt(0), first.InstantAt(0).At)
	assert.EqualValues(t, utAt(10), first.InstantAt(first.NumInstants()-1).At)
	assert.InDelta(t, math.Pi/2, first.InstantAt(0).Value, 1e-9)

	// Backward along an eastbound route heads west
	second := ss.SequenceAt(1)
	assert.EqualValues(t, utAt(20), second.InstantAt(0).At)
	assert.EqualValues(t, utAt(30), second.InstantAt(second.NumInstants()-1).At)
	assert.InDelta(t, 3*math.Pi/2, second.InstantAt(0).Value, 1e-9)
}

func TestAzimuthSequenceSet(t *testing.T) {
	cat := utCatalog()

	// Two disjoint moving components: one run each, no state carried
	// across the gap
	s1 := utLinearSeq(t, utNPInst(1, 0, 0), utNPInst(1, 0.5, 10))
	s2 := utLinearSeq(t, utNPInst(1, 0.5, 20), utNPInst(1, 0.2, 30))

	ss, err := temporal.NewSequenceSet([]*temporal.Sequence[NPoint]{s1, s2}, temporal.Linear)
	assert.Nil(t, err)

	az, err := Azimuth(ss, cat)
	assert.Nil(t, err)
	assert.NotNil(t, az)

	azSet, ok := az.(*temporal.SequenceSet[float64])
	assert.True(t, ok)
	assert.EqualValues(t, 2, azSet.NumSequences())

	first := azSet.SequenceAt(0)
	assert.EqualValues(t, 2, first.NumInstants())
	assert.EqualValues(t, utAt(0), first.InstantAt(0).At)
	assert.EqualValues(t, utAt(10), first.InstantAt(1).At)
	assert.InDelta(t, math.Pi/2, first.InstantAt(0).Value, 1e-9)
	assert.InDelta(t, math.Pi/2, first.InstantAt(1).Value, 1e-9)

	second := azSet.SequenceAt(1)
	assert.EqualValues(t, 2, second.NumInstants())
	assert.EqualValues(t, utAt(20), second.InstantAt(0).At)
	assert.EqualValues(t, utAt(30), second.InstantAt(1).At)
	assert.InDelta(t, 3*math.Pi/2, second.InstantAt(0).Value, 1e-9)
}

func TestAzimuthAdjacentSequences(t *testing.T) {
	cat := utCatalog()

	// Moving throughout two components touching at second 10: the runs
	// join there, the later heading holding from the boundary on
	s1, err := temporal.NewSequence([]temporal.Instant[NPoint]{
		utNPInst(1, 0, 0),
		utNPInst(1, 0.5, 10),
	}, true, false, temporal.Linear)
	assert.Nil(t, err)

	s2, err := temporal.NewSequence([]temporal.Instant[NPoint]{
		utNPInst(1, 0.5, 10),
		utNPInst(1, 0.2, 20),
	}, true, true, temporal.Linear)
	assert.Nil(t, err)

	ss, err := temporal.NewSequenceSet([]*temporal.Sequence[NPoint]{s1, s2}, temporal.Linear)
	assert.Nil(t, err)

	az, err := Azimuth(ss, cat)
	assert.Nil(t, err)
	assert.NotNil(t, az)

	azSet, ok := az.(*temporal.SequenceSet[float64])
	assert.True(t, ok)
	assert.EqualValues(t, 1, azSet.NumSequences())

	run := azSet.SequenceAt(0)
	assert.EqualValues(t, 3, run.NumInstants())
	assert.InDelta(t, math.Pi/2, run.InstantAt(0).Value, 1e-9)
	assert.EqualValues(t, utAt(10), run.InstantAt(1).At)
	assert.InDelta(t, 3*math.Pi/2, run.InstantAt(1).Value, 1e-9)
	assert.EqualValues(t, utAt(20), run.InstantAt(2).At)
	assert.InDelta(t, 3*math.Pi/2, run.InstantAt(2).Value, 1e-9)
}

func TestAzimuthUndefined(t *testing.T) {
	cat := utCatalog()

	// Stepwise motion has no heading
	step := utStepSeq(t, utNPInst(1, 0, 0), utNPInst(1, 0.5, 10))

	az, err := Azimuth(step, cat)
	assert.Nil(t, err)
	assert.Nil(t, az)

	az, err = Azimuth(utNPInst(1, 0.5, 0), cat)
	assert.Nil(t, err)
	assert.Nil(t, az)

	// Never moves
	still := utLinearSeq(t, utNPInst(1, 0.5, 0), utNPInst(1, 0.5, 10))

	az, err = Azimuth(still, cat)
	assert.Nil(t, err)
	assert.Nil(t, az)
}
