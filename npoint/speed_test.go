package npoint

import (
	"testing"

	"github.com/sgostarter/libmobility/temporal"
	"github.com/stretchr/testify/assert"
)

func TestSpeed(t *testing.T) {
	cat := utCatalog()

	seq := utLinearSeq(t, utNPInst(1, 0, 0), utNPInst(1, 1, 10))

	speed, err := Speed(seq, cat)
	assert.Nil(t, err)

	// 100 length units over 10 seconds, stated at the interval start
	// and repeated at the final sample
	insts := speed.Instants()
	assert.Len(t, insts, 2)
	assert.InDelta(t, 10, insts[0].Value, 1e-9)
	assert.InDelta(t, 10, insts[1].Value, 1e-9)
	assert.EqualValues(t, temporal.Step, speed.Interpolation())

	// Speed changes per interval
	seq = utLinearSeq(t, utNPInst(1, 0, 0), utNPInst(1, 0.5, 5), utNPInst(1, 0.2, 10))

	speed, err = Speed(seq, cat)
	assert.Nil(t, err)

	insts = speed.Instants()
	assert.Len(t, insts, 3)
	assert.InDelta(t, 10, insts[0].Value, 1e-9)
	assert.InDelta(t, 6, insts[1].Value, 1e-9)
	assert.InDelta(t, 6, insts[2].Value, 1e-9)
}

func TestSpeedStep(t *testing.T) {
	cat := utCatalog()

	seq := utStepSeq(t, utNPInst(1, 0, 0), utNPInst(1, 0.5, 5))

	speed, err := Speed(seq, cat)
	assert.Nil(t, err)

	for _, inst := range speed.Instants() {
		assert.EqualValues(t, 0, inst.Value)
	}
}

func TestSpeedInstantaneous(t *testing.T) {
	cat := utCatalog()

	seq := utLinearSeq(t, utNPInst(1, 0.5, 0))

	// No interval to average over
	speed, err := Speed(seq, cat)
	assert.Nil(t, err)
	assert.Nil(t, speed)
}

func TestSpeedSequenceSet(t *testing.T) {
	cat := utCatalog()

	s1 := utLinearSeq(t, utNPInst(1, 0, 0), utNPInst(1, 0.2, 10))
	s2 := utLinearSeq(t, utNPInst(1, 0.2, 20))

	ss, err := temporal.NewSequenceSet([]*temporal.Sequence[NPoint]{s1, s2}, temporal.Linear)
	assert.Nil(t, err)

	speed, err := Speed(ss, cat)
	assert.Nil(t, err)

	// The instantaneous component contributes nothing
	sset, ok := speed.(*temporal.SequenceSet[float64])
	assert.True(t, ok)
	assert.EqualValues(t, 1, sset.NumSequences())
	assert.InDelta(t, 2, sset.Instants()[0].Value, 1e-9)
}
