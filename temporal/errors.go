package temporal

import "errors"

var (
	ErrNoInstants           = errors.New("no instants")
	ErrUnorderedInstants    = errors.New("unordered instants")
	ErrNoSequences          = errors.New("no sequences")
	ErrOverlappingSequences = errors.New("overlapping sequences")
	ErrMixedInterpolation   = errors.New("mixed interpolation")
)
