package temporal

// MinInstant returns the earliest instant attaining the minimum value
// under less.
func MinInstant[V any](tm Temporal[V], less func(a, b V) bool) (Instant[V], bool) {
	insts := tm.Instants()
	if len(insts) == 0 {
		return Instant[V]{}, false
	}

	min := insts[0]

	for _, inst := range insts[1:] {
		if less(inst.Value, min.Value) {
			min = inst
		}
	}

	return min, true
}

// MinValue returns the minimum value attained by the temporal value.
func MinValue[V any](tm Temporal[V], less func(a, b V) bool) (V, bool) {
	inst, ok := MinInstant(tm, less)

	return inst.Value, ok
}
