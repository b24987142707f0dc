package gocoll

// SliceSpliterator is a Spliterator over a slice which nobody else modifies,
// e.g. a batch copied out of a linked structure. It performs no consistency checks.
type SliceSpliterator[E any] struct {
	items           []E
	index           int // current position, advanced by TryAdvance / split
	fence           int // one past the last position to visit
	characteristics Characteristics
}

var _ Spliterator[int] = (*SliceSpliterator[int])(nil)

// NewSliceSpliterator creates a Spliterator over items[from:to]. Flags Sized and
// Subsized are always reported, in addition to the ones given.
func NewSliceSpliterator[E any](items []E, from, to int, flags Characteristics) *SliceSpliterator[E] {
	return &SliceSpliterator[E]{
		items:           items,
		index:           from,
		fence:           to,
		characteristics: flags | Sized | Subsized,
	}
}

// TrySplit is part of the Spliterator interface.
func (s *SliceSpliterator[E]) TrySplit() Spliterator[E] {
	lo, mid := s.index, (s.index+s.fence)>>1
	if lo >= mid {
		return nil
	}
	s.index = mid
	return &SliceSpliterator[E]{
		items:           s.items,
		index:           lo,
		fence:           mid,
		characteristics: s.characteristics,
	}
}

// TryAdvance is part of the Spliterator interface.
func (s *SliceSpliterator[E]) TryAdvance(visit func(E)) (bool, error) {
	if s.index >= 0 && s.index < s.fence {
		e := s.items[s.index]
		s.index++
		visit(e)
		return true, nil
	}
	return false, nil
}

// ForEachRemaining is part of the Spliterator interface.
func (s *SliceSpliterator[E]) ForEachRemaining(visit func(E)) error {
	i, hi := s.index, s.fence
	s.index = hi
	for ; i < hi; i++ {
		visit(s.items[i])
	}
	return nil
}

// EstimateSize is part of the Spliterator interface.
func (s *SliceSpliterator[E]) EstimateSize() int {
	return s.fence - s.index
}

// Characteristics is part of the Spliterator interface.
func (s *SliceSpliterator[E]) Characteristics() Characteristics {
	return s.characteristics
}

// EmptySpliterator returns a Spliterator without elements.
func EmptySpliterator[E any](flags Characteristics) Spliterator[E] {
	return NewSliceSpliterator[E](nil, 0, 0, flags)
}
