package gocoll

// SnapshotSpliterator is a Spliterator for sources without cheap positional access
// (sets, linked structures seen through a view). On first use it binds to the source:
// it records the source's modification count and copies the elements out.
// Traversal then runs over the copy, but still fails fast if the source is
// structurally modified afterwards.
type SnapshotSpliterator[E any] struct {
	src             Tracked
	snapshot        func() []E
	expect          func() int // count to bind to, if not the source's current one
	items           []E
	index, fence    int // fence < 0 until bound
	expected        int
	characteristics Characteristics
}

var _ Spliterator[int] = (*SnapshotSpliterator[int])(nil)

// NewSnapshotSpliterator creates an unbound spliterator. snapshot must return the
// elements of src in encounter order. Flags Sized and Subsized are always reported.
func NewSnapshotSpliterator[E any](src Tracked, snapshot func() []E, flags Characteristics) *SnapshotSpliterator[E] {
	return &SnapshotSpliterator[E]{
		src:             src,
		snapshot:        snapshot,
		fence:           -1,
		characteristics: flags | Sized | Subsized,
	}
}

func (s *SnapshotSpliterator[E]) bind() int {
	if s.fence < 0 {
		if s.expect != nil {
			s.expected = s.expect()
		} else {
			s.expected = s.src.ModCount()
		}
		s.items = s.snapshot()
		s.fence = len(s.items)
	}
	return s.fence
}

func (s *SnapshotSpliterator[E]) verify() error {
	if actual := s.src.ModCount(); actual != s.expected {
		return Comodification(s.expected, actual)
	}
	return nil
}

// TrySplit is part of the Spliterator interface.
func (s *SnapshotSpliterator[E]) TrySplit() Spliterator[E] {
	hi := s.bind()
	lo, mid := s.index, (s.index+hi)>>1
	if lo >= mid {
		return nil
	}
	s.index = mid
	return &SnapshotSpliterator[E]{
		src:             s.src,
		snapshot:        s.snapshot,
		items:           s.items,
		index:           lo,
		fence:           mid,
		expected:        s.expected,
		characteristics: s.characteristics,
	}
}

// TryAdvance is part of the Spliterator interface.
func (s *SnapshotSpliterator[E]) TryAdvance(visit func(E)) (bool, error) {
	hi := s.bind()
	if s.index >= hi {
		return false, nil
	}
	if err := s.verify(); err != nil {
		return false, err
	}
	e := s.items[s.index]
	s.index++
	visit(e)
	return true, nil
}

// ForEachRemaining is part of the Spliterator interface.
func (s *SnapshotSpliterator[E]) ForEachRemaining(visit func(E)) error {
	hi := s.bind()
	for i := s.index; i < hi; i++ {
		visit(s.items[i])
	}
	s.index = hi
	return s.verify()
}

// EstimateSize is part of the Spliterator interface.
func (s *SnapshotSpliterator[E]) EstimateSize() int {
	return s.bind() - s.index
}

// Characteristics is part of the Spliterator interface.
func (s *SnapshotSpliterator[E]) Characteristics() Characteristics {
	return s.characteristics
}
