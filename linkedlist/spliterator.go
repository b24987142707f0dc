package linkedlist

import (
	"github.com/npillmayer/gocoll"
)

const (
	// BatchUnit is the increment of batch sizes when splitting.
	BatchUnit = 1 << 10
	// MaxBatch is the upper limit of a batch copied out of the chain.
	MaxBatch = 1 << 25
)

// spliterator walks the chain. Splitting copies a batch of elements into an
// array, which is returned as a gocoll.SliceSpliterator; every split takes a batch
// BatchUnit elements larger than the previous one.
type spliterator[E any] struct {
	list             *List[E]
	current          *node[E] // nil until bound
	est              int      // size estimate; -1 until first needed
	expectedModCount int      // initialized when est set
	batch            int      // batch size for splits
}

var _ gocoll.Spliterator[int] = (*spliterator[int])(nil)

// Spliterator returns a late-binding, fail-fast spliterator over the list.
func (l *List[E]) Spliterator() gocoll.Spliterator[E] {
	return &spliterator[E]{list: l, est: -1}
}

func (s *spliterator[E]) getEst() int {
	if s.est < 0 {
		s.expectedModCount = s.list.mods.Count()
		s.current = s.list.first
		s.est = s.list.size
	}
	return s.est
}

func (s *spliterator[E]) verify() error {
	return s.list.mods.Verify(s.expectedModCount)
}

// EstimateSize is part of interface gocoll.Spliterator.
func (s *spliterator[E]) EstimateSize() int {
	return s.getEst()
}

// TrySplit splits off a batch from the front.
func (s *spliterator[E]) TrySplit() gocoll.Spliterator[E] {
	est := s.getEst()
	p := s.current
	if est <= 1 || p == nil {
		return nil
	}
	n := min(s.batch+BatchUnit, est, MaxBatch)
	a := make([]E, 0, n)
	for ; p != nil && len(a) < n; p = p.next {
		a = append(a, p.item)
	}
	s.current = p
	s.batch = len(a)
	s.est = est - len(a)
	tracer().Debugf("split off batch of %d elements", len(a))
	return gocoll.NewSliceSpliterator(a, 0, len(a), gocoll.Ordered)
}

// TryAdvance is part of interface gocoll.Spliterator.
func (s *spliterator[E]) TryAdvance(visit func(E)) (bool, error) {
	if s.getEst() <= 0 || s.current == nil {
		return false, nil
	}
	if err := s.verify(); err != nil {
		return false, err
	}
	s.est--
	e := s.current.item
	s.current = s.current.next
	visit(e)
	return true, s.verify()
}

// ForEachRemaining is part of interface gocoll.Spliterator.
func (s *spliterator[E]) ForEachRemaining(visit func(E)) error {
	n := s.getEst()
	p := s.current
	s.current, s.est = nil, 0
	for ; p != nil && n > 0; n-- {
		e := p.item
		p = p.next
		visit(e)
	}
	return s.verify()
}

// Characteristics is part of interface gocoll.Spliterator.
func (s *spliterator[E]) Characteristics() gocoll.Characteristics {
	return gocoll.Ordered | gocoll.Sized | gocoll.Subsized
}
