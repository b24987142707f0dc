package arraylist

import (
	"github.com/npillmayer/gocoll"
)

// spliterator is a late-binding, fail-fast Spliterator over a List or a SubList.
//
// It binds to its source on first use (TryAdvance, ForEachRemaining, TrySplit or
// EstimateSize), not on creation: structural changes between creation and first
// use are tolerated. After binding, TryAdvance checks for interference on every
// step, ForEachRemaining once at the end of the traversal.
type spliterator[E any] struct {
	root             *List[E]
	view             *SubList[E] // nil for root lists
	index            int         // current index, modified on advance and split
	fence            int         // -1 until used; then one past last index
	expectedModCount int         // initialized when fence set
}

var _ gocoll.Spliterator[int] = (*spliterator[int])(nil)

func (s *spliterator[E]) getFence() int {
	if s.fence < 0 {
		if s.view == nil {
			s.expectedModCount = s.root.mods.Count()
			s.fence = s.root.size
		} else {
			s.expectedModCount = s.view.modCount
			s.fence = s.view.offset + s.view.size
		}
	}
	return s.fence
}

func (s *spliterator[E]) verify() error {
	return s.root.mods.Verify(s.expectedModCount)
}

// TrySplit splits off the lower half of the remaining range.
func (s *spliterator[E]) TrySplit() gocoll.Spliterator[E] {
	hi := s.getFence()
	lo, mid := s.index, (s.index+hi)>>1
	if lo >= mid { // divide range in half unless too small
		return nil
	}
	s.index = mid
	tracer().Debugf("split [%d,%d) | [%d,%d)", lo, mid, mid, hi)
	return &spliterator[E]{
		root:             s.root,
		view:             s.view,
		index:            lo,
		fence:            mid,
		expectedModCount: s.expectedModCount,
	}
}

// TryAdvance visits the next element, if any.
func (s *spliterator[E]) TryAdvance(visit func(E)) (bool, error) {
	hi, i := s.getFence(), s.index
	if i >= hi {
		return false, nil
	}
	if err := s.verify(); err != nil {
		return false, err
	}
	s.index = i + 1
	visit(s.root.elementData[i])
	return true, s.verify()
}

// ForEachRemaining visits all remaining elements.
func (s *spliterator[E]) ForEachRemaining(visit func(E)) error {
	hi := s.getFence()
	a := s.root.elementData
	i := s.index
	if i < 0 || hi > len(a) {
		return gocoll.Comodification(s.expectedModCount, s.root.mods.Count())
	}
	s.index = hi
	for ; i < hi; i++ {
		visit(a[i])
	}
	return s.verify()
}

// EstimateSize is exact.
func (s *spliterator[E]) EstimateSize() int {
	return s.getFence() - s.index
}

// Characteristics is part of interface gocoll.Spliterator.
func (s *spliterator[E]) Characteristics() gocoll.Characteristics {
	return gocoll.Ordered | gocoll.Sized | gocoll.Subsized
}
