package synced

import (
	"sync"

	"github.com/npillmayer/gocoll"
	"github.com/npillmayer/gocoll/arraylist"
)

// Collection is a synchronized wrapper for a gocoll.Collection.
type Collection[E any] struct {
	mu *sync.Mutex
	c  gocoll.Collection[E]
}

var _ gocoll.Collection[int] = (*Collection[int])(nil)

// WrapCollection wraps c.
func WrapCollection[E any](c gocoll.Collection[E]) *Collection[E] {
	return &Collection[E]{mu: &sync.Mutex{}, c: c}
}

func (s *Collection[E]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Size()
}

func (s *Collection[E]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.IsEmpty()
}

func (s *Collection[E]) Contains(e E) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Contains(e)
}

func (s *Collection[E]) Add(e E) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Add(e)
}

func (s *Collection[E]) Remove(e E) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Remove(e)
}

func (s *Collection[E]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Clear()
}

func (s *Collection[E]) ToSlice() []E {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.ToSlice()
}

// Iterator returns the unsynchronized iterator of the wrapped collection.
func (s *Collection[E]) Iterator() gocoll.Iterator[E] {
	return s.c.Iterator()
}

// Spliterator returns the unsynchronized spliterator of the wrapped collection.
func (s *Collection[E]) Spliterator() gocoll.Spliterator[E] {
	return s.c.Spliterator()
}

// AddAll adds all elements of other while holding the lock.
func (s *Collection[E]) AddAll(other gocoll.Collection[E]) (bool, error) {
	snapshot := arraylist.FromSlice(other.ToSlice()) // other may be s itself
	s.mu.Lock()
	defer s.mu.Unlock()
	return gocoll.AddAll[E](s.c, snapshot)
}

// RemoveIf removes all elements satisfying pred while holding the lock.
func (s *Collection[E]) RemoveIf(pred func(E) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gocoll.RemoveIf(s.c, pred)
}

// ForEach calls action for every element while holding the lock. action must not
// call methods of the wrapper.
func (s *Collection[E]) ForEach(action func(E)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gocoll.ForEach(s.c, action)
}

// WithCollectionLock calls f with the wrapped collection while holding the lock.
func (s *Collection[E]) WithCollectionLock(f func(inner gocoll.Collection[E])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.c)
}

func (s *Collection[E]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gocoll.String(s.c)
}

// --- Lists -----------------------------------------------------------------

// List is a synchronized wrapper for a gocoll.List.
type List[E any] struct {
	Collection[E]
	l gocoll.List[E]
}

var _ gocoll.List[int] = (*List[int])(nil)

// WrapList wraps l.
func WrapList[E any](l gocoll.List[E]) *List[E] {
	return wrapList(l, &sync.Mutex{})
}

func wrapList[E any](l gocoll.List[E], mu *sync.Mutex) *List[E] {
	return &List[E]{Collection: Collection[E]{mu: mu, c: l}, l: l}
}

func (s *List[E]) Get(index int) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Get(index)
}

func (s *List[E]) Set(index int, e E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Set(index, e)
}

func (s *List[E]) Insert(index int, e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Insert(index, e)
}

func (s *List[E]) RemoveAt(index int) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveAt(index)
}

func (s *List[E]) IndexOf(e E) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.IndexOf(e)
}

func (s *List[E]) LastIndexOf(e E) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.LastIndexOf(e)
}

// ListIterator returns the unsynchronized list iterator of the wrapped list.
func (s *List[E]) ListIterator(index int) (gocoll.ListIterator[E], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.ListIterator(index)
}

// SubList returns a synchronized view, sharing the lock of s.
func (s *List[E]) SubList(from, to int) (gocoll.List[E], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.l.SubList(from, to)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("synchronized sub-list [%d,%d)", from, to)
	return wrapList(v, s.mu), nil
}

// WithLock calls f with the wrapped list while holding the lock. f must not call
// methods of s.
func (s *List[E]) WithLock(f func(inner gocoll.List[E])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.l)
}

// --- Deques ----------------------------------------------------------------

// Deque is a synchronized wrapper for a gocoll.Deque.
type Deque[E any] struct {
	Collection[E]
	d gocoll.Deque[E]
}

var _ gocoll.Deque[int] = (*Deque[int])(nil)

// WrapDeque wraps d.
func WrapDeque[E any](d gocoll.Deque[E]) *Deque[E] {
	return &Deque[E]{Collection: Collection[E]{mu: &sync.Mutex{}, c: d}, d: d}
}

func (s *Deque[E]) Offer(e E) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Offer(e)
}

func (s *Deque[E]) Poll() (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Poll()
}

func (s *Deque[E]) Peek() (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Peek()
}

func (s *Deque[E]) Element() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Element()
}

func (s *Deque[E]) RemoveHead() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.RemoveHead()
}

func (s *Deque[E]) PushFront(e E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.PushFront(e)
}

func (s *Deque[E]) PushBack(e E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.PushBack(e)
}

func (s *Deque[E]) PopFront() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.PopFront()
}

func (s *Deque[E]) PopBack() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.PopBack()
}

func (s *Deque[E]) PeekFirst() (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.PeekFirst()
}

func (s *Deque[E]) PeekLast() (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.PeekLast()
}

func (s *Deque[E]) PollFirst() (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.PollFirst()
}

func (s *Deque[E]) PollLast() (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.PollLast()
}

func (s *Deque[E]) GetFirst() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.GetFirst()
}

func (s *Deque[E]) GetLast() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.GetLast()
}

func (s *Deque[E]) Push(e E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Push(e)
}

func (s *Deque[E]) Pop() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Pop()
}

func (s *Deque[E]) RemoveFirstOccurrence(e E) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.RemoveFirstOccurrence(e)
}

func (s *Deque[E]) RemoveLastOccurrence(e E) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.RemoveLastOccurrence(e)
}

// DescendingIterator returns the unsynchronized iterator of the wrapped deque.
func (s *Deque[E]) DescendingIterator() gocoll.Iterator[E] {
	return s.d.DescendingIterator()
}

// WithLock calls f with the wrapped deque while holding the lock.
func (s *Deque[E]) WithLock(f func(inner gocoll.Deque[E])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.d)
}

// --- Sets ------------------------------------------------------------------

// Set is a synchronized wrapper for a gocoll.Set.
type Set[E any] struct {
	Collection[E]
}

var _ gocoll.Set[int] = (*Set[int])(nil)

// WrapSet wraps s.
func WrapSet[E any](set gocoll.Set[E]) *Set[E] {
	return &Set[E]{Collection: Collection[E]{mu: &sync.Mutex{}, c: set}}
}

// WithLock calls f with the wrapped set while holding the lock.
func (s *Set[E]) WithLock(f func(inner gocoll.Set[E])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.c)
}
