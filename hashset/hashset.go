package hashset

import (
	"github.com/npillmayer/gocoll"
)

// present is the value every member of a set is mapped to.
var present = struct{}{}

// Set is a set of elements, represented as the keys of a Map collaborator.
type Set[E any] struct {
	m    Map[E, struct{}]
	mods gocoll.ModCount
}

var _ gocoll.Set[int] = (*Set[int])(nil)
var _ gocoll.Tracked = (*Set[int])(nil)

// New creates an empty set backed by a gods hash map.
func New[E comparable]() *Set[E] {
	return NewWith[E](NewGodsMap[E, struct{}]())
}

// NewWith creates an empty set backed by m. m must be empty and must not be used
// by anybody else.
func NewWith[E any](m Map[E, struct{}]) *Set[E] {
	return &Set[E]{m: m}
}

// From creates a set, backed by a gods hash map, of the elements of c.
func From[E comparable](c gocoll.Collection[E]) *Set[E] {
	s := New[E]()
	s.addSlice(c.ToSlice())
	return s
}

// Of creates a set of the arguments. Duplicates are dropped.
func Of[E comparable](elems ...E) *Set[E] {
	s := New[E]()
	s.addSlice(elems)
	return s
}

// ModCount is part of interface gocoll.Tracked.
func (s *Set[E]) ModCount() int {
	return s.mods.Count()
}

// Size returns the number of elements.
func (s *Set[E]) Size() int {
	return s.m.Size()
}

// IsEmpty is a predicate: Size() == 0?
func (s *Set[E]) IsEmpty() bool {
	return s.m.Size() == 0
}

// Contains is a predicate: is e a member of the set?
func (s *Set[E]) Contains(e E) bool {
	return s.m.ContainsKey(e)
}

// Add adds e and returns true, if e has not been a member of the set. Otherwise
// the set is left unchanged and Add returns false.
func (s *Set[E]) Add(e E) (bool, error) {
	if _, existed := s.m.PutIfAbsent(e, present); existed {
		return false, nil
	}
	s.mods.Bump()
	return true, nil
}

// Remove removes e, if it is a member.
func (s *Set[E]) Remove(e E) (bool, error) {
	if !s.m.Remove(e) {
		return false, nil
	}
	s.mods.Bump()
	return true, nil
}

// Clear removes all elements.
func (s *Set[E]) Clear() error {
	s.m.Clear()
	s.mods.Bump()
	return nil
}

// ToSlice returns the elements in the order of the collaborator.
func (s *Set[E]) ToSlice() []E {
	return s.m.Keys()
}

// --- Bulk operations -------------------------------------------------------

func (s *Set[E]) addSlice(a []E) bool {
	changed := false
	for _, e := range a {
		if _, existed := s.m.PutIfAbsent(e, present); !existed {
			s.mods.Bump()
			changed = true
		}
	}
	return changed
}

// AddAll adds all elements of c.
func (s *Set[E]) AddAll(c gocoll.Collection[E]) (bool, error) {
	return s.addSlice(c.ToSlice()), nil
}

// RemoveAll removes all elements contained in c. If c is smaller than the set,
// the elements of c are removed one by one; otherwise the set is filtered by
// c.Contains.
func (s *Set[E]) RemoveAll(c gocoll.Collection[E]) (bool, error) {
	if s.Size() > c.Size() {
		changed := false
		for _, e := range c.ToSlice() {
			if s.m.Remove(e) {
				s.mods.Bump()
				changed = true
			}
		}
		return changed, nil
	}
	return s.RemoveIf(c.Contains)
}

// RetainAll removes all elements not contained in c.
func (s *Set[E]) RetainAll(c gocoll.Collection[E]) (bool, error) {
	return s.RemoveIf(func(e E) bool {
		return !c.Contains(e)
	})
}

// RemoveIf removes all elements satisfying pred. pred must not modify the set.
func (s *Set[E]) RemoveIf(pred func(E) bool) (bool, error) {
	expected := s.mods.Count()
	var doomed []E
	for _, e := range s.m.Keys() {
		if pred(e) {
			doomed = append(doomed, e)
		}
	}
	if err := s.mods.Verify(expected); err != nil {
		return false, err
	}
	for _, e := range doomed {
		if s.m.Remove(e) {
			s.mods.Bump()
		}
	}
	return len(doomed) > 0, nil
}

// ForEach calls action for every element. action must not modify the set.
func (s *Set[E]) ForEach(action func(E)) error {
	expected := s.mods.Count()
	for _, e := range s.m.Keys() {
		if s.mods.Count() != expected {
			break
		}
		action(e)
	}
	return s.mods.Verify(expected)
}

// --- Copies and comparisons ------------------------------------------------

// Clone returns a shallow copy of the set, backed by a collaborator of the same
// kind if the collaborator is able to produce one (see Fresh), or by a DigestMap
// otherwise.
func (s *Set[E]) Clone() *Set[E] {
	if f, ok := s.m.(interface{ Fresh() Map[E, struct{}] }); ok {
		return s.CloneInto(f.Fresh())
	}
	return s.CloneInto(NewDigestMap[E, struct{}]())
}

// CloneInto copies the elements of s into the empty collaborator m and returns
// the new set.
func (s *Set[E]) CloneInto(m Map[E, struct{}]) *Set[E] {
	c := NewWith(m)
	c.addSlice(s.m.Keys())
	return c
}

// Equal compares s with another collection as sets.
func (s *Set[E]) Equal(other gocoll.Collection[E]) bool {
	return gocoll.SetEqual[E](s, other)
}

// HashCode returns the sum of the element hashes, see gocoll.SetHashCode.
func (s *Set[E]) HashCode() uint32 {
	return gocoll.SetHashCode[E](s)
}

func (s *Set[E]) String() string {
	return gocoll.String[E](s)
}

// --- Cursors ---------------------------------------------------------------

// Iterator returns a fail-fast iterator over a snapshot of the elements.
func (s *Set[E]) Iterator() gocoll.Iterator[E] {
	return &iterator[E]{
		set:              s,
		keys:             s.m.Keys(),
		lastRet:          -1,
		expectedModCount: s.mods.Count(),
	}
}

// Spliterator returns a late-binding spliterator over a snapshot of the elements.
func (s *Set[E]) Spliterator() gocoll.Spliterator[E] {
	return gocoll.NewSnapshotSpliterator[E](s, s.m.Keys, gocoll.Distinct)
}

type iterator[E any] struct {
	set              *Set[E]
	keys             []E
	cursor           int
	lastRet          int
	expectedModCount int
}

func (it *iterator[E]) HasNext() bool {
	return it.cursor < len(it.keys)
}

func (it *iterator[E]) Next() (E, error) {
	var zero E
	if err := it.set.mods.Verify(it.expectedModCount); err != nil {
		return zero, err
	}
	if it.cursor >= len(it.keys) {
		return zero, gocoll.ErrNoSuchElement
	}
	it.lastRet = it.cursor
	it.cursor++
	return it.keys[it.lastRet], nil
}

func (it *iterator[E]) Remove() error {
	if it.lastRet < 0 {
		return gocoll.ErrIllegalState
	}
	if err := it.set.mods.Verify(it.expectedModCount); err != nil {
		return err
	}
	it.set.Remove(it.keys[it.lastRet])
	it.lastRet = -1
	it.expectedModCount = it.set.mods.Count()
	return nil
}
