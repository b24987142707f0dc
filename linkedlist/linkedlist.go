package linkedlist

import (
	"github.com/npillmayer/gocoll"
)

type node[E any] struct {
	item E
	next *node[E]
	prev *node[E]
}

// List is a doubly linked list. The zero value is an empty list ready to use.
//
// Invariants:
//
//	(first == nil && last == nil) || (first.prev == nil && last.next == nil)
//	size equals the number of nodes reachable from first
type List[E any] struct {
	first  *node[E]
	last   *node[E]
	size   int
	mods   gocoll.ModCount
	equals gocoll.EqualsFunc[E]
}

var _ gocoll.List[int] = (*List[int])(nil)
var _ gocoll.Deque[int] = (*List[int])(nil)
var _ gocoll.Positional[int] = (*List[int])(nil)

// Option configures a list.
type Option[E any] func(*List[E])

// WithEquality sets the element equivalence used by Contains, IndexOf, Remove etc.
func WithEquality[E any](eq gocoll.EqualsFunc[E]) Option[E] {
	return func(l *List[E]) {
		l.equals = eq
	}
}

// New creates an empty list.
func New[E any](opts ...Option[E]) *List[E] {
	l := &List[E]{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// From creates a list containing the elements of c, in c's iteration order.
func From[E any](c gocoll.Collection[E], opts ...Option[E]) *List[E] {
	return FromSlice(c.ToSlice(), opts...)
}

// FromSlice creates a list of the elements of s.
func FromSlice[E any](s []E, opts ...Option[E]) *List[E] {
	l := New(opts...)
	for _, e := range s {
		l.linkLast(e)
	}
	return l
}

// Of creates a list of the arguments.
func Of[E any](elems ...E) *List[E] {
	return FromSlice(elems)
}

func (l *List[E]) eq(a, b E) bool {
	if l.equals == nil {
		return gocoll.Equals(a, b)
	}
	return l.equals(a, b)
}

// Equality is part of interface gocoll.Equivalent.
func (l *List[E]) Equality() gocoll.EqualsFunc[E] {
	return gocoll.EqualsOrDefault(l.equals)
}

// ModCount is part of interface gocoll.Tracked.
func (l *List[E]) ModCount() int {
	return l.mods.Count()
}

// --- Linking primitives ----------------------------------------------------

func (l *List[E]) linkFirst(e E) {
	f := l.first
	n := &node[E]{item: e, next: f}
	l.first = n
	if f == nil {
		l.last = n
	} else {
		f.prev = n
	}
	l.size++
	l.mods.Bump()
}

func (l *List[E]) linkLast(e E) {
	last := l.last
	n := &node[E]{item: e, prev: last}
	l.last = n
	if last == nil {
		l.first = n
	} else {
		last.next = n
	}
	l.size++
	l.mods.Bump()
}

// linkBefore inserts e in front of succ, which must not be nil.
func (l *List[E]) linkBefore(e E, succ *node[E]) {
	pred := succ.prev
	n := &node[E]{item: e, next: succ, prev: pred}
	succ.prev = n
	if pred == nil {
		l.first = n
	} else {
		pred.next = n
	}
	l.size++
	l.mods.Bump()
}

// unlink removes x, which must not be nil, from the chain. The node's links and
// item are cleared.
func (l *List[E]) unlink(x *node[E]) E {
	e := x.item
	next, prev := x.next, x.prev
	if prev == nil {
		l.first = next
	} else {
		prev.next = next
		x.prev = nil
	}
	if next == nil {
		l.last = prev
	} else {
		next.prev = prev
		x.next = nil
	}
	var zero E
	x.item = zero
	l.size--
	l.mods.Bump()
	return e
}

// node returns the node at index, which must be valid. It walks from the nearer end.
func (l *List[E]) node(index int) *node[E] {
	if index < l.size>>1 {
		x := l.first
		for i := 0; i < index; i++ {
			x = x.next
		}
		return x
	}
	x := l.last
	for i := l.size - 1; i > index; i-- {
		x = x.prev
	}
	return x
}

// --- Collection ------------------------------------------------------------

// Size returns the number of elements.
func (l *List[E]) Size() int {
	return l.size
}

// IsEmpty is a predicate: Size() == 0?
func (l *List[E]) IsEmpty() bool {
	return l.size == 0
}

// Add appends e. It is part of interface gocoll.Collection and never fails.
func (l *List[E]) Add(e E) (bool, error) {
	l.linkLast(e)
	return true, nil
}

// Remove removes the first occurrence of e, if present.
func (l *List[E]) Remove(e E) (bool, error) {
	return l.RemoveFirstOccurrence(e), nil
}

// Contains is a predicate: does the list contain e?
func (l *List[E]) Contains(e E) bool {
	return l.IndexOf(e) >= 0
}

// Clear removes all elements. Every node is unlinked.
func (l *List[E]) Clear() error {
	for x := l.first; x != nil; {
		next := x.next
		var zero E
		x.item = zero
		x.next, x.prev = nil, nil
		x = next
	}
	l.first, l.last = nil, nil
	l.size = 0
	l.mods.Bump()
	return nil
}

// ToSlice returns the elements, first to last.
func (l *List[E]) ToSlice() []E {
	s := make([]E, 0, l.size)
	for x := l.first; x != nil; x = x.next {
		s = append(s, x.item)
	}
	return s
}

// --- Positional access -----------------------------------------------------

// Get returns the element at index.
func (l *List[E]) Get(index int) (E, error) {
	if err := gocoll.CheckIndex("get", index, l.size); err != nil {
		var zero E
		return zero, err
	}
	return l.node(index).item, nil
}

// Set replaces the element at index. It is not a structural modification.
func (l *List[E]) Set(index int, e E) (E, error) {
	if err := gocoll.CheckIndex("set", index, l.size); err != nil {
		var zero E
		return zero, err
	}
	x := l.node(index)
	old := x.item
	x.item = e
	return old, nil
}

// Insert inserts e at index; index == Size() appends.
func (l *List[E]) Insert(index int, e E) error {
	if err := gocoll.CheckPosition("insert", index, l.size); err != nil {
		return err
	}
	if index == l.size {
		l.linkLast(e)
	} else {
		l.linkBefore(e, l.node(index))
	}
	return nil
}

// RemoveAt removes and returns the element at index.
func (l *List[E]) RemoveAt(index int) (E, error) {
	if err := gocoll.CheckIndex("remove", index, l.size); err != nil {
		var zero E
		return zero, err
	}
	return l.unlink(l.node(index)), nil
}

// RemoveRange removes the elements at positions [from,to). It counts as a single
// structural modification.
func (l *List[E]) RemoveRange(from, to int) error {
	if err := gocoll.CheckRange(from, to, l.size); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	x := l.node(from)
	pred := x.prev
	for i := from; i < to; i++ {
		next := x.next
		var zero E
		x.item = zero
		x.next, x.prev = nil, nil
		x = next
	}
	if pred == nil {
		l.first = x
	} else {
		pred.next = x
	}
	if x == nil {
		l.last = pred
	} else {
		x.prev = pred
	}
	l.size -= to - from
	l.mods.Bump()
	return nil
}

// IndexOf returns the position of the first occurrence of e, or -1.
func (l *List[E]) IndexOf(e E) int {
	i := 0
	for x := l.first; x != nil; x = x.next {
		if l.eq(e, x.item) {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the position of the last occurrence of e, or -1.
func (l *List[E]) LastIndexOf(e E) int {
	i := l.size
	for x := l.last; x != nil; x = x.prev {
		i--
		if l.eq(e, x.item) {
			return i
		}
	}
	return -1
}

// --- Bulk operations -------------------------------------------------------

// AddAll appends all elements of c, in c's iteration order.
func (l *List[E]) AddAll(c gocoll.Collection[E]) (bool, error) {
	return l.InsertAll(l.size, c)
}

// InsertAll inserts all elements of c at index, in c's iteration order. It counts
// as a single structural modification.
func (l *List[E]) InsertAll(index int, c gocoll.Collection[E]) (bool, error) {
	if err := gocoll.CheckPosition("insert", index, l.size); err != nil {
		return false, err
	}
	a := c.ToSlice()
	if len(a) == 0 {
		return false, nil
	}
	var pred, succ *node[E]
	if index == l.size {
		pred = l.last
	} else {
		succ = l.node(index)
		pred = succ.prev
	}
	for _, e := range a {
		n := &node[E]{item: e, prev: pred}
		if pred == nil {
			l.first = n
		} else {
			pred.next = n
		}
		pred = n
	}
	if succ == nil {
		l.last = pred
	} else {
		pred.next = succ
		succ.prev = pred
	}
	l.size += len(a)
	l.mods.Bump()
	return true, nil
}

// RemoveIf removes all elements satisfying pred.
func (l *List[E]) RemoveIf(pred func(E) bool) (bool, error) {
	expected := l.mods.Count()
	var doomed []*node[E]
	for x := l.first; x != nil; x = x.next {
		if pred(x.item) {
			doomed = append(doomed, x)
		}
	}
	if err := l.mods.Verify(expected); err != nil {
		return false, err
	}
	for _, x := range doomed {
		l.unlink(x)
	}
	return len(doomed) > 0, nil
}

// ForEach calls action for every element, first to last. action must not modify
// the list structurally.
func (l *List[E]) ForEach(action func(E)) error {
	expected := l.mods.Count()
	for x := l.first; x != nil && l.mods.Count() == expected; x = x.next {
		action(x.item)
	}
	return l.mods.Verify(expected)
}

// --- Copies and comparisons ------------------------------------------------

// Clone returns a shallow copy of the list.
func (l *List[E]) Clone() *List[E] {
	c := FromSlice(l.ToSlice())
	c.equals = l.equals
	return c
}

// Reversed returns a copy of the list in reverse order.
func (l *List[E]) Reversed() *List[E] {
	c := New[E]()
	c.equals = l.equals
	for x := l.first; x != nil; x = x.next {
		c.linkFirst(x.item)
	}
	return c
}

// Equal compares the list element-wise with another list.
func (l *List[E]) Equal(other gocoll.List[E]) bool {
	if o, ok := other.(*List[E]); ok {
		if o.size != l.size {
			return false
		}
		for x, y := l.first, o.first; x != nil; x, y = x.next, y.next {
			if !l.eq(x.item, y.item) {
				return false
			}
		}
		return true
	}
	return gocoll.Equal[E](l, other)
}

// HashCode returns an order-dependent hash code, see gocoll.HashCode.
func (l *List[E]) HashCode() uint32 {
	return gocoll.HashCode[E](l)
}

// --- Cursors and views -----------------------------------------------------

// Iterator returns a fail-fast iterator, first to last.
func (l *List[E]) Iterator() gocoll.Iterator[E] {
	return l.listIterator(0)
}

// ListIterator returns a fail-fast list iterator positioned before index.
func (l *List[E]) ListIterator(index int) (gocoll.ListIterator[E], error) {
	if err := gocoll.CheckPosition("list iterator", index, l.size); err != nil {
		return nil, err
	}
	return l.listIterator(index), nil
}

func (l *List[E]) listIterator(index int) *listIterator[E] {
	it := &listIterator[E]{
		list:             l,
		nextIndex:        index,
		expectedModCount: l.mods.Count(),
	}
	if index < l.size {
		it.next = l.node(index)
	}
	return it
}

// SubList returns a live view of the positions [from,to).
func (l *List[E]) SubList(from, to int) (gocoll.List[E], error) {
	v, err := gocoll.NewSubList[E](l, from, to)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("sub-list [%d,%d) of linked list of size %d", from, to, l.size)
	return v, nil
}

func (l *List[E]) String() string {
	return gocoll.String[E](l)
}
