package arraylist

import (
	"fmt"
	"math"

	"github.com/npillmayer/gocoll"
)

const (
	// DefaultCapacity is the capacity a list created with New grows to on its
	// first insertion.
	DefaultCapacity = 10
	// MaxArraySize is the maximum capacity of a backing array. Requests for larger
	// arrays fail with gocoll.ErrCapacityExceeded.
	MaxArraySize = math.MaxInt32 - 8
)

// List is a resizable-array list. The zero value is an empty list ready to use,
// behaving like a list created with New.
type List[E any] struct {
	elementData []E // len(elementData) is the capacity
	size        int
	mods        gocoll.ModCount
	equals      gocoll.EqualsFunc[E]
	sized       bool // created with an explicit capacity; no default growth
}

var _ gocoll.List[int] = (*List[int])(nil)
var _ gocoll.Positional[int] = (*List[int])(nil)

// Option configures a list.
type Option[E any] func(*List[E])

// WithEquality sets the element equivalence used by Contains, IndexOf, Remove etc.
// The default is gocoll.Equals.
func WithEquality[E any](eq gocoll.EqualsFunc[E]) Option[E] {
	return func(l *List[E]) {
		l.equals = eq
	}
}

// New creates an empty list. The backing array is allocated on first insertion.
func New[E any](opts ...Option[E]) *List[E] {
	l := &List[E]{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewWithCapacity creates an empty list with a backing array of the given capacity.
func NewWithCapacity[E any](capacity int, opts ...Option[E]) (*List[E], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", gocoll.ErrIllegalArgument, capacity)
	}
	if capacity > MaxArraySize {
		return nil, &gocoll.CapacityError{Required: capacity, Max: MaxArraySize}
	}
	l := New(opts...)
	l.elementData = make([]E, capacity)
	l.sized = true
	return l, nil
}

// From creates a list containing the elements of c, in c's iteration order.
func From[E any](c gocoll.Collection[E], opts ...Option[E]) *List[E] {
	return FromSlice(c.ToSlice(), opts...)
}

// FromSlice creates a list containing a copy of s.
func FromSlice[E any](s []E, opts ...Option[E]) *List[E] {
	l := New(opts...)
	l.elementData = make([]E, len(s))
	copy(l.elementData, s)
	l.size = len(s)
	l.sized = true
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

// --- Capacity --------------------------------------------------------------

// Capacity returns the length of the backing array.
func (l *List[E]) Capacity() int {
	return len(l.elementData)
}

// TrimToSize shrinks the backing array to the size of the list. Changing the
// capacity is not a structural modification.
func (l *List[E]) TrimToSize() {
	if l.size < len(l.elementData) {
		data := make([]E, l.size)
		copy(data, l.elementData[:l.size])
		l.elementData = data
	}
}

// EnsureCapacity grows the backing array, if necessary, to hold at least
// minCapacity elements.
func (l *List[E]) EnsureCapacity(minCapacity int) error {
	if minCapacity > len(l.elementData) && (l.sized || len(l.elementData) > 0 || minCapacity > DefaultCapacity) {
		return l.grow(minCapacity)
	}
	return nil
}

// grow makes room for at least minCapacity elements.
func (l *List[E]) grow(minCapacity int) error {
	newCapacity, err := l.newCapacity(minCapacity)
	if err != nil {
		return err
	}
	tracer().Debugf("grow backing array %d → %d", len(l.elementData), newCapacity)
	data := make([]E, newCapacity)
	copy(data, l.elementData[:l.size])
	l.elementData = data
	return nil
}

// newCapacity returns a capacity at least as large as minCapacity: the old capacity
// plus 50%, if that is sufficient. Lists created with New grow to DefaultCapacity first.
func (l *List[E]) newCapacity(minCapacity int) (int, error) {
	if minCapacity < 0 || minCapacity > MaxArraySize { // minCapacity < 0: overflow
		return 0, &gocoll.CapacityError{Required: minCapacity, Max: MaxArraySize}
	}
	oldCapacity := len(l.elementData)
	newCapacity := oldCapacity + oldCapacity>>1
	if newCapacity <= minCapacity {
		if !l.sized && len(l.elementData) == 0 {
			return max(DefaultCapacity, minCapacity), nil
		}
		return minCapacity, nil
	}
	return min(newCapacity, MaxArraySize), nil
}

// --- Positional access -----------------------------------------------------

// Size returns the number of elements.
func (l *List[E]) Size() int {
	return l.size
}

// IsEmpty is a predicate: Size() == 0?
func (l *List[E]) IsEmpty() bool {
	return l.size == 0
}

// Get returns the element at index.
func (l *List[E]) Get(index int) (E, error) {
	if err := gocoll.CheckIndex("get", index, l.size); err != nil {
		var zero E
		return zero, err
	}
	return l.elementData[index], nil
}

// Set replaces the element at index and returns the previous element.
// Set is not a structural modification.
func (l *List[E]) Set(index int, e E) (E, error) {
	if err := gocoll.CheckIndex("set", index, l.size); err != nil {
		var zero E
		return zero, err
	}
	old := l.elementData[index]
	l.elementData[index] = e
	return old, nil
}

// Append appends e to the end of the list. It fails only if the list would
// exceed MaxArraySize elements.
func (l *List[E]) Append(e E) error {
	if l.size == len(l.elementData) {
		if err := l.grow(l.size + 1); err != nil {
			return err
		}
	}
	l.mods.Bump()
	l.elementData[l.size] = e
	l.size++
	return nil
}

// Add appends e to the end of the list. It is part of interface gocoll.Collection.
func (l *List[E]) Add(e E) (bool, error) {
	if err := l.Append(e); err != nil {
		return false, err
	}
	return true, nil
}

// Insert inserts e at index, shifting the element currently at index (if any) and all
// subsequent elements one position to the right.
func (l *List[E]) Insert(index int, e E) error {
	if err := gocoll.CheckPosition("insert", index, l.size); err != nil {
		return err
	}
	if l.size == len(l.elementData) {
		if err := l.grow(l.size + 1); err != nil {
			return err
		}
	}
	l.mods.Bump()
	copy(l.elementData[index+1:l.size+1], l.elementData[index:l.size])
	l.elementData[index] = e
	l.size++
	return nil
}

// RemoveAt removes the element at index, shifting all subsequent elements one
// position to the left. It returns the removed element.
func (l *List[E]) RemoveAt(index int) (E, error) {
	if err := gocoll.CheckIndex("remove", index, l.size); err != nil {
		var zero E
		return zero, err
	}
	old := l.elementData[index]
	l.fastRemove(index)
	return old, nil
}

// fastRemove removes without bounds check.
func (l *List[E]) fastRemove(index int) {
	l.mods.Bump()
	newSize := l.size - 1
	if newSize > index {
		copy(l.elementData[index:newSize], l.elementData[index+1:l.size])
	}
	var zero E
	l.elementData[newSize] = zero // let the element go
	l.size = newSize
}

// Remove removes the first occurrence of e, if present.
func (l *List[E]) Remove(e E) (bool, error) {
	if i := l.IndexOf(e); i >= 0 {
		l.fastRemove(i)
		return true, nil
	}
	return false, nil
}

// RemoveRange removes the elements at positions [from,to), shifting subsequent
// elements to the left.
func (l *List[E]) RemoveRange(from, to int) error {
	if err := gocoll.CheckRange(from, to, l.size); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	l.mods.Bump()
	l.shiftTailOverGap(from, to)
	return nil
}

// shiftTailOverGap erases the gap [lo,hi) by sliding the following elements down.
func (l *List[E]) shiftTailOverGap(lo, hi int) {
	copy(l.elementData[lo:], l.elementData[hi:l.size])
	newSize := l.size - (hi - lo)
	clear(l.elementData[newSize:l.size])
	l.size = newSize
}

// Clear removes all elements. The capacity is retained.
func (l *List[E]) Clear() error {
	l.mods.Bump()
	clear(l.elementData[:l.size])
	l.size = 0
	return nil
}

// --- Search ----------------------------------------------------------------

// IndexOf returns the position of the first occurrence of e, or -1.
func (l *List[E]) IndexOf(e E) int {
	return l.indexOfRange(e, 0, l.size)
}

func (l *List[E]) indexOfRange(e E, from, to int) int {
	for i := from; i < to; i++ {
		if l.eq(e, l.elementData[i]) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the position of the last occurrence of e, or -1.
func (l *List[E]) LastIndexOf(e E) int {
	return l.lastIndexOfRange(e, 0, l.size)
}

func (l *List[E]) lastIndexOfRange(e E, from, to int) int {
	for i := to - 1; i >= from; i-- {
		if l.eq(e, l.elementData[i]) {
			return i
		}
	}
	return -1
}

// Contains is a predicate: does the list contain e?
func (l *List[E]) Contains(e E) bool {
	return l.IndexOf(e) >= 0
}

// ToSlice returns a copy of the elements. It never aliases the backing array.
func (l *List[E]) ToSlice() []E {
	s := make([]E, l.size)
	copy(s, l.elementData[:l.size])
	return s
}

// --- Cursors and views -----------------------------------------------------

// Iterator returns a fail-fast iterator over the list, first to last.
func (l *List[E]) Iterator() gocoll.Iterator[E] {
	return &iterator[E]{
		list:             l,
		lastRet:          -1,
		expectedModCount: l.mods.Count(),
	}
}

// ListIterator returns a fail-fast list iterator, positioned before index.
func (l *List[E]) ListIterator(index int) (gocoll.ListIterator[E], error) {
	if err := gocoll.CheckPosition("list iterator", index, l.size); err != nil {
		return nil, err
	}
	return &listIterator[E]{
		iterator: iterator[E]{
			list:             l,
			cursor:           index,
			lastRet:          -1,
			expectedModCount: l.mods.Count(),
		},
	}, nil
}

// SubList returns a live view of the positions [from,to).
func (l *List[E]) SubList(from, to int) (gocoll.List[E], error) {
	return l.View(from, to)
}

// View is SubList with a concrete result type.
func (l *List[E]) View(from, to int) (*SubList[E], error) {
	if err := gocoll.CheckRange(from, to, l.size); err != nil {
		return nil, err
	}
	tracer().Debugf("sub-list [%d,%d) of list of size %d", from, to, l.size)
	return &SubList[E]{
		root:     l,
		offset:   from,
		size:     to - from,
		modCount: l.mods.Count(),
	}, nil
}

// Spliterator returns a late-binding, fail-fast spliterator over the list.
func (l *List[E]) Spliterator() gocoll.Spliterator[E] {
	return &spliterator[E]{
		root:  l,
		fence: -1,
	}
}

func (l *List[E]) String() string {
	return gocoll.String[E](l)
}
