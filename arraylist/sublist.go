package arraylist

import (
	"github.com/npillmayer/gocoll"
)

// SubList is a live view onto the positions [offset, offset+size) of a List.
// It has no storage of its own but works directly on the backing array of the
// root list.
//
// Structural changes made through the view are reflected in the view and in all
// views it has been derived from. Any other structural change of the root list
// renders the view stale: operations on it will then return
// ErrConcurrentModification.
type SubList[E any] struct {
	root     *List[E]
	parent   *SubList[E] // nil for a view of the root list
	offset   int         // offset into root.elementData
	size     int
	modCount int
}

var _ gocoll.List[int] = (*SubList[int])(nil)
var _ gocoll.Positional[int] = (*SubList[int])(nil)

func (v *SubList[E]) verify() error {
	return v.root.mods.Verify(v.modCount)
}

func (v *SubList[E]) updateSizeAndModCount(delta int) {
	for w := v; w != nil; w = w.parent {
		w.size += delta
		w.modCount = w.root.mods.Count()
	}
}

// ModCount reports the modification count of the root list.
func (v *SubList[E]) ModCount() int {
	return v.root.mods.Count()
}

// Equality returns the element equivalence of the root list.
func (v *SubList[E]) Equality() gocoll.EqualsFunc[E] {
	return v.root.Equality()
}

// Size returns the number of positions covered by the view.
func (v *SubList[E]) Size() int {
	return v.size
}

// IsEmpty is a predicate: Size() == 0?
func (v *SubList[E]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at view position index.
func (v *SubList[E]) Get(index int) (E, error) {
	var zero E
	if err := gocoll.CheckIndex("get", index, v.size); err != nil {
		return zero, err
	}
	if err := v.verify(); err != nil {
		return zero, err
	}
	return v.root.elementData[v.offset+index], nil
}

// Set replaces the element at view position index.
func (v *SubList[E]) Set(index int, e E) (E, error) {
	var zero E
	if err := gocoll.CheckIndex("set", index, v.size); err != nil {
		return zero, err
	}
	if err := v.verify(); err != nil {
		return zero, err
	}
	old := v.root.elementData[v.offset+index]
	v.root.elementData[v.offset+index] = e
	return old, nil
}

// Insert inserts e at view position index.
func (v *SubList[E]) Insert(index int, e E) error {
	if err := gocoll.CheckPosition("insert", index, v.size); err != nil {
		return err
	}
	if err := v.verify(); err != nil {
		return err
	}
	if err := v.root.Insert(v.offset+index, e); err != nil {
		return err
	}
	v.updateSizeAndModCount(1)
	return nil
}

// Add appends e at the end of the view, i.e. in front of the first root element
// following the view.
func (v *SubList[E]) Add(e E) (bool, error) {
	if err := v.Insert(v.size, e); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveAt removes the element at view position index.
func (v *SubList[E]) RemoveAt(index int) (E, error) {
	var zero E
	if err := gocoll.CheckIndex("remove", index, v.size); err != nil {
		return zero, err
	}
	if err := v.verify(); err != nil {
		return zero, err
	}
	old := v.root.elementData[v.offset+index]
	v.root.fastRemove(v.offset + index)
	v.updateSizeAndModCount(-1)
	return old, nil
}

// Remove removes the first occurrence of e within the view.
func (v *SubList[E]) Remove(e E) (bool, error) {
	if err := v.verify(); err != nil {
		return false, err
	}
	i := v.root.indexOfRange(e, v.offset, v.offset+v.size)
	if i < 0 {
		return false, nil
	}
	v.root.fastRemove(i)
	v.updateSizeAndModCount(-1)
	return true, nil
}

// RemoveRange removes the view positions [from,to).
func (v *SubList[E]) RemoveRange(from, to int) error {
	if err := gocoll.CheckRange(from, to, v.size); err != nil {
		return err
	}
	if err := v.verify(); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	v.root.mods.Bump()
	v.root.shiftTailOverGap(v.offset+from, v.offset+to)
	v.updateSizeAndModCount(from - to)
	return nil
}

// Clear removes all elements of the view from the root list.
func (v *SubList[E]) Clear() error {
	return v.RemoveRange(0, v.size)
}

// AddAll appends the elements of c at the end of the view.
func (v *SubList[E]) AddAll(c gocoll.Collection[E]) (bool, error) {
	return v.InsertAll(v.size, c)
}

// InsertAll inserts the elements of c at view position index.
func (v *SubList[E]) InsertAll(index int, c gocoll.Collection[E]) (bool, error) {
	if err := gocoll.CheckPosition("insert", index, v.size); err != nil {
		return false, err
	}
	if err := v.verify(); err != nil {
		return false, err
	}
	a := c.ToSlice()
	changed, err := v.root.insertSlice(v.offset+index, a)
	if err != nil || !changed {
		return false, err
	}
	v.updateSizeAndModCount(len(a))
	return true, nil
}

// RemoveAll removes all elements of the view which are contained in c.
func (v *SubList[E]) RemoveAll(c gocoll.Collection[E]) (bool, error) {
	return v.batchRemove(c, false)
}

// RetainAll removes all elements of the view which are not contained in c.
func (v *SubList[E]) RetainAll(c gocoll.Collection[E]) (bool, error) {
	return v.batchRemove(c, true)
}

func (v *SubList[E]) batchRemove(c gocoll.Collection[E], complement bool) (bool, error) {
	if err := v.verify(); err != nil {
		return false, err
	}
	oldSize := v.root.size
	changed, err := v.root.batchRemove(c, complement, v.offset, v.offset+v.size)
	if changed {
		v.updateSizeAndModCount(v.root.size - oldSize)
	}
	return changed, err
}

// RemoveIf removes all elements of the view satisfying pred.
func (v *SubList[E]) RemoveIf(pred func(E) bool) (bool, error) {
	if err := v.verify(); err != nil {
		return false, err
	}
	oldSize := v.root.size
	changed, err := v.root.removeIf(pred, v.offset, v.offset+v.size)
	if changed {
		v.updateSizeAndModCount(v.root.size - oldSize)
	}
	return changed, err
}

// ReplaceAll replaces every element of the view with the result of op.
func (v *SubList[E]) ReplaceAll(op func(E) E) error {
	if err := v.verify(); err != nil {
		return err
	}
	return v.root.replaceAllRange(op, v.offset, v.offset+v.size)
}

// IndexOf returns the view position of the first occurrence of e, or -1.
func (v *SubList[E]) IndexOf(e E) int {
	if v.verify() != nil {
		return -1
	}
	if i := v.root.indexOfRange(e, v.offset, v.offset+v.size); i >= 0 {
		return i - v.offset
	}
	return -1
}

// LastIndexOf returns the view position of the last occurrence of e, or -1.
func (v *SubList[E]) LastIndexOf(e E) int {
	if v.verify() != nil {
		return -1
	}
	if i := v.root.lastIndexOfRange(e, v.offset, v.offset+v.size); i >= 0 {
		return i - v.offset
	}
	return -1
}

// Contains is a predicate: is e within the view?
func (v *SubList[E]) Contains(e E) bool {
	return v.IndexOf(e) >= 0
}

// ToSlice copies the elements of the view. A stale view yields nil.
func (v *SubList[E]) ToSlice() []E {
	if v.verify() != nil {
		return nil
	}
	s := make([]E, v.size)
	copy(s, v.root.elementData[v.offset:v.offset+v.size])
	return s
}

// Iterator returns a fail-fast iterator over the view.
func (v *SubList[E]) Iterator() gocoll.Iterator[E] {
	it, err := v.ListIterator(0)
	if err != nil {
		return gocoll.FailedIterator[E](err)
	}
	return it
}

// ListIterator returns a fail-fast list iterator starting at view position index.
func (v *SubList[E]) ListIterator(index int) (gocoll.ListIterator[E], error) {
	if err := gocoll.CheckPosition("list iterator", index, v.size); err != nil {
		return nil, err
	}
	if err := v.verify(); err != nil {
		return nil, err
	}
	return &subListIterator[E]{
		view:             v,
		cursor:           index,
		lastRet:          -1,
		expectedModCount: v.modCount,
	}, nil
}

// SubList returns a view of the view.
func (v *SubList[E]) SubList(from, to int) (gocoll.List[E], error) {
	return v.View(from, to)
}

// View is SubList with a concrete result type.
func (v *SubList[E]) View(from, to int) (*SubList[E], error) {
	if err := gocoll.CheckRange(from, to, v.size); err != nil {
		return nil, err
	}
	if err := v.verify(); err != nil {
		return nil, err
	}
	return &SubList[E]{
		root:     v.root,
		parent:   v,
		offset:   v.offset + from,
		size:     to - from,
		modCount: v.modCount,
	}, nil
}

// Spliterator returns a late-binding spliterator over the view. It binds to the
// view's modification count, not the root's current one.
func (v *SubList[E]) Spliterator() gocoll.Spliterator[E] {
	return &spliterator[E]{
		root:  v.root,
		view:  v,
		index: v.offset,
		fence: -1,
	}
}

// Equal compares the view element-wise with another list, using the element
// equivalence of the root list.
func (v *SubList[E]) Equal(other gocoll.List[E]) bool {
	return gocoll.Equal[E](v, other)
}

// HashCode returns an order-dependent hash code, see gocoll.HashCode.
func (v *SubList[E]) HashCode() uint32 {
	return gocoll.HashCode[E](v)
}

func (v *SubList[E]) String() string {
	return gocoll.String[E](v)
}

// --- Iterator for views ----------------------------------------------------

type subListIterator[E any] struct {
	view             *SubList[E]
	cursor           int // view position
	lastRet          int
	expectedModCount int
}

func (it *subListIterator[E]) verify() error {
	return it.view.root.mods.Verify(it.expectedModCount)
}

func (it *subListIterator[E]) HasNext() bool {
	return it.cursor != it.view.size
}

func (it *subListIterator[E]) HasPrevious() bool {
	return it.cursor != 0
}

func (it *subListIterator[E]) NextIndex() int {
	return it.cursor
}

func (it *subListIterator[E]) PreviousIndex() int {
	return it.cursor - 1
}

func (it *subListIterator[E]) Next() (E, error) {
	var zero E
	if err := it.verify(); err != nil {
		return zero, err
	}
	i := it.cursor
	if i >= it.view.size {
		return zero, gocoll.ErrNoSuchElement
	}
	data := it.view.root.elementData
	if it.view.offset+i >= len(data) {
		return zero, gocoll.Comodification(it.expectedModCount, it.view.root.mods.Count())
	}
	it.cursor = i + 1
	it.lastRet = i
	return data[it.view.offset+i], nil
}

func (it *subListIterator[E]) Previous() (E, error) {
	var zero E
	if err := it.verify(); err != nil {
		return zero, err
	}
	i := it.cursor - 1
	if i < 0 {
		return zero, gocoll.ErrNoSuchElement
	}
	data := it.view.root.elementData
	if it.view.offset+i >= len(data) {
		return zero, gocoll.Comodification(it.expectedModCount, it.view.root.mods.Count())
	}
	it.cursor = i
	it.lastRet = i
	return data[it.view.offset+i], nil
}

func (it *subListIterator[E]) Remove() error {
	if it.lastRet < 0 {
		return gocoll.ErrIllegalState
	}
	if err := it.verify(); err != nil {
		return err
	}
	if _, err := it.view.RemoveAt(it.lastRet); err != nil {
		return err
	}
	it.cursor = it.lastRet
	it.lastRet = -1
	it.expectedModCount = it.view.root.mods.Count()
	return nil
}

func (it *subListIterator[E]) Set(e E) error {
	if it.lastRet < 0 {
		return gocoll.ErrIllegalState
	}
	if err := it.verify(); err != nil {
		return err
	}
	it.view.root.elementData[it.view.offset+it.lastRet] = e
	return nil
}

func (it *subListIterator[E]) Add(e E) error {
	if err := it.verify(); err != nil {
		return err
	}
	i := it.cursor
	if err := it.view.Insert(i, e); err != nil {
		return err
	}
	it.cursor = i + 1
	it.lastRet = -1
	it.expectedModCount = it.view.root.mods.Count()
	return nil
}
