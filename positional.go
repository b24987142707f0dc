package gocoll

// Positional is a list which tracks structural modifications and is able to
// remove ranges. Every Positional list may be viewed through a SubList.
type Positional[E any] interface {
	List[E]
	Tracked
	Equivalent[E]
	RemoveRange(from, to int) error
}

// SubList is a live, writable window onto the positions [offset, offset+size) of a
// Positional list. It does not own storage; every operation is translated and
// delegated to the root list.
//
// Structural changes made through the view adjust the view (and all views it has been
// derived from). Structural changes made in any other way, including through sibling
// views, make the view stale: all subsequent operations with an error result return
// ErrConcurrentModification.
//
// Containers with direct access to their storage (package arraylist) bring a view
// of their own; SubList is the general fallback.
type SubList[E any] struct {
	root     Positional[E]
	parent   *SubList[E]
	offset   int
	size     int
	modCount int
}

var _ List[int] = (*SubList[int])(nil)

// NewSubList creates a view of root for positions [from,to).
func NewSubList[E any](root Positional[E], from, to int) (*SubList[E], error) {
	if err := CheckRange(from, to, root.Size()); err != nil {
		return nil, err
	}
	return &SubList[E]{
		root:     root,
		offset:   from,
		size:     to - from,
		modCount: root.ModCount(),
	}, nil
}

func (v *SubList[E]) verify() error {
	if actual := v.root.ModCount(); actual != v.modCount {
		return Comodification(v.modCount, actual)
	}
	return nil
}

// after a structural change of the root, made through this view
func (v *SubList[E]) updateSizeAndModCount(delta int) {
	for w := v; w != nil; w = w.parent {
		w.size += delta
		w.modCount = w.root.ModCount()
	}
}

// ModCount is part of interface Tracked. A view reports the count of its root.
func (v *SubList[E]) ModCount() int {
	return v.root.ModCount()
}

// Size returns the number of positions of the view, as seen at its last validation.
func (v *SubList[E]) Size() int {
	return v.size
}

// IsEmpty is a predicate: Size() == 0?
func (v *SubList[E]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at position index of the view.
func (v *SubList[E]) Get(index int) (E, error) {
	var zero E
	if err := CheckIndex("get", index, v.size); err != nil {
		return zero, err
	}
	if err := v.verify(); err != nil {
		return zero, err
	}
	return v.root.Get(v.offset + index)
}

// Set replaces the element at position index of the view.
func (v *SubList[E]) Set(index int, e E) (E, error) {
	var zero E
	if err := CheckIndex("set", index, v.size); err != nil {
		return zero, err
	}
	if err := v.verify(); err != nil {
		return zero, err
	}
	return v.root.Set(v.offset+index, e)
}

// Insert inserts e at position index of the view.
func (v *SubList[E]) Insert(index int, e E) error {
	if err := CheckPosition("insert", index, v.size); err != nil {
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

// Add appends e at the end of the view.
func (v *SubList[E]) Add(e E) (bool, error) {
	if err := v.Insert(v.size, e); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveAt removes the element at position index of the view.
func (v *SubList[E]) RemoveAt(index int) (E, error) {
	var zero E
	if err := CheckIndex("remove", index, v.size); err != nil {
		return zero, err
	}
	if err := v.verify(); err != nil {
		return zero, err
	}
	e, err := v.root.RemoveAt(v.offset + index)
	if err != nil {
		return zero, err
	}
	v.updateSizeAndModCount(-1)
	return e, nil
}

// Remove removes the first occurrence of e within the view.
func (v *SubList[E]) Remove(e E) (bool, error) {
	if err := v.verify(); err != nil {
		return false, err
	}
	if i := v.IndexOf(e); i >= 0 {
		_, err := v.RemoveAt(i)
		return err == nil, err
	}
	return false, nil
}

// RemoveRange removes the view positions [from,to).
func (v *SubList[E]) RemoveRange(from, to int) error {
	if err := CheckRange(from, to, v.size); err != nil {
		return err
	}
	if err := v.verify(); err != nil {
		return err
	}
	if err := v.root.RemoveRange(v.offset+from, v.offset+to); err != nil {
		return err
	}
	v.updateSizeAndModCount(from - to)
	return nil
}

// Clear removes all elements of the view from the root list.
func (v *SubList[E]) Clear() error {
	return v.RemoveRange(0, v.size)
}

// Equality returns the element equivalence of the root list.
func (v *SubList[E]) Equality() EqualsFunc[E] {
	return EqualsOrDefault(v.root.Equality())
}

// IndexOf returns the view position of the first occurrence of e, or -1.
func (v *SubList[E]) IndexOf(e E) int {
	eq := v.Equality()
	for i, x := range v.ToSlice() {
		if eq(x, e) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the view position of the last occurrence of e, or -1.
func (v *SubList[E]) LastIndexOf(e E) int {
	eq := v.Equality()
	s := v.ToSlice()
	for i := len(s) - 1; i >= 0; i-- {
		if eq(s[i], e) {
			return i
		}
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
	return v.copyOut()
}

// copyOut copies the view's positions from the root, without validation.
func (v *SubList[E]) copyOut() []E {
	s := make([]E, 0, v.size)
	it, err := v.root.ListIterator(v.offset)
	if err != nil {
		return nil
	}
	for i := 0; i < v.size && it.HasNext(); i++ {
		e, err := it.Next()
		if err != nil {
			return nil
		}
		s = append(s, e)
	}
	return s
}

// Iterator returns a fail-fast iterator over the view.
func (v *SubList[E]) Iterator() Iterator[E] {
	it, err := v.ListIterator(0)
	if err != nil {
		return failedIterator[E]{err}
	}
	return it
}

// ListIterator returns a fail-fast list iterator, starting at view position index.
func (v *SubList[E]) ListIterator(index int) (ListIterator[E], error) {
	if err := CheckPosition("list iterator", index, v.size); err != nil {
		return nil, err
	}
	if err := v.verify(); err != nil {
		return nil, err
	}
	it, err := v.root.ListIterator(v.offset + index)
	if err != nil {
		return nil, err
	}
	return &subListIterator[E]{view: v, it: it}, nil
}

// SubList returns a view of the view.
func (v *SubList[E]) SubList(from, to int) (List[E], error) {
	if err := CheckRange(from, to, v.size); err != nil {
		return nil, err
	}
	if err := v.verify(); err != nil {
		return nil, err
	}
	tracer().Debugf("sub-list [%d,%d) of view at offset %d", from, to, v.offset)
	return &SubList[E]{
		root:     v.root,
		parent:   v,
		offset:   v.offset + from,
		size:     to - from,
		modCount: v.modCount,
	}, nil
}

// Spliterator returns a late-binding spliterator over the view. It binds to the
// count the view was last validated with, so a spliterator of a stale view fails
// on its first step.
func (v *SubList[E]) Spliterator() Spliterator[E] {
	sp := NewSnapshotSpliterator[E](v, v.copyOut, Ordered)
	sp.expect = func() int { return v.modCount }
	return sp
}

func (v *SubList[E]) String() string {
	return String[E](v)
}

// --- Iterator for views ----------------------------------------------------

type subListIterator[E any] struct {
	view *SubList[E]
	it   ListIterator[E]
}

func (si *subListIterator[E]) HasNext() bool {
	return si.NextIndex() < si.view.size
}

func (si *subListIterator[E]) Next() (E, error) {
	if !si.HasNext() {
		var zero E
		return zero, ErrNoSuchElement
	}
	return si.it.Next()
}

func (si *subListIterator[E]) HasPrevious() bool {
	return si.PreviousIndex() >= 0
}

func (si *subListIterator[E]) Previous() (E, error) {
	if !si.HasPrevious() {
		var zero E
		return zero, ErrNoSuchElement
	}
	return si.it.Previous()
}

func (si *subListIterator[E]) NextIndex() int {
	return si.it.NextIndex() - si.view.offset
}

func (si *subListIterator[E]) PreviousIndex() int {
	return si.it.PreviousIndex() - si.view.offset
}

func (si *subListIterator[E]) Remove() error {
	if err := si.it.Remove(); err != nil {
		return err
	}
	si.view.updateSizeAndModCount(-1)
	return nil
}

func (si *subListIterator[E]) Set(e E) error {
	return si.it.Set(e)
}

func (si *subListIterator[E]) Add(e E) error {
	if err := si.it.Add(e); err != nil {
		return err
	}
	si.view.updateSizeAndModCount(1)
	return nil
}

// failedIterator is an iterator which fails with an error on its first step.
type failedIterator[E any] struct {
	err error
}

func (f failedIterator[E]) HasNext() bool { return true }

func (f failedIterator[E]) Next() (E, error) {
	var zero E
	return zero, f.err
}

func (f failedIterator[E]) Remove() error { return f.err }

// FailedIterator returns an iterator whose first step fails with err. Collections
// use it to report errors from Iterator(), which has no error result.
func FailedIterator[E any](err error) Iterator[E] {
	return failedIterator[E]{err}
}
