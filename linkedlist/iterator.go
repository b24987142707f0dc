package linkedlist

import (
	"github.com/npillmayer/gocoll"
)

// listIterator is the fail-fast cursor of a List. It sits between the node last
// returned and the node to return next.
type listIterator[E any] struct {
	list             *List[E]
	lastReturned     *node[E]
	next             *node[E] // nil at the end of the list
	nextIndex        int
	expectedModCount int
}

var _ gocoll.ListIterator[int] = (*listIterator[int])(nil)

func (it *listIterator[E]) verify() error {
	return it.list.mods.Verify(it.expectedModCount)
}

func (it *listIterator[E]) HasNext() bool {
	return it.nextIndex < it.list.size
}

func (it *listIterator[E]) Next() (E, error) {
	var zero E
	if err := it.verify(); err != nil {
		return zero, err
	}
	if !it.HasNext() || it.next == nil {
		return zero, gocoll.ErrNoSuchElement
	}
	it.lastReturned = it.next
	it.next = it.next.next
	it.nextIndex++
	return it.lastReturned.item, nil
}

func (it *listIterator[E]) HasPrevious() bool {
	return it.nextIndex > 0
}

func (it *listIterator[E]) Previous() (E, error) {
	var zero E
	if err := it.verify(); err != nil {
		return zero, err
	}
	if !it.HasPrevious() {
		return zero, gocoll.ErrNoSuchElement
	}
	if it.next == nil {
		it.next = it.list.last
	} else {
		it.next = it.next.prev
	}
	it.lastReturned = it.next
	it.nextIndex--
	return it.lastReturned.item, nil
}

func (it *listIterator[E]) NextIndex() int {
	return it.nextIndex
}

func (it *listIterator[E]) PreviousIndex() int {
	return it.nextIndex - 1
}

func (it *listIterator[E]) Remove() error {
	if err := it.verify(); err != nil {
		return err
	}
	if it.lastReturned == nil {
		return gocoll.ErrIllegalState
	}
	lastNext := it.lastReturned.next
	it.list.unlink(it.lastReturned)
	if it.next == it.lastReturned { // after Previous
		it.next = lastNext
	} else {
		it.nextIndex--
	}
	it.lastReturned = nil
	it.expectedModCount = it.list.mods.Count()
	return nil
}

func (it *listIterator[E]) Set(e E) error {
	if it.lastReturned == nil {
		return gocoll.ErrIllegalState
	}
	if err := it.verify(); err != nil {
		return err
	}
	it.lastReturned.item = e
	return nil
}

func (it *listIterator[E]) Add(e E) error {
	if err := it.verify(); err != nil {
		return err
	}
	it.lastReturned = nil
	if it.next == nil {
		it.list.linkLast(e)
	} else {
		it.list.linkBefore(e, it.next)
	}
	it.nextIndex++
	it.expectedModCount = it.list.mods.Count()
	return nil
}

// ForEachRemaining visits all remaining elements, stopping at the first sign of
// interference.
func (it *listIterator[E]) ForEachRemaining(action func(E)) error {
	for it.list.mods.Count() == it.expectedModCount && it.nextIndex < it.list.size {
		action(it.next.item)
		it.lastReturned = it.next
		it.next = it.next.next
		it.nextIndex++
	}
	return it.verify()
}

// --- Descending iterator ---------------------------------------------------

// DescendingIterator returns a fail-fast iterator, last to first.
func (l *List[E]) DescendingIterator() gocoll.Iterator[E] {
	return &descendingIterator[E]{itr: l.listIterator(l.size)}
}

type descendingIterator[E any] struct {
	itr *listIterator[E]
}

func (d *descendingIterator[E]) HasNext() bool {
	return d.itr.HasPrevious()
}

func (d *descendingIterator[E]) Next() (E, error) {
	return d.itr.Previous()
}

func (d *descendingIterator[E]) Remove() error {
	return d.itr.Remove()
}
