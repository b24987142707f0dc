package arraylist

import (
	"github.com/npillmayer/gocoll"
)

// iterator is the fail-fast cursor of a List. It remembers the modification count
// of the list at creation and refuses to continue once the list has been changed
// structurally, except through the iterator itself.
type iterator[E any] struct {
	list             *List[E]
	cursor           int // index of next element to return
	lastRet          int // index of last element returned; -1 if no such
	expectedModCount int
}

func (it *iterator[E]) verify() error {
	return it.list.mods.Verify(it.expectedModCount)
}

func (it *iterator[E]) HasNext() bool {
	return it.cursor != it.list.size
}

func (it *iterator[E]) Next() (E, error) {
	var zero E
	if err := it.verify(); err != nil {
		return zero, err
	}
	i := it.cursor
	if i >= it.list.size {
		return zero, gocoll.ErrNoSuchElement
	}
	if i >= len(it.list.elementData) {
		return zero, gocoll.Comodification(it.expectedModCount, it.list.mods.Count())
	}
	it.cursor = i + 1
	it.lastRet = i
	return it.list.elementData[i], nil
}

func (it *iterator[E]) Remove() error {
	if it.lastRet < 0 {
		return gocoll.ErrIllegalState
	}
	if err := it.verify(); err != nil {
		return err
	}
	if _, err := it.list.RemoveAt(it.lastRet); err != nil {
		return gocoll.Comodification(it.expectedModCount, it.list.mods.Count())
	}
	it.cursor = it.lastRet
	it.lastRet = -1
	it.expectedModCount = it.list.mods.Count()
	return nil
}

// ForEachRemaining visits all remaining elements. The consistency check is done
// once, at the end of the traversal.
func (it *iterator[E]) ForEachRemaining(action func(E)) error {
	size := it.list.size
	i := it.cursor
	if i < size {
		data := it.list.elementData
		if i >= len(data) {
			return gocoll.Comodification(it.expectedModCount, it.list.mods.Count())
		}
		for ; i < size && it.list.mods.Count() == it.expectedModCount; i++ {
			action(data[i])
		}
		// update once at end to reduce heap write traffic
		it.cursor = i
		it.lastRet = i - 1
	}
	return it.verify()
}

// listIterator extends iterator by backwards traversal and in-place changes.
type listIterator[E any] struct {
	iterator[E]
}

var _ gocoll.ListIterator[int] = (*listIterator[int])(nil)

func (it *listIterator[E]) HasPrevious() bool {
	return it.cursor != 0
}

func (it *listIterator[E]) NextIndex() int {
	return it.cursor
}

func (it *listIterator[E]) PreviousIndex() int {
	return it.cursor - 1
}

func (it *listIterator[E]) Previous() (E, error) {
	var zero E
	if err := it.verify(); err != nil {
		return zero, err
	}
	i := it.cursor - 1
	if i < 0 {
		return zero, gocoll.ErrNoSuchElement
	}
	if i >= len(it.list.elementData) {
		return zero, gocoll.Comodification(it.expectedModCount, it.list.mods.Count())
	}
	it.cursor = i
	it.lastRet = i
	return it.list.elementData[i], nil
}

// Set replaces the element last returned by Next or Previous.
func (it *listIterator[E]) Set(e E) error {
	if it.lastRet < 0 {
		return gocoll.ErrIllegalState
	}
	if err := it.verify(); err != nil {
		return err
	}
	if _, err := it.list.Set(it.lastRet, e); err != nil {
		return gocoll.Comodification(it.expectedModCount, it.list.mods.Count())
	}
	return nil
}

// Add inserts e before the element which would be returned by Next.
func (it *listIterator[E]) Add(e E) error {
	if err := it.verify(); err != nil {
		return err
	}
	i := it.cursor
	if err := it.list.Insert(i, e); err != nil {
		return err
	}
	it.cursor = i + 1
	it.lastRet = -1
	it.expectedModCount = it.list.mods.Count()
	return nil
}
