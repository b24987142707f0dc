package arraylist

import (
	"slices"

	"github.com/npillmayer/gocoll"
)

// --- Bulk operations -------------------------------------------------------

// AddAll appends all elements of c, in c's iteration order. It returns true if the
// list changed.
func (l *List[E]) AddAll(c gocoll.Collection[E]) (bool, error) {
	return l.appendSlice(c.ToSlice())
}

// AppendSlice appends all elements of s.
func (l *List[E]) AppendSlice(s []E) error {
	_, err := l.appendSlice(s)
	return err
}

func (l *List[E]) appendSlice(a []E) (bool, error) {
	if len(a) == 0 {
		return false, nil
	}
	if len(a) > len(l.elementData)-l.size {
		if err := l.grow(l.size + len(a)); err != nil {
			return false, err
		}
	}
	l.mods.Bump()
	copy(l.elementData[l.size:], a)
	l.size += len(a)
	return true, nil
}

// InsertAll inserts all elements of c at index, in c's iteration order.
func (l *List[E]) InsertAll(index int, c gocoll.Collection[E]) (bool, error) {
	if err := gocoll.CheckPosition("insert", index, l.size); err != nil {
		return false, err
	}
	return l.insertSlice(index, c.ToSlice())
}

func (l *List[E]) insertSlice(index int, a []E) (bool, error) {
	numNew := len(a)
	if numNew == 0 {
		return false, nil
	}
	if numNew > len(l.elementData)-l.size {
		if err := l.grow(l.size + numNew); err != nil {
			return false, err
		}
	}
	l.mods.Bump()
	if numMoved := l.size - index; numMoved > 0 {
		copy(l.elementData[index+numNew:], l.elementData[index:l.size])
	}
	copy(l.elementData[index:], a)
	l.size += numNew
	return true, nil
}

// RemoveAll removes all elements contained in c.
func (l *List[E]) RemoveAll(c gocoll.Collection[E]) (bool, error) {
	return l.batchRemove(c, false, 0, l.size)
}

// RetainAll removes all elements not contained in c.
func (l *List[E]) RetainAll(c gocoll.Collection[E]) (bool, error) {
	return l.batchRemove(c, true, 0, l.size)
}

// batchRemove compacts [from,end) in a single pass, keeping the elements whose
// containment in c equals complement.
func (l *List[E]) batchRemove(c gocoll.Collection[E], complement bool, from, end int) (bool, error) {
	r := from
	for ; r < end; r++ { // find the first element to remove
		if c.Contains(l.elementData[r]) != complement {
			break
		}
	}
	if r == end {
		return false, nil
	}
	w := r
	for r++; r < end; r++ {
		if e := l.elementData[r]; c.Contains(e) == complement {
			l.elementData[w] = e
			w++
		}
	}
	l.mods.Bump()
	l.shiftTailOverGap(w, end)
	return true, nil
}

// RemoveIf removes all elements satisfying pred. pred must not modify the list;
// if it does, ErrConcurrentModification is returned and the list is left unchanged.
func (l *List[E]) RemoveIf(pred func(E) bool) (bool, error) {
	return l.removeIf(pred, 0, l.size)
}

func (l *List[E]) removeIf(pred func(E) bool, from, end int) (bool, error) {
	expected := l.mods.Count()
	i := from
	for ; i < end && !pred(l.elementData[i]); i++ {
	}
	if err := l.mods.Verify(expected); err != nil {
		return false, err
	}
	if i == end {
		return false, nil
	}
	// two passes: first mark, then compact, so pred sees an intact list
	beg := i
	deathRow := make([]bool, end-beg)
	deathRow[0] = true
	for i = beg + 1; i < end; i++ {
		if pred(l.elementData[i]) {
			deathRow[i-beg] = true
		}
	}
	if err := l.mods.Verify(expected); err != nil {
		return false, err
	}
	w := beg
	for i = beg; i < end; i++ {
		if !deathRow[i-beg] {
			l.elementData[w] = l.elementData[i]
			w++
		}
	}
	l.mods.Bump()
	l.shiftTailOverGap(w, end)
	return true, nil
}

// ReplaceAll replaces every element with the result of op. This is not a
// structural modification, but op must not modify the list structurally.
func (l *List[E]) ReplaceAll(op func(E) E) error {
	return l.replaceAllRange(op, 0, l.size)
}

func (l *List[E]) replaceAllRange(op func(E) E, from, to int) error {
	expected := l.mods.Count()
	for i := from; l.mods.Count() == expected && i < to; i++ {
		l.elementData[i] = op(l.elementData[i])
	}
	return l.mods.Verify(expected)
}

// Sort sorts the list with a stable sort. Sorting counts as a structural
// modification, as elements change their positions.
func (l *List[E]) Sort(cmp gocoll.Comparator[E]) error {
	expected := l.mods.Count()
	slices.SortStableFunc(l.elementData[:l.size], cmp)
	if err := l.mods.Verify(expected); err != nil {
		return err
	}
	l.mods.Bump()
	return nil
}

// ForEach calls action for every element, first to last. action must not modify
// the list structurally.
func (l *List[E]) ForEach(action func(E)) error {
	expected := l.mods.Count()
	for i := 0; l.mods.Count() == expected && i < l.size; i++ {
		action(l.elementData[i])
	}
	return l.mods.Verify(expected)
}

// --- Copies and comparisons ------------------------------------------------

// Clone returns a shallow copy of the list, trimmed to its size.
func (l *List[E]) Clone() *List[E] {
	c := FromSlice(l.elementData[:l.size])
	c.equals = l.equals
	return c
}

// Equal compares the list element-wise with another list.
func (l *List[E]) Equal(other gocoll.List[E]) bool {
	if o, ok := other.(*List[E]); ok {
		if o.size != l.size {
			return false
		}
		for i := 0; i < l.size; i++ {
			if !l.eq(l.elementData[i], o.elementData[i]) {
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
