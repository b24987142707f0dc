package linkedlist

import (
	"github.com/npillmayer/gocoll"
)

// --- Deque -----------------------------------------------------------------

// PushFront inserts e at the front of the list.
func (l *List[E]) PushFront(e E) {
	l.linkFirst(e)
}

// PushBack appends e at the end of the list.
func (l *List[E]) PushBack(e E) {
	l.linkLast(e)
}

// PopFront removes and returns the first element.
func (l *List[E]) PopFront() (E, error) {
	if l.first == nil {
		var zero E
		return zero, gocoll.ErrNoSuchElement
	}
	return l.unlink(l.first), nil
}

// PopBack removes and returns the last element.
func (l *List[E]) PopBack() (E, error) {
	if l.last == nil {
		var zero E
		return zero, gocoll.ErrNoSuchElement
	}
	return l.unlink(l.last), nil
}

// GetFirst returns the first element.
func (l *List[E]) GetFirst() (E, error) {
	if l.first == nil {
		var zero E
		return zero, gocoll.ErrNoSuchElement
	}
	return l.first.item, nil
}

// GetLast returns the last element.
func (l *List[E]) GetLast() (E, error) {
	if l.last == nil {
		var zero E
		return zero, gocoll.ErrNoSuchElement
	}
	return l.last.item, nil
}

// PeekFirst returns the first element, if any.
func (l *List[E]) PeekFirst() (E, bool) {
	if l.first == nil {
		var zero E
		return zero, false
	}
	return l.first.item, true
}

// PeekLast returns the last element, if any.
func (l *List[E]) PeekLast() (E, bool) {
	if l.last == nil {
		var zero E
		return zero, false
	}
	return l.last.item, true
}

// PollFirst removes and returns the first element, if any.
func (l *List[E]) PollFirst() (E, bool) {
	if l.first == nil {
		var zero E
		return zero, false
	}
	return l.unlink(l.first), true
}

// PollLast removes and returns the last element, if any.
func (l *List[E]) PollLast() (E, bool) {
	if l.last == nil {
		var zero E
		return zero, false
	}
	return l.unlink(l.last), true
}

// Push pushes e onto the stack represented by the list, i.e. at the front.
func (l *List[E]) Push(e E) {
	l.linkFirst(e)
}

// Pop pops an element from the stack represented by the list.
func (l *List[E]) Pop() (E, error) {
	return l.PopFront()
}

// RemoveFirstOccurrence removes the first occurrence of e, traversing first to last.
func (l *List[E]) RemoveFirstOccurrence(e E) bool {
	for x := l.first; x != nil; x = x.next {
		if l.eq(e, x.item) {
			l.unlink(x)
			return true
		}
	}
	return false
}

// RemoveLastOccurrence removes the last occurrence of e, traversing last to first.
func (l *List[E]) RemoveLastOccurrence(e E) bool {
	for x := l.last; x != nil; x = x.prev {
		if l.eq(e, x.item) {
			l.unlink(x)
			return true
		}
	}
	return false
}

// --- Queue -----------------------------------------------------------------

// Offer appends e. It never fails.
func (l *List[E]) Offer(e E) bool {
	l.linkLast(e)
	return true
}

// Poll removes and returns the head of the queue, if any.
func (l *List[E]) Poll() (E, bool) {
	return l.PollFirst()
}

// Peek returns the head of the queue, if any.
func (l *List[E]) Peek() (E, bool) {
	return l.PeekFirst()
}

// Element returns the head of the queue.
func (l *List[E]) Element() (E, error) {
	return l.GetFirst()
}

// RemoveHead removes and returns the head of the queue.
func (l *List[E]) RemoveHead() (E, error) {
	return l.PopFront()
}
