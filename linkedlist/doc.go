/*
Package linkedlist implements a doubly linked list.

A List is a chain of nodes, each holding an element and links to its predecessor
and successor. Insertion and removal at either end are O(1), as is any insertion
or removal through a list iterator. Positional access walks the chain from the
nearer end and is O(n).

List implements both gocoll.List and gocoll.Deque, so it may be used as a list,
a FIFO queue or a stack:

	q := linkedlist.New[string]()
	q.Offer("a")
	q.Offer("b")
	x, _ := q.Poll()      // "a"

	s := linkedlist.New[int]()
	s.Push(1)
	s.Push(2)
	y, _ := s.Pop()       // 2

Methods which require an element to be present (PopFront, GetLast, Element, …)
return ErrNoSuchElement on an empty list; their polling counterparts (PollFirst,
PeekLast, Peek, …) report absence with a boolean instead.

# Splitting

The spliterator of a List copies batches of growing size out of the chain into
arrays, which then may be split further. This is worthwhile only if the work per
element is substantial.

List is not safe for concurrent use. Wrap it with package synced if needed.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package linkedlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocoll.linkedlist'.
func tracer() tracing.Trace {
	return tracing.Select("gocoll.linkedlist")
}
