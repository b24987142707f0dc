/*
Package arraylist implements a resizable-array list.

A List keeps its elements in a contiguous backing array. Appending is amortized
O(1); inserting or removing at position i costs O(size-i). When an insertion would
exceed the capacity of the backing array, the array grows by half of its current
capacity (or to the required minimum, if that is larger). It never shrinks
automatically; use TrimToSize.

	l := arraylist.New[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)
	l.Insert(1, 9)        // [1 9 2 3]
	l.RemoveAt(0)         // [9 2 3]
	x, _ := l.Get(0)      // 9
	_, err := l.Get(3)    // errors.Is(err, gocoll.ErrIndexOutOfBounds)

# Sub-lists

SubList returns a live view onto a range of positions. Changes made through the view
are changes of the list:

	v, _ := l.SubList(2, 5)
	v.Clear()             // removes positions 2, 3 and 4 from l

Structural changes of the list not made through a view render the view stale;
it then fails with ErrConcurrentModification.

# Splitting

Spliterator returns a late-binding cursor which may be split in halves for parallel
traversal, see gocoll.Parallel.

List is not safe for concurrent use. Wrap it with package synced if needed.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arraylist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocoll.arraylist'.
func tracer() tracing.Trace {
	return tracing.Select("gocoll.arraylist")
}
