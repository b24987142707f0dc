/*
Package hashset implements a set on top of an associative container.

A Set does not store anything itself. Membership of an element e is represented
by a key e in a Map collaborator, mapped to a shared sentinel value. Equivalence,
hashing and the iteration order of elements are entirely up to the collaborator:

■ NewGodsMap, the default, is a hash map without any order guarantees

■ NewLinkedGodsMap remembers insertion order

■ NewSortedGodsMap keeps keys sorted by a comparator

■ NewDigestMap keys elements by a structural digest; it is the collaborator of
choice for element types which are not comparable with ==.

Example:

	s := hashset.New[string]()
	s.Add("a")                     // true
	s.Add("a")                     // false, already present
	s.Size()                       // 1

	o := hashset.NewWith[int](hashset.NewSortedGodsMap[int](gocoll.NaturalOrder[int]))

Iterators of a Set work on a snapshot of the keys, but still fail fast if the set
is modified other than through the iterator.

Set is not safe for concurrent use. Wrap it with package synced if needed.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocoll.hashset'.
func tracer() tracing.Trace {
	return tracing.Select("gocoll.hashset")
}
