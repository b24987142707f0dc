package gocoll

// --- General purpose interfaces for containers -----------------------------

// Iterator is a fail-fast cursor over the elements of a collection.
//
// A typical loop looks like this:
//
//	it := c.Iterator()
//	for it.HasNext() {
//		e, err := it.Next()
//		if err != nil {
//			return err       // container changed behind our back
//		}
//		…
//	}
//
// Remove may be called at most once per call to Next. It removes the element most
// recently returned by Next from the underlying collection, which is the only
// structural modification an iterator tolerates.
type Iterator[E any] interface {
	HasNext() bool
	Next() (E, error)
	Remove() error
}

// ListIterator is a bidirectional Iterator for lists. Its position always lies
// between two elements: the one Previous would return and the one Next would return.
type ListIterator[E any] interface {
	Iterator[E]
	HasPrevious() bool
	Previous() (E, error)
	NextIndex() int
	PreviousIndex() int
	// Set replaces the element last returned by Next or Previous. It is not a
	// structural modification.
	Set(e E) error
	// Add inserts an element immediately before the cursor position.
	Add(e E) error
}

// Collection is the root interface of all containers.
type Collection[E any] interface {
	Size() int
	IsEmpty() bool
	Contains(e E) bool
	// Add makes sure the collection contains e. It returns true if the collection
	// changed as a result.
	Add(e E) (bool, error)
	// Remove removes a single instance of e, if present.
	Remove(e E) (bool, error)
	Clear() error
	Iterator() Iterator[E]
	Spliterator() Spliterator[E]
	// ToSlice returns the elements in iteration order, as a fresh slice.
	ToSlice() []E
}

// List is an ordered collection with positional access. Positions are zero-based.
type List[E any] interface {
	Collection[E]
	Get(index int) (E, error)
	// Set replaces the element at index and returns the previous one.
	Set(index int, e E) (E, error)
	// Insert inserts e at index, shifting the element currently at that position
	// (if any) and all subsequent elements to the right.
	Insert(index int, e E) error
	RemoveAt(index int) (E, error)
	IndexOf(e E) int
	LastIndexOf(e E) int
	ListIterator(index int) (ListIterator[E], error)
	// SubList returns a live view of the positions [from,to).
	SubList(from, to int) (List[E], error)
}

// Set is a collection without duplicate elements.
type Set[E any] interface {
	Collection[E]
}

// Queue is a collection holding elements prior to processing, usually in FIFO order.
// Poll and Peek never fail; RemoveHead and Element return ErrNoSuchElement on an
// empty queue.
type Queue[E any] interface {
	Collection[E]
	Offer(e E) bool
	Poll() (E, bool)
	Peek() (E, bool)
	Element() (E, error)
	RemoveHead() (E, error)
}

// Deque is a linear collection supporting insertion and removal at both ends.
type Deque[E any] interface {
	Queue[E]
	PushFront(e E)
	PushBack(e E)
	PopFront() (E, error)
	PopBack() (E, error)
	PeekFirst() (E, bool)
	PeekLast() (E, bool)
	PollFirst() (E, bool)
	PollLast() (E, bool)
	GetFirst() (E, error)
	GetLast() (E, error)
	// Push and Pop use the deque as a stack (LIFO), operating on the front.
	Push(e E)
	Pop() (E, error)
	RemoveFirstOccurrence(e E) bool
	RemoveLastOccurrence(e E) bool
	DescendingIterator() Iterator[E]
}

// --- Splittable cursors ----------------------------------------------------

// Characteristics is a set of flags a Spliterator reports about its source.
type Characteristics uint

// Flags for Spliterators. Values follow a tradition of other runtimes, so they
// may be exchanged numerically.
const (
	Distinct   Characteristics = 0x00000001 // no two elements are equal
	Sorted     Characteristics = 0x00000004 // elements follow a sort order
	Ordered    Characteristics = 0x00000010 // encounter order is defined
	Sized      Characteristics = 0x00000040 // EstimateSize is exact before traversal
	NonNull    Characteristics = 0x00000100
	Immutable  Characteristics = 0x00000400
	Concurrent Characteristics = 0x00001000
	Subsized   Characteristics = 0x00004000 // all splits are Sized, too
)

// Has is a predicate: are all flags of c2 set in c?
func (c Characteristics) Has(c2 Characteristics) bool {
	return c&c2 == c2
}

// Spliterator is a cursor which is able to divide its remaining range in two,
// for independent (and possibly parallel) consumption of the parts.
//
// Spliterators bind to their source lazily: the range and the expected modification
// count are fixed on first use, not on creation.
type Spliterator[E any] interface {
	// TryAdvance visits the next element, if any. It validates the source on every call.
	TryAdvance(visit func(E)) (bool, error)
	// ForEachRemaining visits all remaining elements, validating the source once
	// at the end.
	ForEachRemaining(visit func(E)) error
	// TrySplit splits off a prefix of the remaining elements into a new Spliterator
	// and keeps the rest. It returns nil if the remainder is too small to split.
	TrySplit() Spliterator[E]
	EstimateSize() int
	Characteristics() Characteristics
}
