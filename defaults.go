package gocoll

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strings"

	"github.com/cnf/structhash"
)

// Behaviour common to all collections, expressed in terms of the primitive
// operations of the interfaces. Containers with a more efficient implementation
// provide a method of the same name, which these functions prefer.

// AddAll adds all elements of src to dst, in src's iteration order. It returns true
// if dst changed. src is snapshotted first, so AddAll(c, c) is well defined.
func AddAll[E any](dst Collection[E], src Collection[E]) (bool, error) {
	if a, ok := dst.(interface {
		AddAll(Collection[E]) (bool, error)
	}); ok {
		return a.AddAll(src)
	}
	changed := false
	for _, e := range src.ToSlice() {
		ok, err := dst.Add(e)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// ContainsAll is a predicate: does c contain every element of other?
func ContainsAll[E any](c Collection[E], other Collection[E]) bool {
	for _, e := range other.ToSlice() {
		if !c.Contains(e) {
			return false
		}
	}
	return true
}

// RemoveAll removes every element of c which is contained in other.
func RemoveAll[E any](c Collection[E], other Collection[E]) (bool, error) {
	if r, ok := c.(interface {
		RemoveAll(Collection[E]) (bool, error)
	}); ok {
		return r.RemoveAll(other)
	}
	return removeWhere(c, other.Contains)
}

// RetainAll removes every element of c which is not contained in other.
func RetainAll[E any](c Collection[E], other Collection[E]) (bool, error) {
	if r, ok := c.(interface {
		RetainAll(Collection[E]) (bool, error)
	}); ok {
		return r.RetainAll(other)
	}
	return removeWhere(c, func(e E) bool { return !other.Contains(e) })
}

// RemoveIf removes every element of c satisfying pred.
func RemoveIf[E any](c Collection[E], pred func(E) bool) (bool, error) {
	if r, ok := c.(interface {
		RemoveIf(func(E) bool) (bool, error)
	}); ok {
		return r.RemoveIf(pred)
	}
	return removeWhere(c, pred)
}

func removeWhere[E any](c Collection[E], pred func(E) bool) (bool, error) {
	changed := false
	it := c.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return changed, err
		}
		if pred(e) {
			if err = it.Remove(); err != nil {
				return changed, err
			}
			changed = true
		}
	}
	return changed, nil
}

// ForEach calls action for every element of c, in iteration order.
func ForEach[E any](c Collection[E], action func(E)) error {
	if f, ok := c.(interface {
		ForEach(func(E)) error
	}); ok {
		return f.ForEach(action)
	}
	it := c.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		action(e)
	}
	return nil
}

// ToSlice collects the elements of an iterator into a slice.
func ToSlice[E any](it Iterator[E]) ([]E, error) {
	var s []E
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return s, err
		}
		s = append(s, e)
	}
	return s, nil
}

// All returns a range-over-func sequence over c. Iteration ends early on a
// consistency fault; use an Iterator if the error is of interest.
func All[E any](c Collection[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		it := c.Iterator()
		for it.HasNext() {
			e, err := it.Next()
			if err != nil || !yield(e) {
				return
			}
		}
	}
}

// Backward returns a range-over-func sequence over a list, from last to first,
// together with the positions.
func Backward[E any](l List[E]) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		it, err := l.ListIterator(l.Size())
		if err != nil {
			return
		}
		for it.HasPrevious() {
			i := it.PreviousIndex()
			e, err := it.Previous()
			if err != nil || !yield(i, e) {
				return
			}
		}
	}
}

// --- Equality, hashing, printing ----------------------------------------------

// Equal compares two lists element-wise, in order. Elements are compared with the
// equivalence of a, if it has been configured with one.
func Equal[E any](a, b List[E]) bool {
	if a.Size() != b.Size() {
		return false
	}
	eq := EqualityOf[E](a)
	ia, ib := a.Iterator(), b.Iterator()
	for ia.HasNext() && ib.HasNext() {
		x, err1 := ia.Next()
		y, err2 := ib.Next()
		if err1 != nil || err2 != nil || !eq(x, y) {
			return false
		}
	}
	return !(ia.HasNext() || ib.HasNext())
}

// SetEqual compares two collections as sets: same size and mutual containment.
func SetEqual[E any](a, b Collection[E]) bool {
	if a.Size() != b.Size() {
		return false
	}
	return ContainsAll(a, b)
}

// Hasher may be implemented by element types to provide their own hash code.
type Hasher interface {
	HashCode() uint32
}

// ElementHash returns a hash code for a single element. Elements not implementing
// Hasher are hashed from a structural digest of their value.
func ElementHash[E any](e E) uint32 {
	if h, ok := any(e).(Hasher); ok {
		return h.HashCode()
	}
	if any(e) == nil {
		return 0
	}
	digest := structhash.Md5(e, 1)
	if len(digest) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(digest)
}

// HashCode returns an order-dependent hash code for a list: h = 31·h + hash(e).
func HashCode[E any](l List[E]) uint32 {
	var h uint32 = 1
	for _, e := range l.ToSlice() {
		h = 31*h + ElementHash(e)
	}
	return h
}

// SetHashCode returns an order-independent hash code for a set: the sum of the
// element hashes.
func SetHashCode[E any](s Collection[E]) uint32 {
	var h uint32
	for _, e := range s.ToSlice() {
		h += ElementHash(e)
	}
	return h
}

// String prints a collection as "[e1, e2, …]".
func String[E any](c Collection[E]) string {
	var b strings.Builder
	b.WriteString("[")
	for i, e := range c.ToSlice() {
		if i > 0 {
			b.WriteString(", ")
		}
		if any(e) == any(c) {
			b.WriteString("(this collection)")
			continue
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteString("]")
	return b.String()
}
