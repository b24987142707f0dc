package gocoll

import (
	"reflect"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Equaler may be implemented by element types with a notion of equality other
// than Go's ==.
type Equaler[T any] interface {
	Equal(other T) bool
}

// EqualsFunc is a predicate for element equivalence.
type EqualsFunc[E any] func(a, b E) bool

// Equals is the default element equivalence of all containers:
//
// ■ if E implements Equaler[E], a.Equal(b) decides
//
// ■ otherwise, values of comparable types are compared with ==
//
// ■ all others are compared with reflect.DeepEqual.
func Equals[E any](a, b E) bool {
	if eq, ok := any(a).(Equaler[E]); ok {
		return eq.Equal(b)
	}
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if reflect.TypeOf(x).Comparable() && reflect.TypeOf(y).Comparable() {
		return comparableEquals(x, y)
	}
	return reflect.DeepEqual(x, y)
}

// Interface values of comparable static type may still hold incomparable values
// deep inside; == panics for these.
func comparableEquals(x, y any) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			eq = reflect.DeepEqual(x, y)
		}
	}()
	return x == y
}

// EqualsOrDefault returns eq, or Equals[E] if eq is nil.
func EqualsOrDefault[E any](eq EqualsFunc[E]) EqualsFunc[E] {
	if eq == nil {
		return Equals[E]
	}
	return eq
}

// Equivalent is implemented by containers which may be configured with an element
// equivalence of their own.
type Equivalent[E any] interface {
	Equality() EqualsFunc[E]
}

// EqualityOf returns the element equivalence of c, if it has one, or Equals[E].
func EqualityOf[E any](c any) EqualsFunc[E] {
	if q, ok := c.(Equivalent[E]); ok {
		return EqualsOrDefault(q.Equality())
	}
	return Equals[E]
}

// --- Comparators -----------------------------------------------------------

// Comparator compares two elements. It returns a negative value if a < b, zero if
// a == b and a positive value if a > b.
type Comparator[E any] func(a, b E) int

// NaturalOrder is a Comparator for ordered types.
func NaturalOrder[E constraints.Ordered](a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ReverseOrder inverts a comparator.
func ReverseOrder[E any](cmp Comparator[E]) Comparator[E] {
	return func(a, b E) int {
		return cmp(b, a)
	}
}

// GodsComparator adapts a typed comparator to the untyped one of the gods
// containers.
func GodsComparator[E any](cmp Comparator[E]) utils.Comparator {
	return func(a, b interface{}) int {
		return cmp(a.(E), b.(E))
	}
}
