package gocoll

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
)

// Error is an error type which allows declaring errors with the `const` keyword:
//
//	const ErrSomething gocoll.Error = "something is an error"
type Error string

func (err Error) Error() string { return string(err) }

// The error taxonomy of all containers. Errors returned by operations wrap one of
// these; test with errors.Is.
const (
	ErrIndexOutOfBounds       Error = "index out of bounds"
	ErrNoSuchElement          Error = "no such element"
	ErrConcurrentModification Error = "concurrent modification"
	ErrCapacityExceeded       Error = "required capacity exceeds maximum array size"
	ErrUnsupported            Error = "operation not supported"
	ErrIllegalState           Error = "illegal state"
	ErrIllegalArgument        Error = "illegal argument"
)

// --- Bounds faults ---------------------------------------------------------

// IndexError is the bounds fault for positional operations.
type IndexError struct {
	Op    string // operation which failed, e.g. "get"
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for size %d", e.Op, e.Index, e.Size)
}

// Unwrap makes errors.Is(err, ErrIndexOutOfBounds) work.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

// CheckIndex returns a bounds fault unless 0 ≤ index < size.
func CheckIndex(op string, index, size int) error {
	if index < 0 || index >= size {
		return &IndexError{Op: op, Index: index, Size: size}
	}
	return nil
}

// CheckPosition returns a bounds fault unless 0 ≤ index ≤ size. Positions address
// the gaps between elements, e.g. for insertions.
func CheckPosition(op string, index, size int) error {
	if index < 0 || index > size {
		return &IndexError{Op: op, Index: index, Size: size}
	}
	return nil
}

// CheckRange validates a half-open range [from,to) for a container of the given size.
// It is used for sub-lists and bulk removals.
func CheckRange(from, to, size int) error {
	if from < 0 {
		return &IndexError{Op: "range from", Index: from, Size: size}
	}
	if to > size {
		return &IndexError{Op: "range to", Index: to, Size: size}
	}
	if from > to {
		return fmt.Errorf("%w: from(%d) > to(%d)", ErrIllegalArgument, from, to)
	}
	return nil
}

// --- Consistency faults ----------------------------------------------------

// ComodificationError is the consistency fault a cursor or view reports when its
// container has been structurally modified behind its back.
type ComodificationError struct {
	Expected int // modification count the cursor has seen last
	Actual   int // modification count of the container
}

func (e *ComodificationError) Error() string {
	return fmt.Sprintf("%s: expected modification count %d, container is at %d",
		ErrConcurrentModification, e.Expected, e.Actual)
}

// Unwrap makes errors.Is(err, ErrConcurrentModification) work.
func (e *ComodificationError) Unwrap() error {
	return ErrConcurrentModification
}

// Comodification creates a consistency fault. If configuration flag
// "panic-on-concurrent-modification" is set, it panics with the error instead.
func Comodification(expected, actual int) error {
	err := &ComodificationError{Expected: expected, Actual: actual}
	tracer().Debugf("fail-fast: %v", err)
	if panicOnComodification() {
		panic(err)
	}
	return err
}

// gconf may not have been initialized by the application; this counts as "not set".
func panicOnComodification() (doPanic bool) {
	defer func() {
		if r := recover(); r != nil {
			doPanic = false
		}
	}()
	return gconf.GetBool("panic-on-concurrent-modification")
}

// --- Other faults ----------------------------------------------------------

// CapacityError is the resource-exhaustion fault of array-backed containers.
type CapacityError struct {
	Required int
	Max      int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: required %d, maximum is %d", ErrCapacityExceeded, e.Required, e.Max)
}

// Unwrap makes errors.Is(err, ErrCapacityExceeded) work.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// Unsupported creates a capability-unsupported fault for an operation.
func Unsupported(op string) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, op)
}

// RestoreError reports an invalid saved state while restoring a container.
type RestoreError struct {
	Kind   string // kind of container being restored
	Reason string
	Err    error
}

func (e *RestoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("restore %s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("restore %s: %s", e.Kind, e.Reason)
}

// Unwrap returns the cause, or ErrIllegalArgument if there is none.
func (e *RestoreError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrIllegalArgument
}
