/*
Package synced provides synchronized wrappers for containers.

Every method of a wrapper acquires a container-wide mutex, calls the wrapped
container and releases the mutex. This makes single calls atomic, nothing more.
A sequence of calls, e.g. a check-then-act like

	if !l.Contains(x) {
		l.Add(x)
	}

is not atomic. Use WithLock to hold the lock over such a sequence:

	l.WithLock(func(inner gocoll.List[int]) {
		if !inner.Contains(x) {
			inner.Add(x)
		}
	})

Iterators and spliterators handed out by a wrapper are those of the wrapped
container and are not synchronized. Iterating over a wrapper which is modified
concurrently will sooner or later fail with ErrConcurrentModification; hold the
lock for the duration of the traversal instead.

The wrapped container must not be accessed except through its wrapper.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package synced

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocoll.synced'.
func tracer() tracing.Trace {
	return tracing.Select("gocoll.synced")
}
