/*
Package gocoll is a collections toolbox with fail-fast iteration.

It focusses on the classic trio of general purpose containers and on the
machinery they share. Package structure is as follows:

■ arraylist: Package arraylist implements a resizable-array list, together with
live range views (sub-lists) and splittable cursors.

■ linkedlist: Package linkedlist implements a doubly linked list, usable as a list,
a queue, a double-ended queue and a stack.

■ hashset: Package hashset implements a set on top of an associative collaborator,
using a sentinel value to mark membership.

■ synced: Package synced wraps containers with a container-wide lock.

■ codec: Package codec provides a YAML persistence collaborator for the
save/restore contract of the containers.

■ cmd/collsh: An interactive shell to play with the containers.

The base package contains the interfaces which are used throughout all the other
packages: Collection, List, Set, Queue, Deque, Iterator, ListIterator and
Spliterator. It also contains the bookkeeping every container embeds (ModCount),
the error taxonomy, and free functions implementing behaviour common to all
collections ("default methods").

# Fail-Fast Iteration

Every container counts structural modifications (changes of size or topology, but
not in-place replacement of values). Cursors capture the count on creation and
re-validate it before every step. A mismatch is reported as
ErrConcurrentModification and the cursor should be discarded:

	it := list.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {        // errors.Is(err, gocoll.ErrConcurrentModification)
			break
		}
		…
	}

This is a best-effort detector for programming errors, not a synchronization
mechanism. None of the containers is safe for concurrent use; see package synced.

# Configuration

If the gconf key "panic-on-concurrent-modification" is set to true, consistency faults
panic instead of being returned.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gocoll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocoll'.
func tracer() tracing.Trace {
	return tracing.Select("gocoll")
}
