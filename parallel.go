package gocoll

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Split decomposes a Spliterator into at most n parts by splitting every part
// round after round, until either n parts exist or no part is splittable any more.
// The parts are returned in encounter order if sp is Ordered.
func Split[E any](sp Spliterator[E], n int) []Spliterator[E] {
	parts := []Spliterator[E]{sp}
	for len(parts) < n {
		next := make([]Spliterator[E], 0, 2*len(parts))
		didSplit := false
		for i, p := range parts {
			if len(next)+len(parts)-i >= n { // enough parts, keep the rest whole
				next = append(next, p)
				continue
			}
			if prefix := p.TrySplit(); prefix != nil {
				next = append(next, prefix)
				didSplit = true
			}
			next = append(next, p)
		}
		parts = next
		if !didSplit {
			break
		}
	}
	tracer().Debugf("split spliterator into %d parts", len(parts))
	return parts
}

// Parallel visits all elements of sp using up to workers goroutines. sp is split
// up front, then every part is drained with ForEachRemaining on a goroutine of its own.
// visit must be safe for concurrent use.
//
// The first error of any part (usually a consistency fault) is returned; parts
// which have not started yet are skipped once an error occurred or ctx is done.
// workers ≤ 0 means runtime.GOMAXPROCS(0).
func Parallel[E any](ctx context.Context, sp Spliterator[E], workers int, visit func(E)) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	parts := Split(sp, 4*workers)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, part := range parts {
		part := part
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return part.ForEachRemaining(visit)
		})
	}
	return g.Wait()
}
