package arraylist

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/gocoll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIteratorFailFast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(1, 2, 3)
	it := l.Iterator()
	if x, err := it.Next(); err != nil || x != 1 {
		t.Fatalf("expected 1, have %d (%v)", x, err)
	}
	l.Append(4)
	if _, err := it.Next(); !errors.Is(err, gocoll.ErrConcurrentModification) {
		t.Errorf("expected consistency fault after append, have %v", err)
	}
}

func TestIteratorRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(1, 2, 3, 4)
	it := l.Iterator()
	if err := it.Remove(); !errors.Is(err, gocoll.ErrIllegalState) {
		t.Errorf("expected remove before next to fail, have %v", err)
	}
	for it.HasNext() {
		x, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		if x%2 == 0 {
			if err = it.Remove(); err != nil {
				t.Fatalf("remove through iterator failed: %v", err)
			}
			if err = it.Remove(); !errors.Is(err, gocoll.ErrIllegalState) {
				t.Errorf("expected second remove to fail, have %v", err)
			}
		}
	}
	if l.String() != "[1, 3]" {
		t.Errorf("expected [1, 3], have %s", l)
	}
	if _, err := it.Next(); !errors.Is(err, gocoll.ErrNoSuchElement) {
		t.Errorf("expected exhausted iterator to fail, have %v", err)
	}
}

func TestListIteratorBothWays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of("a", "b", "c")
	it, err := l.ListIterator(3)
	if err != nil {
		t.Fatal(err)
	}
	var back []string
	for it.HasPrevious() {
		x, err := it.Previous()
		if err != nil {
			t.Fatal(err)
		}
		back = append(back, x)
	}
	if len(back) != 3 || back[0] != "c" || back[2] != "a" {
		t.Errorf("expected backwards traversal c b a, have %v", back)
	}
	it.Next()   // a
	it.Set("A") // not structural
	if err = it.Add("x"); err != nil {
		t.Fatal(err)
	}
	if x, err := it.Next(); err != nil || x != "b" {
		t.Errorf("expected b after add, have %q (%v)", x, err)
	}
	if l.String() != "[A, x, b, c]" {
		t.Errorf("expected [A, x, b, c], have %s", l)
	}
	if it.NextIndex() != 3 || it.PreviousIndex() != 2 {
		t.Errorf("unexpected cursor position %d", it.NextIndex())
	}
}

func TestForEachRemaining(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(1, 2, 3, 4)
	it := l.Iterator().(*iterator[int])
	it.Next()
	sum := 0
	if err := it.ForEachRemaining(func(x int) { sum += x }); err != nil {
		t.Fatal(err)
	}
	if sum != 9 || it.HasNext() {
		t.Errorf("expected remaining sum 9, have %d", sum)
	}
	if err := it.Remove(); err != nil || l.Size() != 3 {
		t.Errorf("expected last visited element to be removable, have %v", err)
	}
}

func TestViewAliasing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := New[int]()
	for i := 0; i < 10; i++ {
		l.Append(i)
	}
	half, err := l.SubList(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if s := gocoll.String[int](half); s != "[2, 3, 4]" {
		t.Errorf("expected view [2, 3, 4], have %s", s)
	}
	if err = half.Clear(); err != nil {
		t.Fatal(err)
	}
	if l.String() != "[0, 1, 5, 6, 7, 8, 9]" { // 5 is outside of [2,5)
		t.Errorf("expected [0, 1, 5, 6, 7, 8, 9], have %s", l)
	}
	l.Insert(2, 2)
	l.Insert(3, 3)
	l.Insert(4, 4)
	//
	v, err := l.SubList(2, 6)
	if err != nil {
		t.Fatal(err)
	}
	if s := gocoll.String[int](v); s != "[2, 3, 4, 5]" {
		t.Errorf("expected view [2, 3, 4, 5], have %s", s)
	}
	if err = v.Clear(); err != nil {
		t.Fatal(err)
	}
	if l.String() != "[0, 1, 6, 7, 8, 9]" {
		t.Errorf("expected [0, 1, 6, 7, 8, 9], have %s", l)
	}
	if !v.IsEmpty() {
		t.Errorf("expected view to be empty, has size %d", v.Size())
	}
	v.Add(42)
	if l.String() != "[0, 1, 42, 6, 7, 8, 9]" {
		t.Errorf("expected insertion at end of view, have %s", l)
	}
	if _, err = half.Get(0); !errors.Is(err, gocoll.ErrIndexOutOfBounds) && !errors.Is(err, gocoll.ErrConcurrentModification) {
		t.Errorf("expected cleared view to have no positions, have %v", err)
	}
}

func TestNestedViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(0, 1, 2, 3, 4, 5, 6, 7)
	outer, _ := l.View(1, 7) // 1..6
	inner, _ := outer.View(2, 4)
	if inner.String() != "[3, 4]" {
		t.Errorf("expected inner view [3, 4], have %s", inner)
	}
	inner.RemoveAt(0)
	if inner.Size() != 1 || outer.Size() != 5 || l.Size() != 7 {
		t.Errorf("expected sizes 1/5/7, have %d/%d/%d", inner.Size(), outer.Size(), l.Size())
	}
	if x, err := outer.Get(2); err != nil || x != 4 {
		t.Errorf("expected outer view to see the removal, have %d (%v)", x, err)
	}
	inner.Insert(0, 33)
	if outer.String() != "[1, 2, 33, 4, 5, 6]" {
		t.Errorf("expected [1, 2, 33, 4, 5, 6], have %s", outer)
	}
}

func TestStaleView(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(0, 1, 2, 3, 4)
	v, _ := l.SubList(1, 3)
	w, _ := l.SubList(2, 4)
	l.Append(5)
	if _, err := v.Get(0); !errors.Is(err, gocoll.ErrConcurrentModification) {
		t.Errorf("expected stale view after append to root, have %v", err)
	}
	w2, _ := l.SubList(2, 4)
	v2, _ := l.SubList(1, 3)
	v2.RemoveAt(0)
	if _, err := w2.Get(0); !errors.Is(err, gocoll.ErrConcurrentModification) {
		t.Errorf("expected sibling view to become stale, have %v", err)
	}
	if _, err := w.Set(0, 9); !errors.Is(err, gocoll.ErrConcurrentModification) {
		t.Errorf("expected stale view, have %v", err)
	}
	if w.ToSlice() != nil {
		t.Errorf("expected stale view to yield no elements")
	}
}

func TestViewBulk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(1, 2, 3, 4, 5, 6, 7, 8)
	v, _ := l.View(2, 6) // 3 4 5 6
	v.RemoveIf(func(x int) bool { return x%2 == 0 })
	if v.String() != "[3, 5]" || l.String() != "[1, 2, 3, 5, 7, 8]" {
		t.Errorf("expected removal of 4 and 6 only, have %s in %s", v, l)
	}
	v.AddAll(Of(10, 11))
	if v.Size() != 4 || l.String() != "[1, 2, 3, 5, 10, 11, 7, 8]" {
		t.Errorf("expected insertion at end of view, have %s", l)
	}
	v.RetainAll(Of(5, 11))
	if v.String() != "[5, 11]" || l.Size() != 6 {
		t.Errorf("expected [5, 11], have %s in %s", v, l)
	}
	it, _ := v.ListIterator(0)
	it.Next()
	it.Remove()
	if v.String() != "[11]" || l.String() != "[1, 2, 11, 7, 8]" {
		t.Errorf("expected iterator removal through view, have %s in %s", v, l)
	}
}

func TestSpliteratorSplitsCompletely(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	const n = 1000
	l := New[int]()
	for i := 0; i < n; i++ {
		l.Append(i)
	}
	parts := gocoll.Split(l.Spliterator(), 16)
	if len(parts) != 16 {
		t.Errorf("expected 16 parts, have %d", len(parts))
	}
	seen := make([]int, n)
	last := -1
	for _, p := range parts {
		prev := -1
		err := p.ForEachRemaining(func(x int) {
			if x <= prev {
				t.Errorf("elements out of order within split: %d after %d", x, prev)
			}
			prev = x
			seen[x]++
		})
		if err != nil {
			t.Fatal(err)
		}
		if prev <= last {
			t.Errorf("expected parts in encounter order")
		}
		last = prev
	}
	for i, c := range seen {
		if c != 1 {
			t.Fatalf("element %d visited %d times", i, c)
		}
	}
}

func TestSpliteratorParallel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	const n = 5000
	l := New[int]()
	for i := 0; i < n; i++ {
		l.Append(i)
	}
	var mx sync.Mutex
	seen := make(map[int]int, n)
	err := gocoll.Parallel(context.Background(), l.Spliterator(), 4, func(x int) {
		mx.Lock()
		defer mx.Unlock()
		seen[x]++
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != n {
		t.Errorf("expected %d distinct elements, have %d", n, len(seen))
	}
	for x, c := range seen {
		if c != 1 {
			t.Errorf("element %d visited %d times", x, c)
		}
	}
}

func TestSpliteratorLateBinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(1, 2, 3)
	sp := l.Spliterator()
	l.Append(4) // before binding: tolerated
	if sp.EstimateSize() != 4 {
		t.Errorf("expected late binding to see 4 elements, have %d", sp.EstimateSize())
	}
	if ok, err := sp.TryAdvance(func(int) {}); !ok || err != nil {
		t.Errorf("expected advance, have %v", err)
	}
	l.Append(5) // after binding: fault
	if _, err := sp.TryAdvance(func(int) {}); !errors.Is(err, gocoll.ErrConcurrentModification) {
		t.Errorf("expected consistency fault, have %v", err)
	}
	sp = l.Spliterator()
	err := sp.ForEachRemaining(func(x int) {
		if x == 2 {
			l.RemoveAt(0)
		}
	})
	if !errors.Is(err, gocoll.ErrConcurrentModification) {
		t.Errorf("expected consistency fault at end of traversal, have %v", err)
	}
	if !sp.Characteristics().Has(gocoll.Ordered | gocoll.Sized | gocoll.Subsized) {
		t.Errorf("unexpected characteristics %v", sp.Characteristics())
	}
}

func TestViewSpliterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	v, _ := l.View(3, 7)
	var got []int
	sp := v.Spliterator()
	if prefix := sp.TrySplit(); prefix != nil {
		prefix.ForEachRemaining(func(x int) { got = append(got, x) })
	}
	sp.ForEachRemaining(func(x int) { got = append(got, x) })
	if len(got) != 4 || got[0] != 3 || got[3] != 6 {
		t.Errorf("expected [3 4 5 6], have %v", got)
	}
}
