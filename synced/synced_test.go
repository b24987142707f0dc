package synced

import (
	"sync"
	"testing"

	"github.com/npillmayer/gocoll"
	"github.com/npillmayer/gocoll/arraylist"
	"github.com/npillmayer/gocoll/hashset"
	"github.com/npillmayer/gocoll/linkedlist"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConcurrentAppends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.synced")
	defer teardown()
	//
	l := WrapList[int](arraylist.New[int]())
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				l.Add(w*1000 + i)
			}
		}(w)
	}
	wg.Wait()
	if l.Size() != 4000 {
		t.Errorf("expected 4000 elements, have %d", l.Size())
	}
}

func TestCheckThenActWithLock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.synced")
	defer teardown()
	//
	l := WrapList[int](linkedlist.New[int]())
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				l.WithLock(func(inner gocoll.List[int]) {
					if !inner.Contains(i) {
						inner.Add(i)
					}
				})
			}
		}()
	}
	wg.Wait()
	if l.Size() != 100 {
		t.Errorf("expected 100 distinct elements, have %d", l.Size())
	}
}

func TestDequeAsWorkQueue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.synced")
	defer teardown()
	//
	q := WrapDeque[int](linkedlist.New[int]())
	for i := 0; i < 1000; i++ {
		q.Offer(i)
	}
	var mx sync.Mutex
	seen := make(map[int]bool)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				x, ok := q.Poll()
				if !ok {
					return
				}
				mx.Lock()
				seen[x] = true
				mx.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != 1000 || !q.IsEmpty() {
		t.Errorf("expected every element polled exactly once, have %d", len(seen))
	}
	if _, err := q.PopBack(); err == nil {
		t.Errorf("expected empty-container fault")
	}
}

func TestSetAndSubList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.synced")
	defer teardown()
	//
	s := WrapSet[string](hashset.New[string]())
	s.AddAll(arraylist.Of("a", "b", "a"))
	if s.Size() != 2 {
		t.Errorf("expected 2 elements, have %d", s.Size())
	}
	s.AddAll(s)
	if s.Size() != 2 {
		t.Errorf("expected adding to itself to be a no-op, have %d", s.Size())
	}
	//
	l := WrapList[int](arraylist.Of(0, 1, 2, 3, 4, 5))
	v, err := l.SubList(1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if sv, ok := v.(*List[int]); !ok || sv.mu != l.mu {
		t.Errorf("expected view to share the lock of its list")
	}
	v.Clear()
	if l.String() != "[0, 4, 5]" {
		t.Errorf("expected [0, 4, 5], have %s", l.String())
	}
}
