package arraylist

import (
	"errors"
	"testing"

	godslist "github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/gocoll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := New[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)
	if err := l.Insert(1, 9); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if s := l.String(); s != "[1, 9, 2, 3]" {
		t.Errorf("expected [1, 9, 2, 3], have %s", s)
	}
	if x, err := l.RemoveAt(0); err != nil || x != 1 {
		t.Errorf("expected removal of 1, have %d (%v)", x, err)
	}
	if s := l.String(); s != "[9, 2, 3]" {
		t.Errorf("expected [9, 2, 3], have %s", s)
	}
	if x, _ := l.Get(0); x != 9 {
		t.Errorf("expected l[0] = 9, is %d", x)
	}
	_, err := l.Get(3)
	if !errors.Is(err, gocoll.ErrIndexOutOfBounds) {
		t.Errorf("expected bounds fault for l[3], have %v", err)
	}
	var ierr *gocoll.IndexError
	if !errors.As(err, &ierr) || ierr.Index != 3 || ierr.Size != 3 {
		t.Errorf("expected IndexError{3,3}, have %v", err)
	}
}

func TestGrowth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := New[int]()
	if l.Capacity() != 0 {
		t.Errorf("expected lazy allocation, capacity is %d", l.Capacity())
	}
	l.Append(0)
	if l.Capacity() != DefaultCapacity {
		t.Errorf("expected capacity %d after first append, is %d", DefaultCapacity, l.Capacity())
	}
	for i := 1; i < 11; i++ {
		l.Append(i)
	}
	if l.Capacity() != 15 {
		t.Errorf("expected capacity to grow by 50%% to 15, is %d", l.Capacity())
	}
	const n = 1000
	for i := 11; i < n; i++ {
		l.Append(i)
	}
	if l.Size() != n || l.Capacity() < n {
		t.Fatalf("expected size %d ≤ capacity, have %d/%d", n, l.Size(), l.Capacity())
	}
	for i := 0; i < n; i++ {
		if x, _ := l.Get(i); x != i {
			t.Fatalf("expected l[%d] = %d, is %d", i, i, x)
		}
	}
	l.TrimToSize()
	if l.Capacity() != n {
		t.Errorf("expected capacity %d after trim, is %d", n, l.Capacity())
	}
}

func TestSizedListGrowsToMinimum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l, err := NewWithCapacity[string](0)
	if err != nil {
		t.Fatal(err)
	}
	l.Append("a")
	if l.Capacity() != 1 {
		t.Errorf("expected a zero-capacity list to grow to 1, is %d", l.Capacity())
	}
	if _, err = NewWithCapacity[string](-1); !errors.Is(err, gocoll.ErrIllegalArgument) {
		t.Errorf("expected negative capacity to be rejected, have %v", err)
	}
}

func TestCapacityExceeded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := New[byte]()
	if err := l.EnsureCapacity(MaxArraySize + 1); !errors.Is(err, gocoll.ErrCapacityExceeded) {
		t.Errorf("expected resource-exhaustion fault, have %v", err)
	}
	if _, err := NewWithCapacity[byte](MaxArraySize + 1); !errors.Is(err, gocoll.ErrCapacityExceeded) {
		t.Errorf("expected resource-exhaustion fault, have %v", err)
	}
	if l.ModCount() != 0 || l.Size() != 0 {
		t.Errorf("failed growth must not change the list")
	}
}

func TestBoundsFaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(1, 2, 3)
	if err := l.Insert(4, 0); !errors.Is(err, gocoll.ErrIndexOutOfBounds) {
		t.Errorf("expected bounds fault for insert at 4, have %v", err)
	}
	if err := l.Insert(3, 4); err != nil {
		t.Errorf("insert at size should be allowed, have %v", err)
	}
	if _, err := l.Set(-1, 0); !errors.Is(err, gocoll.ErrIndexOutOfBounds) {
		t.Errorf("expected bounds fault for set at -1, have %v", err)
	}
	if _, err := l.RemoveAt(4); !errors.Is(err, gocoll.ErrIndexOutOfBounds) {
		t.Errorf("expected bounds fault for remove at 4, have %v", err)
	}
	if _, err := l.SubList(3, 2); !errors.Is(err, gocoll.ErrIllegalArgument) {
		t.Errorf("expected from > to to be rejected, have %v", err)
	}
	if _, err := l.ListIterator(5); !errors.Is(err, gocoll.ErrIndexOutOfBounds) {
		t.Errorf("expected bounds fault for list iterator at 5, have %v", err)
	}
}

func TestModCountOnlyForStructuralChanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(1, 2, 3)
	mc := l.ModCount()
	l.Set(0, 7)
	l.EnsureCapacity(100)
	l.TrimToSize()
	l.ReplaceAll(func(x int) int { return x * 2 })
	if l.ModCount() != mc {
		t.Errorf("expected non-structural changes to keep mod count %d, is %d", mc, l.ModCount())
	}
	l.Append(4)
	if l.ModCount() != mc+1 {
		t.Errorf("expected exactly one bump per append")
	}
	l.RemoveAll(Of(2, 4))
	if l.ModCount() != mc+2 {
		t.Errorf("expected exactly one bump per bulk removal")
	}
}

func TestRemoveByValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of("a", "b", "a", "c")
	if ok, _ := l.Remove("a"); !ok {
		t.Errorf("expected 'a' to be removed")
	}
	if l.String() != "[b, a, c]" {
		t.Errorf("expected first occurrence to be removed, have %s", l)
	}
	if ok, _ := l.Remove("x"); ok {
		t.Errorf("expected absent 'x' not to be removed")
	}
	if l.IndexOf("c") != 2 || l.LastIndexOf("b") != 0 || l.IndexOf("x") != -1 {
		t.Errorf("search broken for %s", l)
	}
}

func TestBulkOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(1, 2, 3, 4, 5, 6)
	l.RetainAll(Of(2, 3, 4, 5))
	if l.String() != "[2, 3, 4, 5]" {
		t.Errorf("expected [2, 3, 4, 5], have %s", l)
	}
	l.InsertAll(1, Of(8, 9))
	if l.String() != "[2, 8, 9, 3, 4, 5]" {
		t.Errorf("expected [2, 8, 9, 3, 4, 5], have %s", l)
	}
	l.RemoveIf(func(x int) bool { return x%2 == 0 })
	if l.String() != "[9, 3, 5]" {
		t.Errorf("expected [9, 3, 5], have %s", l)
	}
	l.Sort(gocoll.NaturalOrder[int])
	if l.String() != "[3, 5, 9]" {
		t.Errorf("expected [3, 5, 9], have %s", l)
	}
	c := l.Clone()
	if !c.Equal(l) || c.HashCode() != l.HashCode() {
		t.Errorf("expected clone to be equal")
	}
	c.Append(1)
	if c.Equal(l) || l.Size() != 3 {
		t.Errorf("expected clone to be independent")
	}
}

func TestRemoveIfDetectsInterference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := Of(1, 2, 3)
	_, err := l.RemoveIf(func(x int) bool {
		if x == 2 {
			l.Append(4)
		}
		return x == 1
	})
	if !errors.Is(err, gocoll.ErrConcurrentModification) {
		t.Errorf("expected consistency fault, have %v", err)
	}
}

func TestAgainstGodsList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.arraylist")
	defer teardown()
	//
	l := New[int]()
	oracle := godslist.New()
	for i := 0; i < 200; i++ {
		switch {
		case i%7 == 3 && l.Size() > 0:
			pos := (i * 13) % l.Size()
			l.RemoveAt(pos)
			oracle.Remove(pos)
		case i%5 == 1:
			pos := (i * 11) % (l.Size() + 1)
			l.Insert(pos, i)
			oracle.Insert(pos, i)
		default:
			l.Append(i)
			oracle.Add(i)
		}
	}
	if l.Size() != oracle.Size() {
		t.Fatalf("size differs: %d vs %d", l.Size(), oracle.Size())
	}
	for i, v := range oracle.Values() {
		if x, _ := l.Get(i); x != v.(int) {
			t.Fatalf("element %d differs: %d vs %v", i, x, v)
		}
	}
	all, err := gocoll.ToSlice(l.Iterator())
	if err != nil || len(all) != l.Size() {
		t.Errorf("iteration yields %d elements, size is %d (%v)", len(all), l.Size(), err)
	}
}
