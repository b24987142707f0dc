package hashset

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/gocoll"
)

// Map is the associative collaborator a Set is built upon. It decides about key
// equivalence and the order of Keys.
type Map[K, V any] interface {
	// PutIfAbsent maps k to v, unless k is already present. It returns the previous
	// value and true if k was present.
	PutIfAbsent(k K, v V) (V, bool)
	// Remove removes k and reports whether it was present.
	Remove(k K) bool
	ContainsKey(k K) bool
	// Keys returns the keys as a fresh slice.
	Keys() []K
	Clear()
	Size() int
}

// --- Adapters for gods maps ------------------------------------------------

// GodsMap adapts a map of package github.com/emirpasic/gods/maps.
type GodsMap[K, V any] struct {
	m  maps.Map
	mk func() maps.Map
}

var _ Map[int, struct{}] = (*GodsMap[int, struct{}])(nil)

// NewGodsMap creates an unordered collaborator backed by a gods hash map.
// K must be usable as a Go map key.
func NewGodsMap[K comparable, V any]() *GodsMap[K, V] {
	return newGodsMap[K, V](func() maps.Map { return hashmap.New() })
}

// NewLinkedGodsMap creates a collaborator which keeps keys in insertion order.
// Re-inserting a present key does not change its position.
func NewLinkedGodsMap[K comparable, V any]() *GodsMap[K, V] {
	return newGodsMap[K, V](func() maps.Map { return linkedhashmap.New() })
}

// NewSortedGodsMap creates a collaborator which keeps keys sorted by cmp. Keys
// comparing as 0 are considered equal.
func NewSortedGodsMap[K, V any](cmp gocoll.Comparator[K]) *GodsMap[K, V] {
	return newGodsMap[K, V](func() maps.Map {
		return treemap.NewWith(gocoll.GodsComparator(cmp))
	})
}

func newGodsMap[K, V any](mk func() maps.Map) *GodsMap[K, V] {
	return &GodsMap[K, V]{m: mk(), mk: mk}
}

// Fresh returns an empty map of the same kind.
func (g *GodsMap[K, V]) Fresh() Map[K, V] {
	return newGodsMap[K, V](g.mk)
}

// PutIfAbsent is part of interface Map.
func (g *GodsMap[K, V]) PutIfAbsent(k K, v V) (V, bool) {
	if prev, found := g.m.Get(k); found {
		return prev.(V), true
	}
	g.m.Put(k, v)
	var zero V
	return zero, false
}

// Remove is part of interface Map.
func (g *GodsMap[K, V]) Remove(k K) bool {
	if _, found := g.m.Get(k); !found {
		return false
	}
	g.m.Remove(k)
	return true
}

// ContainsKey is part of interface Map.
func (g *GodsMap[K, V]) ContainsKey(k K) bool {
	_, found := g.m.Get(k)
	return found
}

// Keys is part of interface Map.
func (g *GodsMap[K, V]) Keys() []K {
	keys := g.m.Keys()
	ks := make([]K, len(keys))
	for i, k := range keys {
		ks[i] = k.(K)
	}
	return ks
}

// Clear is part of interface Map.
func (g *GodsMap[K, V]) Clear() {
	g.m.Clear()
}

// Size is part of interface Map.
func (g *GodsMap[K, V]) Size() int {
	return g.m.Size()
}

// --- Digest map ------------------------------------------------------------

// DigestMap keys entries by a structural digest of the key value, computed with
// package github.com/cnf/structhash. Two keys are the same if their digests
// match and gocoll.Equals holds. Keys may be of any type, including structs
// containing slices or maps.
type DigestMap[K, V any] struct {
	buckets map[string][]digestEntry[K, V]
	size    int
}

type digestEntry[K, V any] struct {
	key K
	val V
}

var _ Map[[]int, struct{}] = (*DigestMap[[]int, struct{}])(nil)

// NewDigestMap creates an unordered digest-keyed collaborator.
func NewDigestMap[K, V any]() *DigestMap[K, V] {
	return &DigestMap[K, V]{buckets: make(map[string][]digestEntry[K, V])}
}

func digest(k any) string {
	d, err := structhash.Hash(k, 1)
	if err != nil { // type structhash cannot serialize
		tracer().Debugf("cannot digest %T: %v", k, err)
		return fmt.Sprintf("%T:%v", k, k)
	}
	return d
}

func (dm *DigestMap[K, V]) find(k K) (string, int) {
	d := digest(k)
	for i, entry := range dm.buckets[d] {
		if gocoll.Equals(entry.key, k) {
			return d, i
		}
	}
	return d, -1
}

// Fresh returns an empty digest map.
func (dm *DigestMap[K, V]) Fresh() Map[K, V] {
	return NewDigestMap[K, V]()
}

// PutIfAbsent is part of interface Map.
func (dm *DigestMap[K, V]) PutIfAbsent(k K, v V) (V, bool) {
	d, i := dm.find(k)
	if i >= 0 {
		return dm.buckets[d][i].val, true
	}
	dm.buckets[d] = append(dm.buckets[d], digestEntry[K, V]{key: k, val: v})
	dm.size++
	var zero V
	return zero, false
}

// Remove is part of interface Map.
func (dm *DigestMap[K, V]) Remove(k K) bool {
	d, i := dm.find(k)
	if i < 0 {
		return false
	}
	bucket := dm.buckets[d]
	if len(bucket) == 1 {
		delete(dm.buckets, d)
	} else {
		dm.buckets[d] = append(bucket[:i:i], bucket[i+1:]...)
	}
	dm.size--
	return true
}

// ContainsKey is part of interface Map.
func (dm *DigestMap[K, V]) ContainsKey(k K) bool {
	_, i := dm.find(k)
	return i >= 0
}

// Keys is part of interface Map. The order of keys is unspecified.
func (dm *DigestMap[K, V]) Keys() []K {
	keys := make([]K, 0, dm.size)
	for _, bucket := range dm.buckets {
		for _, entry := range bucket {
			keys = append(keys, entry.key)
		}
	}
	return keys
}

// Clear is part of interface Map.
func (dm *DigestMap[K, V]) Clear() {
	clear(dm.buckets)
	dm.size = 0
}

// Size is part of interface Map.
func (dm *DigestMap[K, V]) Size() int {
	return dm.size
}
