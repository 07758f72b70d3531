// Package hmap groups values under keys that are not comparable with ==
// (slices, structs holding slices), using an immutable.Hasher for hashing
// and equality.
package hmap

import "github.com/benbjohnson/immutable"

type bucket[K, V any] struct {
	key    K
	values []V
}

// Buckets maps keys to lists of values. Values keep their insertion order,
// both within the list of a key and across all keys.
type Buckets[K, V any] struct {
	hasher immutable.Hasher[K]
	// Keys with equal hashes share a chain.
	chains map[uint32][]*bucket[K, V]
	values []V
}

// Order of V and K are swapped since K can be inferred by the argument.
func NewBuckets[V, K any](hasher immutable.Hasher[K]) *Buckets[K, V] {
	return &Buckets[K, V]{
		hasher: hasher,
		chains: make(map[uint32][]*bucket[K, V]),
	}
}

func (b *Buckets[K, V]) find(key K) *bucket[K, V] {
	for _, bk := range b.chains[b.hasher.Hash(key)] {
		if b.hasher.Equal(key, bk.key) {
			return bk
		}
	}
	return nil
}

// Get returns the values added under key.
func (b *Buckets[K, V]) Get(key K) []V {
	if bk := b.find(key); bk != nil {
		return bk.values
	}
	return nil
}

// Find returns the first value under key that satisfies pred.
func (b *Buckets[K, V]) Find(key K, pred func(V) bool) (res V, ok bool) {
	for _, v := range b.Get(key) {
		if pred(v) {
			return v, true
		}
	}
	return
}

func (b *Buckets[K, V]) Add(key K, v V) {
	bk := b.find(key)
	if bk == nil {
		h := b.hasher.Hash(key)
		bk = &bucket[K, V]{key: key}
		b.chains[h] = append(b.chains[h], bk)
	}
	bk.values = append(bk.values, v)
	b.values = append(b.values, v)
}

// Values returns every value in insertion order.
func (b *Buckets[K, V]) Values() []V {
	return b.values
}

// Keys returns the number of distinct keys.
func (b *Buckets[K, V]) Keys() int {
	n := 0
	for _, chain := range b.chains {
		n += len(chain)
	}
	return n
}
