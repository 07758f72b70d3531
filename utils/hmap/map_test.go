package hmap

import "testing"

// collidingHasher sends every key to the same chain.
type collidingHasher struct{}

func (collidingHasher) Hash(int) uint32     { return 7 }
func (collidingHasher) Equal(a, b int) bool { return a == b }

func TestCollisions(t *testing.T) {
	b := NewBuckets[string, int](collidingHasher{})
	b.Add(1, "a")
	b.Add(2, "b")
	b.Add(1, "c")

	if b.Keys() != 2 {
		t.Errorf("Keys() = %d, expected 2", b.Keys())
	}
	if vs := b.Get(1); len(vs) != 2 || vs[0] != "a" || vs[1] != "c" {
		t.Errorf("Get(1) = %v", vs)
	}
	if vs := b.Get(3); vs != nil {
		t.Errorf("Get(3) = %v", vs)
	}
}

func TestValuesOrder(t *testing.T) {
	b := NewBuckets[string, int](collidingHasher{})
	for i, v := range []string{"x", "y", "z", "w"} {
		b.Add(i%2, v)
	}

	vs := b.Values()
	if len(vs) != 4 || vs[0] != "x" || vs[1] != "y" || vs[2] != "z" || vs[3] != "w" {
		t.Errorf("Values() = %v", vs)
	}
}

func TestFind(t *testing.T) {
	b := NewBuckets[int, int](collidingHasher{})
	for _, v := range []int{3, 8, 10} {
		b.Add(0, v)
	}

	if v, ok := b.Find(0, func(v int) bool { return v%2 == 0 }); !ok || v != 8 {
		t.Errorf("Find returned %d, %v", v, ok)
	}
	if _, ok := b.Find(0, func(v int) bool { return v > 10 }); ok {
		t.Error("Find matched nothing but reported success")
	}
	if _, ok := b.Find(1, func(int) bool { return true }); ok {
		t.Error("Find on a missing key reported success")
	}
}
