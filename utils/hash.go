package utils

import (
	"github.com/benbjohnson/immutable"
)

type (
	Hashable interface {
		Hash() uint32
	}
	// HashableEq values can key immutable maps and hmap.Map without a
	// dedicated hasher.
	HashableEq[T any] interface {
		Hashable
		Equal(T) bool
	}

	hashableHasher[T HashableEq[T]] struct{}
)

func (hashableHasher[T]) Equal(a, b T) bool { return a.Equal(b) }
func (hashableHasher[T]) Hash(a T) uint32   { return a.Hash() }

// HashableHasher delegates to the Hash and Equal methods of T.
func HashableHasher[T HashableEq[T]]() immutable.Hasher[T] { return hashableHasher[T]{} }

// NewImmMap creates an empty persistent map keyed by K.
func NewImmMap[K HashableEq[K], V any]() *immutable.Map[K, V] {
	return immutable.NewMap[K, V](HashableHasher[K]())
}

// HashCombine folds hash values with the boost hash_combine step.
func HashCombine(hs ...uint32) (seed uint32) {
	for _, v := range hs {
		seed = v + 0x9e3779b9 + (seed << 6) + (seed >> 2)
	}

	return
}

// HashInts hashes a sequence of integers. Order matters.
func HashInts(is ...int) uint32 {
	hs := make([]uint32, len(is))
	for i, v := range is {
		u := uint64(v)
		hs[i] = uint32(u ^ (u >> 32))
	}
	return HashCombine(hs...)
}
