package set

type subsets[T any] []T

// Subsets enumerates subsets of entries by position. Equal entries at
// different positions are distinct.
func Subsets[T any](entries []T) subsets[T] {
	return entries
}

// Combinations calls do with every subset of S of exactly k entries.
// Subsets are visited in lexicographic order of entry indices, e. g.
// [A B], [A C], [B C] for S = [A B C] and k = 2.
// Nothing is visited when k is negative or exceeds the size of S.
// The slice passed to do is fresh for every call.
func (S subsets[T]) Combinations(k int, do func([]T)) {
	n := len(S)
	if k < 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		subset := make([]T, k)
		for i, j := range idx {
			subset[i] = S[j]
		}
		do(subset)

		// Find the rightmost index that can still be advanced.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
