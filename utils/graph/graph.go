package graph

/*
	This package exposes generic algorithms on graphs given by their edge
	relation.

	The graphs of this project (component trees, treedepth decompositions,
	patterns) are stored in different shapes. Instead of converting between
	them, callers describe the successors of a node with a function, and the
	algorithms here only ever ask for those.
*/

type edgesOf[T comparable] func(node T) []T

type Graph[T comparable] struct {
	edgesOf edgesOf[T]
	// Successor lists are computed at most once per node.
	cache map[T][]T
}

// Of creates a graph with the given edge relation.
func Of[T comparable](edgesOf func(node T) []T) Graph[T] {
	return Graph[T]{edgesOf, make(map[T][]T)}
}

func (G Graph[T]) Edges(node T) []T {
	if es, found := G.cache[node]; found {
		return es
	}

	es := G.edgesOf(node)
	G.cache[node] = es
	return es
}
