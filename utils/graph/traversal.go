package graph

import W "github.com/cs-au-dk/drgraph/utils/worklist"

type traversalFunc[T any] func(node T) (stop bool)

// BFSV visits every node reachable from starts in breadth-first order,
// stopping as soon as f returns true. The result tells whether it stopped.
func (G Graph[T]) BFSV(f traversalFunc[T], starts ...T) bool {
	visited := make(map[T]bool, len(starts))
	q := W.Empty[T]()
	for _, start := range starts {
		if !visited[start] {
			visited[start] = true
			q.Push(start)
		}
	}

	for !q.IsEmpty() {
		node := q.Pop()
		if f(node) {
			return true
		}

		for _, next := range G.Edges(node) {
			if !visited[next] {
				visited[next] = true
				q.Push(next)
			}
		}
	}

	return false
}

func (G Graph[T]) BFS(start T, f traversalFunc[T]) bool {
	return G.BFSV(f, start)
}
