package graph

import uf "github.com/spakin/disjoint"

// Components partitions the given nodes into connected components, treating
// every edge as undirected. Only edges between the given nodes are
// considered. Components are ordered by the position of their first node in
// nodes, and nodes within a component keep their relative order.
func (G Graph[T]) Components(nodes []T) [][]T {
	elements := make(map[T]*uf.Element, len(nodes))
	for _, node := range nodes {
		el := uf.NewElement()
		el.Data = node
		elements[node] = el
	}

	for _, node := range nodes {
		for _, e := range G.Edges(node) {
			if b, found := elements[e]; found {
				uf.Union(elements[node], b)
			}
		}
	}

	index := make(map[*uf.Element]int)
	var components [][]T
	for _, node := range nodes {
		rep := elements[node].Find()
		i, found := index[rep]
		if !found {
			i = len(components)
			index[rep] = i
			components = append(components, nil)
		}
		components[i] = append(components[i], node)
	}

	return components
}

// Path follows the first outgoing edge from start until a node without
// outgoing edges is reached, returning the visited nodes in order.
// The boolean result is false if a node is visited twice.
func (G Graph[T]) Path(start T) ([]T, bool) {
	visited := map[T]bool{start: true}
	path := []T{start}

	for node := start; ; {
		es := G.Edges(node)
		if len(es) == 0 {
			return path, true
		}

		node = es[0]
		if visited[node] {
			return path, false
		}
		visited[node] = true
		path = append(path, node)
	}
}
