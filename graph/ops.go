package graph

import "sort"

// Ops is the set of graph capabilities needed by the pipeline stages.
type Ops interface {
	// InducedSubgraph returns the subgraph of G induced by vs.
	InducedSubgraph(G *Graph, vs []Vertex) *Graph
	// ConnectedComponents splits G into connected components,
	// ordered by their smallest vertex.
	ConnectedComponents(G *Graph) []*Graph
	// ColorIsomorphic reports whether there is a bijection between the
	// vertices of A and B preserving adjacency and the colours given by
	// ca and cb.
	ColorIsomorphic(A *Graph, ca Coloring, B *Graph, cb Coloring) bool
}

type defaultOps struct{}

// Default implements Ops on top of Graph.
var Default Ops = defaultOps{}

func (defaultOps) InducedSubgraph(G *Graph, vs []Vertex) *Graph {
	return G.Induced(vs)
}

func (defaultOps) ConnectedComponents(G *Graph) []*Graph {
	return G.Components()
}

func (defaultOps) ColorIsomorphic(A *Graph, ca Coloring, B *Graph, cb Coloring) bool {
	return ColorIsomorphic(A, ca, B, cb)
}

// Invariant is a sorted list of (colour, degree) pairs of a coloured graph,
// flattened. Colour-isomorphic graphs have equal invariants.
type Invariant []int

func InvariantOf(G *Graph, c Coloring) Invariant {
	type pair struct{ color, degree int }
	vs := G.Vertices()
	pairs := make([]pair, len(vs))
	for i, v := range vs {
		pairs[i] = pair{c[v], G.Degree(v)}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].color != pairs[j].color {
			return pairs[i].color < pairs[j].color
		}
		return pairs[i].degree < pairs[j].degree
	})

	res := make(Invariant, 0, 2*len(pairs))
	for _, p := range pairs {
		res = append(res, p.color, p.degree)
	}
	return res
}

func (inv Invariant) Equal(o Invariant) bool {
	return ColorSet(inv).Equal(ColorSet(o))
}

func (inv Invariant) Hash() uint32 {
	return ColorSet(inv).Hash()
}

// ColorIsomorphic reports whether there is a bijection between the vertices
// of A and B preserving adjacency and colours.
func ColorIsomorphic(A *Graph, ca Coloring, B *Graph, cb Coloring) bool {
	if A.Order() != B.Order() || A.Size() != B.Size() {
		return false
	}
	if !InvariantOf(A, ca).Equal(InvariantOf(B, cb)) {
		return false
	}

	order := matchingOrder(A)
	candidates := B.Vertices()
	mapping := make(map[Vertex]Vertex, len(order))
	used := make(map[Vertex]bool, len(order))

	// consistent checks that mapping u to w agrees with all
	// previously mapped vertices on adjacency.
	consistent := func(u, w Vertex) bool {
		for x, y := range mapping {
			if A.HasEdge(u, x) != B.HasEdge(w, y) {
				return false
			}
		}
		return true
	}

	var extend func(i int) bool
	extend = func(i int) bool {
		if i == len(order) {
			return true
		}

		u := order[i]
		for _, w := range candidates {
			if used[w] || ca[u] != cb[w] || A.Degree(u) != B.Degree(w) || !consistent(u, w) {
				continue
			}

			mapping[u] = w
			used[w] = true
			if extend(i + 1) {
				return true
			}
			delete(mapping, u)
			used[w] = false
		}
		return false
	}

	return extend(0)
}

// matchingOrder orders the vertices of G so that every vertex after the
// first in its component is adjacent to an earlier one. This keeps the
// search in ColorIsomorphic constrained early.
func matchingOrder(G *Graph) []Vertex {
	var order []Vertex
	for _, comp := range G.Functional().Components(G.Vertices()) {
		start := comp[0]
		for _, v := range comp {
			if G.Degree(v) > G.Degree(start) {
				start = v
			}
		}

		G.Functional().BFS(start, func(v Vertex) bool {
			order = append(order, v)
			return false
		})
	}
	return order
}
