// Package testutil builds graphs, colourings and pipeline fixtures for tests.
package testutil

import (
	"math/rand"

	"github.com/cs-au-dk/drgraph/graph"
)

// DisjointCopies returns n vertex-disjoint copies of the coloured pattern
// given by edges over vertices 0..len(colors)-1. Vertex ids are shuffled, so
// the copies are only equal up to a colour-preserving isomorphism.
func DisjointCopies(edges []graph.Edge, colors []graph.Color, n int, rnd *rand.Rand) (*graph.Graph, graph.Coloring) {
	k := len(colors)
	perm := rnd.Perm(n * k)

	G := graph.New()
	coloring := make(graph.Coloring, n*k)
	for c := 0; c < n; c++ {
		id := func(v graph.Vertex) graph.Vertex { return perm[c*k+v] }
		for v, col := range colors {
			G.AddVertex(id(v))
			coloring[id(v)] = col
		}
		for _, e := range edges {
			G.AddEdge(id(e.U), id(e.V))
		}
	}
	return G, coloring
}

// RandomTreedepthColored returns a random connected graph on n vertices
// coloured by depth in a random rooted spanning tree. Extra edges only join
// ancestors to descendants, so every connected piece left after removing
// the shallowest vertex has a vertex with a unique colour.
func RandomTreedepthColored(rnd *rand.Rand, n int) (*graph.Graph, graph.Coloring) {
	G := graph.New()
	coloring := make(graph.Coloring, n)
	parent := make([]graph.Vertex, n)

	G.AddVertex(0)
	parent[0] = -1
	for v := 1; v < n; v++ {
		p := rnd.Intn(v)
		parent[v] = p
		coloring[v] = coloring[p] + 1
		G.AddEdge(v, p)

		// Occasionally connect to a higher ancestor as well.
		for a := parent[p]; a >= 0; a = parent[a] {
			if rnd.Intn(3) == 0 {
				G.AddEdge(v, a)
			}
		}
	}
	return G, coloring
}

// Path returns the path 0-1-..-(n-1).
func Path(n int) *graph.Graph {
	G := graph.FromEdges(n)
	for v := 1; v < n; v++ {
		G.AddEdge(v-1, v)
	}
	return G
}

// Cycle returns the cycle 0-1-..-(n-1)-0.
func Cycle(n int) *graph.Graph {
	G := Path(n)
	if n > 2 {
		G.AddEdge(n-1, 0)
	}
	return G
}
