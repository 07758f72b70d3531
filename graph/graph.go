// Package graph provides the undirected, vertex-coloured graphs that the
// decomposition and counting stages operate on.
//
// Graphs are backed by gonum's simple.UndirectedGraph. Vertex ids are kept
// when taking subgraphs, so a Coloring indexed by the vertices of the full
// graph colours every subgraph of it as well.
package graph

import (
	"fmt"
	"sort"
	"strings"

	ugraph "github.com/cs-au-dk/drgraph/utils/graph"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

type (
	Vertex = int

	// Edge is an undirected edge, normalized so that U <= V.
	Edge struct {
		U, V Vertex
	}

	Graph struct {
		g *simple.UndirectedGraph
	}
)

func NewEdge(u, v Vertex) Edge {
	if v < u {
		u, v = v, u
	}
	return Edge{u, v}
}

func New() *Graph {
	return &Graph{simple.NewUndirectedGraph()}
}

// FromEdges creates a graph with vertices 0..order-1 and the given edges.
// Edge endpoints outside that range are added as well.
func FromEdges(order int, edges ...Edge) *Graph {
	G := New()
	for v := 0; v < order; v++ {
		G.AddVertex(v)
	}
	for _, e := range edges {
		G.AddEdge(e.U, e.V)
	}
	return G
}

func (G *Graph) AddVertex(v Vertex) {
	if G.g.Node(int64(v)) == nil {
		G.g.AddNode(simple.Node(v))
	}
}

// AddEdge adds the edge between u and v, adding missing endpoints.
// Self loops are ignored.
func (G *Graph) AddEdge(u, v Vertex) {
	G.AddVertex(u)
	G.AddVertex(v)
	if u == v {
		return
	}
	G.g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
}

func (G *Graph) HasVertex(v Vertex) bool {
	return G.g.Node(int64(v)) != nil
}

func (G *Graph) HasEdge(u, v Vertex) bool {
	return G.g.HasEdgeBetween(int64(u), int64(v))
}

func (G *Graph) Order() int {
	return G.g.Nodes().Len()
}

func (G *Graph) Size() int {
	return G.g.Edges().Len()
}

func (G *Graph) Degree(v Vertex) int {
	return G.g.From(int64(v)).Len()
}

func ids(nodes gonum.Nodes) []Vertex {
	res := make([]Vertex, 0, nodes.Len())
	for nodes.Next() {
		res = append(res, Vertex(nodes.Node().ID()))
	}
	sort.Ints(res)
	return res
}

// Vertices returns the vertices of the graph in ascending order.
func (G *Graph) Vertices() []Vertex {
	return ids(G.g.Nodes())
}

// Neighbors returns the neighbours of v in ascending order.
func (G *Graph) Neighbors(v Vertex) []Vertex {
	return ids(G.g.From(int64(v)))
}

// Edges returns all edges ordered by (U, V).
func (G *Graph) Edges() []Edge {
	var res []Edge
	for _, u := range G.Vertices() {
		for _, v := range G.Neighbors(u) {
			if u < v {
				res = append(res, Edge{u, v})
			}
		}
	}
	return res
}

// Induced returns the subgraph induced by the given vertices.
// Vertices not in G are ignored.
func (G *Graph) Induced(vs []Vertex) *Graph {
	H := New()
	for _, v := range vs {
		if G.HasVertex(v) {
			H.AddVertex(v)
		}
	}
	for _, u := range H.Vertices() {
		for _, v := range G.Neighbors(u) {
			if u < v && H.HasVertex(v) {
				H.AddEdge(u, v)
			}
		}
	}
	return H
}

// Without returns a copy of G with vertex v and its edges removed.
func (G *Graph) Without(v Vertex) *Graph {
	vs := G.Vertices()
	rest := make([]Vertex, 0, len(vs))
	for _, u := range vs {
		if u != v {
			rest = append(rest, u)
		}
	}
	return G.Induced(rest)
}

// Compose returns the union of G and all the given graphs.
func (G *Graph) Compose(others ...*Graph) *Graph {
	H := New()
	for _, X := range append([]*Graph{G}, others...) {
		for _, v := range X.Vertices() {
			H.AddVertex(v)
		}
		for _, e := range X.Edges() {
			H.AddEdge(e.U, e.V)
		}
	}
	return H
}

// Functional returns a view of G usable with the generic graph algorithms.
func (G *Graph) Functional() ugraph.Graph[Vertex] {
	return ugraph.Of(G.Neighbors)
}

// Components splits G into its connected components, ordered by their
// smallest vertex.
func (G *Graph) Components() []*Graph {
	var res []*Graph
	for _, comp := range G.Functional().Components(G.Vertices()) {
		res = append(res, G.Induced(comp))
	}
	return res
}

// Gonum exposes the underlying gonum graph. It must not be modified.
func (G *Graph) Gonum() gonum.Undirected {
	return G.g
}

func (G *Graph) String() string {
	strs := []string{}
	for _, e := range G.Edges() {
		strs = append(strs, fmt.Sprintf("%d-%d", e.U, e.V))
	}
	for _, v := range G.Vertices() {
		if G.Degree(v) == 0 {
			strs = append(strs, fmt.Sprint(v))
		}
	}
	return "{" + strings.Join(strs, " ") + "}"
}
