package decompose

import (
	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/utils"
)

// RootedTree is the tree underlying a coloured connected component.
// Malformed is set when some part of the component has no vertex with a
// unique colour; that part is then kept as it was in the component.
type RootedTree struct {
	Root      graph.Vertex
	Tree      *graph.Graph
	Malformed bool
}

// uniqueColorVertex finds the smallest vertex whose colour no other vertex of G has.
func uniqueColorVertex(G *graph.Graph, coloring graph.Coloring) (graph.Vertex, bool) {
	count := make(map[graph.Color]int)
	vs := G.Vertices()
	for _, v := range vs {
		count[coloring[v]]++
	}

	for _, v := range vs {
		if count[coloring[v]] == 1 {
			return v, true
		}
	}
	return -1, false
}

// ExtractTree recovers the rooted tree underlying the component.
func (c *Collector) ExtractTree(comp *Component) RootedTree {
	return extractTree(c.Ops, comp.Graph, comp.Coloring)
}

// ExtractTree recovers the rooted tree underlying G: the root is the vertex
// whose colour is unique in G, and the trees of the connected pieces left
// after removing the root hang below it.
func ExtractTree(G *graph.Graph, coloring graph.Coloring) RootedTree {
	return extractTree(graph.Default, G, coloring)
}

func extractTree(ops graph.Ops, G *graph.Graph, coloring graph.Coloring) RootedTree {
	root, found := uniqueColorVertex(G, coloring)
	if !found {
		vs := G.Vertices()
		colors := make([]graph.Color, len(vs))
		for i, v := range vs {
			colors[i] = coloring[v]
		}
		utils.Warn("Coloring of %v has no root: %v", G, colors)

		fallback := RootedTree{Root: -1, Tree: G, Malformed: true}
		if len(vs) > 0 {
			fallback.Root = vs[0]
		}
		return fallback
	}

	tree := graph.New()
	tree.AddVertex(root)
	malformed := false

	rest := ops.InducedSubgraph(G, G.Without(root).Vertices())
	for _, piece := range ops.ConnectedComponents(rest) {
		sub := extractTree(ops, piece, coloring)
		malformed = malformed || sub.Malformed

		tree = tree.Compose(sub.Tree)
		tree.AddEdge(root, sub.Root)
	}

	return RootedTree{Root: root, Tree: tree, Malformed: malformed}
}

// Depth returns the number of vertices on the longest root-to-leaf path.
func (t RootedTree) Depth() int {
	var depth func(v, parent graph.Vertex) int
	depth = func(v, parent graph.Vertex) int {
		max := 0
		for _, w := range t.Tree.Neighbors(v) {
			if w == parent {
				continue
			}
			if d := depth(w, v); d > max {
				max = d
			}
		}
		return max + 1
	}

	if t.Malformed || !t.Tree.HasVertex(t.Root) {
		return 0
	}
	return depth(t.Root, -1)
}
