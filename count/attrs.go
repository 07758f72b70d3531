package count

import (
	"fmt"

	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/utils/dot"
)

const (
	DefaultNodeSize = 300
	PatternNodeSize = 450
	MotifNodeSize   = 700
)

// Attributes are display hints for the vertices and edges of the sampled
// graph. Node attributes carry "size", edge attributes "width" and "style".
type Attributes struct {
	Nodes map[graph.Vertex]dot.DotAttrs
	Edges map[graph.Edge]dot.DotAttrs
}

func nodeAttrs(size int) dot.DotAttrs {
	return dot.DotAttrs{"size": fmt.Sprint(size)}
}

func edgeAttrs(width int, style string) dot.DotAttrs {
	return dot.DotAttrs{"width": fmt.Sprint(width), "style": style}
}

// BuildAttributes highlights the motif of a sample. Vertices in the image of
// Pi are largest, the rest of the root path is medium sized. Edges between
// motif vertices that realise a pattern edge are thick; other edges touching
// the motif are dashed.
func (s *Sampler) BuildAttributes(sample *Sample) Attributes {
	motif := sample.Motif()
	inImage := make(map[graph.Vertex]bool, len(motif))
	// Graph vertex to the pattern vertices mapped onto it.
	preimage := make(map[graph.Vertex][]graph.Vertex)
	for p, v := range motif {
		inImage[v] = true
		preimage[v] = append(preimage[v], p)
	}
	onPath := make(map[graph.Vertex]bool, len(sample.RootPath))
	for _, v := range sample.RootPath {
		onPath[v] = true
	}

	attrs := Attributes{
		Nodes: make(map[graph.Vertex]dot.DotAttrs),
		Edges: make(map[graph.Edge]dot.DotAttrs),
	}

	for _, v := range s.G.Vertices() {
		switch {
		case inImage[v]:
			attrs.Nodes[v] = nodeAttrs(MotifNodeSize)
		case onPath[v]:
			attrs.Nodes[v] = nodeAttrs(PatternNodeSize)
		default:
			attrs.Nodes[v] = nodeAttrs(DefaultNodeSize)
		}
	}

	realises := func(u, v graph.Vertex) bool {
		for _, p := range preimage[u] {
			for _, q := range preimage[v] {
				if s.Pattern.HasEdge(p, q) {
					return true
				}
			}
		}
		return false
	}

	for _, e := range s.G.Edges() {
		switch {
		case inImage[e.U] && inImage[e.V] && realises(e.U, e.V):
			attrs.Edges[e] = edgeAttrs(4, "solid")
		case inImage[e.U] || inImage[e.V]:
			attrs.Edges[e] = edgeAttrs(2, "dashed")
		default:
			attrs.Edges[e] = edgeAttrs(1, "solid")
		}
	}

	return attrs
}
