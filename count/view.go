package count

import (
	"fmt"
	"strconv"

	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/layout"
	"github.com/cs-au-dk/drgraph/utils/dot"
	"github.com/cs-au-dk/drgraph/utils/slices"

	"github.com/pkg/errors"
)

// View is everything the counting stage displays for one sample. The graph
// is drawn at the positions of its treedepth decomposition, Layouts[0], and
// the pattern at Layouts[1].
type View struct {
	Sample     *Sample
	Attributes Attributes
	Layouts    []layout.Layout
}

func (s *Sampler) margin() float64 {
	if s.Margin == 0 {
		return layout.DefaultMargin
	}
	return s.Margin
}

// patternRoot is the first boundary vertex of the k-pattern if it belongs to
// the pattern, otherwise the smallest pattern vertex.
func (s *Sampler) patternRoot(sample *Sample) graph.Vertex {
	if v, ok := slices.Find(sample.Pattern.Boundary, s.Pattern.HasVertex); ok {
		return v
	}
	if vs := s.Pattern.Vertices(); len(vs) > 0 {
		return vs[0]
	}
	return 0
}

// Layouts lays out the decomposition around its root and the pattern graph,
// and tiles both. The trees of a forest decomposition share one layout.
func (s *Sampler) Layouts(sample *Sample, strat layout.Strategy) ([]layout.Layout, error) {
	tree, root, virtual, err := s.TDD.RootedTree()
	if err != nil {
		return nil, err
	}

	tdd, err := strat.Layout(tree, root)
	if err != nil {
		return nil, errors.Wrapf(err, "laying out decomposition with %s", strat.Name())
	}
	if virtual {
		delete(tdd, root)
	}
	tdd = layout.Normalize(tdd, s.margin())

	pattern, err := layout.LayoutOne(strat, s.Pattern, s.patternRoot(sample), s.margin())
	if err != nil {
		return nil, errors.Wrap(err, "laying out pattern")
	}

	return layout.Tile([]layout.Layout{tdd, pattern}), nil
}

// Generate samples a k-pattern and computes its display attributes and layouts.
func (s *Sampler) Generate(strat layout.Strategy) (*View, error) {
	sample, err := s.SelectSample()
	if err != nil {
		return nil, err
	}

	layouts, err := s.Layouts(sample, strat)
	if err != nil {
		return nil, err
	}

	return &View{
		Sample:     sample,
		Attributes: s.BuildAttributes(sample),
		Layouts:    layouts,
	}, nil
}

// PointsPerCell is the size of a grid cell in DOT output.
const PointsPerCell = 216

func pos(l layout.Layout, v graph.Vertex) string {
	p := l[v]
	return fmt.Sprintf("%.2f,%.2f!", p.X*PointsPerCell, -p.Y*PointsPerCell)
}

// ToDotGraph draws the graph with its sample attributes at the positions of
// the decomposition, with decomposition edges dotted, next to the pattern.
func (s *Sampler) ToDotGraph(v *View) *dot.DotGraph {
	dg := &dot.DotGraph{
		Title:      fmt.Sprintf("k-pattern for key %v", []graph.Vertex(v.Sample.Key)),
		Undirected: true,
	}

	gc := dot.NewDotCluster("graph")
	gc.Attrs["label"] = "G"
	nodes := make(map[graph.Vertex]*dot.DotNode)
	for _, u := range s.G.Vertices() {
		size, _ := strconv.Atoi(v.Attributes.Nodes[u]["size"])
		n := &dot.DotNode{
			ID: fmt.Sprintf("g:%d", u),
			Attrs: dot.DotAttrs{
				"label": fmt.Sprintf("c%d", s.Coloring[u]),
				"pos":   pos(v.Layouts[0], u),
				"width": fmt.Sprintf("%.2f", float64(size)/1000),
			},
		}
		nodes[u] = n
		gc.Nodes = append(gc.Nodes, n)
	}
	dg.Clusters = append(dg.Clusters, gc)

	for _, e := range s.G.Edges() {
		a := v.Attributes.Edges[e]
		dg.Edges = append(dg.Edges, &dot.DotEdge{
			From:  nodes[e.U],
			To:    nodes[e.V],
			Attrs: dot.DotAttrs{"penwidth": a["width"], "style": a["style"]},
		})
	}
	for _, e := range s.TDD.Tree().Edges() {
		if nodes[e.U] == nil || nodes[e.V] == nil {
			continue
		}
		dg.Edges = append(dg.Edges, &dot.DotEdge{
			From:  nodes[e.U],
			To:    nodes[e.V],
			Attrs: dot.DotAttrs{"style": "dotted", "color": "gray"},
		})
	}

	pc := dot.NewDotCluster("pattern")
	pc.Attrs["label"] = "H"
	pnodes := make(map[graph.Vertex]*dot.DotNode)
	boundary := make(map[graph.Vertex]bool)
	for _, p := range v.Sample.Pattern.Boundary {
		boundary[p] = true
	}
	for _, p := range s.Pattern.Vertices() {
		attrs := dot.DotAttrs{
			"label": fmt.Sprint(p),
			"pos":   pos(v.Layouts[1], p),
		}
		if i, mapped := v.Sample.Pattern.Pi[p]; mapped {
			attrs["xlabel"] = fmt.Sprint(v.Sample.RootPath[i])
			attrs["fillcolor"] = "lightblue"
		}
		if boundary[p] {
			attrs["penwidth"] = "2.0"
		}
		n := &dot.DotNode{ID: fmt.Sprintf("p:%d", p), Attrs: attrs}
		pnodes[p] = n
		pc.Nodes = append(pc.Nodes, n)
	}
	dg.Clusters = append(dg.Clusters, pc)

	for _, e := range s.Pattern.Edges() {
		dg.Edges = append(dg.Edges, &dot.DotEdge{
			From:  pnodes[e.U],
			To:    pnodes[e.V],
			Attrs: dot.DotAttrs{},
		})
	}

	return dg
}
