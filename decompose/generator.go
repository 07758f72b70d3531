package decompose

import (
	"fmt"

	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/layout"
	"github.com/cs-au-dk/drgraph/utils/dot"
	ugraph "github.com/cs-au-dk/drgraph/utils/graph"

	"github.com/pkg/errors"
)

// Generator produces everything the decomposition stage displays for a
// colour set: the distinct components, their underlying trees, and one
// tiled layout per tree.
type Generator struct {
	*Collector
	Strategy layout.Strategy
	Margin   float64
}

// Decomposition is the result of Generator.Decompose. The i'th tree and
// layout belong to the i'th component.
type Decomposition struct {
	Colors     graph.ColorSet
	Components []*Component
	Trees      []RootedTree
	Layouts    []layout.Layout
}

func NewGenerator(G *graph.Graph, coloring graph.Coloring, ops graph.Ops, strategy layout.Strategy) *Generator {
	return &Generator{
		Collector: NewCollector(G, coloring, ops),
		Strategy:  strategy,
		Margin:    layout.DefaultMargin,
	}
}

// TreeLayouts extracts the tree of every component, lays it out around its
// root and tiles the results.
func (g *Generator) TreeLayouts(components []*Component) ([]RootedTree, []layout.Layout, error) {
	trees := make([]RootedTree, len(components))
	layouts := make([]layout.Layout, len(components))
	for i, comp := range components {
		trees[i] = g.ExtractTree(comp)

		l, err := layout.LayoutOne(g.Strategy, trees[i].Tree, trees[i].Root, g.Margin)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "laying out component %d", i)
		}
		layouts[i] = l
	}

	return trees, layout.Tile(layouts), nil
}

// Decompose collects the components induced by colors and lays out their trees.
func (g *Generator) Decompose(colors graph.ColorSet, singletonsFirst bool) (*Decomposition, error) {
	components := g.Collect(colors)
	if singletonsFirst {
		components = SingletonsFirst(components)
	}

	trees, layouts, err := g.TreeLayouts(components)
	if err != nil {
		return nil, err
	}

	return &Decomposition{
		Colors:     colors,
		Components: components,
		Trees:      trees,
		Layouts:    layouts,
	}, nil
}

// PointsPerCell is the size of a grid cell in DOT output.
const PointsPerCell = 144

// ToDotGraph draws every tree in its own cluster at its tiled position.
func (d *Decomposition) ToDotGraph() *dot.DotGraph {
	dg := &dot.DotGraph{
		Title:      fmt.Sprintf("Components induced by %v", []graph.Color(d.Colors)),
		Undirected: true,
	}

	for i, tree := range d.Trees {
		comp, l := d.Components[i], d.Layouts[i]
		cfg := &ugraph.VisualizationConfig[graph.Vertex]{
			Undirected: true,
			NodeAttrs: func(v graph.Vertex) (string, dot.DotAttrs) {
				p := l[v]
				attrs := dot.DotAttrs{
					"label": fmt.Sprintf("c%d", comp.Coloring[v]),
					"pos":   fmt.Sprintf("%.2f,%.2f!", p.X*PointsPerCell, -p.Y*PointsPerCell),
				}
				if v == tree.Root {
					attrs["penwidth"] = "2.0"
				}
				return fmt.Sprintf("%d:%d", i, v), attrs
			},
			ClusterKey: func(graph.Vertex) any { return i },
			ClusterAttrs: func(any) (string, dot.DotAttrs) {
				return fmt.Sprint(i), dot.DotAttrs{
					"label": fmt.Sprintf("x%d", comp.Occ),
				}
			},
		}
		if tree.Malformed {
			cfg.EdgeAttrs = func(_, _ graph.Vertex) dot.DotAttrs {
				return dot.DotAttrs{"style": "dashed"}
			}
		}

		dg.Merge(tree.Tree.Functional().ToDotGraph(tree.Tree.Vertices(), cfg))
	}

	return dg
}
