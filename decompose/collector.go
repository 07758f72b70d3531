// Package decompose splits the subgraph induced by a colour set into
// connected components, merges components that are equal up to a
// colour-preserving isomorphism, and recovers the rooted tree underlying
// each component.
package decompose

import (
	"fmt"

	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/utils"
	"github.com/cs-au-dk/drgraph/utils/hmap"
)

// Component is a connected component of the subgraph induced by a colour set.
// Occ counts how many colour-isomorphic copies were merged into it.
type Component struct {
	Graph    *graph.Graph
	Coloring graph.Coloring
	Occ      int
}

// Colors returns the colour of every vertex of the component.
func (c *Component) Colors() map[graph.Vertex]graph.Color {
	return c.Coloring.Restrict(c.Graph.Vertices())
}

func (c *Component) String() string {
	return fmt.Sprintf("%v %s", c.Graph, utils.CountString(c.Occ))
}

type Collector struct {
	G        *graph.Graph
	Coloring graph.Coloring
	Ops      graph.Ops
}

// NewCollector creates a collector for G coloured by coloring.
// A nil ops uses graph.Default.
func NewCollector(G *graph.Graph, coloring graph.Coloring, ops graph.Ops) *Collector {
	if ops == nil {
		ops = graph.Default
	}
	return &Collector{G, coloring, ops}
}

// newComponentIndex buckets components by their colour/degree invariant.
// Only components in the same bucket can be colour-isomorphic.
func newComponentIndex() *hmap.Buckets[graph.Invariant, *Component] {
	return hmap.NewBuckets[*Component](utils.HashableHasher[graph.Invariant]())
}

// Collect returns the connected components of the subgraph induced by the
// vertices coloured with colors. Components are listed in the order they were
// first found; a component colour-isomorphic to an earlier one increments the
// earlier one's occurrence count instead of being listed.
func (c *Collector) Collect(colors graph.ColorSet) []*Component {
	if colors.Len() == 0 {
		return nil
	}

	sub := c.Ops.InducedSubgraph(c.G, c.Coloring.Select(colors))
	index := newComponentIndex()

	for _, cc := range c.Ops.ConnectedComponents(sub) {
		inv := graph.InvariantOf(cc, c.Coloring)

		prev, found := index.Find(inv, func(prev *Component) bool {
			return c.Ops.ColorIsomorphic(prev.Graph, prev.Coloring, cc, c.Coloring)
		})
		if found {
			prev.Occ++
			continue
		}

		index.Add(inv, &Component{Graph: cc, Coloring: c.Coloring, Occ: 1})
	}

	res := index.Values()
	utils.VerbosePrint("Colour set %v induces %d distinct components in %d invariant classes\n", colors, len(res), index.Keys())
	return res
}

// SingletonsFirst returns the components with all single-vertex components
// moved to the front. The relative order within both groups is kept.
func SingletonsFirst(components []*Component) []*Component {
	res := make([]*Component, 0, len(components))
	for _, c := range components {
		if c.Graph.Order() == 1 {
			res = append(res, c)
		}
	}
	for _, c := range components {
		if c.Graph.Order() != 1 {
			res = append(res, c)
		}
	}
	return res
}
