package pipeline

import (
	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/utils"

	"github.com/pkg/errors"
)

// On-disk shape of a fixture. Graphs list edges as vertex pairs; the tdd
// lists child/parent pairs.
type (
	graphFixture struct {
		Order int     `yaml:"order"`
		Edges [][]int `yaml:"edges"`
	}

	kPatternFixture struct {
		Vertices []int       `yaml:"vertices"`
		Boundary []int       `yaml:"boundary"`
		Pi       map[int]int `yaml:"pi"`
	}

	tableFixture struct {
		Key     []int             `yaml:"key"`
		Entries []kPatternFixture `yaml:"entries"`
	}

	countFixture struct {
		Colors []int `yaml:"colors"`
		Count  int   `yaml:"count"`
	}

	fixture struct {
		Graph     graphFixture   `yaml:"graph"`
		Colorings [][]int        `yaml:"colorings"`
		Pattern   graphFixture   `yaml:"pattern"`
		TDD       [][]int        `yaml:"tdd"`
		Table     []tableFixture `yaml:"table"`
		Counts    []countFixture `yaml:"counts_per_colorset"`
	}
)

func pair(field string, i int, p []int) error {
	if len(p) != 2 {
		return errors.Wrapf(ErrBadFixture, "%s[%d]: expected a pair, got %v", field, i, p)
	}
	return nil
}

func (g graphFixture) build(field string) (*graph.Graph, error) {
	edges := make([]graph.Edge, len(g.Edges))
	for i, e := range g.Edges {
		if err := pair(field+".edges", i, e); err != nil {
			return nil, err
		}
		edges[i] = graph.NewEdge(e[0], e[1])
	}
	return graph.FromEdges(g.Order, edges...), nil
}

func fromGraph(G *graph.Graph) graphFixture {
	res := graphFixture{Order: G.Order()}
	for _, e := range G.Edges() {
		res.Edges = append(res.Edges, []int{e.U, e.V})
	}
	return res
}

// ColorsetCount is the number of pattern occurrences recorded for a
// colour set.
type ColorsetCount struct {
	Colors graph.ColorSet
	Count  int
}

func (c ColorsetCount) String() string {
	return c.Colors.String() + ": " + utils.CountString(c.Count)
}
