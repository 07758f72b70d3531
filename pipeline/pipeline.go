// Package pipeline bundles the artifacts of a bounded-expansion counting run
// (graph, colourings, pattern, decomposition, table and counts) and hands
// them to the stage packages.
package pipeline

import (
	"io/ioutil"
	"math/rand"
	"sort"

	"github.com/cs-au-dk/drgraph/combine"
	"github.com/cs-au-dk/drgraph/count"
	"github.com/cs-au-dk/drgraph/decompose"
	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/layout"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var ErrBadFixture = errors.New("bad pipeline fixture")

type Pipeline struct {
	Graph *graph.Graph
	// Colourings in the order they were computed. The last one is final.
	Colorings []graph.Coloring
	Pattern   *graph.Graph
	TDD       *count.TDD
	Table     *count.DPTable
	Counts    []ColorsetCount
}

// Load reads a YAML fixture from path.
func Load(path string) (*Pipeline, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return p, nil
}

// Parse decodes and validates a YAML fixture.
func Parse(data []byte) (*Pipeline, error) {
	var f fixture
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(ErrBadFixture, err.Error())
	}

	G, err := f.Graph.build("graph")
	if err != nil {
		return nil, err
	}
	H, err := f.Pattern.build("pattern")
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		Graph:   G,
		Pattern: H,
		TDD:     count.NewTDD(),
		Table:   count.NewDPTable(),
	}

	for _, c := range f.Colorings {
		p.Colorings = append(p.Colorings, graph.Coloring(c))
	}

	for i, e := range f.TDD {
		if err := pair("tdd", i, e); err != nil {
			return nil, err
		}
		if err := p.TDD.SetParent(e[0], e[1]); err != nil {
			return nil, errors.Wrapf(ErrBadFixture, "tdd[%d]: %v", i, err)
		}
	}

	for _, row := range f.Table {
		entries := make([]count.KPattern, len(row.Entries))
		for i, e := range row.Entries {
			entries[i] = count.KPattern{
				Vertices: e.Vertices,
				Boundary: e.Boundary,
				Pi:       e.Pi,
			}
		}
		p.Table.Add(row.Key, entries...)
	}

	for _, c := range f.Counts {
		p.Counts = append(p.Counts, ColorsetCount{graph.NewColorSet(c.Colors...), c.Count})
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Marshal encodes p in the fixture format.
func (p *Pipeline) Marshal() ([]byte, error) {
	f := fixture{
		Graph:   fromGraph(p.Graph),
		Pattern: fromGraph(p.Pattern),
	}
	for _, c := range p.Colorings {
		f.Colorings = append(f.Colorings, []int(c))
	}
	for _, v := range p.TDD.Vertices() {
		for _, parent := range p.TDD.Parents(v) {
			f.TDD = append(f.TDD, []int{v, parent})
		}
	}
	for _, k := range p.Table.Keys() {
		row := tableFixture{Key: k}
		for _, e := range p.Table.Get(k) {
			row.Entries = append(row.Entries, kPatternFixture{
				Vertices: e.Vertices,
				Boundary: e.Boundary,
				Pi:       e.Pi,
			})
		}
		f.Table = append(f.Table, row)
	}
	for _, c := range p.Counts {
		f.Counts = append(f.Counts, countFixture{c.Colors, c.Count})
	}
	return yaml.Marshal(f)
}

// Validate checks that every colouring covers the graph and that the
// decomposition and table only refer to known vertices.
func (p *Pipeline) Validate() error {
	if p.Graph.Order() == 0 {
		return errors.Wrap(ErrBadFixture, "graph: no vertices")
	}
	if len(p.Colorings) == 0 {
		return errors.Wrap(ErrBadFixture, "colorings: none given")
	}
	for i, c := range p.Colorings {
		// Vertex ids are 0..n-1 exactly when all of them index c and
		// len(c) is the order.
		if len(c) != p.Graph.Order() || !c.InRange(p.Graph) {
			return errors.Wrapf(ErrBadFixture, "colorings[%d]: %d colours for vertices %v", i, len(c), p.Graph.Vertices())
		}
	}

	for _, v := range p.TDD.Vertices() {
		if !p.Graph.HasVertex(v) {
			return errors.Wrapf(ErrBadFixture, "tdd: unknown vertex %d", v)
		}
	}

	for _, k := range p.Table.Keys() {
		for _, v := range k {
			if !p.TDD.Contains(v) {
				return errors.Wrapf(ErrBadFixture, "table: key %v has vertex %d outside the tdd", []graph.Vertex(k), v)
			}
		}
		for _, e := range p.Table.Get(k) {
			for u := range e.Pi {
				if !p.Pattern.HasVertex(u) {
					return errors.Wrapf(ErrBadFixture, "table: key %v maps unknown pattern vertex %d", []graph.Vertex(k), u)
				}
			}
		}
	}

	return nil
}

// Coloring is the final colouring.
func (p *Pipeline) Coloring() graph.Coloring {
	return p.Colorings[len(p.Colorings)-1]
}

// Universe is the set of colours of the final colouring.
func (p *Pipeline) Universe() graph.ColorSet {
	return p.Coloring().Colors()
}

// BigComponent is the largest connected component of the graph, the one
// the decomposition and table were computed for. Ties go to the component
// with the smallest vertex.
func (p *Pipeline) BigComponent() *graph.Graph {
	var big *graph.Graph
	for _, C := range p.Graph.Components() {
		if big == nil || C.Order() > big.Order() {
			big = C
		}
	}
	return big
}

// CountedSets returns the colour sets with a recorded count, by size.
func (p *Pipeline) CountedSets() []graph.ColorSet {
	res := make([]graph.ColorSet, len(p.Counts))
	for i, c := range p.Counts {
		res[i] = c.Colors
	}
	sort.SliceStable(res, func(i, j int) bool { return len(res[i]) < len(res[j]) })
	return res
}

func (p *Pipeline) Generator(strategy layout.Strategy) *decompose.Generator {
	return decompose.NewGenerator(p.Graph, p.Coloring(), nil, strategy)
}

func (p *Pipeline) Sampler(rnd *rand.Rand) *count.Sampler {
	return count.NewSampler(p.BigComponent(), p.Pattern, p.TDD, p.Table, p.Coloring(), rnd)
}

func (p *Pipeline) Expander() combine.Expander {
	return combine.Expander{
		Universe:    p.Universe(),
		PatternSize: p.Pattern.Order(),
		MinSize:     combine.MinSizeFromCounts(p.CountedSets()),
	}
}
