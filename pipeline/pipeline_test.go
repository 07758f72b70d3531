package pipeline

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/layout"

	"github.com/pkg/errors"
)

func load(t *testing.T) *Pipeline {
	p, err := Load("testdata/pipeline.yaml")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad(t *testing.T) {
	p := load(t)

	if p.Graph.Order() != 8 || p.Graph.Size() != 5 {
		t.Errorf("Unexpected graph %v", p.Graph)
	}
	if len(p.Colorings) != 2 || p.Coloring()[3] != 3 {
		t.Errorf("Unexpected colourings %v", p.Colorings)
	}
	if u := p.Universe(); !u.Equal(graph.NewColorSet(0, 1, 2, 3)) {
		t.Errorf("Universe is %v", u)
	}
	if big := p.BigComponent(); big.Order() != 5 || !big.HasVertex(4) {
		t.Errorf("Big component is %v", big)
	}
	if root, err := p.TDD.Root(); err != nil || root != 0 {
		t.Errorf("TDD root: %d, %v", root, err)
	}
	if p.Table.Len() != 2 || len(p.Table.Get([]int{3})) != 2 {
		t.Errorf("Unexpected table keys %v", p.Table.Keys())
	}

	e := p.Expander()
	if e.PatternSize != 3 || e.MinSize != 2 {
		t.Errorf("Unexpected expander %+v", e)
	}
	if sets := p.CountedSets(); len(sets[0]) != 2 {
		t.Errorf("Counted sets not ordered by size: %v", sets)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	p := load(t)

	data, err := p.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	q, err := Parse(data)
	if err != nil {
		t.Fatalf("%v\n%s", err, data)
	}

	if p.Graph.String() != q.Graph.String() || p.Pattern.String() != q.Pattern.String() {
		t.Errorf("Graphs changed: %v %v", q.Graph, q.Pattern)
	}
	if len(q.Colorings) != len(p.Colorings) || len(q.Counts) != len(p.Counts) {
		t.Errorf("Colourings or counts lost")
	}
	for i, k := range p.Table.Keys() {
		if !k.Equal(q.Table.Keys()[i]) || len(p.Table.Get(k)) != len(q.Table.Get(k)) {
			t.Errorf("Table row %d changed", i)
		}
	}
	for _, v := range p.TDD.Vertices() {
		a, _ := p.TDD.RootPath(v)
		b, _ := q.TDD.RootPath(v)
		if len(a) != len(b) {
			t.Errorf("Root path of %d changed: %v %v", v, a, b)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for name, src := range map[string]string{
		"syntax":         "graph: [",
		"unknown field":  "graph: {order: 1}\ncolorings: [[0]]\nweights: [1]\n",
		"empty graph":    "colorings: [[0]]\n",
		"no colorings":   "graph: {order: 2}\n",
		"short coloring": "graph: {order: 3}\ncolorings: [[0, 1]]\n",
		"long coloring":  "graph: {order: 3}\ncolorings: [[0, 1, 0], [0, 1, 0, 1, 2, 2, 2]]\n",
		"sparse ids":     "graph: {edges: [[0, 2]]}\ncolorings: [[0, 1]]\n",
		"bad edge":       "graph: {order: 2, edges: [[0, 1, 2]]}\ncolorings: [[0, 1]]\n",
		"bad tdd":        "graph: {order: 2}\ncolorings: [[0, 1]]\ntdd: [[1]]\n",
		"tdd self":       "graph: {order: 2}\ncolorings: [[0, 1]]\ntdd: [[1, 1]]\n",
		"tdd vertex":     "graph: {order: 2}\ncolorings: [[0, 1]]\ntdd: [[1, 5]]\n",
		"key vertex":     "graph: {order: 2}\ncolorings: [[0, 1]]\ntdd: [[1, 0]]\ntable: [{key: [4]}]\n",
		"pattern vertex": "graph: {order: 2}\ncolorings: [[0, 1]]\npattern: {order: 1}\ntdd: [[1, 0]]\ntable: [{key: [1], entries: [{pi: {3: 0}}]}]\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(src)); !errors.Is(err, ErrBadFixture) {
				t.Errorf("Expected ErrBadFixture, got %v", err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("testdata/missing.yaml"); err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("Expected a read error, got %v", err)
	}
}

func TestStages(t *testing.T) {
	p := load(t)

	d, err := p.Generator(layout.Spring{Updates: 10}).Decompose(p.Universe(), false)
	if err != nil {
		t.Fatal(err)
	}
	// Path 0-1-2-3 with pendant 4, edge 5-6 (colours 0, 1) and vertex 7.
	if len(d.Components) != 3 {
		t.Errorf("Expected 3 components, got %v", d.Components)
	}

	s := p.Sampler(rand.New(rand.NewSource(1)))
	for i := 0; i < 20; i++ {
		sample, err := s.SelectSample()
		if err != nil {
			t.Fatal(err)
		}
		if !sample.Pattern.Valid(len(sample.RootPath)) {
			t.Errorf("Invalid sample %v", sample.Pattern)
		}
	}

	groups := p.Expander().Expand(graph.NewColorSet(1))
	if len(groups) != 2 || groups[0].Added != 2 || groups[1].Added != 1 {
		t.Errorf("Unexpected groups %v", groups)
	}
}
