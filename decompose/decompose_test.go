package decompose

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/cs-au-dk/drgraph/graph"
	"github.com/cs-au-dk/drgraph/layout"
	"github.com/cs-au-dk/drgraph/testutil"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestTwoTriangles(t *testing.T) {
	G := graph.FromEdges(6,
		graph.Edge{U: 0, V: 1}, graph.Edge{U: 1, V: 2}, graph.Edge{U: 0, V: 2},
		graph.Edge{U: 3, V: 4}, graph.Edge{U: 4, V: 5}, graph.Edge{U: 3, V: 5},
	)
	coloring := graph.Coloring{0, 1, 2, 0, 1, 2}

	comps := NewCollector(G, coloring, nil).Collect(graph.NewColorSet(0, 1, 2))
	if len(comps) != 1 {
		t.Fatalf("Expected one component, got %v", comps)
	}
	if comps[0].Occ != 2 {
		t.Errorf("Expected occ 2, got %d", comps[0].Occ)
	}
	if vs := comps[0].Graph.Vertices(); vs[0] != 0 {
		t.Errorf("First seen component should represent the class, got %v", vs)
	}
}

func TestDedupIdempotence(t *testing.T) {
	// A coloured tree: colour 0 at the root, two children coloured 1 and 2,
	// and a grandchild coloured 3 below the child coloured 1.
	pattern := []graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}}
	colors := []graph.Color{0, 1, 2, 3}

	rnd := rand.New(rand.NewSource(42))
	for _, n := range []int{1, 2, 5, 13} {
		G, coloring := testutil.DisjointCopies(pattern, colors, n, rnd)

		comps := NewCollector(G, coloring, nil).Collect(coloring.Colors())
		if len(comps) != 1 || comps[0].Occ != n {
			t.Errorf("%d copies: got %v", n, comps)
		}
	}
}

func TestDistinctComponents(t *testing.T) {
	// 0-1 coloured (0, 1), 2-3 coloured (1, 0), 4-5 coloured (0, 2), 6 coloured 0, 7 coloured 0.
	G := graph.FromEdges(8, graph.Edge{U: 0, V: 1}, graph.Edge{U: 2, V: 3}, graph.Edge{U: 4, V: 5})
	coloring := graph.Coloring{0, 1, 1, 0, 0, 2, 0, 0}

	comps := NewCollector(G, coloring, nil).Collect(graph.NewColorSet(0, 1, 2))

	var strs []string
	for _, c := range comps {
		strs = append(strs, c.Graph.String())
	}
	expected := "{0-1} {4-5} {6}"
	if got := strings.Join(strs, " "); got != expected {
		t.Errorf("Components = %s, expected %s", got, expected)
	}

	occ := []int{2, 1, 2}
	for i, c := range comps {
		if c.Occ != occ[i] {
			t.Errorf("Component %d has occ %d, expected %d", i, c.Occ, occ[i])
		}
	}

	first := SingletonsFirst(comps)
	if first[0] != comps[2] || first[1] != comps[0] || first[2] != comps[1] {
		t.Errorf("SingletonsFirst = %v", first)
	}
}

func TestColorSetRestricts(t *testing.T) {
	G := graph.FromEdges(3, graph.Edge{U: 0, V: 1}, graph.Edge{U: 1, V: 2})
	coloring := graph.Coloring{0, 1, 0}

	c := NewCollector(G, coloring, nil)
	if comps := c.Collect(graph.NewColorSet()); len(comps) != 0 {
		t.Errorf("Empty colour set gave %v", comps)
	}

	comps := c.Collect(graph.NewColorSet(0))
	if len(comps) != 1 || comps[0].Occ != 2 || comps[0].Graph.Order() != 1 {
		t.Errorf("Colour set {0} gave %v", comps)
	}
}

func TestExtractTree(t *testing.T) {
	tests := []struct {
		name     string
		G        *graph.Graph
		coloring graph.Coloring
		root     graph.Vertex
		edges    string
	}{
		{
			"path",
			graph.FromEdges(5, graph.Edge{U: 0, V: 1}, graph.Edge{U: 1, V: 2}, graph.Edge{U: 2, V: 3}, graph.Edge{U: 3, V: 4}),
			graph.Coloring{2, 1, 0, 1, 2},
			2,
			"{0-1 0-2 2-3 3-4}",
		},
		{
			"triangle",
			graph.FromEdges(3, graph.Edge{U: 0, V: 1}, graph.Edge{U: 1, V: 2}, graph.Edge{U: 0, V: 2}),
			graph.Coloring{0, 1, 2},
			0,
			"{0-1 1-2}",
		},
		{
			"single",
			graph.FromEdges(1),
			graph.Coloring{4},
			0,
			"{0}",
		},
		{
			// Star with a shared leaf colour and a triangle hanging off leaf 3.
			"dense",
			graph.FromEdges(6,
				graph.Edge{U: 0, V: 1}, graph.Edge{U: 0, V: 2}, graph.Edge{U: 0, V: 3},
				graph.Edge{U: 3, V: 4}, graph.Edge{U: 3, V: 5}, graph.Edge{U: 4, V: 5}, graph.Edge{U: 0, V: 5},
			),
			graph.Coloring{0, 1, 1, 2, 3, 4},
			0,
			"{0-1 0-2 0-3 3-4 4-5}",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tree := ExtractTree(test.G, test.coloring)
			if tree.Malformed {
				t.Fatal("Unexpected malformed tree")
			}
			if tree.Root != test.root {
				t.Errorf("Root = %d, expected %d", tree.Root, test.root)
			}
			if got := tree.Tree.String(); got != test.edges {
				t.Errorf("Tree = %s, expected %s", got, test.edges)
			}

			// Same vertex set, n-1 edges.
			if a, b := tree.Tree.Vertices(), test.G.Vertices(); len(a) != len(b) {
				t.Errorf("Tree has vertices %v, component %v", a, b)
			}
			if tree.Tree.Size() != tree.Tree.Order()-1 {
				t.Errorf("Tree has %d edges for %d vertices", tree.Tree.Size(), tree.Tree.Order())
			}
		})
	}
}

func TestExtractTreeRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		G, coloring := testutil.RandomTreedepthColored(rnd, 2+rnd.Intn(12))
		tree := ExtractTree(G, coloring)
		if tree.Malformed {
			t.Fatalf("Malformed tree for %v coloured %v", G, coloring)
		}
		if tree.Tree.Order() != G.Order() || tree.Tree.Size() != G.Order()-1 {
			t.Errorf("Tree %v of %v violates the size invariant", tree.Tree, G)
		}
		for _, v := range G.Vertices() {
			if !tree.Tree.HasVertex(v) {
				t.Errorf("Tree %v lost vertex %d", tree.Tree, v)
			}
		}
	}
}

func TestExtractTreeMalformed(t *testing.T) {
	cycle := graph.FromEdges(4, graph.Edge{U: 0, V: 1}, graph.Edge{U: 1, V: 2}, graph.Edge{U: 2, V: 3}, graph.Edge{U: 0, V: 3})
	tree := ExtractTree(cycle, graph.Coloring{0, 1, 0, 1})
	if !tree.Malformed || tree.Tree != cycle {
		t.Errorf("Expected the original component as fallback, got %v", tree)
	}
	if tree.Depth() != 0 {
		t.Errorf("Malformed tree has depth %d", tree.Depth())
	}

	// Only the part below the root is malformed.
	G := graph.FromEdges(5, graph.Edge{U: 0, V: 1}, graph.Edge{U: 1, V: 2}, graph.Edge{U: 2, V: 3}, graph.Edge{U: 3, V: 4}, graph.Edge{U: 1, V: 4})
	tree = ExtractTree(G, graph.Coloring{5, 0, 1, 0, 1})
	if !tree.Malformed || tree.Root != 0 {
		t.Errorf("Expected malformed tree rooted at 0, got %+v", tree)
	}
	if !tree.Tree.HasEdge(0, 1) {
		t.Errorf("Fallback subtree not attached to the root: %v", tree.Tree)
	}
}

// diagonal places vertex v at (v, v mod 2).
type diagonal struct{}

func (diagonal) Name() string { return "diagonal" }
func (diagonal) Layout(G *graph.Graph, _ graph.Vertex) (layout.Layout, error) {
	l := layout.Layout{}
	for _, v := range G.Vertices() {
		l[v] = r2.Vec{X: float64(v), Y: float64(v % 2)}
	}
	return l, nil
}

func TestDecompose(t *testing.T) {
	G := graph.FromEdges(9,
		graph.Edge{U: 0, V: 1}, graph.Edge{U: 1, V: 2},
		graph.Edge{U: 3, V: 4}, graph.Edge{U: 4, V: 5},
		graph.Edge{U: 6, V: 7},
	)
	coloring := graph.Coloring{0, 1, 2, 0, 1, 2, 0, 2, 1}

	gen := NewGenerator(G, coloring, nil, diagonal{})
	d, err := gen.Decompose(graph.NewColorSet(0, 1, 2), false)
	if err != nil {
		t.Fatal(err)
	}

	if len(d.Components) != 3 || len(d.Trees) != 3 || len(d.Layouts) != 3 {
		t.Fatalf("Got %d components, %d trees, %d layouts", len(d.Components), len(d.Trees), len(d.Layouts))
	}
	if d.Components[0].Occ != 2 {
		t.Errorf("Path component has occ %d", d.Components[0].Occ)
	}
	if d.Trees[0].Depth() != 3 {
		t.Errorf("Path tree has depth %d", d.Trees[0].Depth())
	}

	// Third layout lands in the second row of a 2x2 grid.
	for v, p := range d.Layouts[2] {
		if p.X < 0 || p.X > 1 || p.Y < 1 || p.Y > 2 {
			t.Errorf("Vertex %d of the third component at %v", v, p)
		}
	}

	var buf bytes.Buffer
	if err := d.ToDotGraph().WriteDot(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, frag := range []string{`graph Layouts {`, `"0:0" -- "0:1"`, `label="x2";`, `subgraph "cluster_2"`} {
		if !strings.Contains(out, frag) {
			t.Errorf("DOT output lacks %q:\n%s", frag, out)
		}
	}
}
