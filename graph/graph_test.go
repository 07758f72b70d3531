package graph

import (
	"reflect"
	"testing"
)

func TestInducedComponents(t *testing.T) {
	// Two triangles joined by the edge 2-3, plus an isolated vertex.
	G := FromEdges(7,
		Edge{0, 1}, Edge{1, 2}, Edge{0, 2},
		Edge{2, 3},
		Edge{3, 4}, Edge{4, 5}, Edge{3, 5},
	)

	if G.Order() != 7 || G.Size() != 7 {
		t.Fatalf("Order() = %d, Size() = %d", G.Order(), G.Size())
	}

	H := G.Induced([]Vertex{0, 1, 3, 4, 5, 6})
	if H.HasEdge(2, 3) || H.HasVertex(2) {
		t.Error("Induced subgraph contains removed vertex 2")
	}

	comps := H.Components()
	var got [][]Vertex
	for _, c := range comps {
		got = append(got, c.Vertices())
	}
	expected := [][]Vertex{{0, 1}, {3, 4, 5}, {6}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Components() = %v, expected %v", got, expected)
	}

	if comps[1].Size() != 3 {
		t.Errorf("Triangle component has %d edges", comps[1].Size())
	}
}

func TestWithoutCompose(t *testing.T) {
	G := FromEdges(4, Edge{0, 1}, Edge{1, 2}, Edge{1, 3})
	H := G.Without(1)
	if H.Order() != 3 || H.Size() != 0 {
		t.Errorf("Without(1) = %v", H)
	}
	if G.Order() != 4 || G.Size() != 3 {
		t.Errorf("Without modified its receiver: %v", G)
	}

	K := FromEdges(0, Edge{5, 6}).Compose(H, FromEdges(0, Edge{0, 5}))
	if !reflect.DeepEqual(K.Vertices(), []Vertex{0, 2, 3, 5, 6}) {
		t.Errorf("Compose vertices = %v", K.Vertices())
	}
	if !reflect.DeepEqual(K.Edges(), []Edge{{0, 5}, {5, 6}}) {
		t.Errorf("Compose edges = %v", K.Edges())
	}
}

func TestSelfLoopIgnored(t *testing.T) {
	G := New()
	G.AddEdge(3, 3)
	if G.Order() != 1 || G.Size() != 0 {
		t.Errorf("Self loop produced %v", G)
	}
}

func TestColorSet(t *testing.T) {
	s := NewColorSet(4, 1, 1, 0, 4)
	if !reflect.DeepEqual(s, ColorSet{0, 1, 4}) {
		t.Fatalf("NewColorSet = %v", []Color(s))
	}

	if !s.Contains(4) || s.Contains(2) {
		t.Error("Contains is wrong")
	}

	if u := s.Union(NewColorSet(2, 4)); !u.Equal(ColorSet{0, 1, 2, 4}) {
		t.Errorf("Union = %v", []Color(u))
	}

	if m := NewColorSet(0, 1, 2, 3, 4).Minus(s); !m.Equal(ColorSet{2, 3}) {
		t.Errorf("Minus = %v", []Color(m))
	}

	if !NewColorSet().Equal(ColorSet{}) {
		t.Error("Empty colour sets differ")
	}
}

func TestColoringSelect(t *testing.T) {
	c := Coloring{0, 1, 2, 1, 0}
	if vs := c.Select(NewColorSet(1, 2)); !reflect.DeepEqual(vs, []Vertex{1, 2, 3}) {
		t.Errorf("Select = %v", vs)
	}
	if vs := c.Select(NewColorSet()); len(vs) != 0 {
		t.Errorf("Select(empty) = %v", vs)
	}
	if !c.InRange(FromEdges(5)) || c.InRange(FromEdges(6)) {
		t.Error("InRange is wrong")
	}
}

func TestColorIsomorphic(t *testing.T) {
	// Vertices 0-2 and 3-5 are triangles, 6-8 is a path.
	coloring := Coloring{0, 1, 2, 2, 0, 1, 0, 1, 2}
	G := FromEdges(9,
		Edge{0, 1}, Edge{1, 2}, Edge{0, 2},
		Edge{3, 4}, Edge{4, 5}, Edge{3, 5},
		Edge{6, 7}, Edge{7, 8},
	)
	comps := G.Components()

	tests := []struct {
		name     string
		a, b     *Graph
		ca, cb   Coloring
		expected bool
	}{
		{"same-triangle", comps[0], comps[0], coloring, coloring, true},
		{"relabeled-triangle", comps[0], comps[1], coloring, coloring, true},
		{"triangle-path", comps[0], comps[2], coloring, coloring, false},
		{"recoloured", comps[0], comps[1], coloring, Coloring{0, 0, 0, 2, 0, 0}, false},
		{"empty", New(), New(), nil, nil, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Default.ColorIsomorphic(test.a, test.ca, test.b, test.cb); got != test.expected {
				t.Errorf("ColorIsomorphic = %v, expected %v", got, test.expected)
			}
		})
	}
}

func TestColorIsomorphicSameInvariant(t *testing.T) {
	// Two 6-vertex graphs with equal colour/degree invariants that are
	// not isomorphic: a 6-cycle and two triangles.
	cycle := FromEdges(6, Edge{0, 1}, Edge{1, 2}, Edge{2, 3}, Edge{3, 4}, Edge{4, 5}, Edge{0, 5})
	triangles := FromEdges(6, Edge{0, 1}, Edge{1, 2}, Edge{0, 2}, Edge{3, 4}, Edge{4, 5}, Edge{3, 5})
	mono := Coloring{0, 0, 0, 0, 0, 0}

	if !InvariantOf(cycle, mono).Equal(InvariantOf(triangles, mono)) {
		t.Fatal("Expected equal invariants")
	}
	if ColorIsomorphic(cycle, mono, triangles, mono) {
		t.Error("6-cycle reported isomorphic to two triangles")
	}
}
