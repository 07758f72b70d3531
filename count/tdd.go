package count

import (
	"sort"

	"github.com/cs-au-dk/drgraph/graph"
	ugraph "github.com/cs-au-dk/drgraph/utils/graph"
	"github.com/cs-au-dk/drgraph/utils/slices"

	"github.com/pkg/errors"
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

var ErrMalformedDecomposition = errors.New("malformed treedepth decomposition")

// TDD is a treedepth decomposition: a directed graph in which every vertex
// except the root has a single successor, its parent.
type TDD struct {
	g *simple.DirectedGraph
}

func NewTDD() *TDD {
	return &TDD{simple.NewDirectedGraph()}
}

func (t *TDD) addVertex(v graph.Vertex) {
	if t.g.Node(int64(v)) == nil {
		t.g.AddNode(simple.Node(v))
	}
}

// AddVertex adds v without a parent.
func (t *TDD) AddVertex(v graph.Vertex) {
	t.addVertex(v)
}

// SetParent adds the edge child -> parent.
func (t *TDD) SetParent(child, parent graph.Vertex) error {
	if child == parent {
		return errors.Wrapf(ErrMalformedDecomposition, "vertex %d is its own parent", child)
	}
	t.addVertex(child)
	t.addVertex(parent)
	t.g.SetEdge(simple.Edge{F: simple.Node(child), T: simple.Node(parent)})
	return nil
}

func successors(nodes gonum.Nodes) []graph.Vertex {
	res := make([]graph.Vertex, 0, nodes.Len())
	for nodes.Next() {
		res = append(res, graph.Vertex(nodes.Node().ID()))
	}
	return res
}

func (t *TDD) Vertices() []graph.Vertex {
	vs := successors(t.g.Nodes())
	sort.Ints(vs)
	return vs
}

func (t *TDD) Contains(v graph.Vertex) bool {
	return t.g.Node(int64(v)) != nil
}

// Parents returns the successors of v.
func (t *TDD) Parents(v graph.Vertex) []graph.Vertex {
	return successors(t.g.From(int64(v)))
}

// Roots returns the vertices without a successor in ascending order.
func (t *TDD) Roots() []graph.Vertex {
	var roots []graph.Vertex
	for _, v := range t.Vertices() {
		if t.g.From(int64(v)).Len() == 0 {
			roots = append(roots, v)
		}
	}
	return roots
}

// Root returns the unique vertex without a successor.
func (t *TDD) Root() (graph.Vertex, error) {
	switch roots := t.Roots(); len(roots) {
	case 1:
		return roots[0], nil
	case 0:
		return -1, errors.Wrap(ErrMalformedDecomposition, "no root")
	default:
		return -1, errors.Wrapf(ErrMalformedDecomposition, "several roots %v", roots)
	}
}

// RootPath returns the vertices from the root down to v.
func (t *TDD) RootPath(v graph.Vertex) ([]graph.Vertex, error) {
	if !t.Contains(v) {
		return nil, errors.Wrapf(ErrMalformedDecomposition, "vertex %d is not in the decomposition", v)
	}

	var parentErr error
	G := ugraph.Of(func(u graph.Vertex) []graph.Vertex {
		ps := t.Parents(u)
		if len(ps) > 1 && parentErr == nil {
			parentErr = errors.Wrapf(ErrMalformedDecomposition, "vertex %d has parents %v", u, ps)
		}
		return ps
	})

	path, ok := G.Path(v)
	if parentErr != nil {
		return nil, parentErr
	}
	if !ok {
		return nil, errors.Wrapf(ErrMalformedDecomposition, "cycle above vertex %d", v)
	}

	return slices.Reverse(path), nil
}

// RootedTree returns the underlying tree of the decomposition and its root.
// A decomposition of a disconnected graph is a forest; it is returned below a
// virtual root, one larger than every vertex, and virtual is set.
func (t *TDD) RootedTree() (tree *graph.Graph, root graph.Vertex, virtual bool, err error) {
	roots := t.Roots()
	tree = t.Tree()

	switch len(roots) {
	case 0:
		return nil, -1, false, errors.Wrap(ErrMalformedDecomposition, "no root")
	case 1:
		return tree, roots[0], false, nil
	}

	vs := t.Vertices()
	root = vs[len(vs)-1] + 1
	for _, r := range roots {
		tree.AddEdge(root, r)
	}
	return tree, root, true, nil
}

// Tree returns the decomposition as an undirected graph.
func (t *TDD) Tree() *graph.Graph {
	G := graph.New()
	nodes := t.g.Nodes()
	for nodes.Next() {
		G.AddVertex(graph.Vertex(nodes.Node().ID()))
	}

	edges := t.g.Edges()
	for edges.Next() {
		e := edges.Edge()
		G.AddEdge(graph.Vertex(e.From().ID()), graph.Vertex(e.To().ID()))
	}
	return G
}
