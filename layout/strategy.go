package layout

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/cs-au-dk/drgraph/graph"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/pkg/errors"
	glayout "gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/spatial/r2"
)

var ErrBadPlainOutput = errors.New("unexpected graphviz plain output")

// Strategy computes raw (not normalized) positions for the vertices of a graph.
type Strategy interface {
	Name() string
	// Layout lays out G. Strategies that produce rooted layouts place root
	// at the centre; others ignore it.
	Layout(G *graph.Graph, root graph.Vertex) (Layout, error)
}

// Radial lays out graphs with graphviz' twopi: the root at the centre and
// every other vertex on a circle according to its distance from the root.
type Radial struct{}

// Spring is a force-directed layout (Eades' spring embedder).
type Spring struct {
	// Number of optimizer iterations. Zero means 100.
	Updates int
}

func (Radial) Name() string { return "radial" }
func (Spring) Name() string { return "spring" }

func (Radial) Layout(G *graph.Graph, root graph.Vertex) (Layout, error) {
	gv := graphviz.New()
	defer gv.Close()

	cg, err := gv.Graph()
	if err != nil {
		return nil, errors.Wrap(err, "creating graphviz graph")
	}
	defer cg.Close()

	nodes := make(map[graph.Vertex]*cgraph.Node)
	for _, v := range G.Vertices() {
		n, err := cg.CreateNode(strconv.Itoa(v))
		if err != nil {
			return nil, errors.Wrapf(err, "creating graphviz node %d", v)
		}
		nodes[v] = n
	}

	for i, e := range G.Edges() {
		if _, err := cg.CreateEdge(fmt.Sprintf("e%d", i), nodes[e.U], nodes[e.V]); err != nil {
			return nil, errors.Wrapf(err, "creating graphviz edge %d-%d", e.U, e.V)
		}
	}

	if G.HasVertex(root) {
		if rc := cg.SafeSet("root", strconv.Itoa(root), ""); rc != 0 {
			return nil, errors.Errorf("setting twopi root: status %d", rc)
		}
	}

	var buf bytes.Buffer
	gv.SetLayout(graphviz.TWOPI)
	if err := gv.Render(cg, graphviz.Format("plain"), &buf); err != nil {
		return nil, errors.Wrap(err, "running twopi")
	}

	return parsePlain(&buf)
}

// parsePlain reads node positions from graphviz' "plain" output format:
//
//	graph scale width height
//	node name x y width height label style shape color fillcolor
//	edge tail head n x1 y1 .. xn yn [label xl yl] style color
//	stop
func parsePlain(r io.Reader) (Layout, error) {
	res := Layout{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != "node" {
			continue
		}
		if len(fields) < 4 {
			return nil, errors.Wrapf(ErrBadPlainOutput, "short node line %q", sc.Text())
		}

		v, err := strconv.Atoi(strings.Trim(fields[1], `"`))
		if err != nil {
			return nil, errors.Wrapf(ErrBadPlainOutput, "node name %q", fields[1])
		}
		x, errX := strconv.ParseFloat(fields[2], 64)
		y, errY := strconv.ParseFloat(fields[3], 64)
		if errX != nil || errY != nil {
			return nil, errors.Wrapf(ErrBadPlainOutput, "node position in %q", sc.Text())
		}
		res[v] = r2.Vec{X: x, Y: y}
	}
	return res, sc.Err()
}

func (s Spring) Layout(G *graph.Graph, _ graph.Vertex) (Layout, error) {
	vs := G.Vertices()
	switch len(vs) {
	case 0:
		return Layout{}, nil
	case 1:
		return Layout{vs[0]: {}}, nil
	}

	updates := s.Updates
	if updates == 0 {
		updates = 100
	}

	eades := &glayout.EadesR2{
		Updates:   updates,
		Repulsion: 1,
		Rate:      0.05,
		Theta:     0.2,
	}
	opt := glayout.NewOptimizerR2(G.Gonum(), eades.Update)
	for opt.Update() {
	}

	res := make(Layout, len(vs))
	for _, v := range vs {
		res[v] = opt.Coord2(int64(v))
	}
	return res, nil
}

var (
	checkOnce sync.Once
	hasRadial bool
)

// RadialAvailable reports whether graphviz layouts work in this process.
// The check lays out a single-vertex graph once; later calls reuse the result.
func RadialAvailable() bool {
	checkOnce.Do(func() {
		defer func() {
			if err := recover(); err != nil {
				log.Println("graphviz check panicked:", err)
				hasRadial = false
			}
		}()

		l, err := Radial{}.Layout(graph.FromEdges(1), 0)
		hasRadial = err == nil && len(l) == 1
	})
	return hasRadial
}

// SelectStrategy picks the layout strategy by name: "radial", "spring" or
// "auto"/"" (radial when graphviz is available, otherwise spring).
func SelectStrategy(name string) (Strategy, error) {
	switch name {
	case "radial":
		return Radial{}, nil
	case "spring":
		return Spring{}, nil
	case "auto", "":
		if RadialAvailable() {
			return Radial{}, nil
		}
		log.Println("graphviz unavailable, falling back to spring layout")
		return Spring{}, nil
	}
	return nil, fmt.Errorf("unknown layout strategy %q", name)
}

// LayoutOne lays out G with s and normalizes the result to the unit box.
func LayoutOne(s Strategy, G *graph.Graph, root graph.Vertex, margin float64) (Layout, error) {
	l, err := s.Layout(G, root)
	if err != nil {
		return nil, errors.Wrapf(err, "%s layout", s.Name())
	}
	return Normalize(l, margin), nil
}
