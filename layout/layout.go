// Package layout computes 2D positions for small graphs and arranges
// several independent layouts in a grid.
//
// A single layout is normalized to the unit box [0,1]x[0,1] (inset by a
// margin) before tiling. Tiling only translates layouts, one grid cell of
// size GridSize per layout.
package layout

import (
	"math"
	"sort"

	"github.com/cs-au-dk/drgraph/graph"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// DefaultMargin is the free space kept on each side of a normalized layout.
	DefaultMargin = 0.05
	// GridSize is the side length of a grid cell.
	GridSize = 1.0

	// slack keeps node markers drawn at the border inside the cell.
	slack = 0.005
)

// Layout maps vertices to positions.
type Layout map[graph.Vertex]r2.Vec

// Vertices returns the laid out vertices in ascending order.
func (l Layout) Vertices() []graph.Vertex {
	vs := make([]graph.Vertex, 0, len(l))
	for v := range l {
		vs = append(vs, v)
	}
	sort.Ints(vs)
	return vs
}

// Bounds returns the corners of the bounding box of l.
// The box of an empty layout is the zero box.
func (l Layout) Bounds() (min, max r2.Vec) {
	first := true
	for _, p := range l {
		if first {
			min, max = p, p
			first = false
			continue
		}
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}
	return
}

// Translate returns a copy of l moved by d.
func (l Layout) Translate(d r2.Vec) Layout {
	res := make(Layout, len(l))
	for v, p := range l {
		res[v] = r2.Add(p, d)
	}
	return res
}

// Normalize re-centres l on the centre of its bounding box and scales it to
// fit the unit box inset by margin on all sides. An axis along which the
// bounding box is flat is not scaled.
func Normalize(l Layout, margin float64) Layout {
	min, max := l.Bounds()
	center := r2.Scale(0.5, r2.Add(min, max))
	half := 0.5 - margin - slack

	scale := r2.Vec{X: 1, Y: 1}
	if w := center.X - min.X; w != 0 {
		scale.X = half / w
	}
	if h := center.Y - min.Y; h != 0 {
		scale.Y = half / h
	}

	res := make(Layout, len(l))
	for v, p := range l {
		d := r2.Sub(p, center)
		res[v] = r2.Vec{
			X: d.X*scale.X + 0.5,
			Y: d.Y*scale.Y + 0.5,
		}
	}
	return res
}
