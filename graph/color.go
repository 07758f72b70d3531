package graph

import (
	"sort"

	"github.com/cs-au-dk/drgraph/utils"
)

type (
	Color = int

	// Coloring assigns a colour to every vertex id of a graph.
	Coloring []Color

	// ColorSet is a sorted set of colours without duplicates.
	ColorSet []Color
)

// InRange reports whether every vertex of G has a colour.
func (c Coloring) InRange(G *Graph) bool {
	for _, v := range G.Vertices() {
		if v < 0 || v >= len(c) {
			return false
		}
	}
	return true
}

// Colors returns the set of colours used by c.
func (c Coloring) Colors() ColorSet {
	return NewColorSet(c...)
}

// Restrict returns the colours of the given vertices.
func (c Coloring) Restrict(vs []Vertex) map[Vertex]Color {
	res := make(map[Vertex]Color, len(vs))
	for _, v := range vs {
		res[v] = c[v]
	}
	return res
}

// Select returns, in ascending order, the vertices whose colour is in cs.
func (c Coloring) Select(cs ColorSet) []Vertex {
	var res []Vertex
	for v, col := range c {
		if cs.Contains(col) {
			res = append(res, v)
		}
	}
	return res
}

func NewColorSet(cs ...Color) ColorSet {
	res := make(ColorSet, 0, len(cs))
	res = append(res, cs...)
	sort.Ints(res)

	// Remove duplicates in place
	j := 0
	for i, col := range res {
		if i == 0 || col != res[j-1] {
			res[j] = col
			j++
		}
	}
	return res[:j]
}

func (s ColorSet) Len() int {
	return len(s)
}

func (s ColorSet) Contains(c Color) bool {
	i := sort.SearchInts(s, c)
	return i < len(s) && s[i] == c
}

func (s ColorSet) Union(o ColorSet) ColorSet {
	return NewColorSet(append(append([]Color{}, s...), o...)...)
}

// Minus returns the colours of s not in o.
func (s ColorSet) Minus(o ColorSet) ColorSet {
	res := ColorSet{}
	for _, c := range s {
		if !o.Contains(c) {
			res = append(res, c)
		}
	}
	return res
}

func (s ColorSet) Equal(o ColorSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s ColorSet) Hash() uint32 {
	return utils.HashInts(s...)
}

func (s ColorSet) String() string {
	return utils.IntsString(s, utils.ColorString)
}
