package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Columns is the number of grid columns used to tile k layouts.
func Columns(k int) int {
	return int(math.Ceil(math.Sqrt(float64(k))))
}

// Cell returns the grid column and row of the i'th of k tiled layouts.
func Cell(i, k int) (col, row int) {
	cols := Columns(k)
	return i % cols, i / cols
}

// Tile arranges the layouts in a grid of Columns(len(layouts)) columns,
// filled row by row. Every layout is translated by the offset of its cell.
// The input layouts are not modified.
func Tile(layouts []Layout) []Layout {
	cols := float64(Columns(len(layouts)))
	res := make([]Layout, len(layouts))

	var offset r2.Vec
	for i, l := range layouts {
		res[i] = l.Translate(offset)

		offset.X += GridSize
		if offset.X >= cols*GridSize {
			offset.X = 0
			offset.Y += GridSize
		}
	}
	return res
}
