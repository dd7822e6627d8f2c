// Package engine implements the simulation core of Blockfall: the cell grid,
// the falling piece, collision rules, row clearing and the timed-drop state
// machine. It performs no I/O and holds no references to input or rendering;
// callers feed it elapsed time and discrete commands and read state back.
package engine

import (
	"fmt"
	"sort"
)

// Shape is a square matrix of cell values. Zero marks an empty cell, any
// positive value an occupied one. The value is carried into the grid when
// the piece freezes, so renderers can use it as a colour index.
type Shape [][]int

// NewShape copies rows into a Shape, panicking if the matrix is not square
// or contains negative values.
func NewShape(rows [][]int) Shape {
	size := len(rows)
	if size == 0 {
		panic("engine: empty shape")
	}
	s := make(Shape, size)
	for y, row := range rows {
		if len(row) != size {
			panic(fmt.Sprintf("engine: shape row %d has %d cells, want %d", y, len(row), size))
		}
		s[y] = make([]int, size)
		for x, v := range row {
			if v < 0 {
				panic(fmt.Sprintf("engine: negative shape value %d at (%d, %d)", v, x, y))
			}
			s[y][x] = v
		}
	}
	return s
}

// Size returns the side length of the matrix.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns an independent copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y := range s {
		c[y] = append([]int(nil), s[y]...)
	}
	return c
}

// Equal reports whether two shapes have identical cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// rotate turns the matrix 90 degrees clockwise in place:
// transpose, then reverse the column order of every row.
func (s Shape) rotate() {
	n := len(s)
	for y := 0; y < n; y++ {
		for x := y + 1; x < n; x++ {
			s[y][x], s[x][y] = s[x][y], s[y][x]
		}
	}
	for y := 0; y < n; y++ {
		row := s[y]
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// Filled returns the shape-relative offsets of occupied cells, row by row.
func (s Shape) Filled() []Position {
	var cells []Position
	for y, row := range s {
		for x, v := range row {
			if v > 0 {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}

// Catalog names.
const (
	CatalogClassic = "classic"
	CatalogTromino = "tromino"
	CatalogMono    = "mono"
)

var catalogs = map[string][]Shape{
	CatalogClassic: {
		NewShape([][]int{ // I
			{0, 0, 0, 0},
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}),
		NewShape([][]int{ // O
			{2, 2},
			{2, 2},
		}),
		NewShape([][]int{ // T
			{0, 3, 0},
			{3, 3, 3},
			{0, 0, 0},
		}),
		NewShape([][]int{ // S
			{0, 4, 4},
			{4, 4, 0},
			{0, 0, 0},
		}),
		NewShape([][]int{ // Z
			{5, 5, 0},
			{0, 5, 5},
			{0, 0, 0},
		}),
		NewShape([][]int{ // J
			{6, 0, 0},
			{6, 6, 6},
			{0, 0, 0},
		}),
		NewShape([][]int{ // L
			{0, 0, 7},
			{7, 7, 7},
			{0, 0, 0},
		}),
	},
	CatalogTromino: {
		NewShape([][]int{
			{0, 0, 0},
			{1, 1, 1},
			{0, 0, 0},
		}),
		NewShape([][]int{
			{3, 0},
			{3, 3},
		}),
	},
	CatalogMono: {
		NewShape([][]int{{1}}),
	},
}

// Catalog returns copies of the shapes in the named catalog.
func Catalog(name string) ([]Shape, bool) {
	shapes, ok := catalogs[name]
	if !ok {
		return nil, false
	}
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.Clone()
	}
	return out, true
}

// CatalogNames lists the built-in catalogs in sorted order.
func CatalogNames() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
