package engine

import "fmt"

// Position is a cell coordinate relative to the grid's top-left corner.
// X is the column, Y the row.
type Position struct {
	X, Y int
}

// Add returns the position shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Board is the read-only view of a grid handed to renderers.
type Board interface {
	Cell(x, y int) int
	Occupied(x, y int) bool
	Dimensions() (rows, columns int)
}

// Grid is the fixed rows x columns matrix of settled cells.
// Row count never changes: cleared rows are replaced, not removed.
type Grid struct {
	rows    int
	columns int
	cells   [][]int
}

// NewGrid creates an empty grid. Non-positive dimensions panic; configuration
// is validated before a grid is ever built.
func NewGrid(rows, columns int) *Grid {
	if rows <= 0 || columns <= 0 {
		panic(fmt.Sprintf("engine: invalid grid size %dx%d", rows, columns))
	}
	g := &Grid{rows: rows, columns: columns}
	g.cells = make([][]int, rows)
	for y := range g.cells {
		g.cells[y] = make([]int, columns)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Dimensions returns (rows, columns).
func (g *Grid) Dimensions() (rows, columns int) {
	return g.rows, g.columns
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.columns && y >= 0 && y < g.rows
}

// Cell returns the value at (x, y). Out-of-range access panics.
func (g *Grid) Cell(x, y int) int {
	g.mustInBounds(x, y)
	return g.cells[y][x]
}

// Occupied reports whether (x, y) holds a settled cell.
// Coordinates outside the grid are never occupied.
func (g *Grid) Occupied(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] > 0
}

func (g *Grid) mustInBounds(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("engine: cell (%d, %d) outside %dx%d grid", x, y, g.rows, g.columns))
	}
}

// set writes a raw value. Used by Freeze and by tests building fixtures.
func (g *Grid) set(x, y, v int) {
	g.mustInBounds(x, y)
	if v < 0 {
		panic(fmt.Sprintf("engine: negative cell value %d at (%d, %d)", v, x, y))
	}
	g.cells[y][x] = v
}

// Freeze writes every occupied cell of the piece into the grid at its
// absolute position. The piece must lie fully inside the grid.
func (g *Grid) Freeze(p *Piece) {
	for _, c := range p.occupied() {
		g.mustInBounds(c.pos.X, c.pos.Y)
	}
	for _, c := range p.occupied() {
		g.set(c.pos.X, c.pos.Y, c.value)
	}
}

// ClearCompletedRows removes every fully occupied row, inserting an empty
// row at the top for each one so the content above shifts down. The index
// is re-checked after each removal since a different row now occupies it.
// Returns the number of rows cleared.
func (g *Grid) ClearCompletedRows() int {
	cleared := 0
	for y := 0; y < g.rows; y++ {
		for g.rowComplete(y) {
			g.removeRow(y)
			cleared++
		}
	}
	return cleared
}

func (g *Grid) rowComplete(y int) bool {
	for _, v := range g.cells[y] {
		if v <= 0 {
			return false
		}
	}
	return true
}

// removeRow drops row y and pushes a fresh empty row at index 0.
func (g *Grid) removeRow(y int) {
	copy(g.cells[1:y+1], g.cells[:y])
	g.cells[0] = make([]int, g.columns)
}

// TopOut reports whether any cell in row 0 is occupied.
func (g *Grid) TopOut() bool {
	for _, v := range g.cells[0] {
		if v > 0 {
			return true
		}
	}
	return false
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v > 0 {
				n++
			}
		}
	}
	return n
}

// Cells returns a deep copy of the cell matrix.
func (g *Grid) Cells() [][]int {
	out := make([][]int, g.rows)
	for y := range g.cells {
		out[y] = append([]int(nil), g.cells[y]...)
	}
	return out
}
