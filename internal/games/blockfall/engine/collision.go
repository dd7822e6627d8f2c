package engine

// InsideWalls reports whether every occupied cell of the piece lies in
// column range [0, columns). Rows are not checked here.
func InsideWalls(p *Piece, columns int) bool {
	for _, c := range p.occupied() {
		if c.pos.X < 0 || c.pos.X >= columns {
			return false
		}
	}
	return true
}

// TouchesStackOrFloor reports whether any occupied cell of the piece sits at
// or below the floor (row >= rows) or on a grid cell that is already filled.
func TouchesStackOrFloor(p *Piece, g Board, rows int) bool {
	touched := false
	for _, c := range p.occupied() {
		touched = touched || c.pos.Y >= rows
		touched = touched || g.Occupied(c.pos.X, c.pos.Y)
	}
	return touched
}

// fits reports whether the piece is inside the walls, above the floor and
// clear of the stack. Used by the optional rotation guard.
func fits(p *Piece, g *Grid) bool {
	for _, c := range p.occupied() {
		if !g.InBounds(c.pos.X, c.pos.Y) || g.Occupied(c.pos.X, c.pos.Y) {
			return false
		}
	}
	return true
}
