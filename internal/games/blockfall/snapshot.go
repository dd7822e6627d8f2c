package blockfall

// Snapshot contains the complete game state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Lines      int
	Pieces     int
	State      string
	Paused     bool
	IntervalMs int64

	PieceX     int
	PieceY     int
	PieceSize  int
	PieceCells []int // row-major shape values

	Rows    int
	Columns int
	Board   []int // row-major cell values
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	if g.eng == nil {
		return Snapshot{}
	}

	board := g.eng.Board()
	rows, cols := board.Dimensions()
	cells := make([]int, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cells = append(cells, board.Cell(x, y))
		}
	}

	piece := g.eng.ActivePiece()
	size := piece.Shape.Size()
	pieceCells := make([]int, 0, size*size)
	for _, row := range piece.Shape {
		pieceCells = append(pieceCells, row...)
	}

	return Snapshot{
		Tick:       g.eng.Ticks(),
		Lines:      g.eng.ClearedRows(),
		Pieces:     g.eng.PiecesPlaced(),
		State:      g.eng.State().String(),
		Paused:     g.paused,
		IntervalMs: g.eng.PieceDropInterval().Milliseconds(),
		PieceX:     piece.Position.X,
		PieceY:     piece.Position.Y,
		PieceSize:  size,
		PieceCells: pieceCells,
		Rows:       rows,
		Columns:    cols,
		Board:      cells,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Lines)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pieces)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.IntervalMs) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceSize)  //#nosec G115 -- hash computation
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range snap.PieceCells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Board {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
