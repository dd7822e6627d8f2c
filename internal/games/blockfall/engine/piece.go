package engine

import "time"

// Piece is the falling block. It holds its own copy of a shape and three
// independent position values: the committed position, the staged
// candidate and the previous committed position used for a single rollback.
type Piece struct {
	shape    Shape
	position Position
	staged   Position
	previous Position

	baseInterval time.Duration
	fastDivisor  int // 0 until DropFaster is applied
	moveTimer    time.Duration
}

// NewPiece creates a piece at spawn. The shape is copied so rotations never
// touch the catalog.
func NewPiece(shape Shape, spawn Position, dropInterval time.Duration) *Piece {
	return &Piece{
		shape:        shape.Clone(),
		position:     spawn,
		staged:       spawn,
		previous:     spawn,
		baseInterval: dropInterval,
	}
}

// StageMove records a candidate position. A later stage before the next
// commit overwrites it.
func (p *Piece) StageMove(target Position) {
	p.staged = target
}

// Commit makes the staged position current, remembering the old one.
func (p *Piece) Commit() {
	p.previous = p.position
	p.position = p.staged
}

// Revert discards the last committed move. The staged slot is reset as well
// so the rejected move is not replayed on the next commit.
func (p *Piece) Revert() {
	p.position = p.previous
	p.staged = p.previous
}

// Rotate turns the shape 90 degrees clockwise. No collision check is made.
func (p *Piece) Rotate() {
	p.shape.rotate()
}

// Update advances the drop timer by dt. Once the timer exceeds the drop
// interval a one-row-down move is staged and the timer restarts. Whatever
// is staged is committed on every call.
func (p *Piece) Update(dt time.Duration) {
	p.moveTimer += dt
	if p.moveTimer > p.DropInterval() {
		p.StageMove(p.position.Add(0, 1))
		p.moveTimer = 0
	}
	p.Commit()
}

// DropInterval returns the effective interval between automatic drops.
func (p *Piece) DropInterval() time.Duration {
	if p.fastDivisor <= 1 {
		return p.baseInterval
	}
	return max(p.baseInterval/time.Duration(p.fastDivisor), time.Millisecond)
}

// SetDropInterval replaces the base interval. An active fast drop keeps
// dividing the new value.
func (p *Piece) SetDropInterval(d time.Duration) {
	p.baseInterval = d
}

// DropFaster divides the drop interval for the rest of the piece's life.
// Repeated calls do not compound.
func (p *Piece) DropFaster(divisor int) {
	if divisor > p.fastDivisor {
		p.fastDivisor = divisor
	}
}

// FastDrop reports whether DropFaster has been applied.
func (p *Piece) FastDrop() bool { return p.fastDivisor > 1 }

// MoveTimer returns the time accumulated toward the next drop.
func (p *Piece) MoveTimer() time.Duration { return p.moveTimer }

// Position returns the committed position.
func (p *Piece) Position() Position { return p.position }

// Staged returns the staged candidate position.
func (p *Piece) Staged() Position { return p.staged }

// Previous returns the position before the last commit.
func (p *Piece) Previous() Position { return p.previous }

// Shape returns a copy of the current shape matrix.
func (p *Piece) Shape() Shape { return p.shape.Clone() }

type pieceCell struct {
	pos   Position
	value int
}

// occupied returns the absolute cells covered by the piece.
func (p *Piece) occupied() []pieceCell {
	var out []pieceCell
	for y, row := range p.shape {
		for x, v := range row {
			if v > 0 {
				out = append(out, pieceCell{pos: p.position.Add(x, y), value: v})
			}
		}
	}
	return out
}

// Cells returns the absolute positions of the piece's occupied cells.
func (p *Piece) Cells() []Position {
	cells := p.occupied()
	out := make([]Position, len(cells))
	for i, c := range cells {
		out[i] = c.pos
	}
	return out
}
