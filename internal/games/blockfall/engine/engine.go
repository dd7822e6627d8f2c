package engine

import (
	"math/rand"
	"time"
)

// Command is a discrete player intent applied to the active piece.
type Command int

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandDropFaster
	CommandRotate
	CommandSoftDrop
)

func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandDropFaster:
		return "DropFaster"
	case CommandRotate:
		return "Rotate"
	case CommandSoftDrop:
		return "SoftDrop"
	default:
		return "Unknown"
	}
}

// PieceView is a detached copy of the active piece for renderers.
type PieceView struct {
	Shape    Shape
	Position Position
}

// Engine owns the grid and the single active piece and advances them in
// fixed steps. It is not safe for concurrent use; callers drive Update and
// commands from one goroutine.
type Engine struct {
	cfg   Config
	grid  *Grid
	piece *Piece
	rng   *rand.Rand
	state State

	clearedRows  int
	piecesPlaced int
	ticks        uint64
}

// New validates cfg and builds an engine with a freshly spawned piece.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shapes := make([]Shape, len(cfg.Shapes))
	for i, s := range cfg.Shapes {
		shapes[i] = s.Clone()
	}
	cfg.Shapes = shapes

	e := &Engine{
		cfg:  cfg,
		grid: NewGrid(cfg.Rows, cfg.Columns),
		rng:  rand.New(rand.NewSource(cfg.Seed)),
	}
	e.piece = e.spawn()
	return e, nil
}

// Update advances the simulation by dt. Once the game is over it is a
// no-op that keeps reporting StateGameOver.
func (e *Engine) Update(dt time.Duration) Result {
	if e.state == StateGameOver {
		return Result{State: e.state}
	}
	e.ticks++
	var res Result

	if n := e.grid.ClearCompletedRows(); n > 0 {
		e.clearedRows += n
		e.piece.SetDropInterval(e.DropInterval())
		res.Events = append(res.Events, Event{Kind: EventRowsCleared, Rows: n})
	}

	if e.grid.TopOut() {
		e.state = StateGameOver
		res.Events = append(res.Events, Event{Kind: EventTopOut})
		res.State = e.state
		return res
	}

	e.piece.Update(dt)

	if !InsideWalls(e.piece, e.cfg.Columns) {
		e.piece.Revert()
	}

	if TouchesStackOrFloor(e.piece, e.grid, e.cfg.Rows) {
		collided := e.piece.Position()
		e.piece.Revert()
		if collided.Y > e.piece.Position().Y {
			e.grid.Freeze(e.piece)
			e.piecesPlaced++
			res.Events = append(res.Events, Event{Kind: EventPieceFrozen, Position: e.piece.Position()})
			e.piece = e.spawn()
			res.Events = append(res.Events, Event{Kind: EventPieceSpawned, Position: e.piece.Position()})
		}
	}

	res.State = e.state
	return res
}

// spawn creates a piece with a uniformly random shape at the spawn point.
func (e *Engine) spawn() *Piece {
	shape := e.cfg.Shapes[e.rng.Intn(len(e.cfg.Shapes))]
	return NewPiece(shape, e.cfg.Spawn, e.DropInterval())
}

// DropInterval is the base interval reduced by IntervalStep per cleared
// row, floored at MinInterval.
func (e *Engine) DropInterval() time.Duration {
	d := e.cfg.BaseInterval - time.Duration(e.clearedRows)*e.cfg.IntervalStep
	return max(d, e.cfg.MinInterval)
}

// Apply executes a command against the active piece. Commands are ignored
// once the game is over; the return value reports whether it was applied.
func (e *Engine) Apply(cmd Command) bool {
	if e.state != StateRunning || e.piece == nil {
		return false
	}
	switch cmd {
	case CommandMoveLeft:
		e.piece.StageMove(e.piece.Position().Add(-1, 0))
	case CommandMoveRight:
		e.piece.StageMove(e.piece.Position().Add(1, 0))
	case CommandSoftDrop:
		e.piece.StageMove(e.piece.Position().Add(0, 1))
	case CommandDropFaster:
		e.piece.DropFaster(e.cfg.FastDropDivisor)
	case CommandRotate:
		return e.rotate()
	default:
		return false
	}
	return true
}

func (e *Engine) rotate() bool {
	e.piece.Rotate()
	if e.cfg.RotationGuard && !fits(e.piece, e.grid) {
		// three more quarter turns restore the original orientation
		for _i := 0; _i < 3; _i++ {
			e.piece.Rotate()
		}
		return false
	}
	return true
}

// MoveLeft stages a one-column move to the left.
func (e *Engine) MoveLeft() bool { return e.Apply(CommandMoveLeft) }

// MoveRight stages a one-column move to the right.
func (e *Engine) MoveRight() bool { return e.Apply(CommandMoveRight) }

// SoftDrop stages a one-row move down.
func (e *Engine) SoftDrop() bool { return e.Apply(CommandSoftDrop) }

// DropFaster shortens the active piece's drop interval.
func (e *Engine) DropFaster() bool { return e.Apply(CommandDropFaster) }

// Rotate turns the active piece clockwise.
func (e *Engine) Rotate() bool { return e.Apply(CommandRotate) }

// Board returns a read-only view of the grid.
func (e *Engine) Board() Board { return e.grid }

// ActivePiece returns a copy of the active piece.
func (e *Engine) ActivePiece() PieceView {
	return PieceView{Shape: e.piece.Shape(), Position: e.piece.Position()}
}

// PieceCells returns the absolute cells of the active piece.
func (e *Engine) PieceCells() []Position { return e.piece.Cells() }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// ClearedRows returns the total number of rows cleared.
func (e *Engine) ClearedRows() int { return e.clearedRows }

// PiecesPlaced returns how many pieces have frozen into the grid.
func (e *Engine) PiecesPlaced() int { return e.piecesPlaced }

// Ticks returns the number of Update calls processed while running.
func (e *Engine) Ticks() uint64 { return e.ticks }

// PieceDropInterval returns the active piece's effective drop interval,
// including any fast drop.
func (e *Engine) PieceDropInterval() time.Duration { return e.piece.DropInterval() }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.Shapes = make([]Shape, len(e.cfg.Shapes))
	for i, s := range e.cfg.Shapes {
		cfg.Shapes[i] = s.Clone()
	}
	return cfg
}
