package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monoConfig builds a rows x columns board with the single-cell catalog.
func monoConfig(rows, columns int, interval time.Duration) Config {
	shapes, _ := Catalog(CatalogMono)
	return Config{
		Rows:            rows,
		Columns:         columns,
		CellSize:        1,
		Spawn:           Position{X: 3, Y: 0},
		BaseInterval:    interval,
		IntervalStep:    0,
		MinInterval:     interval,
		FastDropDivisor: 40,
		Shapes:          shapes,
		Seed:            1,
	}
}

func newEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

// step applies an optional command and advances one tick.
func step(e *Engine, dt time.Duration, cmds ...Command) Result {
	for _, c := range cmds {
		e.Apply(c)
	}
	return e.Update(dt)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative columns", func(c *Config) { c.Columns = -2 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"zero interval", func(c *Config) { c.BaseInterval = 0 }},
		{"min above base", func(c *Config) { c.MinInterval = c.BaseInterval + time.Millisecond }},
		{"negative step", func(c *Config) { c.IntervalStep = -time.Millisecond }},
		{"zero divisor", func(c *Config) { c.FastDropDivisor = 0 }},
		{"no shapes", func(c *Config) { c.Shapes = nil }},
		{"spawn too far right", func(c *Config) { c.Spawn.X = c.Columns - 1 }},
		{"spawn below grid", func(c *Config) { c.Spawn.Y = c.Rows }},
		{"ragged shape", func(c *Config) { c.Shapes = []Shape{{{1}, {1, 1}}} }},
		{"non-square shape", func(c *Config) { c.Shapes = []Shape{{{1, 1, 1}, {0, 1, 0}}} }},
		{"negative shape value", func(c *Config) { c.Shapes = []Shape{{{1, 0}, {-1, 1}}} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			e, err := New(cfg)

			assert.Nil(t, e)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.NotEmpty(t, cfgErr.Problems)
		})
	}
}

func TestConfigErrorListsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0
	cfg.Columns = 0
	cfg.CellSize = 0

	var cfgErr *ConfigError
	require.ErrorAs(t, cfg.Validate(), &cfgErr)
	assert.GreaterOrEqual(t, len(cfgErr.Problems), 3)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestDropToFloorFreezesAndRespawns(t *testing.T) {
	e := newEngine(t, monoConfig(15, 6, 10*time.Millisecond))
	require.Equal(t, Position{3, 0}, e.ActivePiece().Position)

	res := e.Update(15 * time.Millisecond)
	assert.Equal(t, Position{3, 1}, e.ActivePiece().Position)
	assert.Equal(t, StateRunning, res.State)

	for e.ActivePiece().Position.Y < 14 {
		res = e.Update(15 * time.Millisecond)
		require.False(t, res.Has(EventPieceFrozen), "froze early at %v", e.ActivePiece().Position)
	}
	assert.Equal(t, Position{3, 14}, e.ActivePiece().Position)
	assert.Zero(t, e.Board().Cell(3, 14))

	res = e.Update(15 * time.Millisecond)

	require.True(t, res.Has(EventPieceFrozen))
	require.True(t, res.Has(EventPieceSpawned))
	assert.Equal(t, 1, e.Board().Cell(3, 14))
	assert.Equal(t, Position{3, 0}, e.ActivePiece().Position)
	assert.Zero(t, e.piece.MoveTimer())
	assert.Equal(t, 1, e.PiecesPlaced())
	assert.Equal(t, Event{Kind: EventPieceFrozen, Position: Position{3, 14}}, res.Events[0])
}

func TestPiecesStack(t *testing.T) {
	e := newEngine(t, monoConfig(15, 6, 10*time.Millisecond))

	for e.PiecesPlaced() < 2 {
		e.Update(15 * time.Millisecond)
	}

	assert.True(t, e.Board().Occupied(3, 14))
	assert.True(t, e.Board().Occupied(3, 13))
}

func TestMoveIntoWallIsRejected(t *testing.T) {
	e := newEngine(t, monoConfig(15, 6, time.Hour))

	for _i := 0; _i < 3; _i++ {
		step(e, time.Millisecond, CommandMoveLeft)
	}
	assert.Equal(t, Position{0, 0}, e.ActivePiece().Position)

	step(e, time.Millisecond, CommandMoveLeft)
	assert.Equal(t, Position{0, 0}, e.ActivePiece().Position)

	for _i := 0; _i < 10; _i++ {
		step(e, time.Millisecond, CommandMoveRight)
	}
	assert.Equal(t, Position{5, 0}, e.ActivePiece().Position)
	assert.Zero(t, e.PiecesPlaced())
}

func TestLateralBumpIntoStackDoesNotFreeze(t *testing.T) {
	e := newEngine(t, monoConfig(15, 6, time.Hour))
	fill(e.grid, Position{2, 5})

	for _i := 0; _i < 5; _i++ {
		step(e, time.Millisecond, CommandSoftDrop)
	}
	require.Equal(t, Position{3, 5}, e.ActivePiece().Position)

	res := step(e, time.Millisecond, CommandMoveLeft)

	assert.False(t, res.Has(EventPieceFrozen))
	assert.Equal(t, Position{3, 5}, e.ActivePiece().Position)
	assert.Zero(t, e.PiecesPlaced())
}

// A piece resting on the floor is not frozen by a lateral bump; only the
// next blocked downward move freezes it.
func TestRestingPieceFreezesOnlyOnVerticalCollision(t *testing.T) {
	e := newEngine(t, monoConfig(15, 6, time.Hour))
	fill(e.grid, Position{2, 14})

	for _i := 0; _i < 14; _i++ {
		step(e, time.Millisecond, CommandSoftDrop)
	}
	require.Equal(t, Position{3, 14}, e.ActivePiece().Position)

	res := step(e, time.Millisecond, CommandMoveLeft)
	assert.False(t, res.Has(EventPieceFrozen))
	assert.Equal(t, Position{3, 14}, e.ActivePiece().Position)

	res = step(e, time.Millisecond, CommandSoftDrop)
	assert.True(t, res.Has(EventPieceFrozen))
	assert.True(t, e.Board().Occupied(3, 14))
}

func TestSoftDropOntoStackFreezes(t *testing.T) {
	e := newEngine(t, monoConfig(15, 6, time.Hour))
	fill(e.grid, Position{3, 2})

	step(e, time.Millisecond, CommandSoftDrop)
	res := step(e, time.Millisecond, CommandSoftDrop)

	assert.True(t, res.Has(EventPieceFrozen))
	assert.True(t, e.Board().Occupied(3, 1))
}

func TestRowClearAdvancesDifficulty(t *testing.T) {
	cfg := monoConfig(15, 6, 100*time.Millisecond)
	cfg.IntervalStep = 30 * time.Millisecond
	cfg.MinInterval = 50 * time.Millisecond
	e := newEngine(t, cfg)
	for x := 0; x < 6; x++ {
		if x != 3 {
			fill(e.grid, Position{x, 14})
		}
	}

	for !e.Update(101 * time.Millisecond).Has(EventPieceFrozen) {
	}
	require.True(t, e.Board().Occupied(3, 14))

	res := e.Update(time.Millisecond)

	assert.Equal(t, 1, res.RowsCleared())
	assert.Equal(t, 1, e.ClearedRows())
	assert.Equal(t, 70*time.Millisecond, e.DropInterval())
	assert.Equal(t, 70*time.Millisecond, e.PieceDropInterval())
	for x := 0; x < 6; x++ {
		assert.False(t, e.Board().Occupied(x, 14), "column %d", x)
	}
}

func TestDropIntervalFloor(t *testing.T) {
	cfg := monoConfig(15, 6, 100*time.Millisecond)
	cfg.IntervalStep = 30 * time.Millisecond
	cfg.MinInterval = 50 * time.Millisecond
	e := newEngine(t, cfg)

	tests := []struct {
		cleared  int
		expected time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 70 * time.Millisecond},
		{2, 50 * time.Millisecond},
		{50, 50 * time.Millisecond},
	}
	for _, tc := range tests {
		e.clearedRows = tc.cleared
		assert.Equal(t, tc.expected, e.DropInterval(), "cleared=%d", tc.cleared)
	}
}

func TestSpawnedPieceUsesCurrentInterval(t *testing.T) {
	cfg := monoConfig(15, 6, 100*time.Millisecond)
	cfg.IntervalStep = 10 * time.Millisecond
	cfg.MinInterval = 10 * time.Millisecond
	e := newEngine(t, cfg)
	e.clearedRows = 3

	e.piece = e.spawn()

	assert.Equal(t, 70*time.Millisecond, e.PieceDropInterval())
}

func TestDropFasterCommand(t *testing.T) {
	e := newEngine(t, monoConfig(15, 6, 400*time.Millisecond))

	require.True(t, e.DropFaster())
	assert.Equal(t, 10*time.Millisecond, e.PieceDropInterval())

	e.DropFaster()
	assert.Equal(t, 10*time.Millisecond, e.PieceDropInterval())

	e.Update(11 * time.Millisecond)
	assert.Equal(t, Position{3, 1}, e.ActivePiece().Position)
}

func TestFastDropEndsWithPiece(t *testing.T) {
	e := newEngine(t, monoConfig(3, 6, 400*time.Millisecond))
	e.DropFaster()

	for !e.Update(11 * time.Millisecond).Has(EventPieceSpawned) {
	}

	assert.Equal(t, 400*time.Millisecond, e.PieceDropInterval())
}

func TestTopOutEndsGame(t *testing.T) {
	e := newEngine(t, monoConfig(15, 6, 10*time.Millisecond))
	fill(e.grid, Position{0, 0})

	res := e.Update(15 * time.Millisecond)

	assert.Equal(t, StateGameOver, res.State)
	assert.True(t, res.TopOut())
	assert.Equal(t, StateGameOver, e.State())
	assert.Equal(t, Position{3, 0}, e.ActivePiece().Position, "piece must not move on the top-out tick")

	ticks := e.Ticks()
	res = e.Update(15 * time.Millisecond)
	assert.Equal(t, StateGameOver, res.State)
	assert.Empty(t, res.Events)
	assert.Equal(t, ticks, e.Ticks())

	assert.False(t, e.MoveLeft())
	assert.False(t, e.Rotate())
}

func TestStackReachingTopEndsGame(t *testing.T) {
	e := newEngine(t, monoConfig(4, 6, 10*time.Millisecond))

	var res Result
	for _i := 0; _i < 200; _i++ {
		res = e.Update(15 * time.Millisecond)
		if res.State == StateGameOver {
			break
		}
	}

	require.Equal(t, StateGameOver, res.State)
	assert.Equal(t, 4, e.PiecesPlaced())
}

func TestRotationWithoutGuardCanLeaveWalls(t *testing.T) {
	cfg := monoConfig(15, 6, time.Hour)
	cfg.Spawn = Position{X: 0, Y: 0}
	cfg.Shapes = []Shape{NewShape([][]int{
		{0, 0, 1},
		{0, 0, 1},
		{0, 0, 1},
	})}
	e := newEngine(t, cfg)
	step(e, time.Millisecond, CommandMoveLeft)
	step(e, time.Millisecond, CommandMoveLeft)
	require.Equal(t, Position{-2, 0}, e.ActivePiece().Position)

	require.True(t, e.Rotate())

	// Known simplification: rotation is unchecked and may cross the wall.
	assert.False(t, InsideWalls(e.piece, cfg.Columns))
}

// rotatedBelowFloor returns an unguarded engine whose active piece has been
// rotated on the bottom row so two of its cells sit below the floor.
func rotatedBelowFloor(t *testing.T) *Engine {
	t.Helper()
	cfg := monoConfig(6, 6, time.Hour)
	cfg.Spawn = Position{X: 0, Y: 0}
	cfg.Shapes = []Shape{NewShape([][]int{
		{1, 1, 1},
		{0, 0, 0},
		{0, 0, 0},
	})}
	e := newEngine(t, cfg)
	for _i := 0; _i < 5; _i++ {
		step(e, time.Millisecond, CommandSoftDrop)
	}
	require.Equal(t, Position{0, 5}, e.ActivePiece().Position)
	require.Zero(t, e.PiecesPlaced())

	require.True(t, e.Rotate())
	require.True(t, TouchesStackOrFloor(e.piece, e.grid, cfg.Rows))
	return e
}

// Known boundary: a lateral move made while the piece already hangs below
// the floor collides without a vertical change, so the piece keeps falling.
func TestKnownBoundaryLateralMoveBelowFloorDoesNotFreeze(t *testing.T) {
	e := rotatedBelowFloor(t)

	res := step(e, time.Millisecond, CommandMoveRight)

	assert.Equal(t, StateRunning, res.State)
	assert.Empty(t, res.Events)
	assert.Equal(t, Position{0, 5}, e.ActivePiece().Position)
	assert.Zero(t, e.PiecesPlaced())
	assert.Zero(t, e.grid.FilledCount())
}

// Known boundary: the next downward collision freezes a piece whose cells
// are outside the grid, which is a contract violation in Freeze.
func TestKnownBoundaryFreezeBelowFloorPanics(t *testing.T) {
	e := rotatedBelowFloor(t)
	step(e, time.Millisecond, CommandMoveRight)

	assert.Panics(t, func() { step(e, time.Millisecond, CommandSoftDrop) })
	assert.Zero(t, e.grid.FilledCount())
}

func TestRotationGuardRejectsOutOfBounds(t *testing.T) {
	cfg := monoConfig(15, 6, time.Hour)
	cfg.Spawn = Position{X: 0, Y: 0}
	cfg.RotationGuard = true
	vertical := NewShape([][]int{
		{0, 0, 1},
		{0, 0, 1},
		{0, 0, 1},
	})
	cfg.Shapes = []Shape{vertical}
	e := newEngine(t, cfg)
	step(e, time.Millisecond, CommandMoveLeft)
	step(e, time.Millisecond, CommandMoveLeft)

	assert.False(t, e.Rotate())
	assert.True(t, vertical.Equal(e.ActivePiece().Shape))

	step(e, time.Millisecond, CommandMoveRight)
	step(e, time.Millisecond, CommandMoveRight)
	assert.True(t, e.Rotate())
	assert.False(t, vertical.Equal(e.ActivePiece().Shape))
}

func TestSpawnIsUniform(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	e := newEngine(t, cfg)

	counts := make(map[int]int)
	const draws = 7000
	for _i := 0; _i < draws; _i++ {
		p := e.spawn()
		// classic shapes carry distinct values 1..7
		counts[p.occupied()[0].value]++
	}

	require.Len(t, counts, 7)
	for value, n := range counts {
		assert.InDelta(t, draws/7, n, 150, "shape value %d", value)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 12345
	cfg.RotationGuard = true
	cmds := []Command{CommandMoveLeft, CommandRotate, CommandMoveRight, CommandSoftDrop}

	run := func() *Engine {
		e := newEngine(t, cfg)
		for i := 0; i < 3000; i++ {
			if i%7 == 0 {
				e.Apply(cmds[(i/7)%len(cmds)])
			}
			if e.Update(16*time.Millisecond).State == StateGameOver {
				break
			}
		}
		return e
	}

	a, b := run(), run()
	assert.Equal(t, a.grid.Cells(), b.grid.Cells())
	assert.Equal(t, a.PiecesPlaced(), b.PiecesPlaced())
	assert.Equal(t, a.ActivePiece(), b.ActivePiece())
}

func TestConfigIsCopied(t *testing.T) {
	cfg := monoConfig(15, 6, time.Second)
	e := newEngine(t, cfg)

	cfg.Shapes[0][0][0] = 5
	got := e.Config()
	got.Shapes[0][0][0] = 6

	assert.Equal(t, 1, e.cfg.Shapes[0][0][0])
}
