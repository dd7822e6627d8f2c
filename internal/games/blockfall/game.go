// Package blockfall adapts the falling-block engine to the arcade platform:
// it loads the YAML configuration, turns platform actions into engine
// commands, advances the engine by one fixed tick per Step and draws the
// board onto a core.Screen.
package blockfall

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// GameID is the registry identifier.
const GameID = "blockfall"

const defaultTickRate = 60

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// defaultLogger is handed to every new Game.
var defaultLogger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	defaultLogger = l
}

// LoadConfig resolves the effective configuration: file search order,
// then the CLI difficulty preset.
func LoadConfig() (config.BlockfallConfig, error) {
	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyBlockfallPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// EngineConfig converts the YAML configuration into an engine
// configuration. The engine validates the result.
func EngineConfig(cfg config.BlockfallConfig, seed int64) (engine.Config, error) {
	shapes, ok := engine.Catalog(cfg.Catalog)
	if !ok {
		return engine.Config{}, fmt.Errorf("%w: unknown catalog %q", config.ErrInvalidConfig, cfg.Catalog)
	}
	return engine.Config{
		Rows:            cfg.Board.Rows,
		Columns:         cfg.Board.Columns,
		CellSize:        cfg.Board.CellSize,
		Spawn:           engine.Position{X: cfg.Spawn.X, Y: cfg.Spawn.Y},
		BaseInterval:    cfg.Timing.BaseInterval(),
		IntervalStep:    cfg.Timing.IntervalStep(),
		MinInterval:     cfg.Timing.MinInterval(),
		FastDropDivisor: cfg.Timing.FastDropDivisor,
		RotationGuard:   cfg.RotationGuard,
		Shapes:          shapes,
		Seed:            seed,
	}, nil
}

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.BlockfallConfig
	eng     *engine.Engine
	dt      time.Duration
	log     *log.Logger

	paused         bool
	screenTooSmall bool
	layout         layout
	explicit       bool // cfg was supplied by NewWithConfig
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{log: defaultLogger}
}

// NewWithConfig creates a game with an explicit configuration, bypassing
// the file search.
func NewWithConfig(cfg config.BlockfallConfig) *Game {
	g := New()
	g.cfg = cfg
	g.explicit = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return GameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Blockfall" }

// SetLogger replaces the logger of this game instance.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.log = l
}

// Reset starts a new round. The engine is seeded from runtime.Seed so that
// equal seeds and inputs replay identically.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = defaultTickRate
	}
	g.runtime = runtime
	g.dt = time.Second / time.Duration(runtime.TickRate)
	g.paused = false

	if !g.explicit {
		cfg, err := LoadConfig()
		if err != nil {
			g.log.Warn("config rejected, using defaults", "path", configPath, "err", err)
			cfg = config.DefaultBlockfallConfig()
		}
		g.cfg = cfg
	}

	eng, err := g.newEngine(runtime.Seed)
	if err != nil {
		g.log.Warn("engine config rejected, using defaults", "err", err)
		g.cfg = config.DefaultBlockfallConfig()
		eng, err = g.newEngine(runtime.Seed)
		if err != nil {
			panic(fmt.Sprintf("blockfall: default config rejected: %v", err))
		}
	}
	g.eng = eng

	g.layout = computeLayout(g.cfg, runtime.ScreenW, runtime.ScreenH)
	g.screenTooSmall = !g.layout.fits

	g.log.Debug("round started",
		"seed", runtime.Seed,
		"rows", g.cfg.Board.Rows,
		"columns", g.cfg.Board.Columns,
		"catalog", g.cfg.Catalog,
		"interval", eng.DropInterval(),
	)
}

// Resize re-computes the layout for a new screen size without restarting
// the round.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
	g.layout = computeLayout(g.cfg, width, height)
	g.screenTooSmall = !g.layout.fits
}

func (g *Game) newEngine(seed int64) (*engine.Engine, error) {
	ec, err := EngineConfig(g.cfg, seed)
	if err != nil {
		return nil, err
	}
	return engine.New(ec)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	over := g.eng.State() == engine.StateGameOver
	if over && in.Has(core.ActionRestart) {
		next := g.runtime
		next.Seed++
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
		g.log.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused || over {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if cmd, ok := commandFor(a); ok {
			g.eng.Apply(cmd)
		}
	}

	res := g.eng.Update(g.dt)
	g.logEvents(res)

	return core.StepResult{State: g.State(), Cleared: res.RowsCleared()}
}

func (g *Game) logEvents(res engine.Result) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case engine.EventRowsCleared:
			g.log.Debug("rows cleared", "rows", ev.Rows, "total", g.eng.ClearedRows(), "interval", g.eng.DropInterval())
		case engine.EventPieceFrozen:
			g.log.Debug("piece frozen", "x", ev.Position.X, "y", ev.Position.Y, "placed", g.eng.PiecesPlaced())
		case engine.EventTopOut:
			g.log.Info("top out", "lines", g.eng.ClearedRows(), "pieces", g.eng.PiecesPlaced(), "ticks", g.eng.Ticks())
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Lines:    g.eng.ClearedRows(),
		Pieces:   g.eng.PiecesPlaced(),
		GameOver: g.eng.State() == engine.StateGameOver,
		Paused:   g.paused,
	}
}

// Config returns the configuration of the current round.
func (g *Game) Config() config.BlockfallConfig {
	return g.cfg
}

// Engine exposes the running engine for inspection.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}
