// Package config provides YAML-based game configuration loading and
// difficulty presets for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BlockfallConfig contains all configuration for the blockfall game.
type BlockfallConfig struct {
	Board         BoardConfig      `yaml:"board"`
	Timing        TimingConfig     `yaml:"timing"`
	Spawn         SpawnConfig      `yaml:"spawn"`
	Catalog       string           `yaml:"catalog"`
	RotationGuard bool             `yaml:"rotation_guard"`
	Difficulty    DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig sizes the playfield.
type BoardConfig struct {
	Rows     int `yaml:"rows"`
	Columns  int `yaml:"columns"`
	CellSize int `yaml:"cell_size"` // terminal glyphs per cell horizontally
}

// TimingConfig controls gravity and how it speeds up.
type TimingConfig struct {
	BaseIntervalMs  int `yaml:"base_interval_ms"`
	IntervalStepMs  int `yaml:"interval_step_ms"` // subtracted per cleared row
	MinIntervalMs   int `yaml:"min_interval_ms"`
	FastDropDivisor int `yaml:"fast_drop_divisor"`
}

// BaseInterval returns the starting drop interval.
func (t TimingConfig) BaseInterval() time.Duration {
	return time.Duration(t.BaseIntervalMs) * time.Millisecond
}

// IntervalStep returns the per-row speed up.
func (t TimingConfig) IntervalStep() time.Duration {
	return time.Duration(t.IntervalStepMs) * time.Millisecond
}

// MinInterval returns the fastest gravity reachable through row clears.
func (t TimingConfig) MinInterval() time.Duration {
	return time.Duration(t.MinIntervalMs) * time.Millisecond
}

// SpawnConfig is the top-left anchor of newly spawned pieces.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DifficultyConfig selects a timing preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Validate reports every invalid field at once. The returned error wraps
// ErrInvalidConfig.
func (c BlockfallConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Board.Rows <= 0 {
		bad("board.rows must be positive, got %d", c.Board.Rows)
	}
	if c.Board.Columns <= 0 {
		bad("board.columns must be positive, got %d", c.Board.Columns)
	}
	if c.Board.CellSize <= 0 {
		bad("board.cell_size must be positive, got %d", c.Board.CellSize)
	}
	if c.Timing.BaseIntervalMs <= 0 {
		bad("timing.base_interval_ms must be positive, got %d", c.Timing.BaseIntervalMs)
	}
	if c.Timing.IntervalStepMs < 0 {
		bad("timing.interval_step_ms must not be negative, got %d", c.Timing.IntervalStepMs)
	}
	if c.Timing.MinIntervalMs <= 0 || c.Timing.MinIntervalMs > c.Timing.BaseIntervalMs {
		bad("timing.min_interval_ms must be in (0, %d], got %d", c.Timing.BaseIntervalMs, c.Timing.MinIntervalMs)
	}
	if c.Timing.FastDropDivisor < 1 {
		bad("timing.fast_drop_divisor must be at least 1, got %d", c.Timing.FastDropDivisor)
	}
	if c.Spawn.X < 0 || (c.Board.Columns > 0 && c.Spawn.X >= c.Board.Columns) {
		bad("spawn.x %d is outside the board", c.Spawn.X)
	}
	if c.Spawn.Y < 0 || (c.Board.Rows > 0 && c.Spawn.Y >= c.Board.Rows) {
		bad("spawn.y %d is outside the board", c.Spawn.Y)
	}
	if c.Catalog == "" {
		bad("catalog must be set")
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
		}
	}

	return errors.Join(errs...)
}
