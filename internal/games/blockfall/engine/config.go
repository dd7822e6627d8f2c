package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig is matched by every configuration error from New.
var ErrInvalidConfig = errors.New("engine: invalid config")

// ConfigError lists the fields that failed validation.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, strings.Join(e.Problems, "; "))
}

// Is makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Config holds everything needed to construct an Engine.
type Config struct {
	Rows     int
	Columns  int
	CellSize int // renderer scale; validated but unused by the simulation

	Spawn Position

	BaseInterval    time.Duration // drop interval with no rows cleared
	IntervalStep    time.Duration // reduction per cleared row
	MinInterval     time.Duration // floor for the computed interval
	FastDropDivisor int           // applied by DropFaster

	// RotationGuard rejects rotations that would leave the piece outside
	// the grid or overlapping the stack. Off by default.
	RotationGuard bool

	Shapes []Shape
	Seed   int64
}

// DefaultConfig returns a 20x10 board using the classic catalog.
func DefaultConfig() Config {
	shapes, _ := Catalog(CatalogClassic)
	return Config{
		Rows:            20,
		Columns:         10,
		CellSize:        2,
		Spawn:           Position{X: 3, Y: 0},
		BaseInterval:    500 * time.Millisecond,
		IntervalStep:    100 * time.Millisecond,
		MinInterval:     50 * time.Millisecond,
		FastDropDivisor: 40,
		Shapes:          shapes,
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var problems []string
	if c.Rows <= 0 {
		problems = append(problems, fmt.Sprintf("rows must be positive, got %d", c.Rows))
	}
	if c.Columns <= 0 {
		problems = append(problems, fmt.Sprintf("columns must be positive, got %d", c.Columns))
	}
	if c.CellSize <= 0 {
		problems = append(problems, fmt.Sprintf("cell size must be positive, got %d", c.CellSize))
	}
	if c.BaseInterval <= 0 {
		problems = append(problems, fmt.Sprintf("base interval must be positive, got %s", c.BaseInterval))
	}
	if c.IntervalStep < 0 {
		problems = append(problems, fmt.Sprintf("interval step must not be negative, got %s", c.IntervalStep))
	}
	if c.MinInterval <= 0 || c.MinInterval > c.BaseInterval {
		problems = append(problems, fmt.Sprintf("min interval must be in (0, %s], got %s", c.BaseInterval, c.MinInterval))
	}
	if c.FastDropDivisor < 1 {
		problems = append(problems, fmt.Sprintf("fast drop divisor must be at least 1, got %d", c.FastDropDivisor))
	}
	if len(c.Shapes) == 0 {
		problems = append(problems, "shape catalog is empty")
	}
	for i, s := range c.Shapes {
		if s.Size() == 0 {
			problems = append(problems, fmt.Sprintf("shape %d is empty", i))
			continue
		}
		for y, row := range s {
			if len(row) != s.Size() {
				problems = append(problems, fmt.Sprintf("shape %d row %d has %d cells, want %d", i, y, len(row), s.Size()))
			}
			for x, v := range row {
				if v < 0 {
					problems = append(problems, fmt.Sprintf("shape %d cell (%d, %d) is negative", i, x, y))
				}
			}
		}
		if c.Columns > 0 && (c.Spawn.X < 0 || c.Spawn.X+s.Size() > c.Columns) {
			problems = append(problems, fmt.Sprintf("shape %d (size %d) does not fit at spawn column %d", i, s.Size(), c.Spawn.X))
		}
	}
	if c.Spawn.Y < 0 || (c.Rows > 0 && c.Spawn.Y >= c.Rows) {
		problems = append(problems, fmt.Sprintf("spawn row %d outside grid", c.Spawn.Y))
	}
	if len(problems) > 0 {
		return &ConfigError{Problems: problems}
	}
	return nil
}
